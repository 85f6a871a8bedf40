package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/choihyeonji00/project-kiosk/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database. cache=shared keeps it
// alive across the pooled connections gorm opens.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&entity.Admin{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.Combination{}, &entity.ComboItem{},
		&entity.PaymentMethod{},
		&entity.Member{}, &entity.Coupon{},
		&entity.Order{}, &entity.OrderItem{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
