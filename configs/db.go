package configs

import (
	"github.com/choihyeonji00/project-kiosk/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	db.AutoMigrate(
		&entity.Admin{},
		&entity.Category{}, &entity.MenuItem{},
		&entity.Combination{}, &entity.ComboItem{},
		&entity.PaymentMethod{},
		&entity.Member{}, &entity.Coupon{},
		&entity.Order{}, &entity.OrderItem{},
	)
}
