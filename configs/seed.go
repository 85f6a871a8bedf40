package configs

import (
	"github.com/choihyeonji00/project-kiosk/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the admin account once, password stored as a
// bcrypt hash.
func SeedAdmin(cfg *Config) error {
	var count int64
	if err := db.Model(&entity.Admin{}).Where("username = ?", cfg.AdminUsername).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&entity.Admin{
		Username: cfg.AdminUsername,
		Password: string(hashed),
		Role:     "admin",
	}).Error
}

// SeedLookups fills the catalog tables on an empty database.
func SeedLookups() error {
	var count int64
	if err := db.Model(&entity.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []entity.Category{
		{Name: "coffee", SortOrder: 1},
		{Name: "beverage", SortOrder: 2},
		{Name: "dessert", SortOrder: 3},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	items := []entity.MenuItem{
		{Name: "americano", Detail: "double shot", Price: 2500, Stock: 100, CategoryID: categories[0].ID},
		{Name: "cafe latte", Detail: "with steamed milk", Price: 3000, Stock: 100, CategoryID: categories[0].ID},
		{Name: "lemonade", Price: 3500, Stock: 50, CategoryID: categories[1].ID},
		{Name: "cheesecake", Price: 4500, Stock: 20, CategoryID: categories[2].ID},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	combos := []entity.Combination{
		{
			Name:  "coffee & cake",
			Price: 6500,
			Items: []entity.ComboItem{
				{MenuItemID: items[0].ID},
				{MenuItemID: items[3].ID},
			},
		},
	}
	if err := db.Create(&combos).Error; err != nil {
		return err
	}

	methods := []entity.PaymentMethod{
		{MethodName: "card"},
		{MethodName: "cash"},
		{MethodName: "mobile pay"},
	}
	if err := db.Create(&methods).Error; err != nil {
		return err
	}

	coupons := []entity.Coupon{
		{Code: "WELCOME10", Discount: 1000},
	}
	return db.Create(&coupons).Error
}
