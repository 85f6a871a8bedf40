package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name    string `gorm:"size:100;not null" json:"name"`
	Detail  string `json:"detail"`
	Price   int64  `json:"price"` // minor currency units
	Picture string `json:"picture"`
	Stock   int    `json:"stock"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only on detail endpoints

	OrderItems []OrderItem `json:"-"`
	ComboItems []ComboItem `json:"-"`
}
