package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload only when the menu detail is needed

	Name     string `json:"name"` // snapshot at order time; menu edits must not rewrite history
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`

	SelectedOptions map[string]string `gorm:"serializer:json" json:"selectedOptions"`
	Options         []string          `gorm:"serializer:json" json:"options"`
}
