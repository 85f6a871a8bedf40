package entity

import (
	"gorm.io/gorm"
)

type ComboItem struct {
	gorm.Model
	CombinationID uint `json:"combinationId"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"menuItem"` // preloaded so the client can expand combos
}
