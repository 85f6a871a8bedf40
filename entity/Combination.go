package entity

import (
	"gorm.io/gorm"
)

type Combination struct {
	gorm.Model
	Name    string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Detail  string `json:"detail"`
	Price   int64  `json:"price"`
	Picture string `json:"picture"`

	Items []ComboItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
