package entity

import (
	"gorm.io/gorm"
)

type Member struct {
	gorm.Model
	Name   string `json:"name"`
	Phone  string `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Points int64  `json:"points"`

	Orders []Order `json:"-"`
}
