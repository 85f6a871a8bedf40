package entity

import (
	"gorm.io/gorm"
)

type Admin struct {
	gorm.Model
	Username string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Password string `json:"-"` // bcrypt hash, never serialized
	Role     string `gorm:"not null;default:admin" json:"role"`
}
