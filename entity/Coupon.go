package entity

import (
	"time"

	"gorm.io/gorm"
)

type Coupon struct {
	gorm.Model
	Code     string     `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Discount int64      `json:"discount"` // minor currency units
	ExpireAt *time.Time `json:"expireAt"`
}
