package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderNumber   string `gorm:"size:40;uniqueIndex;not null" json:"orderNumber"`
	Subtotal      int64  `json:"subtotal"` // gross item total; discount/points are kept separate
	TotalDiscount int64  `json:"totalDiscount"`
	UsedPoints    int64  `json:"usedPoints"`

	PaymentMethodID uint          `json:"paymentMethodId"`
	PaymentMethod   PaymentMethod `json:"-"` // preload when the method name is needed

	MemberID *uint   `json:"memberId"`
	Member   *Member `json:"-"`

	Items []OrderItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
