package repository

import (
	"github.com/choihyeonji00/project-kiosk/entity"
	"gorm.io/gorm"
)

type CouponRepository struct{ DB *gorm.DB }

func NewCouponRepository(db *gorm.DB) *CouponRepository { return &CouponRepository{DB: db} }

func (r *CouponRepository) FindByCode(code string) (*entity.Coupon, error) {
	var c entity.Coupon
	if err := r.DB.Where("code = ?", code).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
