package repository

import (
	"github.com/choihyeonji00/project-kiosk/entity"
	"gorm.io/gorm"
)

type PaymentRepository struct{ DB *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{DB: db} }

func (r *PaymentRepository) ListEnabled() ([]entity.PaymentMethod, error) {
	var out []entity.PaymentMethod
	if err := r.DB.Where("enabled = ?", true).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PaymentRepository) FindByID(id uint) (*entity.PaymentMethod, error) {
	var m entity.PaymentMethod
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
