package repository

import (
	"github.com/choihyeonji00/project-kiosk/entity"
	"gorm.io/gorm"
)

type AdminRepository struct{ DB *gorm.DB }

func NewAdminRepository(db *gorm.DB) *AdminRepository { return &AdminRepository{DB: db} }

func (r *AdminRepository) FindByUsername(username string) (*entity.Admin, error) {
	var a entity.Admin
	if err := r.DB.Where("username = ?", username).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AdminRepository) Create(admin *entity.Admin) error {
	return r.DB.Create(admin).Error
}
