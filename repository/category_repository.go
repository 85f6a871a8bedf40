package repository

import (
	"github.com/choihyeonji00/project-kiosk/entity"
	"gorm.io/gorm"
)

type CategoryRepository struct{ DB *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository { return &CategoryRepository{DB: db} }

func (r *CategoryRepository) List() ([]entity.Category, error) {
	var out []entity.Category
	if err := r.DB.Order("sort_order").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
