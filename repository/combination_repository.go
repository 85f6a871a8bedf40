package repository

import (
	"github.com/choihyeonji00/project-kiosk/entity"
	"gorm.io/gorm"
)

type CombinationRepository struct{ DB *gorm.DB }

func NewCombinationRepository(db *gorm.DB) *CombinationRepository {
	return &CombinationRepository{DB: db}
}

func (r *CombinationRepository) List() ([]entity.Combination, error) {
	var out []entity.Combination
	err := r.DB.Preload("Items").Preload("Items.MenuItem").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
