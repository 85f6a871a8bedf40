package repository

import (
	"github.com/choihyeonji00/project-kiosk/entity"
	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) List() ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	if err := r.DB.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// ListByCategory filters by category name, the value the client sends.
func (r *MenuRepository) ListByCategory(category string) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.DB.Joins("JOIN categories ON categories.id = menu_items.category_id").
		Where("categories.name = ?", category).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Update(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) UpdateStock(id uint, stock int) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Update("stock", stock).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

// DecrementStockGuard takes qty off the shelf only while enough stock
// remains; affected rows 0 means sold out or a concurrent winner.
func (r *MenuRepository) DecrementStockGuard(tx *gorm.DB, id uint, qty int) (int64, error) {
	res := tx.Model(&entity.MenuItem{}).
		Where("id = ? AND stock >= ?", id, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	return res.RowsAffected, res.Error
}
