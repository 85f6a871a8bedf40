package repository

import (
	"github.com/choihyeonji00/project-kiosk/entity"
	"gorm.io/gorm"
)

type MemberRepository struct{ DB *gorm.DB }

func NewMemberRepository(db *gorm.DB) *MemberRepository { return &MemberRepository{DB: db} }

func (r *MemberRepository) FindByPhone(phone string) (*entity.Member, error) {
	var m entity.Member
	if err := r.DB.Where("phone = ?", phone).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MemberRepository) FindByID(id uint) (*entity.Member, error) {
	var m entity.Member
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MemberRepository) CountByPhone(phone string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.Member{}).Where("phone = ?", phone).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MemberRepository) Create(member *entity.Member) error {
	return r.DB.Create(member).Error
}

func (r *MemberRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Member{}).Where("id = ?", id).Updates(updates).Error
}

// DeductPointsGuard spends points only while the balance covers them.
func (r *MemberRepository) DeductPointsGuard(tx *gorm.DB, id uint, points int64) (int64, error) {
	res := tx.Model(&entity.Member{}).
		Where("id = ? AND points >= ?", id, points).
		Update("points", gorm.Expr("points - ?", points))
	return res.RowsAffected, res.Error
}
