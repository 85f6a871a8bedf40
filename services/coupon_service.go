package services

import (
	"errors"
	"strings"
	"time"

	"github.com/choihyeonji00/project-kiosk/entity"
	"github.com/choihyeonji00/project-kiosk/repository"
	"gorm.io/gorm"
)

var (
	ErrCouponNotFound = errors.New("coupon not found")
	ErrCouponExpired  = errors.New("coupon expired")
)

type CouponService struct {
	Repo *repository.CouponRepository
}

func NewCouponService(repo *repository.CouponRepository) *CouponService {
	return &CouponService{Repo: repo}
}

func (s *CouponService) GetByCode(code string) (*entity.Coupon, error) {
	c, err := s.Repo.FindByCode(strings.TrimSpace(code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	if c.ExpireAt != nil && c.ExpireAt.Before(time.Now()) {
		return nil, ErrCouponExpired
	}
	return c, nil
}
