package services

import (
	"github.com/choihyeonji00/project-kiosk/entity"
	"gorm.io/gorm"
)

type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

// Summary aggregates over all orders. The raw order list stays
// available through the orders endpoint for callers that aggregate
// themselves.
func (s *StatsService) Summary() (*entity.SalesSummary, error) {
	var out entity.SalesSummary
	err := s.DB.Model(&entity.Order{}).
		Select("COUNT(*) AS order_count, " +
			"COALESCE(SUM(subtotal), 0) AS gross_total, " +
			"COALESCE(SUM(total_discount), 0) AS discount_total, " +
			"COALESCE(SUM(used_points), 0) AS points_total").
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	out.NetTotal = out.GrossTotal - out.DiscountTotal - out.PointsTotal
	return &out, nil
}
