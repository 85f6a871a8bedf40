package controllers

import (
	"errors"

	"github.com/choihyeonji00/project-kiosk/pkg/resp"
	"github.com/choihyeonji00/project-kiosk/repository"
	"github.com/choihyeonji00/project-kiosk/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CouponController struct {
	Svc *services.CouponService
}

func NewCouponController(db *gorm.DB) *CouponController {
	return &CouponController{Svc: services.NewCouponService(repository.NewCouponRepository(db))}
}

// GET /coupons?code=
func (h *CouponController) GetByCode(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		resp.BadRequest(c, "code query parameter is required")
		return
	}
	coupon, err := h.Svc.GetByCode(code)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCouponNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrCouponExpired):
			resp.Unprocessable(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, coupon)
}
