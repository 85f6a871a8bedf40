package controllers

import (
	"errors"

	"github.com/choihyeonji00/project-kiosk/pkg/resp"
	"github.com/choihyeonji00/project-kiosk/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{Svc: services.NewOrderService(db)}
}

// POST /orders
func (h *OrderController) Create(c *gin.Context) {
	var in services.CreateOrderIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.Create(&in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyOrder),
			errors.Is(err, services.ErrInvalidQuantity):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrUnknownMenuItem),
			errors.Is(err, services.ErrUnknownMethod):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrOutOfStock),
			errors.Is(err, services.ErrInsufficientPoints),
			errors.Is(err, services.ErrTotalMismatch),
			errors.Is(err, services.ErrExcessiveDiscount):
			resp.Unprocessable(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, order)
}

// GET /orders
func (h *OrderController) List(c *gin.Context) {
	out, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
