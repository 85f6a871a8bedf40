package controllers

import (
	"github.com/choihyeonji00/project-kiosk/pkg/resp"
	"github.com/choihyeonji00/project-kiosk/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaymentController struct {
	Repo *repository.PaymentRepository
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{Repo: repository.NewPaymentRepository(db)}
}

// GET /paymentMethods
func (h *PaymentController) List(c *gin.Context) {
	out, err := h.Repo.ListEnabled()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
