package controllers

import (
	"github.com/choihyeonji00/project-kiosk/pkg/resp"
	"github.com/choihyeonji00/project-kiosk/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	Stats *services.StatsService
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{Stats: services.NewStatsService(db)}
}

// GET /admin/statistics
func (h *AdminController) Statistics(c *gin.Context) {
	summary, err := h.Stats.Summary()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, summary)
}
