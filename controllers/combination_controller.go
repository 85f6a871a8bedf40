package controllers

import (
	"github.com/choihyeonji00/project-kiosk/pkg/resp"
	"github.com/choihyeonji00/project-kiosk/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CombinationController struct {
	Repo *repository.CombinationRepository
}

func NewCombinationController(db *gorm.DB) *CombinationController {
	return &CombinationController{Repo: repository.NewCombinationRepository(db)}
}

// GET /combinations
func (h *CombinationController) List(c *gin.Context) {
	out, err := h.Repo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
