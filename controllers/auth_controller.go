package controllers

import (
	"errors"

	"github.com/choihyeonji00/project-kiosk/configs"
	"github.com/choihyeonji00/project-kiosk/pkg/resp"
	"github.com/choihyeonji00/project-kiosk/repository"
	"github.com/choihyeonji00/project-kiosk/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{
		Svc: services.NewAuthService(repository.NewAdminRepository(db), cfg.JWTSecret, cfg.JWTTTL),
	}
}

// POST /auth/login — credentials in the body, never in the query string
func (h *AuthController) Login(c *gin.Context) {
	var body struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, admin, err := h.Svc.Login(body.Username, body.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": admin})
}
