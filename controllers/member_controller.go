package controllers

import (
	"errors"

	"github.com/choihyeonji00/project-kiosk/entity"
	"github.com/choihyeonji00/project-kiosk/pkg/resp"
	"github.com/choihyeonji00/project-kiosk/repository"
	"github.com/choihyeonji00/project-kiosk/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MemberController struct {
	Svc *services.MemberService
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{Svc: services.NewMemberService(repository.NewMemberRepository(db))}
}

// GET /members?phone=
func (h *MemberController) GetByPhone(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		resp.BadRequest(c, "phone query parameter is required")
		return
	}
	member, err := h.Svc.GetByPhone(phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "member not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, member)
}

// POST /members
func (h *MemberController) Create(c *gin.Context) {
	var member entity.Member
	if err := c.ShouldBindJSON(&member); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Create(&member); err != nil {
		if errors.Is(err, services.ErrPhoneAlreadyUsed) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, member)
}

// PATCH /members/:id
func (h *MemberController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	member, err := h.Svc.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "member not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, member)
}
