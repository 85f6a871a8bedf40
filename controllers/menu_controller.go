package controllers

import (
	"errors"
	"strconv"

	"github.com/choihyeonji00/project-kiosk/entity"
	"github.com/choihyeonji00/project-kiosk/pkg/resp"
	"github.com/choihyeonji00/project-kiosk/repository"
	"github.com/choihyeonji00/project-kiosk/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct {
	Svc          *services.MenuService
	CategoryRepo *repository.CategoryRepository
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{
		Svc:          services.NewMenuService(repository.NewMenuRepository(db)),
		CategoryRepo: repository.NewCategoryRepository(db),
	}
}

// GET /categories
func (h *MenuController) Categories(c *gin.Context) {
	out, err := h.CategoryRepo.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /menuItems?category=
func (h *MenuController) List(c *gin.Context) {
	category := c.Query("category")

	var (
		out []entity.MenuItem
		err error
	)
	if category != "" {
		out, err = h.Svc.ListByCategory(category)
	} else {
		out, err = h.Svc.List()
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /menuItems
func (h *MenuController) Create(c *gin.Context) {
	var item entity.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Create(&item); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, item)
}

// PUT /menuItems/:id
func (h *MenuController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var item entity.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updated, err := h.Svc.Update(id, &item)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, updated)
}

// PATCH /menuItems/:id — stock-only update
func (h *MenuController) UpdateStock(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var body struct {
		Stock *int `json:"stock" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updated, err := h.Svc.UpdateStock(id, *body.Stock)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, updated)
}

// DELETE /menuItems/:id
func (h *MenuController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}
