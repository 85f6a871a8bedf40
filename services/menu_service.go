package services

import (
	"errors"

	"github.com/choihyeonji00/project-kiosk/entity"
	"github.com/choihyeonji00/project-kiosk/repository"
)

var (
	ErrMenuNameRequired = errors.New("menu name is required")
	ErrNegativePrice    = errors.New("price must not be negative")
	ErrNegativeStock    = errors.New("stock must not be negative")
)

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) List() ([]entity.MenuItem, error) {
	return s.Repo.List()
}

func (s *MenuService) ListByCategory(category string) ([]entity.MenuItem, error) {
	return s.Repo.ListByCategory(category)
}

func (s *MenuService) Get(id uint) (*entity.MenuItem, error) {
	return s.Repo.FindByID(id)
}

func (s *MenuService) Create(item *entity.MenuItem) error {
	if err := validateMenuItem(item); err != nil {
		return err
	}
	return s.Repo.Create(item)
}

func (s *MenuService) Update(id uint, item *entity.MenuItem) (*entity.MenuItem, error) {
	if err := validateMenuItem(item); err != nil {
		return nil, err
	}
	existing, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	existing.Name = item.Name
	existing.Detail = item.Detail
	existing.Price = item.Price
	existing.Picture = item.Picture
	existing.Stock = item.Stock
	existing.CategoryID = item.CategoryID
	if err := s.Repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// UpdateStock is the stock-only patch used by the inventory screen.
func (s *MenuService) UpdateStock(id uint, stock int) (*entity.MenuItem, error) {
	if stock < 0 {
		return nil, ErrNegativeStock
	}
	if _, err := s.Repo.FindByID(id); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateStock(id, stock); err != nil {
		return nil, err
	}
	return s.Repo.FindByID(id)
}

func (s *MenuService) Delete(id uint) error {
	if _, err := s.Repo.FindByID(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func validateMenuItem(item *entity.MenuItem) error {
	if item.Name == "" {
		return ErrMenuNameRequired
	}
	if item.Price < 0 {
		return ErrNegativePrice
	}
	if item.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}
