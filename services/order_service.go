package services

import (
	"errors"

	"github.com/choihyeonji00/project-kiosk/entity"
	"github.com/choihyeonji00/project-kiosk/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmptyOrder         = errors.New("order has no items")
	ErrInvalidQuantity    = errors.New("item quantity must be at least 1")
	ErrUnknownMenuItem    = errors.New("unknown menu item")
	ErrUnknownMethod      = errors.New("unknown payment method")
	ErrOutOfStock         = errors.New("not enough stock")
	ErrInsufficientPoints = errors.New("not enough points")
	ErrTotalMismatch      = errors.New("order total mismatch")
	ErrExcessiveDiscount  = errors.New("discount and points exceed the order total")
)

type OrderService struct {
	DB         *gorm.DB
	Repo       *repository.OrderRepository
	MenuRepo   *repository.MenuRepository
	PayRepo    *repository.PaymentRepository
	MemberRepo *repository.MemberRepository
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		DB:         db,
		Repo:       repository.NewOrderRepository(db),
		MenuRepo:   repository.NewMenuRepository(db),
		PayRepo:    repository.NewPaymentRepository(db),
		MemberRepo: repository.NewMemberRepository(db),
	}
}

type OrderItemIn struct {
	ID              uint              `json:"id" binding:"required"`
	Name            string            `json:"name"`
	Price           int64             `json:"price"`
	Quantity        int               `json:"quantity" binding:"required"`
	SelectedOptions map[string]string `json:"selectedOptions"`
	Options         []string          `json:"options"`
}

type CreateOrderIn struct {
	Items           []OrderItemIn `json:"items"`
	PaymentMethodID uint          `json:"paymentMethodId" binding:"required"`
	MemberID        *uint         `json:"memberId"`
	TotalDiscount   int64         `json:"totalDiscount"`
	UsedPoints      int64         `json:"usedPoints"`
	ComputedTotal   int64         `json:"computedTotal"`
}

// Create validates the submission against the menu, then writes the
// order, the stock decrements and the point deduction in one
// transaction. Prices and names are snapshotted from the menu, not
// taken from the client.
func (s *OrderService) Create(in *CreateOrderIn) (*entity.Order, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range in.Items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}
	if _, err := s.PayRepo.FindByID(in.PaymentMethodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownMethod
		}
		return nil, err
	}

	rows := make([]entity.OrderItem, 0, len(in.Items))
	var subtotal int64
	for _, item := range in.Items {
		menu, err := s.MenuRepo.FindByID(item.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUnknownMenuItem
			}
			return nil, err
		}
		subtotal += menu.Price * int64(item.Quantity)
		rows = append(rows, entity.OrderItem{
			MenuItemID:      menu.ID,
			Name:            menu.Name,
			Price:           menu.Price,
			Quantity:        item.Quantity,
			SelectedOptions: item.SelectedOptions,
			Options:         item.Options,
		})
	}

	if in.ComputedTotal != subtotal {
		return nil, ErrTotalMismatch
	}
	if in.TotalDiscount < 0 || in.UsedPoints < 0 {
		return nil, ErrExcessiveDiscount
	}
	if in.TotalDiscount+in.UsedPoints > subtotal {
		return nil, ErrExcessiveDiscount
	}

	order := &entity.Order{
		OrderNumber:     uuid.NewString(),
		Subtotal:        subtotal,
		TotalDiscount:   in.TotalDiscount,
		UsedPoints:      in.UsedPoints,
		PaymentMethodID: in.PaymentMethodID,
		MemberID:        in.MemberID,
		Items:           rows,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for _, row := range order.Items {
			affected, err := s.MenuRepo.DecrementStockGuard(tx, row.MenuItemID, row.Quantity)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrOutOfStock
			}
		}
		if order.MemberID != nil && order.UsedPoints > 0 {
			affected, err := s.MemberRepo.DeductPointsGuard(tx, *order.MemberID, order.UsedPoints)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrInsufficientPoints
			}
		}
		return s.Repo.Create(tx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) List() ([]entity.Order, error) {
	return s.Repo.List()
}
