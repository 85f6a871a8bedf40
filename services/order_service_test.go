package services

import (
	"errors"
	"testing"

	"github.com/choihyeonji00/project-kiosk/entity"
	"gorm.io/gorm"
)

type orderFixture struct {
	db        *gorm.DB
	svc       *OrderService
	americano entity.MenuItem
	cake      entity.MenuItem
	card      entity.PaymentMethod
	member    entity.Member
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	db := newTestDB(t)

	f := &orderFixture{db: db, svc: NewOrderService(db)}

	category := entity.Category{Name: "coffee"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	f.americano = entity.MenuItem{Name: "americano", Price: 1000, Stock: 10, CategoryID: category.ID}
	f.cake = entity.MenuItem{Name: "cheesecake", Price: 500, Stock: 3, CategoryID: category.ID}
	if err := db.Create(&f.americano).Error; err != nil {
		t.Fatalf("seed menu: %v", err)
	}
	if err := db.Create(&f.cake).Error; err != nil {
		t.Fatalf("seed menu: %v", err)
	}
	f.card = entity.PaymentMethod{MethodName: "card"}
	if err := db.Create(&f.card).Error; err != nil {
		t.Fatalf("seed payment method: %v", err)
	}
	f.member = entity.Member{Phone: "01012345678", Points: 500}
	if err := db.Create(&f.member).Error; err != nil {
		t.Fatalf("seed member: %v", err)
	}
	return f
}

func (f *orderFixture) stockOf(t *testing.T, id uint) int {
	t.Helper()
	var item entity.MenuItem
	if err := f.db.First(&item, id).Error; err != nil {
		t.Fatalf("reload menu item: %v", err)
	}
	return item.Stock
}

func TestOrderService_Create(t *testing.T) {
	f := newOrderFixture(t)

	order, err := f.svc.Create(&CreateOrderIn{
		Items: []OrderItemIn{
			{ID: f.americano.ID, Quantity: 2},
			{ID: f.cake.ID, Quantity: 1},
		},
		PaymentMethodID: f.card.ID,
		ComputedTotal:   2500,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if order.OrderNumber == "" {
		t.Error("order number is empty")
	}
	if order.Subtotal != 2500 {
		t.Errorf("subtotal = %d, want 2500", order.Subtotal)
	}
	if len(order.Items) != 2 || order.Items[0].Name != "americano" || order.Items[0].Price != 1000 {
		t.Errorf("items not snapshotted from menu: %+v", order.Items)
	}
	if got := f.stockOf(t, f.americano.ID); got != 8 {
		t.Errorf("americano stock = %d, want 8", got)
	}
	if got := f.stockOf(t, f.cake.ID); got != 2 {
		t.Errorf("cake stock = %d, want 2", got)
	}
}

func TestOrderService_CreateRejections(t *testing.T) {
	f := newOrderFixture(t)

	tests := []struct {
		name    string
		in      CreateOrderIn
		wantErr error
	}{
		{
			name:    "empty order",
			in:      CreateOrderIn{PaymentMethodID: f.card.ID},
			wantErr: ErrEmptyOrder,
		},
		{
			name: "zero quantity",
			in: CreateOrderIn{
				Items:           []OrderItemIn{{ID: f.americano.ID, Quantity: 0}},
				PaymentMethodID: f.card.ID,
			},
			wantErr: ErrInvalidQuantity,
		},
		{
			name: "unknown menu item",
			in: CreateOrderIn{
				Items:           []OrderItemIn{{ID: 9999, Quantity: 1}},
				PaymentMethodID: f.card.ID,
				ComputedTotal:   1000,
			},
			wantErr: ErrUnknownMenuItem,
		},
		{
			name: "unknown payment method",
			in: CreateOrderIn{
				Items:           []OrderItemIn{{ID: f.americano.ID, Quantity: 1}},
				PaymentMethodID: 9999,
				ComputedTotal:   1000,
			},
			wantErr: ErrUnknownMethod,
		},
		{
			name: "client total disagrees with menu prices",
			in: CreateOrderIn{
				Items:           []OrderItemIn{{ID: f.americano.ID, Quantity: 1}},
				PaymentMethodID: f.card.ID,
				ComputedTotal:   1,
			},
			wantErr: ErrTotalMismatch,
		},
		{
			name: "discount and points above total",
			in: CreateOrderIn{
				Items:           []OrderItemIn{{ID: f.americano.ID, Quantity: 1}},
				PaymentMethodID: f.card.ID,
				ComputedTotal:   1000,
				TotalDiscount:   800,
				UsedPoints:      300,
			},
			wantErr: ErrExcessiveDiscount,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.svc.Create(&tt.in); !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOrderService_OutOfStockRollsBack(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.svc.Create(&CreateOrderIn{
		Items: []OrderItemIn{
			{ID: f.americano.ID, Quantity: 2},
			{ID: f.cake.ID, Quantity: 5}, // only 3 in stock
		},
		PaymentMethodID: f.card.ID,
		ComputedTotal:   4500,
	})
	if !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("Create() error = %v, want ErrOutOfStock", err)
	}

	// the americano decrement must roll back with the failed order
	if got := f.stockOf(t, f.americano.ID); got != 10 {
		t.Errorf("americano stock = %d, want 10 after rollback", got)
	}
	var count int64
	f.db.Model(&entity.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("orders persisted = %d, want 0", count)
	}
}

func TestOrderService_PointsDeduction(t *testing.T) {
	f := newOrderFixture(t)

	memberID := f.member.ID
	_, err := f.svc.Create(&CreateOrderIn{
		Items:           []OrderItemIn{{ID: f.americano.ID, Quantity: 1}},
		PaymentMethodID: f.card.ID,
		MemberID:        &memberID,
		UsedPoints:      300,
		ComputedTotal:   1000,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	var m entity.Member
	if err := f.db.First(&m, memberID).Error; err != nil {
		t.Fatalf("reload member: %v", err)
	}
	if m.Points != 200 {
		t.Errorf("points = %d, want 200", m.Points)
	}

	// remaining balance cannot cover another 300
	_, err = f.svc.Create(&CreateOrderIn{
		Items:           []OrderItemIn{{ID: f.americano.ID, Quantity: 1}},
		PaymentMethodID: f.card.ID,
		MemberID:        &memberID,
		UsedPoints:      300,
		ComputedTotal:   1000,
	})
	if !errors.Is(err, ErrInsufficientPoints) {
		t.Fatalf("Create() error = %v, want ErrInsufficientPoints", err)
	}
}

func TestStatsService_Summary(t *testing.T) {
	f := newOrderFixture(t)
	stats := NewStatsService(f.db)

	for i := 0; i < 2; i++ {
		_, err := f.svc.Create(&CreateOrderIn{
			Items:           []OrderItemIn{{ID: f.americano.ID, Quantity: 1}},
			PaymentMethodID: f.card.ID,
			TotalDiscount:   100,
			ComputedTotal:   1000,
		})
		if err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	summary, err := stats.Summary()
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}
	if summary.OrderCount != 2 || summary.GrossTotal != 2000 ||
		summary.DiscountTotal != 200 || summary.NetTotal != 1800 {
		t.Errorf("summary = %+v", summary)
	}
}
