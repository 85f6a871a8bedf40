package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/choihyeonji00/project-kiosk/cart"
	"github.com/choihyeonji00/project-kiosk/configs"
	"github.com/choihyeonji00/project-kiosk/entity"
	"github.com/choihyeonji00/project-kiosk/gateway"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// end-to-end: the real gateway client against the real routes.

type testAPI struct {
	db     *gorm.DB
	client *gateway.Client

	americano entity.MenuItem
	card      entity.PaymentMethod
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	err = db.AutoMigrate(
		&entity.Admin{}, &entity.Category{}, &entity.MenuItem{},
		&entity.Combination{}, &entity.ComboItem{}, &entity.PaymentMethod{},
		&entity.Member{}, &entity.Coupon{}, &entity.Order{}, &entity.OrderItem{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	api := &testAPI{db: db}

	category := entity.Category{Name: "coffee"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	api.americano = entity.MenuItem{Name: "americano", Price: 1000, Stock: 3, CategoryID: category.ID}
	if err := db.Create(&api.americano).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	api.card = entity.PaymentMethod{MethodName: "card"}
	if err := db.Create(&api.card).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err := db.Create(&entity.Admin{Username: "admin", Password: string(hashed), Role: "admin"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	cfg := &configs.Config{JWTSecret: "test-secret", JWTTTL: time.Hour}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, db, cfg)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	api.client = gateway.New(srv.URL)
	return api
}

func TestRoutes_MenuAndOrderRoundTrip(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	items, err := api.client.GetMenuItems(ctx)
	if err != nil {
		t.Fatalf("GetMenuItems() error = %v", err)
	}
	if len(items) != 1 || items[0].Name != "americano" {
		t.Fatalf("items = %+v", items)
	}

	order, err := api.client.CreateOrder(ctx, gateway.OrderRequest{
		Items:           []cart.LineItem{{ID: api.americano.ID, Name: "americano", Price: 1000, Quantity: 2}},
		PaymentMethodID: api.card.ID,
		ComputedTotal:   2000,
	})
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}
	if order.Subtotal != 2000 || order.OrderNumber == "" {
		t.Errorf("order = %+v", order)
	}

	orders, err := api.client.GetOrders(ctx)
	if err != nil {
		t.Fatalf("GetOrders() error = %v", err)
	}
	if len(orders) != 1 {
		t.Errorf("orders = %d, want 1", len(orders))
	}
}

func TestRoutes_OutOfStockMessageReachesClient(t *testing.T) {
	api := newTestAPI(t)

	_, err := api.client.CreateOrder(context.Background(), gateway.OrderRequest{
		Items:           []cart.LineItem{{ID: api.americano.ID, Price: 1000, Quantity: 5}}, // stock is 3
		PaymentMethodID: api.card.ID,
		ComputedTotal:   5000,
	})

	var gerr *gateway.Error
	if !errors.As(err, &gerr) {
		t.Fatalf("error = %T, want *gateway.Error", err)
	}
	if gerr.Status != 422 {
		t.Errorf("status = %d, want 422", gerr.Status)
	}
	if gerr.Message != "not enough stock" {
		t.Errorf("message = %q, want %q", gerr.Message, "not enough stock")
	}
}

func TestRoutes_AdminLoginAndProtectedCRUD(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	// unauthenticated stock patch is rejected
	if _, err := api.client.UpdateMenuItemStock(ctx, api.americano.ID, 50); err == nil {
		t.Fatal("stock patch without token succeeded")
	}

	res, err := api.client.AdminLogin(ctx, "admin", "secret")
	if err != nil {
		t.Fatalf("AdminLogin() error = %v", err)
	}
	if !res.Success || res.Token == "" {
		t.Fatalf("result = %+v", res)
	}

	authed := api.client.WithToken(res.Token)
	updated, err := authed.UpdateMenuItemStock(ctx, api.americano.ID, 50)
	if err != nil {
		t.Fatalf("UpdateMenuItemStock() error = %v", err)
	}
	if updated.Stock != 50 {
		t.Errorf("stock = %d, want 50", updated.Stock)
	}

	// bad credentials stay a domain result
	res, err = api.client.AdminLogin(ctx, "admin", "wrong")
	if err != nil {
		t.Fatalf("AdminLogin() error = %v", err)
	}
	if res.Success {
		t.Error("bad password logged in")
	}
}

func TestRoutes_SalesSummary(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()

	if _, err := api.client.CreateOrder(ctx, gateway.OrderRequest{
		Items:           []cart.LineItem{{ID: api.americano.ID, Price: 1000, Quantity: 1}},
		PaymentMethodID: api.card.ID,
		TotalDiscount:   200,
		ComputedTotal:   1000,
	}); err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}

	res, err := api.client.AdminLogin(ctx, "admin", "secret")
	if err != nil || !res.Success {
		t.Fatalf("AdminLogin() = %+v, %v", res, err)
	}

	summary, err := api.client.WithToken(res.Token).GetSalesSummary(ctx)
	if err != nil {
		t.Fatalf("GetSalesSummary() error = %v", err)
	}
	if summary.OrderCount != 1 || summary.GrossTotal != 1000 || summary.NetTotal != 800 {
		t.Errorf("summary = %+v", summary)
	}
}
