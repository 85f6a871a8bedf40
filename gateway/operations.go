package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/choihyeonji00/project-kiosk/cart"
	"github.com/choihyeonji00/project-kiosk/entity"
)

// OrderRequest is the order-creation payload built once from a cart
// snapshot at submission time. ComputedTotal is the gross item total;
// discount and points ride along as separate fields.
type OrderRequest struct {
	Items           []cart.LineItem `json:"items"`
	PaymentMethodID uint            `json:"paymentMethodId"`
	MemberID        *uint           `json:"memberId,omitempty"`
	TotalDiscount   int64           `json:"totalDiscount"`
	UsedPoints      int64           `json:"usedPoints"`
	ComputedTotal   int64           `json:"computedTotal"`
}

// LoginResult is the admin credential-check outcome. Failure is a
// domain result, not an error: callers branch on Success.
type LoginResult struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Token   string        `json:"token,omitempty"`
	User    *entity.Admin `json:"user,omitempty"`
}

// ============ Menu & Categories ============

func (c *Client) GetCategories(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetMenuItems(ctx context.Context) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	if err := c.do(ctx, http.MethodGet, "/menuItems", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetMenuItemsByCategory(ctx context.Context, category string) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	q := url.Values{"category": {category}}
	if err := c.do(ctx, http.MethodGet, "/menuItems", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCombinations(ctx context.Context) ([]entity.Combination, error) {
	var out []entity.Combination
	if err := c.do(ctx, http.MethodGet, "/combinations", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ============ Payment ============

func (c *Client) GetPaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error) {
	var out []entity.PaymentMethod
	if err := c.do(ctx, http.MethodGet, "/paymentMethods", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ============ Orders ============

func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*entity.Order, error) {
	var out entity.Order
	if err := c.do(ctx, http.MethodPost, "/orders", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetOrders(ctx context.Context) ([]entity.Order, error) {
	var out []entity.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ============ Members ============

func (c *Client) GetMemberByPhone(ctx context.Context, phone string) (*entity.Member, error) {
	var out entity.Member
	q := url.Values{"phone": {phone}}
	if err := c.do(ctx, http.MethodGet, "/members", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateMember(ctx context.Context, member entity.Member) (*entity.Member, error) {
	var out entity.Member
	if err := c.do(ctx, http.MethodPost, "/members", nil, member, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMember(ctx context.Context, id uint, updates map[string]any) (*entity.Member, error) {
	var out entity.Member
	path := "/members/" + strconv.FormatUint(uint64(id), 10)
	if err := c.do(ctx, http.MethodPatch, path, nil, updates, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============ Coupons ============

func (c *Client) GetCouponByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	var out entity.Coupon
	q := url.Values{"code": {code}}
	if err := c.do(ctx, http.MethodGet, "/coupons", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============ Admin ============

// AdminLogin posts credentials in the request body. A 401 is folded
// into LoginResult{Success: false}; every other failure is a *Error.
func (c *Client) AdminLogin(ctx context.Context, username, password string) (LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var out LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &out); err != nil {
		var gerr *Error
		if errors.As(err, &gerr) && gerr.Status == http.StatusUnauthorized {
			return LoginResult{Success: false, Message: gerr.Message}, nil
		}
		return LoginResult{}, err
	}
	out.Success = true
	return out, nil
}

func (c *Client) CreateMenuItem(ctx context.Context, item entity.MenuItem) (*entity.MenuItem, error) {
	var out entity.MenuItem
	if err := c.do(ctx, http.MethodPost, "/menuItems", nil, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMenuItem(ctx context.Context, id uint, item entity.MenuItem) (*entity.MenuItem, error) {
	var out entity.MenuItem
	if err := c.do(ctx, http.MethodPut, menuItemPath(id), nil, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMenuItemStock is the stock-only PATCH used by inventory screens.
func (c *Client) UpdateMenuItemStock(ctx context.Context, id uint, stock int) (*entity.MenuItem, error) {
	var out entity.MenuItem
	body := map[string]int{"stock": stock}
	if err := c.do(ctx, http.MethodPatch, menuItemPath(id), nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, menuItemPath(id), nil, nil, nil)
}

// GetSalesStatistics returns all orders; aggregation is the caller's.
func (c *Client) GetSalesStatistics(ctx context.Context) ([]entity.Order, error) {
	return c.GetOrders(ctx)
}

// GetSalesSummary fetches the server-side aggregation.
func (c *Client) GetSalesSummary(ctx context.Context) (*entity.SalesSummary, error) {
	var out entity.SalesSummary
	if err := c.do(ctx, http.MethodGet, "/admin/statistics", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func menuItemPath(id uint) string {
	return fmt.Sprintf("/menuItems/%d", id)
}
