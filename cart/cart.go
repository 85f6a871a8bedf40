package cart

import (
	"sync"

	"github.com/choihyeonji00/project-kiosk/entity"
)

// LineItem is one distinct product entry in the cart, keyed by ID.
type LineItem struct {
	ID              uint              `json:"id"`
	Name            string            `json:"name"`
	Price           int64             `json:"price"` // minor currency units
	Quantity        int               `json:"quantity"`
	SelectedOptions map[string]string `json:"selectedOptions"`
	Options         []string          `json:"options"`
}

// Combo is a bundle template; adding it expands into independent line items.
type Combo struct {
	Items []LineItem `json:"items"`
}

// OrderCart holds one checkout session's items, payment selection,
// membership, discount and points. All access is serialized by a single
// lock so mutations never interleave mid-update.
type OrderCart struct {
	mu sync.Mutex

	items         []LineItem
	paymentMethod *entity.PaymentMethod
	member        *entity.Member
	totalDiscount int64
	usedPoints    int64
}

func New() *OrderCart {
	return &OrderCart{}
}

// AddItem merges by ID: an existing entry only gains quantity, its
// options stay as first inserted. A new ID is appended, preserving
// arrival order.
func (c *OrderCart) AddItem(item LineItem) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i].Quantity += item.Quantity
			return
		}
	}
	c.items = append(c.items, copyItem(item))
}

// RemoveItem deletes the whole entry. Absent IDs are a no-op.
func (c *OrderCart) RemoveItem(id uint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the entry's quantity. A non-positive quantity
// removes the entry so a zero-quantity line is never retained.
// No-op if the ID is absent.
func (c *OrderCart) UpdateQuantity(id uint, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(id)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// AddCombo expands the combo into independent AddItem calls, each with
// quantity 1 and empty options regardless of the template's option data.
func (c *OrderCart) AddCombo(combo Combo) {
	for _, item := range combo.Items {
		c.AddItem(LineItem{
			ID:              item.ID,
			Name:            item.Name,
			Price:           item.Price,
			Quantity:        1,
			SelectedOptions: map[string]string{},
			Options:         []string{},
		})
	}
}

func (c *OrderCart) SetPaymentMethod(method *entity.PaymentMethod) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paymentMethod = method
}

func (c *OrderCart) SetCurrentMember(member *entity.Member) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.member = member
}

func (c *OrderCart) SetTotalDiscount(amount int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.totalDiscount = amount
}

func (c *OrderCart) SetUsedPoints(amount int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.usedPoints = amount
}

// TotalPrice recomputes the gross total from current items on every
// read. Discount and points are not subtracted here; the checkout flow
// applies them when it builds the submission payload.
func (c *OrderCart) TotalPrice() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var sum int64
	for _, item := range c.items {
		sum += item.Price * int64(item.Quantity)
	}
	return sum
}

// Items returns a copy in insertion order.
func (c *OrderCart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]LineItem, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, copyItem(item))
	}
	return out
}

func (c *OrderCart) PaymentMethod() *entity.PaymentMethod {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paymentMethod
}

func (c *OrderCart) CurrentMember() *entity.Member {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.member
}

func (c *OrderCart) TotalDiscount() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalDiscount
}

func (c *OrderCart) UsedPoints() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.usedPoints
}

// Clear resets every field to its initial value. Idempotent; runs on
// successful submission or explicit abandonment.
func (c *OrderCart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.paymentMethod = nil
	c.member = nil
	c.totalDiscount = 0
	c.usedPoints = 0
}

func copyItem(item LineItem) LineItem {
	out := item
	if item.SelectedOptions != nil {
		out.SelectedOptions = make(map[string]string, len(item.SelectedOptions))
		for k, v := range item.SelectedOptions {
			out.SelectedOptions[k] = v
		}
	}
	if item.Options != nil {
		out.Options = append([]string(nil), item.Options...)
	}
	return out
}
