package cart

import (
	"fmt"
	"sync"

	"github.com/TemirB/rsrvd-site/internal/domain"
	"github.com/TemirB/rsrvd-site/internal/notify"
)

// Cart is one visitor's in-memory list of selected services. It holds at most
// one entry per service id and is never persisted.
type Cart struct {
	mu       sync.RWMutex
	items    []domain.CartItem
	notifier domain.Notifier
}

func New(notifier domain.Notifier) *Cart {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Cart{notifier: notifier}
}

// Add bumps the quantity of an existing entry or appends a new one with
// quantity 1.
func (c *Cart) Add(s domain.Service) {
	c.mu.Lock()
	idx := c.indexOf(s.ID)
	if idx >= 0 {
		c.items[idx].Quantity++
	} else {
		c.items = append(c.items, domain.CartItem{Service: s, Quantity: 1})
	}
	c.mu.Unlock()

	if idx >= 0 {
		c.notifier.Notify(notify.Success(fmt.Sprintf("%s quantity updated in cart", s.Name)))
		return
	}
	c.notifier.Notify(notify.Success(fmt.Sprintf("%s added to cart", s.Name)))
}

func (c *Cart) Remove(id string) {
	c.mu.Lock()
	idx := c.indexOf(id)
	if idx < 0 {
		c.mu.Unlock()
		return
	}
	removed := c.items[idx]
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	c.mu.Unlock()

	c.notifier.Notify(notify.Info(fmt.Sprintf("%s removed from cart", removed.Name)))
}

// UpdateQuantity sets the quantity of an existing entry. Zero or below
// removes the entry.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.Remove(id)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if idx := c.indexOf(id); idx >= 0 {
		c.items[idx].Quantity = quantity
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()

	c.notifier.Notify(notify.Info("Cart has been cleared"))
}

// Settle takes the ordered quantities out of the cart. Entries added or
// bumped after the order snapshot stay behind. Emptying the cart emits the
// usual clear notification.
func (c *Cart) Settle(ordered []domain.CartItem) {
	c.mu.Lock()
	for _, o := range ordered {
		idx := c.indexOf(o.ID)
		if idx < 0 {
			continue
		}
		c.items[idx].Quantity -= o.Quantity
		if c.items[idx].Quantity <= 0 {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
		}
	}
	empty := len(c.items) == 0
	if empty {
		c.items = nil
	}
	c.mu.Unlock()

	if empty {
		c.notifier.Notify(notify.Info("Cart has been cleared"))
	}
}

func (c *Cart) TotalPrice() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var total float64
	for _, it := range c.items {
		total += it.Subtotal()
	}
	return total
}

// Count is the sum of quantities.
func (c *Cart) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var n int
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) Items() []domain.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Cart) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}
