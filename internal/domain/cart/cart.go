package cart

import (
	"context"

	"github.com/makelifebetter/storefront-service/internal/domain/catalog"
	"github.com/makelifebetter/storefront-service/internal/pkg/logger"
)

// Store persists the cart line items under a caller-chosen key. Failures are
// tolerated by the engine: a load error yields an empty cart, a save error is
// logged and swallowed.
type Store interface {
	Load(ctx context.Context, key string) ([]LineItem, error)
	Save(ctx context.Context, key string, items []LineItem) error
}

// Subscriber is notified with the full item list after every cart change.
type Subscriber func(items []LineItem)

// Engine is the single source of truth for one shopping cart. All operations
// run synchronously; every mutation writes through to the store and notifies
// subscribers before returning.
type Engine struct {
	store       Store
	key         string
	items       []LineItem
	subscribers []Subscriber
	log         *logger.Logger
}

func NewEngine(store Store, key string, log *logger.Logger) *Engine {
	return &Engine{
		store: store,
		key:   key,
		items: make([]LineItem, 0),
		log:   log,
	}
}

// Subscribe registers a callback fired after every cart change. Load also
// notifies, so UI state can be primed from the persisted cart.
func (e *Engine) Subscribe(fn Subscriber) {
	e.subscribers = append(e.subscribers, fn)
}

// Load reads the persisted cart. A missing or corrupt payload degrades to an
// empty cart; the error is logged and never returned to the caller.
func (e *Engine) Load(ctx context.Context) {
	items, err := e.store.Load(ctx, e.key)
	if err != nil {
		e.log.Warn("Failed to load persisted cart, starting empty", "key", e.key, "error", err)
		items = nil
	}
	if items == nil {
		items = make([]LineItem, 0)
	}
	e.items = items
	e.notify()
}

// AddItem merges the product into the cart. Adding a product that is already
// present increments its quantity; otherwise a new line item snapshots the
// product's name, prices and image at add time. Returns false when the
// product has no identifier.
func (e *Engine) AddItem(ctx context.Context, product catalog.Product, quantity int) bool {
	if product.ID == "" {
		return false
	}
	if quantity < 1 {
		quantity = 1
	}

	merged := false
	for i := range e.items {
		if e.items[i].ProductID == product.ID {
			e.items[i].Quantity += quantity
			merged = true
			break
		}
	}

	if !merged {
		e.items = append(e.items, LineItem{
			ProductID:        product.ID,
			Name:             product.Name,
			UnitPrice:        product.Price,
			PromotionalPrice: product.PromotionalPrice,
			ImageURL:         product.ImageURL,
			Quantity:         quantity,
		})
	}

	e.save(ctx)
	return true
}

// RemoveItem removes the line item at the given position and returns it.
// Returns nil when the index is out of range.
func (e *Engine) RemoveItem(ctx context.Context, index int) *LineItem {
	if index < 0 || index >= len(e.items) {
		return nil
	}

	removed := e.items[index]
	e.items = append(e.items[:index], e.items[index+1:]...)

	e.save(ctx)
	return &removed
}

// UpdateQuantity adds delta to the item's quantity. A resulting quantity of
// zero or less removes the line entirely.
func (e *Engine) UpdateQuantity(ctx context.Context, index, delta int) bool {
	if index < 0 || index >= len(e.items) {
		return false
	}

	e.items[index].Quantity += delta
	if e.items[index].Quantity <= 0 {
		e.items = append(e.items[:index], e.items[index+1:]...)
	}

	e.save(ctx)
	return true
}

// SetQuantity overwrites the item's quantity. Zero or less removes the line.
func (e *Engine) SetQuantity(ctx context.Context, index, quantity int) bool {
	if index < 0 || index >= len(e.items) {
		return false
	}

	if quantity <= 0 {
		e.items = append(e.items[:index], e.items[index+1:]...)
	} else {
		e.items[index].Quantity = quantity
	}

	e.save(ctx)
	return true
}

// Clear empties the cart.
func (e *Engine) Clear(ctx context.Context) {
	e.items = make([]LineItem, 0)
	e.save(ctx)
}

// Items returns a copy of the line items in insertion order.
func (e *Engine) Items() []LineItem {
	items := make([]LineItem, len(e.items))
	copy(items, e.items)
	return items
}

// Count is the sum of quantities across all line items.
func (e *Engine) Count() int {
	count := 0
	for _, item := range e.items {
		count += item.Quantity
	}
	return count
}

// Subtotal is the sum of effective price times quantity across all lines.
func (e *Engine) Subtotal() float64 {
	subtotal := 0.0
	for _, item := range e.items {
		subtotal += item.LineTotal()
	}
	return subtotal
}

func (e *Engine) IsEmpty() bool {
	return len(e.items) == 0
}

// Item returns the line item for the product ID, or nil when absent.
func (e *Engine) Item(productID string) *LineItem {
	for i := range e.items {
		if e.items[i].ProductID == productID {
			item := e.items[i]
			return &item
		}
	}
	return nil
}

func (e *Engine) Contains(productID string) bool {
	return e.Item(productID) != nil
}

// ProductQuantity returns the quantity of the product in the cart, zero when
// the product is not present.
func (e *Engine) ProductQuantity(productID string) int {
	if item := e.Item(productID); item != nil {
		return item.Quantity
	}
	return 0
}

func (e *Engine) save(ctx context.Context) {
	if err := e.store.Save(ctx, e.key, e.items); err != nil {
		e.log.Error("Failed to persist cart", "key", e.key, "error", err)
	}
	e.notify()
}

func (e *Engine) notify() {
	for _, fn := range e.subscribers {
		fn(e.Items())
	}
}
