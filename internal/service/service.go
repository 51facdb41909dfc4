package service

import (
	"context"

	"bigbazar/internal/cart"
	"bigbazar/internal/model"
)

// CartView is the session cart plus its derived totals, recomputed on
// every read.
type CartView struct {
	SessionID  string      `json:"sessionId"`
	Items      []cart.Item `json:"items"`
	SavedItems []cart.Item `json:"savedItems"`
	CouponCode *string     `json:"couponCode,omitempty"`
	Totals     cart.Totals `json:"totals"`
}

// CartService defines the operations on a session's cart aggregate.
type CartService interface {
	// GetCart returns the cart for a session, creating an empty one if needed.
	GetCart(ctx context.Context, sessionID string) (*CartView, error)

	// AddItem adds a product (optionally a specific variant) to the cart,
	// merging quantities when the same pair is already present.
	AddItem(ctx context.Context, sessionID, productID string, variantID *string, quantity int) (*CartView, error)

	// UpdateQuantity sets a line's quantity; below 1 removes the line.
	UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*CartView, error)

	// RemoveItem deletes a line from the cart.
	RemoveItem(ctx context.Context, sessionID, itemID string) (*CartView, error)

	// SaveForLater moves a cart line to the saved collection.
	SaveForLater(ctx context.Context, sessionID, itemID string) (*CartView, error)

	// MoveToCart moves a saved line back into the cart.
	MoveToCart(ctx context.Context, sessionID, itemID string) (*CartView, error)

	// RemoveSavedItem deletes a line from the saved collection.
	RemoveSavedItem(ctx context.Context, sessionID, itemID string) (*CartView, error)

	// ClearCart empties the cart and removes any applied coupon.
	ClearCart(ctx context.Context, sessionID string) (*CartView, error)

	// ApplyCoupon evaluates a code against the current cart contents and
	// applies it on success; the cart is unchanged on rejection.
	ApplyCoupon(ctx context.Context, sessionID, code string) (*CartView, error)

	// RemoveCoupon clears the applied coupon.
	RemoveCoupon(ctx context.Context, sessionID string) (*CartView, error)
}

// OrderService defines the settlement and order read operations.
type OrderService interface {
	// CreateOrder converts a priced cart into a durable order and reserves
	// inventory as one atomic transaction. userID is nil for guest checkouts.
	CreateOrder(ctx context.Context, userID *string, req *model.OrderRequest) (*model.Order, error)

	// ListOrders retrieves all orders for an authenticated owner, newest first.
	ListOrders(ctx context.Context, userID string) ([]model.Order, error)

	// GetByOrderNumber retrieves a single order by its order number.
	GetByOrderNumber(ctx context.Context, orderNumber string) (*model.Order, error)

	// UpdateStatus moves an order through its status state machine.
	UpdateStatus(ctx context.Context, orderNumber string, req *model.StatusUpdateRequest) (*model.Order, error)
}
