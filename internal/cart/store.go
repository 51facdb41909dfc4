package cart

import (
	"context"
	"errors"
)

// Store persists carts across sessions. The cart is session-durable but is
// not the system of record once an order exists.
type Store interface {
	// Get retrieves the cart for a session. Returns ErrNotFound when the
	// session has no cart.
	Get(ctx context.Context, sessionID string) (*Cart, error)

	// Put saves the cart under its session id.
	Put(ctx context.Context, c *Cart) error

	// Delete removes the cart for a session.
	Delete(ctx context.Context, sessionID string) error
}

// ErrNotFound is returned by Store.Get when no cart exists for a session.
var ErrNotFound = errors.New("cart not found")
