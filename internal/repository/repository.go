package repository

import (
	"context"

	"bigbazar/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for catalogue data access.
type ProductRepository interface {
	// GetByID retrieves a single product by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetVariant retrieves a single product variant by its ID. Returns nil
	// when absent.
	GetVariant(ctx context.Context, id string) (*model.ProductVariant, error)

	// DecrementStock atomically decrements a product's stock within the
	// provided transaction. Fails with model.ErrInsufficientStock when the
	// remaining stock does not cover the quantity.
	DecrementStock(ctx context.Context, tx pgx.Tx, productID string, quantity int) error

	// DecrementVariantStock is DecrementStock for a variant's stock column.
	DecrementVariantStock(ctx context.Context, tx pgx.Tx, variantID string, quantity int) error
}

// CouponRepository defines the interface for coupon data access. Reads
// satisfy coupon.Source; the only write this engine performs is the usage
// increment inside a settlement transaction.
type CouponRepository interface {
	// GetByCode retrieves a coupon by its normalized code. Returns nil
	// when absent.
	GetByCode(ctx context.Context, code string) (*model.Coupon, error)

	// IncrementUsage increments a coupon's redemption counter within the
	// provided transaction, guarded by the usage limit. Fails with
	// model.ErrCouponLimitReached when the limit is already exhausted.
	IncrementUsage(ctx context.Context, tx pgx.Tx, code string) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByOrderNumber retrieves an order with its items by the externally
	// visible order number. Returns nil when absent.
	GetByOrderNumber(ctx context.Context, orderNumber string) (*model.Order, error)

	// ListByUser retrieves all orders for an authenticated owner, newest
	// first, with items attached.
	ListByUser(ctx context.Context, userID string) ([]model.Order, error)

	// UpdateStatus sets an order's status and optional tracking fields.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus, trackingNumber, adminNotes *string) error
}
