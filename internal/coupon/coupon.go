package coupon

import (
	"context"
	"time"

	"bigbazar/internal/model"

	"github.com/shopspring/decimal"
)

// Source is a read-only view of the marketing coupon store.
type Source interface {
	// GetByCode retrieves a coupon definition by its normalized code.
	// Returns nil without error when no such coupon exists.
	GetByCode(ctx context.Context, code string) (*model.Coupon, error)
}

// Evaluator decides whether a code is redeemable against a cart subtotal.
// It never mutates coupon state; usage counting happens only inside the
// settlement transaction.
type Evaluator interface {
	// Evaluate normalizes the code, looks it up and runs the rule chain.
	// On success the coupon definition is returned unchanged; on rejection
	// the error is a *model.DomainError naming the first failing rule.
	Evaluate(ctx context.Context, code string, subtotal decimal.Decimal, now time.Time) (*model.Coupon, error)
}
