package coupon

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bigbazar/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// Normalize canonicalizes a coupon code before storage and evaluation.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Check runs the redemption rule chain against a coupon definition.
// The first failing rule wins, in this fixed order: existence, kill-switch,
// validity window, usage limit, minimum order amount. A nil error means the
// coupon is redeemable for the given subtotal at the given instant.
func Check(c *model.Coupon, subtotal decimal.Decimal, now time.Time) error {
	if c == nil {
		return model.ErrUnknownCoupon
	}

	if !c.IsActive {
		return model.ErrCouponInactive
	}

	if now.Before(c.StartDate) {
		return model.ErrCouponNotYetValid
	}
	if !now.Before(c.EndDate) {
		return model.ErrCouponExpired
	}

	if c.UsageLimit != nil && c.CurrentUsage >= *c.UsageLimit {
		return model.ErrCouponLimitReached
	}

	if subtotal.LessThan(c.MinOrderAmount) {
		shortfall := c.MinOrderAmount.Sub(subtotal)
		return model.NewDomainError(
			model.ErrCodeBelowMinimum,
			fmt.Sprintf("Add ৳%s more to use this coupon", shortfall.StringFixed(2)),
		)
	}

	return nil
}

// DiscountAmount computes the subtotal discount a redeemable coupon grants.
// PERCENTAGE discounts may be capped by the coupon's max discount ceiling;
// FIXED_AMOUNT discounts never exceed the subtotal; FREE_SHIPPING coupons
// zero the shipping cost instead and discount nothing here.
func DiscountAmount(c *model.Coupon, subtotal decimal.Decimal) decimal.Decimal {
	if c == nil {
		return decimal.Zero
	}

	switch c.DiscountType {
	case model.DiscountPercentage:
		discount := subtotal.Mul(c.DiscountValue).Div(oneHundred)
		if c.MaxDiscountAmount != nil && discount.GreaterThan(*c.MaxDiscountAmount) {
			discount = *c.MaxDiscountAmount
		}
		if discount.GreaterThan(subtotal) {
			discount = subtotal
		}
		return discount
	case model.DiscountFixedAmount:
		if c.DiscountValue.GreaterThan(subtotal) {
			return subtotal
		}
		return c.DiscountValue
	default:
		return decimal.Zero
	}
}

// GrantsFreeShipping reports whether the coupon waives shipping for the
// given subtotal.
func GrantsFreeShipping(c *model.Coupon, subtotal decimal.Decimal) bool {
	if c == nil || c.DiscountType != model.DiscountFreeShipping {
		return false
	}
	return subtotal.GreaterThanOrEqual(c.MinOrderAmount)
}

// evaluator implements Evaluator against a coupon Source.
type evaluator struct {
	source Source
	logger zerolog.Logger
}

// NewEvaluator creates a new coupon evaluator.
func NewEvaluator(source Source, logger zerolog.Logger) Evaluator {
	return &evaluator{
		source: source,
		logger: logger.With().Str("component", "coupon-evaluator").Logger(),
	}
}

// Evaluate normalizes and looks up the code, then runs the rule chain.
func (e *evaluator) Evaluate(ctx context.Context, code string, subtotal decimal.Decimal, now time.Time) (*model.Coupon, error) {
	normalized := Normalize(code)
	if normalized == "" {
		return nil, model.ErrUnknownCoupon
	}

	c, err := e.source.GetByCode(ctx, normalized)
	if err != nil {
		e.logger.Error().Err(err).Str("coupon_code", normalized).Msg("failed to load coupon")
		return nil, fmt.Errorf("failed to load coupon %s: %w", normalized, err)
	}

	if err := Check(c, subtotal, now); err != nil {
		e.logger.Debug().
			Str("coupon_code", normalized).
			Str("subtotal", subtotal.String()).
			Err(err).
			Msg("coupon rejected")
		return nil, err
	}

	e.logger.Debug().
		Str("coupon_code", normalized).
		Str("discount_type", string(c.DiscountType)).
		Msg("coupon validated")

	return c, nil
}
