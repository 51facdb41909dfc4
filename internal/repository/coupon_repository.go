package repository

import (
	"context"
	"fmt"

	"bigbazar/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// couponRepository implements the CouponRepository interface using PostgreSQL.
type couponRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCouponRepository creates a new PostgreSQL-backed coupon repository.
func NewCouponRepository(pool *pgxpool.Pool, logger zerolog.Logger) CouponRepository {
	return &couponRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "coupon").Logger(),
	}
}

// GetByCode retrieves a coupon by its normalized code.
func (r *couponRepository) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	query := `
		SELECT code, discount_type, discount_value, max_discount_amount,
		       min_order_amount, usage_limit, current_usage,
		       start_date, end_date, is_active
		FROM coupons
		WHERE code = $1
	`

	var c model.Coupon
	var maxDiscount decimal.NullDecimal
	var usageLimit *int
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&c.Code,
		&c.DiscountType,
		&c.DiscountValue,
		&maxDiscount,
		&c.MinOrderAmount,
		&usageLimit,
		&c.CurrentUsage,
		&c.StartDate,
		&c.EndDate,
		&c.IsActive,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("coupon_code", code).Msg("coupon not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("coupon_code", code).Msg("failed to query coupon")
		return nil, fmt.Errorf("failed to query coupon: %w", err)
	}

	if maxDiscount.Valid {
		c.MaxDiscountAmount = &maxDiscount.Decimal
	}
	c.UsageLimit = usageLimit

	return &c, nil
}

// IncrementUsage increments a coupon's redemption counter within the
// provided transaction. The usage limit is enforced in the same statement
// so two concurrent settlements cannot both redeem the last use of a
// limited coupon.
func (r *couponRepository) IncrementUsage(ctx context.Context, tx pgx.Tx, code string) error {
	query := `
		UPDATE coupons
		SET current_usage = current_usage + 1
		WHERE code = $1 AND (usage_limit IS NULL OR current_usage < usage_limit)
	`

	tag, err := tx.Exec(ctx, query, code)
	if err != nil {
		r.logger.Error().Err(err).Str("coupon_code", code).Msg("failed to increment coupon usage")
		return fmt.Errorf("failed to increment usage for coupon %s: %w", code, err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Warn().Str("coupon_code", code).Msg("coupon usage limit exhausted")
		return model.ErrCouponLimitReached
	}

	r.logger.Debug().Str("coupon_code", code).Msg("coupon usage incremented")

	return nil
}
