package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountType enumerates the supported coupon effects.
type DiscountType string

const (
	DiscountPercentage   DiscountType = "PERCENTAGE"
	DiscountFixedAmount  DiscountType = "FIXED_AMOUNT"
	DiscountFreeShipping DiscountType = "FREE_SHIPPING"
)

// Coupon represents a marketing coupon definition. It is owned by the
// marketing subsystem; this engine reads it and increments CurrentUsage
// exactly once per successful settlement.
type Coupon struct {
	Code              string           `json:"code" db:"code"`
	DiscountType      DiscountType     `json:"discountType" db:"discount_type"`
	DiscountValue     decimal.Decimal  `json:"discountValue" db:"discount_value"`
	MaxDiscountAmount *decimal.Decimal `json:"maxDiscountAmount,omitempty" db:"max_discount_amount"`
	MinOrderAmount    decimal.Decimal  `json:"minOrderAmount" db:"min_order_amount"`
	UsageLimit        *int             `json:"usageLimit,omitempty" db:"usage_limit"`
	CurrentUsage      int              `json:"currentUsage" db:"current_usage"`
	StartDate         time.Time        `json:"startDate" db:"start_date"`
	EndDate           time.Time        `json:"endDate" db:"end_date"`
	IsActive          bool             `json:"isActive" db:"is_active"`
}
