package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus enumerates the order lifecycle states.
type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusConfirmed  OrderStatus = "CONFIRMED"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusShipped    OrderStatus = "SHIPPED"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCancelled  OrderStatus = "CANCELLED"
	StatusRefunded   OrderStatus = "REFUNDED"
)

// nextStatus maps each status to the next state on the happy path.
var nextStatus = map[OrderStatus]OrderStatus{
	StatusPending:    StatusConfirmed,
	StatusConfirmed:  StatusProcessing,
	StatusProcessing: StatusShipped,
	StatusShipped:    StatusDelivered,
}

// CanTransition reports whether an order may move from one status to another.
// The happy path is forward-only; CANCELLED and REFUNDED are reachable from
// any state before DELIVERED. DELIVERED, CANCELLED and REFUNDED are terminal.
func CanTransition(from, to OrderStatus) bool {
	switch from {
	case StatusDelivered, StatusCancelled, StatusRefunded:
		return false
	}
	if to == StatusCancelled || to == StatusRefunded {
		return true
	}
	return nextStatus[from] == to
}

// PaymentStatus enumerates payment settlement states.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
)

// PaymentMethodCOD is the only method that leaves payment pending at
// order creation; every other method is recorded as already paid.
const PaymentMethodCOD = "CASH_ON_DELIVERY"

// DerivePaymentStatus returns the payment status recorded at order creation
// for the given payment method.
func DerivePaymentStatus(method string) PaymentStatus {
	if method == PaymentMethodCOD {
		return PaymentPending
	}
	return PaymentPaid
}

// GuestInfo carries the inline identity bundle for orders placed without
// an authenticated user.
type GuestInfo struct {
	Name    string `json:"name" db:"guest_name"`
	Email   string `json:"email" db:"guest_email"`
	Phone   string `json:"phone" db:"guest_phone"`
	Address string `json:"address" db:"guest_address"`
}

// Order represents a settled customer order. Monetary fields are an
// immutable financial record once the order exists; only status, tracking
// and notes may change afterwards.
type Order struct {
	ID                uuid.UUID       `json:"id" db:"id"`
	OrderNumber       string          `json:"orderNumber" db:"order_number"`
	UserID            *string         `json:"userId,omitempty" db:"user_id"`
	Guest             *GuestInfo      `json:"guest,omitempty"`
	ShippingAddressID *string         `json:"shippingAddressId,omitempty" db:"shipping_address_id"`
	Items             []OrderItem     `json:"items"`
	Subtotal          decimal.Decimal `json:"subtotal" db:"subtotal"`
	ShippingCost      decimal.Decimal `json:"shippingCost" db:"shipping_cost"`
	TaxAmount         decimal.Decimal `json:"taxAmount" db:"tax_amount"`
	DiscountAmount    decimal.Decimal `json:"discountAmount" db:"discount_amount"`
	TotalAmount       decimal.Decimal `json:"totalAmount" db:"total_amount"`
	Status            OrderStatus     `json:"status" db:"status"`
	PaymentMethod     string          `json:"paymentMethod" db:"payment_method"`
	PaymentStatus     PaymentStatus   `json:"paymentStatus" db:"payment_status"`
	CouponCode        *string         `json:"couponCode,omitempty" db:"coupon_code"`
	TrackingNumber    *string         `json:"trackingNumber,omitempty" db:"tracking_number"`
	AdminNotes        *string         `json:"adminNotes,omitempty" db:"admin_notes"`
	EstimatedDelivery *time.Time      `json:"estimatedDelivery,omitempty" db:"estimated_delivery"`
	CreatedAt         time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time       `json:"updatedAt" db:"updated_at"`
}

// OrderItem is an immutable order line. Name, SKU and variant name are
// snapshotted at order time so later catalogue edits cannot alter history.
type OrderItem struct {
	ID          uuid.UUID       `json:"-" db:"id"`
	OrderID     uuid.UUID       `json:"-" db:"order_id"`
	ProductID   string          `json:"productId" db:"product_id"`
	VariantID   *string         `json:"variantId,omitempty" db:"variant_id"`
	Name        string          `json:"name" db:"name"`
	SKU         string          `json:"sku" db:"sku"`
	VariantName *string         `json:"variantName,omitempty" db:"variant_name"`
	Quantity    int             `json:"quantity" db:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice" db:"unit_price"`
	TotalPrice  decimal.Decimal `json:"totalPrice" db:"total_price"`
}

// OrderRequest is the checkout payload. The monetary fields are the
// client's view of the priced cart; settlement recomputes them from the
// catalogue and coupon store and rejects on divergence.
type OrderRequest struct {
	Items             []OrderItemRequest `json:"items"`
	ShippingAddressID *string            `json:"shippingAddressId,omitempty"`
	Guest             *GuestInfo         `json:"guest,omitempty"`
	PaymentMethod     string             `json:"paymentMethod"`
	Subtotal          decimal.Decimal    `json:"subtotal"`
	ShippingCost      decimal.Decimal    `json:"shippingCost"`
	TaxAmount         decimal.Decimal    `json:"taxAmount"`
	DiscountAmount    decimal.Decimal    `json:"discountAmount"`
	TotalAmount       decimal.Decimal    `json:"totalAmount"`
	CouponCode        *string            `json:"couponCode,omitempty"`
}

// OrderItemRequest is a single cart line in a checkout payload.
type OrderItemRequest struct {
	ProductID string  `json:"productId"`
	VariantID *string `json:"variantId,omitempty"`
	Quantity  int     `json:"quantity"`
}

// StatusUpdateRequest is the admin payload for moving an order through
// its state machine.
type StatusUpdateRequest struct {
	Status         OrderStatus `json:"status"`
	TrackingNumber *string     `json:"trackingNumber,omitempty"`
	AdminNotes     *string     `json:"adminNotes,omitempty"`
}
