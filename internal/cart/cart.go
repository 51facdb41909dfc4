package cart

import (
	"time"

	"bigbazar/internal/coupon"
	"bigbazar/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is one cart line. Pricing fields are snapshotted from the catalogue
// at add time; the cart is allowed to go stale relative to inventory, stock
// is enforced only at settlement.
type Item struct {
	ID              string           `json:"id"`
	ProductID       string           `json:"productId"`
	VariantID       *string          `json:"variantId,omitempty"`
	Name            string           `json:"name"`
	SKU             string           `json:"sku"`
	VariantName     *string          `json:"variantName,omitempty"`
	Quantity        int              `json:"quantity"`
	BasePrice       decimal.Decimal  `json:"basePrice"`
	SalePrice       *decimal.Decimal `json:"salePrice,omitempty"`
	PriceAdjustment decimal.Decimal  `json:"priceAdjustment"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// EffectivePrice returns the unit price for the line:
// (sale price if set, else base price) plus the variant adjustment.
func (i *Item) EffectivePrice() decimal.Decimal {
	price := i.BasePrice
	if i.SalePrice != nil {
		price = *i.SalePrice
	}
	return price.Add(i.PriceAdjustment)
}

// LineTotal returns the effective price multiplied by the quantity.
func (i *Item) LineTotal() decimal.Decimal {
	return i.EffectivePrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the in-session aggregate of intended purchases plus the
// "save for later" collection and at most one applied coupon code.
// It is mutated synchronously by a single session; totals are derived,
// never stored.
type Cart struct {
	SessionID  string    `json:"sessionId"`
	Items      []Item    `json:"items"`
	Saved      []Item    `json:"savedItems"`
	CouponCode *string   `json:"couponCode,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// New creates an empty cart for a session.
func New(sessionID string) *Cart {
	now := time.Now()
	return &Cart{
		SessionID: sessionID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddParams carries the catalogue snapshot for a new cart line.
type AddParams struct {
	ProductID       string
	VariantID       *string
	Name            string
	SKU             string
	VariantName     *string
	Quantity        int
	BasePrice       decimal.Decimal
	SalePrice       *decimal.Decimal
	PriceAdjustment decimal.Decimal
}

// AddItem inserts a new line or merges into an existing line with the same
// (product, variant) pair. Quantities below 1 are clamped to 1 so the cart
// stays valid regardless of caller input.
func (c *Cart) AddItem(p AddParams) *Item {
	qty := p.Quantity
	if qty < 1 {
		qty = 1
	}

	now := time.Now()
	if existing := c.findItem(p.ProductID, p.VariantID); existing != nil {
		existing.Quantity += qty
		existing.UpdatedAt = now
		c.UpdatedAt = now
		return existing
	}

	c.Items = append(c.Items, Item{
		ID:              uuid.NewString(),
		ProductID:       p.ProductID,
		VariantID:       p.VariantID,
		Name:            p.Name,
		SKU:             p.SKU,
		VariantName:     p.VariantName,
		Quantity:        qty,
		BasePrice:       p.BasePrice,
		SalePrice:       p.SalePrice,
		PriceAdjustment: p.PriceAdjustment,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	c.UpdatedAt = now
	return &c.Items[len(c.Items)-1]
}

// RemoveItem deletes a line; removing an absent id is a no-op.
func (c *Cart) RemoveItem(itemID string) {
	c.Items = removeByID(c.Items, itemID)
	c.UpdatedAt = time.Now()
}

// UpdateQuantity sets a line's quantity. A quantity below 1 removes the
// line instead, per the cart invariant that quantity is always >= 1.
func (c *Cart) UpdateQuantity(itemID string, quantity int) {
	if quantity < 1 {
		c.RemoveItem(itemID)
		return
	}
	for idx := range c.Items {
		if c.Items[idx].ID == itemID {
			now := time.Now()
			c.Items[idx].Quantity = quantity
			c.Items[idx].UpdatedAt = now
			c.UpdatedAt = now
			return
		}
	}
}

// SaveForLater transfers a line from the cart to the saved collection,
// preserving its id, snapshot and quantity. Returns false if the id is
// not in the cart.
func (c *Cart) SaveForLater(itemID string) bool {
	item, rest := takeByID(c.Items, itemID)
	if item == nil {
		return false
	}
	c.Items = rest
	c.Saved = append(c.Saved, *item)
	c.UpdatedAt = time.Now()
	return true
}

// MoveToCart transfers a saved line back into the cart unchanged.
// Returns false if the id is not in the saved collection.
func (c *Cart) MoveToCart(itemID string) bool {
	item, rest := takeByID(c.Saved, itemID)
	if item == nil {
		return false
	}
	c.Saved = rest
	c.Items = append(c.Items, *item)
	c.UpdatedAt = time.Now()
	return true
}

// RemoveSavedItem deletes a line from the saved collection; no-op if absent.
func (c *Cart) RemoveSavedItem(itemID string) {
	c.Saved = removeByID(c.Saved, itemID)
	c.UpdatedAt = time.Now()
}

// Clear empties the cart and removes any applied coupon. Saved items are
// untouched.
func (c *Cart) Clear() {
	c.Items = nil
	c.CouponCode = nil
	c.UpdatedAt = time.Now()
}

// SetCoupon replaces the applied coupon code. The code must already be
// normalized and validated by the caller.
func (c *Cart) SetCoupon(code string) {
	c.CouponCode = &code
	c.UpdatedAt = time.Now()
}

// RemoveCoupon clears the applied coupon code.
func (c *Cart) RemoveCoupon() {
	c.CouponCode = nil
	c.UpdatedAt = time.Now()
}

// Subtotal is the sum of line totals over the cart items (saved items do
// not count). Recomputed on every call.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for idx := range c.Items {
		subtotal = subtotal.Add(c.Items[idx].LineTotal())
	}
	return subtotal
}

// PricingRules are the shipping rules applied when deriving totals.
type PricingRules struct {
	FlatShippingRate      decimal.Decimal
	FreeShippingThreshold decimal.Decimal
}

// Totals is the derived monetary view of a cart.
type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	ShippingCost   decimal.Decimal `json:"shippingCost"`
	Total          decimal.Decimal `json:"total"`
}

// ComputeTotals derives the cart's monetary totals. The coupon argument is
// the definition matching the applied code, or nil; a coupon that fails the
// rule chain for the current subtotal contributes nothing. The total is
// floored at zero and the discount never exceeds the subtotal.
func (c *Cart) ComputeTotals(cpn *model.Coupon, rules PricingRules, now time.Time) Totals {
	subtotal := c.Subtotal()

	if cpn != nil && coupon.Check(cpn, subtotal, now) != nil {
		cpn = nil
	}

	discount := coupon.DiscountAmount(cpn, subtotal)

	shipping := decimal.Zero
	switch {
	case len(c.Items) == 0:
		// nothing to ship
	case coupon.GrantsFreeShipping(cpn, subtotal):
	case subtotal.GreaterThanOrEqual(rules.FreeShippingThreshold):
	default:
		shipping = rules.FlatShippingRate
	}

	total := subtotal.Sub(discount).Add(shipping)
	if total.IsNegative() {
		total = decimal.Zero
	}

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		ShippingCost:   shipping,
		Total:          total,
	}
}

func (c *Cart) findItem(productID string, variantID *string) *Item {
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID && sameVariant(c.Items[idx].VariantID, variantID) {
			return &c.Items[idx]
		}
	}
	return nil
}

func sameVariant(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func removeByID(items []Item, id string) []Item {
	for idx := range items {
		if items[idx].ID == id {
			return append(items[:idx], items[idx+1:]...)
		}
	}
	return items
}

func takeByID(items []Item, id string) (*Item, []Item) {
	for idx := range items {
		if items[idx].ID == id {
			item := items[idx]
			return &item, append(items[:idx], items[idx+1:]...)
		}
	}
	return nil, items
}
