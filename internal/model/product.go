package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalogue product.
type Product struct {
	ID            string           `json:"id" db:"id"`
	Name          string           `json:"name" db:"name"`
	SKU           string           `json:"sku" db:"sku"`
	BasePrice     decimal.Decimal  `json:"basePrice" db:"base_price"`
	SalePrice     *decimal.Decimal `json:"salePrice,omitempty" db:"sale_price"`
	StockQuantity int              `json:"stockQuantity" db:"stock_quantity"`
	CreatedAt     time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time        `json:"updatedAt" db:"updated_at"`
}

// EffectivePrice returns the price a customer pays for the base product:
// the sale price when one is set, the base price otherwise.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.BasePrice
}

// ProductVariant represents a purchasable variation of a product
// (size, colour) with its own stock and price adjustment.
type ProductVariant struct {
	ID              string          `json:"id" db:"id"`
	ProductID       string          `json:"productId" db:"product_id"`
	Name            string          `json:"name" db:"name"`
	PriceAdjustment decimal.Decimal `json:"priceAdjustment" db:"price_adjustment"`
	StockQuantity   int             `json:"stockQuantity" db:"stock_quantity"`
}

// CatalogLine is the authoritative pricing view for one (product, variant)
// pair at settlement time.
type CatalogLine struct {
	Product *Product
	Variant *ProductVariant
}

// UnitPrice returns the effective unit price including any variant adjustment.
func (l *CatalogLine) UnitPrice() decimal.Decimal {
	price := l.Product.EffectivePrice()
	if l.Variant != nil {
		price = price.Add(l.Variant.PriceAdjustment)
	}
	return price
}
