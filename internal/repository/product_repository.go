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

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := `
		SELECT id, name, sku, base_price, sale_price, stock_quantity, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var p model.Product
	var salePrice decimal.NullDecimal
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.SKU,
		&p.BasePrice,
		&salePrice,
		&p.StockQuantity,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	if salePrice.Valid {
		p.SalePrice = &salePrice.Decimal
	}

	return &p, nil
}

// GetVariant retrieves a single product variant by its ID.
func (r *productRepository) GetVariant(ctx context.Context, id string) (*model.ProductVariant, error) {
	query := `
		SELECT id, product_id, name, price_adjustment, stock_quantity
		FROM product_variants
		WHERE id = $1
	`

	var v model.ProductVariant
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&v.ID,
		&v.ProductID,
		&v.Name,
		&v.PriceAdjustment,
		&v.StockQuantity,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("variant_id", id).Msg("variant not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("variant_id", id).Msg("failed to query variant")
		return nil, fmt.Errorf("failed to query variant: %w", err)
	}

	return &v, nil
}

// DecrementStock atomically decrements a product's stock within the provided
// transaction. The conditional update guards against concurrent oversell: if
// the remaining stock does not cover the quantity, no row matches and the
// settlement fails instead of driving stock negative.
func (r *productRepository) DecrementStock(ctx context.Context, tx pgx.Tx, productID string, quantity int) error {
	query := `
		UPDATE products
		SET stock_quantity = stock_quantity - $2, updated_at = NOW()
		WHERE id = $1 AND stock_quantity >= $2
	`

	tag, err := tx.Exec(ctx, query, productID, quantity)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("product_id", productID).
			Int("quantity", quantity).
			Msg("failed to decrement product stock")
		return fmt.Errorf("failed to decrement stock for product %s: %w", productID, err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Warn().
			Str("product_id", productID).
			Int("quantity", quantity).
			Msg("insufficient product stock")
		return model.ErrInsufficientStock
	}

	return nil
}

// DecrementVariantStock is the conditional decrement for a variant's stock.
func (r *productRepository) DecrementVariantStock(ctx context.Context, tx pgx.Tx, variantID string, quantity int) error {
	query := `
		UPDATE product_variants
		SET stock_quantity = stock_quantity - $2
		WHERE id = $1 AND stock_quantity >= $2
	`

	tag, err := tx.Exec(ctx, query, variantID, quantity)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("variant_id", variantID).
			Int("quantity", quantity).
			Msg("failed to decrement variant stock")
		return fmt.Errorf("failed to decrement stock for variant %s: %w", variantID, err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Warn().
			Str("variant_id", variantID).
			Int("quantity", quantity).
			Msg("insufficient variant stock")
		return model.ErrInsufficientStock
	}

	return nil
}
