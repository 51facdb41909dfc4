package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"bigbazar/internal/config"
	"bigbazar/internal/database"
)

// seedData populates the catalogue and coupon tables with sample rows for
// local development. Existing rows are left untouched.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := config.NewLogger(cfg.Logger)

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(pool, logger); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	products := []struct {
		id, name, sku string
		basePrice     string
		salePrice     *string
		stock         int
	}{
		{"P001", "Cotton Panjabi", "PAN-001", "1499.00", strPtr("999.00"), 50},
		{"P002", "Denim Jeans", "JNS-002", "1899.00", nil, 30},
		{"P003", "Leather Sandal", "SND-003", "2499.00", nil, 20},
		{"P004", "Jamdani Saree", "SAR-004", "4999.00", strPtr("4499.00"), 10},
	}

	for _, p := range products {
		_, err := pool.Exec(ctx, `
			INSERT INTO products (id, name, sku, base_price, sale_price, stock_quantity)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO NOTHING
		`, p.id, p.name, p.sku, p.basePrice, p.salePrice, p.stock)
		if err != nil {
			log.Fatalf("Failed to seed product %s: %v", p.id, err)
		}
	}

	variants := []struct {
		id, productID, name string
		adjustment          string
		stock               int
	}{
		{"V001", "P001", "Size M", "0.00", 20},
		{"V002", "P001", "Size XL", "100.00", 15},
		{"V003", "P002", "Waist 32", "0.00", 12},
	}

	for _, v := range variants {
		_, err := pool.Exec(ctx, `
			INSERT INTO product_variants (id, product_id, name, price_adjustment, stock_quantity)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING
		`, v.id, v.productID, v.name, v.adjustment, v.stock)
		if err != nil {
			log.Fatalf("Failed to seed variant %s: %v", v.id, err)
		}
	}

	now := time.Now()
	coupons := []struct {
		code, discountType string
		value              string
		minOrder           string
		usageLimit         *int
	}{
		{"EID500", "FIXED_AMOUNT", "500.00", "1000.00", intPtr(100)},
		{"SAVE10", "PERCENTAGE", "10.00", "0.00", nil},
		{"FREESHIP", "FREE_SHIPPING", "0.00", "1000.00", nil},
	}

	for _, c := range coupons {
		_, err := pool.Exec(ctx, `
			INSERT INTO coupons (code, discount_type, discount_value, min_order_amount, usage_limit, start_date, end_date, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
			ON CONFLICT (code) DO NOTHING
		`, c.code, c.discountType, c.value, c.minOrder, c.usageLimit, now.AddDate(0, -1, 0), now.AddDate(1, 0, 0))
		if err != nil {
			log.Fatalf("Failed to seed coupon %s: %v", c.code, err)
		}
	}

	fmt.Println("Sample data seeded")
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
