package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"bigbazar/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, a connection pool and
// applies the embedded schema migrations.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	if err := database.Migrate(pool, zerolog.Nop()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SeedCatalog inserts test products, variants and coupons.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	products := []struct {
		id, name, sku string
		basePrice     string
		salePrice     *string
		stock         int
	}{
		{"P001", "Cotton Panjabi", "PAN-001", "999.00", nil, 10},
		{"P002", "Denim Jeans", "JNS-002", "1899.00", nil, 5},
		{"P003", "Leather Sandal", "SND-003", "2499.00", strPtr("1999.00"), 3},
	}

	for _, p := range products {
		_, err := pool.Exec(ctx,
			"INSERT INTO products (id, name, sku, base_price, sale_price, stock_quantity) VALUES ($1, $2, $3, $4, $5, $6)",
			p.id, p.name, p.sku, p.basePrice, p.salePrice, p.stock,
		)
		if err != nil {
			t.Fatalf("failed to seed product %s: %v", p.id, err)
		}
	}

	variants := []struct {
		id, productID, name string
		adjustment          string
		stock               int
	}{
		{"V001", "P001", "Size M", "0.00", 4},
		{"V002", "P001", "Size XL", "100.00", 2},
	}

	for _, v := range variants {
		_, err := pool.Exec(ctx,
			"INSERT INTO product_variants (id, product_id, name, price_adjustment, stock_quantity) VALUES ($1, $2, $3, $4, $5)",
			v.id, v.productID, v.name, v.adjustment, v.stock,
		)
		if err != nil {
			t.Fatalf("failed to seed variant %s: %v", v.id, err)
		}
	}

	now := time.Now()
	coupons := []struct {
		code, discountType string
		value, minOrder    string
		usageLimit         *int
	}{
		{"EID500", "FIXED_AMOUNT", "500.00", "1000.00", intPtr(100)},
		{"SAVE10", "PERCENTAGE", "10.00", "0.00", nil},
		{"LASTONE", "FIXED_AMOUNT", "100.00", "0.00", intPtr(1)},
		{"FREESHIP", "FREE_SHIPPING", "0.00", "1000.00", nil},
	}

	for _, c := range coupons {
		_, err := pool.Exec(ctx,
			"INSERT INTO coupons (code, discount_type, discount_value, min_order_amount, usage_limit, start_date, end_date, is_active) VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)",
			c.code, c.discountType, c.value, c.minOrder, c.usageLimit, now.Add(-24*time.Hour), now.Add(24*time.Hour),
		)
		if err != nil {
			t.Fatalf("failed to seed coupon %s: %v", c.code, err)
		}
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"order_items", "orders", "coupons", "product_variants", "products"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
