package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"bigbazar/internal/cart"
	"bigbazar/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if tx, ok := args.Get(0).(pgx.Tx); ok {
		return tx, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	args := m.Called(ctx, tx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error {
	args := m.Called(ctx, tx, items)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus, trackingNumber, adminNotes *string) error {
	args := m.Called(ctx, id, status, trackingNumber, adminNotes)
	return args.Error(0)
}

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) GetVariant(ctx context.Context, id string) (*model.ProductVariant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProductVariant), args.Error(1)
}

func (m *MockProductRepository) DecrementStock(ctx context.Context, tx pgx.Tx, productID string, quantity int) error {
	args := m.Called(ctx, tx, productID, quantity)
	return args.Error(0)
}

func (m *MockProductRepository) DecrementVariantStock(ctx context.Context, tx pgx.Tx, variantID string, quantity int) error {
	args := m.Called(ctx, tx, variantID, quantity)
	return args.Error(0)
}

// MockCouponRepository is a mock implementation of CouponRepository
type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Coupon), args.Error(1)
}

func (m *MockCouponRepository) IncrementUsage(ctx context.Context, tx pgx.Tx, code string) error {
	args := m.Called(ctx, tx, code)
	return args.Error(0)
}

// MockEvaluator is a mock implementation of coupon.Evaluator
type MockEvaluator struct {
	mock.Mock
}

func (m *MockEvaluator) Evaluate(ctx context.Context, code string, subtotal decimal.Decimal, now time.Time) (*model.Coupon, error) {
	args := m.Called(ctx, code, subtotal, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Coupon), args.Error(1)
}

// MockTx is a minimal mock implementation of pgx.Tx for testing.
type MockTx struct {
	mock.Mock
	committed  bool
	rolledBack bool
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	m.committed = true
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	m.rolledBack = true
	return args.Error(0)
}

// Stub methods to satisfy pgx.Tx interface - these are not used in our tests
func (m *MockTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (m *MockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (m *MockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (m *MockTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (m *MockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (m *MockTx) Exec(ctx context.Context, sql string, arguments ...any) (commandTag pgconn.CommandTag, err error) {
	return
}
func (m *MockTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (m *MockTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (m *MockTx) Conn() *pgx.Conn                                               { return nil }

var testRules = cart.PricingRules{
	FlatShippingRate:      decimal.NewFromInt(150),
	FreeShippingThreshold: decimal.NewFromInt(2000),
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func strPtr(s string) *string {
	return &s
}

func decEq(expected string) any {
	want := dec(expected)
	return mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(want)
	})
}

func testProduct() *model.Product {
	return &model.Product{
		ID:            "P001",
		Name:          "Cotton Panjabi",
		SKU:           "PAN-001",
		BasePrice:     dec("999"),
		StockQuantity: 50,
	}
}

// checkoutRequest builds a two-unit P001 request with matching client totals.
func checkoutRequest() *model.OrderRequest {
	return &model.OrderRequest{
		Items: []model.OrderItemRequest{
			{ProductID: "P001", Quantity: 2},
		},
		PaymentMethod:  "BKASH",
		Subtotal:       dec("1998"),
		ShippingCost:   dec("150"),
		TaxAmount:      dec("0"),
		DiscountAmount: dec("0"),
		TotalAmount:    dec("2148"),
	}
}

type orderServiceMocks struct {
	orderRepo   *MockOrderRepository
	productRepo *MockProductRepository
	couponRepo  *MockCouponRepository
	evaluator   *MockEvaluator
	tx          *MockTx
}

func newOrderService(taxRate decimal.Decimal) (OrderService, *orderServiceMocks) {
	m := &orderServiceMocks{
		orderRepo:   new(MockOrderRepository),
		productRepo: new(MockProductRepository),
		couponRepo:  new(MockCouponRepository),
		evaluator:   new(MockEvaluator),
		tx:          new(MockTx),
	}
	svc := NewOrderService(m.orderRepo, m.productRepo, m.couponRepo, m.evaluator, testRules, taxRate, zerolog.Nop())
	return svc, m
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	ctx := context.Background()
	svc, m := newOrderService(decimal.Zero)
	userID := strPtr("user-1")

	m.productRepo.On("GetByID", ctx, "P001").Return(testProduct(), nil)
	m.orderRepo.On("BeginTx", ctx).Return(m.tx, nil)
	m.orderRepo.On("CreateOrder", ctx, m.tx, mock.AnythingOfType("*model.Order")).Return(nil)
	m.orderRepo.On("CreateOrderItems", ctx, m.tx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	m.productRepo.On("DecrementStock", ctx, m.tx, "P001", 2).Return(nil)
	m.tx.On("Commit", ctx).Return(nil)

	order, err := svc.CreateOrder(ctx, userID, checkoutRequest())

	require.NoError(t, err)
	assert.Regexp(t, `^BB-\d+-\d{4}$`, order.OrderNumber)
	assert.Equal(t, model.StatusPending, order.Status)
	assert.Equal(t, model.PaymentPaid, order.PaymentStatus)
	assert.True(t, dec("1998").Equal(order.Subtotal))
	assert.True(t, dec("150").Equal(order.ShippingCost))
	assert.True(t, dec("2148").Equal(order.TotalAmount))
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Cotton Panjabi", order.Items[0].Name)
	assert.Equal(t, "PAN-001", order.Items[0].SKU)
	assert.True(t, dec("999").Equal(order.Items[0].UnitPrice))
	assert.True(t, dec("1998").Equal(order.Items[0].TotalPrice))
	assert.True(t, m.tx.committed)

	m.orderRepo.AssertExpectations(t)
	m.productRepo.AssertExpectations(t)
	m.evaluator.AssertNotCalled(t, "Evaluate")
	m.couponRepo.AssertNotCalled(t, "IncrementUsage")
}

func TestOrderService_CreateOrder_WithCoupon_IncrementsUsageOnce(t *testing.T) {
	ctx := context.Background()
	svc, m := newOrderService(decimal.Zero)

	cpn := &model.Coupon{
		Code:           "EID500",
		DiscountType:   model.DiscountFixedAmount,
		DiscountValue:  dec("500"),
		MinOrderAmount: dec("1000"),
		IsActive:       true,
	}

	req := checkoutRequest()
	req.CouponCode = strPtr("EID500")
	req.DiscountAmount = dec("500")
	req.TotalAmount = dec("1648")

	m.productRepo.On("GetByID", ctx, "P001").Return(testProduct(), nil)
	m.evaluator.On("Evaluate", ctx, "EID500", decEq("1998"), mock.AnythingOfType("time.Time")).Return(cpn, nil)
	m.orderRepo.On("BeginTx", ctx).Return(m.tx, nil)
	m.orderRepo.On("CreateOrder", ctx, m.tx, mock.AnythingOfType("*model.Order")).Return(nil)
	m.orderRepo.On("CreateOrderItems", ctx, m.tx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	m.productRepo.On("DecrementStock", ctx, m.tx, "P001", 2).Return(nil)
	m.couponRepo.On("IncrementUsage", ctx, m.tx, "EID500").Return(nil)
	m.tx.On("Commit", ctx).Return(nil)

	order, err := svc.CreateOrder(ctx, strPtr("user-1"), req)

	require.NoError(t, err)
	assert.True(t, dec("500").Equal(order.DiscountAmount))
	assert.True(t, dec("1648").Equal(order.TotalAmount))
	require.NotNil(t, order.CouponCode)
	assert.Equal(t, "EID500", *order.CouponCode)

	m.couponRepo.AssertNumberOfCalls(t, "IncrementUsage", 1)
	m.evaluator.AssertExpectations(t)
}

func TestOrderService_CreateOrder_CouponRejected(t *testing.T) {
	ctx := context.Background()
	svc, m := newOrderService(decimal.Zero)

	req := checkoutRequest()
	req.CouponCode = strPtr("EXPIRED1")

	m.productRepo.On("GetByID", ctx, "P001").Return(testProduct(), nil)
	m.evaluator.On("Evaluate", ctx, "EXPIRED1", decEq("1998"), mock.AnythingOfType("time.Time")).
		Return(nil, model.ErrCouponExpired)

	_, err := svc.CreateOrder(ctx, strPtr("user-1"), req)

	assert.ErrorIs(t, err, model.ErrCouponExpired)
	m.orderRepo.AssertNotCalled(t, "BeginTx")
}

func TestOrderService_CreateOrder_EmptyCart(t *testing.T) {
	ctx := context.Background()
	svc, m := newOrderService(decimal.Zero)

	req := checkoutRequest()
	req.Items = nil

	_, err := svc.CreateOrder(ctx, strPtr("user-1"), req)

	assert.ErrorIs(t, err, model.ErrEmptyCart)
	m.productRepo.AssertNotCalled(t, "GetByID")
	m.orderRepo.AssertNotCalled(t, "BeginTx")
}

func TestOrderService_CreateOrder_MissingIdentity(t *testing.T) {
	ctx := context.Background()
	svc, _ := newOrderService(decimal.Zero)

	_, err := svc.CreateOrder(ctx, nil, checkoutRequest())

	assert.ErrorIs(t, err, model.ErrMissingIdentity)
}

func TestOrderService_CreateOrder_GuestIdentityAccepted(t *testing.T) {
	ctx := context.Background()
	svc, m := newOrderService(decimal.Zero)

	req := checkoutRequest()
	req.Guest = &model.GuestInfo{
		Name:    "Rahim Uddin",
		Email:   "rahim@example.com",
		Phone:   "01700000000",
		Address: "House 12, Road 5, Dhanmondi, Dhaka",
	}

	m.productRepo.On("GetByID", ctx, "P001").Return(testProduct(), nil)
	m.orderRepo.On("BeginTx", ctx).Return(m.tx, nil)
	m.orderRepo.On("CreateOrder", ctx, m.tx, mock.AnythingOfType("*model.Order")).Return(nil)
	m.orderRepo.On("CreateOrderItems", ctx, m.tx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	m.productRepo.On("DecrementStock", ctx, m.tx, "P001", 2).Return(nil)
	m.tx.On("Commit", ctx).Return(nil)

	order, err := svc.CreateOrder(ctx, nil, req)

	require.NoError(t, err)
	assert.Nil(t, order.UserID)
	require.NotNil(t, order.Guest)
	assert.Equal(t, "Rahim Uddin", order.Guest.Name)
}

func TestOrderService_CreateOrder_InvalidQuantity(t *testing.T) {
	ctx := context.Background()
	svc, _ := newOrderService(decimal.Zero)

	req := checkoutRequest()
	req.Items[0].Quantity = 0

	_, err := svc.CreateOrder(ctx, strPtr("user-1"), req)

	assert.ErrorIs(t, err, model.ErrInvalidQuantity)
}

func TestOrderService_CreateOrder_ProductNotFound(t *testing.T) {
	ctx := context.Background()
	svc, m := newOrderService(decimal.Zero)

	m.productRepo.On("GetByID", ctx, "P001").Return(nil, nil)

	_, err := svc.CreateOrder(ctx, strPtr("user-1"), checkoutRequest())

	assert.ErrorIs(t, err, model.ErrProductNotFound)
}

func TestOrderService_CreateOrder_VariantBelongsToOtherProduct(t *testing.T) {
	ctx := context.Background()
	svc, m := newOrderService(decimal.Zero)

	req := checkoutRequest()
	req.Items[0].VariantID = strPtr("V999")

	m.productRepo.On("GetByID", ctx, "P001").Return(testProduct(), nil)
	m.productRepo.On("GetVariant", ctx, "V999").Return(&model.ProductVariant{
		ID:        "V999",
		ProductID: "P777",
		Name:      "Size M",
	}, nil)

	_, err := svc.CreateOrder(ctx, strPtr("user-1"), req)

	assert.ErrorIs(t, err, model.ErrVariantNotFound)
}

func TestOrderService_CreateOrder_TotalMismatch(t *testing.T) {
	ctx := context.Background()
	svc, m := newOrderService(decimal.Zero)

	// Client claims a cheaper cart than the catalogue prices it at.
	req := checkoutRequest()
	req.Subtotal = dec("998")
	req.TotalAmount = dec("1148")

	m.productRepo.On("GetByID", ctx, "P001").Return(testProduct(), nil)

	_, err := svc.CreateOrder(ctx, strPtr("user-1"), req)

	assert.ErrorIs(t, err, model.ErrTotalMismatch)
	m.orderRepo.AssertNotCalled(t, "BeginTx")
}

func TestOrderService_CreateOrder_ToleratesRoundingSlack(t *testing.T) {
	ctx := context.Background()
	svc, m := newOrderService(decimal.Zero)

	req := checkoutRequest()
	req.Subtotal = dec("1998.01")
	req.TotalAmount = dec("2148.01")

	m.productRepo.On("GetByID", ctx, "P001").Return(testProduct(), nil)
	m.orderRepo.On("BeginTx", ctx).Return(m.tx, nil)
	m.orderRepo.On("CreateOrder", ctx, m.tx, mock.AnythingOfType("*model.Order")).Return(nil)
	m.orderRepo.On("CreateOrderItems", ctx, m.tx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	m.productRepo.On("DecrementStock", ctx, m.tx, "P001", 2).Return(nil)
	m.tx.On("Commit", ctx).Return(nil)

	_, err := svc.CreateOrder(ctx, strPtr("user-1"), req)

	assert.NoError(t, err)
}

func TestOrderService_CreateOrder_InsufficientStockRollsBack(t *testing.T) {
	ctx := context.Background()
	svc, m := newOrderService(decimal.Zero)

	m.productRepo.On("GetByID", ctx, "P001").Return(testProduct(), nil)
	m.orderRepo.On("BeginTx", ctx).Return(m.tx, nil)
	m.orderRepo.On("CreateOrder", ctx, m.tx, mock.AnythingOfType("*model.Order")).Return(nil)
	m.orderRepo.On("CreateOrderItems", ctx, m.tx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	m.productRepo.On("DecrementStock", ctx, m.tx, "P001", 2).Return(model.ErrInsufficientStock)
	m.tx.On("Rollback", ctx).Return(nil)

	_, err := svc.CreateOrder(ctx, strPtr("user-1"), checkoutRequest())

	assert.ErrorIs(t, err, model.ErrInsufficientStock)
	assert.True(t, m.tx.rolledBack)
	assert.False(t, m.tx.committed)
	m.couponRepo.AssertNotCalled(t, "IncrementUsage")
}

func TestOrderService_CreateOrder_LimitRaceRollsBack(t *testing.T) {
	ctx := context.Background()
	svc, m := newOrderService(decimal.Zero)

	cpn := &model.Coupon{
		Code:          "EID500",
		DiscountType:  model.DiscountFixedAmount,
		DiscountValue: dec("500"),
		IsActive:      true,
	}

	req := checkoutRequest()
	req.CouponCode = strPtr("EID500")
	req.DiscountAmount = dec("500")
	req.TotalAmount = dec("1648")

	m.productRepo.On("GetByID", ctx, "P001").Return(testProduct(), nil)
	m.evaluator.On("Evaluate", ctx, "EID500", decEq("1998"), mock.AnythingOfType("time.Time")).Return(cpn, nil)
	m.orderRepo.On("BeginTx", ctx).Return(m.tx, nil)
	m.orderRepo.On("CreateOrder", ctx, m.tx, mock.AnythingOfType("*model.Order")).Return(nil)
	m.orderRepo.On("CreateOrderItems", ctx, m.tx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	m.productRepo.On("DecrementStock", ctx, m.tx, "P001", 2).Return(nil)
	// Another settlement exhausted the last redemption between evaluation and commit.
	m.couponRepo.On("IncrementUsage", ctx, m.tx, "EID500").Return(model.ErrCouponLimitReached)
	m.tx.On("Rollback", ctx).Return(nil)

	_, err := svc.CreateOrder(ctx, strPtr("user-1"), req)

	assert.ErrorIs(t, err, model.ErrCouponLimitReached)
	assert.True(t, m.tx.rolledBack)
	assert.False(t, m.tx.committed)
}

func TestOrderService_CreateOrder_CODLeavesPaymentPending(t *testing.T) {
	ctx := context.Background()
	svc, m := newOrderService(decimal.Zero)

	req := checkoutRequest()
	req.PaymentMethod = model.PaymentMethodCOD

	m.productRepo.On("GetByID", ctx, "P001").Return(testProduct(), nil)
	m.orderRepo.On("BeginTx", ctx).Return(m.tx, nil)
	m.orderRepo.On("CreateOrder", ctx, m.tx, mock.AnythingOfType("*model.Order")).Return(nil)
	m.orderRepo.On("CreateOrderItems", ctx, m.tx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	m.productRepo.On("DecrementStock", ctx, m.tx, "P001", 2).Return(nil)
	m.tx.On("Commit", ctx).Return(nil)

	order, err := svc.CreateOrder(ctx, strPtr("user-1"), req)

	require.NoError(t, err)
	assert.Equal(t, model.PaymentPending, order.PaymentStatus)
}

func TestOrderService_CreateOrder_AppliesTaxRate(t *testing.T) {
	ctx := context.Background()
	svc, m := newOrderService(dec("0.05"))

	req := checkoutRequest()
	req.TaxAmount = dec("99.90")
	req.TotalAmount = dec("2247.90")

	m.productRepo.On("GetByID", ctx, "P001").Return(testProduct(), nil)
	m.orderRepo.On("BeginTx", ctx).Return(m.tx, nil)
	m.orderRepo.On("CreateOrder", ctx, m.tx, mock.AnythingOfType("*model.Order")).Return(nil)
	m.orderRepo.On("CreateOrderItems", ctx, m.tx, mock.AnythingOfType("[]model.OrderItem")).Return(nil)
	m.productRepo.On("DecrementStock", ctx, m.tx, "P001", 2).Return(nil)
	m.tx.On("Commit", ctx).Return(nil)

	order, err := svc.CreateOrder(ctx, strPtr("user-1"), req)

	require.NoError(t, err)
	assert.True(t, dec("99.90").Equal(order.TaxAmount))
	assert.True(t, dec("2247.90").Equal(order.TotalAmount))
}

func TestOrderService_GetByOrderNumber_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, m := newOrderService(decimal.Zero)

	m.orderRepo.On("GetByOrderNumber", ctx, "BB-404").Return(nil, nil)

	_, err := svc.GetByOrderNumber(ctx, "BB-404")

	assert.ErrorIs(t, err, model.ErrOrderNotFound)
}

func TestOrderService_ListOrders_PropagatesRepoError(t *testing.T) {
	ctx := context.Background()
	svc, m := newOrderService(decimal.Zero)

	m.orderRepo.On("ListByUser", ctx, "user-1").Return(nil, errors.New("connection refused"))

	_, err := svc.ListOrders(ctx, "user-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list orders")
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	existing := func(status model.OrderStatus) *model.Order {
		return &model.Order{
			ID:          uuid.New(),
			OrderNumber: "BB-1",
			Status:      status,
		}
	}

	t.Run("valid transition", func(t *testing.T) {
		svc, m := newOrderService(decimal.Zero)
		order := existing(model.StatusPending)
		tracking := strPtr("TRK-123")

		m.orderRepo.On("GetByOrderNumber", ctx, "BB-1").Return(order, nil)
		m.orderRepo.On("UpdateStatus", ctx, order.ID, model.StatusConfirmed, tracking, (*string)(nil)).Return(nil)

		updated, err := svc.UpdateStatus(ctx, "BB-1", &model.StatusUpdateRequest{
			Status:         model.StatusConfirmed,
			TrackingNumber: tracking,
		})

		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, updated.Status)
		require.NotNil(t, updated.TrackingNumber)
		assert.Equal(t, "TRK-123", *updated.TrackingNumber)
	})

	t.Run("invalid transition rejected", func(t *testing.T) {
		svc, m := newOrderService(decimal.Zero)

		m.orderRepo.On("GetByOrderNumber", ctx, "BB-1").Return(existing(model.StatusDelivered), nil)

		_, err := svc.UpdateStatus(ctx, "BB-1", &model.StatusUpdateRequest{Status: model.StatusRefunded})

		assert.ErrorIs(t, err, model.ErrInvalidTransition)
		m.orderRepo.AssertNotCalled(t, "UpdateStatus")
	})

	t.Run("unknown order", func(t *testing.T) {
		svc, m := newOrderService(decimal.Zero)

		m.orderRepo.On("GetByOrderNumber", ctx, "BB-404").Return(nil, nil)

		_, err := svc.UpdateStatus(ctx, "BB-404", &model.StatusUpdateRequest{Status: model.StatusConfirmed})

		assert.ErrorIs(t, err, model.ErrOrderNotFound)
	})
}
