package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"bigbazar/internal/cart"
	"bigbazar/internal/coupon"
	"bigbazar/internal/model"
	"bigbazar/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// priceTolerance is the rounding slack allowed between client-submitted and
// server-recomputed monetary fields.
var priceTolerance = decimal.RequireFromString("0.01")

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	couponRepo  repository.CouponRepository
	evaluator   coupon.Evaluator
	rules       cart.PricingRules
	taxRate     decimal.Decimal
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	couponRepo repository.CouponRepository,
	evaluator coupon.Evaluator,
	rules cart.PricingRules,
	taxRate decimal.Decimal,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		couponRepo:  couponRepo,
		evaluator:   evaluator,
		rules:       rules,
		taxRate:     taxRate,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// pricedLine is one order line with its authoritative catalogue snapshot.
type pricedLine struct {
	request  model.OrderItemRequest
	snapshot model.CatalogLine
}

// CreateOrder converts a priced cart into a durable order. Monetary fields
// are recomputed from the catalogue and coupon store; the client's figures
// are only accepted when they agree within rounding tolerance. All writes
// (order, items, stock decrements, coupon usage) commit atomically or not
// at all.
func (s *orderService) CreateOrder(ctx context.Context, userID *string, req *model.OrderRequest) (*model.Order, error) {
	if err := s.validateOrderRequest(userID, req); err != nil {
		return nil, err
	}

	lines, subtotal, err := s.priceLines(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	var cpn *model.Coupon
	var couponCode *string
	if req.CouponCode != nil && *req.CouponCode != "" {
		cpn, err = s.evaluator.Evaluate(ctx, *req.CouponCode, subtotal, now)
		if err != nil {
			s.logger.Warn().
				Str("coupon_code", *req.CouponCode).
				Err(err).
				Msg("coupon rejected at settlement")
			return nil, err
		}
		couponCode = &cpn.Code
	}

	discount := coupon.DiscountAmount(cpn, subtotal)

	shipping := s.rules.FlatShippingRate
	if coupon.GrantsFreeShipping(cpn, subtotal) || subtotal.GreaterThanOrEqual(s.rules.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := subtotal.Sub(discount).Mul(s.taxRate).Round(2)

	total := subtotal.Add(shipping).Add(tax).Sub(discount)
	if total.IsNegative() {
		total = decimal.Zero
	}

	if err := verifyClientTotals(req, subtotal, shipping, tax, discount, total); err != nil {
		s.logger.Warn().
			Str("client_total", req.TotalAmount.String()).
			Str("server_total", total.String()).
			Msg("client-submitted totals diverge from server pricing")
		return nil, err
	}

	order := &model.Order{
		ID:                uuid.New(),
		OrderNumber:       generateOrderNumber(now),
		UserID:            userID,
		Guest:             req.Guest,
		ShippingAddressID: req.ShippingAddressID,
		Subtotal:          subtotal,
		ShippingCost:      shipping,
		TaxAmount:         tax,
		DiscountAmount:    discount,
		TotalAmount:       total,
		Status:            model.StatusPending,
		PaymentMethod:     req.PaymentMethod,
		PaymentStatus:     model.DerivePaymentStatus(req.PaymentMethod),
		CouponCode:        couponCode,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	orderItems := make([]model.OrderItem, len(lines))
	for i, line := range lines {
		unitPrice := line.snapshot.UnitPrice()
		item := model.OrderItem{
			ID:         uuid.New(),
			OrderID:    order.ID,
			ProductID:  line.request.ProductID,
			VariantID:  line.request.VariantID,
			Name:       line.snapshot.Product.Name,
			SKU:        line.snapshot.Product.SKU,
			Quantity:   line.request.Quantity,
			UnitPrice:  unitPrice,
			TotalPrice: unitPrice.Mul(decimal.NewFromInt(int64(line.request.Quantity))),
		}
		if line.snapshot.Variant != nil {
			item.VariantName = &line.snapshot.Variant.Name
		}
		orderItems[i] = item
	}
	order.Items = orderItems

	if err := s.settle(ctx, order, lines); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("order_number", order.OrderNumber).
		Int("item_count", len(orderItems)).
		Str("total", order.TotalAmount.String()).
		Msg("order settled")

	return order, nil
}

// settle runs the atomic settlement transaction: order insert, item inserts,
// conditional stock decrements and the single coupon usage increment. Any
// failure rolls everything back.
func (s *orderService) settle(ctx context.Context, order *model.Order, lines []pricedLine) error {
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin settlement transaction")
		return fmt.Errorf("failed to create order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback settlement transaction")
			}
		}
	}()

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, order.Items); err != nil {
		return fmt.Errorf("failed to create order items: %w", err)
	}

	for _, line := range lines {
		if line.request.VariantID != nil {
			err = s.productRepo.DecrementVariantStock(ctx, tx, *line.request.VariantID, line.request.Quantity)
		} else {
			err = s.productRepo.DecrementStock(ctx, tx, line.request.ProductID, line.request.Quantity)
		}
		if err != nil {
			return err
		}
	}

	if order.CouponCode != nil {
		if err = s.couponRepo.IncrementUsage(ctx, tx, *order.CouponCode); err != nil {
			return err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_number", order.OrderNumber).Msg("failed to commit settlement transaction")
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

// priceLines resolves every line against the live catalogue and returns the
// authoritative subtotal.
func (s *orderService) priceLines(ctx context.Context, items []model.OrderItemRequest) ([]pricedLine, decimal.Decimal, error) {
	lines := make([]pricedLine, len(items))
	subtotal := decimal.Zero

	for i, item := range items {
		product, err := s.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("failed to look up product: %w", err)
		}
		if product == nil {
			return nil, decimal.Zero, model.ErrProductNotFound
		}

		line := pricedLine{
			request:  item,
			snapshot: model.CatalogLine{Product: product},
		}

		if item.VariantID != nil {
			variant, err := s.productRepo.GetVariant(ctx, *item.VariantID)
			if err != nil {
				return nil, decimal.Zero, fmt.Errorf("failed to look up variant: %w", err)
			}
			if variant == nil || variant.ProductID != item.ProductID {
				return nil, decimal.Zero, model.ErrVariantNotFound
			}
			line.snapshot.Variant = variant
		}

		subtotal = subtotal.Add(line.snapshot.UnitPrice().Mul(decimal.NewFromInt(int64(item.Quantity))))
		lines[i] = line
	}

	return lines, subtotal, nil
}

// validateOrderRequest rejects structurally invalid checkout payloads.
func (s *orderService) validateOrderRequest(userID *string, req *model.OrderRequest) error {
	if req == nil || len(req.Items) == 0 {
		return model.ErrEmptyCart
	}

	if userID == nil && req.Guest == nil {
		return model.ErrMissingIdentity
	}

	if req.PaymentMethod == "" {
		return fmt.Errorf("payment method is required")
	}

	for i, item := range req.Items {
		if item.ProductID == "" {
			return fmt.Errorf("item %d: product ID is required", i)
		}
		if item.Quantity < 1 {
			s.logger.Warn().
				Int("item_index", i).
				Str("product_id", item.ProductID).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}
	}

	return nil
}

// verifyClientTotals checks the client's monetary figures against the
// server-side recomputation within rounding tolerance.
func verifyClientTotals(req *model.OrderRequest, subtotal, shipping, tax, discount, total decimal.Decimal) error {
	fields := []struct {
		client decimal.Decimal
		server decimal.Decimal
	}{
		{req.Subtotal, subtotal},
		{req.ShippingCost, shipping},
		{req.TaxAmount, tax},
		{req.DiscountAmount, discount},
		{req.TotalAmount, total},
	}

	for _, f := range fields {
		if f.client.Sub(f.server).Abs().GreaterThan(priceTolerance) {
			return model.ErrTotalMismatch
		}
	}
	return nil
}

// generateOrderNumber builds the externally visible order number from a
// millisecond timestamp and a random disambiguator.
func generateOrderNumber(now time.Time) string {
	return fmt.Sprintf("BB-%d-%04d", now.UnixMilli(), rand.IntN(10000))
}

// ListOrders retrieves all orders for an authenticated owner, newest first.
func (s *orderService) ListOrders(ctx context.Context, userID string) ([]model.Order, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetByOrderNumber retrieves a single order by its order number.
func (s *orderService) GetByOrderNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	order, err := s.orderRepo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		s.logger.Error().Err(err).Str("order_number", orderNumber).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

// UpdateStatus moves an order through its status state machine. The engine
// only ever assigns PENDING itself; every later transition arrives through
// this admin surface.
func (s *orderService) UpdateStatus(ctx context.Context, orderNumber string, req *model.StatusUpdateRequest) (*model.Order, error) {
	order, err := s.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	if !model.CanTransition(order.Status, req.Status) {
		s.logger.Warn().
			Str("order_number", orderNumber).
			Str("from", string(order.Status)).
			Str("to", string(req.Status)).
			Msg("status transition rejected")
		return nil, model.ErrInvalidTransition
	}

	if err := s.orderRepo.UpdateStatus(ctx, order.ID, req.Status, req.TrackingNumber, req.AdminNotes); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	order.Status = req.Status
	if req.TrackingNumber != nil {
		order.TrackingNumber = req.TrackingNumber
	}
	if req.AdminNotes != nil {
		order.AdminNotes = req.AdminNotes
	}

	s.logger.Info().
		Str("order_number", orderNumber).
		Str("status", string(req.Status)).
		Msg("order status updated")

	return order, nil
}
