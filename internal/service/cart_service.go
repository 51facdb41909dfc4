package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bigbazar/internal/cart"
	"bigbazar/internal/coupon"
	"bigbazar/internal/model"
	"bigbazar/internal/repository"

	"github.com/rs/zerolog"
)

// cartService implements CartService on top of a cart.Store. All mutators
// follow the same load-mutate-save shape; the store is the only side effect
// until settlement.
type cartService struct {
	store       cart.Store
	productRepo repository.ProductRepository
	couponRepo  repository.CouponRepository
	evaluator   coupon.Evaluator
	rules       cart.PricingRules
	logger      zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	store cart.Store,
	productRepo repository.ProductRepository,
	couponRepo repository.CouponRepository,
	evaluator coupon.Evaluator,
	rules cart.PricingRules,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		store:       store,
		productRepo: productRepo,
		couponRepo:  couponRepo,
		evaluator:   evaluator,
		rules:       rules,
		logger:      logger.With().Str("service", "cart").Logger(),
	}
}

// load fetches the session cart, creating an empty one when absent.
func (s *cartService) load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	c, err := s.store.Get(ctx, sessionID)
	if errors.Is(err, cart.ErrNotFound) {
		return cart.New(sessionID), nil
	}
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to load cart")
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return c, nil
}

// view resolves the applied coupon (if any) and derives totals.
func (s *cartService) view(ctx context.Context, c *cart.Cart) (*CartView, error) {
	var cpn *model.Coupon
	if c.CouponCode != nil {
		var err error
		cpn, err = s.couponRepo.GetByCode(ctx, *c.CouponCode)
		if err != nil {
			s.logger.Error().Err(err).Str("coupon_code", *c.CouponCode).Msg("failed to load applied coupon")
			return nil, fmt.Errorf("failed to load applied coupon: %w", err)
		}
	}

	items := c.Items
	if items == nil {
		items = []cart.Item{}
	}
	saved := c.Saved
	if saved == nil {
		saved = []cart.Item{}
	}

	return &CartView{
		SessionID:  c.SessionID,
		Items:      items,
		SavedItems: saved,
		CouponCode: c.CouponCode,
		Totals:     c.ComputeTotals(cpn, s.rules, time.Now()),
	}, nil
}

func (s *cartService) save(ctx context.Context, c *cart.Cart) error {
	if err := s.store.Put(ctx, c); err != nil {
		s.logger.Error().Err(err).Str("session_id", c.SessionID).Msg("failed to save cart")
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// GetCart returns the cart for a session.
func (s *cartService) GetCart(ctx context.Context, sessionID string) (*CartView, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, c)
}

// AddItem snapshots the catalogue pricing for the product (and variant, if
// given) and adds the line to the cart. Stock is not checked here; the cart
// may go stale and stock is enforced at settlement.
func (s *cartService) AddItem(ctx context.Context, sessionID, productID string, variantID *string, quantity int) (*CartView, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}

	params := cart.AddParams{
		ProductID: productID,
		Name:      product.Name,
		SKU:       product.SKU,
		Quantity:  quantity,
		BasePrice: product.BasePrice,
		SalePrice: product.SalePrice,
	}

	if variantID != nil {
		variant, err := s.productRepo.GetVariant(ctx, *variantID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up variant: %w", err)
		}
		if variant == nil || variant.ProductID != productID {
			return nil, model.ErrVariantNotFound
		}
		params.VariantID = variantID
		params.VariantName = &variant.Name
		params.PriceAdjustment = variant.PriceAdjustment
	}

	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	item := c.AddItem(params)
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("session_id", sessionID).
		Str("product_id", productID).
		Int("quantity", item.Quantity).
		Msg("item added to cart")

	return s.view(ctx, c)
}

// UpdateQuantity sets a line's quantity; below 1 removes the line.
func (s *cartService) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*CartView, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) {
		c.UpdateQuantity(itemID, quantity)
	})
}

// RemoveItem deletes a line from the cart; a second call is a no-op.
func (s *cartService) RemoveItem(ctx context.Context, sessionID, itemID string) (*CartView, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) {
		c.RemoveItem(itemID)
	})
}

// SaveForLater moves a cart line to the saved collection.
func (s *cartService) SaveForLater(ctx context.Context, sessionID, itemID string) (*CartView, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) {
		c.SaveForLater(itemID)
	})
}

// MoveToCart moves a saved line back into the cart.
func (s *cartService) MoveToCart(ctx context.Context, sessionID, itemID string) (*CartView, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) {
		c.MoveToCart(itemID)
	})
}

// RemoveSavedItem deletes a line from the saved collection.
func (s *cartService) RemoveSavedItem(ctx context.Context, sessionID, itemID string) (*CartView, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) {
		c.RemoveSavedItem(itemID)
	})
}

// ClearCart empties the cart and removes any applied coupon; saved items
// are untouched.
func (s *cartService) ClearCart(ctx context.Context, sessionID string) (*CartView, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) {
		c.Clear()
	})
}

// ApplyCoupon evaluates a code against the current cart subtotal and applies
// it on success. Rejection leaves the cart (and any previously applied
// coupon) unchanged and surfaces the specific reason.
func (s *cartService) ApplyCoupon(ctx context.Context, sessionID, code string) (*CartView, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cpn, err := s.evaluator.Evaluate(ctx, code, c.Subtotal(), time.Now())
	if err != nil {
		return nil, err
	}

	c.SetCoupon(cpn.Code)
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("session_id", sessionID).
		Str("coupon_code", cpn.Code).
		Msg("coupon applied to cart")

	return s.view(ctx, c)
}

// RemoveCoupon clears the applied coupon.
func (s *cartService) RemoveCoupon(ctx context.Context, sessionID string) (*CartView, error) {
	return s.mutate(ctx, sessionID, func(c *cart.Cart) {
		c.RemoveCoupon()
	})
}

// mutate runs the load-mutate-save cycle shared by the simple mutators.
func (s *cartService) mutate(ctx context.Context, sessionID string, fn func(*cart.Cart)) (*CartView, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	fn(c)

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}

	return s.view(ctx, c)
}
