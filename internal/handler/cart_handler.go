package handler

import (
	"encoding/json"
	"net/http"

	"bigbazar/internal/model"
	"bigbazar/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// CartHandler handles cart-related HTTP requests. Every endpoint is scoped
// to the session identified by the X-Session-ID header.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// addItemRequest is the payload for POST /api/cart/items.
type addItemRequest struct {
	ProductID string  `json:"productId"`
	VariantID *string `json:"variantId,omitempty"`
	Quantity  int     `json:"quantity"`
}

// updateQuantityRequest is the payload for PATCH /api/cart/items/{itemID}.
type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// applyCouponRequest is the payload for POST /api/cart/coupon.
type applyCouponRequest struct {
	Code string `json:"code"`
}

func (h *CartHandler) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := r.Header.Get("X-Session-ID")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "X-Session-ID header is required", h.logger)
		return "", false
	}
	return sessionID, true
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.service.GetCart(r.Context(), sessionID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeProductNotFound, "productId is required", h.logger)
		return
	}

	view, err := h.service.AddItem(r.Context(), sessionID, req.ProductID, req.VariantID, req.Quantity)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// UpdateQuantity handles PATCH /api/cart/items/{itemID} requests.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	view, err := h.service.UpdateQuantity(r.Context(), sessionID, chi.URLParam(r, "itemID"), req.Quantity)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// RemoveItem handles DELETE /api/cart/items/{itemID} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(sessionID, itemID string) (*service.CartView, error) {
		return h.service.RemoveItem(r.Context(), sessionID, itemID)
	})
}

// SaveForLater handles POST /api/cart/items/{itemID}/save requests.
func (h *CartHandler) SaveForLater(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(sessionID, itemID string) (*service.CartView, error) {
		return h.service.SaveForLater(r.Context(), sessionID, itemID)
	})
}

// MoveToCart handles POST /api/cart/saved/{itemID}/move requests.
func (h *CartHandler) MoveToCart(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(sessionID, itemID string) (*service.CartView, error) {
		return h.service.MoveToCart(r.Context(), sessionID, itemID)
	})
}

// RemoveSavedItem handles DELETE /api/cart/saved/{itemID} requests.
func (h *CartHandler) RemoveSavedItem(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(sessionID, itemID string) (*service.CartView, error) {
		return h.service.RemoveSavedItem(r.Context(), sessionID, itemID)
	})
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.service.ClearCart(r.Context(), sessionID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// ApplyCoupon handles POST /api/cart/coupon requests.
func (h *CartHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req applyCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	view, err := h.service.ApplyCoupon(r.Context(), sessionID, req.Code)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// RemoveCoupon handles DELETE /api/cart/coupon requests.
func (h *CartHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.service.RemoveCoupon(r.Context(), sessionID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// mutate wraps the session + item id extraction shared by the item-scoped
// endpoints.
func (h *CartHandler) mutate(w http.ResponseWriter, r *http.Request, fn func(sessionID, itemID string) (*service.CartView, error)) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	view, err := fn(sessionID, chi.URLParam(r, "itemID"))
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
