package handler

import (
	"errors"
	"net/http"
	"time"

	"toystore-be/internal/cart"
	"toystore-be/internal/logger"
	"toystore-be/internal/order"
	"toystore-be/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionCookie names the cookie carrying the opaque session key.
const SessionCookie = "toystore_session"

const sessionCookieMaxAge = int(session.TTL / time.Second)

type CartHandler struct {
	cartSvc  cart.Service
	orderSvc order.Service
	sessions *session.Manager
}

func NewCartHandler(cartSvc cart.Service, orderSvc order.Service, sessions *session.Manager) *CartHandler {
	return &CartHandler{cartSvc: cartSvc, orderSvc: orderSvc, sessions: sessions}
}

// ensureSession resolves (or creates) the session for the request and sets
// the cookie when a new key was minted. Used by mutating cart endpoints.
func (h *CartHandler) ensureSession(c *gin.Context) (string, error) {
	key, _ := c.Cookie(SessionCookie)

	newKey, cartID, err := h.sessions.Ensure(c.Request.Context(), key)
	if err != nil {
		return "", err
	}

	if newKey != key {
		c.SetCookie(SessionCookie, newKey, sessionCookieMaxAge, "/", "", false, true)
	}

	return cartID, nil
}

// lookupSession resolves the session without creating one. Read-only paths
// that arrive without a session see an empty cart.
func (h *CartHandler) lookupSession(c *gin.Context) (string, error) {
	key, _ := c.Cookie(SessionCookie)
	return h.sessions.Lookup(c.Request.Context(), key)
}

type addItemRequest struct {
	ProductID uint `json:"product_id" form:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" form:"quantity"`
}

type updateItemRequest struct {
	ProductID uint `json:"product_id" form:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" form:"quantity"`
}

type removeItemRequest struct {
	ProductID uint `json:"product_id" form:"product_id" binding:"required"`
}

// ViewCart returns the session's cart joined with the live catalog.
func (h *CartHandler) ViewCart(c *gin.Context) {
	cartID, err := h.lookupSession(c)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load session")
		return
	}

	view, err := h.cartSvc.View(c.Request.Context(), cartID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load cart")
		return
	}

	respondOK(c, http.StatusOK, view)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "product_id is required")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cartID, err := h.ensureSession(c)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load session")
		return
	}

	err = h.cartSvc.AddItem(c.Request.Context(), cart.AddItemParams{
		SessionID: cartID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "item added to cart")
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "product_id is required")
		return
	}

	cartID, err := h.ensureSession(c)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load session")
		return
	}

	err = h.cartSvc.UpdateItem(c.Request.Context(), cart.UpdateItemParams{
		SessionID: cartID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.respondCartError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "cart updated")
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	var req removeItemRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "product_id is required")
		return
	}

	cartID, err := h.ensureSession(c)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load session")
		return
	}

	if err := h.cartSvc.RemoveItem(c.Request.Context(), cartID, req.ProductID); err != nil {
		h.respondCartError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "item removed from cart")
}

// PlaceOrder runs checkout for the session's cart. An empty or missing cart
// sends the caller back to the cart page rather than erroring.
func (h *CartHandler) PlaceOrder(c *gin.Context) {
	var input order.CheckoutInput
	if err := c.ShouldBind(&input); err != nil {
		respondError(c, http.StatusBadRequest, "invalid checkout input")
		return
	}

	cartID, err := h.lookupSession(c)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to load session")
		return
	}
	if cartID == "" {
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	conf, err := h.orderSvc.PlaceOrder(c.Request.Context(), cartID, input)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyCart):
			c.Redirect(http.StatusSeeOther, "/cart")
		case errors.Is(err, order.ErrInsufficientStock),
			errors.Is(err, order.ErrProductNotFound):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			logger.FromCtx(c.Request.Context()).Error("place order failed", zap.Error(err))
			respondError(c, http.StatusInternalServerError, "failed to place order")
		}
		return
	}

	respondOK(c, http.StatusCreated, conf)
}

func (h *CartHandler) respondCartError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrProductNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, cart.ErrCartItemNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, cart.ErrInsufficientStock),
		errors.Is(err, cart.ErrInvalidQuantity):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		logger.FromCtx(c.Request.Context()).Error("cart operation failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "cart operation failed")
	}
}
