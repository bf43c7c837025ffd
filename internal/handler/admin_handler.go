package handler

import (
	"errors"
	"net/http"
	"strconv"

	"toystore-be/internal/catalog"
	"toystore-be/internal/logger"
	"toystore-be/internal/order"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the back-office. Every route behind it is guarded by
// the admin auth middleware.
type AdminHandler struct {
	catalogSvc catalog.Service
	orderSvc   order.Service
}

func NewAdminHandler(catalogSvc catalog.Service, orderSvc order.Service) *AdminHandler {
	return &AdminHandler{catalogSvc: catalogSvc, orderSvc: orderSvc}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.orderSvc.DashboardStats(c.Request.Context())
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to load dashboard stats", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	respondOK(c, http.StatusOK, stats)
}

// ListProducts lists every product, inactive ones included.
func (h *AdminHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogSvc.ListAllProducts(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list products")
		return
	}

	respondOK(c, http.StatusOK, products)
}

type saveProductRequest struct {
	Name          string  `json:"name" form:"name" binding:"required"`
	Description   string  `json:"description" form:"description"`
	Price         float64 `json:"price" form:"price"`
	CategoryID    *uint   `json:"category_id" form:"category_id"`
	Brand         string  `json:"brand" form:"brand"`
	Model         string  `json:"model" form:"model"`
	StockQuantity int     `json:"stock_quantity" form:"stock_quantity"`
	ImageURL      string  `json:"image_url" form:"image_url"`
}

func (r saveProductRequest) params() catalog.SaveProductParams {
	return catalog.SaveProductParams{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		CategoryID:    r.CategoryID,
		Brand:         r.Brand,
		Model:         r.Model,
		StockQuantity: r.StockQuantity,
		ImageURL:      r.ImageURL,
	}
}

func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req saveProductRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "name is required")
		return
	}

	id, err := h.catalogSvc.SaveProduct(c.Request.Context(), nil, req.params())
	if err != nil {
		h.respondCatalogError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, gin.H{"id": id})
}

func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid product id")
		return
	}

	var req saveProductRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "name is required")
		return
	}

	if _, err := h.catalogSvc.SaveProduct(c.Request.Context(), &id, req.params()); err != nil {
		h.respondCatalogError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "product updated")
}

// DeleteProduct deactivates the product so existing order lines keep their
// reference. Nothing is ever physically removed.
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid product id")
		return
	}

	if err := h.catalogSvc.DeactivateProduct(c.Request.Context(), id); err != nil {
		h.respondCatalogError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "product deactivated")
}

func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderSvc.GetOrders(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list orders")
		return
	}

	respondOK(c, http.StatusOK, orders)
}

func (h *AdminHandler) GetOrder(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid order id")
		return
	}

	o, err := h.orderSvc.GetOrderDetail(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			respondError(c, http.StatusNotFound, "order not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load order")
		return
	}

	respondOK(c, http.StatusOK, o)
}

type updateStatusRequest struct {
	Status string `json:"status" form:"status" binding:"required"`
}

func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid order id")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "status is required")
		return
	}

	err = h.orderSvc.UpdateOrderStatus(c.Request.Context(), id, order.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, order.ErrOrderNotFound):
			respondError(c, http.StatusNotFound, "order not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to update order")
		}
		return
	}

	respondMessage(c, http.StatusOK, "order status updated")
}

func (h *AdminHandler) respondCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, catalog.ErrEmptyName),
		errors.Is(err, catalog.ErrInvalidPrice),
		errors.Is(err, catalog.ErrInvalidStock):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		logger.FromCtx(c.Request.Context()).Error("catalog operation failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "catalog operation failed")
	}
}

func parseIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	return uint(id), err
}
