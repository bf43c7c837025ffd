package handler

import (
	"errors"
	"net/http"
	"strconv"

	"toystore-be/internal/catalog"
	"toystore-be/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductHandler struct {
	catalogSvc catalog.Service
}

func NewProductHandler(catalogSvc catalog.Service) *ProductHandler {
	return &ProductHandler{catalogSvc: catalogSvc}
}

// ListProducts serves the storefront listing. Category, search and sort come
// from query parameters and all default to unfiltered.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	opts := catalog.ListOptions{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	}

	products, categories, err := h.catalogSvc.ListProducts(c.Request.Context(), opts)
	if err != nil {
		logger.FromCtx(c.Request.Context()).Error("failed to list products", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to list products")
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"products":   products,
		"categories": categories,
	})
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid product id")
		return
	}

	detail, err := h.catalogSvc.GetProductDetail(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(c, http.StatusNotFound, "product not found")
			return
		}
		logger.FromCtx(c.Request.Context()).Error("failed to load product", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "failed to load product")
		return
	}

	respondOK(c, http.StatusOK, detail)
}
