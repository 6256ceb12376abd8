package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"ecowaste_back_end/internal/catalog"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

// GET /api/products
func (h *Handler) ListProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	products, err := h.Catalog.ListProducts(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load deals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GET /api/products/:id
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}

	product, err := h.Catalog.GetProduct(c.Request.Context(), id)
	if errors.Is(err, catalog.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "deal not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load deal"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// GET /api/products/search?q=
func (h *Handler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
		return
	}
	if !h.Search.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "search is not available"})
		return
	}

	results, err := h.Search.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// POST /api/products/:id/image
func (h *Handler) UploadProductImage(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	if !h.Images.Enabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage is not available"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	url, err := h.Images.Upload(c.Request.Context(), file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	if err := h.Catalog.AddProductImage(c.Request.Context(), id, url); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not attach image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
