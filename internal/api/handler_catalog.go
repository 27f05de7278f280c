package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SearchProducts handles GET /api/products/search?q= for autocomplete.
func (h *Handler) SearchProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.SearchNames(c.Query("q")))
}

// ListProducts handles GET /api/products.
func (h *Handler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.ListNames())
}

// GetProductInfo handles GET /api/products/info?name= and resolves the die
// code and die dimensions for an exact product name.
func (h *Handler) GetProductInfo(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ürün adı gerekli"})
		return
	}

	entry, ok := h.catalog.Lookup(name)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ürün katalogda bulunamadı"})
		return
	}
	c.JSON(http.StatusOK, entry)
}
