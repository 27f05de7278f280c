package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"boxtrack-backend/config"
	"boxtrack-backend/internal/catalog"
	"boxtrack-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store   store.Store
	catalog *catalog.Service
	export  config.ExportConfig
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, cat *catalog.Service, exportCfg config.ExportConfig) *Handler {
	return &Handler{
		store:   s,
		catalog: cat,
		export:  exportCfg,
	}
}

// writeStoreError maps store error kinds onto HTTP responses.
func writeStoreError(c *gin.Context, err error) {
	var ve *store.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
	case errors.Is(err, store.ErrInvalidField):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz alan"})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Kayıt bulunamadı"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Sistem hatası"})
	}
}
