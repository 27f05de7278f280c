package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func orderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz kayıt ID"})
		return 0, false
	}
	return id, true
}

// CreateOrder handles POST /api/orders.
func (h *Handler) CreateOrder(c *gin.Context) {
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek gövdesi"})
		return
	}

	id, err := h.store.Create(c.Request.Context(), fields)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// GetOrder handles GET /api/orders/:id.
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	order, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// ListOrders handles GET /api/orders, newest first.
func (h *Handler) ListOrders(c *gin.Context) {
	summaries, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// SearchOrders handles GET /api/orders/search?q=.
func (h *Handler) SearchOrders(c *gin.Context) {
	summaries, err := h.store.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// RecentOrders handles GET /api/orders/recent?limit= for the planning view.
func (h *Handler) RecentOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	summaries, err := h.store.ListRecent(c.Request.Context(), limit)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

type idsRequest struct {
	IDs []int64 `json:"ids" binding:"required"`
}

// SelectedOrders handles POST /api/orders/selected, returning planning rows
// for the chosen ids. Unknown ids are skipped.
func (h *Handler) SelectedOrders(c *gin.Context) {
	var req idsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Kayıt seçilmedi"})
		return
	}

	summaries, err := h.store.GetBatch(c.Request.Context(), req.IDs)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// UpdateOrder handles PUT /api/orders/:id with a partial field map.
func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek gövdesi"})
		return
	}

	if err := h.store.UpdateFull(c.Request.Context(), id, fields); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

type updateFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// UpdateOrderField handles PATCH /api/orders/:id/field for single-cell edits
// from the planning grid.
func (h *Handler) UpdateOrderField(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req updateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Eksik parametre"})
		return
	}

	if err := h.store.UpdateField(c.Request.Context(), id, req.Field, req.Value); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// DeleteOrder handles DELETE /api/orders/:id.
func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		writeStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteOrdersBatch handles POST /api/orders/delete-batch. Missing ids are
// skipped; the response carries the number actually deleted.
func (h *Handler) DeleteOrdersBatch(c *gin.Context) {
	var req idsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Silinecek kayıt seçilmedi"})
		return
	}

	deleted, err := h.store.DeleteBatch(c.Request.Context(), req.IDs)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
