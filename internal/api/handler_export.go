package api

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"boxtrack-backend/internal/export"
	"boxtrack-backend/internal/plan"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportExcel handles GET /api/export/excel: all stored orders as a
// spreadsheet attachment.
func (h *Handler) ExportExcel(c *gin.Context) {
	orders, err := h.store.ListFull(c.Request.Context())
	if err != nil {
		writeStoreError(c, err)
		return
	}

	f, err := export.Excel(orders)
	if err != nil {
		log.Printf("excel export failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Excel export sırasında hata oluştu"})
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Printf("excel export failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Excel export sırasında hata oluştu"})
		return
	}

	filename := fmt.Sprintf("Uretim_Kayitlari_%s.xlsx", time.Now().Format("20060102_1504"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *Handler) renderPDF(c *gin.Context, download bool) {
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Geçersiz istek gövdesi"})
		return
	}

	out, err := export.PDF(fields, h.export.CompanyName)
	if err != nil {
		log.Printf("pdf render failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "PDF oluşturulurken hata oluştu"})
		return
	}

	if download {
		filename := fmt.Sprintf("Uretim_Formu_%s.pdf", time.Now().Format("20060102_150405"))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}
	c.Data(http.StatusOK, "application/pdf", out)
}

// ExportPDF handles POST /api/export/pdf: the posted field map rendered as a
// downloadable production form.
func (h *Handler) ExportPDF(c *gin.Context) {
	h.renderPDF(c, true)
}

// PrintForm handles POST /api/print: the same form, served inline for the
// browser's print dialog.
func (h *Handler) PrintForm(c *gin.Context) {
	h.renderPDF(c, false)
}

type savePlanRequest struct {
	PlanName string  `json:"plan_adi" binding:"required"`
	IDs      []int64 `json:"ids" binding:"required"`
}

// SavePlan handles POST /api/plans: snapshots the selected orders as a named
// production plan file.
func (h *Handler) SavePlan(c *gin.Context) {
	var req savePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Eksik veri"})
		return
	}

	rows, err := h.store.GetBatch(c.Request.Context(), req.IDs)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	path, err := plan.Save(h.export.PlansDir, req.PlanName, rows)
	if err != nil {
		log.Printf("plan save failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Plan kaydedilemedi"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"filename": filepath.Base(path)})
}
