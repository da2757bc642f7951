package handler

import (
	"net/http"

	"github.com/Yogesh-MG/inventory-os/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// Inventory returns the analyzer-generated report. ?refresh=true bypasses
// the cache.
func (h *ReportsHandler) Inventory(c *gin.Context) {
	refresh := c.Query("refresh") == "true"
	resp, err := h.svc.InventoryReport(c.Request.Context(), refresh)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
