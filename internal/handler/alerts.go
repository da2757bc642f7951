package handler

import (
	"net/http"

	"github.com/Yogesh-MG/inventory-os/internal/dto"
	"github.com/Yogesh-MG/inventory-os/internal/service"

	"github.com/gin-gonic/gin"
)

type AlertsHandler struct{ svc service.AutomationService }

func NewAlertsHandler(svc service.AutomationService) *AlertsHandler {
	return &AlertsHandler{svc: svc}
}

func (h *AlertsHandler) Create(c *gin.Context) {
	var req dto.CreateAlertRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateAlert(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AlertsHandler) List(c *gin.Context) {
	var filter dto.AlertFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListAlerts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AlertsHandler) MarkRead(c *gin.Context) {
	resp, err := h.svc.MarkAlertRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AlertsHandler) Scan(c *gin.Context) {
	resp, err := h.svc.ScanLowStock(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
