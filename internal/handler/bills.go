package handler

import (
	"net/http"

	"github.com/Yogesh-MG/inventory-os/internal/dto"
	"github.com/Yogesh-MG/inventory-os/internal/service"

	"github.com/gin-gonic/gin"
)

type BillsHandler struct{ svc service.BillingService }

func NewBillsHandler(svc service.BillingService) *BillsHandler {
	return &BillsHandler{svc: svc}
}

func (h *BillsHandler) Create(c *gin.Context) {
	var req dto.CreateBillRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateBill(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BillsHandler) List(c *gin.Context) {
	var filter dto.BillFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListBills(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BillsHandler) Get(c *gin.Context) {
	resp, err := h.svc.GetBill(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BillsHandler) Update(c *gin.Context) {
	var req dto.UpdateBillRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateBill(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BillsHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteBill(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BillsHandler) PDF(c *gin.Context) {
	data, filename, err := h.svc.BillPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
