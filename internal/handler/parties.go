package handler

import (
	"net/http"

	"github.com/Yogesh-MG/inventory-os/internal/apperr"
	"github.com/Yogesh-MG/inventory-os/internal/dto"
	"github.com/Yogesh-MG/inventory-os/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PartiesHandler struct{ svc service.PartyService }

func NewPartiesHandler(svc service.PartyService) *PartiesHandler {
	return &PartiesHandler{svc: svc}
}

func (h *PartiesHandler) Create(c *gin.Context) {
	var req dto.CreatePartyRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PartiesHandler) List(c *gin.Context) {
	var filter dto.PartyFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PartiesHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apperr.Validation("invalid contact id"))
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PartiesHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apperr.Validation("invalid contact id"))
		return
	}
	var req dto.UpdatePartyRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PartiesHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apperr.Validation("invalid contact id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
