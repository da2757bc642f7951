package handler

import (
	"net/http"

	"github.com/Yogesh-MG/inventory-os/internal/dto"
	"github.com/Yogesh-MG/inventory-os/internal/service"

	"github.com/gin-gonic/gin"
)

type WorkflowsHandler struct{ svc service.AutomationService }

func NewWorkflowsHandler(svc service.AutomationService) *WorkflowsHandler {
	return &WorkflowsHandler{svc: svc}
}

func (h *WorkflowsHandler) Create(c *gin.Context) {
	var req dto.CreateWorkflowRuleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateWorkflow(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *WorkflowsHandler) List(c *gin.Context) {
	var filter dto.WorkflowRuleFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListWorkflows(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkflowsHandler) Get(c *gin.Context) {
	resp, err := h.svc.GetWorkflow(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkflowsHandler) Update(c *gin.Context) {
	var req dto.UpdateWorkflowRuleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateWorkflow(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkflowsHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteWorkflow(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkflowsHandler) Trigger(c *gin.Context) {
	resp, err := h.svc.TriggerWorkflow(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
