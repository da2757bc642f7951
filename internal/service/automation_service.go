package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Yogesh-MG/inventory-os/internal/apperr"
	"github.com/Yogesh-MG/inventory-os/internal/dto"
	"github.com/Yogesh-MG/inventory-os/internal/model"
	"github.com/Yogesh-MG/inventory-os/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AlertNotifier enqueues an email notification for an alert. Implemented by
// the worker dispatcher; nil disables notifications.
type AlertNotifier interface {
	EnqueueAlertEmail(ctx context.Context, alertID, title, description string) error
}

// AutomationService covers workflow rules and alerts.
type AutomationService interface {
	CreateWorkflow(ctx context.Context, req dto.CreateWorkflowRuleRequest) (dto.WorkflowRuleResponse, error)
	GetWorkflow(ctx context.Context, id string) (dto.WorkflowRuleResponse, error)
	ListWorkflows(ctx context.Context, filter dto.WorkflowRuleFilter) (dto.ListResponse[dto.WorkflowRuleResponse], error)
	UpdateWorkflow(ctx context.Context, id string, req dto.UpdateWorkflowRuleRequest) (dto.WorkflowRuleResponse, error)
	DeleteWorkflow(ctx context.Context, id string) error

	// TriggerWorkflow stamps last_triggered with the current time.
	TriggerWorkflow(ctx context.Context, id string) (dto.WorkflowRuleResponse, error)

	CreateAlert(ctx context.Context, req dto.CreateAlertRequest) (dto.AlertResponse, error)
	ListAlerts(ctx context.Context, filter dto.AlertFilter) (dto.ListResponse[dto.AlertResponse], error)

	// MarkAlertRead transitions unread -> read. Already-read alerts are a
	// no-op, not an error.
	MarkAlertRead(ctx context.Context, id string) (dto.AlertResponse, error)

	// ScanLowStock creates an alert per low-stock product that has no unread
	// alert with the same title yet. Critical alerts are mailed out.
	ScanLowStock(ctx context.Context) (dto.ScanResponse, error)
}

type automationService struct {
	workflowRepo repository.WorkflowRepository
	alertRepo    repository.AlertRepository
	productRepo  repository.ProductRepository
	notifier     AlertNotifier
	now          func() time.Time
}

func NewAutomationService(
	workflowRepo repository.WorkflowRepository,
	alertRepo repository.AlertRepository,
	productRepo repository.ProductRepository,
	notifier AlertNotifier,
) AutomationService {
	return &automationService{
		workflowRepo: workflowRepo,
		alertRepo:    alertRepo,
		productRepo:  productRepo,
		notifier:     notifier,
		now:          time.Now,
	}
}

// ─── Workflow rules ──────────────────────────────────────────────────────────

func mapWorkflow(w *model.WorkflowRule) dto.WorkflowRuleResponse {
	var last *string
	if w.LastTriggered != nil {
		s := fmtTime(*w.LastTriggered)
		last = &s
	}
	return dto.WorkflowRuleResponse{
		ID:               w.ID,
		Name:             w.Name,
		Description:      w.Description,
		TriggerCondition: w.TriggerCondition,
		Action:           w.Action,
		Status:           w.Status,
		LastTriggered:    last,
		CreatedAt:        fmtTime(w.CreatedAt),
		UpdatedAt:        fmtTime(w.UpdatedAt),
	}
}

func (s *automationService) CreateWorkflow(ctx context.Context, req dto.CreateWorkflowRuleRequest) (dto.WorkflowRuleResponse, error) {
	status := req.Status
	if status == "" {
		status = model.WorkflowStatusInactive
	}
	w := &model.WorkflowRule{
		ID:               req.ID,
		Name:             req.Name,
		Description:      req.Description,
		TriggerCondition: req.TriggerCondition,
		Action:           req.Action,
		Status:           status,
	}
	if err := s.workflowRepo.Create(ctx, w); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.WorkflowRuleResponse{}, apperr.Conflict(fmt.Sprintf("workflow rule %s already exists", req.ID))
		}
		return dto.WorkflowRuleResponse{}, err
	}
	return mapWorkflow(w), nil
}

func (s *automationService) GetWorkflow(ctx context.Context, id string) (dto.WorkflowRuleResponse, error) {
	w, err := s.workflowRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.WorkflowRuleResponse{}, apperr.NotFound("workflow rule not found")
		}
		return dto.WorkflowRuleResponse{}, err
	}
	return mapWorkflow(w), nil
}

func (s *automationService) ListWorkflows(ctx context.Context, filter dto.WorkflowRuleFilter) (dto.ListResponse[dto.WorkflowRuleResponse], error) {
	rules, total, err := s.workflowRepo.List(ctx, filter)
	if err != nil {
		return dto.ListResponse[dto.WorkflowRuleResponse]{}, err
	}
	items := make([]dto.WorkflowRuleResponse, 0, len(rules))
	for i := range rules {
		items = append(items, mapWorkflow(&rules[i]))
	}
	return dto.ListResponse[dto.WorkflowRuleResponse]{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *automationService) UpdateWorkflow(ctx context.Context, id string, req dto.UpdateWorkflowRuleRequest) (dto.WorkflowRuleResponse, error) {
	w, err := s.workflowRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.WorkflowRuleResponse{}, apperr.NotFound("workflow rule not found")
		}
		return dto.WorkflowRuleResponse{}, err
	}

	if req.Name != nil {
		w.Name = *req.Name
	}
	if req.Description != nil {
		w.Description = *req.Description
	}
	if req.TriggerCondition != nil {
		w.TriggerCondition = *req.TriggerCondition
	}
	if req.Action != nil {
		w.Action = *req.Action
	}
	if req.Status != nil {
		w.Status = *req.Status
	}

	if err := s.workflowRepo.Update(ctx, w); err != nil {
		return dto.WorkflowRuleResponse{}, err
	}
	return mapWorkflow(w), nil
}

func (s *automationService) DeleteWorkflow(ctx context.Context, id string) error {
	if _, err := s.workflowRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("workflow rule not found")
		}
		return err
	}
	return s.workflowRepo.Delete(ctx, id)
}

func (s *automationService) TriggerWorkflow(ctx context.Context, id string) (dto.WorkflowRuleResponse, error) {
	at := s.now()
	if err := s.workflowRepo.Stamp(ctx, id, at); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.WorkflowRuleResponse{}, apperr.NotFound("workflow rule not found")
		}
		return dto.WorkflowRuleResponse{}, err
	}
	w, err := s.workflowRepo.FindByID(ctx, id)
	if err != nil {
		return dto.WorkflowRuleResponse{}, err
	}
	return mapWorkflow(w), nil
}

// ─── Alerts ──────────────────────────────────────────────────────────────────

func mapAlert(a *model.Alert) dto.AlertResponse {
	return dto.AlertResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Type:        a.Type,
		Status:      a.Status,
		CreatedAt:   fmtTime(a.CreatedAt),
	}
}

func (s *automationService) CreateAlert(ctx context.Context, req dto.CreateAlertRequest) (dto.AlertResponse, error) {
	alertType := req.Type
	if alertType == "" {
		alertType = model.AlertTypeInfo
	}
	a := &model.Alert{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Type:        alertType,
		Status:      model.AlertStatusUnread,
	}
	if err := s.alertRepo.Create(ctx, a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.AlertResponse{}, apperr.Conflict(fmt.Sprintf("alert %s already exists", req.ID))
		}
		return dto.AlertResponse{}, err
	}
	return mapAlert(a), nil
}

func (s *automationService) ListAlerts(ctx context.Context, filter dto.AlertFilter) (dto.ListResponse[dto.AlertResponse], error) {
	alerts, total, err := s.alertRepo.List(ctx, filter)
	if err != nil {
		return dto.ListResponse[dto.AlertResponse]{}, err
	}
	items := make([]dto.AlertResponse, 0, len(alerts))
	for i := range alerts {
		items = append(items, mapAlert(&alerts[i]))
	}
	return dto.ListResponse[dto.AlertResponse]{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *automationService) MarkAlertRead(ctx context.Context, id string) (dto.AlertResponse, error) {
	a, err := s.alertRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AlertResponse{}, apperr.NotFound("alert not found")
		}
		return dto.AlertResponse{}, err
	}
	if a.Status == model.AlertStatusRead {
		return mapAlert(a), nil
	}
	a.Status = model.AlertStatusRead
	if err := s.alertRepo.Update(ctx, a); err != nil {
		return dto.AlertResponse{}, err
	}
	return mapAlert(a), nil
}

// newAlertID builds a short caller-style id for scan-generated alerts.
func newAlertID() string {
	return "ALT-" + strings.ToUpper(uuid.NewString()[:8])
}

func (s *automationService) ScanLowStock(ctx context.Context) (dto.ScanResponse, error) {
	products, err := s.productRepo.ListLowStock(ctx)
	if err != nil {
		return dto.ScanResponse{}, err
	}

	resp := dto.ScanResponse{Scanned: len(products), Created: []dto.AlertResponse{}}

	for i := range products {
		p := &products[i]
		title := fmt.Sprintf("Low stock: %s", p.Name)

		exists, err := s.alertRepo.HasUnreadTitled(ctx, title)
		if err != nil {
			return dto.ScanResponse{}, err
		}
		if exists {
			continue
		}

		alertType := model.AlertTypeWarning
		if p.Quantity == 0 {
			alertType = model.AlertTypeCritical
		}

		a := &model.Alert{
			ID:          newAlertID(),
			Title:       title,
			Description: fmt.Sprintf("%s (SKU %s) has %d units left, minimum is %d", p.Name, p.SKU, p.Quantity, p.MinStock),
			Type:        alertType,
			Status:      model.AlertStatusUnread,
		}
		if err := s.alertRepo.Create(ctx, a); err != nil {
			// Another scan won the race for this title; skip it
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return dto.ScanResponse{}, err
		}

		if alertType == model.AlertTypeCritical && s.notifier != nil {
			if err := s.notifier.EnqueueAlertEmail(ctx, a.ID, a.Title, a.Description); err != nil {
				log.Warn().Err(err).Str("alert_id", a.ID).Msg("could not enqueue alert email")
			}
		}

		resp.Created = append(resp.Created, mapAlert(a))
	}

	return resp, nil
}
