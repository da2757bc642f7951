package repository

import (
	"context"
	"time"

	"github.com/Yogesh-MG/inventory-os/internal/dto"
	"github.com/Yogesh-MG/inventory-os/internal/model"

	"gorm.io/gorm"
)

// WorkflowRepository defines the data access contract for workflow rules.
type WorkflowRepository interface {
	Create(ctx context.Context, w *model.WorkflowRule) error
	FindByID(ctx context.Context, id string) (*model.WorkflowRule, error)
	List(ctx context.Context, filter dto.WorkflowRuleFilter) ([]model.WorkflowRule, int64, error)
	Update(ctx context.Context, w *model.WorkflowRule) error
	Delete(ctx context.Context, id string) error

	// Stamp records that the external evaluator fired the rule.
	Stamp(ctx context.Context, id string, at time.Time) error
}

type workflowRepo struct{ db *gorm.DB }

func NewWorkflowRepository(db *gorm.DB) WorkflowRepository { return &workflowRepo{db: db} }

func (r *workflowRepo) Create(ctx context.Context, w *model.WorkflowRule) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *workflowRepo) FindByID(ctx context.Context, id string) (*model.WorkflowRule, error) {
	var w model.WorkflowRule
	err := r.db.WithContext(ctx).First(&w, "id = ?", id).Error
	return &w, err
}

func (r *workflowRepo) List(ctx context.Context, filter dto.WorkflowRuleFilter) ([]model.WorkflowRule, int64, error) {
	var rules []model.WorkflowRule
	var total int64

	q := r.db.WithContext(ctx).Model(&model.WorkflowRule{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("name ASC").Limit(filter.Limit).Offset(offset).Find(&rules).Error
	return rules, total, err
}

func (r *workflowRepo) Update(ctx context.Context, w *model.WorkflowRule) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *workflowRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.WorkflowRule{}, "id = ?", id).Error
}

func (r *workflowRepo) Stamp(ctx context.Context, id string, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&model.WorkflowRule{}).
		Where("id = ?", id).
		Update("last_triggered", at)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
