package model

import "time"

const (
	WorkflowStatusActive   = "active"
	WorkflowStatusInactive = "inactive"
)

// WorkflowRule is an automation rule (e.g. "WF-001"). TriggerCondition and
// Action are opaque text for an external scheduler/evaluator; the core only
// stores them and stamps LastTriggered when the trigger operation fires.
type WorkflowRule struct {
	ID               string `gorm:"primaryKey;size:20"`
	Name             string `gorm:"not null"`
	Description      string
	TriggerCondition string `gorm:"not null"`
	Action           string `gorm:"not null"`
	Status           string `gorm:"size:10;not null;default:'inactive';index"`
	LastTriggered    *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
