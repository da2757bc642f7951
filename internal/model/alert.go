package model

import "time"

const (
	AlertTypeCritical = "critical"
	AlertTypeWarning  = "warning"
	AlertTypeInfo     = "info"
)

const (
	AlertStatusUnread = "unread"
	AlertStatusRead   = "read"
)

// Alert is a system notification (e.g. "ALT-001"). Alerts are created by
// the automation layer or manual action, transition unread -> read exactly
// once, and are never auto-deleted.
type Alert struct {
	ID          string `gorm:"primaryKey;size:20"`
	Title       string `gorm:"not null"`
	Description string
	Type        string `gorm:"size:10;not null;default:'info';index"`
	Status      string `gorm:"size:10;not null;default:'unread';index"`
	CreatedAt   time.Time `gorm:"index"`
}
