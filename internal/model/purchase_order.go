package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PurchaseOrderStatusPending  = "pending"
	PurchaseOrderStatusApproved = "approved"
	PurchaseOrderStatusReceived = "received"
)

// PurchaseOrder is a standalone vendor PO (e.g. "PO-001"). ItemsCount is a
// caller-supplied denormalized count; there is no item relation to
// reconcile it against.
type PurchaseOrder struct {
	ID         string    `gorm:"primaryKey;size:20"`
	VendorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Date       time.Time `gorm:"type:date;not null;index"`
	Status     string    `gorm:"size:10;not null;default:'pending';index"`
	Total      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ItemsCount int             `gorm:"not null;default:0;check:items_count >= 0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Vendor *Party `gorm:"foreignKey:VendorID;constraint:OnDelete:RESTRICT"`
}
