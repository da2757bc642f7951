package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	BillStatusUnpaid  = "unpaid"
	BillStatusPaid    = "paid"
	BillStatusOverdue = "overdue"
)

// Bill is a vendor obligation. ID is caller-assigned (e.g. "BILL-001").
// Overdue is never stored; it is computed against the current date on read.
type Bill struct {
	ID         string    `gorm:"primaryKey;size:20"`
	VendorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	BillNumber string    `gorm:"uniqueIndex;not null"`
	Date       time.Time `gorm:"type:date;not null"`
	DueDate    time.Time `gorm:"type:date;not null;index"`
	Status     string    `gorm:"size:10;not null;default:'unpaid';index"`
	Amount     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Vendor *Party `gorm:"foreignKey:VendorID;constraint:OnDelete:RESTRICT"`
}

// IsOverdue reports whether the bill is unpaid with a due date strictly in
// the past relative to now. Paid bills are never overdue, regardless of
// their due date.
func (b *Bill) IsOverdue(now time.Time) bool {
	if b.Status != BillStatusUnpaid {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	due := time.Date(b.DueDate.Year(), b.DueDate.Month(), b.DueDate.Day(), 0, 0, 0, 0, time.UTC)
	return due.Before(today)
}
