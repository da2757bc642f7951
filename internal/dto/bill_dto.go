package dto

import "github.com/shopspring/decimal"

// ─── Requests ────────────────────────────────────────────────────────────────

type CreateBillRequest struct {
	ID         string          `json:"id"          validate:"required,min=1,max=20"`
	VendorID   string          `json:"vendor"      validate:"required,uuid"`
	BillNumber string          `json:"bill_number" validate:"required,min=1,max=50"`
	Date       string          `json:"date"        validate:"required,datetime=2006-01-02"`
	DueDate    string          `json:"due_date"    validate:"required,datetime=2006-01-02"`
	Status     string          `json:"status"      validate:"omitempty,oneof=unpaid paid overdue"`
	Amount     decimal.Decimal `json:"amount"      validate:"required"`
}

type UpdateBillRequest struct {
	VendorID   *string          `json:"vendor"      validate:"omitempty,uuid"`
	BillNumber *string          `json:"bill_number" validate:"omitempty,min=1,max=50"`
	Date       *string          `json:"date"        validate:"omitempty,datetime=2006-01-02"`
	DueDate    *string          `json:"due_date"    validate:"omitempty,datetime=2006-01-02"`
	Status     *string          `json:"status"      validate:"omitempty,oneof=unpaid paid overdue"`
	Amount     *decimal.Decimal `json:"amount"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type BillFilter struct {
	Status   string `form:"status" validate:"omitempty,oneof=unpaid paid overdue"`
	VendorID string `form:"vendor" validate:"omitempty,uuid"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type BillResponse struct {
	ID         string          `json:"id"`
	VendorID   string          `json:"vendor"`
	VendorName string          `json:"vendor_name"`
	BillNumber string          `json:"bill_number"`
	Date       string          `json:"date"`
	DueDate    string          `json:"due_date"`
	Status     string          `json:"status"`
	Amount     decimal.Decimal `json:"amount"`
	IsOverdue  bool            `json:"is_overdue"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}
