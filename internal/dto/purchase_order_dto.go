package dto

import "github.com/shopspring/decimal"

// ─── Requests ────────────────────────────────────────────────────────────────

// ItemsCount is a caller-supplied denormalized count and is not reconciled
// against any item list.
type CreatePurchaseOrderRequest struct {
	ID         string          `json:"id"          validate:"required,min=1,max=20"`
	VendorID   string          `json:"vendor"      validate:"required,uuid"`
	Date       string          `json:"date"        validate:"required,datetime=2006-01-02"`
	Status     string          `json:"status"      validate:"omitempty,oneof=pending approved received"`
	Total      decimal.Decimal `json:"total"       validate:"required"`
	ItemsCount int             `json:"items_count" validate:"min=0"`
}

type UpdatePurchaseOrderRequest struct {
	VendorID   *string          `json:"vendor"      validate:"omitempty,uuid"`
	Date       *string          `json:"date"        validate:"omitempty,datetime=2006-01-02"`
	Status     *string          `json:"status"      validate:"omitempty,oneof=pending approved received"`
	Total      *decimal.Decimal `json:"total"`
	ItemsCount *int             `json:"items_count" validate:"omitempty,min=0"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type PurchaseOrderFilter struct {
	Status   string `form:"status" validate:"omitempty,oneof=pending approved received"`
	VendorID string `form:"vendor" validate:"omitempty,uuid"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type PurchaseOrderResponse struct {
	ID         string          `json:"id"`
	VendorID   string          `json:"vendor"`
	VendorName string          `json:"vendor_name"`
	Date       string          `json:"date"`
	Status     string          `json:"status"`
	Total      decimal.Decimal `json:"total"`
	ItemsCount int             `json:"items_count"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}
