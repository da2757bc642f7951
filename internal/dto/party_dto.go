package dto

import "github.com/shopspring/decimal"

// ─── Requests ────────────────────────────────────────────────────────────────

type CreatePartyRequest struct {
	Name    string  `json:"name"    validate:"required,min=1,max=200"`
	Email   string  `json:"email"   validate:"required,email"`
	Phone   *string `json:"phone"   validate:"omitempty,max=20"`
	Company *string `json:"company" validate:"omitempty,max=200"`
	Address *string `json:"address"`
	Role    string  `json:"type"    validate:"required,oneof=customer vendor"`
}

type UpdatePartyRequest struct {
	Name    *string `json:"name"    validate:"omitempty,min=1,max=200"`
	Email   *string `json:"email"   validate:"omitempty,email"`
	Phone   *string `json:"phone"   validate:"omitempty,max=20"`
	Company *string `json:"company" validate:"omitempty,max=200"`
	Address *string `json:"address"`
	Role    *string `json:"type"    validate:"omitempty,oneof=customer vendor"`
	Active  *bool   `json:"is_active"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type PartyFilter struct {
	Role   string `form:"type"      validate:"omitempty,oneof=customer vendor"`
	Active string `form:"is_active"` // "true" | "false" | "" (all)
	Search string `form:"search"`    // name / email / company
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

// PartyResponse carries the derived order aggregates. OrderCount includes
// cancelled orders; TotalOrderValue excludes them.
type PartyResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           *string         `json:"phone"`
	Company         *string         `json:"company"`
	Address         *string         `json:"address"`
	Role            string          `json:"type"`
	OrderCount      int64           `json:"order_count"`
	TotalOrderValue decimal.Decimal `json:"total_order_value"`
	Active          bool            `json:"is_active"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}
