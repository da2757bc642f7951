package dto

import (
	"github.com/shopspring/decimal"
)

// ─── Requests ────────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name        string           `json:"name"      validate:"required,min=1,max=200"`
	SKU         string           `json:"sku"       validate:"required,min=1,max=50"`
	Barcode     *string          `json:"barcode"   validate:"omitempty,max=50"`
	CategoryID  *string          `json:"category"  validate:"omitempty,uuid"`
	Quantity    int              `json:"quantity"  validate:"min=0"`
	Price       decimal.Decimal  `json:"price"     validate:"min=0"`
	MinStock    int              `json:"min_stock" validate:"min=0"`
	Description *string          `json:"description"`
}

// UpdateProductRequest deliberately has no SKU field: the SKU is immutable
// after creation.
type UpdateProductRequest struct {
	Name        *string          `json:"name"      validate:"omitempty,min=1,max=200"`
	Barcode     *string          `json:"barcode"   validate:"omitempty,max=50"`
	CategoryID  *string          `json:"category"  validate:"omitempty,uuid"`
	Quantity    *int             `json:"quantity"  validate:"omitempty,min=0"`
	Price       *decimal.Decimal `json:"price"`
	MinStock    *int             `json:"min_stock" validate:"omitempty,min=0"`
	Description *string          `json:"description"`
	Active      *bool            `json:"is_active"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type ProductFilter struct {
	Category string `form:"category"`
	SKU      string `form:"sku"`
	Active   string `form:"is_active"` // "true" | "false" | "" (all)
	Search   string `form:"search"`    // name / sku / barcode
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	SKU          string          `json:"sku"`
	Barcode      *string         `json:"barcode"`
	CategoryID   *string         `json:"category"`
	CategoryName string          `json:"category_name"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	MinStock     int             `json:"min_stock"`
	Description  *string         `json:"description"`
	StockStatus  string          `json:"stock_status"`
	TotalValue   decimal.Decimal `json:"total_value"`
	Active       bool            `json:"is_active"`
	CreatedAt    string          `json:"created_at"`
	UpdatedAt    string          `json:"updated_at"`
}

type TotalValueResponse struct {
	TotalValue decimal.Decimal `json:"total_value"`
}
