package dto

import "github.com/shopspring/decimal"

// ─── Requests ────────────────────────────────────────────────────────────────

// OrderItemRequest references a product by id. Price is optional: when
// supplied it takes precedence over the current product price, otherwise
// the product price is snapshotted at order time.
type OrderItemRequest struct {
	ProductID string           `json:"product"  validate:"required,uuid"`
	Quantity  int              `json:"quantity" validate:"required,min=1"`
	Price     *decimal.Decimal `json:"price"`
}

// CreateOrderRequest carries the caller-assigned order id. There is no
// total field anywhere in the request surface: totals are server-computed.
type CreateOrderRequest struct {
	ID      string             `json:"id"       validate:"required,min=1,max=20"`
	Type    string             `json:"type"     validate:"required,oneof=sales purchase"`
	PartyID string             `json:"customer" validate:"required,uuid"`
	Status  string             `json:"status"   validate:"omitempty,oneof=pending confirmed shipped delivered cancelled"`
	Items   []OrderItemRequest `json:"items"    validate:"required,min=1,dive"`
}

type UpdateOrderRequest struct {
	Type    *string `json:"type"     validate:"omitempty,oneof=sales purchase"`
	PartyID *string `json:"customer" validate:"omitempty,uuid"`
	Status  *string `json:"status"   validate:"omitempty,oneof=pending confirmed shipped delivered cancelled"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type OrderFilter struct {
	Type    string `form:"type"   validate:"omitempty,oneof=sales purchase"`
	Status  string `form:"status" validate:"omitempty,oneof=pending confirmed shipped delivered cancelled"`
	PartyID string `form:"customer" validate:"omitempty,uuid"`
	Page    int    `form:"page,default=1"   validate:"min=1"`
	Limit   int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type OrderItemResponse struct {
	ID          uint            `json:"id"`
	ProductID   string          `json:"product"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type OrderResponse struct {
	ID           string              `json:"id"`
	Type         string              `json:"type"`
	PartyID      string              `json:"customer"`
	PartyName    string              `json:"customer_name"`
	PartyCompany *string             `json:"customer_company"`
	Status       string              `json:"status"`
	Total        decimal.Decimal     `json:"total"`
	Items        []OrderItemResponse `json:"items"`
	CreatedAt    string              `json:"created_at"`
	UpdatedAt    string              `json:"updated_at"`
}

type RevenueResponse struct {
	Revenue decimal.Decimal `json:"revenue"`
}
