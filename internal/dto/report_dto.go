package dto

import "github.com/shopspring/decimal"

// ReportProduct is one row of the catalog snapshot handed to the analyzer.
// Category defaults to "Uncategorized" when the product has no category.
type ReportProduct struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	MinStock int             `json:"min_stock"`
	Category string          `json:"category"`
}

// ReorderRecommendation is one analyzer suggestion.
type ReorderRecommendation struct {
	ProductID    string `json:"product_id"`
	SuggestedQty int    `json:"suggested_qty"`
	Urgency      string `json:"urgency"` // low | medium | high
}

// InventoryReport is the structured analyzer result returned to clients.
type InventoryReport struct {
	Summary                string                  `json:"summary"`
	LowStockItems          int                     `json:"low_stock_items"`
	TotalValue             decimal.Decimal         `json:"total_value"`
	ReorderRecommendations []ReorderRecommendation `json:"reorder_recommendations"`
	Trends                 string                  `json:"trends"`
	RiskLevel              string                  `json:"risk_level"` // low | medium | high
	ActionItems            []string                `json:"action_items"`
}
