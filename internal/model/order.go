package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	OrderTypeSales    = "sales"
	OrderTypePurchase = "purchase"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order is a sales or purchase order. The ID is a caller-assigned string
// (e.g. "ORD-001") and immutable. Total is always server-computed from the
// items; it is never accepted from a client.
type Order struct {
	ID        string    `gorm:"primaryKey;size:20"`
	Type      string    `gorm:"size:10;not null;index"`
	PartyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Status    string    `gorm:"size:20;not null;default:'pending';index"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Party *Party      `gorm:"foreignKey:PartyID;constraint:OnDelete:RESTRICT"`
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem is a line item owned by exactly one order. Price is the
// snapshot taken at order time and does not follow later product price
// changes. The product reference is protected: a product with live items
// cannot be deleted.
type OrderItem struct {
	ID        uint      `gorm:"primaryKey"`
	OrderID   string    `gorm:"size:20;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity  int       `gorm:"not null;check:quantity > 0"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

// Subtotal is quantity x snapshot price.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ComputeTotal sums the item subtotals with exact decimal arithmetic.
func (o *Order) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].Subtotal())
	}
	return total
}

// RevenueStatuses are the sales-order statuses counted as revenue.
// Pending and cancelled orders are excluded.
var RevenueStatuses = []string{OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered}
