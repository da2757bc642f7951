package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stock status classifications derived from quantity vs min_stock.
const (
	StockLow    = "low"
	StockMedium = "medium"
	StockGood   = "good"
)

// Product is the core inventory record. SKU is unique and immutable after
// creation. Quantity, price and min_stock are never negative.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"index;not null"`
	SKU         string    `gorm:"column:sku;uniqueIndex;not null"`
	Barcode     *string   `gorm:"index"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	Quantity    int        `gorm:"not null;default:0;check:quantity >= 0"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	MinStock    int             `gorm:"not null;default:0;check:min_stock >= 0"`
	Description *string
	Active      bool `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
}

// StockStatus classifies the product as low, medium or good.
// Low: quantity <= min_stock. Medium: quantity <= 2*min_stock.
func (p *Product) StockStatus() string {
	if p.Quantity <= p.MinStock {
		return StockLow
	}
	if p.Quantity <= p.MinStock*2 {
		return StockMedium
	}
	return StockGood
}

// TotalValue is quantity x price, computed on read and never persisted.
func (p *Product) TotalValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// CategoryName returns the category name or "Uncategorized" when unset.
func (p *Product) CategoryName() string {
	if p.Category == nil {
		return "Uncategorized"
	}
	return p.Category.Name
}
