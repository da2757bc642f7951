package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderItemSubtotal(t *testing.T) {
	item := OrderItem{Quantity: 4, Price: decimal.RequireFromString("12.50")}
	assert.Equal(t, "50", item.Subtotal().String())
}

func TestComputeTotal(t *testing.T) {
	o := Order{Items: []OrderItem{
		{Quantity: 2, Price: decimal.RequireFromString("10.00")},
		{Quantity: 1, Price: decimal.RequireFromString("0.99")},
		{Quantity: 3, Price: decimal.RequireFromString("5.50")},
	}}
	// 20.00 + 0.99 + 16.50
	assert.Equal(t, "37.49", o.ComputeTotal().String())
}

func TestComputeTotal_NoItems(t *testing.T) {
	o := Order{}
	assert.True(t, o.ComputeTotal().IsZero())
}

func TestComputeTotal_ExactDecimals(t *testing.T) {
	// 0.1 + 0.2 style sums must stay exact
	o := Order{Items: []OrderItem{
		{Quantity: 1, Price: decimal.RequireFromString("0.10")},
		{Quantity: 1, Price: decimal.RequireFromString("0.20")},
	}}
	assert.Equal(t, "0.3", o.ComputeTotal().String())
}

func TestRevenueStatuses(t *testing.T) {
	assert.ElementsMatch(t, []string{OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered}, RevenueStatuses)
}
