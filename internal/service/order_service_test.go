package service

import (
	"context"
	"testing"

	"github.com/Yogesh-MG/inventory-os/internal/apperr"
	"github.com/Yogesh-MG/inventory-os/internal/dto"
	"github.com/Yogesh-MG/inventory-os/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOrderSvc() (OrderService, *stubOrderRepo, *stubPartyRepo, *stubProductRepo) {
	orderRepo := newStubOrderRepo()
	partyRepo := newStubPartyRepo()
	productRepo := newStubProductRepo()
	return NewOrderService(orderRepo, partyRepo, productRepo), orderRepo, partyRepo, productRepo
}

func seedParty(r *stubPartyRepo, name, role string) *model.Party {
	p := &model.Party{ID: uuid.New(), Name: name, Email: name + "@example.com", Role: role, Active: true}
	r.parties[p.ID] = p
	return p
}

func seedProduct(r *stubProductRepo, name, sku string, qty int, price string) *model.Product {
	p := &model.Product{
		ID:       uuid.New(),
		Name:     name,
		SKU:      sku,
		Quantity: qty,
		Price:    decimal.RequireFromString(price),
		Active:   true,
	}
	r.products[p.ID] = p
	return p
}

func TestCreateOrder_TotalFromItems(t *testing.T) {
	svc, orderRepo, partyRepo, productRepo := buildOrderSvc()
	customer := seedParty(partyRepo, "Acme", model.RoleCustomer)
	widget := seedProduct(productRepo, "Widget", "WID-1", 100, "10.00")
	gadget := seedProduct(productRepo, "Gadget", "GAD-1", 100, "5.50")

	resp, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		ID:      "ORD-001",
		Type:    model.OrderTypeSales,
		PartyID: customer.ID.String(),
		Items: []dto.OrderItemRequest{
			{ProductID: widget.ID.String(), Quantity: 2},
			{ProductID: gadget.ID.String(), Quantity: 3},
		},
	})
	require.NoError(t, err)

	// 2x10.00 + 3x5.50 = 36.50
	assert.Equal(t, "36.5", resp.Total.String())
	assert.Equal(t, model.OrderStatusPending, resp.Status)
	assert.Len(t, resp.Items, 2)

	stored, err := orderRepo.FindByID(context.Background(), "ORD-001")
	require.NoError(t, err)
	assert.Equal(t, "36.5", stored.Total.String())
}

func TestCreateOrder_ExplicitPriceOverridesSnapshot(t *testing.T) {
	svc, _, partyRepo, productRepo := buildOrderSvc()
	customer := seedParty(partyRepo, "Acme", model.RoleCustomer)
	widget := seedProduct(productRepo, "Widget", "WID-1", 100, "10.00")

	override := decimal.RequireFromString("8.00")
	resp, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		ID:      "ORD-001",
		Type:    model.OrderTypeSales,
		PartyID: customer.ID.String(),
		Items: []dto.OrderItemRequest{
			{ProductID: widget.ID.String(), Quantity: 2, Price: &override},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "16", resp.Total.String())
	assert.Equal(t, "8", resp.Items[0].Price.String())
}

func TestCreateOrder_PriceSnapshotDoesNotFollowProduct(t *testing.T) {
	svc, orderRepo, partyRepo, productRepo := buildOrderSvc()
	customer := seedParty(partyRepo, "Acme", model.RoleCustomer)
	widget := seedProduct(productRepo, "Widget", "WID-1", 100, "10.00")

	_, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		ID:      "ORD-001",
		Type:    model.OrderTypeSales,
		PartyID: customer.ID.String(),
		Items:   []dto.OrderItemRequest{{ProductID: widget.ID.String(), Quantity: 1}},
	})
	require.NoError(t, err)

	// Later price change must not alter the stored snapshot
	widget.Price = decimal.RequireFromString("99.99")
	stored, err := orderRepo.FindByID(context.Background(), "ORD-001")
	require.NoError(t, err)
	assert.Equal(t, "10", stored.Items[0].Price.String())
}

func TestCreateOrder_RoleMismatch(t *testing.T) {
	svc, _, partyRepo, productRepo := buildOrderSvc()
	vendor := seedParty(partyRepo, "Supplies Inc", model.RoleVendor)
	widget := seedProduct(productRepo, "Widget", "WID-1", 100, "10.00")

	_, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		ID:      "ORD-001",
		Type:    model.OrderTypeSales,
		PartyID: vendor.ID.String(),
		Items:   []dto.OrderItemRequest{{ProductID: widget.ID.String(), Quantity: 1}},
	})
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindRoleMismatch, e.Kind)
}

func TestCreateOrder_PurchaseRequiresVendor(t *testing.T) {
	svc, _, partyRepo, productRepo := buildOrderSvc()
	vendor := seedParty(partyRepo, "Supplies Inc", model.RoleVendor)
	widget := seedProduct(productRepo, "Widget", "WID-1", 100, "10.00")

	_, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		ID:      "ORD-001",
		Type:    model.OrderTypePurchase,
		PartyID: vendor.ID.String(),
		Items:   []dto.OrderItemRequest{{ProductID: widget.ID.String(), Quantity: 1}},
	})
	assert.NoError(t, err)
}

func TestCreateOrder_DuplicateID(t *testing.T) {
	svc, _, partyRepo, productRepo := buildOrderSvc()
	customer := seedParty(partyRepo, "Acme", model.RoleCustomer)
	widget := seedProduct(productRepo, "Widget", "WID-1", 100, "10.00")

	req := dto.CreateOrderRequest{
		ID:      "ORD-001",
		Type:    model.OrderTypeSales,
		PartyID: customer.ID.String(),
		Items:   []dto.OrderItemRequest{{ProductID: widget.ID.String(), Quantity: 1}},
	}
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindConflict, e.Kind)
}

func TestCreateOrder_UnknownProduct(t *testing.T) {
	svc, _, partyRepo, _ := buildOrderSvc()
	customer := seedParty(partyRepo, "Acme", model.RoleCustomer)

	_, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		ID:      "ORD-001",
		Type:    model.OrderTypeSales,
		PartyID: customer.ID.String(),
		Items:   []dto.OrderItemRequest{{ProductID: uuid.NewString(), Quantity: 1}},
	})
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindNotFound, e.Kind)
}

func TestCreateOrder_ZeroQuantity(t *testing.T) {
	svc, _, partyRepo, productRepo := buildOrderSvc()
	customer := seedParty(partyRepo, "Acme", model.RoleCustomer)
	widget := seedProduct(productRepo, "Widget", "WID-1", 100, "10.00")

	_, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		ID:      "ORD-001",
		Type:    model.OrderTypeSales,
		PartyID: customer.ID.String(),
		Items:   []dto.OrderItemRequest{{ProductID: widget.ID.String(), Quantity: 0}},
	})
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindValidation, e.Kind)
}

func TestUpdateOrder_RevalidatesRole(t *testing.T) {
	svc, _, partyRepo, productRepo := buildOrderSvc()
	customer := seedParty(partyRepo, "Acme", model.RoleCustomer)
	widget := seedProduct(productRepo, "Widget", "WID-1", 100, "10.00")

	_, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		ID:      "ORD-001",
		Type:    model.OrderTypeSales,
		PartyID: customer.ID.String(),
		Items:   []dto.OrderItemRequest{{ProductID: widget.ID.String(), Quantity: 1}},
	})
	require.NoError(t, err)

	// Flipping a sales order to purchase with a customer party must fail
	newType := model.OrderTypePurchase
	_, err = svc.Update(context.Background(), "ORD-001", dto.UpdateOrderRequest{Type: &newType})
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindRoleMismatch, e.Kind)
}

func TestUpdateOrder_StatusOnly(t *testing.T) {
	svc, _, partyRepo, productRepo := buildOrderSvc()
	customer := seedParty(partyRepo, "Acme", model.RoleCustomer)
	widget := seedProduct(productRepo, "Widget", "WID-1", 100, "10.00")

	_, err := svc.Create(context.Background(), dto.CreateOrderRequest{
		ID:      "ORD-001",
		Type:    model.OrderTypeSales,
		PartyID: customer.ID.String(),
		Items:   []dto.OrderItemRequest{{ProductID: widget.ID.String(), Quantity: 2}},
	})
	require.NoError(t, err)

	confirmed := model.OrderStatusConfirmed
	resp, err := svc.Update(context.Background(), "ORD-001", dto.UpdateOrderRequest{Status: &confirmed})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusConfirmed, resp.Status)
	// Total untouched by a status change
	assert.Equal(t, "20", resp.Total.String())
}

func TestRevenue_ExcludesPendingAndCancelled(t *testing.T) {
	svc, orderRepo, partyRepo, productRepo := buildOrderSvc()
	customer := seedParty(partyRepo, "Acme", model.RoleCustomer)
	widget := seedProduct(productRepo, "Widget", "WID-1", 1000, "1.00")

	seed := func(id, status string, qty int) {
		_, err := svc.Create(context.Background(), dto.CreateOrderRequest{
			ID:      id,
			Type:    model.OrderTypeSales,
			PartyID: customer.ID.String(),
			Status:  status,
			Items:   []dto.OrderItemRequest{{ProductID: widget.ID.String(), Quantity: qty}},
		})
		require.NoError(t, err)
	}
	seed("ORD-001", model.OrderStatusConfirmed, 100)
	seed("ORD-002", model.OrderStatusPending, 50)
	seed("ORD-003", model.OrderStatusDelivered, 200)
	seed("ORD-004", model.OrderStatusCancelled, 300)
	require.Len(t, orderRepo.orders, 4)

	resp, err := svc.Revenue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "300", resp.Revenue.String())
}

func TestDeleteOrder_NotFound(t *testing.T) {
	svc, _, _, _ := buildOrderSvc()
	err := svc.Delete(context.Background(), "ORD-404")
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindNotFound, e.Kind)
}
