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

func buildProductSvc() (ProductService, *stubProductRepo, *stubCategoryRepo) {
	productRepo := newStubProductRepo()
	categoryRepo := newStubCategoryRepo()
	return NewProductService(productRepo, categoryRepo), productRepo, categoryRepo
}

func TestCreateProduct_DerivedFields(t *testing.T) {
	svc, _, _ := buildProductSvc()

	resp, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Widget",
		SKU:      "WID-1",
		Quantity: 5,
		Price:    decimal.RequireFromString("19.99"),
		MinStock: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StockLow, resp.StockStatus)
	assert.Equal(t, "99.95", resp.TotalValue.String())
	assert.Equal(t, "Uncategorized", resp.CategoryName)
	assert.True(t, resp.Active)
}

func TestCreateProduct_DuplicateSKU(t *testing.T) {
	svc, _, _ := buildProductSvc()

	req := dto.CreateProductRequest{Name: "Widget", SKU: "WID-1", Price: decimal.Zero}
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), req)
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindConflict, e.Kind)
}

func TestCreateProduct_AbsentCategoryIsUnset(t *testing.T) {
	svc, _, _ := buildProductSvc()

	// Category id that does not exist: the product is created uncategorized
	ghost := uuid.NewString()
	resp, err := svc.Create(context.Background(), dto.CreateProductRequest{
		Name:       "Widget",
		SKU:        "WID-1",
		Price:      decimal.Zero,
		CategoryID: &ghost,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.CategoryID)
	assert.Equal(t, "Uncategorized", resp.CategoryName)
}

func TestUpdateProduct_NegativeQuantityRejected(t *testing.T) {
	svc, repo, _ := buildProductSvc()
	p := seedProduct(repo, "Widget", "WID-1", 10, "5.00")

	neg := -1
	_, err := svc.Update(context.Background(), p.ID, dto.UpdateProductRequest{Quantity: &neg})
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindValidation, e.Kind)
}

func TestDeleteProduct_BlockedByOrderItems(t *testing.T) {
	svc, repo, _ := buildProductSvc()
	p := seedProduct(repo, "Widget", "WID-1", 10, "5.00")
	repo.itemCounts[p.ID] = 2

	err := svc.Delete(context.Background(), p.ID)
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindReferenceInUse, e.Kind)

	// Still present
	_, err = repo.FindByID(context.Background(), p.ID)
	assert.NoError(t, err)
}

func TestDeleteProduct_Unreferenced(t *testing.T) {
	svc, repo, _ := buildProductSvc()
	p := seedProduct(repo, "Widget", "WID-1", 10, "5.00")

	require.NoError(t, svc.Delete(context.Background(), p.ID))
	_, err := repo.FindByID(context.Background(), p.ID)
	assert.Error(t, err)
}

func TestLowStock(t *testing.T) {
	svc, repo, _ := buildProductSvc()
	low := seedProduct(repo, "Almost gone", "LOW-1", 2, "5.00")
	low.MinStock = 5
	ok := seedProduct(repo, "Plenty", "OK-1", 50, "5.00")
	ok.MinStock = 5

	items, err := svc.LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Almost gone", items[0].Name)
}

func TestTotalValue_ActiveOnlyByDefault(t *testing.T) {
	svc, repo, _ := buildProductSvc()
	seedProduct(repo, "Active", "A-1", 2, "10.00")
	inactive := seedProduct(repo, "Retired", "R-1", 3, "10.00")
	inactive.Active = false

	resp, err := svc.TotalValue(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "20", resp.TotalValue.String())

	resp, err = svc.TotalValue(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, "50", resp.TotalValue.String())
}
