package service

import (
	"context"
	"testing"

	"github.com/Yogesh-MG/inventory-os/internal/apperr"
	"github.com/Yogesh-MG/inventory-os/internal/dto"
	"github.com/Yogesh-MG/inventory-os/internal/model"
	"github.com/Yogesh-MG/inventory-os/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPartySvc() (PartyService, *stubPartyRepo) {
	repo := newStubPartyRepo()
	return NewPartyService(repo), repo
}

func TestCreateParty_DuplicateEmail(t *testing.T) {
	svc, _ := buildPartySvc()

	req := dto.CreatePartyRequest{Name: "Acme", Email: "acme@example.com", Role: model.RoleCustomer}
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	req.Name = "Acme Clone"
	_, err = svc.Create(context.Background(), req)
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindConflict, e.Kind)
}

func TestGetParty_CarriesOrderAggregates(t *testing.T) {
	svc, repo := buildPartySvc()
	p := seedParty(repo, "Acme", model.RoleCustomer)

	// order_count counts everything; total_order_value excludes cancelled
	repo.stats[p.ID] = repository.PartyStats{
		OrderCount: 4,
		TotalValue: decimal.RequireFromString("350.00"),
	}

	resp, err := svc.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.OrderCount)
	assert.Equal(t, "350", resp.TotalOrderValue.String())
}

func TestDeleteParty_BlockedByReferences(t *testing.T) {
	svc, repo := buildPartySvc()
	p := seedParty(repo, "Acme", model.RoleCustomer)
	repo.references[p.ID] = 3

	err := svc.Delete(context.Background(), p.ID)
	e, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.KindReferenceInUse, e.Kind)

	_, err = repo.FindByID(context.Background(), p.ID)
	assert.NoError(t, err)
}

func TestDeleteParty_Unreferenced(t *testing.T) {
	svc, repo := buildPartySvc()
	p := seedParty(repo, "Acme", model.RoleCustomer)

	require.NoError(t, svc.Delete(context.Background(), p.ID))
	_, err := repo.FindByID(context.Background(), p.ID)
	assert.Error(t, err)
}

func TestUpdateParty_RoleChangeAllowed(t *testing.T) {
	svc, repo := buildPartySvc()
	p := seedParty(repo, "Acme", model.RoleCustomer)

	vendor := model.RoleVendor
	resp, err := svc.Update(context.Background(), p.ID, dto.UpdatePartyRequest{Role: &vendor})
	require.NoError(t, err)
	assert.Equal(t, model.RoleVendor, resp.Role)
}
