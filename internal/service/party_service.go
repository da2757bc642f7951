package service

import (
	"context"
	"errors"

	"github.com/Yogesh-MG/inventory-os/internal/apperr"
	"github.com/Yogesh-MG/inventory-os/internal/dto"
	"github.com/Yogesh-MG/inventory-os/internal/model"
	"github.com/Yogesh-MG/inventory-os/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartyService manages the unified customer/vendor registry.
type PartyService interface {
	Create(ctx context.Context, req dto.CreatePartyRequest) (dto.PartyResponse, error)
	Get(ctx context.Context, id uuid.UUID) (dto.PartyResponse, error)
	List(ctx context.Context, filter dto.PartyFilter) (dto.ListResponse[dto.PartyResponse], error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdatePartyRequest) (dto.PartyResponse, error)

	// Delete refuses with reference_in_use while any order, bill or
	// purchase order references the party. Never cascades.
	Delete(ctx context.Context, id uuid.UUID) error
}

type partyService struct {
	repo repository.PartyRepository
}

func NewPartyService(repo repository.PartyRepository) PartyService {
	return &partyService{repo: repo}
}

func (s *partyService) mapParty(ctx context.Context, p model.Party) (dto.PartyResponse, error) {
	stats, err := s.repo.Stats(ctx, p.ID)
	if err != nil {
		return dto.PartyResponse{}, err
	}
	return dto.PartyResponse{
		ID:              p.ID.String(),
		Name:            p.Name,
		Email:           p.Email,
		Phone:           p.Phone,
		Company:         p.Company,
		Address:         p.Address,
		Role:            p.Role,
		OrderCount:      stats.OrderCount,
		TotalOrderValue: stats.TotalValue,
		Active:          p.Active,
		CreatedAt:       fmtTime(p.CreatedAt),
		UpdatedAt:       fmtTime(p.UpdatedAt),
	}, nil
}

func (s *partyService) Create(ctx context.Context, req dto.CreatePartyRequest) (dto.PartyResponse, error) {
	p := &model.Party{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Address: req.Address,
		Role:    req.Role,
		Active:  true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.PartyResponse{}, apperr.Conflict("a contact with that email already exists")
		}
		return dto.PartyResponse{}, err
	}
	return s.mapParty(ctx, *p)
}

func (s *partyService) Get(ctx context.Context, id uuid.UUID) (dto.PartyResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PartyResponse{}, apperr.NotFound("contact not found")
		}
		return dto.PartyResponse{}, err
	}
	return s.mapParty(ctx, *p)
}

func (s *partyService) List(ctx context.Context, filter dto.PartyFilter) (dto.ListResponse[dto.PartyResponse], error) {
	parties, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return dto.ListResponse[dto.PartyResponse]{}, err
	}
	items := make([]dto.PartyResponse, 0, len(parties))
	for _, p := range parties {
		resp, err := s.mapParty(ctx, p)
		if err != nil {
			return dto.ListResponse[dto.PartyResponse]{}, err
		}
		items = append(items, resp)
	}
	return dto.ListResponse[dto.PartyResponse]{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *partyService) Update(ctx context.Context, id uuid.UUID, req dto.UpdatePartyRequest) (dto.PartyResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PartyResponse{}, apperr.NotFound("contact not found")
		}
		return dto.PartyResponse{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.Phone != nil {
		p.Phone = req.Phone
	}
	if req.Company != nil {
		p.Company = req.Company
	}
	if req.Address != nil {
		p.Address = req.Address
	}
	if req.Role != nil {
		p.Role = *req.Role
	}
	if req.Active != nil {
		p.Active = *req.Active
	}

	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.PartyResponse{}, apperr.Conflict("a contact with that email already exists")
		}
		return dto.PartyResponse{}, err
	}
	return s.mapParty(ctx, *p)
}

func (s *partyService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("contact not found")
		}
		return err
	}

	refs, err := s.repo.CountReferences(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return apperr.ReferenceInUse("contact is referenced by orders, bills or purchase orders")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		// FK restrict backstops the check under concurrent order creation
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperr.ReferenceInUse("contact is referenced by orders, bills or purchase orders")
		}
		return err
	}
	return nil
}
