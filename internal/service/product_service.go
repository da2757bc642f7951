package service

import (
	"context"
	"errors"

	"github.com/Yogesh-MG/inventory-os/internal/apperr"
	"github.com/Yogesh-MG/inventory-os/internal/dto"
	"github.com/Yogesh-MG/inventory-os/internal/model"
	"github.com/Yogesh-MG/inventory-os/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductService defines the catalog operations. Stock status and total
// value are recomputed on every read; they are never persisted.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (dto.ProductResponse, error)
	Get(ctx context.Context, id uuid.UUID) (dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) (dto.ListResponse[dto.ProductResponse], error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (dto.ProductResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	Reactivate(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error

	// LowStock lists products with quantity <= min_stock.
	LowStock(ctx context.Context) ([]dto.ProductResponse, error)

	// TotalValue aggregates quantity*price; active products only unless
	// includeInactive is set.
	TotalValue(ctx context.Context, includeInactive bool) (dto.TotalValueResponse, error)
}

type productService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) ProductService {
	return &productService{repo: repo, categoryRepo: categoryRepo}
}

func mapProduct(p model.Product) dto.ProductResponse {
	var categoryID *string
	if p.CategoryID != nil {
		id := p.CategoryID.String()
		categoryID = &id
	}
	return dto.ProductResponse{
		ID:           p.ID.String(),
		Name:         p.Name,
		SKU:          p.SKU,
		Barcode:      p.Barcode,
		CategoryID:   categoryID,
		CategoryName: p.CategoryName(),
		Quantity:     p.Quantity,
		Price:        p.Price,
		MinStock:     p.MinStock,
		Description:  p.Description,
		StockStatus:  p.StockStatus(),
		TotalValue:   p.TotalValue(),
		Active:       p.Active,
		CreatedAt:    fmtTime(p.CreatedAt),
		UpdatedAt:    fmtTime(p.UpdatedAt),
	}
}

// resolveCategory maps a caller-supplied category id to a pointer, treating
// an absent category as unset rather than an error. This mirrors the
// null-on-delete semantics of the category link.
func (s *productService) resolveCategory(ctx context.Context, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, apperr.Validation("invalid category id")
	}
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &id, nil
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (dto.ProductResponse, error) {
	if req.Price.IsNegative() {
		return dto.ProductResponse{}, apperr.Validation("price cannot be negative")
	}

	categoryID, err := s.resolveCategory(ctx, req.CategoryID)
	if err != nil {
		return dto.ProductResponse{}, err
	}

	p := &model.Product{
		Name:        req.Name,
		SKU:         req.SKU,
		Barcode:     req.Barcode,
		CategoryID:  categoryID,
		Quantity:    req.Quantity,
		Price:       req.Price,
		MinStock:    req.MinStock,
		Description: req.Description,
		Active:      true,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.ProductResponse{}, apperr.Conflict("a product with that SKU already exists")
		}
		return dto.ProductResponse{}, err
	}

	created, err := s.repo.FindByID(ctx, p.ID)
	if err != nil {
		return mapProduct(*p), nil
	}
	return mapProduct(*created), nil
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductResponse{}, apperr.NotFound("product not found")
		}
		return dto.ProductResponse{}, err
	}
	return mapProduct(*p), nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) (dto.ListResponse[dto.ProductResponse], error) {
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return dto.ListResponse[dto.ProductResponse]{}, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, mapProduct(p))
	}
	return dto.ListResponse[dto.ProductResponse]{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.ProductResponse{}, apperr.NotFound("product not found")
		}
		return dto.ProductResponse{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Barcode != nil {
		p.Barcode = req.Barcode
	}
	if req.CategoryID != nil {
		categoryID, err := s.resolveCategory(ctx, req.CategoryID)
		if err != nil {
			return dto.ProductResponse{}, err
		}
		p.CategoryID = categoryID
		p.Category = nil
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return dto.ProductResponse{}, apperr.Validation("quantity cannot be negative")
		}
		p.Quantity = *req.Quantity
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return dto.ProductResponse{}, apperr.Validation("price cannot be negative")
		}
		p.Price = *req.Price
	}
	if req.MinStock != nil {
		if *req.MinStock < 0 {
			return dto.ProductResponse{}, apperr.Validation("min_stock cannot be negative")
		}
		p.MinStock = *req.MinStock
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.Active != nil {
		p.Active = *req.Active
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return dto.ProductResponse{}, err
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapProduct(*p), nil
	}
	return mapProduct(*updated), nil
}

func (s *productService) Deactivate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("product not found")
		}
		return err
	}
	return s.repo.Deactivate(ctx, id)
}

func (s *productService) Reactivate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("product not found")
		}
		return err
	}
	return s.repo.Reactivate(ctx, id)
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("product not found")
		}
		return err
	}

	refs, err := s.repo.CountOrderItems(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return apperr.ReferenceInUse("product is referenced by order items")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		// FK restrict backstops the check above under concurrent item creation
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return apperr.ReferenceInUse("product is referenced by order items")
		}
		return err
	}
	return nil
}

func (s *productService) LowStock(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, mapProduct(p))
	}
	return items, nil
}

func (s *productService) TotalValue(ctx context.Context, includeInactive bool) (dto.TotalValueResponse, error) {
	total, err := s.repo.TotalValue(ctx, !includeInactive)
	if err != nil {
		return dto.TotalValueResponse{}, err
	}
	if total.IsZero() {
		total = decimal.Zero
	}
	return dto.TotalValueResponse{TotalValue: total}, nil
}
