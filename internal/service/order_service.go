package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Yogesh-MG/inventory-os/internal/apperr"
	"github.com/Yogesh-MG/inventory-os/internal/dto"
	"github.com/Yogesh-MG/inventory-os/internal/model"
	"github.com/Yogesh-MG/inventory-os/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService creates and mutates orders. Totals are always computed
// server-side from the line items with exact decimal arithmetic; no client
// input can set them.
type OrderService interface {
	Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error)
	Get(ctx context.Context, id string) (*dto.OrderResponse, error)
	List(ctx context.Context, filter dto.OrderFilter) (dto.ListResponse[dto.OrderResponse], error)
	Update(ctx context.Context, id string, req dto.UpdateOrderRequest) (*dto.OrderResponse, error)
	Delete(ctx context.Context, id string) error

	// Revenue sums sales orders in confirmed/shipped/delivered status.
	Revenue(ctx context.Context) (dto.RevenueResponse, error)
}

type orderService struct {
	repo        repository.OrderRepository
	partyRepo   repository.PartyRepository
	productRepo repository.ProductRepository
}

func NewOrderService(
	repo repository.OrderRepository,
	partyRepo repository.PartyRepository,
	productRepo repository.ProductRepository,
) OrderService {
	return &orderService{repo: repo, partyRepo: partyRepo, productRepo: productRepo}
}

// requiredRole maps an order type to the party role it demands.
func requiredRole(orderType string) string {
	if orderType == model.OrderTypePurchase {
		return model.RoleVendor
	}
	return model.RoleCustomer
}

func (s *orderService) checkPartyRole(ctx context.Context, partyID uuid.UUID, orderType string) (*model.Party, error) {
	party, err := s.partyRepo.FindByID(ctx, partyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("contact not found")
		}
		return nil, err
	}
	if want := requiredRole(orderType); party.Role != want {
		return nil, apperr.RoleMismatch(fmt.Sprintf("%s orders require a %s contact", orderType, want))
	}
	return party, nil
}

// ── Create ────────────────────────────────────────────────────────────────────
// 1. Validate party role against order type
// 2. Resolve every item: product must exist, quantity >= 1, price snapshot
//    (an explicit caller price wins over the current product price)
// 3. BEGIN TX: insert order + all items; the id unique constraint rejects
//    concurrent duplicates
// 4. COMMIT — a failure at any item leaves no partial state

func (s *orderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	partyID, err := uuid.Parse(req.PartyID)
	if err != nil {
		return nil, apperr.Validation("invalid contact id")
	}
	party, err := s.checkPartyRole(ctx, partyID, req.Type)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.OrderStatusPending
	}

	order := model.Order{
		ID:      req.ID,
		Type:    req.Type,
		PartyID: partyID,
		Status:  status,
	}

	productNames := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, apperr.Validation("invalid product id")
		}
		if item.Quantity < 1 {
			return nil, apperr.Validation("item quantity must be at least 1")
		}
		product, err := s.productRepo.FindByID(ctx, pid)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound(fmt.Sprintf("product %s not found", item.ProductID))
			}
			return nil, err
		}

		price := product.Price
		if item.Price != nil {
			if item.Price.IsNegative() {
				return nil, apperr.Validation("item price cannot be negative")
			}
			price = *item.Price
		}

		order.Items = append(order.Items, model.OrderItem{
			ProductID: pid,
			Quantity:  item.Quantity,
			Price:     price,
		})
		productNames = append(productNames, product.Name)
	}

	order.Total = order.ComputeTotal()

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, &order)
	})
	if txErr != nil {
		if errors.Is(txErr, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict(fmt.Sprintf("order %s already exists", req.ID))
		}
		return nil, txErr
	}

	resp := orderToResponse(&order)
	resp.PartyName = party.Name
	resp.PartyCompany = party.Company
	for i, name := range productNames {
		resp.Items[i].ProductName = name
	}
	return resp, nil
}

func (s *orderService) Get(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}
	return orderToResponse(order), nil
}

func (s *orderService) List(ctx context.Context, filter dto.OrderFilter) (dto.ListResponse[dto.OrderResponse], error) {
	orders, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return dto.ListResponse[dto.OrderResponse]{}, err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, *orderToResponse(&orders[i]))
	}
	return dto.ListResponse[dto.OrderResponse]{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

// Update mutates status/type/party. The request surface has no total
// field, and the total is recomputed from the stored items on every
// update, so a direct total mutation is impossible.
func (s *orderService) Update(ctx context.Context, id string, req dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}

	if req.Type != nil {
		order.Type = *req.Type
	}
	if req.PartyID != nil {
		partyID, err := uuid.Parse(*req.PartyID)
		if err != nil {
			return nil, apperr.Validation("invalid contact id")
		}
		order.PartyID = partyID
		order.Party = nil
	}
	if req.Type != nil || req.PartyID != nil {
		party, err := s.checkPartyRole(ctx, order.PartyID, order.Type)
		if err != nil {
			return nil, err
		}
		order.Party = party
	}
	if req.Status != nil {
		order.Status = *req.Status
	}

	order.Total = order.ComputeTotal()

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return orderToResponse(order), nil
	}
	return orderToResponse(updated), nil
}

func (s *orderService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("order not found")
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *orderService) Revenue(ctx context.Context) (dto.RevenueResponse, error) {
	revenue, err := s.repo.Revenue(ctx)
	if err != nil {
		return dto.RevenueResponse{}, err
	}
	if revenue.IsZero() {
		revenue = decimal.Zero
	}
	return dto.RevenueResponse{Revenue: revenue}, nil
}

func orderToResponse(o *model.Order) *dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for i := range o.Items {
		item := &o.Items[i]
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		items = append(items, dto.OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID.String(),
			ProductName: name,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Subtotal:    item.Subtotal(),
		})
	}

	resp := &dto.OrderResponse{
		ID:        o.ID,
		Type:      o.Type,
		PartyID:   o.PartyID.String(),
		Status:    o.Status,
		Total:     o.Total,
		Items:     items,
		CreatedAt: fmtTime(o.CreatedAt),
		UpdatedAt: fmtTime(o.UpdatedAt),
	}
	if o.Party != nil {
		resp.PartyName = o.Party.Name
		resp.PartyCompany = o.Party.Company
	}
	return resp
}
