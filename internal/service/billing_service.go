package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Yogesh-MG/inventory-os/internal/apperr"
	"github.com/Yogesh-MG/inventory-os/internal/dto"
	"github.com/Yogesh-MG/inventory-os/internal/infra"
	"github.com/Yogesh-MG/inventory-os/internal/model"
	"github.com/Yogesh-MG/inventory-os/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BillingService covers vendor bills and standalone purchase orders. Both
// reference vendor parties only; a customer party is a role mismatch.
type BillingService interface {
	CreateBill(ctx context.Context, req dto.CreateBillRequest) (dto.BillResponse, error)
	GetBill(ctx context.Context, id string) (dto.BillResponse, error)
	ListBills(ctx context.Context, filter dto.BillFilter) (dto.ListResponse[dto.BillResponse], error)
	UpdateBill(ctx context.Context, id string, req dto.UpdateBillRequest) (dto.BillResponse, error)
	DeleteBill(ctx context.Context, id string) error
	BillPDF(ctx context.Context, id string) ([]byte, string, error)

	CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest) (dto.PurchaseOrderResponse, error)
	GetPurchaseOrder(ctx context.Context, id string) (dto.PurchaseOrderResponse, error)
	ListPurchaseOrders(ctx context.Context, filter dto.PurchaseOrderFilter) (dto.ListResponse[dto.PurchaseOrderResponse], error)
	UpdatePurchaseOrder(ctx context.Context, id string, req dto.UpdatePurchaseOrderRequest) (dto.PurchaseOrderResponse, error)
	DeletePurchaseOrder(ctx context.Context, id string) error
}

type billingService struct {
	billRepo  repository.BillRepository
	poRepo    repository.PurchaseOrderRepository
	partyRepo repository.PartyRepository

	// now is swappable so tests can freeze the overdue clock.
	now func() time.Time
}

func NewBillingService(
	billRepo repository.BillRepository,
	poRepo repository.PurchaseOrderRepository,
	partyRepo repository.PartyRepository,
) BillingService {
	return &billingService{
		billRepo:  billRepo,
		poRepo:    poRepo,
		partyRepo: partyRepo,
		now:       time.Now,
	}
}

func (s *billingService) resolveVendor(ctx context.Context, raw string) (*model.Party, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperr.Validation("invalid vendor id")
	}
	vendor, err := s.partyRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("vendor not found")
		}
		return nil, err
	}
	if vendor.Role != model.RoleVendor {
		return nil, apperr.RoleMismatch("contact is not a vendor")
	}
	return vendor, nil
}

// ─── Bills ───────────────────────────────────────────────────────────────────

func (s *billingService) mapBill(b *model.Bill) dto.BillResponse {
	resp := dto.BillResponse{
		ID:         b.ID,
		VendorID:   b.VendorID.String(),
		BillNumber: b.BillNumber,
		Date:       fmtDate(b.Date),
		DueDate:    fmtDate(b.DueDate),
		Status:     b.Status,
		Amount:     b.Amount,
		IsOverdue:  b.IsOverdue(s.now()),
		CreatedAt:  fmtTime(b.CreatedAt),
		UpdatedAt:  fmtTime(b.UpdatedAt),
	}
	if b.Vendor != nil {
		resp.VendorName = b.Vendor.Name
	}
	return resp
}

func (s *billingService) CreateBill(ctx context.Context, req dto.CreateBillRequest) (dto.BillResponse, error) {
	vendor, err := s.resolveVendor(ctx, req.VendorID)
	if err != nil {
		return dto.BillResponse{}, err
	}
	if req.Amount.IsNegative() {
		return dto.BillResponse{}, apperr.Validation("amount cannot be negative")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return dto.BillResponse{}, apperr.Validation("invalid date")
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return dto.BillResponse{}, apperr.Validation("invalid due_date")
	}

	status := req.Status
	if status == "" {
		status = model.BillStatusUnpaid
	}

	b := &model.Bill{
		ID:         req.ID,
		VendorID:   vendor.ID,
		BillNumber: req.BillNumber,
		Date:       date,
		DueDate:    dueDate,
		Status:     status,
		Amount:     req.Amount,
	}
	if err := s.billRepo.Create(ctx, b); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.BillResponse{}, apperr.Conflict(fmt.Sprintf("bill %s or number %s already exists", req.ID, req.BillNumber))
		}
		return dto.BillResponse{}, err
	}
	b.Vendor = vendor
	return s.mapBill(b), nil
}

func (s *billingService) GetBill(ctx context.Context, id string) (dto.BillResponse, error) {
	b, err := s.billRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.BillResponse{}, apperr.NotFound("bill not found")
		}
		return dto.BillResponse{}, err
	}
	return s.mapBill(b), nil
}

func (s *billingService) ListBills(ctx context.Context, filter dto.BillFilter) (dto.ListResponse[dto.BillResponse], error) {
	bills, total, err := s.billRepo.List(ctx, filter)
	if err != nil {
		return dto.ListResponse[dto.BillResponse]{}, err
	}
	items := make([]dto.BillResponse, 0, len(bills))
	for i := range bills {
		items = append(items, s.mapBill(&bills[i]))
	}
	return dto.ListResponse[dto.BillResponse]{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *billingService) UpdateBill(ctx context.Context, id string, req dto.UpdateBillRequest) (dto.BillResponse, error) {
	b, err := s.billRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.BillResponse{}, apperr.NotFound("bill not found")
		}
		return dto.BillResponse{}, err
	}

	if req.VendorID != nil {
		vendor, err := s.resolveVendor(ctx, *req.VendorID)
		if err != nil {
			return dto.BillResponse{}, err
		}
		b.VendorID = vendor.ID
		b.Vendor = vendor
	}
	if req.BillNumber != nil {
		b.BillNumber = *req.BillNumber
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return dto.BillResponse{}, apperr.Validation("invalid date")
		}
		b.Date = date
	}
	if req.DueDate != nil {
		dueDate, err := parseDate(*req.DueDate)
		if err != nil {
			return dto.BillResponse{}, apperr.Validation("invalid due_date")
		}
		b.DueDate = dueDate
	}
	if req.Status != nil {
		b.Status = *req.Status
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return dto.BillResponse{}, apperr.Validation("amount cannot be negative")
		}
		b.Amount = *req.Amount
	}

	if err := s.billRepo.Update(ctx, b); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.BillResponse{}, apperr.Conflict("bill number already in use")
		}
		return dto.BillResponse{}, err
	}
	return s.mapBill(b), nil
}

func (s *billingService) DeleteBill(ctx context.Context, id string) error {
	if _, err := s.billRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("bill not found")
		}
		return err
	}
	return s.billRepo.Delete(ctx, id)
}

// BillPDF renders the bill as a PDF document. Returns the bytes and a
// suggested filename.
func (s *billingService) BillPDF(ctx context.Context, id string) ([]byte, string, error) {
	b, err := s.billRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperr.NotFound("bill not found")
		}
		return nil, "", err
	}
	vendorName := ""
	if b.Vendor != nil {
		vendorName = b.Vendor.Name
	}
	data, err := infra.GenerateBillPDF(b, vendorName)
	if err != nil {
		return nil, "", err
	}
	return data, fmt.Sprintf("bill-%s.pdf", b.BillNumber), nil
}

// ─── Purchase orders ─────────────────────────────────────────────────────────

func mapPurchaseOrder(po *model.PurchaseOrder) dto.PurchaseOrderResponse {
	resp := dto.PurchaseOrderResponse{
		ID:         po.ID,
		VendorID:   po.VendorID.String(),
		Date:       fmtDate(po.Date),
		Status:     po.Status,
		Total:      po.Total,
		ItemsCount: po.ItemsCount,
		CreatedAt:  fmtTime(po.CreatedAt),
		UpdatedAt:  fmtTime(po.UpdatedAt),
	}
	if po.Vendor != nil {
		resp.VendorName = po.Vendor.Name
	}
	return resp
}

func (s *billingService) CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest) (dto.PurchaseOrderResponse, error) {
	vendor, err := s.resolveVendor(ctx, req.VendorID)
	if err != nil {
		return dto.PurchaseOrderResponse{}, err
	}
	if req.Total.IsNegative() {
		return dto.PurchaseOrderResponse{}, apperr.Validation("total cannot be negative")
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return dto.PurchaseOrderResponse{}, apperr.Validation("invalid date")
	}

	status := req.Status
	if status == "" {
		status = model.PurchaseOrderStatusPending
	}

	po := &model.PurchaseOrder{
		ID:         req.ID,
		VendorID:   vendor.ID,
		Date:       date,
		Status:     status,
		Total:      req.Total,
		ItemsCount: req.ItemsCount,
	}
	if err := s.poRepo.Create(ctx, po); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return dto.PurchaseOrderResponse{}, apperr.Conflict(fmt.Sprintf("purchase order %s already exists", req.ID))
		}
		return dto.PurchaseOrderResponse{}, err
	}
	po.Vendor = vendor
	return mapPurchaseOrder(po), nil
}

func (s *billingService) GetPurchaseOrder(ctx context.Context, id string) (dto.PurchaseOrderResponse, error) {
	po, err := s.poRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PurchaseOrderResponse{}, apperr.NotFound("purchase order not found")
		}
		return dto.PurchaseOrderResponse{}, err
	}
	return mapPurchaseOrder(po), nil
}

func (s *billingService) ListPurchaseOrders(ctx context.Context, filter dto.PurchaseOrderFilter) (dto.ListResponse[dto.PurchaseOrderResponse], error) {
	pos, total, err := s.poRepo.List(ctx, filter)
	if err != nil {
		return dto.ListResponse[dto.PurchaseOrderResponse]{}, err
	}
	items := make([]dto.PurchaseOrderResponse, 0, len(pos))
	for i := range pos {
		items = append(items, mapPurchaseOrder(&pos[i]))
	}
	return dto.ListResponse[dto.PurchaseOrderResponse]{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *billingService) UpdatePurchaseOrder(ctx context.Context, id string, req dto.UpdatePurchaseOrderRequest) (dto.PurchaseOrderResponse, error) {
	po, err := s.poRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.PurchaseOrderResponse{}, apperr.NotFound("purchase order not found")
		}
		return dto.PurchaseOrderResponse{}, err
	}

	if req.VendorID != nil {
		vendor, err := s.resolveVendor(ctx, *req.VendorID)
		if err != nil {
			return dto.PurchaseOrderResponse{}, err
		}
		po.VendorID = vendor.ID
		po.Vendor = vendor
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return dto.PurchaseOrderResponse{}, apperr.Validation("invalid date")
		}
		po.Date = date
	}
	if req.Status != nil {
		po.Status = *req.Status
	}
	if req.Total != nil {
		if req.Total.IsNegative() {
			return dto.PurchaseOrderResponse{}, apperr.Validation("total cannot be negative")
		}
		po.Total = *req.Total
	}
	if req.ItemsCount != nil {
		if *req.ItemsCount < 0 {
			return dto.PurchaseOrderResponse{}, apperr.Validation("items_count cannot be negative")
		}
		po.ItemsCount = *req.ItemsCount
	}

	if err := s.poRepo.Update(ctx, po); err != nil {
		return dto.PurchaseOrderResponse{}, err
	}
	return mapPurchaseOrder(po), nil
}

func (s *billingService) DeletePurchaseOrder(ctx context.Context, id string) error {
	if _, err := s.poRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("purchase order not found")
		}
		return err
	}
	return s.poRepo.Delete(ctx, id)
}
