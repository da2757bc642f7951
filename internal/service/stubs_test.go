package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/Yogesh-MG/inventory-os/internal/dto"
	"github.com/Yogesh-MG/inventory-os/internal/model"
	"github.com/Yogesh-MG/inventory-os/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// In-memory repository stubs. They surface the same sentinel errors the GORM
// implementations translate to (ErrRecordNotFound, ErrDuplicatedKey) so the
// services under test exercise their real error mapping.

// ── Category ──────────────────────────────────────────────────────────────────

type stubCategoryRepo struct {
	categories map[uuid.UUID]*model.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[uuid.UUID]*model.Category)}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*model.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubCategoryRepo) List(_ context.Context) ([]model.Category, error) {
	out := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *model.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

var _ repository.CategoryRepository = (*stubCategoryRepo)(nil)

// ── Product ───────────────────────────────────────────────────────────────────

type stubProductRepo struct {
	products   map[uuid.UUID]*model.Product
	itemCounts map[uuid.UUID]int64
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{
		products:   make(map[uuid.UUID]*model.Product),
		itemCounts: make(map[uuid.UUID]int64),
	}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	for _, existing := range r.products {
		if existing.SKU == p.SKU {
			return gorm.ErrDuplicatedKey
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) FindBySKU(_ context.Context, sku string) (*model.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) List(_ context.Context, filter dto.ProductFilter) ([]model.Product, int64, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		if filter.Active == "true" && !p.Active {
			continue
		}
		if filter.Active == "false" && p.Active {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) Deactivate(_ context.Context, id uuid.UUID) error {
	if p, ok := r.products[id]; ok {
		p.Active = false
	}
	return nil
}

func (r *stubProductRepo) Reactivate(_ context.Context, id uuid.UUID) error {
	if p, ok := r.products[id]; ok {
		p.Active = true
	}
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.itemCounts[id] > 0 {
		return gorm.ErrForeignKeyViolated
	}
	delete(r.products, id)
	return nil
}

func (r *stubProductRepo) ListLowStock(_ context.Context) ([]model.Product, error) {
	var out []model.Product
	for _, p := range r.products {
		if p.Quantity <= p.MinStock {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stubProductRepo) TotalValue(_ context.Context, activeOnly bool) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range r.products {
		if activeOnly && !p.Active {
			continue
		}
		total = total.Add(p.TotalValue())
	}
	return total, nil
}

func (r *stubProductRepo) CountOrderItems(_ context.Context, id uuid.UUID) (int64, error) {
	return r.itemCounts[id], nil
}

func (r *stubProductRepo) Snapshot(_ context.Context) ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── Party ─────────────────────────────────────────────────────────────────────

type stubPartyRepo struct {
	parties    map[uuid.UUID]*model.Party
	stats      map[uuid.UUID]repository.PartyStats
	references map[uuid.UUID]int64
}

func newStubPartyRepo() *stubPartyRepo {
	return &stubPartyRepo{
		parties:    make(map[uuid.UUID]*model.Party),
		stats:      make(map[uuid.UUID]repository.PartyStats),
		references: make(map[uuid.UUID]int64),
	}
}

func (r *stubPartyRepo) Create(_ context.Context, p *model.Party) error {
	for _, existing := range r.parties {
		if existing.Email == p.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.parties[p.ID] = p
	return nil
}

func (r *stubPartyRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Party, error) {
	p, ok := r.parties[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubPartyRepo) FindByEmail(_ context.Context, email string) (*model.Party, error) {
	for _, p := range r.parties {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPartyRepo) List(_ context.Context, filter dto.PartyFilter) ([]model.Party, int64, error) {
	out := make([]model.Party, 0, len(r.parties))
	for _, p := range r.parties {
		if filter.Role != "" && p.Role != filter.Role {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (r *stubPartyRepo) Update(_ context.Context, p *model.Party) error {
	r.parties[p.ID] = p
	return nil
}

func (r *stubPartyRepo) Delete(_ context.Context, id uuid.UUID) error {
	if r.references[id] > 0 {
		return gorm.ErrForeignKeyViolated
	}
	delete(r.parties, id)
	return nil
}

func (r *stubPartyRepo) CountReferences(_ context.Context, id uuid.UUID) (int64, error) {
	return r.references[id], nil
}

func (r *stubPartyRepo) Stats(_ context.Context, id uuid.UUID) (repository.PartyStats, error) {
	s, ok := r.stats[id]
	if !ok {
		return repository.PartyStats{TotalValue: decimal.Zero}, nil
	}
	return s, nil
}

var _ repository.PartyRepository = (*stubPartyRepo)(nil)

// ── Order ─────────────────────────────────────────────────────────────────────

type stubOrderRepo struct {
	orders  map[string]*model.Order
	revenue decimal.Decimal
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*model.Order), revenue: decimal.Zero}
}

func (r *stubOrderRepo) Create(_ context.Context, _ *gorm.DB, o *model.Order) error {
	if _, exists := r.orders[o.ID]; exists {
		return gorm.ErrDuplicatedKey
	}
	r.orders[o.ID] = o
	return nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*model.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (r *stubOrderRepo) List(_ context.Context, filter dto.OrderFilter) ([]model.Order, int64, error) {
	out := make([]model.Order, 0, len(r.orders))
	for _, o := range r.orders {
		if filter.Type != "" && o.Type != filter.Type {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *stubOrderRepo) Update(_ context.Context, o *model.Order) error {
	r.orders[o.ID] = o
	return nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id string) error {
	delete(r.orders, id)
	return nil
}

// Revenue recomputes from stored orders: sales orders in revenue statuses.
func (r *stubOrderRepo) Revenue(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, o := range r.orders {
		if o.Type != model.OrderTypeSales {
			continue
		}
		for _, s := range model.RevenueStatuses {
			if o.Status == s {
				total = total.Add(o.Total)
				break
			}
		}
	}
	return total, nil
}

func (r *stubOrderRepo) DB() *gorm.DB { return nil }

var _ repository.OrderRepository = (*stubOrderRepo)(nil)

// ── Bill ──────────────────────────────────────────────────────────────────────

type stubBillRepo struct {
	bills map[string]*model.Bill
}

func newStubBillRepo() *stubBillRepo {
	return &stubBillRepo{bills: make(map[string]*model.Bill)}
}

func (r *stubBillRepo) Create(_ context.Context, b *model.Bill) error {
	if _, exists := r.bills[b.ID]; exists {
		return gorm.ErrDuplicatedKey
	}
	for _, existing := range r.bills {
		if existing.BillNumber == b.BillNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	r.bills[b.ID] = b
	return nil
}

func (r *stubBillRepo) FindByID(_ context.Context, id string) (*model.Bill, error) {
	b, ok := r.bills[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (r *stubBillRepo) FindByNumber(_ context.Context, number string) (*model.Bill, error) {
	for _, b := range r.bills {
		if b.BillNumber == number {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubBillRepo) List(_ context.Context, filter dto.BillFilter) ([]model.Bill, int64, error) {
	out := make([]model.Bill, 0, len(r.bills))
	for _, b := range r.bills {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, int64(len(out)), nil
}

func (r *stubBillRepo) Update(_ context.Context, b *model.Bill) error {
	r.bills[b.ID] = b
	return nil
}

func (r *stubBillRepo) Delete(_ context.Context, id string) error {
	delete(r.bills, id)
	return nil
}

var _ repository.BillRepository = (*stubBillRepo)(nil)

// ── Purchase order ────────────────────────────────────────────────────────────

type stubPurchaseOrderRepo struct {
	pos map[string]*model.PurchaseOrder
}

func newStubPurchaseOrderRepo() *stubPurchaseOrderRepo {
	return &stubPurchaseOrderRepo{pos: make(map[string]*model.PurchaseOrder)}
}

func (r *stubPurchaseOrderRepo) Create(_ context.Context, po *model.PurchaseOrder) error {
	if _, exists := r.pos[po.ID]; exists {
		return gorm.ErrDuplicatedKey
	}
	r.pos[po.ID] = po
	return nil
}

func (r *stubPurchaseOrderRepo) FindByID(_ context.Context, id string) (*model.PurchaseOrder, error) {
	po, ok := r.pos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return po, nil
}

func (r *stubPurchaseOrderRepo) List(_ context.Context, filter dto.PurchaseOrderFilter) ([]model.PurchaseOrder, int64, error) {
	out := make([]model.PurchaseOrder, 0, len(r.pos))
	for _, po := range r.pos {
		if filter.Status != "" && po.Status != filter.Status {
			continue
		}
		out = append(out, *po)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, int64(len(out)), nil
}

func (r *stubPurchaseOrderRepo) Update(_ context.Context, po *model.PurchaseOrder) error {
	r.pos[po.ID] = po
	return nil
}

func (r *stubPurchaseOrderRepo) Delete(_ context.Context, id string) error {
	delete(r.pos, id)
	return nil
}

var _ repository.PurchaseOrderRepository = (*stubPurchaseOrderRepo)(nil)

// ── Workflow ──────────────────────────────────────────────────────────────────

type stubWorkflowRepo struct {
	rules map[string]*model.WorkflowRule
}

func newStubWorkflowRepo() *stubWorkflowRepo {
	return &stubWorkflowRepo{rules: make(map[string]*model.WorkflowRule)}
}

func (r *stubWorkflowRepo) Create(_ context.Context, w *model.WorkflowRule) error {
	if _, exists := r.rules[w.ID]; exists {
		return gorm.ErrDuplicatedKey
	}
	r.rules[w.ID] = w
	return nil
}

func (r *stubWorkflowRepo) FindByID(_ context.Context, id string) (*model.WorkflowRule, error) {
	w, ok := r.rules[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return w, nil
}

func (r *stubWorkflowRepo) List(_ context.Context, filter dto.WorkflowRuleFilter) ([]model.WorkflowRule, int64, error) {
	out := make([]model.WorkflowRule, 0, len(r.rules))
	for _, w := range r.rules {
		if filter.Status != "" && w.Status != filter.Status {
			continue
		}
		out = append(out, *w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, int64(len(out)), nil
}

func (r *stubWorkflowRepo) Update(_ context.Context, w *model.WorkflowRule) error {
	r.rules[w.ID] = w
	return nil
}

func (r *stubWorkflowRepo) Delete(_ context.Context, id string) error {
	delete(r.rules, id)
	return nil
}

func (r *stubWorkflowRepo) Stamp(_ context.Context, id string, at time.Time) error {
	w, ok := r.rules[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	w.LastTriggered = &at
	return nil
}

var _ repository.WorkflowRepository = (*stubWorkflowRepo)(nil)

// ── Alert ─────────────────────────────────────────────────────────────────────

type stubAlertRepo struct {
	alerts map[string]*model.Alert
}

func newStubAlertRepo() *stubAlertRepo {
	return &stubAlertRepo{alerts: make(map[string]*model.Alert)}
}

func (r *stubAlertRepo) Create(_ context.Context, a *model.Alert) error {
	if _, exists := r.alerts[a.ID]; exists {
		return gorm.ErrDuplicatedKey
	}
	r.alerts[a.ID] = a
	return nil
}

func (r *stubAlertRepo) FindByID(_ context.Context, id string) (*model.Alert, error) {
	a, ok := r.alerts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *stubAlertRepo) List(_ context.Context, filter dto.AlertFilter) ([]model.Alert, int64, error) {
	out := make([]model.Alert, 0, len(r.alerts))
	for _, a := range r.alerts {
		if filter.Type != "" && a.Type != filter.Type {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (r *stubAlertRepo) Update(_ context.Context, a *model.Alert) error {
	r.alerts[a.ID] = a
	return nil
}

func (r *stubAlertRepo) HasUnreadTitled(_ context.Context, title string) (bool, error) {
	for _, a := range r.alerts {
		if a.Title == title && a.Status == model.AlertStatusUnread {
			return true, nil
		}
	}
	return false, nil
}

var _ repository.AlertRepository = (*stubAlertRepo)(nil)

// ── Notifier ──────────────────────────────────────────────────────────────────

type stubNotifier struct {
	sent []string // alert ids
}

func (n *stubNotifier) EnqueueAlertEmail(_ context.Context, alertID, _, _ string) error {
	n.sent = append(n.sent, alertID)
	return nil
}

var _ AlertNotifier = (*stubNotifier)(nil)
