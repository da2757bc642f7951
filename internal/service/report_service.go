package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Yogesh-MG/inventory-os/internal/apperr"
	"github.com/Yogesh-MG/inventory-os/internal/dto"
	"github.com/Yogesh-MG/inventory-os/internal/infra"
	"github.com/Yogesh-MG/inventory-os/internal/model"
	"github.com/Yogesh-MG/inventory-os/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const reportCacheKey = "reports:inventory"

// previewSize bounds the sample handed to the analyzer prompt.
const previewSize = 5

// Analyzer abstracts the sidecar client so the gateway is testable without
// HTTP.
type Analyzer interface {
	Analyze(ctx context.Context, req infra.AnalyzerRequest) (*dto.InventoryReport, *infra.AnalyzerError)
}

// ReportService is the gateway to the external inventory analyzer. Reports
// are cached in Redis for a configurable TTL; refresh bypasses the cache.
type ReportService interface {
	InventoryReport(ctx context.Context, refresh bool) (*dto.InventoryReport, error)
}

type reportService struct {
	productRepo repository.ProductRepository
	analyzer    Analyzer
	rdb         *redis.Client
	cacheTTL    time.Duration
}

func NewReportService(
	productRepo repository.ProductRepository,
	analyzer Analyzer,
	rdb *redis.Client,
	cacheTTL time.Duration,
) ReportService {
	return &reportService{
		productRepo: productRepo,
		analyzer:    analyzer,
		rdb:         rdb,
		cacheTTL:    cacheTTL,
	}
}

func (s *reportService) cached(ctx context.Context) *dto.InventoryReport {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, reportCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var report dto.InventoryReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil
	}
	return &report
}

func (s *reportService) store(ctx context.Context, report *dto.InventoryReport) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, reportCacheKey, raw, s.cacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("could not cache inventory report")
	}
}

func snapshotRow(p *model.Product) dto.ReportProduct {
	return dto.ReportProduct{
		ID:       p.ID.String(),
		Name:     p.Name,
		Quantity: p.Quantity,
		Price:    p.Price,
		MinStock: p.MinStock,
		Category: p.CategoryName(),
	}
}

func (s *reportService) InventoryReport(ctx context.Context, refresh bool) (*dto.InventoryReport, error) {
	if !refresh {
		if report := s.cached(ctx); report != nil {
			return report, nil
		}
	}

	products, err := s.productRepo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.ReportProduct, 0, len(products))
	lowStock := 0
	totalValue := decimal.Zero
	for i := range products {
		p := &products[i]
		rows = append(rows, snapshotRow(p))
		if p.StockStatus() == model.StockLow {
			lowStock++
		}
		totalValue = totalValue.Add(p.TotalValue())
	}

	preview := rows
	if len(preview) > previewSize {
		preview = preview[:previewSize]
	}

	report, analyzerErr := s.analyzer.Analyze(ctx, infra.AnalyzerRequest{
		Products:      rows,
		TotalProducts: len(rows),
		LowStockItems: lowStock,
		TotalValue:    totalValue,
		Preview:       preview,
	})
	if analyzerErr != nil {
		return nil, apperr.External(analyzerErr.Category, analyzerErr.Message)
	}

	s.store(ctx, report)
	return report, nil
}
