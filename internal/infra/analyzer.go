package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Yogesh-MG/inventory-os/internal/dto"

	"github.com/shopspring/decimal"
)

// Analyzer failure categories surfaced to the reporting gateway.
const (
	AnalyzerFailInit      = "init"      // client not configured / not reachable at all
	AnalyzerFailCall      = "call"      // request failed, timed out, or breaker open
	AnalyzerFailMalformed = "malformed" // response did not conform to the schema
)

// AnalyzerError is the typed failure of an analyzer invocation. It is never
// allowed to escape as a generic error: the report endpoint always degrades
// to a structured error body.
type AnalyzerError struct {
	Category string
	Message  string
}

func (e *AnalyzerError) Error() string {
	return fmt.Sprintf("analyzer %s failure: %s", e.Category, e.Message)
}

// AnalyzerRequest is the payload sent to the analysis sidecar: the full
// snapshot, locally computed aggregates, a bounded preview (first 5
// products) for prompt economy, and the fixed response-schema descriptor.
type AnalyzerRequest struct {
	Products       []dto.ReportProduct `json:"products"`
	TotalProducts  int                 `json:"total_products"`
	LowStockItems  int                 `json:"low_stock_items"`
	TotalValue     decimal.Decimal     `json:"total_value"`
	Preview        []dto.ReportProduct `json:"sample_products"`
	ResponseSchema json.RawMessage     `json:"response_schema"`
}

// responseSchema is the descriptor the sidecar must conform to. The sidecar
// owns prompt construction and model selection; we only fix the contract.
const responseSchema = `{
  "type": "object",
  "required": ["summary", "low_stock_items", "total_value", "reorder_recommendations", "trends", "risk_level", "action_items"],
  "properties": {
    "summary": {"type": "string"},
    "low_stock_items": {"type": "integer"},
    "total_value": {"type": "number"},
    "reorder_recommendations": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["product_id", "suggested_qty", "urgency"],
        "properties": {
          "product_id": {"type": "string"},
          "suggested_qty": {"type": "integer"},
          "urgency": {"type": "string", "enum": ["low", "medium", "high"]}
        }
      }
    },
    "trends": {"type": "string"},
    "risk_level": {"type": "string", "enum": ["low", "medium", "high"]},
    "action_items": {"type": "array", "items": {"type": "string"}}
  }
}`

// AnalyzerClient is an HTTP client that delegates inventory analysis to the
// external sidecar. The circuit breaker isolates sidecar outages from the
// core backend.
type AnalyzerClient struct {
	sidecarURL string
	httpClient *http.Client
	cb         *CircuitBreaker
}

func NewAnalyzerClient(sidecarURL string, timeout time.Duration, cb *CircuitBreaker) *AnalyzerClient {
	return &AnalyzerClient{
		sidecarURL: sidecarURL,
		httpClient: &http.Client{Timeout: timeout},
		cb:         cb,
	}
}

// Analyze sends the snapshot to the sidecar and returns the structured
// report, or a typed AnalyzerError. It never returns both nil.
func (c *AnalyzerClient) Analyze(ctx context.Context, req AnalyzerRequest) (*dto.InventoryReport, *AnalyzerError) {
	if c.sidecarURL == "" {
		return nil, &AnalyzerError{Category: AnalyzerFailInit, Message: "analyzer sidecar URL not configured"}
	}

	req.ResponseSchema = json.RawMessage(responseSchema)
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &AnalyzerError{Category: AnalyzerFailCall, Message: "marshal request: " + err.Error()}
	}

	var report dto.InventoryReport
	callErr := c.cb.Execute(func() error {
		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.sidecarURL+"/analyze", bytes.NewReader(body))
		if err != nil {
			return err
		}
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("sidecar returned %d", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(&report)
	})
	if callErr != nil {
		return nil, &AnalyzerError{Category: AnalyzerFailCall, Message: callErr.Error()}
	}

	if err := validateReport(&report); err != nil {
		return nil, &AnalyzerError{Category: AnalyzerFailMalformed, Message: err.Error()}
	}
	return &report, nil
}

func validLevel(s string) bool {
	return s == "low" || s == "medium" || s == "high"
}

// validateReport enforces the response contract before the report is
// handed to callers.
func validateReport(r *dto.InventoryReport) error {
	if r.Summary == "" {
		return fmt.Errorf("missing summary")
	}
	if !validLevel(r.RiskLevel) {
		return fmt.Errorf("invalid risk_level %q", r.RiskLevel)
	}
	if len(r.ReorderRecommendations) == 0 {
		return fmt.Errorf("missing reorder_recommendations")
	}
	for _, rec := range r.ReorderRecommendations {
		if !validLevel(rec.Urgency) {
			return fmt.Errorf("invalid urgency %q", rec.Urgency)
		}
	}
	if len(r.ActionItems) == 0 {
		return fmt.Errorf("missing action_items")
	}
	return nil
}
