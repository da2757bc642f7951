package dto

// ─── Requests ────────────────────────────────────────────────────────────────

type CreateAlertRequest struct {
	ID          string `json:"id"          validate:"required,min=1,max=20"`
	Title       string `json:"title"       validate:"required,min=1,max=200"`
	Description string `json:"description"`
	Type        string `json:"type"        validate:"omitempty,oneof=critical warning info"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type AlertFilter struct {
	Type   string `form:"type"   validate:"omitempty,oneof=critical warning info"`
	Status string `form:"status" validate:"omitempty,oneof=unread read"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type AlertResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// ScanResponse reports the outcome of a low-stock scan.
type ScanResponse struct {
	Scanned int             `json:"scanned"`
	Created []AlertResponse `json:"created"`
}
