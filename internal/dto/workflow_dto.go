package dto

// ─── Requests ────────────────────────────────────────────────────────────────

// TriggerCondition and Action are opaque text for the external evaluator.
type CreateWorkflowRuleRequest struct {
	ID               string `json:"id"                validate:"required,min=1,max=20"`
	Name             string `json:"name"              validate:"required,min=1,max=200"`
	Description      string `json:"description"`
	TriggerCondition string `json:"trigger_condition" validate:"required,max=200"`
	Action           string `json:"action"            validate:"required,max=200"`
	Status           string `json:"status"            validate:"omitempty,oneof=active inactive"`
}

type UpdateWorkflowRuleRequest struct {
	Name             *string `json:"name"              validate:"omitempty,min=1,max=200"`
	Description      *string `json:"description"`
	TriggerCondition *string `json:"trigger_condition" validate:"omitempty,max=200"`
	Action           *string `json:"action"            validate:"omitempty,max=200"`
	Status           *string `json:"status"            validate:"omitempty,oneof=active inactive"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type WorkflowRuleFilter struct {
	Status string `form:"status" validate:"omitempty,oneof=active inactive"`
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type WorkflowRuleResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	TriggerCondition string  `json:"trigger_condition"`
	Action           string  `json:"action"`
	Status           string  `json:"status"`
	LastTriggered    *string `json:"last_triggered"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}
