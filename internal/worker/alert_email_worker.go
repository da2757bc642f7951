package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Yogesh-MG/inventory-os/internal/infra"

	"github.com/rs/zerolog/log"
)

// AlertEmailPayload is the job envelope sent to QueueAlertEmail.
type AlertEmailPayload struct {
	AlertID     string `json:"alert_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AlertEmailWorker mails critical stock alerts to the configured recipient.
type AlertEmailWorker struct {
	mailer *infra.Mailer
	to     string
}

func NewAlertEmailWorker(mailer *infra.Mailer, to string) *AlertEmailWorker {
	return &AlertEmailWorker{mailer: mailer, to: to}
}

func (w *AlertEmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload AlertEmailPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("alert_email_worker: invalid payload")
		return nil // malformed payloads are not retryable
	}
	if w.to == "" {
		log.Warn().Str("alert_id", payload.AlertID).Msg("alert_email_worker: no recipient configured — skipping")
		return nil
	}

	subject := fmt.Sprintf("[%s] %s", payload.AlertID, payload.Title)
	if err := w.mailer.SendAlert(w.to, subject, payload.Description); err != nil {
		return fmt.Errorf("send alert mail: %w", err)
	}
	log.Info().Str("alert_id", payload.AlertID).Str("to", w.to).Msg("alert_email_worker: notification sent")
	return nil
}
