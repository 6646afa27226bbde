package domain

import "time"

// Reconciliation stages recorded in the outcome log
const (
	StageAccountResolution = "account_resolution"
	StageContactResolution = "contact_resolution"
	StageObjectCreation    = "object_creation"
	StageLinkCreation      = "link_creation"
	StageValidation        = "validation"
)

// Outcome statuses
const (
	OutcomeOK      = "ok"
	OutcomeSkipped = "skipped"
	OutcomeFailed  = "failed"
)

// StageOutcome records the result of one reconciliation stage so a failed
// stage can be targeted by manual reconciliation later
type StageOutcome struct {
	DeliveryID string    `ch:"delivery_id"`
	EventType  string    `ch:"event_type"`
	Stage      string    `ch:"stage"`
	Status     string    `ch:"status"`
	Detail     string    `ch:"detail"`
	OccurredAt time.Time `ch:"occurred_at"`
}
