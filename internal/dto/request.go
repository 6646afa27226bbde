package dto

import "encoding/json"

// Event types carried in execution metadata
const (
	EventTypeRegistrationCreated = "registration_created"
	EventTypeEventCreated        = "event_created"
	EventTypeValidate            = "validate"
)

// ExecutionMetadata identifies the target DevRev instance and the event kind
type ExecutionMetadata struct {
	DevRevEndpoint string `json:"devrev_endpoint" binding:"required" example:"https://api.devrev.ai"`
	EventType      string `json:"event_type" binding:"required" example:"registration_created"`
}

// Secrets carries the credentials delivered with each envelope
type Secrets struct {
	ServiceAccountToken string `json:"service_account_token"`
}

// EventContext wraps the per-envelope secrets
type EventContext struct {
	Secrets Secrets `json:"secrets"`
}

// GlobalValues are the operator-chosen configuration inputs
type GlobalValues struct {
	LeafType              string `json:"leaf_type" example:"registration"`
	LeafTypeEventCreation string `json:"leaf_type_event_creation" example:"airmeet_event"`
	FieldEventName        string `json:"field_event_name" example:"Event Name"`
	FieldRegistrationDate string `json:"field_registration_date" example:"Registration Date"`
	FieldAccount          string `json:"field_account" example:"Account"`
	FieldContact          string `json:"field_contact" example:"Contact"`
	FieldOtherInfo        string `json:"field_other_info" example:"Other Info"`
	CustomLinkTypeID      string `json:"custom_link_type_id" example:"link_type/attendee_of"`
	OptInAccountLinking   bool   `json:"opt_in_account_linking" example:"true"`
}

// InputData wraps the operator inputs
type InputData struct {
	GlobalValues GlobalValues `json:"global_values"`
}

// WebhookEvent is one delivered webhook envelope. Payload is decoded by the
// flow that handles the event type; validation events carry none.
type WebhookEvent struct {
	ExecutionMetadata ExecutionMetadata `json:"execution_metadata" binding:"required"`
	Context           EventContext      `json:"context"`
	InputData         InputData         `json:"input_data"`
	Payload           json.RawMessage   `json:"payload"`
}

// WebhookBatchRequest is an ordered batch of webhook envelopes
type WebhookBatchRequest struct {
	Events []WebhookEvent `json:"events" binding:"required,min=1,max=100,dive"`
}
