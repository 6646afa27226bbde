package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"validation_error"`
	Message string `json:"message,omitempty" example:"events is required"`
}

// EventResult is the outcome of processing one webhook envelope
type EventResult struct {
	DeliveryID     string `json:"delivery_id" example:"9f2c1e6a-0b44-4a6b-9c7a-1f2e3d4c5b6a"`
	EventType      string `json:"event_type" example:"registration_created"`
	Success        bool   `json:"success" example:"true"`
	Error          string `json:"error,omitempty" example:"Missing registrant data"`
	CustomObjectID string `json:"custom_object_id,omitempty" example:"don:core:custom_object/1"`
}

// WebhookBatchResponse reports per-event results for a dispatched batch
type WebhookBatchResponse struct {
	Processed int           `json:"processed" example:"3"`
	Failed    int           `json:"failed" example:"1"`
	Results   []EventResult `json:"results"`
}
