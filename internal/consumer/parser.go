package consumer

import (
	"encoding/json"
	"fmt"

	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/dto"
)

// JSONEnvelopeParser implements MessageParser for JSON webhook envelopes
type JSONEnvelopeParser struct{}

// NewJSONEnvelopeParser creates a new JSON envelope parser
func NewJSONEnvelopeParser() *JSONEnvelopeParser {
	return &JSONEnvelopeParser{}
}

// Parse parses a JSON message body into a webhook envelope. Messages
// without execution metadata cannot be routed and are rejected here so the
// dispatcher only ever sees routable envelopes.
func (p *JSONEnvelopeParser) Parse(body []byte) (*dto.WebhookEvent, error) {
	var event dto.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal webhook envelope: %w", err)
	}

	if event.ExecutionMetadata.EventType == "" {
		return nil, fmt.Errorf("webhook envelope is missing execution_metadata.event_type")
	}
	if event.ExecutionMetadata.DevRevEndpoint == "" {
		return nil, fmt.Errorf("webhook envelope is missing execution_metadata.devrev_endpoint")
	}

	return &event, nil
}
