package consumer

import (
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/dto"
)

// MessageParser defines the interface for parsing raw message bytes into
// webhook envelopes
type MessageParser interface {
	Parse(body []byte) (*dto.WebhookEvent, error)
}
