package dispatch

import (
	"context"

	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/dto"
)

// EventDispatcher defines the interface for dispatching webhook batches
type EventDispatcher interface {
	Dispatch(ctx context.Context, events []dto.WebhookEvent) []dto.EventResult
}
