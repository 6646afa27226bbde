package consumer

import (
	"context"

	"go.uber.org/zap"

	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/dispatch"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/dto"
)

// Processor dispatches parsed webhook envelopes strictly one at a time,
// preserving delivery order. Business failures are carried in the per-event
// result, so an envelope is acked once dispatched either way; only the
// dispatcher deciding never ran leaves the message for redelivery.
type Processor struct {
	dispatcher dispatch.EventDispatcher
	log        *zap.Logger
}

// NewProcessor creates a new processor stage
func NewProcessor(dispatcher dispatch.EventDispatcher, log *zap.Logger) *Processor {
	return &Processor{
		dispatcher: dispatcher,
		log:        log,
	}
}

// Start begins processing envelopes from the input channel
func (p *Processor) Start(ctx context.Context, in <-chan *Envelope) {
	for {
		select {
		case <-ctx.Done():
			p.log.Info("Processor shutting down")
			return
		case envelope, ok := <-in:
			if !ok {
				p.log.Info("Processor input channel closed")
				return
			}
			p.processEnvelope(ctx, envelope)
		}
	}
}

// processEnvelope dispatches one envelope and acknowledges it
func (p *Processor) processEnvelope(ctx context.Context, envelope *Envelope) {
	results := p.dispatcher.Dispatch(ctx, []dto.WebhookEvent{*envelope.Event})

	for _, r := range results {
		if r.Success {
			p.log.Info("Envelope processed",
				zap.String("delivery_id", r.DeliveryID),
				zap.String("event_type", r.EventType),
				zap.String("custom_object_id", r.CustomObjectID))
		} else {
			p.log.Warn("Envelope processed with failure",
				zap.String("delivery_id", r.DeliveryID),
				zap.String("event_type", r.EventType),
				zap.String("error", r.Error))
		}
	}

	if err := envelope.Ack(ctx); err != nil {
		p.log.Error("Failed to ack envelope", zap.Error(err))
	}
}
