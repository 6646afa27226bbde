package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/devrev"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/domain"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/dto"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/reconcile"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/repository"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/validate"
)

// ClientFactory builds a DevRev API client for one envelope's endpoint and
// token. Swapped for a stub in tests.
type ClientFactory func(endpoint, token string, log *zap.Logger) devrev.API

// Dispatcher routes webhook envelopes to the reconciliation flows or the
// schema validator by event type. Envelopes are processed strictly in
// order; one event's failure never blocks the rest of the batch.
type Dispatcher struct {
	clients  ClientFactory
	outcomes repository.OutcomeRecorder
	log      *zap.Logger
}

// NewDispatcher creates a dispatcher backed by real DevRev clients
func NewDispatcher(outcomes repository.OutcomeRecorder, log *zap.Logger) *Dispatcher {
	factory := func(endpoint, token string, log *zap.Logger) devrev.API {
		return devrev.NewClient(endpoint, token, log)
	}
	return NewDispatcherWithFactory(factory, outcomes, log)
}

// NewDispatcherWithFactory creates a dispatcher with a custom client factory
func NewDispatcherWithFactory(factory ClientFactory, outcomes repository.OutcomeRecorder, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		clients:  factory,
		outcomes: outcomes,
		log:      log,
	}
}

// Dispatch processes an ordered batch of envelopes sequentially and returns
// one result per envelope, in arrival order
func (d *Dispatcher) Dispatch(ctx context.Context, events []dto.WebhookEvent) []dto.EventResult {
	results := make([]dto.EventResult, 0, len(events))
	for i := range events {
		results = append(results, d.dispatchOne(ctx, events[i]))
	}
	return results
}

// dispatchOne routes a single envelope
func (d *Dispatcher) dispatchOne(ctx context.Context, event dto.WebhookEvent) dto.EventResult {
	deliveryID := uuid.NewString()
	eventType := event.ExecutionMetadata.EventType

	log := d.log.With(
		zap.String("delivery_id", deliveryID),
		zap.String("event_type", eventType))

	api := d.clients(event.ExecutionMetadata.DevRevEndpoint, event.Context.Secrets.ServiceAccountToken, log)
	inputs := event.InputData.GlobalValues

	result := dto.EventResult{DeliveryID: deliveryID, EventType: eventType}

	switch eventType {
	case dto.EventTypeRegistrationCreated:
		r := reconcile.NewOrchestrator(api, d.outcomes, log).HandleRegistration(ctx, deliveryID, inputs, event.Payload)
		result.Success = r.Success
		result.Error = r.Error
		result.CustomObjectID = r.CustomObjectID

	case dto.EventTypeEventCreated:
		r := reconcile.NewOrchestrator(api, d.outcomes, log).HandleEventCreated(ctx, deliveryID, inputs, event.Payload)
		result.Success = r.Success
		result.Error = r.Error
		result.CustomObjectID = r.CustomObjectID

	case dto.EventTypeValidate:
		err := validate.NewValidator(api, log).Run(ctx, event)
		if err != nil {
			log.Warn("Configuration validation failed", zap.Error(err))
			d.recordValidation(ctx, deliveryID, domain.OutcomeFailed, err.Error())
			result.Error = err.Error()
			break
		}
		d.recordValidation(ctx, deliveryID, domain.OutcomeOK, "")
		result.Success = true

	default:
		log.Warn("Skipping envelope with unsupported event type")
		result.Error = fmt.Sprintf("unsupported event type %q", eventType)
	}

	return result
}

// recordValidation writes the validation stage outcome, best-effort
func (d *Dispatcher) recordValidation(ctx context.Context, deliveryID, status, detail string) {
	outcome := domain.StageOutcome{
		DeliveryID: deliveryID,
		EventType:  dto.EventTypeValidate,
		Stage:      domain.StageValidation,
		Status:     status,
		Detail:     detail,
		OccurredAt: time.Now(),
	}
	if err := d.outcomes.Record(ctx, outcome); err != nil {
		d.log.Warn("Failed to record validation outcome", zap.Error(err))
	}
}
