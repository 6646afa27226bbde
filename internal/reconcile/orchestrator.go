package reconcile

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/devrev"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/domain"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/dto"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/identity"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/matcher"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/repository"
)

// Flow error strings surfaced in results
const (
	ErrMissingRegistrant  = "Missing registrant data"
	ErrMissingEvent       = "Missing event data from Airmeet"
	ErrEventObjectFailure = "Failed to create custom object for event"
)

// Result is the outcome of one reconciliation flow. Flows never panic or
// return a Go error past this boundary; failures are carried in Error.
type Result struct {
	Success        bool
	Error          string
	CustomObjectID string
}

// Orchestrator sequences identity resolution, custom object creation, and
// linking for registration webhooks, and custom object creation for
// event-created webhooks. All external mutations are single fire-and-forget
// calls with no rollback of earlier steps.
type Orchestrator struct {
	api      devrev.API
	resolver *identity.Resolver
	matcher  *matcher.Matcher
	outcomes repository.OutcomeRecorder
	log      *zap.Logger
}

// NewOrchestrator creates a new reconciliation orchestrator
func NewOrchestrator(api devrev.API, outcomes repository.OutcomeRecorder, log *zap.Logger) *Orchestrator {
	return &Orchestrator{
		api:      api,
		resolver: identity.NewResolver(api, log),
		matcher:  matcher.NewMatcher(api, log),
		outcomes: outcomes,
		log:      log,
	}
}

// HandleRegistration reconciles one Airmeet registration webhook
func (o *Orchestrator) HandleRegistration(ctx context.Context, deliveryID string, inputs dto.GlobalValues, payload json.RawMessage) Result {
	var registrant domain.Registrant
	if err := json.Unmarshal(payload, &registrant); err != nil || registrant.Email == "" {
		return Result{Error: ErrMissingRegistrant}
	}

	displayName := identity.FormatDisplayName(registrant.Name)
	emailDomain := identity.ExtractDomain(registrant.Email)

	account := o.resolver.ResolveAccount(ctx, emailDomain, inputs.OptInAccountLinking)
	accountID := ""
	if account != nil {
		accountID = account.ID
		o.record(ctx, deliveryID, dto.EventTypeRegistrationCreated, domain.StageAccountResolution, domain.OutcomeOK, accountID)
	} else {
		o.record(ctx, deliveryID, dto.EventTypeRegistrationCreated, domain.StageAccountResolution, domain.OutcomeSkipped, emailDomain)
	}

	contact := o.resolver.ResolveContact(ctx, registrant.Email, displayName, accountID)
	if contact == nil {
		// Without a contact there is nothing to attach the registration
		// record to; the flow ends quietly so the rest of the batch keeps
		// going.
		o.record(ctx, deliveryID, dto.EventTypeRegistrationCreated, domain.StageContactResolution, domain.OutcomeFailed, registrant.Email)
		return Result{Success: true}
	}
	o.record(ctx, deliveryID, dto.EventTypeRegistrationCreated, domain.StageContactResolution, domain.OutcomeOK, contact.ID)

	sideChannel, err := json.Marshal(registrant)
	if err != nil {
		o.log.Error("Failed to serialize registrant", zap.Error(err))
		return Result{Success: true}
	}

	fields := map[string]string{
		domain.FieldEventName:        registrant.AirmeetName,
		domain.FieldRegistrationDate: formatDate(registrant.RegistrationTime),
		domain.FieldContact:          contact.ID,
		domain.FieldOtherInfo:        string(sideChannel),
	}
	if accountID != "" {
		fields[domain.FieldAccount] = accountID
	}

	object, err := o.api.CreateCustomObject(ctx, devrev.CustomObjectCreate{
		LeafType:     inputs.RegistrationLeafType(),
		UniqueKey:    registrant.ID,
		CustomFields: fields,
		CustomSchemaSpec: domain.CustomSchemaSpec{
			TenantFragment:         true,
			ValidateRequiredFields: true,
		},
	})
	if err != nil {
		o.log.Error("Failed to create registration object",
			zap.String("registrant_id", registrant.ID),
			zap.Error(err))
		o.record(ctx, deliveryID, dto.EventTypeRegistrationCreated, domain.StageObjectCreation, domain.OutcomeFailed, err.Error())
		return Result{Success: true}
	}
	o.record(ctx, deliveryID, dto.EventTypeRegistrationCreated, domain.StageObjectCreation, domain.OutcomeOK, object.ID)

	o.linkToEvent(ctx, deliveryID, inputs, registrant.AirmeetID, object)

	return Result{Success: true, CustomObjectID: object.ID}
}

// linkToEvent matches the registration to its parent event object and
// creates a link. Linking is best-effort enrichment: every failure here is
// logged and swallowed, the registration record already exists.
func (o *Orchestrator) linkToEvent(ctx context.Context, deliveryID string, inputs dto.GlobalValues, airmeetID string, registration *domain.CustomObject) {
	if airmeetID == "" {
		return
	}

	eventObject := o.matcher.FindEventObject(ctx, airmeetID, inputs.EventLeafType())
	if eventObject == nil {
		o.log.Info("No event object matched for registration",
			zap.String("airmeet_id", airmeetID))
		o.record(ctx, deliveryID, dto.EventTypeRegistrationCreated, domain.StageLinkCreation, domain.OutcomeSkipped, airmeetID)
		return
	}

	_, err := o.api.CreateLink(ctx, devrev.LinkCreate{
		CustomLinkType: inputs.CustomLinkTypeID,
		Source:         registration.ID,
		Target:         eventObject.ID,
	})
	if err != nil {
		o.log.Warn("Failed to link registration to event",
			zap.String("registration_id", registration.ID),
			zap.String("event_object_id", eventObject.ID),
			zap.Error(err))
		o.record(ctx, deliveryID, dto.EventTypeRegistrationCreated, domain.StageLinkCreation, domain.OutcomeFailed, err.Error())
		return
	}
	o.record(ctx, deliveryID, dto.EventTypeRegistrationCreated, domain.StageLinkCreation, domain.OutcomeOK, eventObject.ID)
}

// HandleEventCreated creates a custom object for one Airmeet event-created
// webhook. The serialized side-channel blob embeds the airmeetId the
// matcher later parses to link registrations back to this event.
func (o *Orchestrator) HandleEventCreated(ctx context.Context, deliveryID string, inputs dto.GlobalValues, payload json.RawMessage) Result {
	var event domain.EventCreated
	if err := json.Unmarshal(payload, &event); err != nil || event.ID == "" || event.Name == "" {
		return Result{Error: ErrMissingEvent}
	}

	sideChannel, err := json.Marshal(domain.EventInfo{
		AirmeetID:      event.AirmeetID,
		OrganiserName:  event.OrganiserName,
		OrganiserEmail: event.OrganiserEmail,
		OrganiserURL:   event.OrganiserURL,
		OrganiserIntro: event.OrganiserIntro,
	})
	if err != nil {
		o.log.Error("Failed to serialize event info", zap.Error(err))
		return Result{Error: ErrEventObjectFailure}
	}

	object, err := o.api.CreateCustomObject(ctx, devrev.CustomObjectCreate{
		LeafType:  inputs.EventLeafType(),
		UniqueKey: event.ID,
		CustomFields: map[string]string{
			domain.FieldName:            event.Name,
			domain.FieldStartTime:       event.StartTime + " " + event.Timezone,
			domain.FieldEndTime:         event.EndTime + " " + event.Timezone,
			domain.FieldLongDescription: event.LongDesc,
			domain.FieldTimezone:        event.Timezone,
			domain.FieldOtherInfo:       string(sideChannel),
		},
		CustomSchemaSpec: domain.CustomSchemaSpec{
			TenantFragment:         true,
			ValidateRequiredFields: true,
		},
	})
	if err != nil {
		o.log.Error("Failed to create event object",
			zap.String("event_id", event.ID),
			zap.Error(err))
		o.record(ctx, deliveryID, dto.EventTypeEventCreated, domain.StageObjectCreation, domain.OutcomeFailed, err.Error())
		return Result{Error: ErrEventObjectFailure}
	}
	o.record(ctx, deliveryID, dto.EventTypeEventCreated, domain.StageObjectCreation, domain.OutcomeOK, object.ID)

	return Result{Success: true, CustomObjectID: object.ID}
}

// record writes one stage outcome to the audit log, best-effort
func (o *Orchestrator) record(ctx context.Context, deliveryID, eventType, stage, status, detail string) {
	outcome := domain.StageOutcome{
		DeliveryID: deliveryID,
		EventType:  eventType,
		Stage:      stage,
		Status:     status,
		Detail:     detail,
		OccurredAt: time.Now(),
	}
	if err := o.outcomes.Record(ctx, outcome); err != nil {
		o.log.Warn("Failed to record stage outcome",
			zap.String("stage", stage),
			zap.Error(err))
	}
}

// formatDate truncates an ISO timestamp to its date component
func formatDate(isoTime string) string {
	t, err := time.Parse(time.RFC3339, isoTime)
	if err != nil {
		datePart, _, _ := strings.Cut(isoTime, "T")
		return datePart
	}
	return t.UTC().Format("2006-01-02")
}
