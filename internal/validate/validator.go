package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/devrev"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/domain"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/dto"
)

// Catalog fetch failures, distinct from identifier mismatches
var (
	ErrSchemaFetch   = errors.New("Unable to fetch schemas for validation. Please try again later.")
	ErrLinkTypeFetch = errors.New("Unable to fetch link types for validation. Please try again later.")
)

// Validator is the pre-activation gate confirming that operator-chosen
// leaf types, field display names, and the link type id all exist in the
// live schema catalogs. A returned error blocks activation.
type Validator struct {
	api devrev.API
	log *zap.Logger
}

// NewValidator creates a new schema validator
func NewValidator(api devrev.API, log *zap.Logger) *Validator {
	return &Validator{api: api, log: log}
}

// Run validates the configured identifiers. It is a no-op for anything but
// a validation event; business webhook deliveries never reach the checks.
// Checks are fail-fast: the first missing identifier aborts validation. An
// identifier left blank fails the same check as a misspelled one, so a
// configuration the registration flow cannot link with never activates.
func (v *Validator) Run(ctx context.Context, event dto.WebhookEvent) error {
	if event.ExecutionMetadata.EventType != dto.EventTypeValidate {
		return nil
	}

	inputs := event.InputData.GlobalValues
	registrationLeaf := inputs.RegistrationLeafType()
	eventLeaf := inputs.EventLeafType()

	v.log.Info("Validating configuration",
		zap.String("leaf_type", registrationLeaf),
		zap.String("leaf_type_event_creation", eventLeaf))

	schemas, err := v.api.ListCustomSchemas(ctx)
	if err != nil {
		v.log.Error("Schema catalog fetch failed", zap.Error(err))
		return ErrSchemaFetch
	}

	registrationSchema := findSchema(schemas, registrationLeaf)
	if registrationSchema == nil {
		return fmt.Errorf("Invalid leaf_type %q. No custom schema found with this type. Please check your configuration.", registrationLeaf)
	}

	if findSchema(schemas, eventLeaf) == nil {
		return fmt.Errorf("Invalid leaf_type_event_creation %q. No custom schema found with this type. Please check your configuration.", eventLeaf)
	}

	if err := v.checkFields(registrationSchema, inputs); err != nil {
		return err
	}

	return v.checkLinkType(ctx, inputs.CustomLinkTypeID)
}

// checkFields requires every configured field display name to exist on the
// registration schema, checked independently in a fixed order
func (v *Validator) checkFields(schema *domain.Schema, inputs dto.GlobalValues) error {
	available := make(map[string]bool, len(schema.Fields))
	for _, f := range schema.Fields {
		available[normalizeDisplayName(f.UI.DisplayName)] = true
	}

	configured := []struct {
		key   string
		value string
	}{
		{"field_event_name", inputs.FieldEventName},
		{"field_registration_date", inputs.FieldRegistrationDate},
		{"field_account", inputs.FieldAccount},
		{"field_contact", inputs.FieldContact},
		{"field_other_info", inputs.FieldOtherInfo},
	}

	for _, c := range configured {
		if !available[normalizeDisplayName(c.value)] {
			return fmt.Errorf("Invalid %s %q. No field with this display name exists on schema %q. Please check your configuration.", c.key, c.value, schema.LeafType)
		}
	}

	return nil
}

// checkLinkType requires the configured link type id to exist in the
// custom link type catalog
func (v *Validator) checkLinkType(ctx context.Context, linkTypeID string) error {
	linkTypes, err := v.api.ListCustomLinkTypes(ctx)
	if err != nil {
		v.log.Error("Link type catalog fetch failed", zap.Error(err))
		return ErrLinkTypeFetch
	}

	for _, lt := range linkTypes {
		if lt.ID == linkTypeID {
			return nil
		}
	}

	return fmt.Errorf("Invalid custom_link_type_id %q. No custom link type found with this id. Please check your configuration.", linkTypeID)
}

// findSchema resolves a leaf type against the catalog, case-insensitively
func findSchema(schemas []domain.Schema, leafType string) *domain.Schema {
	for i := range schemas {
		if strings.EqualFold(schemas[i].LeafType, leafType) {
			return &schemas[i]
		}
	}
	return nil
}

// normalizeDisplayName trims, collapses whitespace, and lower-cases a field
// display name for comparison
func normalizeDisplayName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
