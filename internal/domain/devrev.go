package domain

// Custom field keys used on registration and event custom objects
const (
	FieldEventName        = "tnt__event_name"
	FieldRegistrationDate = "tnt__registration_date"
	FieldAccount          = "tnt__account"
	FieldContact          = "tnt__contact"
	FieldOtherInfo        = "tnt__other_info"
	FieldName             = "tnt__name"
	FieldStartTime        = "tnt__start_time"
	FieldEndTime          = "tnt__end_time"
	FieldLongDescription  = "tnt__long_description"
	FieldTimezone         = "tnt__timezone"
)

// Account is a DevRev account keyed by domain
type Account struct {
	ID           string   `json:"id"`
	DisplayName  string   `json:"display_name"`
	Domains      []string `json:"domains"`
	ExternalRefs []string `json:"external_refs"`
}

// Contact is a DevRev rev-user keyed by email
type Contact struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	ExternalRef string `json:"external_ref"`
	Account     string `json:"account,omitempty"`
}

// CustomSchemaSpec controls schema handling on custom object creation
type CustomSchemaSpec struct {
	TenantFragment         bool `json:"tenant_fragment"`
	ValidateRequiredFields bool `json:"validate_required_fields"`
}

// CustomObject is a typed record instance of a tenant leaf type
type CustomObject struct {
	ID               string            `json:"id"`
	LeafType         string            `json:"leaf_type"`
	UniqueKey        string            `json:"unique_key"`
	CustomFields     map[string]string `json:"custom_fields"`
	CustomSchemaSpec CustomSchemaSpec  `json:"custom_schema_spec"`
}

// Link is a directed relation between two custom objects
type Link struct {
	ID             string `json:"id"`
	CustomLinkType string `json:"custom_link_type"`
	Source         string `json:"source"`
	Target         string `json:"target"`
}

// FieldUI holds the operator-facing presentation of a schema field
type FieldUI struct {
	DisplayName string `json:"display_name"`
}

// SchemaField is one field of a custom schema
type SchemaField struct {
	UI FieldUI `json:"ui"`
}

// Schema is a tenant custom schema catalog entry
type Schema struct {
	LeafType string        `json:"leaf_type"`
	Fields   []SchemaField `json:"fields"`
}

// LinkType is a tenant custom link type catalog entry
type LinkType struct {
	ID string `json:"id"`
}
