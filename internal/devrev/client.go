package devrev

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/domain"
)

// DevRev internal API paths
const (
	pathAccountsList      = "/internal/accounts.list"
	pathAccountsCreate    = "/internal/accounts.create"
	pathRevUsersList      = "/internal/rev-users.list"
	pathRevUsersCreate    = "/internal/rev-users.create"
	pathCustomObjCreate   = "/internal/custom-objects.create"
	pathCustomObjList     = "/internal/custom-objects.list"
	pathLinksCreate       = "/internal/links.create"
	pathSchemasCustomList = "/internal/schemas.custom.list?is_custom_leaf_type=true&prune=fields&types=tenant_fragment"
	pathLinkTypesList     = "/internal/link-types.custom.list"
)

// ContactCreate is the rev-users.create request body
type ContactCreate struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	ExternalRef string `json:"external_ref"`
	Account     string `json:"account,omitempty"`
}

// CustomObjectCreate is the custom-objects.create request body
type CustomObjectCreate struct {
	LeafType         string                  `json:"leaf_type"`
	UniqueKey        string                  `json:"unique_key"`
	CustomFields     map[string]string       `json:"custom_fields"`
	CustomSchemaSpec domain.CustomSchemaSpec `json:"custom_schema_spec"`
}

// LinkCreate is the links.create request body
type LinkCreate struct {
	CustomLinkType string `json:"custom_link_type"`
	Source         string `json:"source"`
	Target         string `json:"target"`
}

// API is the DevRev surface the reconciliation pipeline depends on
type API interface {
	ListAccounts(ctx context.Context, accountDomain string) ([]domain.Account, error)
	CreateAccount(ctx context.Context, accountDomain string) (*domain.Account, error)
	ListContacts(ctx context.Context, email string) ([]domain.Contact, error)
	CreateContact(ctx context.Context, req ContactCreate) (*domain.Contact, error)
	CreateCustomObject(ctx context.Context, req CustomObjectCreate) (*domain.CustomObject, error)
	ListCustomObjects(ctx context.Context, leafType string) ([]domain.CustomObject, error)
	CreateLink(ctx context.Context, req LinkCreate) (*domain.Link, error)
	ListCustomSchemas(ctx context.Context) ([]domain.Schema, error)
	ListCustomLinkTypes(ctx context.Context) ([]domain.LinkType, error)
}

// Client implements API against one DevRev instance. Each webhook envelope
// carries its own endpoint and token, so a client is built per envelope.
type Client struct {
	endpoint string
	token    string
	http     *http.Client
	log      *zap.Logger
}

// NewClient creates a DevRev API client for the given endpoint and token
func NewClient(endpoint, token string, log *zap.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		http:     &http.Client{Timeout: 30 * time.Second},
		log:      log,
	}
}

// post issues one call and unwraps the envelope into out
func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	res := postCall(ctx, c.http, c.endpoint+path, c.token, payload)
	logResult(c.log, path, res)
	if !res.Success {
		return fmt.Errorf("%s failed: %s", path, res.ErrMessage)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(res.Data, out); err != nil {
		return fmt.Errorf("%s returned malformed response: %w", path, err)
	}
	return nil
}

// ListAccounts lists accounts owning the given domain
func (c *Client) ListAccounts(ctx context.Context, accountDomain string) ([]domain.Account, error) {
	var out struct {
		Accounts []domain.Account `json:"accounts"`
	}
	payload := map[string][]string{"domains": {accountDomain}}
	if err := c.post(ctx, pathAccountsList, payload, &out); err != nil {
		return nil, err
	}
	return out.Accounts, nil
}

// CreateAccount creates an account keyed by the given domain
func (c *Client) CreateAccount(ctx context.Context, accountDomain string) (*domain.Account, error) {
	var out struct {
		Account domain.Account `json:"account"`
	}
	payload := map[string]any{
		"display_name":  accountDomain,
		"domains":       []string{accountDomain},
		"external_refs": []string{accountDomain},
	}
	if err := c.post(ctx, pathAccountsCreate, payload, &out); err != nil {
		return nil, err
	}
	return &out.Account, nil
}

// ListContacts lists rev-users by exact email
func (c *Client) ListContacts(ctx context.Context, email string) ([]domain.Contact, error) {
	var out struct {
		RevUsers []domain.Contact `json:"rev_users"`
	}
	payload := map[string][]string{"email": {email}}
	if err := c.post(ctx, pathRevUsersList, payload, &out); err != nil {
		return nil, err
	}
	return out.RevUsers, nil
}

// CreateContact creates a rev-user
func (c *Client) CreateContact(ctx context.Context, req ContactCreate) (*domain.Contact, error) {
	var out struct {
		RevUser domain.Contact `json:"rev_user"`
	}
	if err := c.post(ctx, pathRevUsersCreate, req, &out); err != nil {
		return nil, err
	}
	return &out.RevUser, nil
}

// CreateCustomObject creates a custom object of a tenant leaf type
func (c *Client) CreateCustomObject(ctx context.Context, req CustomObjectCreate) (*domain.CustomObject, error) {
	var out struct {
		CustomObject domain.CustomObject `json:"custom_object"`
	}
	if err := c.post(ctx, pathCustomObjCreate, req, &out); err != nil {
		return nil, err
	}
	return &out.CustomObject, nil
}

// ListCustomObjects lists all custom objects of the given leaf type. The
// platform offers no server-side filter on embedded side-channel values, so
// callers scan the full listing; catalogs are assumed small enough that the
// listing is not paginated here.
func (c *Client) ListCustomObjects(ctx context.Context, leafType string) ([]domain.CustomObject, error) {
	var out struct {
		CustomObjects []domain.CustomObject `json:"custom_objects"`
	}
	payload := map[string]string{"leaf_type": leafType}
	if err := c.post(ctx, pathCustomObjList, payload, &out); err != nil {
		return nil, err
	}
	return out.CustomObjects, nil
}

// CreateLink creates a directed link between two custom objects
func (c *Client) CreateLink(ctx context.Context, req LinkCreate) (*domain.Link, error) {
	var out struct {
		Link domain.Link `json:"link"`
	}
	if err := c.post(ctx, pathLinksCreate, req, &out); err != nil {
		return nil, err
	}
	return &out.Link, nil
}

// ListCustomSchemas fetches the tenant custom schema catalog
func (c *Client) ListCustomSchemas(ctx context.Context) ([]domain.Schema, error) {
	var out struct {
		Result []domain.Schema `json:"result"`
	}
	if err := c.post(ctx, pathSchemasCustomList, map[string]any{}, &out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

// ListCustomLinkTypes fetches the tenant custom link type catalog
func (c *Client) ListCustomLinkTypes(ctx context.Context) ([]domain.LinkType, error) {
	var out struct {
		LinkTypes []domain.LinkType `json:"link_types"`
	}
	if err := c.post(ctx, pathLinkTypesList, map[string]any{}, &out); err != nil {
		return nil, err
	}
	return out.LinkTypes, nil
}
