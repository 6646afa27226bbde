package identity

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/devrev"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/domain"
)

// FallbackDisplayName is used when a registrant carries no name
const FallbackDisplayName = "Airmeet Attendee"

// genericDomains are public webmail providers excluded from account linking
var genericDomains = map[string]bool{
	"gmail.com":   true,
	"yahoo.com":   true,
	"outlook.com": true,
	"hotmail.com": true,
}

// Resolver finds or creates accounts and contacts in DevRev
type Resolver struct {
	api devrev.API
	log *zap.Logger
}

// NewResolver creates a new identity resolver
func NewResolver(api devrev.API, log *zap.Logger) *Resolver {
	return &Resolver{api: api, log: log}
}

// ExtractDomain returns the lower-cased domain of an email address
func ExtractDomain(email string) string {
	_, d, found := strings.Cut(email, "@")
	if !found {
		return ""
	}
	return strings.ToLower(d)
}

// IsGenericDomain reports whether the domain belongs to a known public
// webmail provider
func IsGenericDomain(d string) bool {
	return genericDomains[strings.ToLower(d)]
}

// FormatDisplayName derives a contact display name from a registrant name:
// first and last whitespace-separated tokens, the single token, or the
// fallback literal
func FormatDisplayName(name string) string {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return FallbackDisplayName
	case 1:
		return parts[0]
	default:
		return parts[0] + " " + parts[len(parts)-1]
	}
}

// ResolveAccount finds or creates an account for the given email domain.
// Returns nil without any outbound call when account linking is not opted
// in or the domain is generic. A failed lookup degrades to an empty
// listing, so creation is still attempted; only a failed creation degrades
// to nil.
func (r *Resolver) ResolveAccount(ctx context.Context, accountDomain string, optedIn bool) *domain.Account {
	if !optedIn || IsGenericDomain(accountDomain) {
		return nil
	}

	accounts, err := r.api.ListAccounts(ctx, accountDomain)
	if err != nil {
		r.log.Warn("Account lookup failed",
			zap.String("domain", accountDomain),
			zap.Error(err))
		accounts = nil
	}
	if len(accounts) > 0 {
		return &accounts[0]
	}

	account, err := r.api.CreateAccount(ctx, accountDomain)
	if err != nil {
		r.log.Warn("Account creation failed, proceeding without account",
			zap.String("domain", accountDomain),
			zap.Error(err))
		return nil
	}
	return account
}

// ResolveContact finds a contact by exact email or creates one. An existing
// contact is returned untouched so repeated registrations from the same
// email never create duplicates within a run. Failures degrade to nil.
func (r *Resolver) ResolveContact(ctx context.Context, email, displayName, accountID string) *domain.Contact {
	contacts, err := r.api.ListContacts(ctx, email)
	if err != nil {
		r.log.Warn("Contact lookup failed",
			zap.String("email", email),
			zap.Error(err))
		contacts = nil
	}
	if len(contacts) > 0 {
		return &contacts[0]
	}

	contact, err := r.api.CreateContact(ctx, devrev.ContactCreate{
		DisplayName: displayName,
		Email:       email,
		ExternalRef: email,
		Account:     accountID,
	})
	if err != nil {
		r.log.Warn("Contact creation failed",
			zap.String("email", email),
			zap.Error(err))
		return nil
	}
	return contact
}
