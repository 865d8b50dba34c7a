// Package contracts defines the resource interfaces any SDK-like collaborator against
// the Shipstatic API must satisfy. No transport is mandated here; the interfaces only
// fix method names, inputs, and outputs.
//
// Every method reports failure as a *shiperrors.Error value of the appropriate kind:
// NotFound for missing resources, Validation for rejected input, Authentication for
// credential problems, and so on.
package contracts

import (
	"context"

	"github.com/shipstatic/go-shared/api"
)

// Deployments is the deployment resource surface.
type Deployments interface {
	// Create publishes a new deployment from an announced file set.
	Create(ctx context.Context, req api.DeploymentCreateRequest) (*api.Deployment, error)

	// List returns all deployments visible to the caller.
	List(ctx context.Context) (*api.DeploymentListResponse, error)

	// Get returns a single deployment by identifier.
	Get(ctx context.Context, deployment string) (*api.Deployment, error)

	// SetTags replaces the deployment's label set.
	SetTags(ctx context.Context, deployment string, tags []string) (*api.Deployment, error)

	// Remove deletes the deployment.
	Remove(ctx context.Context, deployment string) error
}

// Domains is the domain resource surface.
type Domains interface {
	// Set creates the domain or updates its deployment link and tags.
	Set(ctx context.Context, domain string, req api.DomainSetRequest) (*api.Domain, error)

	// List returns all domains visible to the caller.
	List(ctx context.Context) (*api.DomainListResponse, error)

	// Get returns a single domain.
	Get(ctx context.Context, domain string) (*api.Domain, error)

	// Remove unregisters the domain.
	Remove(ctx context.Context, domain string) error

	// Verify asks the API to re-check the domain's DNS and certificate state.
	Verify(ctx context.Context, domain string) (*api.Domain, error)

	// Validate reports whether the domain's DNS currently resolves to the platform.
	Validate(ctx context.Context, domain string) (*api.DomainValidationResponse, error)

	// DNS returns the records the customer must create for a custom domain.
	DNS(ctx context.Context, domain string) (*api.DNSInstructionsResponse, error)

	// Records returns the records currently observed for the domain.
	Records(ctx context.Context, domain string) (*api.DNSRecordsResponse, error)

	// Share returns a shareable preview URL for the domain.
	Share(ctx context.Context, domain string) (*api.ShareResponse, error)
}

// Tokens is the deploy-token resource surface.
type Tokens interface {
	// Create issues a new deploy token; the secret appears only in the response.
	Create(ctx context.Context, req api.TokenCreateRequest) (*api.TokenCreateResponse, error)

	// List returns all live tokens (hashes only).
	List(ctx context.Context) (*api.TokenListResponse, error)

	// Remove revokes a token by its hash.
	Remove(ctx context.Context, token string) error
}

// Billing is the billing resource surface.
type Billing interface {
	// Checkout starts a hosted checkout for a plan change.
	Checkout(ctx context.Context, plan api.AccountPlan) (*api.CheckoutResponse, error)

	// Status returns the current subscription state.
	Status(ctx context.Context) (*api.BillingStatusResponse, error)
}

// Account is the account resource surface.
type Account interface {
	// Get returns the authenticated account's profile.
	Get(ctx context.Context) (*api.Account, error)
}

// Keys is the API-key resource surface.
type Keys interface {
	// Create issues a new API key; the secret appears only in the response.
	Create(ctx context.Context) (*api.KeyCreateResponse, error)
}

// Resources bundles the full contract surface, the shape an SDK facade exposes.
type Resources interface {
	Deployments() Deployments
	Domains() Domains
	Tokens() Tokens
	Billing() Billing
	Account() Account
	Keys() Keys
}
