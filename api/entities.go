package api

import "github.com/launchdarkly/go-sdk-common/v3/ldvalue"

// Deployment is the JSON representation of a published deployment.
//
// The identifier and URL are assigned by the API service and are stable for the life of
// the deployment; expiry, verification, and the claim token may change between reads.
type Deployment struct {
	// Deployment is the generated identifier, always matching the shape
	// "word-word-alnum7" (for example "happy-cat-abc1234").
	Deployment string `json:"deployment"`

	// FilesCount is the number of files in the deployment.
	FilesCount int `json:"filesCount"`

	// TotalSize is the total size of all files in bytes.
	TotalSize int64 `json:"totalSize"`

	// Status is the lifecycle state of the deployment.
	Status DeploymentStatus `json:"status"`

	// Config is true if the deployment carried a platform config file.
	Config bool `json:"config,omitempty"`

	// Tags is the optional label set attached to the deployment.
	Tags []string `json:"tags,omitempty"`

	// URL is the canonical https URL the deployment serves from.
	URL string `json:"url"`

	// Created is when the deployment was created.
	Created UnixTime `json:"created"`

	// Expires is when an unclaimed deployment will be removed, if an expiry is set.
	Expires UnixTime `json:"expires,omitempty"`

	// Verified is when the deployment's content was verified, if it has been.
	Verified UnixTime `json:"verified,omitempty"`

	// ClaimToken is a short-lived token allowing an anonymous deployment to be claimed
	// by an account.
	ClaimToken string `json:"claimToken,omitempty"`
}

// Domain is the JSON representation of a hostname registered with the platform, either
// a platform subdomain or a customer-owned custom domain.
type Domain struct {
	// Domain is the fully-qualified hostname. Stable.
	Domain string `json:"domain"`

	// Deployment is the identifier of the linked deployment, or null when unlinked.
	Deployment *string `json:"deployment"`

	// Status is the linking state of the domain.
	Status DomainStatus `json:"status"`

	// Tags is the optional label set attached to the domain.
	Tags []string `json:"tags,omitempty"`

	// URL is the canonical https URL for the domain.
	URL string `json:"url"`

	// Created is when the domain was registered.
	Created UnixTime `json:"created"`

	// Linked is when the current deployment link was established, if any.
	Linked UnixTime `json:"linked,omitempty"`

	// LinkCount is how many times the domain has been relinked.
	LinkCount int `json:"linkCount,omitempty"`
}

// Token is the JSON representation of a deploy token. Only the hash of the secret ever
// appears on the wire; the raw secret is returned once, at creation, and never stored.
type Token struct {
	// Token is the hash of the token secret. Stable.
	Token string `json:"token"`

	// Account is the identifier of the owning account. Stable.
	Account string `json:"account"`

	// IP optionally pins the token to a source address.
	IP string `json:"ip,omitempty"`

	// Tags is the optional label set the token is allowed to deploy with.
	Tags []string `json:"tags,omitempty"`

	// Created is when the token was issued.
	Created UnixTime `json:"created"`

	// Expires is when the token stops being accepted, if an expiry is set.
	Expires UnixTime `json:"expires,omitempty"`

	// LastUsed is when the token last authenticated a request.
	LastUsed UnixTime `json:"lastUsed,omitempty"`
}

// Account is the JSON representation of an account profile. All fields are set by the
// API service; clients never send them back mutated.
type Account struct {
	Email   string      `json:"email"`
	Name    string      `json:"name"`
	Picture string      `json:"picture,omitempty"`
	Plan    AccountPlan `json:"plan"`
	Created UnixTime    `json:"created"`

	// Activated is when the account completed activation, if it has.
	Activated UnixTime `json:"activated,omitempty"`
}

// Activity is the JSON representation of an audit-trail entry.
type Activity struct {
	// Event names what happened, for example "deployment.create".
	Event string `json:"event"`

	// Resource is the kind of entity the event concerns.
	Resource string `json:"resource"`

	// ResourceID identifies the entity, when the event concerns a single one.
	ResourceID string `json:"resourceId,omitempty"`

	// Created is when the event occurred.
	Created UnixTime `json:"created"`

	// Details is an opaque payload whose shape depends on the event.
	Details ldvalue.Value `json:"details,omitempty"`
}

// DeploymentFile describes a single file announced as part of a deployment create
// request, together with its validation state.
type DeploymentFile struct {
	Path   string     `json:"path"`
	Size   int64      `json:"size"`
	MD5    string     `json:"md5,omitempty"`
	Status FileStatus `json:"status,omitempty"`
}
