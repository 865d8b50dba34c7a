package api

// ConfigResponse is the platform limits payload returned by the config endpoint.
type ConfigResponse struct {
	// MaxFileSize is the largest single file accepted, in bytes.
	MaxFileSize int64 `json:"maxFileSize"`

	// MaxFilesCount is the most files accepted in one deployment.
	MaxFilesCount int `json:"maxFilesCount"`

	// MaxTotalSize is the largest total deployment size accepted, in bytes.
	MaxTotalSize int64 `json:"maxTotalSize"`

	// AllowedMimeTypes optionally overrides the default MIME allow-list.
	AllowedMimeTypes []string `json:"allowedMimeTypes,omitempty"`
}

// DeploymentListResponse is the payload returned when listing deployments.
type DeploymentListResponse struct {
	Deployments []Deployment `json:"deployments"`
}

// DomainListResponse is the payload returned when listing domains.
type DomainListResponse struct {
	Domains []Domain `json:"domains"`
}

// TokenListResponse is the payload returned when listing deploy tokens.
type TokenListResponse struct {
	Tokens []Token `json:"tokens"`
}

// RemoveResponse acknowledges a successful removal.
type RemoveResponse struct {
	Removed bool `json:"removed"`
}

// DeploymentCreateRequest is the payload sent to create a deployment. The upload
// pipeline itself (file content transfer) is out of scope here; this describes only
// the contract shape.
type DeploymentCreateRequest struct {
	Files  []DeploymentFile `json:"files"`
	Config bool             `json:"config,omitempty"`
	Tags   []string         `json:"tags,omitempty"`
}

// DomainSetRequest is the payload sent to create or update a domain. A nil Deployment
// leaves the link unchanged; an explicit empty string unlinks.
type DomainSetRequest struct {
	Deployment *string  `json:"deployment,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// DomainValidationResponse reports whether a domain's DNS configuration currently
// resolves to the platform.
type DomainValidationResponse struct {
	Domain string `json:"domain"`
	Valid  bool   `json:"valid"`

	// Reason explains a false Valid, for example "A record does not match".
	Reason string `json:"reason,omitempty"`
}

// DNSRecord is a single DNS record, either one the platform expects the customer to
// create or one observed by resolution.
type DNSRecord struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Value string `json:"value"`
	TTL   int    `json:"ttl,omitempty"`
}

// DNSInstructionsResponse lists the records a customer must create to point a custom
// domain at the platform.
type DNSInstructionsResponse struct {
	Domain  string      `json:"domain"`
	Records []DNSRecord `json:"records"`
}

// DNSRecordsResponse lists the records currently observed for a domain.
type DNSRecordsResponse struct {
	Domain  string      `json:"domain"`
	Records []DNSRecord `json:"records"`
}

// ShareResponse carries a shareable preview URL for a domain.
type ShareResponse struct {
	Domain string `json:"domain"`
	URL    string `json:"url"`

	// Expires is when the share link stops working, if it is time-limited.
	Expires UnixTime `json:"expires,omitempty"`
}

// TokenCreateRequest is the payload sent to create a deploy token.
type TokenCreateRequest struct {
	// TTL is the requested lifetime in seconds; zero requests a non-expiring token.
	TTL int64 `json:"ttl,omitempty"`

	// IP optionally pins the token to a source address.
	IP string `json:"ip,omitempty"`

	// Tags restricts what label sets the token may deploy with.
	Tags []string `json:"tags,omitempty"`
}

// TokenCreateResponse returns the raw secret of a newly created deploy token. This is
// the only time the secret appears on the wire.
type TokenCreateResponse struct {
	Secret string `json:"secret"`
	Token  Token  `json:"token"`
}

// KeyCreateResponse returns the raw secret of a newly created API key, along with the
// prefix-stripped hash the API will refer to it by.
type KeyCreateResponse struct {
	Secret  string   `json:"secret"`
	Hash    string   `json:"hash"`
	Created UnixTime `json:"created"`
}

// CheckoutResponse carries the hosted checkout URL for a plan upgrade.
type CheckoutResponse struct {
	URL string `json:"url"`
}

// BillingStatusResponse reports the current subscription state of the account.
type BillingStatusResponse struct {
	Plan AccountPlan `json:"plan"`

	// Active is true while the subscription is paid up.
	Active bool `json:"active"`

	// RenewsAt is when the current billing period ends, for paid plans.
	RenewsAt UnixTime `json:"renewsAt,omitempty"`
}
