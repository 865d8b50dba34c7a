package api

// DeploymentStatus represents the lifecycle state of a deployment.
type DeploymentStatus string

const (
	// DeploymentStatusPending means the deployment has been created but its files are not
	// yet fully processed.
	DeploymentStatusPending DeploymentStatus = "pending"

	// DeploymentStatusSuccess means the deployment is live and serving.
	DeploymentStatusSuccess DeploymentStatus = "success"

	// DeploymentStatusFailed means processing failed and the deployment will not serve.
	DeploymentStatusFailed DeploymentStatus = "failed"

	// DeploymentStatusDeleting means the deployment is being torn down.
	DeploymentStatusDeleting DeploymentStatus = "deleting"
)

// DomainStatus represents the linking state of a domain.
type DomainStatus string

const (
	// DomainStatusPending means the domain has been registered but not yet resolved.
	DomainStatusPending DomainStatus = "pending"

	// DomainStatusPartial means DNS points at the platform but certificate issuance has
	// not completed.
	DomainStatusPartial DomainStatus = "partial"

	// DomainStatusSuccess means the domain is fully configured and serving.
	DomainStatusSuccess DomainStatus = "success"
)

// AccountPlan represents the subscription tier of an account.
type AccountPlan string

const (
	// AccountPlanFree is the default tier for new accounts.
	AccountPlanFree AccountPlan = "free"

	// AccountPlanPro is the paid individual tier.
	AccountPlanPro AccountPlan = "pro"

	// AccountPlanEnterprise is the negotiated organization tier.
	AccountPlanEnterprise AccountPlan = "enterprise"
)

// FileStatus represents the per-file validation state within a deployment.
type FileStatus string

const (
	// FileStatusPending means the file has been announced but not yet checked.
	FileStatusPending FileStatus = "pending"

	// FileStatusValid means the file passed MIME and extension checks.
	FileStatusValid FileStatus = "valid"

	// FileStatusInvalid means the file was rejected by the upload pipeline.
	FileStatusInvalid FileStatus = "invalid"
)

// AuthMethod identifies how a request authenticated itself to the API.
type AuthMethod string

const (
	// AuthMethodAPIKey is authentication with a long-lived account API key.
	AuthMethodAPIKey AuthMethod = "api_key"

	// AuthMethodDeployToken is authentication with a scoped deploy token.
	AuthMethodDeployToken AuthMethod = "deploy_token"

	// AuthMethodSession is cookie-based authentication from the web console.
	AuthMethodSession AuthMethod = "session"
)
