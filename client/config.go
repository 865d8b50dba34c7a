package client

import (
	"net/http"

	ct "github.com/launchdarkly/go-configtypes"
	"github.com/launchdarkly/go-sdk-common/v3/ldlog"

	"github.com/shipstatic/go-shared/shiperrors"
	"github.com/shipstatic/go-shared/validate"
)

// DefaultBaseURI is the production API endpoint, used when Config.BaseURI is not set.
const DefaultBaseURI = "https://api.shipstatic.com"

// Config describes how to construct a Client. The zero value plus one credential is a
// working configuration against the production API.
type Config struct {
	// BaseURI is the API endpoint. If set, it must satisfy the same rules as
	// validate.APIURL: absolute http(s), root path only, no query or fragment.
	BaseURI ct.OptURLAbsolute

	// APIKey is an account API key ("ship-" + 64 hex). Exactly one of APIKey and
	// DeployToken must be set.
	APIKey string

	// DeployToken is a scoped deploy token ("token-" + 64 hex).
	DeployToken string

	// HTTPClient overrides the transport; nil means http.DefaultClient.
	HTTPClient *http.Client

	// Loggers receives debug output for failed requests. The zero value is silent.
	Loggers ldlog.Loggers
}

func (c Config) validate() (string, error) {
	baseURI := DefaultBaseURI
	if c.BaseURI.IsDefined() {
		baseURI = c.BaseURI.String()
		if err := validate.APIURL(baseURI); err != nil {
			return "", err
		}
	}
	switch {
	case c.APIKey == "" && c.DeployToken == "":
		return "", shiperrors.NewConfigError("an API key or a deploy token is required")
	case c.APIKey != "" && c.DeployToken != "":
		return "", shiperrors.NewConfigError("specify an API key or a deploy token, but not both")
	case c.APIKey != "":
		if err := validate.APIKey(c.APIKey); err != nil {
			return "", err
		}
	default:
		if err := validate.DeployToken(c.DeployToken); err != nil {
			return "", err
		}
	}
	return baseURI, nil
}
