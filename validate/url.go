package validate

import (
	"net/url"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/shipstatic/go-shared/shiperrors"
)

// APIURL checks that a candidate string is an acceptable API endpoint URL: an
// absolute http or https URL with an empty or root path and no query string or
// fragment.
//
// A failure from the underlying URL parser is normalized to the generic
// "must be a valid URL" Validation error; an error that is already this package's own
// Validation kind is returned unchanged rather than wrapped again.
func APIURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return normalizeURLError(err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return errInvalidURL()
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return shiperrors.NewValidationError("API URL scheme must be http or https", ldvalue.Null())
	}
	if parsed.Path != "" && parsed.Path != "/" {
		return shiperrors.NewValidationError("API URL must not have a path", ldvalue.Null())
	}
	if parsed.RawQuery != "" {
		return shiperrors.NewValidationError("API URL must not have a query string", ldvalue.Null())
	}
	if parsed.Fragment != "" {
		return shiperrors.NewValidationError("API URL must not have a fragment", ldvalue.Null())
	}
	return nil
}

func normalizeURLError(err error) error {
	if shiperrors.IsValidationError(err) {
		return err
	}
	return errInvalidURL()
}

func errInvalidURL() error {
	return shiperrors.NewValidationError("API URL must be a valid URL", ldvalue.Null())
}
