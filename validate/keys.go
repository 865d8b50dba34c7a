package validate

import (
	"fmt"
	"strings"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/shipstatic/go-shared/shiperrors"
)

const (
	// APIKeyPrefix is the fixed literal every account API key starts with.
	APIKeyPrefix = "ship-"

	// DeployTokenPrefix is the fixed literal every deploy token starts with.
	DeployTokenPrefix = "token-"

	// secretHexLength is the length of the hexadecimal suffix following either prefix.
	secretHexLength = 64
)

// APIKey checks that a candidate string has the wire format of an account API key:
// the "ship-" prefix followed by exactly 64 hexadecimal characters. Each violated
// rule produces its own Validation error message.
func APIKey(key string) error {
	return checkSecret(key, APIKeyPrefix, "API key")
}

// DeployToken checks that a candidate string has the wire format of a deploy token:
// the "token-" prefix followed by exactly 64 hexadecimal characters.
func DeployToken(token string) error {
	return checkSecret(token, DeployTokenPrefix, "deploy token")
}

func checkSecret(value, prefix, what string) error {
	if !strings.HasPrefix(value, prefix) {
		return shiperrors.NewValidationError(
			fmt.Sprintf("%s must start with %q", what, prefix), ldvalue.Null())
	}
	if len(value) != len(prefix)+secretHexLength {
		return shiperrors.NewValidationError(
			fmt.Sprintf("%s must be exactly %d characters", what, len(prefix)+secretHexLength),
			ldvalue.Null())
	}
	if !isHexString(value[len(prefix):]) {
		return shiperrors.NewValidationError(
			fmt.Sprintf("%s must end with %d hexadecimal characters", what, secretHexLength),
			ldvalue.Null())
	}
	return nil
}

func isHexString(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
