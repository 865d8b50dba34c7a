package shiperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	"github.com/stretchr/testify/assert"
)

func TestFactoryDefaults(t *testing.T) {
	t.Run("not found with id", func(t *testing.T) {
		e := NewNotFoundError("deployment", "happy-cat-abc1234")
		assert.Equal(t, ErrorTypeNotFound, e.Type)
		assert.Equal(t, "deployment happy-cat-abc1234 not found", e.Message)
		assert.Equal(t, 404, e.Status)
	})

	t.Run("not found without id", func(t *testing.T) {
		e := NewNotFoundError("account", "")
		assert.Equal(t, "account not found", e.Message)
	})

	t.Run("rate limit default message", func(t *testing.T) {
		assert.Equal(t, defaultRateLimitMessage, NewRateLimitError("").Message)
		assert.Equal(t, 429, NewRateLimitError("").Status)
		assert.Equal(t, "slow down", NewRateLimitError("slow down").Message)
	})

	t.Run("authentication default message", func(t *testing.T) {
		e := NewAuthenticationError("")
		assert.Equal(t, defaultAuthenticationMessage, e.Message)
		assert.Equal(t, 401, e.Status)
	})

	t.Run("business status defaults to 400", func(t *testing.T) {
		assert.Equal(t, 400, NewBusinessError("nope", 0).Status)
		assert.Equal(t, 402, NewBusinessError("pay up", 402).Status)
	})

	t.Run("api status defaults to 500", func(t *testing.T) {
		assert.Equal(t, 500, NewAPIError("boom", 0).Status)
		assert.Equal(t, 503, NewAPIError("busy", 503).Status)
	})

	t.Run("validation carries details", func(t *testing.T) {
		details := ldvalue.ObjectBuild().Set("field", ldvalue.String("apiKey")).Build()
		e := NewValidationError("bad key", details)
		assert.Equal(t, ErrorTypeValidation, e.Type)
		assert.Equal(t, 400, e.Status)
		assert.Equal(t, details, e.Details)
	})

	t.Run("network wraps cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		e := NewNetworkError("request failed", cause)
		assert.Equal(t, ErrorTypeNetwork, e.Type)
		assert.Equal(t, cause, errors.Unwrap(e))
		assert.Equal(t, 0, e.Status)
	})

	t.Run("cancelled default message", func(t *testing.T) {
		assert.Equal(t, defaultCancelledMessage, NewCancelledError("").Message)
	})
}

func TestErrorImplementsError(t *testing.T) {
	e := NewBusinessError("plan limit reached", 0)
	var err error = e
	assert.Equal(t, "plan limit reached", err.Error())
	wrapped := fmt.Errorf("creating deployment: %w", e)
	got, ok := AsShipError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, e, got)
}

func TestCategoryPredicates(t *testing.T) {
	clientKinds := []*Error{
		NewValidationError("v", ldvalue.Null()),
		NewBusinessError("b", 0),
		NewConfigError("c"),
		NewFileError("f", ldvalue.Null()),
	}
	for _, e := range clientKinds {
		assert.True(t, IsClientError(e), "kind %s", e.Type)
		assert.False(t, IsNetworkError(e), "kind %s", e.Type)
		assert.False(t, IsAuthError(e), "kind %s", e.Type)
	}

	assert.True(t, IsNetworkError(NewNetworkError("n", nil)))
	assert.False(t, IsClientError(NewNetworkError("n", nil)))

	assert.True(t, IsAuthError(NewAuthenticationError("")))
	assert.False(t, IsClientError(NewAuthenticationError("")))

	for _, e := range []*Error{NewNotFoundError("x", ""), NewRateLimitError(""), NewAPIError("a", 0), NewCancelledError("")} {
		assert.False(t, IsClientError(e), "kind %s", e.Type)
		assert.False(t, IsNetworkError(e), "kind %s", e.Type)
		assert.False(t, IsAuthError(e), "kind %s", e.Type)
	}

	assert.True(t, IsValidationError(NewValidationError("v", ldvalue.Null())))
	assert.True(t, IsFileError(NewFileError("f", ldvalue.Null())))
	assert.True(t, IsConfigError(NewConfigError("c")))
	assert.True(t, IsType(NewRateLimitError(""), ErrorTypeRateLimit))
	assert.False(t, IsType(NewRateLimitError(""), ErrorTypeAPI))

	assert.False(t, IsClientError(errors.New("plain")))
	assert.False(t, IsClientError(nil))
	assert.False(t, IsType(errors.New("plain"), ErrorTypeValidation))
}

func TestErrorTypeIsValid(t *testing.T) {
	all := []ErrorType{
		ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeRateLimit, ErrorTypeAuthentication,
		ErrorTypeBusiness, ErrorTypeAPI, ErrorTypeNetwork, ErrorTypeCancelled,
		ErrorTypeFile, ErrorTypeConfig,
	}
	for _, kind := range all {
		assert.True(t, kind.IsValid(), "kind %s", kind)
	}
	assert.False(t, ErrorType("oops").IsValid())
	assert.False(t, ErrorType("").IsValid())
}
