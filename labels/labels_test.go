package labels

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipstatic/go-shared/shiperrors"
)

func TestPattern(t *testing.T) {
	matching := []string{
		"feature-x",
		"prod",
		"v2",
		"a",
		"release_2024.08",
		"a-b_c.d",
		strings.Repeat("a", 100), // the pattern alone never rejects on length
	}
	for _, s := range matching {
		assert.True(t, Pattern.MatchString(s), "%q should match", s)
	}

	notMatching := []string{
		"-prod",
		"prod-",
		"_prod",
		"prod.",
		"PROD",
		"Feature-X",
		"two words",
		"tab\tchar",
		"",
		"-",
		"a--b", // consecutive separators
		"a.-b",
	}
	for _, s := range notMatching {
		assert.False(t, Pattern.MatchString(s), "%q should not match", s)
	}
}

func TestConstraintsCheck(t *testing.T) {
	t.Run("acceptable list", func(t *testing.T) {
		assert.NoError(t, DefaultConstraints.Check([]string{"prod", "feature-x", "v2"}))
		assert.NoError(t, DefaultConstraints.Check(nil))
	})

	t.Run("too many labels", func(t *testing.T) {
		list := make([]string, DefaultConstraints.MaxCount+1)
		for i := range list {
			list[i] = "x"
		}
		err := DefaultConstraints.Check(list)
		require.Error(t, err)
		assert.True(t, shiperrors.IsValidationError(err))
	})

	t.Run("too long", func(t *testing.T) {
		err := DefaultConstraints.Check([]string{strings.Repeat("a", DefaultConstraints.MaxLength+1)})
		require.Error(t, err)
		assert.True(t, shiperrors.IsValidationError(err))
	})

	t.Run("empty label", func(t *testing.T) {
		assert.Error(t, DefaultConstraints.Check([]string{""}))
	})

	t.Run("format violation", func(t *testing.T) {
		err := DefaultConstraints.Check([]string{"PROD"})
		require.Error(t, err)
		e, ok := shiperrors.AsShipError(err)
		require.True(t, ok)
		assert.Contains(t, e.Message, `"PROD"`)
	})

	t.Run("max length itself is fine", func(t *testing.T) {
		assert.NoError(t, DefaultConstraints.Check([]string{strings.Repeat("a", DefaultConstraints.MaxLength)}))
	})
}
