// Package labels defines what strings are acceptable as a Shipstatic label (tag), the
// aggregate limits on a label set, and the transport encoding of label lists.
package labels

import (
	"fmt"
	"regexp"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/shipstatic/go-shared/shiperrors"
)

// Pattern is the format rule for a single label: lowercase letters and digits,
// optionally separated by hyphen, underscore, or dot, never starting or ending with a
// separator. The pattern governs format only; it never rejects on length.
var Pattern = regexp.MustCompile(`^[a-z0-9]+(?:[-_.][a-z0-9]+)*$`)

// Constraints describes the aggregate limits on a label set. The limits are enforced
// by calling code through Check, not by Pattern itself.
type Constraints struct {
	// MinLength is the shortest acceptable label.
	MinLength int

	// MaxLength is the longest acceptable label.
	MaxLength int

	// MaxCount is the most labels one entity may carry.
	MaxCount int

	// Separators is the allowed separator set.
	Separators string
}

// DefaultConstraints are the platform-wide limits.
var DefaultConstraints = Constraints{
	MinLength:  1,
	MaxLength:  64,
	MaxCount:   16,
	Separators: "-_.",
}

// Check validates a label list against the constraints and the format Pattern,
// returning a Validation error naming the first violated rule.
func (c Constraints) Check(list []string) error {
	if len(list) > c.MaxCount {
		return shiperrors.NewValidationError(
			fmt.Sprintf("at most %d tags are allowed", c.MaxCount), ldvalue.Null())
	}
	for _, label := range list {
		if len(label) < c.MinLength {
			return shiperrors.NewValidationError(
				fmt.Sprintf("tags must be at least %d characters", c.MinLength), ldvalue.Null())
		}
		if len(label) > c.MaxLength {
			return shiperrors.NewValidationError(
				fmt.Sprintf("tag %q must be at most %d characters", label, c.MaxLength), ldvalue.Null())
		}
		if !Pattern.MatchString(label) {
			return shiperrors.NewValidationError(
				fmt.Sprintf("tag %q must be lowercase letters and digits separated by %q, and must not start or end with a separator",
					label, c.Separators),
				ldvalue.Null())
		}
	}
	return nil
}
