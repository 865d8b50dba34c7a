package validate

import "regexp"

// deploymentIDPattern is the generated-slug shape: letters, hyphen, letters, hyphen,
// exactly seven alphanumerics, case-insensitive.
var deploymentIDPattern = regexp.MustCompile(`(?i)^[a-z]+-[a-z]+-[a-z0-9]{7}$`)

// IsDeploymentID reports whether a candidate string has the deployment identifier
// shape (for example "happy-cat-abc1234"). It never returns an error; it is used both
// to validate and to classify candidate identifiers.
func IsDeploymentID(s string) bool {
	return deploymentIDPattern.MatchString(s)
}
