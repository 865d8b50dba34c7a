package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDeploymentID(t *testing.T) {
	matching := []string{
		"happy-cat-abc1234",
		"a-b-1234567",
		"HAPPY-CAT-ABC1234",
		"quiet-otter-0000000",
	}
	for _, s := range matching {
		assert.True(t, IsDeploymentID(s), "%q should match", s)
	}

	notMatching := []string{
		"Happy-Cat1",
		"happy-cat-abc123",
		"happy-cat-abc12345",
		"happy-cat-abc123!",
		"happycat-abc1234",
		"happy-cat-dog-abc1234",
		"happy-c4t-abc1234",
		"-cat-abc1234",
		"",
	}
	for _, s := range notMatching {
		assert.False(t, IsDeploymentID(s), "%q should not match", s)
	}
}
