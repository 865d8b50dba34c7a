package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIURL(t *testing.T) {
	valid := []string{
		"https://api.shipstatic.com",
		"https://api.shipstatic.com/",
		"http://localhost:8080",
		"http://127.0.0.1:3000/",
	}
	for _, u := range valid {
		t.Run("valid "+u, func(t *testing.T) {
			assert.NoError(t, APIURL(u))
		})
	}

	invalid := map[string]string{
		"https://api.shipstatic.com/v1":    "path",
		"https://api.shipstatic.com?x=1":   "query string",
		"https://api.shipstatic.com/#frag": "fragment",
		"ftp://api.shipstatic.com":         "scheme must be http or https",
		"api.shipstatic.com":               "must be a valid URL",
		"":                                 "must be a valid URL",
		"://missing-scheme":                "must be a valid URL",
		"https://":                         "must be a valid URL",
		"http://bad url with spaces":       "must be a valid URL",
	}
	for u, wantSubstring := range invalid {
		t.Run("invalid "+u, func(t *testing.T) {
			requireValidation(t, APIURL(u), wantSubstring)
		})
	}
}
