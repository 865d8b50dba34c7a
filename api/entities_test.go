package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeploymentJSON(t *testing.T) {
	t.Run("optional fields omitted", func(t *testing.T) {
		d := Deployment{
			Deployment: "happy-cat-abc1234",
			FilesCount: 2,
			TotalSize:  1024,
			Status:     DeploymentStatusPending,
			URL:        "https://happy-cat-abc1234.shipstatic.dev",
			Created:    1700000000,
		}
		data, err := json.Marshal(d)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"deployment": "happy-cat-abc1234",
			"filesCount": 2,
			"totalSize": 1024,
			"status": "pending",
			"url": "https://happy-cat-abc1234.shipstatic.dev",
			"created": 1700000000
		}`, string(data))
	})

	t.Run("round trip with optionals", func(t *testing.T) {
		d := Deployment{
			Deployment: "happy-cat-abc1234",
			Status:     DeploymentStatusSuccess,
			Config:     true,
			Tags:       []string{"prod"},
			Created:    1700000000,
			Expires:    1700600000,
			ClaimToken: "claim123",
		}
		data, err := json.Marshal(d)
		require.NoError(t, err)
		var decoded Deployment
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, d, decoded)
	})
}

func TestDomainJSON(t *testing.T) {
	t.Run("unlinked domain sends null deployment", func(t *testing.T) {
		d := Domain{
			Domain:  "www.example.com",
			Status:  DomainStatusPending,
			URL:     "https://www.example.com",
			Created: 1700000000,
		}
		data, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"deployment":null`)
	})

	t.Run("linked domain round trip", func(t *testing.T) {
		id := "happy-cat-abc1234"
		d := Domain{
			Domain:     "www.example.com",
			Deployment: &id,
			Status:     DomainStatusSuccess,
			URL:        "https://www.example.com",
			Created:    1700000000,
			Linked:     1700000100,
			LinkCount:  2,
		}
		data, err := json.Marshal(d)
		require.NoError(t, err)
		var decoded Domain
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, d, decoded)
	})
}

func TestUnixTime(t *testing.T) {
	at := time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)
	u := UnixTimeFromTime(at)
	assert.Equal(t, at, u.Time())
	assert.True(t, u.IsDefined())
	assert.False(t, UnixTime(0).IsDefined())

	// sub-second precision truncates
	assert.Equal(t, u, UnixTimeFromTime(at.Add(500*time.Millisecond)))
}

func TestConfigResponseJSON(t *testing.T) {
	var cfg ConfigResponse
	require.NoError(t, json.Unmarshal([]byte(`{
		"maxFileSize": 10485760,
		"maxFilesCount": 1000,
		"maxTotalSize": 104857600,
		"allowedMimeTypes": ["image/png"]
	}`), &cfg))
	assert.Equal(t, int64(10485760), cfg.MaxFileSize)
	assert.Equal(t, 1000, cfg.MaxFilesCount)
	assert.Equal(t, []string{"image/png"}, cfg.AllowedMimeTypes)
}
