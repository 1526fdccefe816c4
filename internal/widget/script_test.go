package widget

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_Defaults(t *testing.T) {
	q := url.Values{"campaignName": {"summer-sale"}}
	cfg := ParseConfig(q, Defaults{APIURL: "http://api", TrackingURL: "http://track", TimeoutMS: 5000})

	assert.Equal(t, "summer-sale", cfg.CampaignName)
	assert.Equal(t, "summer-sale", cfg.CampaignID) // id falls back to name
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "medium", cfg.Size)
	assert.Equal(t, "bottom-right", cfg.Position)
	assert.Equal(t, "widget", cfg.ContentType)
	assert.Equal(t, 5000, cfg.TimeoutMS)
	assert.Equal(t, "http://api", cfg.APIURL)
	assert.Equal(t, "http://track", cfg.TrackingURL)
}

func TestParseConfig_Explicit(t *testing.T) {
	q := url.Values{
		"campaignId":  {"c-1"},
		"userId":      {"user-9"},
		"theme":       {"dark"},
		"size":        {"large"},
		"position":    {"center"},
		"contentType": {"modal"},
		"objective":   {"increase-sales"},
		"brandName":   {"ACME"},
		"timeout":     {"2500"},
	}
	cfg := ParseConfig(q, Defaults{TimeoutMS: 5000})

	assert.Equal(t, "c-1", cfg.CampaignID)
	assert.Equal(t, "c-1", cfg.CampaignName) // name falls back to id
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "large", cfg.Size)
	assert.Equal(t, "center", cfg.Position)
	assert.Equal(t, "modal", cfg.ContentType)
	assert.Equal(t, "increase-sales", cfg.Objective)
	assert.Equal(t, "ACME", cfg.BrandName)
	assert.Equal(t, 2500, cfg.TimeoutMS)
}

func TestRender_RoundTrip(t *testing.T) {
	in := Config{
		CampaignID:   "c-1",
		CampaignName: "summer-sale",
		UserID:       "user-9",
		Theme:        "dark",
		Size:         "large",
		Position:     "center",
		ContentType:  "modal",
		Objective:    "increase-sales",
		BrandName:    "ACME",
		APIURL:       "http://localhost:3000",
		TrackingURL:  "http://localhost:3002",
		TimeoutMS:    2500,
	}

	script, err := Render(in)
	require.NoError(t, err)
	assert.NotContains(t, script, configPlaceholder)

	// pull the injected JSON back out and check nothing was lost
	const marker = "const CONFIG = "
	idx := strings.Index(script, marker)
	require.GreaterOrEqual(t, idx, 0)
	rest := script[idx+len(marker):]
	end := strings.Index(rest, ";")
	require.Greater(t, end, 0)

	var out Config
	require.NoError(t, json.Unmarshal([]byte(rest[:end]), &out))
	assert.Equal(t, in, out)
}

func TestDebugPage(t *testing.T) {
	page, err := DebugPage()
	require.NoError(t, err)
	assert.Contains(t, string(page), "Campaign Widget Debug")
}
