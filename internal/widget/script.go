// Package widget owns the iframe-side client script: parsing the embed query
// into a config and injecting that config into the embedded script asset.
package widget

import (
	"embed"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

//go:embed assets/widget.js assets/debug.html
var assets embed.FS

const configPlaceholder = "{{CONFIG_PLACEHOLDER}}"

// Config is serialized into the client script. Field names are part of the
// script contract; the round trip through injection must be lossless.
type Config struct {
	CampaignID   string `json:"campaignId"`
	CampaignName string `json:"campaignName"`
	UserID       string `json:"userId"`
	Theme        string `json:"theme"`
	Size         string `json:"size"`
	Position     string `json:"position"`
	ContentType  string `json:"contentType"`
	Objective    string `json:"objective"`
	BrandName    string `json:"brandName"`
	APIURL       string `json:"apiUrl"`
	TrackingURL  string `json:"trackingUrl"`
	TimeoutMS    int    `json:"timeout"`
}

// Defaults applied when the embed URL omits a parameter.
type Defaults struct {
	APIURL      string
	TrackingURL string
	TimeoutMS   int
}

// ParseConfig reads embed query parameters into a Config. campaignId and
// campaignName are interchangeable; each falls back to the other.
func ParseConfig(q url.Values, d Defaults) Config {
	cfg := Config{
		CampaignID:   firstOf(q.Get("campaignId"), q.Get("campaignName")),
		CampaignName: firstOf(q.Get("campaignName"), q.Get("campaignId")),
		UserID:       q.Get("userId"),
		Theme:        firstOf(q.Get("theme"), "light"),
		Size:         firstOf(q.Get("size"), "medium"),
		Position:     firstOf(q.Get("position"), "bottom-right"),
		ContentType:  firstOf(q.Get("contentType"), "widget"),
		Objective:    q.Get("objective"),
		BrandName:    q.Get("brandName"),
		APIURL:       d.APIURL,
		TrackingURL:  d.TrackingURL,
		TimeoutMS:    d.TimeoutMS,
	}
	if v := q.Get("timeout"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.TimeoutMS = ms
		}
	}
	return cfg
}

// Render substitutes the serialized config into the client script template.
func Render(cfg Config) (string, error) {
	raw, err := assets.ReadFile("assets/widget.js")
	if err != nil {
		return "", fmt.Errorf("read widget script: %w", err)
	}
	script := string(raw)
	if !strings.Contains(script, configPlaceholder) {
		return "", fmt.Errorf("widget script is missing the config placeholder")
	}

	payload, err := json.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal widget config: %w", err)
	}
	return strings.Replace(script, configPlaceholder, string(payload), 1), nil
}

// DebugPage returns the static diagnostic page served at /debug.
func DebugPage() ([]byte, error) {
	return assets.ReadFile("assets/debug.html")
}

// PlaceholderScript is served with a 500 when script rendering fails, so a
// broken widget never throws inside the host page.
const PlaceholderScript = "// widget unavailable\n"

func firstOf(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
