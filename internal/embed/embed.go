// Package embed generates iframe markup for host pages to embed the campaign
// widget. All operations are pure string builders over a Config.
package embed

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Config describes one widget embed.
type Config struct {
	CampaignName string
	UserID       string
	ContentType  string // widget | dialogue | modal
	Size         string // small | medium | large | dialogue | modal
	Theme        string // light | dark
	Position     string
	Objective    string
	BrandName    string
	Dimensions   *Dimensions       // explicit override, wins over size lookup
	Styles       map[string]string // extra inline CSS, appended verbatim
}

type Dimensions struct {
	Width  int
	Height int
}

var sizeMap = map[string]Dimensions{
	"small":    {Width: 280, Height: 180},
	"medium":   {Width: 350, Height: 250},
	"large":    {Width: 450, Height: 320},
	"dialogue": {Width: 400, Height: 350},
	"modal":    {Width: 500, Height: 400},
}

var (
	contentTypes = []string{"widget", "dialogue", "modal"}
	sizes        = []string{"small", "medium", "large", "dialogue", "modal"}
	themes       = []string{"light", "dark"}
)

// Generator builds embed markup pointing at one widget server.
type Generator struct {
	BaseURL string
}

func NewGenerator(baseURL string) *Generator {
	return &Generator{BaseURL: strings.TrimRight(baseURL, "/")}
}

// Iframe returns a complete iframe tag for the given config.
func (g *Generator) Iframe(cfg Config) (string, error) {
	if cfg.CampaignName == "" {
		return "", fmt.Errorf("campaignName is required")
	}

	params := url.Values{}
	params.Set("campaignName", cfg.CampaignName)
	setIfPresent(params, "userId", cfg.UserID)
	setIfPresent(params, "contentType", cfg.ContentType)
	setIfPresent(params, "size", cfg.Size)
	setIfPresent(params, "theme", cfg.Theme)
	setIfPresent(params, "objective", cfg.Objective)
	setIfPresent(params, "brandName", cfg.BrandName)
	setIfPresent(params, "position", cfg.Position)

	dims := ResolveDimensions(cfg)
	width, height := dims.Width, dims.Height
	if cfg.Dimensions != nil {
		width, height = cfg.Dimensions.Width, cfg.Dimensions.Height
	}

	src := fmt.Sprintf("%s/widget?%s", g.BaseURL, params.Encode())
	styles := buildStyles(cfg)

	if styles == "" {
		return fmt.Sprintf(`<iframe src="%s" width="%d" height="%d" frameborder="0"></iframe>`,
			src, width, height), nil
	}
	return fmt.Sprintf(`<iframe src="%s" width="%d" height="%d" frameborder="0" style="%s"></iframe>`,
		src, width, height, styles), nil
}

// ResponsiveIframe wraps the iframe in a percentage-width container with a
// fixed aspect ratio and a 768px mobile breakpoint.
func (g *Generator) ResponsiveIframe(cfg Config) (string, error) {
	iframe, err := g.Iframe(cfg)
	if err != nil {
		return "", err
	}
	dims := ResolveDimensions(cfg)

	return fmt.Sprintf(`<div class="responsive-widget-container" style="width: 100%%; max-width: %dpx;">
    %s
</div>

<style>
.responsive-widget-container iframe {
    width: 100%%;
    height: auto;
    min-height: %dpx;
    aspect-ratio: %d/%d;
}

@media (max-width: 768px) {
    .responsive-widget-container {
        max-width: 100%%;
        padding: 0 10px;
    }
}
</style>`, dims.Width, iframe, dims.Height, dims.Width, dims.Height), nil
}

// DynamicLoader emits a self-contained script that injects the iframe into the
// element with the given id once the DOM is ready.
func (g *Generator) DynamicLoader(cfg Config, containerID string) (string, error) {
	iframe, err := g.Iframe(cfg)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`function loadCampaignWidget() {
    document.getElementById(%q).innerHTML = %q;
}

if (document.readyState === 'loading') {
    document.addEventListener('DOMContentLoaded', loadCampaignWidget);
} else {
    loadCampaignWidget();
}`, containerID, iframe), nil
}

// Validate checks the config and returns human-readable problems. It never
// fails hard; an empty slice means the config is usable.
func Validate(cfg Config) []string {
	var errs []string
	if cfg.CampaignName == "" {
		errs = append(errs, "campaignName is required")
	}
	if cfg.ContentType != "" && !contains(contentTypes, cfg.ContentType) {
		errs = append(errs, "contentType must be one of: widget, dialogue, modal")
	}
	if cfg.Size != "" && !contains(sizes, cfg.Size) {
		errs = append(errs, "size must be one of: small, medium, large, dialogue, modal")
	}
	if cfg.Theme != "" && !contains(themes, cfg.Theme) {
		errs = append(errs, "theme must be either light or dark")
	}
	return errs
}

// ResolveDimensions picks pixel dimensions for a config. Dialogue and modal
// content types override whatever size was supplied.
func ResolveDimensions(cfg Config) Dimensions {
	key := cfg.Size
	if cfg.ContentType == "dialogue" || cfg.ContentType == "modal" {
		key = cfg.ContentType
	}
	if d, ok := sizeMap[key]; ok {
		return d
	}
	return sizeMap["medium"]
}

func buildStyles(cfg Config) string {
	styles := []string{"border-radius: 12px"}

	if cfg.ContentType == "dialogue" || cfg.ContentType == "modal" {
		styles = append(styles,
			"box-shadow: 0 8px 32px rgba(0,0,0,0.12)",
			"resize: both",
			"overflow: auto",
		)
	}

	// caller styles go last, in deterministic order, and are not deduplicated
	// against the defaults above
	keys := make([]string, 0, len(cfg.Styles))
	for k := range cfg.Styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		styles = append(styles, fmt.Sprintf("%s: %s", k, cfg.Styles[k]))
	}

	return strings.Join(styles, "; ")
}

func setIfPresent(params url.Values, key, val string) {
	if val != "" {
		params.Set(key, val)
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
