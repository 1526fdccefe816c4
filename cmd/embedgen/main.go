// embedgen prints iframe embed markup for a campaign widget, for pasting
// into host pages or templating pipelines.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"campaign-widget-service/internal/embed"
)

func main() {
	var (
		baseURL     = pflag.String("base-url", "http://localhost:3002", "widget server base URL")
		campaign    = pflag.String("campaign", "", "campaign name (required)")
		userID      = pflag.String("user", "", "user id")
		contentType = pflag.String("content-type", "", "widget, dialogue or modal")
		size        = pflag.String("size", "", "small, medium, large, dialogue or modal")
		theme       = pflag.String("theme", "", "light or dark")
		position    = pflag.String("position", "", "widget position preset")
		objective   = pflag.String("objective", "", "targeting objective")
		brand       = pflag.String("brand", "", "brand name")
		width       = pflag.Int("width", 0, "explicit width override")
		height      = pflag.Int("height", 0, "explicit height override")
		mode        = pflag.String("mode", "iframe", "output: iframe, responsive or loader")
		containerID = pflag.String("container", "widget-container", "target element id for loader mode")
	)
	pflag.Parse()

	cfg := embed.Config{
		CampaignName: *campaign,
		UserID:       *userID,
		ContentType:  *contentType,
		Size:         *size,
		Theme:        *theme,
		Position:     *position,
		Objective:    *objective,
		BrandName:    *brand,
	}
	if *width > 0 && *height > 0 {
		cfg.Dimensions = &embed.Dimensions{Width: *width, Height: *height}
	}

	if errs := embed.Validate(cfg); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(os.Stderr, "error:", e)
		}
		os.Exit(1)
	}

	g := embed.NewGenerator(*baseURL)
	var (
		out string
		err error
	)
	switch *mode {
	case "iframe":
		out, err = g.Iframe(cfg)
	case "responsive":
		out, err = g.ResponsiveIframe(cfg)
	case "loader":
		out, err = g.DynamicLoader(cfg, *containerID)
	default:
		fmt.Fprintln(os.Stderr, "error: mode must be iframe, responsive or loader")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println(out)
}
