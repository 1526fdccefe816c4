// Package platform talks to the backend recommendation API.
package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"campaign-widget-service/internal/campaign"
)

// Client calls the recommendation endpoint of the platform backend.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// UserProfile is the targeting profile synthesized from widget query params.
type UserProfile struct {
	UserID       string            `json:"userId"`
	Segments     []string          `json:"segments"`
	Interests    []string          `json:"interests"`
	Demographics map[string]string `json:"demographics"`
	Behaviors    []string          `json:"behaviors"`
}

type requestContext struct {
	Source    string `json:"source"`
	BrandName string `json:"brandName,omitempty"`
	Timestamp string `json:"timestamp"`
}

type recommendationRequest struct {
	CampaignName string         `json:"campaignName"`
	UserProfile  *UserProfile   `json:"userProfile"`
	Context      requestContext `json:"context"`
	Status       string         `json:"status"`
}

type recommendationResponse struct {
	Success        bool                     `json:"success"`
	Recommendation *campaign.Recommendation `json:"recommendation"`
	MatchReason    string                   `json:"matchReason"`
}

// BuildProfile synthesizes a user profile from the identifiers the widget
// carries. A missing userId means an anonymous request (nil profile).
func BuildProfile(userID, objective string) *UserProfile {
	if userID == "" {
		return nil
	}
	interests := []string{}
	if objective != "" {
		interests = append(interests, strings.ReplaceAll(objective, "-", "_"))
	}
	return &UserProfile{
		UserID:       userID,
		Segments:     []string{"website_visitor"},
		Interests:    interests,
		Demographics: map[string]string{},
		Behaviors:    []string{"engaged_user"},
	}
}

// Recommend asks the backend for a campaign match. A nil Recommendation with
// a nil error means the backend answered but had no match.
func (c *Client) Recommend(ctx context.Context, campaignName string, profile *UserProfile, brandName string) (*campaign.Recommendation, string, error) {
	body := recommendationRequest{
		CampaignName: campaignName,
		UserProfile:  profile,
		Context: requestContext{
			Source:    "widget",
			BrandName: brandName,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		},
		Status: "active",
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, "", fmt.Errorf("marshal recommendation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/recommendation", bytes.NewReader(payload))
	if err != nil {
		return nil, "", fmt.Errorf("build recommendation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("call recommendation backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", fmt.Errorf("backend API error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var out recommendationResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, "", fmt.Errorf("decode recommendation response: %w", err)
	}

	if !out.Success || out.Recommendation == nil {
		return nil, "", nil
	}
	return out.Recommendation, out.MatchReason, nil
}
