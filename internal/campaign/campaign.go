package campaign

import "time"

// Campaign is the content payload rendered by one widget instance.
// It is produced fresh per request and never persisted.
type Campaign struct {
	ID              string    `json:"id"`
	CampaignName    string    `json:"campaignName,omitempty"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ImageURL        string    `json:"imageUrl,omitempty"`
	CTAText         string    `json:"ctaText"`
	CTAURL          string    `json:"ctaUrl"`
	BackgroundColor string    `json:"backgroundColor"`
	TextColor       string    `json:"textColor"`
	HTML            string    `json:"html,omitempty"`
	CSS             string    `json:"css,omitempty"`
	Text            string    `json:"text"`
	Products        []Product `json:"products,omitempty"`
	Category        string    `json:"category,omitempty"`
	MatchReason     string    `json:"matchReason,omitempty"`
	ExpiresAt       time.Time `json:"expiresAt"`
}

// Product is one item carried by a backend recommendation.
type Product struct {
	Name  string `json:"name,omitempty"`
	Image string `json:"image,omitempty"`
	Price string `json:"price,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Recommendation is the backend's campaign match for a user.
type Recommendation struct {
	CampaignID   string    `json:"campaignId"`
	CampaignName string    `json:"campaignName"`
	Title        string    `json:"title,omitempty"`
	Text         string    `json:"text"`
	HTML         string    `json:"html,omitempty"`
	CSS          string    `json:"css,omitempty"`
	Products     []Product `json:"products,omitempty"`
	Category     string    `json:"category,omitempty"`
}

const expiryWindow = 7 * 24 * time.Hour

// FromRecommendation maps a backend recommendation into the widget Campaign
// shape. CTA text/URL and brand colors are fixed placeholders until the
// backend exposes them (see DESIGN.md).
func FromRecommendation(rec Recommendation, matchReason string) Campaign {
	title := rec.Title
	if title == "" {
		title = ExtractTitle(rec.Text)
	}
	var image string
	if len(rec.Products) > 0 {
		image = rec.Products[0].Image
	}
	return Campaign{
		ID:              rec.CampaignID,
		CampaignName:    rec.CampaignName,
		Title:           title,
		Description:     rec.Text,
		ImageURL:        image,
		CTAText:         "Shop Now",
		CTAURL:          "https://example.com/shop",
		BackgroundColor: "#007bff",
		TextColor:       "#ffffff",
		HTML:            rec.HTML,
		CSS:             rec.CSS,
		Text:            rec.Text,
		Products:        rec.Products,
		Category:        rec.Category,
		MatchReason:     matchReason,
		ExpiresAt:       time.Now().Add(expiryWindow),
	}
}

// NotFoundFallback is returned when the backend has no matching campaign.
func NotFoundFallback(id string) Campaign {
	return Campaign{
		ID:              id,
		Title:           "Special Offer!",
		Description:     "Discover amazing products at great prices",
		CTAText:         "Shop Now",
		CTAURL:          "https://example.com/shop",
		BackgroundColor: "#007bff",
		TextColor:       "#ffffff",
		HTML:            "<div>No campaign available</div>",
		Text:            "Check out our latest offers!",
		ExpiresAt:       time.Now().Add(expiryWindow),
	}
}

// ErrorFallback is returned when the backend call fails outright. The wording
// differs from NotFoundFallback so the two paths are distinguishable in logs.
func ErrorFallback(id string) Campaign {
	return Campaign{
		ID:              id,
		Title:           "Limited Time Offer",
		Description:     "Don't miss out on our exclusive deals!",
		CTAText:         "Learn More",
		CTAURL:          "https://example.com/shop",
		BackgroundColor: "#28a745",
		TextColor:       "#ffffff",
		HTML:            "<div>Fallback campaign</div>",
		Text:            "Limited time offer - check it out!",
		ExpiresAt:       time.Now().Add(expiryWindow),
	}
}
