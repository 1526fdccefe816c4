package campaign

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromRecommendation(t *testing.T) {
	rec := Recommendation{
		CampaignID:   "c-1",
		CampaignName: "summer-sale",
		Text:         "Beat the heat! Cool gear inside.",
		HTML:         "<div>products</div>",
		CSS:          ".p{color:red}",
		Products: []Product{
			{Name: "Fan", Image: "https://cdn.example.com/fan.png"},
			{Name: "Cooler", Image: "https://cdn.example.com/cooler.png"},
		},
		Category: "seasonal",
	}

	c := FromRecommendation(rec, "interest match")

	assert.Equal(t, "c-1", c.ID)
	assert.Equal(t, "summer-sale", c.CampaignName)
	assert.Equal(t, "Beat the heat", c.Title) // derived from text
	assert.Equal(t, "https://cdn.example.com/fan.png", c.ImageURL)
	assert.Equal(t, "interest match", c.MatchReason)
	assert.Equal(t, rec.Text, c.Description)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), c.ExpiresAt, 5*time.Second)
}

func TestFromRecommendation_ExplicitTitle(t *testing.T) {
	rec := Recommendation{CampaignID: "c-2", Title: "Hand Picked", Text: "Ignored. Sentence."}
	assert.Equal(t, "Hand Picked", FromRecommendation(rec, "").Title)
}

func TestFallbacks(t *testing.T) {
	nf := NotFoundFallback("camp-x")
	ef := ErrorFallback("camp-x")

	assert.Equal(t, "camp-x", nf.ID)
	assert.Equal(t, "camp-x", ef.ID)
	assert.NotEqual(t, nf.Title, ef.Title) // the two paths must be distinguishable
	assert.NotEmpty(t, nf.Title)
	assert.NotEmpty(t, ef.Title)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), nf.ExpiresAt, 5*time.Second)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), ef.ExpiresAt, 5*time.Second)
}
