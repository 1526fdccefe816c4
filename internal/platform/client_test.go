package platform

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildProfile(t *testing.T) {
	assert.Nil(t, BuildProfile("", "increase-sales"))

	p := BuildProfile("user-1", "increase-sales")
	require.NotNil(t, p)
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, []string{"website_visitor"}, p.Segments)
	assert.Equal(t, []string{"increase_sales"}, p.Interests)
	assert.Equal(t, []string{"engaged_user"}, p.Behaviors)

	p = BuildProfile("user-2", "")
	require.NotNil(t, p)
	assert.Empty(t, p.Interests)
}

func TestRecommend_Success(t *testing.T) {
	var got recommendationRequest
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/recommendation", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":     true,
			"matchReason": "interest match",
			"recommendation": map[string]any{
				"campaignId":   "c-1",
				"campaignName": "summer-sale",
				"text":         "Beat the heat!",
			},
		})
	}))
	defer backend.Close()

	c := NewClient(backend.URL, 2*time.Second)
	rec, reason, err := c.Recommend(context.Background(), "summer-sale", BuildProfile("user-1", "purchase"), "ACME")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "c-1", rec.CampaignID)
	assert.Equal(t, "interest match", reason)

	assert.Equal(t, "summer-sale", got.CampaignName)
	assert.Equal(t, "active", got.Status)
	assert.Equal(t, "widget", got.Context.Source)
	assert.Equal(t, "ACME", got.Context.BrandName)
	require.NotNil(t, got.UserProfile)
	assert.Equal(t, "user-1", got.UserProfile.UserID)
}

func TestRecommend_NoMatch(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false})
	}))
	defer backend.Close()

	c := NewClient(backend.URL, 2*time.Second)
	rec, _, err := c.Recommend(context.Background(), "none-existing", nil, "")
	assert.NoError(t, err)
	assert.Nil(t, rec)
}

func TestRecommend_BackendError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer backend.Close()

	c := NewClient(backend.URL, 2*time.Second)
	_, _, err := c.Recommend(context.Background(), "x", nil, "")
	assert.Error(t, err)
}

func TestRecommend_Unreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", 500*time.Millisecond)
	_, _, err := c.Recommend(context.Background(), "x", nil, "")
	assert.Error(t, err)
}
