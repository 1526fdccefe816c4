package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"campaign-widget-service/internal/campaign"
	"campaign-widget-service/internal/observability"
	"campaign-widget-service/internal/platform"
	"campaign-widget-service/internal/track"
	"campaign-widget-service/internal/widget"
)

// Version reported by the health endpoint.
const Version = "1.0.0"

// Recommender is the slice of the platform client the handler needs.
type Recommender interface {
	Recommend(ctx context.Context, campaignName string, profile *platform.UserProfile, brandName string) (*campaign.Recommendation, string, error)
}

type Handler struct {
	Backend  Recommender
	Recorder track.Recorder

	APIURL    string
	BaseURL   string // configured tracking URL; empty means derive per request
	CacheTTL  int    // seconds, for the widget script
	TimeoutMS int    // default campaign load timeout handed to the client
}

func NewHandler(backend Recommender, rec track.Recorder, apiURL, baseURL string, cacheTTL, timeoutMS int) *Handler {
	return &Handler{
		Backend:   backend,
		Recorder:  rec,
		APIURL:    apiURL,
		BaseURL:   baseURL,
		CacheTTL:  cacheTTL,
		TimeoutMS: timeoutMS,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Widget serves the client script with the embed configuration injected.
func (h *Handler) Widget(w http.ResponseWriter, r *http.Request) {
	trackingURL := h.BaseURL
	if trackingURL == "" {
		trackingURL = requestBaseURL(r)
	}
	cfg := widget.ParseConfig(r.URL.Query(), widget.Defaults{
		APIURL:      h.APIURL,
		TrackingURL: trackingURL,
		TimeoutMS:   h.TimeoutMS,
	})

	script, err := widget.Render(cfg)

	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", h.CacheTTL))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
	// the widget must be embeddable from any host page
	w.Header().Set("X-Frame-Options", "ALLOWALL")
	w.Header().Set("Content-Security-Policy", "frame-ancestors *;")

	if err != nil {
		log.Error().Err(err).Msg("render widget script")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(widget.PlaceholderScript))
		return
	}
	_, _ = w.Write([]byte(script))
}

// Campaign proxies the backend recommendation API. It answers 200 with
// renderable content on every path except a missing campaign name.
func (h *Handler) Campaign(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "campaignName")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Campaign name is required"})
		return
	}

	q := r.URL.Query()
	userID := q.Get("userId")
	objective := q.Get("objective")
	brandName := q.Get("brandName")

	log.Debug().Str("campaign", name).Str("user_id", userID).Msg("fetching campaign")

	rec, matchReason, err := h.Backend.Recommend(r.Context(), name, platform.BuildProfile(userID, objective), brandName)
	if err != nil {
		log.Error().Err(err).Str("campaign", name).Msg("backend recommendation failed; serving fallback")
		observability.CampaignFallbacks.WithLabelValues("error").Inc()
		writeJSON(w, http.StatusOK, campaign.ErrorFallback(name))
		return
	}
	if rec == nil {
		log.Info().Str("campaign", name).Msg("no campaign match; serving fallback")
		observability.CampaignFallbacks.WithLabelValues("no_match").Inc()
		writeJSON(w, http.StatusOK, campaign.NotFoundFallback(name))
		return
	}

	c := campaign.FromRecommendation(*rec, matchReason)
	log.Info().Str("campaign", c.CampaignName).Str("match", c.MatchReason).Msg("campaign found")
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) TrackImpression(w http.ResponseWriter, r *http.Request) {
	h.trackEvent(w, r, track.TypeImpression)
}

func (h *Handler) TrackClick(w http.ResponseWriter, r *http.Request) {
	h.trackEvent(w, r, track.TypeClick)
}

func (h *Handler) trackEvent(w http.ResponseWriter, r *http.Request, typ string) {
	var payload track.Event
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}
	if payload.CampaignID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Campaign ID is required"})
		return
	}

	payload.RemoteIP = r.RemoteAddr
	payload.UserAgent = r.UserAgent()
	e := track.NewEvent(typ, payload)

	if err := h.Recorder.Record(r.Context(), e); err != nil {
		log.Error().Err(err).Str("type", typ).Str("campaign_id", e.CampaignID).Msg("record tracking event")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to track " + typ})
		return
	}
	observability.TrackingEvents.WithLabelValues(typ).Inc()

	msg := "Impression tracked"
	if typ == track.TypeClick {
		msg = "Click tracked"
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": msg})
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   Version,
	})
}

func (h *Handler) Debug(w http.ResponseWriter, _ *http.Request) {
	page, err := widget.DebugPage()
	if err != nil {
		log.Error().Err(err).Msg("serve debug page")
		http.Error(w, "Debug page not found", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

// requestBaseURL reconstructs the externally visible base URL of this server
// so the client script calls back to the host it was loaded from.
func requestBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}
	return scheme + "://" + r.Host
}
