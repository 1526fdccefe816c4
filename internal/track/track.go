// Package track models impression and click telemetry.
package track

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	TypeImpression = "impression"
	TypeClick      = "click"
)

// Profile is the best-effort browser snapshot the client attaches to events.
type Profile struct {
	UserAgent        string `json:"userAgent,omitempty"`
	Language         string `json:"language,omitempty"`
	Timezone         string `json:"timezone,omitempty"`
	ScreenResolution string `json:"screenResolution,omitempty"`
	ViewportSize     string `json:"viewportSize,omitempty"`
	Referrer         string `json:"referrer,omitempty"`
	URL              string `json:"url,omitempty"`
	Timestamp        string `json:"timestamp,omitempty"`
}

// Event is one tracked interaction. ID and ReceivedAt are server-assigned.
type Event struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	CampaignID   string    `json:"campaignId"`
	CampaignName string    `json:"campaignName,omitempty"`
	UserID       string    `json:"userId,omitempty"`
	TargetURL    string    `json:"targetUrl,omitempty"`
	Timestamp    string    `json:"timestamp,omitempty"`
	Profile      Profile   `json:"profile,omitempty"`
	RemoteIP     string    `json:"-"`
	UserAgent    string    `json:"-"`
	ReceivedAt   time.Time `json:"-"`
}

// NewEvent stamps an incoming payload with server-side metadata.
func NewEvent(typ string, e Event) Event {
	e.ID = uuid.NewString()
	e.Type = typ
	e.ReceivedAt = time.Now().UTC()
	if e.Timestamp == "" {
		e.Timestamp = e.ReceivedAt.Format(time.RFC3339)
	}
	return e
}

// Recorder persists tracking events somewhere. Failures must not surface to
// the widget; callers log and move on.
type Recorder interface {
	Record(ctx context.Context, e Event) error
}

// LogRecorder writes events to the structured log only.
type LogRecorder struct{}

func (LogRecorder) Record(_ context.Context, e Event) error {
	log.Info().
		Str("event_id", e.ID).
		Str("type", e.Type).
		Str("campaign_id", e.CampaignID).
		Str("user_id", e.UserID).
		Str("target_url", e.TargetURL).
		Str("timestamp", e.Timestamp).
		Str("ip", e.RemoteIP).
		Str("user_agent", e.UserAgent).
		Msg("tracking event")
	return nil
}
