// Package storage provides the optional durable sink for tracking events.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-widget-service/internal/config"
	"campaign-widget-service/internal/track"
)

type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, cfg config.Config) (*Store, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres DSN: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.Postgres.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.Postgres.MaxIdleConns)
	poolCfg.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres pool: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Record inserts one tracking event. Implements track.Recorder.
func (s *Store) Record(ctx context.Context, e track.Event) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := s.pool.Exec(ctx, `
		INSERT INTO tracking_events
			(id, event_type, campaign_id, campaign_name, user_id, target_url,
			 client_timestamp, user_agent, remote_ip, page_url, referrer, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`,
		e.ID, e.Type, e.CampaignID, e.CampaignName, e.UserID, e.TargetURL,
		e.Timestamp, e.UserAgent, e.RemoteIP, e.Profile.URL, e.Profile.Referrer, e.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("insert tracking event: %w", err)
	}
	return nil
}
