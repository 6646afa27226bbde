package clickhouse

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/domain"
)

// Repository implements repository.OutcomeRecorder for ClickHouse
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new ClickHouse outcome repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// InitSchema creates the stage_outcomes table if it does not exist
func (r *Repository) InitSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS stage_outcomes (
		delivery_id String,
		event_type LowCardinality(String),
		stage LowCardinality(String),
		status LowCardinality(String),
		detail String,
		occurred_at DateTime64(3) DEFAULT now64(3)
	) ENGINE = MergeTree
	ORDER BY (delivery_id, occurred_at)
	PARTITION BY toYYYYMM(occurred_at)
	SETTINGS index_granularity = 8192
	`

	if err := r.client.Conn().Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create stage_outcomes table: %w", err)
	}

	r.log.Info("ClickHouse schema initialized")
	return nil
}

// Record inserts one stage outcome
func (r *Repository) Record(ctx context.Context, outcome domain.StageOutcome) error {
	if outcome.OccurredAt.IsZero() {
		outcome.OccurredAt = time.Now()
	}

	query := `
	INSERT INTO stage_outcomes (delivery_id, event_type, stage, status, detail, occurred_at)
	VALUES (?, ?, ?, ?, ?, ?)
	`

	err := r.client.Conn().Exec(ctx, query,
		outcome.DeliveryID,
		outcome.EventType,
		outcome.Stage,
		outcome.Status,
		outcome.Detail,
		outcome.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert stage outcome: %w", err)
	}

	return nil
}

// Ping checks if the ClickHouse connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Conn().Ping(ctx)
}

// Close closes the ClickHouse connection
func (r *Repository) Close() error {
	return r.client.Close()
}
