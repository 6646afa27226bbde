package repository

import (
	"context"

	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/domain"
)

// OutcomeRecorder defines the interface for the stage-outcome audit log.
// Recording is best-effort: callers log a failed write and keep going, the
// audit trail never fails a reconciliation flow.
type OutcomeRecorder interface {
	// Record persists one stage outcome
	Record(ctx context.Context, outcome domain.StageOutcome) error

	// InitSchema initializes the audit log schema
	InitSchema(ctx context.Context) error

	// Ping checks if the audit log connection is alive
	Ping(ctx context.Context) error

	// Close closes the recorder and releases resources
	Close() error
}

// NopRecorder discards outcomes. Used when no audit log is configured.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, domain.StageOutcome) error { return nil }
func (NopRecorder) InitSchema(context.Context) error                  { return nil }
func (NopRecorder) Ping(context.Context) error                        { return nil }
func (NopRecorder) Close() error                                      { return nil }
