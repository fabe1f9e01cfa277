package ports

import (
	"context"

	"github.com/barkhq/barksound/internal/domain"
)

// MirrorLog records divergences between the primary and shared sound directories
type MirrorLog interface {
	List(ctx context.Context, limit int) ([]domain.MirrorEvent, error)
	Record(ctx context.Context, event domain.MirrorEvent) error
}

// MirrorLogRepository is the closable MirrorLog owned by the container
type MirrorLogRepository interface {
	MirrorLog
	Close() error
}
