package repository

import (
	"context"

	"github.com/diillson/segment-report-go/internal/domain/entity"
)

// PublisherRepository envia os artefatos gerados para um armazenamento remoto.
type PublisherRepository interface {
	GetAccountID(ctx context.Context, profile string) (string, error)
	Publish(ctx context.Context, target entity.PublishTarget, paths []string) ([]string, error)
}
