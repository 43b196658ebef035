package events

import (
	"context"

	"github.com/cloud-wave-best-zizon/admin-service/internal/domain"
)

type Publisher interface {
	PublishProductCreated(ctx context.Context, event domain.ProductCreatedEvent) error
	Close() error
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishProductCreated(context.Context, domain.ProductCreatedEvent) error {
	return nil
}

func (NopPublisher) Close() error { return nil }
