package service

import (
	"context"

	"github.com/cloud-wave-best-zizon/admin-service/internal/domain"
)

type ProductStore interface {
	CreateProduct(ctx context.Context, product *domain.Product) error
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CountProducts(ctx context.Context, available bool) (int64, error)
}

type OrderStore interface {
	AggregateOrders(ctx context.Context) (domain.OrderAggregate, error)
	SumOrderCents(ctx context.Context) (int64, error)
}

type UserStore interface {
	CountUsers(ctx context.Context) (int64, error)
}
