package service

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/cloud-wave-best-zizon/admin-service/internal/domain"
	"github.com/cloud-wave-best-zizon/admin-service/internal/storage"
)

var errStore = errors.New("store unavailable")

type memStore struct {
	mu       sync.Mutex
	products []domain.Product
	orders   []int64
	users    int64

	createErr error
	countErr  error
	orderErr  error
	userErr   error
}

func (m *memStore) CreateProduct(_ context.Context, p *domain.Product) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products = append(m.products, *p)
	return nil
}

func (m *memStore) ListProducts(context.Context) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *memStore) CountProducts(_ context.Context, available bool) (int64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, p := range m.products {
		if p.IsAvailableForPurchase == available {
			n++
		}
	}
	return n, nil
}

func (m *memStore) AggregateOrders(context.Context) (domain.OrderAggregate, error) {
	if m.orderErr != nil {
		return domain.OrderAggregate{}, m.orderErr
	}
	var agg domain.OrderAggregate
	for _, cents := range m.orders {
		agg.SumCents += cents
		agg.Count++
	}
	return agg, nil
}

func (m *memStore) SumOrderCents(ctx context.Context) (int64, error) {
	agg, err := m.AggregateOrders(ctx)
	return agg.SumCents, err
}

func (m *memStore) CountUsers(context.Context) (int64, error) {
	if m.userErr != nil {
		return 0, m.userErr
	}
	return m.users, nil
}

// flakyFiles wraps a real file store and fails WriteFile on the nth call.
type flakyFiles struct {
	storage.FileStore
	failOn int
	calls  int
}

func (f *flakyFiles) WriteFile(ctx context.Context, path string, r io.Reader) error {
	f.calls++
	if f.calls == f.failOn {
		return &storage.WriteError{Op: "write", Path: path, Err: errors.New("disk full")}
	}
	return f.FileStore.WriteFile(ctx, path, r)
}

type recordingPublisher struct {
	events []domain.ProductCreatedEvent
	err    error
}

func (p *recordingPublisher) PublishProductCreated(_ context.Context, e domain.ProductCreatedEvent) error {
	p.events = append(p.events, e)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }
