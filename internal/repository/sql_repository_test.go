package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/cloud-wave-best-zizon/admin-service/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) *SQLRepository {
	t.Helper()

	db, err := OpenSQL("sqlite", filepath.Join(t.TempDir(), "admin.db"), zap.NewNop())
	require.NoError(t, err)

	repo := NewSQLRepository(db)
	require.NoError(t, repo.AutoMigrate())
	return repo
}

func seedProduct(t *testing.T, repo *SQLRepository, available bool, createdAt time.Time) *domain.Product {
	t.Helper()
	p := &domain.Product{
		ProductID:              uuid.NewString(),
		Name:                   "Product",
		Description:            "desc",
		PriceInCents:           500,
		FilePath:               "products/x-file.zip",
		ImagePath:              "/products/x-image.png",
		IsAvailableForPurchase: available,
		CreatedAt:              createdAt,
		UpdatedAt:              createdAt,
	}
	require.NoError(t, repo.CreateProduct(context.Background(), p))
	return p
}

func TestOpenSQLUnsupportedDriver(t *testing.T) {
	_, err := OpenSQL("oracle", "", zap.NewNop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestSQLRepository_Products(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()

	for i := 0; i < 5; i++ {
		seedProduct(t, repo, true, now.Add(-time.Duration(i)*time.Minute))
	}
	newest := seedProduct(t, repo, false, now.Add(time.Hour))
	seedProduct(t, repo, false, now.Add(-time.Hour))

	active, err := repo.CountProducts(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, int64(5), active)

	inactive, err := repo.CountProducts(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), inactive)

	list, err := repo.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 7)
	assert.Equal(t, newest.ProductID, list[0].ProductID)
	assert.False(t, list[0].IsAvailableForPurchase)
}

func TestSQLRepository_OrdersAndUsers(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	agg, err := repo.AggregateOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderAggregate{}, agg)

	sum, err := repo.SumOrderCents(ctx)
	require.NoError(t, err)
	assert.Zero(t, sum)

	users, err := repo.CountUsers(ctx)
	require.NoError(t, err)
	assert.Zero(t, users)

	for i, email := range []string{"a@example.com", "b@example.com"} {
		u := &domain.User{UserID: uuid.NewString(), Email: email, CreatedAt: time.Now()}
		require.NoError(t, repo.db.Create(u).Error, "user %d", i)
	}
	for _, cents := range []int64{1000, 2000, 3000} {
		o := &domain.Order{OrderID: uuid.NewString(), PricePaidInCents: cents, CreatedAt: time.Now()}
		require.NoError(t, repo.db.Create(o).Error)
	}

	agg, err = repo.AggregateOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderAggregate{SumCents: 6000, Count: 3}, agg)

	sum, err = repo.SumOrderCents(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6000), sum)

	users, err = repo.CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), users)
}
