package repository

import (
	"context"
	"fmt"

	"github.com/cloud-wave-best-zizon/admin-service/internal/domain"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SQLRepository serves products, orders and users from a relational database.
type SQLRepository struct {
	db *gorm.DB
}

// OpenSQL connects with the given gorm driver name ("postgres" or "sqlite").
func OpenSQL(driver, dsn string, logger *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}

	logger.Info("Connected to database", zap.String("driver", driver))
	return db, nil
}

func NewSQLRepository(db *gorm.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) AutoMigrate() error {
	if err := r.db.AutoMigrate(&domain.Product{}, &domain.Order{}, &domain.User{}); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return nil
}

func (r *SQLRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (r *SQLRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (r *SQLRepository) CountProducts(ctx context.Context, available bool) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("is_available_for_purchase = ?", available).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

func (r *SQLRepository) AggregateOrders(ctx context.Context) (domain.OrderAggregate, error) {
	var row struct {
		SumCents int64
		Count    int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Select("CAST(COALESCE(SUM(price_paid_in_cents), 0) AS BIGINT) AS sum_cents, COUNT(*) AS count").
		Scan(&row).Error
	if err != nil {
		return domain.OrderAggregate{}, fmt.Errorf("failed to aggregate orders: %w", err)
	}
	return domain.OrderAggregate{SumCents: row.SumCents, Count: row.Count}, nil
}

func (r *SQLRepository) SumOrderCents(ctx context.Context) (int64, error) {
	var sum int64
	err := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Select("CAST(COALESCE(SUM(price_paid_in_cents), 0) AS BIGINT)").
		Scan(&sum).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum orders: %w", err)
	}
	return sum, nil
}

func (r *SQLRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&domain.User{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}
