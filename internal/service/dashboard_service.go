package service

import (
	"context"
	"fmt"

	"github.com/cloud-wave-best-zizon/admin-service/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type DashboardService struct {
	products ProductStore
	orders   OrderStore
	users    UserStore
	logger   *zap.Logger
}

func NewDashboardService(products ProductStore, orders OrderStore, users UserStore, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		products: products,
		orders:   orders,
		users:    users,
		logger:   logger,
	}
}

// Summary runs the sales, user and product groups concurrently. Any failure
// fails the whole summary.
func (s *DashboardService) Summary(ctx context.Context) (domain.DashboardSummary, error) {
	var summary domain.DashboardSummary

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sales, err := s.SalesData(gctx)
		summary.Sales = sales
		return err
	})
	g.Go(func() error {
		users, err := s.UserData(gctx)
		summary.Users = users
		return err
	})
	g.Go(func() error {
		products, err := s.ProductData(gctx)
		summary.Products = products
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to build dashboard summary", zap.Error(err))
		return domain.DashboardSummary{}, err
	}
	return summary, nil
}

func (s *DashboardService) SalesData(ctx context.Context) (domain.SalesData, error) {
	agg, err := s.orders.AggregateOrders(ctx)
	if err != nil {
		return domain.SalesData{}, fmt.Errorf("sales data: %w", err)
	}
	return domain.SalesData{
		Amount:        float64(agg.SumCents) / 100,
		NumberOfSales: agg.Count,
	}, nil
}

func (s *DashboardService) UserData(ctx context.Context) (domain.UserData, error) {
	var (
		userCount int64
		sumCents  int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.users.CountUsers(gctx)
		userCount = n
		return err
	})
	g.Go(func() error {
		sum, err := s.orders.SumOrderCents(gctx)
		sumCents = sum
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.UserData{}, fmt.Errorf("user data: %w", err)
	}

	return domain.UserData{
		UserCount:           userCount,
		AverageValuePerUser: averagePerUser(sumCents, userCount),
	}, nil
}

func (s *DashboardService) ProductData(ctx context.Context) (domain.ProductData, error) {
	var data domain.ProductData

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.products.CountProducts(gctx, true)
		data.ActiveCount = n
		return err
	})
	g.Go(func() error {
		n, err := s.products.CountProducts(gctx, false)
		data.InactiveCount = n
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.ProductData{}, fmt.Errorf("product data: %w", err)
	}
	return data, nil
}

// averagePerUser is in major currency units; zero users yields zero.
func averagePerUser(sumCents, users int64) float64 {
	if users == 0 {
		return 0
	}
	return float64(sumCents) / float64(users) / 100
}
