package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/cloud-wave-best-zizon/admin-service/internal/events"
	"github.com/cloud-wave-best-zizon/admin-service/internal/handler"
	"github.com/cloud-wave-best-zizon/admin-service/internal/repository"
	"github.com/cloud-wave-best-zizon/admin-service/internal/service"
	"github.com/cloud-wave-best-zizon/admin-service/internal/storage"
	"github.com/cloud-wave-best-zizon/admin-service/pkg/config"
	pkgtls "github.com/cloud-wave-best-zizon/admin-service/pkg/tls"
	"github.com/gin-gonic/gin"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

// store is the union of what the services read and write.
type store interface {
	service.ProductStore
	service.OrderStore
	service.UserStore
}

func main() {
	// Config 로드
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open store", zap.String("driver", cfg.StoreDriver), zap.Error(err))
	}

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.KafkaBrokers != "" {
		publisher = events.NewKafkaProducer(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		logger.Info("Publishing product events", zap.String("topic", cfg.KafkaTopic))
	}
	defer publisher.Close()

	// Repository, Service, Handler 초기화
	files := storage.NewLocalFileStore(cfg.Root)
	layout := service.StorageLayout{
		PrivateDir:  cfg.PrivateDir,
		PublicDir:   cfg.PublicDir,
		ImagePrefix: cfg.ImagePrefix,
	}
	productService := service.NewProductService(st, files, publisher, layout, logger)
	dashboardService := service.NewDashboardService(st, st, st, logger)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handler.NewRouter(
		handler.NewProductHandler(productService, logger),
		handler.NewDashboardHandler(dashboardService, logger),
		handler.StaticImages{
			URLPrefix: cfg.ImagePrefix,
			Dir:       filepath.Join(cfg.Root, cfg.PublicDir, cfg.ImagePrefix),
		},
		logger,
	)

	var tlsCfg pkgtls.TLSConfig
	if err := envconfig.Process("", &tlsCfg); err != nil {
		logger.Fatal("Failed to load TLS config", zap.Error(err))
	}
	serverTLS, err := pkgtls.LoadServerTLS(ctx, tlsCfg, logger)
	if err != nil {
		logger.Fatal("Failed to load TLS", zap.Error(err))
	}
	defer serverTLS.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if serverTLS != nil {
		srv.TLSConfig = serverTLS.Config
		go serverTLS.WatchSVID(ctx, 30*time.Second)
	}

	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Port), zap.Bool("tls", serverTLS != nil))
		var err error
		if serverTLS != nil {
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	<-ctx.Done()

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.AppEnv == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	zcfg.Level = level

	return zcfg.Build(zap.Fields(zap.String("service", "admin-service")))
}

func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store, error) {
	switch cfg.StoreDriver {
	case "dynamodb":
		client, err := repository.NewDynamoDBClient(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
		}
		return repository.NewDynamoRepository(client, cfg.ProductTableName, cfg.OrderTableName, cfg.UserTableName), nil
	case "postgres", "sqlite":
		db, err := repository.OpenSQL(cfg.StoreDriver, cfg.DatabaseDSN, logger)
		if err != nil {
			return nil, err
		}
		repo := repository.NewSQLRepository(db)
		if cfg.AutoMigrate {
			if err := repo.AutoMigrate(); err != nil {
				return nil, err
			}
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("%w: %q", repository.ErrUnsupportedDriver, cfg.StoreDriver)
	}
}
