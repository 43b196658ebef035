package service

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloud-wave-best-zizon/admin-service/internal/domain"
	"github.com/cloud-wave-best-zizon/admin-service/internal/events"
	"github.com/cloud-wave-best-zizon/admin-service/internal/storage"
	"github.com/cloud-wave-best-zizon/admin-service/internal/validation"
	"github.com/cloud-wave-best-zizon/admin-service/pkg/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StorageLayout describes where uploads land. Purchasable files go to
// PrivateDir; images go to PublicDir/ImagePrefix and are addressed by
// the URL path /ImagePrefix/<name>.
type StorageLayout struct {
	PrivateDir  string
	PublicDir   string
	ImagePrefix string
}

type ProductService struct {
	products  ProductStore
	files     storage.FileStore
	publisher events.Publisher
	layout    StorageLayout
	logger    *zap.Logger

	newID func() string
	now   func() time.Time
}

func NewProductService(products ProductStore, files storage.FileStore, publisher events.Publisher, layout StorageLayout, logger *zap.Logger) *ProductService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &ProductService{
		products:  products,
		files:     files,
		publisher: publisher,
		layout:    layout,
		logger:    logger,
		newID:     uuid.NewString,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateProduct validates the form, stores both uploads and inserts the
// product. Field errors are returned without touching disk or store.
// If a step after the first write fails, files written so far are removed.
func (s *ProductService) CreateProduct(ctx context.Context, form domain.CreateProductForm) (*domain.Product, domain.FieldErrors, error) {
	input, fieldErrs := validation.ValidateCreateProduct(form)
	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	imageDir := filepath.Join(s.layout.PublicDir, s.layout.ImagePrefix)
	filePath := filepath.Join(s.layout.PrivateDir, s.newID()+"-"+baseName(input.File.Filename))
	imagePath := "/" + path.Join(s.layout.ImagePrefix, s.newID()+"-"+baseName(input.Image.Filename))
	imageDiskPath := filepath.Join(s.layout.PublicDir, filepath.FromSlash(imagePath))

	var written []string
	fail := func(err error) (*domain.Product, domain.FieldErrors, error) {
		s.compensate(written)
		return nil, nil, err
	}

	if err := s.files.EnsureDir(ctx, s.layout.PrivateDir); err != nil {
		return fail(err)
	}
	if err := s.writeUpload(ctx, filePath, input.File); err != nil {
		return fail(err)
	}
	written = append(written, filePath)

	if err := s.files.EnsureDir(ctx, imageDir); err != nil {
		return fail(err)
	}
	if err := s.writeUpload(ctx, imageDiskPath, input.Image); err != nil {
		return fail(err)
	}
	written = append(written, imageDiskPath)

	now := s.now()
	product := &domain.Product{
		ProductID:              s.newID(),
		Name:                   input.Name,
		Description:            input.Description,
		PriceInCents:           input.PriceInCents,
		FilePath:               filePath,
		ImagePath:              imagePath,
		IsAvailableForPurchase: false,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := s.products.CreateProduct(ctx, product); err != nil {
		s.logger.Error("Failed to save product",
			zap.String("product_id", product.ProductID),
			zap.Error(err))
		return fail(err)
	}

	s.logger.Info("Product created successfully",
		zap.String("product_id", product.ProductID),
		zap.String("file_path", product.FilePath),
		zap.String("image_path", product.ImagePath))

	s.publishCreated(ctx, product)

	return product, nil, nil
}

func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products.ListProducts(ctx)
}

func (s *ProductService) writeUpload(ctx context.Context, dst string, u domain.Upload) error {
	rc, err := u.Open()
	if err != nil {
		return fmt.Errorf("failed to open upload %q: %w", u.Filename, err)
	}
	defer rc.Close()

	return s.files.WriteFile(ctx, dst, rc)
}

// compensate runs with a fresh context so a cancelled request still cleans up.
func (s *ProductService) compensate(paths []string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for i := len(paths) - 1; i >= 0; i-- {
		if err := s.files.Remove(ctx, paths[i]); err != nil {
			s.logger.Error("Failed to remove orphaned upload",
				zap.String("path", paths[i]),
				zap.Error(err))
			continue
		}
		s.logger.Warn("Removed orphaned upload", zap.String("path", paths[i]))
	}
}

// The record is committed by now; a lost event is logged, not returned.
func (s *ProductService) publishCreated(ctx context.Context, product *domain.Product) {
	event := domain.ProductCreatedEvent{
		EventID:      s.newID(),
		ProductID:    product.ProductID,
		Name:         product.Name,
		PriceInCents: product.PriceInCents,
		ImagePath:    product.ImagePath,
		Timestamp:    product.CreatedAt,
		RequestID:    middleware.RequestIDFromContext(ctx),
	}
	if err := s.publisher.PublishProductCreated(ctx, event); err != nil {
		s.logger.Warn("Failed to publish product created event",
			zap.String("product_id", product.ProductID),
			zap.Error(err))
	}
}

// baseName drops any client-supplied directories from an upload name.
func baseName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == ".." {
		return "upload"
	}
	return name
}
