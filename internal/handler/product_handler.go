package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/cloud-wave-best-zizon/admin-service/internal/domain"
	"github.com/cloud-wave-best-zizon/admin-service/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const ProductListPath = "/admin/products"

type ProductHandler struct {
	productService *service.ProductService
	logger         *zap.Logger
}

func NewProductHandler(productService *service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	mf, err := c.MultipartForm()
	if err != nil {
		h.logger.Error("Invalid request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	form := domain.CreateProductForm{
		Name:         formValue(mf, "name"),
		Description:  formValue(mf, "description"),
		PriceInCents: formValue(mf, "priceInCents"),
		File:         formUpload(mf, "file"),
		Image:        formUpload(mf, "image"),
	}

	product, fieldErrs, err := h.productService.CreateProduct(c.Request.Context(), form)
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors": fieldErrs,
		})
		return
	}
	if err != nil {
		h.logger.Error("Failed to create product",
			zap.String("name", form.Name),
			zap.Error(err))

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create product",
		})
		return
	}

	h.logger.Debug("Redirecting to product list", zap.String("product_id", product.ProductID))
	c.Redirect(http.StatusSeeOther, ProductListPath)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list products",
		})
		return
	}

	response := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, domain.NewProductResponse(p))
	}

	c.JSON(http.StatusOK, gin.H{"products": response})
}

func formValue(mf *multipart.Form, key string) string {
	if vs := mf.Value[key]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// formUpload returns nil when the part is absent.
func formUpload(mf *multipart.Form, key string) *domain.Upload {
	fhs := mf.File[key]
	if len(fhs) == 0 {
		return nil
	}
	fh := fhs[0]
	return &domain.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}
