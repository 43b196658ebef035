package handler

import (
	"net/http"

	"github.com/cloud-wave-best-zizon/admin-service/pkg/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StaticImages serves preview images: URLPrefix "products" maps /products/* to Dir.
type StaticImages struct {
	URLPrefix string
	Dir       string
}

func NewRouter(products *ProductHandler, dashboard *DashboardHandler, images StaticImages, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))

	if images.URLPrefix != "" && images.Dir != "" {
		router.Static("/"+images.URLPrefix, images.Dir)
	}

	admin := router.Group("/admin")
	{
		admin.GET("", dashboard.GetDashboard)
		admin.GET("/products", products.ListProducts)
		admin.POST("/products", products.CreateProduct)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	return router
}
