package domain

import (
	"io"
	"time"
)

type Product struct {
	ProductID              string    `gorm:"column:id;primaryKey" dynamodbav:"product_id" json:"id"`
	Name                   string    `gorm:"column:name;not null" dynamodbav:"name" json:"name"`
	Description            string    `gorm:"column:description;not null" dynamodbav:"description" json:"description"`
	PriceInCents           int64     `gorm:"column:price_in_cents;not null" dynamodbav:"price_in_cents" json:"price_in_cents"`
	FilePath               string    `gorm:"column:file_path;not null" dynamodbav:"file_path" json:"file_path"`
	ImagePath              string    `gorm:"column:image_path;not null" dynamodbav:"image_path" json:"image_path"`
	IsAvailableForPurchase bool      `gorm:"column:is_available_for_purchase;not null;index" dynamodbav:"is_available_for_purchase" json:"is_available_for_purchase"`
	CreatedAt              time.Time `gorm:"column:created_at" dynamodbav:"created_at" json:"created_at"`
	UpdatedAt              time.Time `gorm:"column:updated_at" dynamodbav:"updated_at" json:"updated_at"`
}

func (Product) TableName() string { return "products" }

// Upload is a binary form part. Open may be called more than once.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// CreateProductForm is the raw submission before coercion.
// A nil File or Image means the part was absent.
type CreateProductForm struct {
	Name         string
	Description  string
	PriceInCents string
	File         *Upload
	Image        *Upload
}

type CreateProductInput struct {
	Name         string
	Description  string
	PriceInCents int64
	File         Upload
	Image        Upload
}

// FieldErrors maps a form field to its messages, in rule order.
type FieldErrors map[string][]string

func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

type ProductResponse struct {
	ProductID              string `json:"id"`
	Name                   string `json:"name"`
	Description            string `json:"description"`
	PriceInCents           int64  `json:"price_in_cents"`
	ImagePath              string `json:"image_path"`
	IsAvailableForPurchase bool   `json:"is_available_for_purchase"`
}

func NewProductResponse(p Product) ProductResponse {
	return ProductResponse{
		ProductID:              p.ProductID,
		Name:                   p.Name,
		Description:            p.Description,
		PriceInCents:           p.PriceInCents,
		ImagePath:              p.ImagePath,
		IsAvailableForPurchase: p.IsAvailableForPurchase,
	}
}
