package validation

import (
	"bytes"
	"io"
	"testing"

	"github.com/cloud-wave-best-zizon/admin-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upload(name, contentType string, data []byte) *domain.Upload {
	return &domain.Upload{
		Filename:    name,
		ContentType: contentType,
		Size:        int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

func validForm() domain.CreateProductForm {
	return domain.CreateProductForm{
		Name:         "Course",
		Description:  "A video course",
		PriceInCents: "1999",
		File:         upload("course.zip", "application/zip", []byte("zip-bytes")),
		Image:        upload("cover.png", "image/png", []byte("png-bytes")),
	}
}

func TestValidateCreateProduct_Valid(t *testing.T) {
	in, errs := ValidateCreateProduct(validForm())
	require.Empty(t, errs)

	assert.Equal(t, "Course", in.Name)
	assert.Equal(t, "A video course", in.Description)
	assert.Equal(t, int64(1999), in.PriceInCents)
	assert.Equal(t, "course.zip", in.File.Filename)
	assert.Equal(t, "cover.png", in.Image.Filename)
}

func TestValidateCreateProduct_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CreateProductForm)
		want   domain.FieldErrors
	}{
		{
			name:   "empty name",
			mutate: func(f *domain.CreateProductForm) { f.Name = "" },
			want:   domain.FieldErrors{FieldName: {MsgStringMin}},
		},
		{
			name:   "empty description",
			mutate: func(f *domain.CreateProductForm) { f.Description = "" },
			want:   domain.FieldErrors{FieldDescription: {MsgStringMin}},
		},
		{
			name:   "zero price",
			mutate: func(f *domain.CreateProductForm) { f.PriceInCents = "0" },
			want:   domain.FieldErrors{FieldPriceInCents: {MsgNumberMin}},
		},
		{
			name:   "negative price",
			mutate: func(f *domain.CreateProductForm) { f.PriceInCents = "-5" },
			want:   domain.FieldErrors{FieldPriceInCents: {MsgNumberMin}},
		},
		{
			name:   "blank price",
			mutate: func(f *domain.CreateProductForm) { f.PriceInCents = "" },
			want:   domain.FieldErrors{FieldPriceInCents: {MsgNumberMin}},
		},
		{
			name:   "price not a number",
			mutate: func(f *domain.CreateProductForm) { f.PriceInCents = "abc" },
			want:   domain.FieldErrors{FieldPriceInCents: {MsgExpectedNumber}},
		},
		{
			name:   "fractional price",
			mutate: func(f *domain.CreateProductForm) { f.PriceInCents = "10.5" },
			want:   domain.FieldErrors{FieldPriceInCents: {MsgExpectedInt}},
		},
		{
			name:   "missing file",
			mutate: func(f *domain.CreateProductForm) { f.File = nil },
			want:   domain.FieldErrors{FieldFile: {MsgRequired}},
		},
		{
			name:   "empty file",
			mutate: func(f *domain.CreateProductForm) { f.File = upload("empty.zip", "application/zip", nil) },
			want:   domain.FieldErrors{FieldFile: {MsgRequired}},
		},
		{
			name:   "missing image",
			mutate: func(f *domain.CreateProductForm) { f.Image = nil },
			want:   domain.FieldErrors{FieldImage: {MsgRequired}},
		},
		{
			name:   "empty image",
			mutate: func(f *domain.CreateProductForm) { f.Image = upload("cover.png", "image/png", nil) },
			want:   domain.FieldErrors{FieldImage: {MsgRequired}},
		},
		{
			name:   "image wrong type",
			mutate: func(f *domain.CreateProductForm) { f.Image = upload("cover.pdf", "application/pdf", []byte("%PDF")) },
			want:   domain.FieldErrors{FieldImage: {MsgInvalidInput}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			_, errs := ValidateCreateProduct(form)
			assert.Equal(t, tt.want, errs)
		})
	}
}

func TestValidateCreateProduct_MultipleFields(t *testing.T) {
	form := domain.CreateProductForm{PriceInCents: "x"}

	_, errs := ValidateCreateProduct(form)
	assert.Equal(t, domain.FieldErrors{
		FieldName:         {MsgStringMin},
		FieldDescription:  {MsgStringMin},
		FieldPriceInCents: {MsgExpectedNumber},
		FieldFile:         {MsgRequired},
		FieldImage:        {MsgRequired},
	}, errs)
}

func TestCoercePrice(t *testing.T) {
	n, msg := coercePrice(" 42 ")
	assert.Equal(t, int64(42), n)
	assert.Empty(t, msg)

	n, msg = coercePrice("1e3")
	assert.Equal(t, int64(1000), n)
	assert.Empty(t, msg)

	_, msg = coercePrice("NaN")
	assert.Equal(t, MsgExpectedNumber, msg)

	_, msg = coercePrice("Inf")
	assert.Equal(t, MsgExpectedInt, msg)
}
