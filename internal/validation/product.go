package validation

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/cloud-wave-best-zizon/admin-service/internal/domain"
	"github.com/go-playground/validator/v10"
)

const (
	MsgRequired       = "Required"
	MsgStringMin      = "String must contain at least 1 character(s)"
	MsgNumberMin      = "Number must be greater than or equal to 1"
	MsgExpectedNumber = "Expected number, received nan"
	MsgExpectedInt    = "Expected integer, received float"
	MsgInvalidInput   = "Invalid input"
)

// Form field names, as submitted.
const (
	FieldName         = "name"
	FieldDescription  = "description"
	FieldPriceInCents = "priceInCents"
	FieldFile         = "file"
	FieldImage        = "image"
)

type productRules struct {
	Name         string         `form:"name" validate:"min=1"`
	Description  string         `form:"description" validate:"min=1"`
	PriceInCents int64          `form:"priceInCents" validate:"min=1"`
	File         *domain.Upload `form:"file" validate:"-"`
	Image        *domain.Upload `form:"image" validate:"-"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func rulesValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			return f.Tag.Get("form")
		})
		v.RegisterStructValidation(validateUploads, productRules{})
		validate = v
	})
	return validate
}

// ValidateCreateProduct coerces and checks a product submission. A non-empty
// FieldErrors means the input must not be used.
func ValidateCreateProduct(form domain.CreateProductForm) (domain.CreateProductInput, domain.FieldErrors) {
	errs := domain.FieldErrors{}

	rules := productRules{
		Name:        form.Name,
		Description: form.Description,
		File:        form.File,
		Image:       form.Image,
	}

	price, priceMsg := coercePrice(form.PriceInCents)
	if priceMsg != "" {
		errs.Add(FieldPriceInCents, priceMsg)
		// keep the min rule from firing on a value that never parsed
		rules.PriceInCents = 1
	} else {
		rules.PriceInCents = price
	}

	var verrs validator.ValidationErrors
	if err := rulesValidator().Struct(rules); errors.As(err, &verrs) {
		for _, fe := range verrs {
			errs.Add(fe.Field(), messageFor(fe))
		}
	}

	if len(errs) > 0 {
		return domain.CreateProductInput{}, errs
	}

	return domain.CreateProductInput{
		Name:         form.Name,
		Description:  form.Description,
		PriceInCents: price,
		File:         *form.File,
		Image:        *form.Image,
	}, nil
}

// validateUploads checks both parts: present and non-empty, and for the
// image a declared media type under image/.
func validateUploads(sl validator.StructLevel) {
	rules := sl.Current().Interface().(productRules)

	if rules.File == nil || rules.File.Size <= 0 {
		sl.ReportError(rules.File, FieldFile, "File", "required", "")
	}

	switch {
	case rules.Image == nil || rules.Image.Size <= 0:
		sl.ReportError(rules.Image, FieldImage, "Image", "required", "")
	case !strings.HasPrefix(rules.Image.ContentType, "image/"):
		sl.ReportError(rules.Image, FieldImage, "Image", "image_type", "")
	}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return MsgRequired
	case "min":
		if fe.Kind() == reflect.String {
			return MsgStringMin
		}
		return MsgNumberMin
	default:
		return MsgInvalidInput
	}
}

// coercePrice follows numeric coercion of form values: blank is 0,
// anything else must parse as a finite integer.
func coercePrice(raw string) (int64, string) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ""
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, ""
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, MsgExpectedNumber
	}
	if math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, MsgExpectedInt
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0, MsgExpectedInt
	}
	return int64(f), ""
}
