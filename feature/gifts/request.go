package gifts

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"product-gifts/core/responsive"

	"github.com/go-playground/validator/v10"
)

// Request is the validated input of a gifts lookup.
type Request struct {
	ProductID string `query:"productId" validate:"omitempty,max=64"`
	ItemID    string `query:"itemId" validate:"omitempty,max=64"`
	// Viewport is a breakpoint name; it wins over Width.
	Viewport string `query:"viewport" validate:"omitempty,oneof=phone small tablet medium desktop large"`
	// Width is the viewport width in CSS pixels; 0 means unknown.
	Width int `query:"width" validate:"min=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("query"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// ValidationError maps invalid request fields to a message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+" "+msg)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Validate checks the request fields.
func (r *Request) Validate() error {
	r.ProductID = strings.TrimSpace(r.ProductID)
	r.ItemID = strings.TrimSpace(r.ItemID)
	r.Viewport = strings.ToLower(strings.TrimSpace(r.Viewport))

	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}
	out := &ValidationError{Fields: make(map[string]string, len(errs))}
	for _, fe := range errs {
		out.Fields[fe.Field()] = validationMessage(fe)
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	}
	return "is invalid"
}

// Breakpoint picks the viewport class: the named viewport, then the width,
// then the User-Agent.
func (r *Request) Breakpoint(th responsive.Thresholds, userAgent string) responsive.Breakpoint {
	if bp, ok := responsive.ParseBreakpoint(r.Viewport); ok {
		return bp
	}
	if r.Width > 0 {
		return responsive.Classify(r.Width, th)
	}
	return responsive.ClassifyUserAgent(userAgent)
}

// Selection converts the request into a service selection.
func (r *Request) Selection(th responsive.Thresholds, userAgent string) Selection {
	return Selection{
		ProductID:  r.ProductID,
		ItemID:     r.ItemID,
		Breakpoint: r.Breakpoint(th, userAgent),
	}
}
