// Package validation applies struct tag rules to records decoded from upstream feeds.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v, err := newValidator()
		if err != nil {
			panic(fmt.Sprintf("validation: %v", err))
		}
		validate = v
	})
	return validate
}

func newValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	// nonblank rejects strings that are empty after trimming whitespace.
	err := v.RegisterValidation("nonblank", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}
		return strings.TrimSpace(field.String()) != ""
	})
	if err != nil {
		return nil, fmt.Errorf("register nonblank rule: %w", err)
	}
	return v, nil
}

// Check returns the validation error for v, if any.
func Check(v any) error {
	return instance().Struct(v)
}

// Valid reports whether v satisfies its validate tags.
func Valid(v any) bool {
	return Check(v) == nil
}

// Filter returns the items that pass validation, preserving order.
func Filter[T any](items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if Valid(item) {
			out = append(out, item)
		}
	}
	return out
}
