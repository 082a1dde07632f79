package domain

import (
	"errors"
	"fmt"
)

// Render errors. All of them trigger the fallback path; none of them may
// leave a renderer process behind.
var (
	ErrRendererUnavailable = errors.New("renderer unavailable")
	ErrRenderTimeout       = errors.New("render timeout")
	ErrRenderFailure       = errors.New("render failure")

	ErrMarkupBuild = errors.New("markup build failed")
	ErrNotFound    = errors.New("document source not found")
)

// FieldError is a pre-render validation failure on a named request field.
type FieldError struct {
	Field string
	Code  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Code)
}

func newFieldError(field, code string) error {
	return &FieldError{Field: field, Code: code}
}

// IsRenderError reports whether err belongs to the render-error family
// that degrades to the fallback path.
func IsRenderError(err error) bool {
	return errors.Is(err, ErrRendererUnavailable) ||
		errors.Is(err, ErrRenderTimeout) ||
		errors.Is(err, ErrRenderFailure)
}
