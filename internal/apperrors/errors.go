// Package apperrors defines the error taxonomy shared by the analytics core
// and its HTTP layer. The core returns these errors as-is; handlers translate
// them into status codes.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports malformed or out-of-domain input. ItemIDs, when
// set, names every offending row so callers can locate them.
type ValidationError struct {
	Msg     string
	ItemIDs []string
}

func (e *ValidationError) Error() string {
	if len(e.ItemIDs) > 0 {
		return fmt.Sprintf("%s: %s", e.Msg, strings.Join(e.ItemIDs, ", "))
	}
	return e.Msg
}

func NewValidation(msg string, itemIDs ...string) *ValidationError {
	return &ValidationError{Msg: msg, ItemIDs: itemIDs}
}

// DomainError reports a numeric domain violation inside a formula, such as a
// probability outside (0,1) passed to the quantile function.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string { return e.Msg }

func NewDomain(format string, args ...any) *DomainError {
	return &DomainError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a requested resource absent from the data it was
// looked up in.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsDomain(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

func IsNotFound(err error) bool {
	var ne *NotFoundError
	return errors.As(err, &ne)
}
