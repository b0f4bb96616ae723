package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/stemsi/campus-api/internal/repository"
)

// ValidationError reports entity constraint violations. It is returned
// before anything is written.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// BackendError wraps a storage failure with the operation that hit it.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// backendErr passes not-found through unchanged and wraps everything else.
func backendErr(op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return &BackendError{Op: op, Err: err}
}

func campusReferenceError() error {
	return &ValidationError{Fields: map[string]string{
		"campusId": "campusId must reference an existing campus",
	}}
}
