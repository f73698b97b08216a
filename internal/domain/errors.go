package domain

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrNoContent = errors.New("no content")
	ErrDuplicate = errors.New("already exists")
	ErrNotFound  = errors.New("not found")
)

// NoContentError reports that no categories have been created yet.
type NoContentError struct{}

func (e *NoContentError) Error() string { return "no category created till now" }

func (e *NoContentError) Is(target error) bool { return target == ErrNoContent }

// DuplicateError reports a categoryName collision.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("category %s already exists", e.Name)
}

func (e *DuplicateError) Is(target error) bool { return target == ErrDuplicate }

// NotFoundError reports an unknown categoryId.
type NotFoundError struct {
	ID      int64
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("category with categoryId : %d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
