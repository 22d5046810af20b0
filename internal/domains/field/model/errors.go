package model

import (
	"errors"
	"fmt"
)

var (
	ErrFieldNotFound      = errors.New("field not found")
	ErrInvalidImage       = errors.New("invalid field image")
	ErrStorageUnavailable = errors.New("image storage unavailable")
)

const (
	ErrCodeFieldNotFound      = "FIELD_NOT_FOUND"
	ErrCodeInvalidImage       = "FIELD_INVALID_IMAGE"
	ErrCodeStorageUnavailable = "FIELD_STORAGE_UNAVAILABLE"
)

type FieldError struct {
	Code    string
	Message string
	Err     error
}

func (e *FieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func NewFieldNotFoundError(fieldID int64) *FieldError {
	return &FieldError{
		Code:    ErrCodeFieldNotFound,
		Message: fmt.Sprintf("field %d not found", fieldID),
		Err:     ErrFieldNotFound,
	}
}

func NewInvalidImageError(detail string) *FieldError {
	return &FieldError{
		Code:    ErrCodeInvalidImage,
		Message: detail,
		Err:     ErrInvalidImage,
	}
}

func NewStorageUnavailableError() *FieldError {
	return &FieldError{
		Code:    ErrCodeStorageUnavailable,
		Message: "image storage is not configured",
		Err:     ErrStorageUnavailable,
	}
}
