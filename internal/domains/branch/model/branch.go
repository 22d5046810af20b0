package model

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type BranchStatus string

const (
	BranchStatusActive   BranchStatus = "active"
	BranchStatusInactive BranchStatus = "inactive"
)

type Branch struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Location  string       `json:"location"`
	Status    BranchStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type CreateBranchRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

func (r CreateBranchRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.Location, validation.Required, validation.Length(2, 255)),
	)
}

type UpdateBranchRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Status   *string `json:"status"`
}

func (r UpdateBranchRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(2, 100)),
		validation.Field(&r.Location, validation.NilOrNotEmpty, validation.Length(2, 255)),
		validation.Field(&r.Status, validation.In(
			string(BranchStatusActive),
			string(BranchStatusInactive),
		)),
	)
}

var ErrBranchNotFound = errors.New("branch not found")

type BranchError struct {
	Code    string
	Message string
	Err     error
}

func (e *BranchError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BranchError) Unwrap() error {
	return e.Err
}

func NewBranchNotFoundError(branchID int64) *BranchError {
	return &BranchError{
		Code:    "BRANCH_NOT_FOUND",
		Message: fmt.Sprintf("branch %d not found", branchID),
		Err:     ErrBranchNotFound,
	}
}
