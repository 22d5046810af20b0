package model

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// =====================================================
// USER ENTITY
// =====================================================

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// =====================================================
// DTOs
// =====================================================

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 72)),
	)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (r RefreshRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RefreshToken, validation.Required),
	)
}

type AuthResponse struct {
	User         *User  `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// =====================================================
// ERRORS
// =====================================================

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type UserError struct {
	Code    string
	Message string
	Err     error
}

func (e *UserError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *UserError) Unwrap() error {
	return e.Err
}

func NewUserNotFoundError(userID int64) *UserError {
	return &UserError{
		Code:    "USER_NOT_FOUND",
		Message: fmt.Sprintf("user %d not found", userID),
		Err:     ErrUserNotFound,
	}
}

func NewEmailTakenError(email string) *UserError {
	return &UserError{
		Code:    "USER_EMAIL_TAKEN",
		Message: fmt.Sprintf("email %s is already registered", email),
		Err:     ErrEmailTaken,
	}
}

func NewInvalidCredentialsError() *UserError {
	return &UserError{
		Code:    "USER_INVALID_CREDENTIALS",
		Message: "invalid email or password",
		Err:     ErrInvalidCredentials,
	}
}
