// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"dailyfarm/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// The farm fields are only consumed when UserType is FARMER.
type RegisterInput struct {
	Email           string
	Password        string
	FullName        string
	UserType        entity.UserType
	PhoneNumber     string
	FarmName        string
	FarmLocation    string
	FarmDescription string
}

// LoginInput defines the data required for a local credentials login.
type LoginInput struct {
	Email    string
	Password string
}

// SocialLoginInput defines the data required for an OAuth provider login.
type SocialLoginInput struct {
	IDToken  string
	UserType entity.UserType
}

// RefreshTokenInput carries the refresh token presented for renewal.
type RefreshTokenInput struct {
	RefreshToken string
}

// UpdateProfileInput defines the mutable profile fields. Nil pointers leave
// the current value untouched.
type UpdateProfileInput struct {
	UserID          uuid.UUID
	FullName        *string
	PhoneNumber     *string
	ProfileImage    *string
	FarmName        *string
	FarmLocation    *string
	FarmDescription *string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the renewed access token.
type RefreshTokenOutput struct {
	AccessToken string `json:"accessToken"`
}

// UserUsecase defines the interface for account and authentication operations.
// This is the contract that the delivery layer depends on.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	SocialLogin(ctx context.Context, input *SocialLoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)
}
