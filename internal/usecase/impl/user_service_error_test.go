package impl

import (
	"context"
	"testing"

	"dailyfarm/internal/domain/entity"
	domainerrors "dailyfarm/internal/domain/errors"
	"dailyfarm/internal/domain/repository"
	"dailyfarm/internal/domain/service"
	mockRepo "dailyfarm/internal/mocks/repository"
	"dailyfarm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "taken@example.com",
		Password: "Str0ngPass!",
		UserType: entity.UserTypeCustomer,
	}

	fx.hasher.EXPECT().ValidatePasswordStrength("Str0ngPass!").Return(nil)
	fx.hasher.EXPECT().Hash("Str0ngPass!").Return("hashed-password", nil)

	fx.onExecute(ctx, domainerrors.ErrUserAlreadyExists, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, "taken@example.com").Return(&entity.User{ID: uuid.New()}, nil)
	})

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_UnknownUserType(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "buyer@example.com",
		Password: "Str0ngPass!",
		UserType: entity.UserType("ADMIN"),
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("weak").Return(domainerrors.ErrPasswordStrength)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:    "buyer@example.com",
		Password: "weak",
		UserType: entity.UserTypeCustomer,
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:             uuid.New(),
		Email:          "buyer@example.com",
		HashedPassword: "hashed-password",
		IsActive:       true,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "buyer@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed-password").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "buyer@example.com",
		Password: "wrong",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_SocialOnlyAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	// Social-only accounts have no stored hash; the password check still runs
	// and fails with the same error as a wrong password.
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "social@example.com",
		AuthProvider: entity.AuthProviderGoogle,
		SocialID:     "google-sub-123",
		IsActive:     true,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "social@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("whatever", "").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "social@example.com",
		Password: "whatever",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_DisabledAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:             uuid.New(),
		Email:          "buyer@example.com",
		HashedPassword: "hashed-password",
		IsActive:       false,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "buyer@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Str0ngPass!", "hashed-password").Return(true)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "buyer@example.com",
		Password: "Str0ngPass!",
	})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserDisabled))
}

func TestUserService_SocialLogin_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.oauthService.EXPECT().GetProvider().Return(entity.AuthProviderGoogle)
	fx.oauthService.EXPECT().VerifyIDToken(ctx, "bogus").Return(nil, domainerrors.ErrOAuthTokenInvalid)

	_, err := fx.service.SocialLogin(ctx, &usecase.SocialLoginInput{IDToken: "bogus"})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthTokenInvalid))
}

func TestUserService_RefreshToken_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateRefreshToken("expired").Return(nil, errors.New("token is expired"))

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "expired"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid refresh token")
}

func TestUserService_RefreshToken_DisabledAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(&service.Claims{
		UserID:   userID,
		UserType: "CUSTOMER",
		Type:     "refresh",
	}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, IsActive: false}, nil)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserDisabled))
}
