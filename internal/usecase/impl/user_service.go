// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "dailyfarm/internal/delivery/context"
	"dailyfarm/internal/domain/entity"
	domainerrors "dailyfarm/internal/domain/errors"
	"dailyfarm/internal/domain/repository"
	"dailyfarm/internal/domain/service"
	"dailyfarm/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	Logger            *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email), slog.Any("userType", input.UserType))

	if !input.UserType.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown user type")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		_, findErr := userRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check email availability")
		}

		newUser := buildNewUserEntity(input, hashedPassword)
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

func buildNewUserEntity(input *usecase.RegisterInput, hashedPassword string) *entity.User {
	newUser := &entity.User{
		Email:          input.Email,
		FullName:       input.FullName,
		HashedPassword: hashedPassword,
		UserType:       input.UserType,
		AuthProvider:   entity.AuthProviderLocal,
		PhoneNumber:    input.PhoneNumber,
		IsActive:       true,
	}

	if input.UserType == entity.UserTypeFarmer {
		newUser.FarmProfile = &entity.FarmProfile{
			FarmName:        input.FarmName,
			FarmLocation:    input.FarmLocation,
			FarmDescription: input.FarmDescription,
		}
	}

	return newUser
}

// Login orchestrates the local credentials login process.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// bcrypt comparison happens even for social-only accounts; the empty
	// stored hash never matches, so the error is uniform.
	if !srv.hasher.Check(input.Password, user.HashedPassword) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domainerrors.ErrUserDisabled
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.UserType.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// SocialLogin handles login or first-visit registration via an OAuth ID token.
func (srv *userService) SocialLogin(ctx context.Context, input *usecase.SocialLoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Handling social login", slog.Any("provider", srv.googleAuthService.GetProvider()))

	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify ID token")
	}

	var loggedInUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, findErr := userRepo.FindBySocialID(ctx, oauthUser.ID)
		if errors.Is(findErr, repository.ErrUserNotFound) {
			user, findErr = srv.createSocialUser(ctx, userRepo, oauthUser, input.UserType)
		}
		if findErr != nil {
			return findErr
		}

		if !user.IsActive {
			return domainerrors.ErrUserDisabled
		}

		loggedInUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute social login transaction", slog.Any("error", err))

		return nil, err
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(loggedInUser.ID, loggedInUser.UserType.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         loggedInUser,
	}, nil
}

// createSocialUser registers a first-time social account. Social sign-ups
// default to customers unless the caller asked for a farmer account.
func (srv *userService) createSocialUser(ctx context.Context, userRepo repository.UserRepository, oauthUser *service.OAuthUser, userType entity.UserType) (*entity.User, error) {
	srv.log(ctx).Info("Social user not found, creating new account", slog.String("email", oauthUser.Email))

	if !userType.IsValid() {
		userType = entity.UserTypeCustomer
	}

	newUser := &entity.User{
		Email:        oauthUser.Email,
		FullName:     oauthUser.Name,
		UserType:     userType,
		AuthProvider: oauthUser.Provider,
		SocialID:     oauthUser.ID,
		ProfileImage: oauthUser.AvatarURL,
		IsActive:     true,
	}
	if userType == entity.UserTypeFarmer {
		newUser.FarmProfile = &entity.FarmProfile{}
	}

	if err := userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user for social login")
	}

	return newUser, nil
}

// RefreshToken issues a new access token from a valid refresh token.
// The refresh token itself remains unchanged.
func (srv *userService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Info("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "invalid refresh token")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for token refresh")
	}

	if !user.IsActive {
		return nil, domainerrors.ErrUserDisabled
	}

	newAccessToken, _, err := srv.tokenService.GenerateTokens(user.ID, user.UserType.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: newAccessToken}, nil
}

// GetProfile loads the user's account data.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user profile")
	}

	return user, nil
}

// UpdateProfile applies the provided profile fields. Farm fields are only
// applied to farmer accounts.
func (srv *userService) UpdateProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Debug("Updating profile", slog.Any("userID", input.UserID))

	var updatedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load user for profile update")
		}

		applyProfileUpdates(user, input)

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user profile")
		}

		updatedUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute profile update transaction", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	return updatedUser, nil
}

func applyProfileUpdates(user *entity.User, input *usecase.UpdateProfileInput) {
	if input.FullName != nil {
		user.FullName = *input.FullName
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = *input.PhoneNumber
	}
	if input.ProfileImage != nil {
		user.ProfileImage = *input.ProfileImage
	}

	if !user.IsFarmer() {
		return
	}
	if user.FarmProfile == nil {
		user.FarmProfile = &entity.FarmProfile{}
	}
	if input.FarmName != nil {
		user.FarmProfile.FarmName = *input.FarmName
	}
	if input.FarmLocation != nil {
		user.FarmProfile.FarmLocation = *input.FarmLocation
	}
	if input.FarmDescription != nil {
		user.FarmProfile.FarmDescription = *input.FarmDescription
	}
}
