package impl

import (
	"context"
	"testing"

	"dailyfarm/internal/domain/entity"
	"dailyfarm/internal/domain/repository"
	"dailyfarm/internal/domain/service"
	mockRepo "dailyfarm/internal/mocks/repository"
	mockSvc "dailyfarm/internal/mocks/service"
	"dailyfarm/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	t            *testing.T
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	oauthService *mockSvc.MockOAuthAuthService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	oauthService := mockSvc.NewMockOAuthAuthService(t)

	service := NewUserService(UserServiceParams{
		TxManager:         txManager,
		UserRepo:          userRepo,
		Hasher:            hasher,
		TokenService:      tokenService,
		GoogleAuthService: oauthService,
		Logger:            newDiscardLogger(),
	})

	return userServiceFixtures{
		t:            t,
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		oauthService: oauthService,
	}
}

// onExecute arranges the transaction to run the given repository expectations
// and surface returnErr to the caller.
func (fx userServiceFixtures) onExecute(ctx context.Context, returnErr error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(factory)

			_ = fn(factory)
		}).
		Return(returnErr)
}

func TestUserService_Register_Customer(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "buyer@example.com",
		Password: "Str0ngPass!",
		FullName: "Test Buyer",
		UserType: entity.UserTypeCustomer,
	}

	fx.hasher.EXPECT().ValidatePasswordStrength("Str0ngPass!").Return(nil)
	fx.hasher.EXPECT().Hash("Str0ngPass!").Return("hashed-password", nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, "buyer@example.com").Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output.User)
	assert.Equal(t, "buyer@example.com", output.User.Email)
	assert.Equal(t, "hashed-password", output.User.HashedPassword)
	assert.Equal(t, entity.AuthProviderLocal, output.User.AuthProvider)
	assert.True(t, output.User.IsActive)
	assert.Nil(t, output.User.FarmProfile)
}

func TestUserService_Register_FarmerGetsFarmProfile(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:        "farmer@example.com",
		Password:     "Str0ngPass!",
		FullName:     "Test Farmer",
		UserType:     entity.UserTypeFarmer,
		FarmName:     "Sunny Acres",
		FarmLocation: "Gangwon-do",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength("Str0ngPass!").Return(nil)
	fx.hasher.EXPECT().Hash("Str0ngPass!").Return("hashed-password", nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByEmail(ctx, "farmer@example.com").Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output.User.FarmProfile)
	assert.Equal(t, "Sunny Acres", output.User.FarmProfile.FarmName)
	assert.Equal(t, "Gangwon-do", output.User.FarmProfile.FarmLocation)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:             userID,
		Email:          "buyer@example.com",
		HashedPassword: "hashed-password",
		UserType:       entity.UserTypeCustomer,
		IsActive:       true,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "buyer@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Str0ngPass!", "hashed-password").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(userID, "CUSTOMER").Return("access", "refresh", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "buyer@example.com",
		Password: "Str0ngPass!",
	})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_SocialLogin_CreatesCustomerOnFirstVisit(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	oauthUser := &service.OAuthUser{
		ID:            "google-sub-123",
		Email:         "social@example.com",
		Name:          "Social User",
		Provider:      entity.AuthProviderGoogle,
		AvatarURL:     "https://example.com/avatar.png",
		EmailVerified: true,
	}

	fx.oauthService.EXPECT().GetProvider().Return(entity.AuthProviderGoogle)
	fx.oauthService.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindBySocialID(ctx, "google-sub-123").Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	})

	fx.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("uuid.UUID"), "CUSTOMER").
		Return("access", "refresh", nil)

	output, err := fx.service.SocialLogin(ctx, &usecase.SocialLoginInput{IDToken: "id-token"})

	require.NoError(t, err)
	assert.Equal(t, entity.UserTypeCustomer, output.User.UserType)
	assert.Equal(t, entity.AuthProviderGoogle, output.User.AuthProvider)
	assert.Equal(t, "google-sub-123", output.User.SocialID)
	assert.Equal(t, "access", output.AccessToken)
}

func TestUserService_SocialLogin_ExistingUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "social@example.com",
		UserType:     entity.UserTypeCustomer,
		AuthProvider: entity.AuthProviderGoogle,
		SocialID:     "google-sub-123",
		IsActive:     true,
	}

	fx.oauthService.EXPECT().GetProvider().Return(entity.AuthProviderGoogle)
	fx.oauthService.EXPECT().VerifyIDToken(ctx, "id-token").Return(&service.OAuthUser{
		ID:       "google-sub-123",
		Email:    "social@example.com",
		Provider: entity.AuthProviderGoogle,
	}, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindBySocialID(ctx, "google-sub-123").Return(user, nil)
	})

	fx.tokenService.EXPECT().GenerateTokens(userID, "CUSTOMER").Return("access", "refresh", nil)

	output, err := fx.service.SocialLogin(ctx, &usecase.SocialLoginInput{IDToken: "id-token"})

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:       userID,
		UserType: entity.UserTypeCustomer,
		IsActive: true,
	}

	fx.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(&service.Claims{
		UserID:   userID,
		UserType: "CUSTOMER",
		Type:     "refresh",
	}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.tokenService.EXPECT().GenerateTokens(userID, "CUSTOMER").Return("new-access", "unused-refresh", nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
}

func TestUserService_GetProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "buyer@example.com"}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	got, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestUserService_UpdateProfile_FarmFieldsIgnoredForCustomers(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingUser := &entity.User{
		ID:       userID,
		FullName: "Old Name",
		UserType: entity.UserTypeCustomer,
		IsActive: true,
	}

	newName := "New Name"
	farmName := "Should Be Ignored"
	input := &usecase.UpdateProfileInput{
		UserID:   userID,
		FullName: &newName,
		FarmName: &farmName,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
		mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	})

	updated, err := fx.service.UpdateProfile(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.FullName)
	assert.Nil(t, updated.FarmProfile)
}

func TestUserService_UpdateProfile_FarmFieldsForFarmers(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingUser := &entity.User{
		ID:          userID,
		UserType:    entity.UserTypeFarmer,
		FarmProfile: &entity.FarmProfile{FarmName: "Old Farm"},
		IsActive:    true,
	}

	farmName := "Sunny Acres"
	input := &usecase.UpdateProfileInput{
		UserID:   userID,
		FarmName: &farmName,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
		mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	})

	updated, err := fx.service.UpdateProfile(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, updated.FarmProfile)
	assert.Equal(t, "Sunny Acres", updated.FarmProfile.FarmName)
}
