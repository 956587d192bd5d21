package handler

import (
	"log/slog"
	"net/http"
	"time"

	"dailyfarm/internal/delivery/http/middleware"
	"dailyfarm/internal/delivery/http/response"
	"dailyfarm/internal/domain/entity"
	"dailyfarm/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account and authentication handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type registerRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	FullName        string `json:"fullName" validate:"required"`
	UserType        string `json:"userType" validate:"required,oneof=FARMER CUSTOMER"`
	PhoneNumber     string `json:"phoneNumber"`
	FarmName        string `json:"farmName"`
	FarmLocation    string `json:"farmLocation"`
	FarmDescription string `json:"farmDescription"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type socialLoginRequest struct {
	IDToken  string `json:"idToken" validate:"required"`
	UserType string `json:"userType"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type updateProfileRequest struct {
	FullName        *string `json:"fullName"`
	PhoneNumber     *string `json:"phoneNumber"`
	ProfileImage    *string `json:"profileImage"`
	FarmName        *string `json:"farmName"`
	FarmLocation    *string `json:"farmLocation"`
	FarmDescription *string `json:"farmDescription"`
}

// userResponse is the public view of an account. The password hash never
// leaves the server.
type userResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	FullName        string    `json:"fullName"`
	UserType        string    `json:"userType"`
	AuthProvider    string    `json:"authProvider"`
	PhoneNumber     string    `json:"phoneNumber,omitempty"`
	ProfileImage    string    `json:"profileImage,omitempty"`
	FarmName        string    `json:"farmName,omitempty"`
	FarmLocation    string    `json:"farmLocation,omitempty"`
	FarmDescription string    `json:"farmDescription,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type loginResponse struct {
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
	User         userResponse `json:"user"`
}

func toUserResponse(user *entity.User) userResponse {
	resp := userResponse{
		ID:           user.ID.String(),
		Email:        user.Email,
		FullName:     user.FullName,
		UserType:     user.UserType.String(),
		AuthProvider: user.AuthProvider.String(),
		PhoneNumber:  user.PhoneNumber,
		ProfileImage: user.ProfileImage,
		CreatedAt:    user.CreatedAt,
	}

	if user.FarmProfile != nil {
		resp.FarmName = user.FarmProfile.FarmName
		resp.FarmLocation = user.FarmProfile.FarmLocation
		resp.FarmDescription = user.FarmProfile.FarmDescription
	}

	return resp
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Email:           req.Email,
		Password:        req.Password,
		FullName:        req.FullName,
		UserType:        entity.UserType(req.UserType),
		PhoneNumber:     req.PhoneNumber,
		FarmName:        req.FarmName,
		FarmLocation:    req.FarmLocation,
		FarmDescription: req.FarmDescription,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(output.User), "User registered successfully")
}

// Login handles the local credentials login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         toUserResponse(output.User),
	}, "Login successful")
}

// SocialLogin handles login via an OAuth provider ID token.
func (h *UserHandler) SocialLogin(c echo.Context) error {
	var req socialLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid social login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.SocialLogin(c.Request().Context(), &usecase.SocialLoginInput{
		IDToken:  req.IDToken,
		UserType: entity.UserType(req.UserType),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         toUserResponse(output.User),
	}, "Social login successful")
}

// RefreshToken handles the token refresh request.
func (h *UserHandler) RefreshToken(c echo.Context) error {
	var req refreshTokenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// GetProfile handles the request to get the current user's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile retrieved successfully")
}

// UpdateProfile handles the request to change the current user's profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), &usecase.UpdateProfileInput{
		UserID:          userID,
		FullName:        req.FullName,
		PhoneNumber:     req.PhoneNumber,
		ProfileImage:    req.ProfileImage,
		FarmName:        req.FarmName,
		FarmLocation:    req.FarmLocation,
		FarmDescription: req.FarmDescription,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "Profile updated successfully")
}
