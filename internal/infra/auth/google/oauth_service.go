// Package google verifies Google ID tokens for social login.
package google

import (
	"context"

	"dailyfarm/config"
	"dailyfarm/internal/domain/entity"
	domainerrors "dailyfarm/internal/domain/errors"
	"dailyfarm/internal/domain/service"

	"google.golang.org/api/idtoken"
)

// oauthService validates Google-issued ID tokens against the configured client ID.
type oauthService struct {
	clientID string
}

// NewOAuthService is the constructor for the Google OAuth service.
func NewOAuthService(cfg *config.Config) service.OAuthAuthService {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &oauthService{clientID: clientID}
}

// VerifyIDToken verifies a Google ID token and extracts the user information.
func (s *oauthService) VerifyIDToken(ctx context.Context, rawToken string) (*service.OAuthUser, error) {
	payload, err := idtoken.Validate(ctx, rawToken, s.clientID)
	if err != nil {
		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage("google id token validation failed")
	}

	user := &service.OAuthUser{
		ID:       payload.Subject,
		Provider: entity.AuthProviderGoogle,
	}
	if email, ok := payload.Claims["email"].(string); ok {
		user.Email = email
	}
	if name, ok := payload.Claims["name"].(string); ok {
		user.Name = name
	}
	if picture, ok := payload.Claims["picture"].(string); ok {
		user.AvatarURL = picture
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		user.EmailVerified = verified
	}

	return user, nil
}

// GetProvider returns the OAuth provider type.
func (s *oauthService) GetProvider() entity.AuthProvider {
	return entity.AuthProviderGoogle
}
