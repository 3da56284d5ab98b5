package services

import (
	"context"
	"errors"

	"navkar-inquiry/internal/adapters/gateway"
	"navkar-inquiry/internal/core/domain"
	"navkar-inquiry/internal/pkg/logger"
	"navkar-inquiry/internal/pkg/notify"
)

// Landing routes after a successful login.
const (
	AdminLandingRoute    = "/admin"
	CustomerLandingRoute = "/inquiries"
	LoginRoute           = "/login"
)

// AuthService handles the login/register flows and session establishment
type AuthService struct {
	gw       AuthGateway
	sessions SessionStore
	notifier notify.Notifier
}

// NewAuthService creates a new auth service
func NewAuthService(gw AuthGateway, sessions SessionStore, notifier notify.Notifier) *AuthService {
	return &AuthService{
		gw:       gw,
		sessions: sessions,
		notifier: notifier,
	}
}

// Login authenticates against the remote service. On success the session
// is established from the response plus the submitted username, and the
// role-dependent landing route is returned. On failure the stored session
// is left untouched.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	result, err := s.gw.Login(ctx, username, password)
	if err != nil {
		logger.Log.WithError(err).Error("login failed")
		s.notifier.Error(serverMessage(err, "Invalid credentials"))
		return "", err
	}

	if err := s.sessions.Establish(result.Token, result.Role, username); err != nil {
		logger.Log.WithError(err).Error("failed to persist session")
		s.notifier.Error("Invalid credentials")
		return "", err
	}

	s.notifier.Success("Logged in")

	if result.Role.IsAdmin() {
		return AdminLandingRoute, nil
	}
	return CustomerLandingRoute, nil
}

// Register creates an account with the chosen role. No session is
// established; the caller is routed to the login view on success.
func (s *AuthService) Register(ctx context.Context, username, password string, role domain.Role) (string, error) {
	if err := s.gw.Register(ctx, username, password, role); err != nil {
		logger.Log.WithError(err).Error("registration failed")
		s.notifier.Error(serverMessage(err, "Failed to register"))
		return "", err
	}

	s.notifier.Success("Registered. Please login.")
	return LoginRoute, nil
}

// Logout clears the durable session state.
func (s *AuthService) Logout() (string, error) {
	if err := s.sessions.Clear(); err != nil {
		return "", err
	}
	return LoginRoute, nil
}

// serverMessage prefers the server-provided error text over the fallback.
func serverMessage(err error, fallback string) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
