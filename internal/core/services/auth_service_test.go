package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navkar-inquiry/internal/adapters/gateway"
	"navkar-inquiry/internal/core/domain"
)

func TestLoginCustomerEstablishesSessionAndLandsOnInquiries(t *testing.T) {
	gw := &fakeAuthGateway{loginResult: &domain.AuthResult{Token: "tok-1", Role: domain.GrantedRoleUser}}
	store := &fakeSessionStore{}
	toasts := &recordingNotifier{}
	svc := NewAuthService(gw, store, toasts)

	route, err := svc.Login(context.Background(), "john", "secret")

	require.NoError(t, err)
	assert.Equal(t, CustomerLandingRoute, route)
	assert.Equal(t, domain.Session{Token: "tok-1", Role: domain.GrantedRoleUser, DisplayName: "john"}, store.Current())
	assert.Equal(t, []string{"Logged in"}, toasts.successes)
	assert.Empty(t, toasts.errors)
}

func TestLoginAdminLandsOnAdminRoute(t *testing.T) {
	gw := &fakeAuthGateway{loginResult: &domain.AuthResult{Token: "tok-2", Role: domain.GrantedRoleAdmin}}
	store := &fakeSessionStore{}
	svc := NewAuthService(gw, store, &recordingNotifier{})

	route, err := svc.Login(context.Background(), "boss", "secret")

	require.NoError(t, err)
	assert.Equal(t, AdminLandingRoute, route)
	assert.True(t, store.Current().Role.IsAdmin())
}

func TestLoginFailureLeavesStoredSessionUntouched(t *testing.T) {
	existing := domain.Session{Token: "old", Role: domain.GrantedRoleUser, DisplayName: "old-user"}
	gw := &fakeAuthGateway{loginErr: &gateway.APIError{StatusCode: http.StatusUnauthorized, Message: "Invalid credentials"}}
	store := &fakeSessionStore{sess: existing}
	toasts := &recordingNotifier{}
	svc := NewAuthService(gw, store, toasts)

	_, err := svc.Login(context.Background(), "john", "wrong")

	require.Error(t, err)
	assert.Equal(t, existing, store.Current())
	assert.Equal(t, []string{"Invalid credentials"}, toasts.errors)
	assert.Empty(t, toasts.successes)
}

func TestLoginFailureWithoutServerMessageUsesFallback(t *testing.T) {
	gw := &fakeAuthGateway{loginErr: &gateway.APIError{StatusCode: http.StatusBadGateway}}
	toasts := &recordingNotifier{}
	svc := NewAuthService(gw, &fakeSessionStore{}, toasts)

	_, err := svc.Login(context.Background(), "john", "secret")

	require.Error(t, err)
	assert.Equal(t, []string{"Invalid credentials"}, toasts.errors)
}

func TestRegisterRoutesToLoginWithoutSession(t *testing.T) {
	gw := &fakeAuthGateway{}
	store := &fakeSessionStore{}
	toasts := &recordingNotifier{}
	svc := NewAuthService(gw, store, toasts)

	route, err := svc.Register(context.Background(), "jane", "secret", domain.RoleAdmin)

	require.NoError(t, err)
	assert.Equal(t, LoginRoute, route)
	assert.Equal(t, domain.RoleAdmin, gw.lastRole)
	assert.False(t, store.Current().Authenticated(), "registration never logs the user in")
	assert.Equal(t, []string{"Registered. Please login."}, toasts.successes)
}

func TestRegisterFailurePrefersServerMessage(t *testing.T) {
	gw := &fakeAuthGateway{registerErr: &gateway.APIError{StatusCode: http.StatusConflict, Message: "Username already exists"}}
	toasts := &recordingNotifier{}
	svc := NewAuthService(gw, &fakeSessionStore{}, toasts)

	_, err := svc.Register(context.Background(), "jane", "secret", domain.RoleUser)

	require.Error(t, err)
	assert.Equal(t, []string{"Username already exists"}, toasts.errors)
}

func TestRegisterFailureFallbackMessage(t *testing.T) {
	gw := &fakeAuthGateway{registerErr: assert.AnError}
	toasts := &recordingNotifier{}
	svc := NewAuthService(gw, &fakeSessionStore{}, toasts)

	_, err := svc.Register(context.Background(), "jane", "secret", domain.RoleUser)

	require.Error(t, err)
	assert.Equal(t, []string{"Failed to register"}, toasts.errors)
}

func TestLogoutClearsSession(t *testing.T) {
	store := &fakeSessionStore{sess: domain.Session{Token: "tok", Role: domain.GrantedRoleUser}}
	svc := NewAuthService(&fakeAuthGateway{}, store, &recordingNotifier{})

	route, err := svc.Logout()

	require.NoError(t, err)
	assert.Equal(t, LoginRoute, route)
	assert.True(t, store.cleared)
	assert.False(t, store.Current().Authenticated())
}
