// Package guard decides, per route, whether the current session permits
// rendering a view. It is advisory only: the backend independently
// enforces authorization on every call.
package guard

import (
	"strings"

	"navkar-inquiry/internal/core/domain"
)

// LoginRoute is where every denied or unknown navigation lands.
const LoginRoute = "/login"

// Access level required to render a route
type Access int

const (
	// Public routes render for everyone.
	Public Access = iota
	// Authenticated routes require a stored token.
	Authenticated
	// AdminOnly routes additionally require the admin role.
	AdminOnly
	// Unknown paths redirect to the login entry point.
	Unknown
)

// RouteAccess returns the access level of a path.
func RouteAccess(path string) Access {
	switch path {
	case "/login", "/register":
		return Public
	case "/", "/inquiries", "/add-inquiry":
		return Authenticated
	case "/admin":
		return AdminOnly
	}
	if strings.HasPrefix(path, "/update-inquiry/") {
		return Authenticated
	}
	return Unknown
}

// Allowed reports whether the session may render the path.
func Allowed(path string, s domain.Session) bool {
	switch RouteAccess(path) {
	case Public:
		return true
	case Authenticated:
		return s.Authenticated()
	case AdminOnly:
		// A failed admin check looks identical to being unauthenticated.
		return s.Authenticated() && s.Role.IsAdmin()
	default:
		return false
	}
}

// Resolve returns the route to render for a requested path: the path
// itself when permitted, the login entry point otherwise.
func Resolve(path string, s domain.Session) string {
	if Allowed(path, s) {
		return path
	}
	return LoginRoute
}
