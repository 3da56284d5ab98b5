package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"navkar-inquiry/internal/core/domain"
)

var (
	loggedOut = domain.Session{}
	customer  = domain.Session{Token: "t1", Role: domain.GrantedRoleUser, DisplayName: "john"}
	admin     = domain.Session{Token: "t2", Role: domain.GrantedRoleAdmin, DisplayName: "boss"}
)

func TestPublicRoutesAlwaysRender(t *testing.T) {
	for _, path := range []string{"/login", "/register"} {
		assert.Equal(t, path, Resolve(path, loggedOut))
		assert.Equal(t, path, Resolve(path, customer))
		assert.Equal(t, path, Resolve(path, admin))
	}
}

func TestAuthenticatedRoutesRedirectWithoutToken(t *testing.T) {
	paths := []string{"/", "/inquiries", "/add-inquiry", "/update-inquiry/7"}

	for _, path := range paths {
		assert.Equal(t, LoginRoute, Resolve(path, loggedOut), "path %s", path)
		assert.Equal(t, path, Resolve(path, customer), "path %s", path)
	}
}

func TestAdminRouteRequiresAdminRole(t *testing.T) {
	// failing the admin check looks identical to being unauthenticated
	assert.Equal(t, LoginRoute, Resolve("/admin", loggedOut))
	assert.Equal(t, LoginRoute, Resolve("/admin", customer))
	assert.Equal(t, "/admin", Resolve("/admin", admin))
}

func TestAdminRouteAcceptsShortRoleForm(t *testing.T) {
	sess := domain.Session{Token: "t3", Role: domain.RoleAdmin}
	assert.Equal(t, "/admin", Resolve("/admin", sess))
}

func TestUnknownPathsRedirectUnconditionally(t *testing.T) {
	for _, path := range []string{"/nope", "/admin/extra", "/update-inquiry"} {
		assert.Equal(t, LoginRoute, Resolve(path, admin), "path %s", path)
		assert.Equal(t, LoginRoute, Resolve(path, loggedOut), "path %s", path)
	}
}
