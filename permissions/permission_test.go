package permissions_test

import (
	"testing"

	"hotelos/permissions"
	"hotelos/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_LoadsEmbeddedTable(t *testing.T) {
	data := permissions.Get()

	require.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestPermissionData_FindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name     string
		path     string
		method   string
		wantSkip bool
		wantRole string
	}{
		{name: "public offer listing", path: "/v1/hotels/offers", method: "GET", wantSkip: true},
		{name: "room price is public", path: "/v1/rooms/{id}/price", method: "GET", wantSkip: true},
		{name: "delete needs admin", path: "/v1/reservations/{id}", method: "DELETE", wantRole: constant.RoleAdmin},
		{name: "guests may cancel", path: "/v1/reservations/{id}/cancel", method: "POST", wantRole: constant.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, permission.Skip)

			if tt.wantRole != "" {
				assert.Contains(t, permission.Permissions, tt.wantRole)
			}
		})
	}

	assert.Equal(t, permissions.Permission{}, data.FindPermissions("/v1/unknown", "GET"))
}

func TestPermissionData_FindPermissions_NormalizesRoute(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	create := data.FindPermissions("/v1/reservations/", "POST")
	require.NotEmpty(t, create.Permissions)

	assert.Equal(t, create, data.FindPermissions("/v1/reservations", "post"))
}

func TestPermission_Allows(t *testing.T) {
	staffOnly := permissions.Permission{Permissions: []string{constant.RoleStaff, constant.RoleAdmin}}

	assert.True(t, staffOnly.Allows(constant.RoleStaff))
	assert.False(t, staffOnly.Allows(constant.RoleSuperAdmin))
	assert.False(t, staffOnly.Allows(constant.RoleUser))
	assert.False(t, staffOnly.Allows(""))
	assert.True(t, permissions.Permission{}.Allows("user"))
}
