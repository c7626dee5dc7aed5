package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/userdesk-api/internal/domain/entity"
)

// La tabla rol → permisos es total sobre el conjunto cerrado de roles y sus
// valores son exactamente los documentados.
func TestPermissionsFor_TablaCompleta(t *testing.T) {
	cases := []struct {
		role string
		want entity.Permission
	}{
		{entity.RoleAdmin, entity.Permission{CanAdd: true, CanEdit: true, CanView: true}},
		{entity.RoleSupervisor, entity.Permission{CanAdd: false, CanEdit: true, CanView: true}},
		{entity.RoleAssociate, entity.Permission{CanAdd: false, CanEdit: false, CanView: true}},
	}
	for _, tc := range cases {
		got := entity.PermissionsFor(tc.role)
		assert.Equal(t, tc.want, got, "permisos de %s", tc.role)
	}
}

func TestPermissionsFor_RolDesconocidoPaniquea(t *testing.T) {
	require.Panics(t, func() {
		entity.PermissionsFor("superuser")
	}, "un rol fuera del conjunto cerrado debe fallar ruidosamente")
}

func TestValidRole(t *testing.T) {
	assert.True(t, entity.ValidRole(entity.RoleAdmin))
	assert.True(t, entity.ValidRole(entity.RoleSupervisor))
	assert.True(t, entity.ValidRole(entity.RoleAssociate))
	assert.False(t, entity.ValidRole(""))
	assert.False(t, entity.ValidRole("superuser"))
}

func TestUser_Active(t *testing.T) {
	f := false
	tr := true

	assert.True(t, entity.User{}.Active(), "isActive ausente cuenta como activo")
	assert.True(t, entity.User{IsActive: &tr}.Active())
	assert.False(t, entity.User{IsActive: &f}.Active(), "solo false explícito desactiva")
}
