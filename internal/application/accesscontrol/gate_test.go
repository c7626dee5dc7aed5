package accesscontrol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/userdesk-api/internal/application/accesscontrol"
	"github.com/jhoicas/userdesk-api/internal/domain/entity"
)

func userWithRole(role string) *entity.User {
	return &entity.User{ID: "u1", FullName: "Test", Email: "t@example.com", Role: role}
}

// ─────────────────────────────────────────────────────────────────────────────
// Orden de evaluación
// ─────────────────────────────────────────────────────────────────────────────

// Mientras la restauración no termine, el estado transitorio gana sobre todo
// lo demás, incluso sin identidad.
func TestDecide_RestauracionPendienteGanaSiempre(t *testing.T) {
	req := accesscontrol.Requirement{Role: entity.RoleAdmin}

	assert.Equal(t, accesscontrol.DecisionChecking, accesscontrol.Decide(false, nil, req))
	assert.Equal(t, accesscontrol.DecisionChecking, accesscontrol.Decide(false, userWithRole(entity.RoleAdmin), req))
}

func TestDecide_SinIdentidadRedirigeALogin(t *testing.T) {
	assert.Equal(t, accesscontrol.DecisionLogin, accesscontrol.Decide(true, nil, accesscontrol.Requirement{}))
	assert.Equal(t, accesscontrol.DecisionLogin, accesscontrol.Decide(true, nil, accesscontrol.Requirement{Role: entity.RoleAssociate}))
}

func TestDecide_SinRequisitosPermite(t *testing.T) {
	got := accesscontrol.Decide(true, userWithRole(entity.RoleAssociate), accesscontrol.Requirement{})
	assert.Equal(t, accesscontrol.DecisionAllow, got)
}

// ─────────────────────────────────────────────────────────────────────────────
// Requisito de rol: igualdad exacta más la tabla de excepciones
// ─────────────────────────────────────────────────────────────────────────────

func TestDecide_RequisitoDeRol(t *testing.T) {
	cases := []struct {
		name     string
		identity string
		required string
		want     accesscontrol.Decision
	}{
		{"rol exacto permite", entity.RoleSupervisor, entity.RoleSupervisor, accesscontrol.DecisionAllow},
		{"admin accede a ruta de supervisor", entity.RoleAdmin, entity.RoleSupervisor, accesscontrol.DecisionAllow},
		{"admin accede a ruta de associate", entity.RoleAdmin, entity.RoleAssociate, accesscontrol.DecisionAllow},
		{"supervisor hereda rutas de associate", entity.RoleSupervisor, entity.RoleAssociate, accesscontrol.DecisionAllow},
		{"supervisor no accede a ruta de admin", entity.RoleSupervisor, entity.RoleAdmin, accesscontrol.DecisionForbidden},
		{"associate no accede a ruta de supervisor", entity.RoleAssociate, entity.RoleSupervisor, accesscontrol.DecisionForbidden},
		{"associate no accede a ruta de admin", entity.RoleAssociate, entity.RoleAdmin, accesscontrol.DecisionForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := accesscontrol.Decide(true, userWithRole(tc.identity), accesscontrol.Requirement{Role: tc.required})
			assert.Equal(t, tc.want, got)
		})
	}
}

// La relación supervisor→associate no es simétrica ni transitiva hacia arriba.
func TestDecide_HerenciaDeRolesNoEsSimetrica(t *testing.T) {
	down := accesscontrol.Decide(true, userWithRole(entity.RoleSupervisor),
		accesscontrol.Requirement{Role: entity.RoleAssociate})
	up := accesscontrol.Decide(true, userWithRole(entity.RoleAssociate),
		accesscontrol.Requirement{Role: entity.RoleSupervisor})

	assert.Equal(t, accesscontrol.DecisionAllow, down)
	assert.Equal(t, accesscontrol.DecisionForbidden, up)
}

// ─────────────────────────────────────────────────────────────────────────────
// Requisito de permiso
// ─────────────────────────────────────────────────────────────────────────────

func TestDecide_RequisitoDePermiso(t *testing.T) {
	cases := []struct {
		identity   string
		permission string
		want       accesscontrol.Decision
	}{
		{entity.RoleAdmin, accesscontrol.PermCanAdd, accesscontrol.DecisionAllow},
		{entity.RoleAdmin, accesscontrol.PermCanEdit, accesscontrol.DecisionAllow},
		{entity.RoleAdmin, accesscontrol.PermCanView, accesscontrol.DecisionAllow},
		{entity.RoleSupervisor, accesscontrol.PermCanAdd, accesscontrol.DecisionForbidden},
		{entity.RoleSupervisor, accesscontrol.PermCanEdit, accesscontrol.DecisionAllow},
		{entity.RoleSupervisor, accesscontrol.PermCanView, accesscontrol.DecisionAllow},
		{entity.RoleAssociate, accesscontrol.PermCanAdd, accesscontrol.DecisionForbidden},
		{entity.RoleAssociate, accesscontrol.PermCanEdit, accesscontrol.DecisionForbidden},
		{entity.RoleAssociate, accesscontrol.PermCanView, accesscontrol.DecisionAllow},
	}
	for _, tc := range cases {
		got := accesscontrol.Decide(true, userWithRole(tc.identity), accesscontrol.Requirement{Permission: tc.permission})
		assert.Equal(t, tc.want, got, "%s + %s", tc.identity, tc.permission)
	}
}

func TestDecide_PermisoDesconocidoDeniega(t *testing.T) {
	got := accesscontrol.Decide(true, userWithRole(entity.RoleAdmin), accesscontrol.Requirement{Permission: "canDeleteEverything"})
	assert.Equal(t, accesscontrol.DecisionForbidden, got)
}
