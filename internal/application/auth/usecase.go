// Package auth gestiona la sesión actual: restauración al arranque, login
// contra las cuentas demo y logout.
package auth

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/userdesk-api/internal/domain"
	"github.com/jhoicas/userdesk-api/internal/domain/entity"
	"github.com/jhoicas/userdesk-api/internal/domain/repository"
	"github.com/jhoicas/userdesk-api/pkg/logger"
)

// demoAccounts cuentas fijas de demostración, indexadas por username.
// La contraseña no se verifica: es el contrato demo del producto. Un sistema
// real sustituiría esta tabla por un verificador de credenciales detrás de la
// misma firma de Login.
func demoAccounts() map[string]entity.User {
	now := time.Now()
	return map[string]entity.User{
		"admin": {
			ID:       "1",
			FullName: "Admin User",
			Email:    "admin@example.com",
			Phone:    "+971 9999999999",
			Addresses: []entity.Address{
				{ID: "1", Street: "VILLA NO 1 DUBAI", City: "dUBAI", State: "DUBAI", ZipCode: "000001"},
			},
			Role:      entity.RoleAdmin,
			CreatedAt: now,
			UpdatedAt: now,
		},
		"supervisor": {
			ID:       "2",
			FullName: "Supervisor User",
			Email:    "supervisor@example.com",
			Phone:    "+971 9999999999",
			Addresses: []entity.Address{
				{ID: "2", Street: "VILLA NO 2 DUBAI", City: "dUBAI", State: "DUBAI", ZipCode: "000001"},
			},
			Role:      entity.RoleSupervisor,
			CreatedAt: now,
			UpdatedAt: now,
		},
		"associate": {
			ID:       "3",
			FullName: "Associate User",
			Email:    "associate@example.com",
			Phone:    "+971 9999999999",
			Addresses: []entity.Address{
				{ID: "3", Street: "VILLA NO 3 DUBAI", City: "dUBAI", State: "DUBAI", ZipCode: "000001"},
			},
			Role:      entity.RoleAssociate,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// SessionManager sostiene la identidad autenticada actual (a lo sumo una).
// Se construye al arranque de la aplicación; nada de singletons implícitos.
type SessionManager struct {
	mu         sync.RWMutex
	current    *entity.User
	ready      bool
	accounts   map[string]entity.User
	repo       repository.SessionRepository
	activities repository.ActivityRepository
	log        *logger.Logger
}

// NewSessionManager construye el gestor de sesión. Llamar Restore antes de
// atender tráfico.
func NewSessionManager(repo repository.SessionRepository, activities repository.ActivityRepository, log *logger.Logger) *SessionManager {
	return &SessionManager{
		accounts:   demoAccounts(),
		repo:       repo,
		activities: activities,
		log:        log,
	}
}

// Restore hidrata la identidad desde el almacén. Solo se acepta si trae todos
// los campos de identidad y su id corresponde a una cuenta demo conocida; en
// ese caso se re-fusiona el registro canónico con los overrides persistidos y
// se re-persiste el resultado. Cualquier otra cosa se descarta. Marca el
// gestor como listo haya o no sesión.
func (m *SessionManager) Restore() {
	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() { m.ready = true }()

	stored, found, err := m.repo.Load()
	if err != nil {
		m.log.Warn().Err(err).Msg("no se pudo leer la sesión persistida")
		return
	}
	if !found {
		m.log.Debug().Msg("sin sesión persistida")
		return
	}

	if stored.ID == "" || stored.FullName == "" || stored.Email == "" ||
		stored.Role == "" || stored.Addresses == nil {
		m.log.Warn().Str("id", stored.ID).Msg("sesión persistida incompleta, se descarta")
		m.discard()
		return
	}
	// El rol restaurado entra directo a la tabla de permisos: fuera del
	// conjunto cerrado se descarta como cualquier otra corrupción.
	if !entity.ValidRole(stored.Role) {
		m.log.Warn().Str("id", stored.ID).Str("role", stored.Role).Msg("sesión persistida con rol desconocido, se descarta")
		m.discard()
		return
	}

	canonical, ok := m.accountByID(stored.ID)
	if !ok {
		m.log.Warn().Str("id", stored.ID).Msg("sesión persistida no corresponde a ninguna cuenta conocida")
		m.discard()
		return
	}

	// Overrides persistidos sobre el registro canónico, campo a campo.
	merged := canonical
	merged.FullName = stored.FullName
	merged.Email = stored.Email
	merged.Role = stored.Role
	if stored.Phone != "" {
		merged.Phone = stored.Phone
	}
	if len(stored.Addresses) > 0 {
		merged.Addresses = stored.Addresses
	}
	if !stored.CreatedAt.IsZero() {
		merged.CreatedAt = stored.CreatedAt
	}
	if !stored.UpdatedAt.IsZero() {
		merged.UpdatedAt = stored.UpdatedAt
	}
	if stored.IsActive != nil {
		merged.IsActive = stored.IsActive
	}

	if err := m.repo.Save(merged); err != nil {
		m.log.Warn().Err(err).Msg("no se pudo re-persistir la sesión restaurada")
	}
	m.current = &merged
	m.log.Info().Str("user", merged.FullName).Msg("sesión restaurada")
}

// Login autentica contra las cuentas demo. Devuelve domain.ErrUnauthorized si
// el username no existe; la contraseña se acepta sin verificar. En éxito fija
// la identidad, la persiste y registra la actividad de inicio de sesión.
func (m *SessionManager) Login(username, _ string) (entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[username]
	if !ok {
		m.log.Info().Str("username", username).Msg("login fallido: cuenta desconocida")
		return entity.User{}, domain.ErrUnauthorized
	}

	m.current = &account
	if err := m.repo.Save(account); err != nil {
		m.log.Warn().Err(err).Msg("no se pudo persistir la sesión")
	}

	a := entity.Activity{
		ID:          uuid.NewString(),
		Type:        entity.ActivityUserLoggedIn,
		Title:       "User logged in",
		Description: fmt.Sprintf("%s logged into the system", account.FullName),
		Timestamp:   time.Now().UnixMilli(),
		UserID:      account.ID,
		UserName:    account.FullName,
	}
	if err := m.activities.Push(a); err != nil {
		m.log.Warn().Err(err).Msg("no se pudo registrar la actividad de login")
	}

	m.log.Info().Str("user", account.FullName).Str("role", account.Role).Msg("login correcto")
	return account, nil
}

// Logout limpia la identidad y su forma persistida.
func (m *SessionManager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
	if err := m.repo.Clear(); err != nil {
		m.log.Warn().Err(err).Msg("no se pudo limpiar la sesión persistida")
	}
}

// Current devuelve la identidad actual, o nil si no hay sesión.
func (m *SessionManager) Current() *entity.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return nil
	}
	u := *m.current
	return &u
}

// Ready reporta si la restauración inicial ya terminó.
func (m *SessionManager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ready
}

// Resolve devuelve el usuario para un id de identidad (de un token), o nil si
// el id no corresponde a ningún usuario válido. La sesión en curso tiene
// prioridad porque puede llevar overrides sobre el registro canónico.
func (m *SessionManager) Resolve(id string) *entity.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current != nil && m.current.ID == id {
		u := *m.current
		return &u
	}
	if account, ok := m.accountByID(id); ok {
		return &account
	}
	return nil
}

func (m *SessionManager) accountByID(id string) (entity.User, bool) {
	for _, account := range m.accounts {
		if account.ID == id {
			return account, true
		}
	}
	return entity.User{}, false
}

// discard elimina la identidad persistida inválida.
func (m *SessionManager) discard() {
	if err := m.repo.Clear(); err != nil {
		m.log.Warn().Err(err).Msg("no se pudo descartar la sesión persistida")
	}
}
