package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/userdesk-api/internal/application/dto"
	"github.com/jhoicas/userdesk-api/internal/domain"
	"github.com/jhoicas/userdesk-api/internal/domain/entity"
	"github.com/jhoicas/userdesk-api/internal/domain/repository"
	"github.com/jhoicas/userdesk-api/pkg/logger"
)

// UserStore caso de uso de la colección de usuarios: CRUD, unicidad de email,
// actividad y estadísticas. Mantiene la colección en memoria y la sincroniza
// completa al almacén en cada mutación. El mutex existe porque los handlers
// HTTP corren concurrentes; cada operación es atómica respecto del resto.
type UserStore struct {
	mu         sync.RWMutex
	users      []entity.User
	repo       repository.UserRepository
	activities repository.ActivityRepository
	stats      repository.StatsRepository
	log        *logger.Logger
}

// NewUserStore carga la colección persistida. Si no existe (primer arranque o
// contenido corrupto descartado), siembra los registros demo y los persiste.
func NewUserStore(
	repo repository.UserRepository,
	activities repository.ActivityRepository,
	stats repository.StatsRepository,
	log *logger.Logger,
) (*UserStore, error) {
	s := &UserStore{repo: repo, activities: activities, stats: stats, log: log}

	users, found, err := repo.LoadAll()
	if err != nil {
		return nil, err
	}
	if found {
		s.users = users
		return s, nil
	}

	s.users = seedUsers(time.Now())
	if err := repo.SaveAll(s.users); err != nil {
		return nil, err
	}
	log.Info().Int("count", len(s.users)).Msg("colección de usuarios sembrada")
	return s, nil
}

// seedUsers registros demo del primer arranque, con altas retro-fechadas
// (30 y 15 días) para que el dashboard tenga historia.
func seedUsers(now time.Time) []entity.User {
	a := now.AddDate(0, 0, -30)
	b := now.AddDate(0, 0, -15)
	return []entity.User{
		{
			ID:       "1",
			FullName: "associate user",
			Email:    "associate_user@example.com",
			Phone:    "+971 9999999999",
			Addresses: []entity.Address{
				{ID: "1", Street: "VILLA NO 1 DUBAI", City: "dUBAI", State: "DUBAI", ZipCode: "000001"},
			},
			Role:      entity.RoleAssociate,
			CreatedAt: a,
			UpdatedAt: a,
		},
		{
			ID:       "2",
			FullName: "supervisor user2",
			Email:    "supervisor_user2@example.com",
			Phone:    "+971 9999999998",
			Addresses: []entity.Address{
				{ID: "2", Street: "VILLA NO 2 DUBAI", City: "dUBAI", State: "DUBAI", ZipCode: "000001"},
			},
			Role:      entity.RoleSupervisor,
			CreatedAt: b,
			UpdatedAt: b,
		},
	}
}

// Add crea un usuario a partir del formulario: asigna id nuevo, rol por defecto
// associate, createdAt = updatedAt = ahora e ids a cada dirección; persiste,
// registra actividad y recalcula estadísticas.
func (s *UserStore) Add(form dto.UserFormData) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	role := form.Role
	if role == "" {
		role = entity.RoleAssociate
	}
	user := entity.User{
		ID:        newID(now),
		FullName:  form.FullName,
		Email:     form.Email,
		Phone:     form.Phone,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
		Addresses: make([]entity.Address, len(form.Addresses)),
	}
	for i, addr := range form.Addresses {
		user.Addresses[i] = entity.Address{
			ID:      addressID(now, i),
			Street:  addr.Street,
			City:    addr.City,
			State:   addr.State,
			ZipCode: addr.ZipCode,
		}
	}

	s.users = append(s.users, user)
	if err := s.repo.SaveAll(s.users); err != nil {
		return entity.User{}, err
	}

	s.recordActivity(entity.ActivityUserCreated, "New user created",
		fmt.Sprintf("User %s was added to the system", user.FullName), user.ID, user.FullName)
	s.recomputeStatsLocked()
	return user, nil
}

// Update fusiona el formulario sobre el registro con ese id. Si el id no
// existe la operación es un no-op silencioso (found=false, sin error): el
// contrato del almacén no reporta not-found en mutaciones. Las direcciones que
// ya tenían id lo conservan; solo las nuevas reciben uno.
func (s *UserStore) Update(id string, form dto.UserFormData) (entity.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.users {
		if s.users[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entity.User{}, false, nil
	}

	now := time.Now()
	u := &s.users[idx]
	u.FullName = form.FullName
	u.Email = form.Email
	u.Phone = form.Phone
	if form.Role != "" {
		u.Role = form.Role
	}
	u.UpdatedAt = now
	u.Addresses = make([]entity.Address, len(form.Addresses))
	for i, addr := range form.Addresses {
		addrID := addr.ID
		if addrID == "" {
			addrID = addressID(now, i)
		}
		u.Addresses[i] = entity.Address{
			ID:      addrID,
			Street:  addr.Street,
			City:    addr.City,
			State:   addr.State,
			ZipCode: addr.ZipCode,
		}
	}

	if err := s.repo.SaveAll(s.users); err != nil {
		return entity.User{}, false, err
	}

	s.recordActivity(entity.ActivityUserUpdated, "User profile updated",
		fmt.Sprintf("Profile for %s was modified", u.FullName), u.ID, u.FullName)
	s.recomputeStatsLocked()
	return *u, true, nil
}

// Delete elimina el registro si existe (borrado duro, sin tombstone). La
// colección se persiste aunque no hubiera víctima; la actividad solo se
// registra cuando sí la hubo.
func (s *UserStore) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var victim *entity.User
	kept := s.users[:0]
	for i := range s.users {
		if s.users[i].ID == id {
			v := s.users[i]
			victim = &v
			continue
		}
		kept = append(kept, s.users[i])
	}
	s.users = kept

	if err := s.repo.SaveAll(s.users); err != nil {
		return false, err
	}
	if victim == nil {
		return false, nil
	}

	s.recordActivity(entity.ActivityUserDeleted, "User deleted",
		fmt.Sprintf("User %s was removed from the system", victim.FullName), victim.ID, victim.FullName)
	s.recomputeStatsLocked()
	return true, nil
}

// FindByID devuelve el usuario con ese id, o domain.ErrUserNotFound.
func (s *UserStore) FindByID(id string) (entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			return s.users[i], nil
		}
	}
	return entity.User{}, domain.ErrUserNotFound
}

// List devuelve una copia de la colección en orden de inserción.
func (s *UserStore) List() []entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.User, len(s.users))
	copy(out, s.users)
	return out
}

// EmailExists comprueba unicidad case-insensitive. excludeID permite que al
// editar un usuario su propio email sin cambios no cuente como conflicto.
func (s *UserStore) EmailExists(email, excludeID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	needle := strings.ToLower(email)
	for i := range s.users {
		if s.users[i].ID == excludeID {
			continue
		}
		if strings.ToLower(s.users[i].Email) == needle {
			return true
		}
	}
	return false
}

// Stats recalcula SystemStats desde la colección actual (nunca desde el caché).
func (s *UserStore) Stats() entity.SystemStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.computeStats()
}

// RecomputeStats recalcula y persiste el caché de estadísticas.
func (s *UserStore) RecomputeStats() entity.SystemStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recomputeStatsLocked()
}

func (s *UserStore) computeStats() entity.SystemStats {
	now := time.Now()
	stats := entity.SystemStats{
		TotalUsers:   len(s.users),
		SystemStatus: "Healthy",
	}
	for i := range s.users {
		if s.users[i].Active() {
			stats.ActiveUsers++
		}
		if s.users[i].CreatedAt.Month() == now.Month() && s.users[i].CreatedAt.Year() == now.Year() {
			stats.NewUsersThisMonth++
		}
	}
	return stats
}

// recomputeStatsLocked persiste el caché; un fallo de escritura se registra y
// no interrumpe la mutación que lo originó (es solo un caché).
func (s *UserStore) recomputeStatsLocked() entity.SystemStats {
	stats := s.computeStats()
	if err := s.stats.Save(stats); err != nil {
		s.log.Warn().Err(err).Msg("no se pudo persistir el caché de estadísticas")
	}
	return stats
}

// recordActivity registra la entrada de auditoría; un fallo de escritura no
// interrumpe la mutación (el log es diagnóstico, no estado autoritativo).
func (s *UserStore) recordActivity(typ, title, description, userID, userName string) {
	a := entity.Activity{
		ID:          uuid.NewString(),
		Type:        typ,
		Title:       title,
		Description: description,
		Timestamp:   time.Now().UnixMilli(),
		UserID:      userID,
		UserName:    userName,
	}
	if err := s.activities.Push(a); err != nil {
		s.log.Warn().Err(err).Str("type", typ).Msg("no se pudo registrar la actividad")
	}
}

// newID id de usuario: nanosegundos del reloj, suficientemente monótono para
// el proceso.
func newID(now time.Time) string {
	return strconv.FormatInt(now.UnixNano(), 10)
}

// addressID id de dirección: instante más posición en la secuencia.
func addressID(now time.Time, index int) string {
	return fmt.Sprintf("%d-%d", now.UnixNano(), index)
}
