package usecase

import (
	"github.com/jhoicas/userdesk-api/internal/application/dto"
	"github.com/jhoicas/userdesk-api/internal/domain/entity"
	"github.com/jhoicas/userdesk-api/internal/domain/repository"
)

// DashboardUseCase arma el resumen del dashboard: estadísticas recalculadas en
// vivo desde la colección más las actividades recientes persistidas.
type DashboardUseCase struct {
	store      *UserStore
	activities repository.ActivityRepository
}

// NewDashboardUseCase construye el caso de uso del dashboard.
func NewDashboardUseCase(store *UserStore, activities repository.ActivityRepository) *DashboardUseCase {
	return &DashboardUseCase{store: store, activities: activities}
}

// GetSummary devuelve estadísticas y actividad reciente. Las estadísticas se
// recalculan (y se refresca el caché persistido); el caché nunca es la fuente.
func (uc *DashboardUseCase) GetSummary() (dto.DashboardResponse, error) {
	recent, err := uc.activities.Recent()
	if err != nil {
		return dto.DashboardResponse{}, err
	}
	if recent == nil {
		recent = []entity.Activity{} // clave ausente: lista vacía, no null
	}
	return dto.DashboardResponse{
		Stats:            uc.store.RecomputeStats(),
		RecentActivities: recent,
	}, nil
}
