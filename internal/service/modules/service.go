package modules

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
	"github.com/m04kA/SMC-PetCareBooking/internal/service/modules/models"
)

// Service сервис настроек модулей площадок
// Держит снимок настроек в памяти, чтобы мастер бронирования читал их синхронно
type Service struct {
	repo   ModuleRepository
	logger Logger

	mu       sync.RWMutex
	snapshot map[string]map[domain.ServiceID]domain.ModuleSetting
	loaded   map[string]bool
}

// NewService создает новый экземпляр сервиса модулей
func NewService(repo ModuleRepository, logger Logger) *Service {
	return &Service{
		repo:     repo,
		logger:   logger,
		snapshot: make(map[string]map[domain.ServiceID]domain.ModuleSetting),
		loaded:   make(map[string]bool),
	}
}

// Seed заполняет снимок значениями из конфигурации
// Значения из БД, загруженные позже, имеют приоритет
func (s *Service) Seed(settings []domain.ModuleSetting) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, setting := range settings {
		if !setting.Service.IsValid() {
			s.logger.Warn("Seed: skipping unknown service %q for facility=%s", setting.Service, setting.FacilityID)
			continue
		}
		s.facilityLocked(setting.FacilityID)[setting.Service] = setting
	}
}

// Load перечитывает настройки площадки из БД в снимок
func (s *Service) Load(ctx context.Context, facilityID string) error {
	s.logger.Info("Load: loading module settings for facility=%s", facilityID)

	settings, err := s.repo.ListByFacility(ctx, facilityID)
	if err != nil {
		s.logger.Error("Load: repository error for facility=%s: %v", facilityID, err)
		return fmt.Errorf("%w: Load - repository error: %v", ErrInternal, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	facility := s.facilityLocked(facilityID)
	for _, setting := range settings {
		facility[setting.Service] = *setting
	}
	s.loaded[facilityID] = true

	s.logger.Info("Load: loaded %d module settings for facility=%s", len(settings), facilityID)
	return nil
}

// EnsureLoaded загружает настройки площадки из БД, если они еще не загружены
func (s *Service) EnsureLoaded(ctx context.Context, facilityID string) error {
	if s.isLoaded(facilityID) {
		return nil
	}
	return s.Load(ctx, facilityID)
}

// Get возвращает настройки всех услуг площадки
func (s *Service) Get(ctx context.Context, facilityID string) (*models.ModulesResponse, error) {
	facilityID = strings.TrimSpace(facilityID)
	if facilityID == "" {
		return nil, fmt.Errorf("%w: facilityId is required", ErrInvalidInput)
	}

	if err := s.EnsureLoaded(ctx, facilityID); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.FromSettings(facilityID, s.snapshot[facilityID]), nil
}

// Update сохраняет изменения и обновляет снимок
func (s *Service) Update(ctx context.Context, req *models.UpdateModulesRequest) (*models.ModulesResponse, error) {
	s.logger.Info("Update: updating %d modules for facility=%s", len(req.Modules), req.FacilityID)

	if err := validateUpdate(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	for _, change := range req.Modules {
		setting := s.current(req.FacilityID, change.Service)
		change.ApplyToSetting(&setting)

		saved, err := s.repo.Upsert(ctx, &setting)
		if err != nil {
			s.logger.Error("Update: failed to save service=%s for facility=%s: %v", change.Service, req.FacilityID, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		s.mu.Lock()
		s.facilityLocked(req.FacilityID)[saved.Service] = *saved
		s.mu.Unlock()

		s.logger.Info("Update: service=%s disabled=%t at facility=%s", saved.Service, saved.Disabled, req.FacilityID)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.FromSettings(req.FacilityID, s.snapshot[req.FacilityID]), nil
}

// IsDisabled сообщает, отключена ли услуга на площадке, и причину
func (s *Service) IsDisabled(facilityID string, service domain.ServiceID) (bool, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	setting, ok := s.snapshot[facilityID][service]
	if !ok || !setting.Disabled {
		return false, ""
	}
	return true, setting.Reason
}

func (s *Service) current(facilityID string, service domain.ServiceID) domain.ModuleSetting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if setting, ok := s.snapshot[facilityID][service]; ok {
		return setting
	}
	return domain.ModuleSetting{FacilityID: facilityID, Service: service}
}

func (s *Service) isLoaded(facilityID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded[facilityID]
}

// facilityLocked возвращает настройки площадки, вызывать под s.mu.Lock
func (s *Service) facilityLocked(facilityID string) map[domain.ServiceID]domain.ModuleSetting {
	facility, ok := s.snapshot[facilityID]
	if !ok {
		facility = make(map[domain.ServiceID]domain.ModuleSetting)
		s.snapshot[facilityID] = facility
	}
	return facility
}
