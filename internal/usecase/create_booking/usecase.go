package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
	modulesRepo "github.com/m04kA/SMC-PetCareBooking/internal/infra/storage/modules"
)

// UseCase use case для создания бронирования из записи мастера
type UseCase struct {
	bookingRepo  BookingRepository
	moduleRepo   ModuleRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	moduleRepo ModuleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		moduleRepo:   moduleRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// CreateBooking валидирует и сохраняет бронирование
// Проверка отключенной услуги и запись выполняются в одной сериализуемой транзакции
func (uc *UseCase) CreateBooking(ctx context.Context, data *domain.BookingData) (*domain.Booking, error) {
	if err := validateData(data); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: facility=%s, client=%s, pets=%v, service=%s, start=%s, end=%s",
		data.FacilityID, data.ClientID, data.PetID.IDs(), data.Service,
		domain.FormatDate(data.StartDate), domain.FormatDate(data.EndDate))

	if err := validateDates(data, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Услуга могла быть отключена после открытия сессии
		setting, err := uc.moduleRepo.Get(txCtx, data.FacilityID, data.Service)
		if err != nil && !errors.Is(err, modulesRepo.ErrModuleNotFound) {
			uc.logger.Error("CreateBooking: failed to get module setting: %v", err)
			return fmt.Errorf("%w: failed to get module setting: %v", ErrInternal, err)
		}
		if setting != nil && setting.Disabled {
			uc.logger.Warn("CreateBooking: service=%s disabled at facility=%s: %s",
				data.Service, data.FacilityID, setting.Reason)
			return fmt.Errorf("%w: %s", ErrServiceDisabled, setting.Reason)
		}

		// 2. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{BookingData: *data})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)
	return result, nil
}
