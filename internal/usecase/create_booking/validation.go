package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
)

// validateData валидирует собранную запись бронирования
func validateData(data *domain.BookingData) error {
	if data == nil {
		return fmt.Errorf("%w: booking data is required", ErrInvalidInput)
	}

	if strings.TrimSpace(data.FacilityID) == "" {
		return fmt.Errorf("%w: facilityId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(data.ClientID) == "" {
		return fmt.Errorf("%w: clientId is required", ErrInvalidInput)
	}

	if len(data.PetID) == 0 {
		return fmt.Errorf("%w: at least one pet is required", ErrInvalidInput)
	}
	for _, id := range data.PetID {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("%w: pet id must not be empty", ErrInvalidInput)
		}
	}

	if !data.Service.IsValid() {
		return fmt.Errorf("%w: unknown service %q", ErrInvalidInput, data.Service)
	}

	if data.Status != domain.StatusPending {
		return fmt.Errorf("%w: new booking must be pending, got %q", ErrInvalidInput, data.Status)
	}

	if data.BasePrice < 0 || data.Discount < 0 || data.TotalCost < 0 {
		return fmt.Errorf("%w: prices must not be negative", ErrInvalidInput)
	}

	if utf8.RuneCountInString(data.SpecialInstructions) > domain.MaxSpecialInstructionLength {
		return fmt.Errorf("%w: specialInstructions must be at most %d characters", ErrInvalidInput, domain.MaxSpecialInstructionLength)
	}

	for _, extra := range data.ExtraServices {
		if extra.Quantity < 1 || extra.Quantity > domain.MaxExtraServiceQuantity {
			return fmt.Errorf("%w: extra service %s quantity must be between 1 and %d",
				ErrInvalidInput, extra.ServiceID, domain.MaxExtraServiceQuantity)
		}
	}

	return nil
}

// validateDates проверяет даты бронирования относительно текущего дня
func validateDates(data *domain.BookingData, now time.Time) error {
	if data.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidDate)
	}

	if data.EndDate.IsZero() {
		return fmt.Errorf("%w: endDate is required", ErrInvalidDate)
	}

	if data.EndDate.Before(data.StartDate) {
		return fmt.Errorf("%w: endDate %s is before startDate %s",
			ErrInvalidDate, domain.FormatDate(data.EndDate), domain.FormatDate(data.StartDate))
	}

	if isDateInPast(data.StartDate, now) {
		return fmt.Errorf("%w: startDate %s is in the past", ErrInvalidDate, domain.FormatDate(data.StartDate))
	}

	return nil
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	return domain.DateOnly(date).Before(domain.DateOnly(now))
}
