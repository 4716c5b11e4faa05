package modules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
	"github.com/m04kA/SMC-PetCareBooking/internal/service/modules/models"
)

// validateUpdate валидирует запрос на обновление
func validateUpdate(req *models.UpdateModulesRequest) error {
	if strings.TrimSpace(req.FacilityID) == "" {
		return fmt.Errorf("%w: facilityId is required", ErrInvalidInput)
	}

	if len(req.Modules) == 0 {
		return fmt.Errorf("%w: at least one module is required", ErrInvalidInput)
	}

	seen := make(map[domain.ServiceID]struct{}, len(req.Modules))
	for _, m := range req.Modules {
		if !m.Service.IsValid() {
			return fmt.Errorf("%w: %q", ErrUnknownService, m.Service)
		}
		if _, dup := seen[m.Service]; dup {
			return fmt.Errorf("%w: service %s listed twice", ErrInvalidInput, m.Service)
		}
		seen[m.Service] = struct{}{}

		if m.Reason != nil && utf8.RuneCountInString(*m.Reason) > domain.MaxDisabledReasonLength {
			return fmt.Errorf("%w: max %d characters", ErrReasonTooLong, domain.MaxDisabledReasonLength)
		}
	}

	return nil
}
