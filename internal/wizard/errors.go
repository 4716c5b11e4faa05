package wizard

import "errors"

var (
	// ErrMissingClientOrPet бронирование собирается без клиента или питомца
	ErrMissingClientOrPet = errors.New("wizard: client and at least one pet are required")

	// ErrNotAtConfirmation подтверждение запрошено до шага подтверждения
	ErrNotAtConfirmation = errors.New("wizard: session is not at the confirmation step")

	// ErrSessionClosed изменение закрытой сессии
	ErrSessionClosed = errors.New("wizard: session is closed")

	// ErrCreateBooking создание бронирования отклонило запись
	ErrCreateBooking = errors.New("wizard: booking creation failed")
)
