package sessions

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("sessions: session not found")

	// ErrFacilityNotFound возвращается, когда справочник клиентов не знает площадку
	ErrFacilityNotFound = errors.New("sessions: facility not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("sessions: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("sessions: internal error")
)
