package modules

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("modules: invalid input data")

	// ErrUnknownService возвращается для неизвестной услуги
	ErrUnknownService = errors.New("modules: unknown service")

	// ErrReasonTooLong возвращается, когда причина отключения слишком длинная
	ErrReasonTooLong = errors.New("modules: disabled reason is too long")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("modules: internal error")
)
