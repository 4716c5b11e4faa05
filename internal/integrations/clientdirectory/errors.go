package clientdirectory

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда площадка неизвестна справочнику клиентов
	ErrFacilityNotFound = errors.New("clientdirectory: facility not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("clientdirectory client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("clientdirectory client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что справочник недоступен и следует использовать переданный ростер
	ErrServiceDegraded = errors.New("clientdirectory unavailable: graceful degradation applied")
)
