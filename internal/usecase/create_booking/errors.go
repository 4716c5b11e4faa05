package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается при некорректных датах бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrServiceDisabled возвращается, когда услуга отключена на площадке
	ErrServiceDisabled = errors.New("create_booking: service is disabled at this facility")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
