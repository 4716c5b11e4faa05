package models

import (
	"time"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        int64              `json:"id"`
	Booking   domain.BookingData `json:"booking"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:        b.ID,
		Booking:   b.BookingData,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
