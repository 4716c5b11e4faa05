package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
	"github.com/m04kA/SMC-PetCareBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-PetCareBooking/pkg/psqlbuilder"
)

const table = "pet_bookings"

var columns = []string{
	"client_id",
	"pet_ids",
	"facility_id",
	"service",
	"service_type",
	"start_date",
	"end_date",
	"check_in_time",
	"check_out_time",
	"status",
	"base_price",
	"discount",
	"total_cost",
	"payment_status",
	"details",
	"notify_by_email",
	"notify_by_sms",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	detailsJSON, err := encodeDetails(&booking.BookingData)
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrEncodeDetails, err)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(
			booking.ClientID,
			pq.Array(booking.PetID.IDs()),
			booking.FacilityID,
			booking.Service,
			booking.ServiceType,
			booking.StartDate,
			booking.EndDate,
			booking.CheckInTime,
			booking.CheckOutTime,
			booking.Status,
			booking.BasePrice,
			booking.Discount,
			booking.TotalCost,
			booking.PaymentStatus,
			detailsJSON,
			booking.NotifyByEmail,
			booking.NotifyBySMS,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(append(append([]string{"id"}, columns...), "created_at", "updated_at")...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.Booking
	var petIDs []string
	var detailsJSON []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.ClientID,
		pq.Array(&petIDs),
		&booking.FacilityID,
		&booking.Service,
		&booking.ServiceType,
		&booking.StartDate,
		&booking.EndDate,
		&booking.CheckInTime,
		&booking.CheckOutTime,
		&booking.Status,
		&booking.BasePrice,
		&booking.Discount,
		&booking.TotalCost,
		&booking.PaymentStatus,
		&detailsJSON,
		&booking.NotifyByEmail,
		&booking.NotifyBySMS,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	if err := decodeDetails(detailsJSON, &booking.BookingData); err != nil {
		return nil, fmt.Errorf("%w: GetByID - decode details: %v", ErrScanRow, err)
	}

	booking.PetID = domain.PetRef(petIDs)
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}
