package modules

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-PetCareBooking/internal/domain"
	"github.com/m04kA/SMC-PetCareBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-PetCareBooking/pkg/psqlbuilder"
)

const table = "facility_modules"

// Repository репозиторий настроек модулей площадки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает настройку услуги на площадке
func (r *Repository) Get(ctx context.Context, facilityID string, service domain.ServiceID) (*domain.ModuleSetting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("facility_id", "service", "disabled", "reason", "updated_at").
		From(table).
		Where(squirrel.Eq{"facility_id": facilityID, "service": service}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var setting domain.ModuleSetting
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&setting.FacilityID,
		&setting.Service,
		&setting.Disabled,
		&setting.Reason,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrModuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan setting: %v", ErrScanRow, err)
	}

	setting.UpdatedAt = updatedAt.Time
	return &setting, nil
}

// ListByFacility получает все настройки площадки
func (r *Repository) ListByFacility(ctx context.Context, facilityID string) ([]*domain.ModuleSetting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("facility_id", "service", "disabled", "reason", "updated_at").
		From(table).
		Where(squirrel.Eq{"facility_id": facilityID}).
		OrderBy("service ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByFacility - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByFacility - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	settings := make([]*domain.ModuleSetting, 0)

	for rows.Next() {
		var setting domain.ModuleSetting
		var updatedAt sql.NullTime

		if err := rows.Scan(
			&setting.FacilityID,
			&setting.Service,
			&setting.Disabled,
			&setting.Reason,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByFacility - scan row: %v", ErrScanRow, err)
		}

		setting.UpdatedAt = updatedAt.Time
		settings = append(settings, &setting)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByFacility - rows error: %v", ErrScanRow, err)
	}

	return settings, nil
}

// Upsert создает или обновляет настройку услуги
func (r *Repository) Upsert(ctx context.Context, setting *domain.ModuleSetting) (*domain.ModuleSetting, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("facility_id", "service", "disabled", "reason").
		Values(setting.FacilityID, setting.Service, setting.Disabled, setting.Reason).
		Suffix("ON CONFLICT (facility_id, service) DO UPDATE SET " +
			"disabled = EXCLUDED.disabled, reason = EXCLUDED.reason, updated_at = NOW() " +
			"RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	setting.UpdatedAt = updatedAt.Time
	return setting, nil
}
