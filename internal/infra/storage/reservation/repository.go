package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

const (
	tableName = "reservations"

	// codeExclusionViolation SQLSTATE нарушения EXCLUDE constraint
	codeExclusionViolation = "23P01"
)

var columns = []string{
	"id",
	"resource_id",
	"service_ids",
	"start_at",
	"end_at",
	"status",
	"series_id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"notes",
	"created_by",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
// Время начала и конца возвращается в часовом поясе площадки
type Repository struct {
	db       DBExecutor
	location *time.Location
}

// NewRepository создает новый экземпляр репозитория бронирований
// location - часовой пояс площадки; nil оставляет пояс сессии БД
func NewRepository(db DBExecutor, location *time.Location) *Repository {
	return &Repository{db: db, location: location}
}

// Create создает новое бронирование
// Пересечение с активным бронированием того же ресурса отклоняется базой (EXCLUDE USING gist)
// и возвращается как ErrOverlap.
// Для проверки конфликта до вставки вызывать внутри SERIALIZABLE транзакции вместе с ListByResources.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	var seriesID interface{}
	if reservation.SeriesID != nil {
		seriesID = *reservation.SeriesID
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"resource_id",
			"service_ids",
			"start_at",
			"end_at",
			"status",
			"series_id",
			"customer_name",
			"customer_email",
			"customer_phone",
			"notes",
			"created_by",
		).
		Values(
			reservation.ResourceID,
			pq.Array(reservation.ServiceIDs),
			reservation.Start,
			reservation.End,
			reservation.Status,
			seriesID,
			reservation.CustomerName,
			reservation.CustomerEmail,
			reservation.CustomerPhone,
			reservation.Notes,
			reservation.CreatedBy,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isExclusionViolation(err) {
			return nil, fmt.Errorf("%w: Create - resource %d %s", ErrOverlap, reservation.ResourceID, reservation.Interval())
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation.In(r.location), nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...), r.location)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %w", ErrScanRow, err)
	}

	return reservation, nil
}

// ListByResources получает бронирования ресурсов, пересекающиеся с [From, To)
// Отмененные исключаются, если не указан IncludeInactive.
// Внутри транзакции строки блокируются (FOR UPDATE): чтение -> проверка -> запись
// выполняются атомарно относительно других сессий.
func (r *Repository) ListByResources(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("start_at ASC", "id ASC")

	if len(filter.ResourceIDs) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"resource_id": filter.ResourceIDs})
	}

	// Пересечение полуинтервалов: start_at < To AND end_at > From
	if !filter.To.IsZero() {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_at": filter.To})
	}
	if !filter.From.IsZero() {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_at": filter.From})
	}

	if filter.CreatedBy != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"created_by": *filter.CreatedBy})
	}
	if filter.SeriesID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"series_id": *filter.SeriesID})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByResources - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByResources - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows, r.location)
}

// UpdateInterval переносит бронирование на новый интервал и возвращает обновленную запись
func (r *Repository) UpdateInterval(ctx context.Context, id int64, interval domain.Interval) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("start_at", interval.Start).
		Set("end_at", interval.End).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: UpdateInterval - build update query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...), r.location)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		if isExclusionViolation(err) {
			return nil, fmt.Errorf("%w: UpdateInterval - reservation %d %s", ErrOverlap, id, interval)
		}
		return nil, fmt.Errorf("%w: UpdateInterval - execute update: %w", ErrExecQuery, err)
	}

	return reservation, nil
}

// Cancel отменяет бронирование
// Отмененное бронирование больше не занимает ресурс
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// FinalizeEnded переводит завершившиеся pending/confirmed бронирования в finalized
// Возвращает количество обновленных строк
func (r *Repository) FinalizeEnded(ctx context.Context, before time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", domain.StatusFinalized).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.LtOrEq{"end_at": before}).
		Where(squirrel.Eq{"status": []string{string(domain.StatusPending), string(domain.StatusConfirmed)}}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: FinalizeEnded - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: FinalizeEnded - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: FinalizeEnded - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner, location *time.Location) (*domain.Reservation, error) {
	var reservation domain.Reservation
	var serviceIDs pq.Int64Array
	var seriesID uuid.NullUUID
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&reservation.ID,
		&reservation.ResourceID,
		&serviceIDs,
		&reservation.Start,
		&reservation.End,
		&reservation.Status,
		&seriesID,
		&reservation.CustomerName,
		&reservation.CustomerEmail,
		&reservation.CustomerPhone,
		&reservation.Notes,
		&reservation.CreatedBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.ServiceIDs = []int64(serviceIDs)
	if seriesID.Valid {
		id := seriesID.UUID
		reservation.SeriesID = &id
	}
	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation.In(location), nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows, location *time.Location) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		reservation, err := scanReservation(rows, location)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

func isExclusionViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == codeExclusionViolation
}
