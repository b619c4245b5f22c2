package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/TennisCourt-BookingService/internal/domain"
	"github.com/m04kA/TennisCourt-BookingService/pkg/dbmetrics"
	"github.com/m04kA/TennisCourt-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/TennisCourt-BookingService/pkg/types"
)

// Repository репозиторий для работы с бронированиями корта.
// Единственная точка мутации таблицы bookings: все переходы
// hold → paid / hold → expired / удаление проходят через него.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bookingColumns = []string{
	"id",
	"date",
	"start_time",
	"name",
	"phone",
	"email",
	"paid",
	"reserved_until",
	"created_at",
}

// Create создает временную бронь (hold): paid=false, reserved_until задан.
// Если в контексте передана активная транзакция, использует её —
// create-бронь всегда должна выполняться в одной транзакции с проверкой
// конфликта (FindActiveConflict), иначе возможна гонка двух reserve.
// Частичный уникальный индекс по (date, start_time) для активных строк
// страхует от потерянной гонки: нарушение маппится в ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"date",
			"start_time",
			"name",
			"phone",
			"email",
			"paid",
			"reserved_until",
		).
		Values(
			b.Date,
			b.StartTime,
			b.Name,
			b.Phone,
			b.Email,
			b.Paid,
			b.ReservedUntil,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// FindActiveConflict ищет активное бронирование на слот (date, startTime):
// оплаченное или удерживаемое с reserved_until > at. Просроченные hold'ы
// не считаются конфликтом независимо от того, выполнялся ли sweep.
// Внутри транзакции строка блокируется FOR UPDATE — это критическая секция
// проверки перед вставкой.
func (r *Repository) FindActiveConflict(ctx context.Context, date time.Time, startTime types.TimeString, at time.Time) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"date": date}).
		Where(squirrel.Eq{"start_time": startTime}).
		Where(squirrel.Or{
			squirrel.Eq{"paid": true},
			squirrel.Gt{"reserved_until": at},
		}).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveConflict - build select query: %v", ErrBuildQuery, err)
	}

	b, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoActiveBooking
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveConflict - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetByDate получает все бронирования на дату, по возрастанию времени начала
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"date": date}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListAll получает все бронирования, отсортированные по (дата, время)
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("date ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// MarkPaid помечает бронирование оплаченным и снимает hold.
// Идемпотентна: повторный вызов для уже оплаченного бронирования — no-op.
func (r *Repository) MarkPaid(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("paid", true).
		Set("reserved_until", nil).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkPaid - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkPaid - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// ReleaseExpiredHold снимает просроченный hold с конкретного слота.
// Вызывается в транзакции reserve перед вставкой: просроченная, но ещё не
// свёрнутая sweep'ом строка иначе упёрлась бы в частичный уникальный индекс.
func (r *Repository) ReleaseExpiredHold(ctx context.Context, date time.Time, startTime types.TimeString, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("reserved_until", nil).
		Where(squirrel.Eq{"date": date}).
		Where(squirrel.Eq{"start_time": startTime}).
		Where(squirrel.Eq{"paid": false}).
		Where(squirrel.Lt{"reserved_until": at}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReleaseExpiredHold - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReleaseExpiredHold - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// SweepExpired снимает просроченные hold'ы (reserved_until < at, paid=false).
// Чистая оптимизация: корректность FindActiveConflict и выборки доступных
// слотов от sweep не зависит.
func (r *Repository) SweepExpired(ctx context.Context, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("reserved_until", nil).
		Where(squirrel.Lt{"reserved_until": at}).
		Where(squirrel.Eq{"paid": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SweepExpired - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SweepExpired - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет бронирование (физическое удаление, только для админа)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var reservedUntil sql.NullTime
	var createdAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.Date,
		&b.StartTime,
		&b.Name,
		&b.Phone,
		&b.Email,
		&b.Paid,
		&reservedUntil,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if reservedUntil.Valid {
		t := reservedUntil.Time
		b.ReservedUntil = &t
	}
	b.CreatedAt = createdAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// isUniqueViolation проверяет ошибку на SQLSTATE 23505 (unique_violation)
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
