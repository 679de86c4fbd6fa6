package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StorageService/internal/domain"
	"github.com/m04kA/SMC-StorageService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-StorageService/pkg/txmanager"
)

var bookingColumns = []string{
	"id",
	"user_id",
	"storage_id",
	"category",
	"item_id",
	"item_count",
	"period_type",
	"period_length",
	"start_date",
	"end_date",
	"total_cost",
	"promo_percent",
	"discounted_price",
	"status",
	"access_code",
	"created_at",
	"updated_at",
}

// Repository журнал подтверждённых бронирований и durable-таблица клиентов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый репозиторий журнала бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// NextID возвращает следующий идентификатор бронирования: max существующего + 1,
// на пустом журнале — 1. Вызывается только внутри сериализуемой транзакции,
// чтобы два бронирования не получили один id.
func (r *Repository) NextID(ctx context.Context) (int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(MAX(id), 0) + 1").
		From("bookings").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: NextID - build select query: %v", ErrBuildQuery, err)
	}

	var next int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&next); err != nil {
		return 0, fmt.Errorf("%w: NextID - scan: %v", ErrScanRow, err)
	}

	return next, nil
}

// Create добавляет подтверждённое бронирование в журнал.
// Идентификатор должен быть уже назначен через NextID в той же транзакции.
func (r *Repository) Create(ctx context.Context, booking *domain.ConfirmedBooking) (*domain.ConfirmedBooking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"user_id",
			"storage_id",
			"category",
			"item_id",
			"item_count",
			"period_type",
			"period_length",
			"start_date",
			"end_date",
			"total_cost",
			"promo_percent",
			"discounted_price",
			"status",
		).
		Values(
			booking.ID,
			booking.UserID,
			booking.StorageID,
			booking.Category,
			booking.ItemID,
			booking.Count,
			booking.PeriodType,
			booking.PeriodLength,
			booking.StartDate,
			booking.EndDate,
			booking.TotalCost,
			booking.PromoPercent,
			booking.DiscountedCost,
			booking.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование из журнала по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ConfirmedBooking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var booking domain.ConfirmedBooking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.StorageID,
		&booking.Category,
		&booking.ItemID,
		&booking.Count,
		&booking.PeriodType,
		&booking.PeriodLength,
		&booking.StartDate,
		&booking.EndDate,
		&booking.TotalCost,
		&booking.PromoPercent,
		&booking.DiscountedCost,
		&booking.Status,
		&booking.AccessCode,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// UpdateStatus обновляет статус бронирования в журнале
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.DraftStatus) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
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

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// SetAccessCode записывает выданный код доступа на оплаченное бронирование
func (r *Repository) SetAccessCode(ctx context.Context, id int64, accessCode string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("access_code", accessCode).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetAccessCode - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetAccessCode - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetAccessCode - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpsertClient идемпотентно сохраняет анкету клиента по идентификатору пользователя
func (r *Repository) UpsertClient(ctx context.Context, client *domain.ClientProfile) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("clients").
		Columns(
			"user_id",
			"surname",
			"name",
			"second_name",
			"passport",
			"birth_date",
			"phone",
		).
		Values(
			client.UserID,
			client.Surname,
			client.Name,
			client.SecondName,
			client.Passport,
			client.BirthDate,
			client.Phone,
		).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			surname = EXCLUDED.surname,
			name = EXCLUDED.name,
			second_name = EXCLUDED.second_name,
			passport = EXCLUDED.passport,
			birth_date = EXCLUDED.birth_date,
			phone = EXCLUDED.phone,
			updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertClient - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertClient - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetClientPassport возвращает паспорт клиента из durable-таблицы.
// Используется при выпуске кода доступа после оплаты.
func (r *Repository) GetClientPassport(ctx context.Context, userID int64) (string, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("passport").
		From("clients").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: GetClientPassport - build select query: %v", ErrBuildQuery, err)
	}

	var passport string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&passport)
	if err == sql.ErrNoRows {
		return "", ErrClientNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: GetClientPassport - scan: %v", ErrScanRow, err)
	}

	return passport, nil
}
