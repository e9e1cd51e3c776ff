package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonDashboard/internal/domain"
	"github.com/m04kA/SMC-SalonDashboard/pkg/psqlbuilder"
)

const table = "sessions"

// Repository репозиторий сессий дашборда
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет сессию
func (r *Repository) Create(ctx context.Context, s *domain.Session) (*domain.Session, error) {
	var expiresAt sql.NullTime
	if s.ExpiresAt != nil {
		expiresAt = sql.NullTime{Time: *s.ExpiresAt, Valid: true}
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "token", "salon_id", "mobile", "name", "expires_at").
		Values(s.ID, s.Token, s.SalonID, s.Mobile, s.Name, expiresAt).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&s.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// GetByID получает сессию по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query, args, err := psqlbuilder.Select("id", "token", "salon_id", "mobile", "name", "created_at", "expires_at").
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var (
		s         domain.Session
		expiresAt sql.NullTime
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Token,
		&s.SalonID,
		&s.Mobile,
		&s.Name,
		&s.CreatedAt,
		&expiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan: %v", ErrScanRow, err)
	}

	if expiresAt.Valid {
		t := expiresAt.Time
		s.ExpiresAt = &t
	}

	return &s, nil
}

// Delete удаляет сессию (выход из дашборда)
func (r *Repository) Delete(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteExpired удаляет сессии, срок действия токена которых истек, и возвращает их идентификаторы
func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) ([]string, error) {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.NotEq{"expires_at": nil}).
		Where(squirrel.Lt{"expires_at": now}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: DeleteExpired - scan: %v", ErrScanRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: DeleteExpired - rows: %v", ErrScanRow, err)
	}

	return ids, nil
}
