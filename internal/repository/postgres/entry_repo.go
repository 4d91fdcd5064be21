package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"timeledger/internal/domain"
)

const entryColumns = "id, name, start_time, end_time, created_at, updated_at"

type entryRepository struct {
	DB *sql.DB
}

func NewEntryRepository(db *sql.DB) domain.EntryRepository {
	return &entryRepository{
		DB: db,
	}
}

// scanEntry scans one entry row from a row scanner sharing the entryColumns order.
func scanEntry(s interface{ Scan(dest ...any) error }) (*domain.Entry, error) {
	e := &domain.Entry{}
	var endNull sql.NullTime
	if err := s.Scan(&e.ID, &e.Name, &e.StartTime, &endNull, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	if endNull.Valid {
		e.EndTime = &endNull.Time
	}
	return e, nil
}

func (r *entryRepository) Start(ctx context.Context, e *domain.Entry) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	// Closing every open row keeps the single-open-entry invariant even if
	// older data violated it.
	closeQuery := `
		UPDATE entries SET end_time = $1, updated_at = NOW()
		WHERE end_time IS NULL
	`
	if _, err := tx.ExecContext(ctx, closeQuery, e.StartTime); err != nil {
		return fmt.Errorf("close open entry: %w", err)
	}

	insertQuery := `
		INSERT INTO entries (name, start_time, end_time, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	if err := tx.QueryRowContext(ctx, insertQuery, e.Name, e.StartTime, e.EndTime).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return fmt.Errorf("insert entry: %w", err)
	}
	return tx.Commit()
}

func (r *entryRepository) Current(ctx context.Context) (*domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE end_time IS NULL
		ORDER BY start_time DESC
		LIMIT 1
	`
	e, err := scanEntry(r.DB.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *entryRepository) Get(ctx context.Context, id int64) (*domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE id = $1
	`
	e, err := scanEntry(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *entryRepository) End(ctx context.Context, id int64, endTime time.Time) (*domain.Entry, error) {
	query := `
		UPDATE entries SET end_time = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + entryColumns + `
	`
	e, err := scanEntry(r.DB.QueryRowContext(ctx, query, endTime, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *entryRepository) Update(ctx context.Context, id int64, params domain.UpdateEntryParams) (*domain.Entry, error) {
	if params.Empty() {
		// No fields to update; just fetch current row
		return r.Get(ctx, id)
	}
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	if params.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", n))
		args = append(args, *params.Name)
		n++
	}
	if params.StartTime != nil {
		setClauses = append(setClauses, fmt.Sprintf("start_time = $%d", n))
		args = append(args, *params.StartTime)
		n++
	}
	if params.EndTime != nil {
		setClauses = append(setClauses, fmt.Sprintf("end_time = $%d", n))
		args = append(args, *params.EndTime)
		n++
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE entries SET %s
		WHERE id = $%d
		RETURNING `+entryColumns+`
	`, strings.Join(setClauses, ", "), n)
	e, err := scanEntry(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *entryRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM entries WHERE id = $1`
	// Deleting a missing id is fine; the row count is not checked.
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}

func (r *entryRepository) List(ctx context.Context, limit, offset int) ([]*domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		ORDER BY start_time DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEntries(rows)
}

func (r *entryRepository) ListByRange(ctx context.Context, from, to time.Time) ([]*domain.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM entries
		WHERE start_time >= $1 AND start_time <= $2
		ORDER BY start_time DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEntries(rows)
}

func collectEntries(rows *sql.Rows) ([]*domain.Entry, error) {
	entries := make([]*domain.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *entryRepository) FrequentNames(ctx context.Context, limit int) ([]domain.NameCount, error) {
	query := `
		SELECT name, COUNT(*) AS count
		FROM entries
		GROUP BY name
		ORDER BY count DESC
		LIMIT $1
	`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	counts := make([]domain.NameCount, 0)
	for rows.Next() {
		var nc domain.NameCount
		if err := rows.Scan(&nc.Name, &nc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, nc)
	}
	return counts, rows.Err()
}

func (r *entryRepository) AggregateByName(ctx context.Context, from, to time.Time) ([]domain.NameDuration, error) {
	// Whole minutes are floored per entry before summing. Open entries are
	// measured against NOW(), so repeated calls report growing totals.
	query := `
		SELECT name,
			SUM(FLOOR(EXTRACT(EPOCH FROM (COALESCE(end_time, NOW()) - start_time)) / 60))::BIGINT AS duration
		FROM entries
		WHERE start_time >= $1 AND start_time <= $2
		GROUP BY name
		ORDER BY duration DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	durations := make([]domain.NameDuration, 0)
	for rows.Next() {
		var nd domain.NameDuration
		if err := rows.Scan(&nd.Name, &nd.Duration); err != nil {
			return nil, err
		}
		durations = append(durations, nd)
	}
	return durations, rows.Err()
}
