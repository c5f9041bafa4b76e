package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/syazwaniiiii/hr-management-system/internal/domain"
)

// storageError classifies a database failure. 23505 is unique_violation; the
// upsert path should make that impossible, so when it does show up it is
// reported loudly instead of being swallowed.
func storageError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return &domain.StorageError{Kind: domain.IntegrityViolation, Err: err}
	}
	return &domain.StorageError{Kind: domain.StorageFailure, Err: err}
}

// UpsertSlot writes the slot in a single statement. Concurrent writers to the
// same slot serialize on the unique constraint and the last commit wins; a
// read-then-write sequence here would reintroduce the lost-update race.
func (r *Repository) UpsertSlot(key domain.SlotKey, employeeID int64) (*domain.Assignment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO shift_assignments (employee_id, shift_type, week_start, day)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ON CONSTRAINT shift_assignments_slot_key
		DO UPDATE SET employee_id = EXCLUDED.employee_id, updated_at = now()
		RETURNING id, created_at, updated_at
	`

	assignment := &domain.Assignment{
		EmployeeID: employeeID,
		ShiftType:  key.ShiftType,
		WeekStart:  key.WeekStart,
		Day:        key.Day,
	}

	args := []any{employeeID, key.ShiftType, key.WeekStart, key.Day}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&assignment.ID, &assignment.CreatedAt, &assignment.UpdatedAt); err != nil {
		return nil, storageError(err)
	}

	return assignment, nil
}

func (r *Repository) FindByWeek(weekStart string) ([]*domain.Assignment, error) {
	query := `
		SELECT id, employee_id, shift_type, week_start, day, created_at, updated_at
		FROM shift_assignments WHERE week_start = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, weekStart)
	if err != nil {
		return nil, storageError(err)
	}
	defer rows.Close()

	assignments := make([]*domain.Assignment, 0)
	for rows.Next() {
		assignment := &domain.Assignment{}
		var ws, day time.Time

		dst := []any{&assignment.ID, &assignment.EmployeeID, &assignment.ShiftType, &ws, &day, &assignment.CreatedAt, &assignment.UpdatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, storageError(err)
		}

		assignment.WeekStart = ws.Format(domain.DateLayout)
		assignment.Day = day.Format(domain.DateLayout)
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError(err)
	}

	return assignments, nil
}

// DeleteByWeek clears every assignment of the given week. Deleting an empty
// week is not an error; the caller gets the number of rows removed.
func (r *Repository) DeleteByWeek(weekStart string) (int64, error) {
	query := `
		DELETE FROM shift_assignments WHERE week_start = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, weekStart)
	if err != nil {
		return 0, storageError(err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, storageError(err)
	}

	return deleted, nil
}
