package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/gestione-turni/backend/internal/calendar"
	"github.com/gestione-turni/backend/internal/domain"
	"github.com/google/uuid"
)

func (r *Repository) GetAllAbsences() ([]*domain.Absence, error) {
	query := `
		SELECT id, person_id, kind, start_date, end_date, notes, created_at
		FROM absences
		ORDER BY start_date DESC, created_at DESC
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAbsences(rows)
}

// GetAbsencesOverlapping restituisce le assenze che intersecano l'intervallo
// [start, end] (estremi inclusi).
func (r *Repository) GetAbsencesOverlapping(start, end calendar.Date) ([]*domain.Absence, error) {
	query := `
		SELECT id, person_id, kind, start_date, end_date, notes, created_at
		FROM absences
		WHERE start_date <= $2 AND end_date >= $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAbsences(rows)
}

func scanAbsences(rows *sql.Rows) ([]*domain.Absence, error) {
	absences := make([]*domain.Absence, 0)
	for rows.Next() {
		a := &domain.Absence{}
		dst := []any{&a.ID, &a.PersonID, &a.Kind, &a.StartDate, &a.EndDate, &a.Notes, &a.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		absences = append(absences, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return absences, nil
}

func (r *Repository) CreateAbsence(a *domain.Absence) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO absences (id, person_id, kind, start_date, end_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	a.ID = uuid.NewString()
	args := []any{a.ID, a.PersonID, a.Kind, a.StartDate, a.EndDate, a.Notes}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&a.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteAbsence(id string) error {
	query := `
		DELETE FROM absences WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
