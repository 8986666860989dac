package repository

import (
	"context"
	"time"

	"github.com/gestione-turni/backend/internal/domain"
	"github.com/google/uuid"
)

func (r *Repository) GetAllShifts() ([]*domain.Shift, error) {
	query := `
		SELECT id, name, start_time, end_time, notes, sort_order, created_at, version
		FROM shifts
		ORDER BY sort_order
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]*domain.Shift, 0)
	for rows.Next() {
		s := &domain.Shift{}
		dst := []any{&s.ID, &s.Name, &s.StartTime, &s.EndTime, &s.Notes, &s.SortOrder, &s.CreatedAt, &s.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *Repository) GetShiftByID(id string) (*domain.Shift, error) {
	query := `
		SELECT name, start_time, end_time, notes, sort_order, created_at, version
		FROM shifts WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	s := &domain.Shift{
		ID: id,
	}

	dst := []any{&s.Name, &s.StartTime, &s.EndTime, &s.Notes, &s.SortOrder, &s.CreatedAt, &s.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return s, nil
}

// CreateShift assegna il sort_order in coda ai turni esistenti. L'ordinamento
// è solo di visualizzazione.
func (r *Repository) CreateShift(s *domain.Shift) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO shifts (id, name, start_time, end_time, notes, sort_order)
		VALUES ($1, $2, $3, $4, $5, (SELECT COALESCE(MAX(sort_order), 0) + 1 FROM shifts))
		RETURNING sort_order, created_at, version
	`

	s.ID = uuid.NewString()
	args := []any{s.ID, s.Name, s.StartTime, s.EndTime, s.Notes}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&s.SortOrder, &s.CreatedAt, &s.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateShift(s *domain.Shift) error {
	query := `
		UPDATE shifts
		SET
			name = $1,
			start_time = $2,
			end_time = $3,
			notes = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{s.Name, s.StartTime, s.EndTime, s.Notes, s.ID, s.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&s.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteShift(id string) error {
	query := `
		DELETE FROM shifts WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
