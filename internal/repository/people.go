package repository

import (
	"context"
	"time"

	"github.com/gestione-turni/backend/internal/domain"
	"github.com/google/uuid"
)

func (r *Repository) GetAllPeople() ([]*domain.Person, error) {
	query := `
		SELECT id, full_name, is_active, notes, rotation_base_riposo_date, created_at, version
		FROM people
		ORDER BY full_name
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	people := make([]*domain.Person, 0)
	for rows.Next() {
		p := &domain.Person{}
		dst := []any{&p.ID, &p.FullName, &p.IsActive, &p.Notes, &p.RotationBaseRiposoDate, &p.CreatedAt, &p.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		people = append(people, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return people, nil
}

func (r *Repository) GetPersonByID(id string) (*domain.Person, error) {
	query := `
		SELECT full_name, is_active, notes, rotation_base_riposo_date, created_at, version
		FROM people WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	p := &domain.Person{
		ID: id,
	}

	dst := []any{&p.FullName, &p.IsActive, &p.Notes, &p.RotationBaseRiposoDate, &p.CreatedAt, &p.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return p, nil
}

func (r *Repository) CreatePerson(p *domain.Person) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO people (id, full_name, notes)
		VALUES ($1, $2, $3)
		RETURNING is_active, created_at, version
	`

	p.ID = uuid.NewString()
	if err := r.dbpool.QueryRowContext(ctx, query, p.ID, p.FullName, p.Notes).Scan(&p.IsActive, &p.CreatedAt, &p.Version); err != nil {
		return err
	}

	return nil
}

// UpdatePerson aggiorna anagrafica, flag attivo e data base della rotazione.
// Per uscire dal roster senza perdere lo storico si usa la disattivazione,
// non la cancellazione.
func (r *Repository) UpdatePerson(p *domain.Person) error {
	query := `
		UPDATE people
		SET
			full_name = $1,
			is_active = $2,
			notes = $3,
			rotation_base_riposo_date = $4,
			version = version + 1
		WHERE id = $5 AND version = $6
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{p.FullName, p.IsActive, p.Notes, p.RotationBaseRiposoDate, p.ID, p.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&p.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeletePerson(id string) error {
	query := `
		DELETE FROM people WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
