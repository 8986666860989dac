package repository

import (
	"context"
	"time"

	"github.com/gestione-turni/backend/internal/calendar"
	"github.com/gestione-turni/backend/internal/domain"
	"github.com/google/uuid"
)

// GetOrCreateWeek restituisce la settimana con quel lunedì, creandola se non
// esiste. L'upsert con DO UPDATE fittizio rende l'operazione sicura anche con
// richieste concorrenti sulla stessa settimana.
func (r *Repository) GetOrCreateWeek(monday calendar.Date) (*domain.Week, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO weeks (id, monday_date)
		VALUES ($1, $2)
		ON CONFLICT (monday_date) DO UPDATE SET monday_date = EXCLUDED.monday_date
		RETURNING id
	`

	week := &domain.Week{
		MondayDate: monday,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, uuid.NewString(), monday).Scan(&week.ID); err != nil {
		return nil, err
	}

	return week, nil
}

func (r *Repository) GetAssignments(weekID string) ([]*domain.Assignment, error) {
	query := `
		SELECT id, day_index, shift_id, person_id, updated_at
		FROM assignments
		WHERE week_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, weekID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cells := make([]*domain.Assignment, 0)
	for rows.Next() {
		c := &domain.Assignment{
			WeekID: weekID,
		}
		dst := []any{&c.ID, &c.DayIndex, &c.ShiftID, &c.PersonID, &c.UpdatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		cells = append(cells, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cells, nil
}

// UpsertCell scrive una singola cella della griglia. Vince l'ultima
// scrittura: niente versioni, la concorrenza sulla stessa cella si risolve a
// livello di riga.
func (r *Repository) UpsertCell(weekID string, dayIndex int, shiftID string, personID *string) (*domain.Assignment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO assignments (id, week_id, day_index, shift_id, person_id)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (week_id, day_index, shift_id)
		DO UPDATE SET person_id = EXCLUDED.person_id, updated_at = now()
		RETURNING id, updated_at
	`

	cell := &domain.Assignment{
		WeekID:   weekID,
		DayIndex: dayIndex,
		ShiftID:  shiftID,
		PersonID: personID,
	}

	args := []any{uuid.NewString(), weekID, dayIndex, shiftID, personID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&cell.ID, &cell.UpdatedAt); err != nil {
		return nil, err
	}

	return cell, nil
}

// ClearWeek elimina tutte le celle e gli override della settimana, in una
// sola transazione. Le altre settimane non vengono toccate.
func (r *Repository) ClearWeek(weekID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM assignments WHERE week_id = $1`, weekID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM assignment_meta WHERE week_id = $1`, weekID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) GetAssignmentMetas(weekID string) ([]*domain.AssignmentMeta, error) {
	query := `
		SELECT id, day_index, shift_id, override_start_time, override_end_time, role
		FROM assignment_meta
		WHERE week_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, weekID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	metas := make([]*domain.AssignmentMeta, 0)
	for rows.Next() {
		m := &domain.AssignmentMeta{
			WeekID: weekID,
		}
		dst := []any{&m.ID, &m.DayIndex, &m.ShiftID, &m.OverrideStartTime, &m.OverrideEndTime, &m.Role}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		metas = append(metas, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return metas, nil
}

// UpsertAssignmentMeta aggiorna gli override di una cella campo per campo: i
// campi con il rispettivo flag a false conservano il valore già salvato, con
// il flag a true prendono il nuovo valore (null compreso, che riporta il
// campo al default del turno).
func (r *Repository) UpsertAssignmentMeta(meta *domain.AssignmentMeta, setStart, setEnd, setRole bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO assignment_meta (id, week_id, day_index, shift_id, override_start_time, override_end_time, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (week_id, day_index, shift_id)
		DO UPDATE SET
			override_start_time = CASE WHEN $8 THEN EXCLUDED.override_start_time ELSE assignment_meta.override_start_time END,
			override_end_time   = CASE WHEN $9 THEN EXCLUDED.override_end_time ELSE assignment_meta.override_end_time END,
			role                = CASE WHEN $10 THEN EXCLUDED.role ELSE assignment_meta.role END
		RETURNING id, override_start_time, override_end_time, role
	`

	args := []any{
		uuid.NewString(), meta.WeekID, meta.DayIndex, meta.ShiftID,
		meta.OverrideStartTime, meta.OverrideEndTime, meta.Role,
		setStart, setEnd, setRole,
	}

	dst := []any{&meta.ID, &meta.OverrideStartTime, &meta.OverrideEndTime, &meta.Role}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}
