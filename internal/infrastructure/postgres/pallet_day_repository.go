package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/estibas-api/internal/domain"
	"github.com/jhoicas/estibas-api/internal/domain/entity"
	"github.com/jhoicas/estibas-api/internal/domain/repository"
)

var _ repository.PalletDayRepository = (*PalletDayRepo)(nil)

// PalletDayRepo implementación de PalletDayRepository sobre PostgreSQL
// (usable con pool o tx).
type PalletDayRepo struct {
	q Querier
}

// NewPalletDayRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPalletDayRepository(q Querier) *PalletDayRepo {
	return &PalletDayRepo{q: q}
}

const dayColumns = `id, date, status, closed_at, created_at`

// GetByDate obtiene el día con sus entradas, o domain.ErrDayNotFound.
func (r *PalletDayRepo) GetByDate(ctx context.Context, date time.Time) (*entity.PalletDay, error) {
	query := `SELECT ` + dayColumns + ` FROM pallet_day WHERE date = $1`
	return r.scanDayWithEntries(ctx, r.q.QueryRow(ctx, query, date))
}

// GetByDateForUpdate obtiene el día bloqueando su fila (SELECT FOR UPDATE).
// La fila del día es el punto de serialización entre edición y cierre.
func (r *PalletDayRepo) GetByDateForUpdate(ctx context.Context, date time.Time) (*entity.PalletDay, error) {
	query := `SELECT ` + dayColumns + ` FROM pallet_day WHERE date = $1 FOR UPDATE`
	return r.scanDayWithEntries(ctx, r.q.QueryRow(ctx, query, date))
}

// FindLatestBefore devuelve el día persistido más cercano anterior a date.
func (r *PalletDayRepo) FindLatestBefore(ctx context.Context, date time.Time) (*entity.PalletDay, error) {
	query := `SELECT ` + dayColumns + ` FROM pallet_day WHERE date < $1 ORDER BY date DESC LIMIT 1`
	return r.scanDayWithEntries(ctx, r.q.QueryRow(ctx, query, date))
}

// InsertIfAbsent inserta el día y sus entradas de forma atómica contra el
// índice único de date. Devuelve false (sin insertar nada) si la fecha ya
// existe: dos primeras visitas concurrentes nunca duplican filas. Debe
// ejecutarse dentro de una transacción para que el día jamás quede parcial.
func (r *PalletDayRepo) InsertIfAbsent(ctx context.Context, day *entity.PalletDay) (bool, error) {
	query := `
		INSERT INTO pallet_day (id, date, status, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (date) DO NOTHING`
	tag, err := r.q.Exec(ctx, query, day.ID, day.Date, day.Status, day.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("insert pallet_day: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	entryQuery := `
		INSERT INTO pallet_entry
			(id, day_id, type, morning_stock, morning_corrected, morning_note,
			 used, previous_morning_stock, produced)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, e := range day.Entries {
		_, err := r.q.Exec(ctx, entryQuery,
			e.ID, day.ID, string(e.Type), e.MorningStock, e.MorningCorrected,
			e.MorningNote, e.Used, e.PreviousMorningStock, e.Produced,
		)
		if err != nil {
			return false, fmt.Errorf("insert pallet_entry %s: %w", e.Type, err)
		}
	}
	return true, nil
}

// UpdateEntries sobrescribe los valores editables de las entradas dadas.
func (r *PalletDayRepo) UpdateEntries(ctx context.Context, entries []entity.PalletEntry) error {
	query := `
		UPDATE pallet_entry
		SET morning_stock = $2, morning_corrected = $3, morning_note = $4,
		    used = $5, produced = $6
		WHERE id = $1`
	for _, e := range entries {
		tag, err := r.q.Exec(ctx, query,
			e.ID, e.MorningStock, e.MorningCorrected, e.MorningNote, e.Used, e.Produced,
		)
		if err != nil {
			return fmt.Errorf("update pallet_entry %s: %w", e.Type, err)
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrDayNotFound
		}
	}
	return nil
}

// Close marca el día como cerrado (transición irreversible).
func (r *PalletDayRepo) Close(ctx context.Context, dayID string, closedAt time.Time) error {
	query := `UPDATE pallet_day SET status = $2, closed_at = $3 WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, dayID, entity.DayStatusClosed, closedAt)
	if err != nil {
		return fmt.Errorf("close pallet_day: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrDayNotFound
	}
	return nil
}

// ListRange devuelve los días persistidos en [from, to] con sus entradas.
func (r *PalletDayRepo) ListRange(ctx context.Context, from, to time.Time) ([]*entity.PalletDay, error) {
	query := `SELECT ` + dayColumns + ` FROM pallet_day WHERE date >= $1 AND date <= $2 ORDER BY date ASC`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list pallet_day: %w", err)
	}
	defer rows.Close()

	var days []*entity.PalletDay
	byID := make(map[string]*entity.PalletDay)
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
		byID[day.ID] = day
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pallet_day rows: %w", err)
	}
	if len(days) == 0 {
		return days, nil
	}

	ids := make([]string, 0, len(days))
	for _, d := range days {
		ids = append(ids, d.ID)
	}
	entries, err := r.loadEntries(ctx, `day_id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		day := byID[e.DayID]
		day.Entries = append(day.Entries, e)
	}
	return days, nil
}

// scanDayWithEntries escanea la fila del día y carga sus entradas.
func (r *PalletDayRepo) scanDayWithEntries(ctx context.Context, row pgx.Row) (*entity.PalletDay, error) {
	day, err := scanDay(row)
	if err != nil {
		return nil, err
	}
	day.Entries, err = r.loadEntries(ctx, `day_id = $1`, day.ID)
	if err != nil {
		return nil, err
	}
	return day, nil
}

func (r *PalletDayRepo) loadEntries(ctx context.Context, where string, arg any) ([]entity.PalletEntry, error) {
	query := `
		SELECT id, day_id, type, morning_stock, morning_corrected, morning_note,
		       used, previous_morning_stock, produced
		FROM pallet_entry WHERE ` + where + ` ORDER BY type ASC`
	rows, err := r.q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list pallet_entry: %w", err)
	}
	defer rows.Close()

	var entries []entity.PalletEntry
	for rows.Next() {
		var e entity.PalletEntry
		var typ string
		err := rows.Scan(&e.ID, &e.DayID, &typ, &e.MorningStock, &e.MorningCorrected,
			&e.MorningNote, &e.Used, &e.PreviousMorningStock, &e.Produced)
		if err != nil {
			return nil, fmt.Errorf("scan pallet_entry: %w", err)
		}
		e.Type = entity.PalletType(typ)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pallet_entry rows: %w", err)
	}
	return entries, nil
}

func scanDay(row pgx.Row) (*entity.PalletDay, error) {
	var d entity.PalletDay
	err := row.Scan(&d.ID, &d.Date, &d.Status, &d.ClosedAt, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDayNotFound
		}
		return nil, fmt.Errorf("scan pallet_day: %w", err)
	}
	d.Date = entity.NormalizeDate(d.Date)
	return &d, nil
}
