package palletstock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/estibas-api/internal/domain"
	"github.com/jhoicas/estibas-api/internal/domain/entity"
	"github.com/jhoicas/estibas-api/internal/domain/repository"
)

// GetDay devuelve el día persistido para la fecha, materializándolo en el
// primer acceso. La materialización es idempotente: llamadas repetidas (o
// concurrentes) sobre la misma fecha devuelven la misma fila, nunca duplican.
//
// El día nuevo se construye desde el día persistido más cercano anterior
// (búsqueda hacia atrás, los huecos del calendario no cuestan nada hasta que
// alguien los observa) o, si no hay ninguno, desde el ancla de stock inicial.
// Antes de la fecha de inicio del ancla no hay seguimiento (ErrNotTracked).
func (uc *UseCase) GetDay(ctx context.Context, date time.Time) (*entity.PalletDay, error) {
	date = entity.NormalizeDate(date)

	day, err := uc.dayRepo.GetByDate(ctx, date)
	if err == nil {
		return day, nil
	}
	if !errors.Is(err, domain.ErrDayNotFound) {
		return nil, err
	}

	entries, err := uc.defaultEntries(ctx, date)
	if err != nil {
		return nil, err
	}

	newDay := &entity.PalletDay{
		ID:        uuid.NewString(),
		Date:      date,
		Status:    entity.DayStatusOpen,
		CreatedAt: time.Now().UTC(),
		Entries:   entries,
	}
	for i := range newDay.Entries {
		newDay.Entries[i].ID = uuid.NewString()
		newDay.Entries[i].DayID = newDay.ID
	}

	// Insert-or-fetch atómico: el índice único sobre la fecha decide quién gana
	// bajo primer acceso concurrente; el perdedor relee la fila existente.
	var created bool
	err = uc.txRunner.Run(ctx, func(
		dayRepo repository.PalletDayRepository,
		_ repository.AnchorStockRepository,
		_ repository.AlertConfigRepository,
	) error {
		var insErr error
		created, insErr = dayRepo.InsertIfAbsent(ctx, newDay)
		return insErr
	})
	if err != nil {
		return nil, fmt.Errorf("materializar día: %w", err)
	}
	if !created {
		return uc.dayRepo.GetByDate(ctx, date)
	}

	uc.log.Info().
		Str("date", date.Format("2006-01-02")).
		Int("entries", len(newDay.Entries)).
		Msg("día de estibas materializado")
	return newDay, nil
}

// defaultEntries calcula las entradas por defecto de un día aún no persistido.
//
// Con día anterior P: el snapshot previousMorningStock es el stock matinal de
// P (congelado aquí, jamás recalculado), y el stock matinal por defecto es
// P.morning - P.used acotado a cero; produced queda negativo si P consumió y
// nadie ha registrado producción todavía.
//
// Sin día anterior: el ancla hace de "día previo" del primer día rastreable.
func (uc *UseCase) defaultEntries(ctx context.Context, date time.Time) ([]entity.PalletEntry, error) {
	prev, err := uc.dayRepo.FindLatestBefore(ctx, date)
	if err == nil {
		entries := make([]entity.PalletEntry, 0, len(entity.PalletTypes()))
		for _, t := range entity.PalletTypes() {
			var prevMorning, prevUsed int
			if e := prev.Entry(t); e != nil {
				prevMorning = e.MorningStock
				prevUsed = e.Used
			}
			morning := prevMorning - prevUsed
			if morning < 0 {
				morning = 0
			}
			entries = append(entries, entity.PalletEntry{
				Type:                 t,
				MorningStock:         morning,
				Used:                 0,
				PreviousMorningStock: prevMorning,
				Produced:             morning - prevMorning,
			})
		}
		return entries, nil
	}
	if !errors.Is(err, domain.ErrDayNotFound) {
		return nil, fmt.Errorf("buscar día anterior: %w", err)
	}

	anchors, err := uc.anchorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("leer stock inicial: %w", err)
	}
	if len(anchors) == 0 {
		// Sin ancla no hay valor por defecto seguro.
		return nil, domain.ErrNotTracked
	}
	if date.Before(entity.NormalizeDate(anchors[0].StartDate)) {
		return nil, domain.ErrNotTracked
	}

	initial := make(map[entity.PalletType]int, len(anchors))
	for _, a := range anchors {
		initial[a.Type] = a.InitialStock
	}
	entries := make([]entity.PalletEntry, 0, len(entity.PalletTypes()))
	for _, t := range entity.PalletTypes() {
		stock := initial[t]
		entries = append(entries, entity.PalletEntry{
			Type:                 t,
			MorningStock:         stock,
			Used:                 0,
			PreviousMorningStock: stock,
			Produced:             0,
		})
	}
	return entries, nil
}
