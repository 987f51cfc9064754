package palletstock

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/estibas-api/internal/application/dto"
	"github.com/jhoicas/estibas-api/internal/domain"
	"github.com/jhoicas/estibas-api/internal/domain/entity"
	"github.com/jhoicas/estibas-api/internal/domain/repository"
)

// SaveDay aplica las ediciones del encargado a un día ABIERTO ya materializado.
// Todo o nada: si alguna clase es inválida no se modifica ninguna entrada.
// Editar un día nunca propaga a los snapshots previousMorningStock de días
// posteriores ya materializados; la historia registrada no se mueve.
func (uc *UseCase) SaveDay(ctx context.Context, date time.Time, edits []dto.SaveEntryRequest) (*entity.PalletDay, error) {
	date = entity.NormalizeDate(date)

	// Validación completa antes de tocar la BD.
	for _, edit := range edits {
		if !entity.PalletType(edit.Type).IsValid() {
			return nil, domain.ErrInvalidInput
		}
		if edit.Used < 0 || edit.MorningStock < 0 {
			return nil, domain.ErrInvalidQuantity
		}
	}

	var day *entity.PalletDay
	err := uc.txRunner.Run(ctx, func(
		dayRepo repository.PalletDayRepository,
		_ repository.AnchorStockRepository,
		_ repository.AlertConfigRepository,
	) error {
		// FOR UPDATE: un cierre que confirme a mitad de la edición no puede
		// dejar entradas mutadas después de closedAt.
		var err error
		day, err = dayRepo.GetByDateForUpdate(ctx, date)
		if err != nil {
			return err
		}
		if day.IsClosed() {
			return domain.ErrDayClosed
		}

		updated := make([]entity.PalletEntry, 0, len(edits))
		for _, edit := range edits {
			e := day.Entry(entity.PalletType(edit.Type))
			if e == nil {
				return domain.ErrInvalidInput
			}
			if edit.MorningStock != e.MorningStock {
				// Rastro de auditoría: se marca cuando el guardado cambia el
				// stock matinal y no se limpia en guardados posteriores.
				e.MorningCorrected = true
			}
			e.MorningStock = edit.MorningStock
			e.Used = edit.Used
			e.Produced = edit.MorningStock - e.PreviousMorningStock + edit.Used
			updated = append(updated, *e)
		}
		return dayRepo.UpdateEntries(ctx, updated)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("date", date.Format("2006-01-02")).
		Int("edits", len(edits)).
		Msg("entradas del día actualizadas")
	return day, nil
}

// CorrectMorningStock corrección auditada del stock matinal de una clase en un
// día ABIERTO. Exige nota (mínimo 3 caracteres), marca morningCorrected y
// recalcula produced contra el snapshot congelado.
func (uc *UseCase) CorrectMorningStock(ctx context.Context, date time.Time, req dto.CorrectMorningStockRequest) (*entity.PalletEntry, error) {
	date = entity.NormalizeDate(date)

	if !entity.PalletType(req.Type).IsValid() {
		return nil, domain.ErrInvalidInput
	}
	if req.MorningStock < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	note := strings.TrimSpace(req.Note)
	if len(note) < 3 {
		return nil, domain.ErrInvalidInput
	}

	var corrected *entity.PalletEntry
	err := uc.txRunner.Run(ctx, func(
		dayRepo repository.PalletDayRepository,
		_ repository.AnchorStockRepository,
		_ repository.AlertConfigRepository,
	) error {
		day, err := dayRepo.GetByDateForUpdate(ctx, date)
		if err != nil {
			return err
		}
		if day.IsClosed() {
			return domain.ErrDayClosed
		}
		e := day.Entry(entity.PalletType(req.Type))
		if e == nil {
			return domain.ErrInvalidInput
		}

		e.MorningStock = req.MorningStock
		e.MorningCorrected = true
		e.MorningNote = note
		e.Produced = req.MorningStock - e.PreviousMorningStock + e.Used
		corrected = e
		return dayRepo.UpdateEntries(ctx, []entity.PalletEntry{*e})
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("date", date.Format("2006-01-02")).
		Str("type", req.Type).
		Int("morning_stock", req.MorningStock).
		Msg("stock matinal corregido")
	return corrected, nil
}
