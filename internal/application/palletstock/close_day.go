package palletstock

import (
	"context"
	"time"

	"github.com/jhoicas/estibas-api/internal/domain"
	"github.com/jhoicas/estibas-api/internal/domain/entity"
	"github.com/jhoicas/estibas-api/internal/domain/repository"
)

// CloseDay transición única OPEN -> CLOSED: congela las entradas del día.
// No existe reapertura para este subsistema.
func (uc *UseCase) CloseDay(ctx context.Context, date time.Time) (*entity.PalletDay, error) {
	date = entity.NormalizeDate(date)

	var day *entity.PalletDay
	err := uc.txRunner.Run(ctx, func(
		dayRepo repository.PalletDayRepository,
		_ repository.AnchorStockRepository,
		_ repository.AlertConfigRepository,
	) error {
		var err error
		day, err = dayRepo.GetByDateForUpdate(ctx, date)
		if err != nil {
			return err
		}
		if day.IsClosed() {
			return domain.ErrAlreadyClosed
		}
		closedAt := time.Now().UTC()
		if err := dayRepo.Close(ctx, day.ID, closedAt); err != nil {
			return err
		}
		day.Status = entity.DayStatusClosed
		day.ClosedAt = &closedAt
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("date", date.Format("2006-01-02")).
		Msg("día de estibas cerrado")
	return day, nil
}
