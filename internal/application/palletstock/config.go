package palletstock

import (
	"context"
	"time"

	"github.com/jhoicas/estibas-api/internal/application/dto"
	"github.com/jhoicas/estibas-api/internal/domain"
	"github.com/jhoicas/estibas-api/internal/domain/entity"
	"github.com/jhoicas/estibas-api/internal/domain/repository"
)

// GetAlertConfig devuelve el umbral por clase. Las clases sin fila se crean
// con el umbral por defecto, de modo que el resultado siempre está completo.
func (uc *UseCase) GetAlertConfig(ctx context.Context) ([]entity.AlertConfig, error) {
	configs, err := uc.alertRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	existing := make(map[entity.PalletType]int, len(configs))
	for _, cfg := range configs {
		existing[cfg.Type] = cfg.CriticalThreshold
	}

	var missing []entity.AlertConfig
	for _, t := range entity.PalletTypes() {
		if _, ok := existing[t]; !ok {
			missing = append(missing, entity.AlertConfig{
				Type:              t,
				CriticalThreshold: entity.DefaultCriticalThreshold,
			})
		}
	}
	if len(missing) > 0 {
		uc.log.Info().Int("missing", len(missing)).Msg("creando umbrales de alerta faltantes")
		if err := uc.alertRepo.Upsert(ctx, missing); err != nil {
			return nil, err
		}
		for _, cfg := range missing {
			existing[cfg.Type] = cfg.CriticalThreshold
		}
	}

	out := make([]entity.AlertConfig, 0, len(entity.PalletTypes()))
	for _, t := range entity.PalletTypes() {
		out = append(out, entity.AlertConfig{Type: t, CriticalThreshold: existing[t]})
	}
	return out, nil
}

// UpdateAlertConfig actualiza los umbrales dados y devuelve el conjunto completo.
func (uc *UseCase) UpdateAlertConfig(ctx context.Context, reqs []dto.AlertConfigRequest) ([]entity.AlertConfig, error) {
	configs := make([]entity.AlertConfig, 0, len(reqs))
	for _, req := range reqs {
		t := entity.PalletType(req.Type)
		if !t.IsValid() {
			return nil, domain.ErrInvalidInput
		}
		if req.CriticalThreshold < 0 {
			return nil, domain.ErrInvalidQuantity
		}
		configs = append(configs, entity.AlertConfig{Type: t, CriticalThreshold: req.CriticalThreshold})
	}
	if len(configs) > 0 {
		if err := uc.alertRepo.Upsert(ctx, configs); err != nil {
			return nil, err
		}
	}
	return uc.GetAlertConfig(ctx)
}

// GetInitialStock devuelve el ancla del libro. Un ancla ausente no tiene valor
// por defecto seguro: falla ErrNotTracked (asimetría deliberada con las alertas).
func (uc *UseCase) GetInitialStock(ctx context.Context) (*dto.InitialStockDTO, error) {
	anchors, err := uc.anchorRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(anchors) == 0 {
		return nil, domain.ErrNotTracked
	}
	out := &dto.InitialStockDTO{
		StartDate: entity.NormalizeDate(anchors[0].StartDate).Format("2006-01-02"),
		Stocks:    make(map[entity.PalletType]int, len(anchors)),
	}
	for _, a := range anchors {
		out.Stocks[a.Type] = a.InitialStock
	}
	return out, nil
}

// SetInitialStock reemplaza el ancla completa: una fecha de inicio global y el
// stock inicial por clase (las clases omitidas quedan en cero). No recalcula
// días ya persistidos: sus snapshots quedaron congelados al materializarlos.
func (uc *UseCase) SetInitialStock(ctx context.Context, startDate time.Time, stocks map[entity.PalletType]int) (*dto.InitialStockDTO, error) {
	for t, stock := range stocks {
		if !t.IsValid() {
			return nil, domain.ErrInvalidInput
		}
		if stock < 0 {
			return nil, domain.ErrInvalidQuantity
		}
	}

	startDate = entity.NormalizeDate(startDate)
	anchors := make([]entity.AnchorStock, 0, len(entity.PalletTypes()))
	for _, t := range entity.PalletTypes() {
		anchors = append(anchors, entity.AnchorStock{
			Type:         t,
			StartDate:    startDate,
			InitialStock: stocks[t],
		})
	}

	err := uc.txRunner.Run(ctx, func(
		_ repository.PalletDayRepository,
		anchorRepo repository.AnchorStockRepository,
		_ repository.AlertConfigRepository,
	) error {
		return anchorRepo.Replace(ctx, anchors)
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("start_date", startDate.Format("2006-01-02")).
		Msg("stock inicial del libro configurado")
	return uc.GetInitialStock(ctx)
}
