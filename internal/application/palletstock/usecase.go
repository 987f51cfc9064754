package palletstock

import (
	"context"
	"fmt"

	"github.com/jhoicas/estibas-api/internal/domain/entity"
	"github.com/jhoicas/estibas-api/internal/domain/repository"
	"github.com/jhoicas/estibas-api/pkg/logger"
)

// UseCase libro de estibas de producción: un registro por fecha calendario con
// una entrada por clase de estiba. Implementa la materialización perezosa e
// idempotente de días, las ediciones del encargado, el cierre irreversible,
// las alertas por umbral y las dos vistas mensuales (totales y calendario).
type UseCase struct {
	txRunner   TxRunner
	dayRepo    repository.PalletDayRepository
	anchorRepo repository.AnchorStockRepository
	alertRepo  repository.AlertConfigRepository
	log        *logger.Logger
}

// NewUseCase construye el caso de uso del libro de estibas.
func NewUseCase(
	txRunner TxRunner,
	dayRepo repository.PalletDayRepository,
	anchorRepo repository.AnchorStockRepository,
	alertRepo repository.AlertConfigRepository,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		txRunner:   txRunner,
		dayRepo:    dayRepo,
		anchorRepo: anchorRepo,
		alertRepo:  alertRepo,
		log:        log,
	}
}

// thresholds devuelve el umbral crítico por clase, aplicando el valor por
// defecto a las clases sin configuración (ConfigMissing no es un error).
func (uc *UseCase) thresholds(ctx context.Context) (map[entity.PalletType]int, error) {
	configs, err := uc.alertRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar configuración de alertas: %w", err)
	}
	m := make(map[entity.PalletType]int, len(entity.PalletTypes()))
	for _, t := range entity.PalletTypes() {
		m[t] = entity.DefaultCriticalThreshold
	}
	for _, cfg := range configs {
		m[cfg.Type] = cfg.CriticalThreshold
	}
	return m, nil
}
