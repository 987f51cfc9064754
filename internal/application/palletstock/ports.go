package palletstock

import (
	"context"

	"github.com/jhoicas/estibas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para la materialización
// (insert-or-fetch sobre el índice único de fecha) y serializa edición y
// cierre del mismo día (FOR UPDATE + commit/rollback).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		dayRepo repository.PalletDayRepository,
		anchorRepo repository.AnchorStockRepository,
		alertRepo repository.AlertConfigRepository,
	) error) error
}
