package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/estibas-api/internal/application/palletstock"
	"github.com/jhoicas/estibas-api/internal/domain/repository"
)

// Ensure TxRunner implements palletstock.TxRunner.
var _ palletstock.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	dayRepo repository.PalletDayRepository,
	anchorRepo repository.AnchorStockRepository,
	alertRepo repository.AlertConfigRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	dayRepo := NewPalletDayRepository(tx)
	anchorRepo := NewAnchorStockRepository(tx)
	alertRepo := NewAlertConfigRepository(tx)

	if err := fn(dayRepo, anchorRepo, alertRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
