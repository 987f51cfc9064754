package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/estibas-api/internal/domain/entity"
	"github.com/jhoicas/estibas-api/internal/domain/repository"
)

var _ repository.AnchorStockRepository = (*AnchorStockRepo)(nil)

// AnchorStockRepo implementación de AnchorStockRepository sobre PostgreSQL.
type AnchorStockRepo struct {
	q Querier
}

// NewAnchorStockRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAnchorStockRepository(q Querier) *AnchorStockRepo {
	return &AnchorStockRepo{q: q}
}

// List devuelve el ancla por clase; vacío si nunca se configuró.
func (r *AnchorStockRepo) List(ctx context.Context) ([]entity.AnchorStock, error) {
	query := `SELECT type, start_date, initial_stock FROM pallet_anchor_stock ORDER BY type ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list anchor stock: %w", err)
	}
	defer rows.Close()

	var anchors []entity.AnchorStock
	for rows.Next() {
		var a entity.AnchorStock
		var typ string
		if err := rows.Scan(&typ, &a.StartDate, &a.InitialStock); err != nil {
			return nil, fmt.Errorf("scan anchor stock: %w", err)
		}
		a.Type = entity.PalletType(typ)
		a.StartDate = entity.NormalizeDate(a.StartDate)
		anchors = append(anchors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list anchor stock rows: %w", err)
	}
	return anchors, nil
}

// Replace reemplaza el ancla completa. Ejecutar dentro de una transacción para
// que el ancla nunca quede parcial.
func (r *AnchorStockRepo) Replace(ctx context.Context, anchors []entity.AnchorStock) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM pallet_anchor_stock`); err != nil {
		return fmt.Errorf("clear anchor stock: %w", err)
	}
	query := `INSERT INTO pallet_anchor_stock (type, start_date, initial_stock) VALUES ($1, $2, $3)`
	for _, a := range anchors {
		if _, err := r.q.Exec(ctx, query, string(a.Type), a.StartDate, a.InitialStock); err != nil {
			return fmt.Errorf("insert anchor stock %s: %w", a.Type, err)
		}
	}
	return nil
}
