package repository

import (
	"context"

	"github.com/jhoicas/estibas-api/internal/domain/entity"
)

// AnchorStockRepository puerto del ancla de stock inicial.
type AnchorStockRepository interface {
	// List devuelve el ancla por clase; vacío si nunca se configuró.
	List(ctx context.Context) ([]entity.AnchorStock, error)
	// Replace reemplaza el ancla completa (todas las clases, una sola fecha
	// de inicio) en una sola operación.
	Replace(ctx context.Context, anchors []entity.AnchorStock) error
}
