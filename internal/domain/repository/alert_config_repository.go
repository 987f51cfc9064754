package repository

import (
	"context"

	"github.com/jhoicas/estibas-api/internal/domain/entity"
)

// AlertConfigRepository puerto de los umbrales de alerta por clase.
type AlertConfigRepository interface {
	// List devuelve las configuraciones existentes (puede faltar alguna clase).
	List(ctx context.Context) ([]entity.AlertConfig, error)
	// Upsert inserta o actualiza los umbrales dados.
	Upsert(ctx context.Context, configs []entity.AlertConfig) error
}
