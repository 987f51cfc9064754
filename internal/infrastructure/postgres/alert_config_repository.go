package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/estibas-api/internal/domain/entity"
	"github.com/jhoicas/estibas-api/internal/domain/repository"
)

var _ repository.AlertConfigRepository = (*AlertConfigRepo)(nil)

// AlertConfigRepo implementación de AlertConfigRepository sobre PostgreSQL.
type AlertConfigRepo struct {
	q Querier
}

// NewAlertConfigRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlertConfigRepository(q Querier) *AlertConfigRepo {
	return &AlertConfigRepo{q: q}
}

// List devuelve las configuraciones de alerta existentes.
func (r *AlertConfigRepo) List(ctx context.Context) ([]entity.AlertConfig, error) {
	query := `SELECT type, critical_threshold FROM pallet_alert_config ORDER BY type ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list alert config: %w", err)
	}
	defer rows.Close()

	var configs []entity.AlertConfig
	for rows.Next() {
		var cfg entity.AlertConfig
		var typ string
		if err := rows.Scan(&typ, &cfg.CriticalThreshold); err != nil {
			return nil, fmt.Errorf("scan alert config: %w", err)
		}
		cfg.Type = entity.PalletType(typ)
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list alert config rows: %w", err)
	}
	return configs, nil
}

// Upsert inserta o actualiza los umbrales dados (por clase).
func (r *AlertConfigRepo) Upsert(ctx context.Context, configs []entity.AlertConfig) error {
	query := `
		INSERT INTO pallet_alert_config (type, critical_threshold)
		VALUES ($1, $2)
		ON CONFLICT (type)
		DO UPDATE SET critical_threshold = EXCLUDED.critical_threshold`
	for _, cfg := range configs {
		if _, err := r.q.Exec(ctx, query, string(cfg.Type), cfg.CriticalThreshold); err != nil {
			return fmt.Errorf("upsert alert config %s: %w", cfg.Type, err)
		}
	}
	return nil
}
