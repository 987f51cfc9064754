package palletstock

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/estibas-api/internal/domain/entity"
)

// Alerts evalúa las alertas de un día ya materializado: una por clase cuyo
// stock matinal esté por debajo del umbral configurado (o del valor por defecto).
func (uc *UseCase) Alerts(ctx context.Context, day *entity.PalletDay) ([]entity.Alert, error) {
	thresholds, err := uc.thresholds(ctx)
	if err != nil {
		return nil, err
	}
	alerts := evaluateAlerts(day, thresholds)
	if len(alerts) > 0 {
		uc.log.Warn().
			Str("date", day.Date.Format("2006-01-02")).
			Int("alerts", len(alerts)).
			Msg("alertas de stock de estibas")
	}
	return alerts, nil
}

// GetToday materializa el día de hoy y devuelve sus alertas (dashboard).
func (uc *UseCase) GetToday(ctx context.Context) (*entity.PalletDay, []entity.Alert, error) {
	day, err := uc.GetDay(ctx, time.Now().UTC())
	if err != nil {
		return nil, nil, err
	}
	alerts, err := uc.Alerts(ctx, day)
	if err != nil {
		return nil, nil, err
	}
	return day, alerts, nil
}

// evaluateAlerts lógica pura de evaluación, compartida con las vistas mensuales.
func evaluateAlerts(day *entity.PalletDay, thresholds map[entity.PalletType]int) []entity.Alert {
	var alerts []entity.Alert
	for i := range day.Entries {
		e := &day.Entries[i]
		threshold, ok := thresholds[e.Type]
		if !ok {
			threshold = entity.DefaultCriticalThreshold
		}
		if e.MorningStock < threshold {
			alerts = append(alerts, entity.Alert{
				Type:         e.Type,
				CurrentStock: e.MorningStock,
				Threshold:    threshold,
				Severity:     entity.AlertSeverityCritical,
				Message:      fmt.Sprintf("stock bajo de estibas %s: %d (umbral: %d)", e.Type, e.MorningStock, threshold),
			})
		}
	}
	return alerts
}

// dayHasAlerts indica si alguna clase del día está bajo su umbral.
func dayHasAlerts(day *entity.PalletDay, thresholds map[entity.PalletType]int) bool {
	for i := range day.Entries {
		threshold, ok := thresholds[day.Entries[i].Type]
		if !ok {
			threshold = entity.DefaultCriticalThreshold
		}
		if day.Entries[i].MorningStock < threshold {
			return true
		}
	}
	return false
}
