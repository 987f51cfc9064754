package palletstock

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/estibas-api/internal/application/dto"
	"github.com/jhoicas/estibas-api/internal/domain"
	"github.com/jhoicas/estibas-api/internal/domain/entity"
)

// MonthSummary totales autoritativos del mes. Fuerza la materialización de
// cada día calendario cubierto por el ancla (incluidos los que nadie visitó):
// esa es la diferencia deliberada con Calendar, que jamás escribe.
func (uc *UseCase) MonthSummary(ctx context.Context, year, month int) (*dto.MonthSummaryDTO, error) {
	if err := validateYearMonth(year, month); err != nil {
		return nil, err
	}

	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	days := make([]*entity.PalletDay, 0, daysInMonth)
	for d := 1; d <= daysInMonth; d++ {
		date := time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC)
		day, err := uc.GetDay(ctx, date)
		if err != nil {
			// Días fuera del ancla no se rastrean ni suman.
			if errors.Is(err, domain.ErrNotTracked) {
				continue
			}
			return nil, err
		}
		days = append(days, day)
	}
	if len(days) == 0 {
		return nil, domain.ErrNotTracked
	}

	thresholds, err := uc.thresholds(ctx)
	if err != nil {
		return nil, err
	}

	summary := &dto.MonthSummaryDTO{
		Year:           year,
		Month:          month,
		FirstDayStocks: make(map[entity.PalletType]int),
		LastDayStocks:  make(map[entity.PalletType]int),
		TotalUsed:      make(map[entity.PalletType]int),
		TotalProduced:  make(map[entity.PalletType]int),
		NetBalance:     make(map[entity.PalletType]int),
		TotalDays:      len(days),
	}
	for _, t := range entity.PalletTypes() {
		if e := days[0].Entry(t); e != nil {
			summary.FirstDayStocks[t] = e.MorningStock
		}
		if e := days[len(days)-1].Entry(t); e != nil {
			summary.LastDayStocks[t] = e.EndOfDayStock()
		}
	}
	for _, day := range days {
		for i := range day.Entries {
			e := &day.Entries[i]
			summary.TotalUsed[e.Type] += e.Used
			summary.TotalProduced[e.Type] += e.Produced
		}
		if dayHasAlerts(day, thresholds) {
			summary.DaysWithAlerts++
		}
	}
	for _, t := range entity.PalletTypes() {
		summary.NetBalance[t] = summary.TotalProduced[t] - summary.TotalUsed[t]
	}

	uc.log.Debug().
		Int("year", year).
		Int("month", month).
		Int("days", summary.TotalDays).
		Int("days_with_alerts", summary.DaysWithAlerts).
		Msg("resumen mensual de estibas calculado")
	return summary, nil
}

// validateYearMonth guardas de rango de las vistas mensuales.
func validateYearMonth(year, month int) error {
	if month < 1 || month > 12 {
		return domain.ErrInvalidInput
	}
	if year < 2020 || year > 2100 {
		return domain.ErrInvalidInput
	}
	return nil
}
