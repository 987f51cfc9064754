package palletstock

import (
	"context"
	"time"

	"github.com/jhoicas/estibas-api/internal/application/dto"
	"github.com/jhoicas/estibas-api/internal/domain/entity"
)

// Calendar vista de solo lectura del mes: estado por fecha sin materializar
// nada. Consultar el calendario no puede crear historia del libro; las fechas
// jamás visitadas aparecen como "empty" y nunca alertan.
func (uc *UseCase) Calendar(ctx context.Context, year, month int) (*dto.CalendarSummaryDTO, error) {
	if err := validateYearMonth(year, month); err != nil {
		return nil, err
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	to := time.Date(year, time.Month(month), daysInMonth, 0, 0, 0, 0, time.UTC)

	persisted, err := uc.dayRepo.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	byDate := make(map[string]*entity.PalletDay, len(persisted))
	for _, day := range persisted {
		byDate[day.Date.Format("2006-01-02")] = day
	}

	thresholds, err := uc.thresholds(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.CalendarSummaryDTO{
		Year:  year,
		Month: month,
		Days:  make([]dto.CalendarDayDTO, 0, daysInMonth),
	}
	for d := 1; d <= daysInMonth; d++ {
		dateStr := time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
		cd := dto.CalendarDayDTO{Date: dateStr, Status: "empty"}
		if day, ok := byDate[dateStr]; ok {
			if day.IsClosed() {
				cd.Status = "closed"
			} else {
				cd.Status = "open"
			}
			cd.HasAlerts = dayHasAlerts(day, thresholds)
		}
		out.Days = append(out.Days, cd)
	}
	return out, nil
}
