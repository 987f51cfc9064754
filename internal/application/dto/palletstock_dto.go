package dto

import "github.com/jhoicas/estibas-api/internal/domain/entity"

// SaveEntryRequest edición de una clase dentro de saveDay: el encargado digita
// "usadas" y puede ajustar el stock matinal. Produced nunca se recibe: se deriva.
type SaveEntryRequest struct {
	Type         string `json:"type"`
	Used         int    `json:"used"`
	MorningStock int    `json:"morning_stock"`
}

// CorrectMorningStockRequest corrección auditada del stock matinal de una clase.
type CorrectMorningStockRequest struct {
	Type         string `json:"type"`
	MorningStock int    `json:"morning_stock"`
	Note         string `json:"note"` // obligatoria, mínimo 3 caracteres
}

// AlertConfigRequest umbral crítico a configurar para una clase.
type AlertConfigRequest struct {
	Type              string `json:"type"`
	CriticalThreshold int    `json:"critical_threshold"`
}

// InitialStockDTO ancla del libro: fecha de inicio y stock inicial por clase.
type InitialStockDTO struct {
	StartDate string                    `json:"start_date"` // YYYY-MM-DD
	Stocks    map[entity.PalletType]int `json:"stocks"`
}

// MonthSummaryDTO totales autoritativos de un mes: su cálculo materializa cada
// día calendario cubierto por el ancla, lo haya visitado alguien o no.
type MonthSummaryDTO struct {
	Year           int                       `json:"year"`
	Month          int                       `json:"month"`
	FirstDayStocks map[entity.PalletType]int `json:"first_day_stocks"` // morningStock del día 1
	LastDayStocks  map[entity.PalletType]int `json:"last_day_stocks"`  // stock implícito fin del último día
	TotalUsed      map[entity.PalletType]int `json:"total_used"`
	TotalProduced  map[entity.PalletType]int `json:"total_produced"`
	NetBalance     map[entity.PalletType]int `json:"net_balance"` // totalProduced - totalUsed
	DaysWithAlerts int                       `json:"days_with_alerts"`
	TotalDays      int                       `json:"total_days"`
}

// CalendarDayDTO estado de un día en la vista calendario. "empty" significa que
// la fecha nunca se materializó; la vista jamás crea historia como efecto lateral.
type CalendarDayDTO struct {
	Date      string `json:"date"`   // YYYY-MM-DD
	Status    string `json:"status"` // empty, open, closed
	HasAlerts bool   `json:"has_alerts"`
}

// CalendarSummaryDTO calendario de un mes completo.
type CalendarSummaryDTO struct {
	Year  int              `json:"year"`
	Month int              `json:"month"`
	Days  []CalendarDayDTO `json:"days"`
}
