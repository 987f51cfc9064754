package entity

import "time"

// Estado del día de estibas. Transición única OPEN -> CLOSED, sin reapertura.
const (
	DayStatusOpen   = "OPEN"
	DayStatusClosed = "CLOSED"
)

// PalletDay registro persistido de un día calendario del libro de estibas.
// O no existe, o existe con una entrada por cada PalletType (nunca parcial).
type PalletDay struct {
	ID        string
	Date      time.Time // fecha normalizada a medianoche UTC, única
	Status    string    // OPEN, CLOSED
	ClosedAt  *time.Time
	CreatedAt time.Time
	Entries   []PalletEntry
}

// IsClosed indica si el día ya fue cerrado (entradas inmutables).
func (d *PalletDay) IsClosed() bool {
	return d.Status == DayStatusClosed
}

// Entry devuelve la entrada de la clase dada, o nil si no existe.
func (d *PalletDay) Entry(t PalletType) *PalletEntry {
	for i := range d.Entries {
		if d.Entries[i].Type == t {
			return &d.Entries[i]
		}
	}
	return nil
}

// NormalizeDate recorta la hora: el libro trabaja con fechas calendario puras.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
