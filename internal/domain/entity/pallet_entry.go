package entity

// PalletEntry entrada de una clase de estiba dentro de un PalletDay.
//
// PreviousMorningStock es el snapshot del stock matinal del día anterior,
// congelado al materializar el día: nunca se recalcula aunque el día anterior
// se edite después. Produced se deriva siempre, no es un valor autoritativo:
//
//	Produced = MorningStock - PreviousMorningStock + Used
//
// y puede ser negativo (señal de déficit).
type PalletEntry struct {
	ID                   string
	DayID                string
	Type                 PalletType
	MorningStock         int // >= 0
	MorningCorrected     bool
	MorningNote          string
	Used                 int // >= 0
	PreviousMorningStock int
	Produced             int
}

// EndOfDayStock stock implícito al cierre del día: MorningStock - Used + Produced.
func (e *PalletEntry) EndOfDayStock() int {
	return e.MorningStock - e.Used + e.Produced
}
