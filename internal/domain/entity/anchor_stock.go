package entity

import "time"

// AnchorStock ancla del libro: stock inicial de una clase, fijado a la fecha
// global de inicio del seguimiento. Antes de StartDate no hay seguimiento.
type AnchorStock struct {
	Type         PalletType
	StartDate    time.Time // compartida por todas las clases
	InitialStock int       // >= 0; stock matinal base del primer día rastreable
}
