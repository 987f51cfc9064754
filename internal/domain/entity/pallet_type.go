package entity

// PalletType clase de tamaño de estiba de producción. Enumeración fija:
// no hay clases dinámicas y toda operación por día actúa sobre el conjunto completo.
type PalletType string

const (
	PalletMALA  PalletType = "MALA"
	PalletP2400 PalletType = "P2400"
	PalletP3000 PalletType = "P3000"
	PalletP3500 PalletType = "P3500"
	PalletP4000 PalletType = "P4000"
)

// PalletTypes devuelve todas las clases en orden estable.
func PalletTypes() []PalletType {
	return []PalletType{PalletMALA, PalletP2400, PalletP3000, PalletP3500, PalletP4000}
}

// IsValid indica si el valor pertenece a la enumeración.
func (t PalletType) IsValid() bool {
	switch t {
	case PalletMALA, PalletP2400, PalletP3000, PalletP3500, PalletP4000:
		return true
	}
	return false
}
