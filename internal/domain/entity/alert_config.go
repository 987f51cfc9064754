package entity

// DefaultCriticalThreshold umbral usado cuando una clase no tiene configuración.
const DefaultCriticalThreshold = 10

// AlertConfig umbral crítico de stock matinal por clase de estiba.
type AlertConfig struct {
	Type              PalletType
	CriticalThreshold int // >= 0
}

// AlertSeverityCritical única severidad emitida por el evaluador.
const AlertSeverityCritical = "CRITICAL"

// Alert stock matinal por debajo del umbral configurado para una clase.
// Solo se evalúa sobre días materializados; una fecha nunca visitada no alerta.
type Alert struct {
	Type         PalletType
	CurrentStock int // stock matinal observado
	Threshold    int
	Severity     string
	Message      string
}
