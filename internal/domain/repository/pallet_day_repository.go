package repository

import (
	"context"
	"time"

	"github.com/jhoicas/estibas-api/internal/domain/entity"
)

// PalletDayRepository puerto de persistencia del libro de estibas.
// Las fechas llegan ya normalizadas (medianoche UTC).
type PalletDayRepository interface {
	// GetByDate devuelve el día con sus entradas, o domain.ErrDayNotFound.
	GetByDate(ctx context.Context, date time.Time) (*entity.PalletDay, error)
	// GetByDateForUpdate igual que GetByDate pero bloquea la fila del día
	// (SELECT FOR UPDATE). Usar dentro de una transacción para serializar
	// edición y cierre del mismo día.
	GetByDateForUpdate(ctx context.Context, date time.Time) (*entity.PalletDay, error)
	// FindLatestBefore devuelve el día persistido más cercano anterior a date,
	// o domain.ErrDayNotFound si no existe ninguno.
	FindLatestBefore(ctx context.Context, date time.Time) (*entity.PalletDay, error)
	// InsertIfAbsent inserta el día completo de forma atómica sobre el índice
	// único de date. Devuelve false si otro proceso lo insertó primero (el
	// llamador debe releer); nunca produce filas duplicadas ni días parciales.
	InsertIfAbsent(ctx context.Context, day *entity.PalletDay) (bool, error)
	// UpdateEntries sobrescribe los valores editables de las entradas dadas.
	UpdateEntries(ctx context.Context, entries []entity.PalletEntry) error
	// Close marca el día como cerrado de forma irreversible.
	Close(ctx context.Context, dayID string, closedAt time.Time) error
	// ListRange devuelve los días persistidos en [from, to], ascendente por fecha.
	ListRange(ctx context.Context, from, to time.Time) ([]*entity.PalletDay, error)
}
