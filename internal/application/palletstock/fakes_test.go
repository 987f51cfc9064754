package palletstock_test

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/estibas-api/internal/application/palletstock"
	"github.com/jhoicas/estibas-api/internal/domain"
	"github.com/jhoicas/estibas-api/internal/domain/entity"
	"github.com/jhoicas/estibas-api/internal/domain/repository"
	"github.com/jhoicas/estibas-api/pkg/logger"
)

// fakeStore backend en memoria para los tres puertos de persistencia. Clona en
// lectura y escribe por ID, igual que haría la BD: mutar una entidad devuelta
// no cambia nada hasta pasar por UpdateEntries.
type fakeStore struct {
	days    map[string]*entity.PalletDay // clave: fecha YYYY-MM-DD
	anchors []entity.AnchorStock
	alerts  map[entity.PalletType]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		days:   make(map[string]*entity.PalletDay),
		alerts: make(map[entity.PalletType]int),
	}
}

func dateKey(t time.Time) string { return t.Format("2006-01-02") }

func cloneDay(d *entity.PalletDay) *entity.PalletDay {
	c := *d
	c.Entries = make([]entity.PalletEntry, len(d.Entries))
	copy(c.Entries, d.Entries)
	if d.ClosedAt != nil {
		closedAt := *d.ClosedAt
		c.ClosedAt = &closedAt
	}
	return &c
}

type fakeDayRepo struct{ s *fakeStore }

func (r fakeDayRepo) GetByDate(_ context.Context, date time.Time) (*entity.PalletDay, error) {
	day, ok := r.s.days[dateKey(date)]
	if !ok {
		return nil, domain.ErrDayNotFound
	}
	return cloneDay(day), nil
}

func (r fakeDayRepo) GetByDateForUpdate(ctx context.Context, date time.Time) (*entity.PalletDay, error) {
	return r.GetByDate(ctx, date)
}

func (r fakeDayRepo) FindLatestBefore(_ context.Context, date time.Time) (*entity.PalletDay, error) {
	var latest *entity.PalletDay
	for _, day := range r.s.days {
		if day.Date.Before(date) && (latest == nil || day.Date.After(latest.Date)) {
			latest = day
		}
	}
	if latest == nil {
		return nil, domain.ErrDayNotFound
	}
	return cloneDay(latest), nil
}

func (r fakeDayRepo) InsertIfAbsent(_ context.Context, day *entity.PalletDay) (bool, error) {
	key := dateKey(day.Date)
	if _, ok := r.s.days[key]; ok {
		return false, nil
	}
	r.s.days[key] = cloneDay(day)
	return true, nil
}

func (r fakeDayRepo) UpdateEntries(_ context.Context, entries []entity.PalletEntry) error {
	for _, e := range entries {
		applied := false
		for _, day := range r.s.days {
			if day.ID != e.DayID {
				continue
			}
			for i := range day.Entries {
				if day.Entries[i].ID == e.ID {
					day.Entries[i] = e
					applied = true
				}
			}
		}
		if !applied {
			return domain.ErrDayNotFound
		}
	}
	return nil
}

func (r fakeDayRepo) Close(_ context.Context, dayID string, closedAt time.Time) error {
	for _, day := range r.s.days {
		if day.ID == dayID {
			day.Status = entity.DayStatusClosed
			day.ClosedAt = &closedAt
			return nil
		}
	}
	return domain.ErrDayNotFound
}

func (r fakeDayRepo) ListRange(_ context.Context, from, to time.Time) ([]*entity.PalletDay, error) {
	var days []*entity.PalletDay
	for _, day := range r.s.days {
		if !day.Date.Before(from) && !day.Date.After(to) {
			days = append(days, cloneDay(day))
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days, nil
}

type fakeAnchorRepo struct{ s *fakeStore }

func (r fakeAnchorRepo) List(_ context.Context) ([]entity.AnchorStock, error) {
	out := make([]entity.AnchorStock, len(r.s.anchors))
	copy(out, r.s.anchors)
	return out, nil
}

func (r fakeAnchorRepo) Replace(_ context.Context, anchors []entity.AnchorStock) error {
	r.s.anchors = make([]entity.AnchorStock, len(anchors))
	copy(r.s.anchors, anchors)
	return nil
}

type fakeAlertRepo struct{ s *fakeStore }

func (r fakeAlertRepo) List(_ context.Context) ([]entity.AlertConfig, error) {
	var configs []entity.AlertConfig
	for _, t := range entity.PalletTypes() {
		if threshold, ok := r.s.alerts[t]; ok {
			configs = append(configs, entity.AlertConfig{Type: t, CriticalThreshold: threshold})
		}
	}
	return configs, nil
}

func (r fakeAlertRepo) Upsert(_ context.Context, configs []entity.AlertConfig) error {
	for _, cfg := range configs {
		r.s.alerts[cfg.Type] = cfg.CriticalThreshold
	}
	return nil
}

type fakeTxRunner struct{ s *fakeStore }

func (r fakeTxRunner) Run(ctx context.Context, fn func(
	dayRepo repository.PalletDayRepository,
	anchorRepo repository.AnchorStockRepository,
	alertRepo repository.AlertConfigRepository,
) error) error {
	return fn(fakeDayRepo{r.s}, fakeAnchorRepo{r.s}, fakeAlertRepo{r.s})
}

// newTestUseCase caso de uso cableado contra el backend en memoria.
func newTestUseCase() (*palletstock.UseCase, *fakeStore) {
	s := newFakeStore()
	uc := palletstock.NewUseCase(fakeTxRunner{s}, fakeDayRepo{s}, fakeAnchorRepo{s}, fakeAlertRepo{s}, logger.Nop())
	return uc, s
}

// withAnchor configura el ancla directamente en el backend.
func withAnchor(s *fakeStore, startDate time.Time, stocks map[entity.PalletType]int) {
	s.anchors = s.anchors[:0]
	for _, t := range entity.PalletTypes() {
		s.anchors = append(s.anchors, entity.AnchorStock{
			Type:         t,
			StartDate:    startDate,
			InitialStock: stocks[t],
		})
	}
}
