package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/LessonBookingService/internal/domain"
	"github.com/m04kA/LessonBookingService/internal/gateway"
)

// Store in-memory хранилище для локального запуска и тестов
// Данные живут до перезапуска процесса
type Store struct {
	mu       sync.RWMutex
	leads    map[string]*domain.Lead
	schedule map[string]domain.DaySchedule
	packages map[string]domain.PackageOverride
	services map[string]*domain.Service
	seq      map[string]int64 // порядок вставки при равных временах
	next     int64
	now      func() time.Time
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		leads:    make(map[string]*domain.Lead),
		schedule: make(map[string]domain.DaySchedule),
		services: make(map[string]*domain.Service),
		seq:      make(map[string]int64),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) track(id string) {
	s.next++
	s.seq[id] = s.next
}

// newer сравнение "созданный позже идёт первым"
func (s *Store) newer(idA string, a time.Time, idB string, b time.Time) bool {
	if !a.Equal(b) {
		return a.After(b)
	}
	return s.seq[idA] > s.seq[idB]
}

// Connector выдаёт соединение поверх Store с новым анонимным UID
type Connector struct {
	store *Store
}

func NewConnector(store *Store) *Connector {
	return &Connector{store: store}
}

func (c *Connector) Connect(ctx context.Context) (*gateway.Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &gateway.Connection{
		UID:      uuid.NewString(),
		Leads:    leadStore{c.store},
		Schedule: scheduleStore{c.store},
		Settings: settingsStore{c.store},
		Services: serviceStore{c.store},
	}, nil
}

type leadStore struct{ s *Store }

func (l leadStore) Create(_ context.Context, lead *domain.Lead) (string, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()

	stored := *lead
	stored.ID = uuid.NewString()
	stored.CreatedAt = l.s.now()
	stored.UpdatedAt = stored.CreatedAt
	l.s.leads[stored.ID] = &stored
	l.s.track(stored.ID)
	return stored.ID, nil
}

func (l leadStore) List(_ context.Context, filter domain.LeadFilter) ([]*domain.Lead, error) {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()

	out := make([]*domain.Lead, 0, len(l.s.leads))
	for _, lead := range l.s.leads {
		if filter.Status != nil && lead.Status != *filter.Status {
			continue
		}
		cp := *lead
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return l.s.newer(out[i].ID, out[i].CreatedAt, out[j].ID, out[j].CreatedAt)
	})
	return out, nil
}

func (l leadStore) UpdateStatus(_ context.Context, id string, status domain.LeadStatus) error {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()

	lead, ok := l.s.leads[id]
	if !ok {
		return fmt.Errorf("%w: lead %s", gateway.ErrNotFound, id)
	}
	lead.Status = status
	lead.UpdatedAt = l.s.now()
	return nil
}

func (l leadStore) BusySlots(_ context.Context, day string, statuses []domain.LeadStatus) ([]string, error) {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()

	out := make([]string, 0)
	for _, lead := range l.s.leads {
		if lead.Day != day || lead.Time == "" || !containsStatus(statuses, lead.Status) {
			continue
		}
		out = append(out, lead.Time)
	}
	sort.Strings(out)
	return out, nil
}

func containsStatus(statuses []domain.LeadStatus, s domain.LeadStatus) bool {
	for _, st := range statuses {
		if st == s {
			return true
		}
	}
	return false
}

type scheduleStore struct{ s *Store }

func (sc scheduleStore) List(_ context.Context) ([]domain.DaySchedule, error) {
	sc.s.mu.RLock()
	defer sc.s.mu.RUnlock()

	out := make([]domain.DaySchedule, 0, len(sc.s.schedule))
	for _, day := range sc.s.schedule {
		out = append(out, copySchedule(day))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (sc scheduleStore) Get(_ context.Context, day string) (*domain.DaySchedule, error) {
	sc.s.mu.RLock()
	defer sc.s.mu.RUnlock()

	entry, ok := sc.s.schedule[day]
	if !ok {
		return nil, fmt.Errorf("%w: schedule %s", gateway.ErrNotFound, day)
	}
	cp := copySchedule(entry)
	return &cp, nil
}

func (sc scheduleStore) Set(_ context.Context, day string, slots []string) error {
	sc.s.mu.Lock()
	defer sc.s.mu.Unlock()

	sc.s.schedule[day] = domain.DaySchedule{
		Date:      day,
		Slots:     append([]string(nil), slots...),
		UpdatedAt: sc.s.now(),
	}
	return nil
}

func (sc scheduleStore) Delete(_ context.Context, day string) error {
	sc.s.mu.Lock()
	defer sc.s.mu.Unlock()

	delete(sc.s.schedule, day)
	return nil
}

func copySchedule(d domain.DaySchedule) domain.DaySchedule {
	d.Slots = append([]string(nil), d.Slots...)
	return d
}

type settingsStore struct{ s *Store }

func (st settingsStore) GetPackages(_ context.Context) (map[string]domain.PackageOverride, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()

	if st.s.packages == nil {
		return nil, fmt.Errorf("%w: settings/packages", gateway.ErrNotFound)
	}
	out := make(map[string]domain.PackageOverride, len(st.s.packages))
	for k, v := range st.s.packages {
		out[k] = v
	}
	return out, nil
}

func (st settingsStore) SavePackages(_ context.Context, packages map[string]domain.PackageOverride) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	st.s.packages = make(map[string]domain.PackageOverride, len(packages))
	for k, v := range packages {
		st.s.packages[k] = v
	}
	return nil
}

type serviceStore struct{ s *Store }

func (sv serviceStore) List(_ context.Context) ([]*domain.Service, error) {
	sv.s.mu.RLock()
	defer sv.s.mu.RUnlock()

	out := make([]*domain.Service, 0, len(sv.s.services))
	for _, service := range sv.s.services {
		cp := *service
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		return sv.s.newer(out[i].ID, out[i].CreatedAt, out[j].ID, out[j].CreatedAt)
	})
	return out, nil
}

func (sv serviceStore) Create(_ context.Context, service *domain.Service) (string, error) {
	sv.s.mu.Lock()
	defer sv.s.mu.Unlock()

	stored := *service
	stored.ID = uuid.NewString()
	stored.CreatedAt = sv.s.now()
	stored.UpdatedAt = stored.CreatedAt
	sv.s.services[stored.ID] = &stored
	sv.s.track(stored.ID)
	return stored.ID, nil
}

func (sv serviceStore) Update(_ context.Context, service *domain.Service) error {
	sv.s.mu.Lock()
	defer sv.s.mu.Unlock()

	existing, ok := sv.s.services[service.ID]
	if !ok {
		return fmt.Errorf("%w: service %s", gateway.ErrNotFound, service.ID)
	}
	existing.Name = service.Name
	existing.Price = service.Price
	existing.Description = service.Description
	existing.UpdatedAt = sv.s.now()
	return nil
}

func (sv serviceStore) Delete(_ context.Context, id string) error {
	sv.s.mu.Lock()
	defer sv.s.mu.Unlock()

	if _, ok := sv.s.services[id]; !ok {
		return fmt.Errorf("%w: service %s", gateway.ErrNotFound, id)
	}
	delete(sv.s.services, id)
	return nil
}
