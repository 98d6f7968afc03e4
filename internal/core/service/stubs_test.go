package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/placementiq/placement-api/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory collection shared by the stub repositories. It keeps insertion
// order like the Mongo repositories do.
// ---------------------------------------------------------------------------

type memCollection[T any] struct {
	mu        sync.Mutex
	items     []*T
	idOf      func(*T) string
	notFound  error
	createErr error
	listErr   error
	creates   int
}

func newMemCollection[T any](idOf func(*T) string, notFound error) *memCollection[T] {
	return &memCollection[T]{idOf: idOf, notFound: notFound}
}

func (m *memCollection[T]) Create(_ context.Context, item *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	clone := *item
	m.items = append(m.items, &clone)
	m.creates++
	return nil
}

func (m *memCollection[T]) CreateMany(ctx context.Context, items []*T) error {
	for _, item := range items {
		if err := m.Create(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func (m *memCollection[T]) FindByID(_ context.Context, id string) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, item := range m.items {
		if m.idOf(item) == id {
			clone := *item
			return &clone, nil
		}
	}
	return nil, m.notFound
}

func (m *memCollection[T]) List(_ context.Context, opts domain.ListOptions) ([]*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := []*T{}
	for i, item := range m.items {
		if i < opts.Offset {
			continue
		}
		if opts.Limit > 0 && len(out) >= opts.Limit {
			break
		}
		clone := *item
		out = append(out, &clone)
	}
	return out, nil
}

// replace swaps the stored item with the same id, keeping its position.
func (m *memCollection[T]) replace(item *T, keep func(stored, next *T)) (*T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, stored := range m.items {
		if m.idOf(stored) == m.idOf(item) {
			next := *item
			keep(stored, &next)
			m.items[i] = &next
			clone := next
			return &clone, nil
		}
	}
	return nil, m.notFound
}

func (m *memCollection[T]) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, item := range m.items {
		if m.idOf(item) == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return m.notFound
}

func (m *memCollection[T]) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.items)), nil
}

func (m *memCollection[T]) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// ---------------------------------------------------------------------------
// Entity repositories
// ---------------------------------------------------------------------------

type stubStudentRepo struct{ *memCollection[domain.Student] }

func newStubStudentRepo() *stubStudentRepo {
	return &stubStudentRepo{newMemCollection(func(s *domain.Student) string { return s.ID }, domain.ErrStudentNotFound)}
}

func (r *stubStudentRepo) Update(_ context.Context, s *domain.Student) (*domain.Student, error) {
	return r.replace(s, func(stored, next *domain.Student) { next.CreatedAt = stored.CreatedAt })
}

type stubCompanyRepo struct{ *memCollection[domain.Company] }

func newStubCompanyRepo() *stubCompanyRepo {
	return &stubCompanyRepo{newMemCollection(func(c *domain.Company) string { return c.ID }, domain.ErrCompanyNotFound)}
}

func (r *stubCompanyRepo) Update(_ context.Context, c *domain.Company) (*domain.Company, error) {
	return r.replace(c, func(stored, next *domain.Company) { next.CreatedAt = stored.CreatedAt })
}

type stubDriveRepo struct{ *memCollection[domain.Drive] }

func newStubDriveRepo() *stubDriveRepo {
	return &stubDriveRepo{newMemCollection(func(d *domain.Drive) string { return d.ID }, domain.ErrDriveNotFound)}
}

func (r *stubDriveRepo) Update(_ context.Context, d *domain.Drive) (*domain.Drive, error) {
	return r.replace(d, func(stored, next *domain.Drive) { next.CreatedAt = stored.CreatedAt })
}

type stubOfferRepo struct{ *memCollection[domain.Offer] }

func newStubOfferRepo() *stubOfferRepo {
	return &stubOfferRepo{newMemCollection(func(o *domain.Offer) string { return o.ID }, domain.ErrOfferNotFound)}
}

// ---------------------------------------------------------------------------
// Cache and lock
// ---------------------------------------------------------------------------

type stubCache struct {
	mu            sync.Mutex
	entries       map[string][]byte
	hits          int
	invalidations int
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[string][]byte)}
}

func (c *stubCache) Get(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(raw, dst)
}

func (c *stubCache) Set(_ context.Context, key string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *stubCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string][]byte)
	c.invalidations++
	return nil
}

type stubLock struct {
	held     bool
	released int
}

func (l *stubLock) Acquire(context.Context) (bool, error) {
	if l.held {
		return false, nil
	}
	l.held = true
	return true, nil
}

func (l *stubLock) Release(context.Context) error {
	l.held = false
	l.released++
	return nil
}
