package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/holamundo/registry-api/internal/core/domain"
	"github.com/holamundo/registry-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu        sync.Mutex
	users     []*domain.User
	createErr error         // if set, Create returns this error
	getErr    error         // if set, GetByID returns this error
	delay     time.Duration // Create latency, to widen race windows
	countErr  error
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	time.Sleep(r.delay)
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.users = append(r.users, u.Clone())
	return u.Clone(), nil
}

func (r *stubUserRepo) stored() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

func (r *stubUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	for _, u := range r.users {
		if u.ID == id {
			return u.Clone(), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) match(f ports.UserFilter) []*domain.User {
	var out []*domain.User
	q := strings.ToLower(f.Search)
	for _, u := range r.users {
		if q == "" || strings.Contains(strings.ToLower(u.Name), q) || strings.Contains(strings.ToLower(u.Email), q) {
			out = append(out, u.Clone())
		}
	}
	return out
}

func (r *stubUserRepo) List(_ context.Context, f ports.UserFilter) ([]*domain.User, error) {
	return pageOf(r.match(f), f.Page, f.PageSize), nil
}

func (r *stubUserRepo) Count(_ context.Context, f ports.UserFilter) (int, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	return len(r.match(f)), nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *stubUserRepo) Delete(_ context.Context, _ string) (bool, error) { return false, nil }

func (r *stubUserRepo) ExistsByEmail(_ context.Context, _ string) (bool, error) { return false, nil }

type stubFormRepo struct {
	mu        sync.Mutex
	forms     []*domain.Form
	createErr error
	delay     time.Duration
}

func (r *stubFormRepo) Create(_ context.Context, f *domain.Form) (*domain.Form, error) {
	time.Sleep(r.delay)
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.forms = append(r.forms, f.Clone())
	return f.Clone(), nil
}

func (r *stubFormRepo) stored() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}

func (r *stubFormRepo) GetByID(_ context.Context, id string) (*domain.Form, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.forms {
		if f.ID == id {
			return f.Clone(), nil
		}
	}
	return nil, domain.ErrFormNotFound
}

func (r *stubFormRepo) match(filter ports.FormFilter) []*domain.Form {
	var out []*domain.Form
	for _, f := range r.forms {
		if filter.Category == "" || strings.EqualFold(f.Category, filter.Category) {
			out = append(out, f.Clone())
		}
	}
	return out
}

func (r *stubFormRepo) List(_ context.Context, f ports.FormFilter) ([]*domain.Form, error) {
	return pageOf(r.match(f), f.Page, f.PageSize), nil
}

func (r *stubFormRepo) Count(_ context.Context, f ports.FormFilter) (int, error) {
	return len(r.match(f)), nil
}

func (r *stubFormRepo) Update(_ context.Context, f *domain.Form) (*domain.Form, error) {
	return f, nil
}

func (r *stubFormRepo) Delete(_ context.Context, _ string) (bool, error) { return false, nil }

func pageOf[T any](items []T, page, size int) []T {
	skip := (page - 1) * size
	if skip >= len(items) {
		return []T{}
	}
	end := skip + size
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}

// stubIdempotency is a thread-safe IdempotencyStore. reserved is closed on
// the first successful reservation.
type stubIdempotency struct {
	mu         sync.Mutex
	records    map[string]ports.IdempotencyRecord
	reserveErr error
	reserved   chan struct{}
	signalled  bool
}

func newStubIdempotency() *stubIdempotency {
	return &stubIdempotency{records: map[string]ports.IdempotencyRecord{}, reserved: make(chan struct{})}
}

func (s *stubIdempotency) Reserve(_ context.Context, scope, key, fp string) (ports.IdempotencyRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reserveErr != nil {
		return ports.IdempotencyRecord{}, false, s.reserveErr
	}
	if rec, ok := s.records[scope+":"+key]; ok {
		return rec, false, nil
	}
	rec := ports.IdempotencyRecord{Fingerprint: fp}
	s.records[scope+":"+key] = rec
	if !s.signalled {
		s.signalled = true
		close(s.reserved)
	}
	return rec, true, nil
}

func (s *stubIdempotency) Remember(_ context.Context, scope, key, fp, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[scope+":"+key] = ports.IdempotencyRecord{Fingerprint: fp, EntityID: id}
	return nil
}

func (s *stubIdempotency) Release(_ context.Context, scope, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, scope+":"+key)
	return nil
}

func (s *stubIdempotency) record(scope, key string) (ports.IdempotencyRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[scope+":"+key]
	return rec, ok
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

var testNow = time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

func testClock() time.Time { return testNow }
