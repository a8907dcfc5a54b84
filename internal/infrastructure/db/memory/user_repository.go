package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/holamundo/registry-api/internal/core/domain"
	"github.com/holamundo/registry-api/internal/core/ports"
)

// UserRepository keeps users in insertion order.
type UserRepository struct {
	mu    sync.Mutex
	users []*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, u.Clone())
	return u.Clone(), nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		return r.users[i].Clone(), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) List(_ context.Context, filter ports.UserFilter) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	page := paginate(r.matching(filter.Search), filter.Page, filter.PageSize)
	out := make([]*domain.User, 0, len(page))
	for _, u := range page {
		out = append(out, u.Clone())
	}
	return out, nil
}

func (r *UserRepository) Count(_ context.Context, filter ports.UserFilter) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.matching(filter.Search)), nil
}

// Update replaces the stored user with the same ID.
func (r *UserRepository) Update(_ context.Context, u *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(u.ID)
	if i < 0 {
		return nil, domain.ErrUserNotFound
	}
	r.users[i] = u.Clone()
	return u.Clone(), nil
}

func (r *UserRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.users = append(r.users[:i], r.users[i+1:]...)
	return true, nil
}

func (r *UserRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

// caller holds r.mu
func (r *UserRepository) indexOf(id string) int {
	for i, u := range r.users {
		if u.ID == id {
			return i
		}
	}
	return -1
}

// matching returns the users whose name or email contains search, ignoring
// case. An empty search matches everyone. Caller holds r.mu.
func (r *UserRepository) matching(search string) []*domain.User {
	if search == "" {
		return r.users
	}
	q := strings.ToLower(search)
	var out []*domain.User
	for _, u := range r.users {
		if strings.Contains(strings.ToLower(u.Name), q) || strings.Contains(strings.ToLower(u.Email), q) {
			out = append(out, u)
		}
	}
	return out
}
