package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/holamundo/registry-api/internal/core/domain"
	"github.com/holamundo/registry-api/internal/core/ports"
)

// FormRepository keeps forms in insertion order.
type FormRepository struct {
	mu    sync.Mutex
	forms []*domain.Form
}

func NewFormRepository() *FormRepository {
	return &FormRepository{}
}

func (r *FormRepository) Create(_ context.Context, f *domain.Form) (*domain.Form, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.forms = append(r.forms, f.Clone())
	return f.Clone(), nil
}

func (r *FormRepository) GetByID(_ context.Context, id string) (*domain.Form, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		return r.forms[i].Clone(), nil
	}
	return nil, domain.ErrFormNotFound
}

func (r *FormRepository) List(_ context.Context, filter ports.FormFilter) ([]*domain.Form, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	page := paginate(r.matching(filter.Category), filter.Page, filter.PageSize)
	out := make([]*domain.Form, 0, len(page))
	for _, f := range page {
		out = append(out, f.Clone())
	}
	return out, nil
}

func (r *FormRepository) Count(_ context.Context, filter ports.FormFilter) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.matching(filter.Category)), nil
}

func (r *FormRepository) Update(_ context.Context, f *domain.Form) (*domain.Form, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(f.ID)
	if i < 0 {
		return nil, domain.ErrFormNotFound
	}
	r.forms[i] = f.Clone()
	return f.Clone(), nil
}

func (r *FormRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.forms = append(r.forms[:i], r.forms[i+1:]...)
	return true, nil
}

func (r *FormRepository) indexOf(id string) int {
	for i, f := range r.forms {
		if f.ID == id {
			return i
		}
	}
	return -1
}

// matching filters by category, case-insensitively. Caller holds r.mu.
func (r *FormRepository) matching(category string) []*domain.Form {
	if category == "" {
		return r.forms
	}
	var out []*domain.Form
	for _, f := range r.forms {
		if strings.EqualFold(f.Category, category) {
			out = append(out, f)
		}
	}
	return out
}
