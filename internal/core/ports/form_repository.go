package ports

import (
	"context"

	"github.com/holamundo/registry-api/internal/core/domain"
)

// FormFilter carries the list/count parameters for forms.
type FormFilter struct {
	Category string // optional: case-insensitive exact match
	Page     int    // 1-based
	PageSize int
}

// FormRepository defines persistence operations for forms.
type FormRepository interface {
	Create(ctx context.Context, f *domain.Form) (*domain.Form, error)
	GetByID(ctx context.Context, id string) (*domain.Form, error)
	List(ctx context.Context, filter FormFilter) ([]*domain.Form, error)
	Count(ctx context.Context, filter FormFilter) (int, error)
	Update(ctx context.Context, f *domain.Form) (*domain.Form, error)
	Delete(ctx context.Context, id string) (bool, error)
}
