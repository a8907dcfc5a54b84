package ports

import (
	"context"

	"github.com/holamundo/registry-api/internal/core/domain"
)

// UserFilter carries the list/count parameters for users.
type UserFilter struct {
	Search   string // optional: case-insensitive substring of name or email
	Page     int    // 1-based
	PageSize int
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	// GetByID returns domain.ErrUserNotFound when no user has the id.
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// List returns one page of users matching filter.Search. Pages past the
	// end yield an empty slice.
	List(ctx context.Context, filter UserFilter) ([]*domain.User, error)
	// Count ignores paging and counts every user matching filter.Search.
	Count(ctx context.Context, filter UserFilter) (int, error)
	Update(ctx context.Context, u *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
