package ports

import (
	"time"

	"github.com/holamundo/registry-api/internal/core/domain"
)

// CreateUserInput is the DTO passed from the transport layer to the user use cases.
type CreateUserInput struct {
	Name           string
	Email          string
	Age            int
	Salary         float64
	BirthDate      time.Time
	Active         bool
	Phone          string
	Roles          []string
	Metadata       map[string]any
	IdempotencyKey string
}

// UserDetail is the full user view, enriched with the computed age.
type UserDetail struct {
	ID           string
	Name         string
	Email        string
	Age          int
	ComputedAge  int
	Salary       float64
	BirthDate    time.Time
	Active       bool
	Phone        string
	Roles        []string
	Metadata     map[string]any
	RegisteredAt time.Time
}

// UserResult is returned after creating a user.
type UserResult struct {
	UserDetail
	// Warnings holds the advisory validation messages raised for the request.
	Warnings []string
	// Replayed is true when the Idempotency-Key matched an earlier create.
	Replayed bool
}

// GetUserInput identifies a single user.
type GetUserInput struct {
	ID string
}

// ListUsersInput carries the list endpoint parameters.
type ListUsersInput struct {
	Page     int
	PageSize int
	Filter   string
}

// UserSummary is the lightweight view used in list responses.
type UserSummary struct {
	ID           string
	Name         string
	Email        string
	Active       bool
	RegisteredAt time.Time
}

// ListUsersResult is returned by the list use case.
type ListUsersResult struct {
	Items      []UserSummary
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

// User use cases, all expressed through the shared Handler abstraction.
type (
	CreateUserHandler   = Handler[CreateUserInput, *UserResult]
	ValidateUserHandler = Handler[CreateUserInput, domain.ValidationResult]
	GetUserHandler      = Handler[GetUserInput, *UserDetail]
	ListUsersHandler    = Handler[ListUsersInput, *ListUsersResult]
)
