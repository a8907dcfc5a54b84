package ports

import (
	"time"

	"github.com/holamundo/registry-api/internal/core/domain"
)

// CreateFormInput is the DTO passed from the transport layer to the form use cases.
type CreateFormInput struct {
	Title            string
	Description      string
	Category         string
	Quantity         int
	Price            float64
	Discount         float64
	StartDate        time.Time
	EndDate          time.Time
	ApprovalRequired bool
	ApproverEmail    string
	Tags             []string
	IdempotencyKey   string
}

// FormDetail is the full form view, enriched with the final price.
type FormDetail struct {
	ID               string
	Title            string
	Description      string
	Category         string
	Quantity         int
	Price            float64
	FinalPrice       float64
	Discount         float64
	StartDate        time.Time
	EndDate          time.Time
	ApprovalRequired bool
	ApproverEmail    string
	Tags             []string
	CreatedAt        time.Time
}

// FormResult is returned after creating a form.
type FormResult struct {
	FormDetail
	Warnings []string
	Replayed bool
}

// GetFormInput identifies a single form.
type GetFormInput struct {
	ID string
}

// ListFormsInput carries the list endpoint parameters.
type ListFormsInput struct {
	Page     int
	PageSize int
	Category string
}

// FormSummary is the lightweight view used in list responses.
type FormSummary struct {
	ID         string
	Title      string
	Category   string
	FinalPrice float64
	StartDate  time.Time
	EndDate    time.Time
	CreatedAt  time.Time
}

// ListFormsResult is returned by the list use case.
type ListFormsResult struct {
	Items      []FormSummary
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

type (
	CreateFormHandler   = Handler[CreateFormInput, *FormResult]
	ValidateFormHandler = Handler[CreateFormInput, domain.ValidationResult]
	GetFormHandler      = Handler[GetFormInput, *FormDetail]
	ListFormsHandler    = Handler[ListFormsInput, *ListFormsResult]
)
