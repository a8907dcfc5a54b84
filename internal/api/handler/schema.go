package handler

import "time"

const phoneNotProvided = "not provided"

// ErrorResponse is the envelope returned on 4xx/5xx responses.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse is returned with 400 when a create request has
// blocking issues.
type ValidationErrorResponse struct {
	Message   string    `json:"message"`
	Errors    []string  `json:"errors"`
	Warnings  []string  `json:"warnings"`
	Timestamp time.Time `json:"timestamp"`
}

type validationResponse struct {
	Valid       bool      `json:"valid"`
	Errors      []string  `json:"errors"`
	Warnings    []string  `json:"warnings"`
	ValidatedAt time.Time `json:"validated_at"`
}

type listResponse[T any] struct {
	Items      []T    `json:"items"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalPages int    `json:"total_pages"`
	Message    string `json:"message"`
}

// --- Users ---

type createUserRequest struct {
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Age       int            `json:"age"`
	Salary    float64        `json:"salary"`
	BirthDate Date           `json:"birth_date" swaggertype:"string" example:"1990-05-20"`
	Active    bool           `json:"active"`
	Phone     string         `json:"phone"`
	Roles     []string       `json:"roles"`
	Metadata  map[string]any `json:"metadata"`
}

type userSummaryResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	ComputedAge  int       `json:"computed_age"`
	RegisteredAt time.Time `json:"registered_at"`
	Message      string    `json:"message"`
	Warnings     []string  `json:"warnings,omitempty"`
}

type userRecordResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Age          int            `json:"age"`
	ComputedAge  int            `json:"computed_age"`
	Salary       float64        `json:"salary"`
	BirthDate    time.Time      `json:"birth_date"`
	Active       bool           `json:"active"`
	Phone        string         `json:"phone"`
	Roles        []string       `json:"roles"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	RegisteredAt time.Time      `json:"registered_at"`
	Message      string         `json:"message,omitempty"`
	Warnings     []string       `json:"warnings,omitempty"`
}

type userListItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Active       bool      `json:"active"`
	RegisteredAt time.Time `json:"registered_at"`
}

// PageQuery is embedded by the list queries and must stay exported for
// echo's binder. pageSize is an alias of page_size; page_size wins.
type PageQuery struct {
	Page          int `query:"page"`
	PageSize      int `query:"page_size"`
	PageSizeCamel int `query:"pageSize"`
}

func (q PageQuery) size() int {
	if q.PageSize != 0 {
		return q.PageSize
	}
	return q.PageSizeCamel
}

type listUsersQuery struct {
	PageQuery
	Filter string `query:"filter" validate:"max=100"`
}

// --- Forms ---

type createFormRequest struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	Quantity         int      `json:"quantity"`
	Price            float64  `json:"price"`
	Discount         float64  `json:"discount"`
	StartDate        Date     `json:"start_date" swaggertype:"string" example:"2025-01-15"`
	EndDate          Date     `json:"end_date" swaggertype:"string" example:"2025-03-15"`
	ApprovalRequired bool     `json:"approval_required"`
	ApproverEmail    string   `json:"approver_email"`
	Tags             []string `json:"tags"`
}

type formSummaryResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	FinalPrice float64   `json:"final_price"`
	CreatedAt  time.Time `json:"created_at"`
	Message    string    `json:"message"`
	Warnings   []string  `json:"warnings,omitempty"`
}

type formRecordResponse struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	Category         string    `json:"category,omitempty"`
	Quantity         int       `json:"quantity"`
	Price            float64   `json:"price"`
	Discount         float64   `json:"discount"`
	FinalPrice       float64   `json:"final_price"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	ApprovalRequired bool      `json:"approval_required"`
	ApproverEmail    string    `json:"approver_email,omitempty"`
	Tags             []string  `json:"tags"`
	CreatedAt        time.Time `json:"created_at"`
	Message          string    `json:"message,omitempty"`
	Warnings         []string  `json:"warnings,omitempty"`
}

type formListItem struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Category   string    `json:"category,omitempty"`
	FinalPrice float64   `json:"final_price"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	CreatedAt  time.Time `json:"created_at"`
}

type listFormsQuery struct {
	PageQuery
	Category string `query:"category" validate:"max=50"`
}
