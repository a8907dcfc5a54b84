package handler

import (
	"github.com/holamundo/registry-api/internal/core/ports"
)

const (
	msgUserCreated = "user created successfully"
	msgUsersListed = "users retrieved successfully"
)

// --- Request → Service input ---

func toCreateUserInput(req createUserRequest, idempotencyKey string) ports.CreateUserInput {
	return ports.CreateUserInput{
		Name:           req.Name,
		Email:          req.Email,
		Age:            req.Age,
		Salary:         req.Salary,
		BirthDate:      req.BirthDate.Time,
		Active:         req.Active,
		Phone:          req.Phone,
		Roles:          req.Roles,
		Metadata:       req.Metadata,
		IdempotencyKey: idempotencyKey,
	}
}

// --- Service result → HTTP response ---

// UserSummaryView is the v2/v3 create projection.
func UserSummaryView(r *ports.UserResult) any {
	return userSummaryResponse{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		ComputedAge:  r.ComputedAge,
		RegisteredAt: r.RegisteredAt.UTC(),
		Message:      msgUserCreated,
		Warnings:     r.Warnings,
	}
}

// UserRecordView is the legacy create projection: the full stored record.
func UserRecordView(r *ports.UserResult) any {
	resp := toUserRecord(r.UserDetail)
	resp.Message = msgUserCreated
	resp.Warnings = r.Warnings
	return resp
}

func toUserRecord(d ports.UserDetail) userRecordResponse {
	phone := d.Phone
	if phone == "" {
		phone = phoneNotProvided
	}
	return userRecordResponse{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		Age:          d.Age,
		ComputedAge:  d.ComputedAge,
		Salary:       d.Salary,
		BirthDate:    d.BirthDate.UTC(),
		Active:       d.Active,
		Phone:        phone,
		Roles:        d.Roles,
		Metadata:     d.Metadata,
		RegisteredAt: d.RegisteredAt.UTC(),
	}
}

func toUserList(r *ports.ListUsersResult) listResponse[userListItem] {
	items := make([]userListItem, 0, len(r.Items))
	for _, u := range r.Items {
		items = append(items, userListItem{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			Active:       u.Active,
			RegisteredAt: u.RegisteredAt.UTC(),
		})
	}
	return listResponse[userListItem]{
		Items:      items,
		Total:      r.Total,
		Page:       r.Page,
		PageSize:   r.PageSize,
		TotalPages: r.TotalPages,
		Message:    msgUsersListed,
	}
}
