package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/holamundo/registry-api/internal/core/domain"
	"github.com/holamundo/registry-api/internal/core/ports"
)

func newUser(in ports.CreateUserInput, now time.Time) *domain.User {
	u := &domain.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		Age:          in.Age,
		Salary:       in.Salary,
		BirthDate:    in.BirthDate,
		Active:       in.Active,
		Phone:        in.Phone,
		Roles:        append([]string{}, in.Roles...),
		Metadata:     make(map[string]any, len(in.Metadata)),
		RegisteredAt: now.UTC(),
	}
	for k, v := range in.Metadata {
		u.Metadata[k] = v
	}
	return u
}

func toUserDetail(u *domain.User, today time.Time) ports.UserDetail {
	return ports.UserDetail{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Age:          u.Age,
		ComputedAge:  u.AgeAt(today),
		Salary:       u.Salary,
		BirthDate:    u.BirthDate,
		Active:       u.Active,
		Phone:        u.Phone,
		Roles:        u.Roles,
		Metadata:     u.Metadata,
		RegisteredAt: u.RegisteredAt,
	}
}

func toUserSummary(u *domain.User) ports.UserSummary {
	return ports.UserSummary{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Active:       u.Active,
		RegisteredAt: u.RegisteredAt,
	}
}
