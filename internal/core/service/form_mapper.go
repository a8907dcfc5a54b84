package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/holamundo/registry-api/internal/core/domain"
	"github.com/holamundo/registry-api/internal/core/ports"
)

func newForm(in ports.CreateFormInput, now time.Time) *domain.Form {
	return &domain.Form{
		ID:               uuid.NewString(),
		Title:            in.Title,
		Description:      in.Description,
		Category:         in.Category,
		Quantity:         in.Quantity,
		Price:            in.Price,
		Discount:         in.Discount,
		StartDate:        in.StartDate,
		EndDate:          in.EndDate,
		ApprovalRequired: in.ApprovalRequired,
		ApproverEmail:    in.ApproverEmail,
		Tags:             append([]string{}, in.Tags...),
		CreatedAt:        now.UTC(),
	}
}

func toFormDetail(f *domain.Form) ports.FormDetail {
	return ports.FormDetail{
		ID:               f.ID,
		Title:            f.Title,
		Description:      f.Description,
		Category:         f.Category,
		Quantity:         f.Quantity,
		Price:            f.Price,
		FinalPrice:       f.FinalPrice(),
		Discount:         f.Discount,
		StartDate:        f.StartDate,
		EndDate:          f.EndDate,
		ApprovalRequired: f.ApprovalRequired,
		ApproverEmail:    f.ApproverEmail,
		Tags:             f.Tags,
		CreatedAt:        f.CreatedAt,
	}
}

func toFormSummary(f *domain.Form) ports.FormSummary {
	return ports.FormSummary{
		ID:         f.ID,
		Title:      f.Title,
		Category:   f.Category,
		FinalPrice: f.FinalPrice(),
		StartDate:  f.StartDate,
		EndDate:    f.EndDate,
		CreatedAt:  f.CreatedAt,
	}
}
