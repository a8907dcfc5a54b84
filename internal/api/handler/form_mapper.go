package handler

import (
	"github.com/holamundo/registry-api/internal/core/ports"
)

const (
	msgFormCreated = "form created successfully"
	msgFormsListed = "forms retrieved successfully"
)

func toCreateFormInput(req createFormRequest, idempotencyKey string) ports.CreateFormInput {
	return ports.CreateFormInput{
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		Quantity:         req.Quantity,
		Price:            req.Price,
		Discount:         req.Discount,
		StartDate:        req.StartDate.Time,
		EndDate:          req.EndDate.Time,
		ApprovalRequired: req.ApprovalRequired,
		ApproverEmail:    req.ApproverEmail,
		Tags:             req.Tags,
		IdempotencyKey:   idempotencyKey,
	}
}

// FormSummaryView is the v2/v3 create projection.
func FormSummaryView(r *ports.FormResult) any {
	return formSummaryResponse{
		ID:         r.ID,
		Title:      r.Title,
		FinalPrice: r.FinalPrice,
		CreatedAt:  r.CreatedAt.UTC(),
		Message:    msgFormCreated,
		Warnings:   r.Warnings,
	}
}

// FormRecordView is the legacy create projection.
func FormRecordView(r *ports.FormResult) any {
	resp := toFormRecord(r.FormDetail)
	resp.Message = msgFormCreated
	resp.Warnings = r.Warnings
	return resp
}

func toFormRecord(d ports.FormDetail) formRecordResponse {
	return formRecordResponse{
		ID:               d.ID,
		Title:            d.Title,
		Description:      d.Description,
		Category:         d.Category,
		Quantity:         d.Quantity,
		Price:            d.Price,
		Discount:         d.Discount,
		FinalPrice:       d.FinalPrice,
		StartDate:        d.StartDate.UTC(),
		EndDate:          d.EndDate.UTC(),
		ApprovalRequired: d.ApprovalRequired,
		ApproverEmail:    d.ApproverEmail,
		Tags:             d.Tags,
		CreatedAt:        d.CreatedAt.UTC(),
	}
}

func toFormList(r *ports.ListFormsResult) listResponse[formListItem] {
	items := make([]formListItem, 0, len(r.Items))
	for _, f := range r.Items {
		items = append(items, formListItem{
			ID:         f.ID,
			Title:      f.Title,
			Category:   f.Category,
			FinalPrice: f.FinalPrice,
			StartDate:  f.StartDate.UTC(),
			EndDate:    f.EndDate.UTC(),
			CreatedAt:  f.CreatedAt.UTC(),
		})
	}
	return listResponse[formListItem]{
		Items:      items,
		Total:      r.Total,
		Page:       r.Page,
		PageSize:   r.PageSize,
		TotalPages: r.TotalPages,
		Message:    msgFormsListed,
	}
}
