package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/holamundo/registry-api/internal/core/ports"
)

func validForm() ports.CreateFormInput {
	return ports.CreateFormInput{
		Title:            "Office chairs",
		Description:      "Ergonomic chairs for the second floor",
		Category:         "furniture",
		Quantity:         12,
		Price:            250,
		Discount:         10,
		StartDate:        fixedNow.AddDate(0, 0, 1),
		EndDate:          fixedNow.AddDate(0, 1, 0),
		ApprovalRequired: true,
		ApproverEmail:    "boss@example.com",
		Tags:             []string{"office"},
	}
}

func failedFormRules(in ports.CreateFormInput) map[string]string {
	out := map[string]string{}
	for _, is := range FormRules(fixedClock).Validate(in).Issues {
		out[is.Rule] = string(is.Severity)
	}
	return out
}

func TestFormRules_ValidInput(t *testing.T) {
	res := FormRules(fixedClock).Validate(validForm())
	if len(res.Issues) != 0 {
		t.Fatalf("expected no issues, got %+v", res.Issues)
	}
}

func TestFormRules(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*ports.CreateFormInput)
		rule     string
		severity string
	}{
		{"missing title", func(in *ports.CreateFormInput) { in.Title = "" }, "title_required", "error"},
		{"short title", func(in *ports.CreateFormInput) { in.Title = "ab" }, "title_min_length", "error"},
		{"long title", func(in *ports.CreateFormInput) { in.Title = strings.Repeat("t", 201) }, "title_max_length", "error"},
		{"long description", func(in *ports.CreateFormInput) { in.Description = strings.Repeat("d", 501) }, "description_max_length", "warning"},
		{"long category", func(in *ports.CreateFormInput) { in.Category = strings.Repeat("c", 51) }, "category_max_length", "error"},
		{"zero quantity", func(in *ports.CreateFormInput) { in.Quantity = 0 }, "quantity_positive", "error"},
		{"huge quantity", func(in *ports.CreateFormInput) { in.Quantity = 10_000 }, "quantity_unusually_high", "warning"},
		{"negative price", func(in *ports.CreateFormInput) { in.Price = -1 }, "price_positive", "error"},
		{"huge price", func(in *ports.CreateFormInput) { in.Price = 1_000_000 }, "price_unusually_high", "warning"},
		{"discount over 100", func(in *ports.CreateFormInput) { in.Discount = 101 }, "discount_range", "error"},
		{"negative discount", func(in *ports.CreateFormInput) { in.Discount = -0.5 }, "discount_range", "error"},
		{"high discount", func(in *ports.CreateFormInput) { in.Discount = 85 }, "discount_high", "warning"},
		{"start in past", func(in *ports.CreateFormInput) { in.StartDate = fixedNow.AddDate(0, 0, -1) }, "start_date_past", "warning"},
		{"end equals start", func(in *ports.CreateFormInput) { in.EndDate = in.StartDate }, "end_after_start", "error"},
		{"end before start", func(in *ports.CreateFormInput) { in.EndDate = in.StartDate.Add(-time.Hour) }, "end_after_start", "error"},
		{"period over a year", func(in *ports.CreateFormInput) { in.EndDate = in.StartDate.AddDate(0, 0, 366) }, "period_over_year", "warning"},
		{"approver missing", func(in *ports.CreateFormInput) { in.ApproverEmail = "" }, "approver_email_required", "error"},
		{"approver invalid", func(in *ports.CreateFormInput) { in.ApproverEmail = "boss" }, "approver_email_format", "error"},
		{"no tags", func(in *ports.CreateFormInput) { in.Tags = nil }, "tags_empty", "warning"},
		{"too many tags", func(in *ports.CreateFormInput) {
			in.Tags = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"}
		}, "tags_max", "error"},
		{"blank tag", func(in *ports.CreateFormInput) { in.Tags = []string{"ok", " "} }, "tags_not_blank", "error"},
		{"full discount", func(in *ports.CreateFormInput) { in.Discount = 100 }, "final_price_positive", "error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validForm()
			tc.mutate(&in)
			got := failedFormRules(in)
			sev, ok := got[tc.rule]
			if !ok {
				t.Fatalf("expected rule %q to fail, got %v", tc.rule, got)
			}
			if sev != tc.severity {
				t.Errorf("rule %q severity = %s, want %s", tc.rule, sev, tc.severity)
			}
		})
	}
}

func TestFormRules_StartTodayIsNotPast(t *testing.T) {
	in := validForm()
	in.StartDate = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	if _, ok := failedFormRules(in)["start_date_past"]; ok {
		t.Error("a start date earlier today must not be treated as past")
	}
}

func TestFormRules_LongPeriodOnlyWarns(t *testing.T) {
	in := validForm()
	in.EndDate = in.StartDate.AddDate(2, 0, 0)
	res := FormRules(fixedClock).Validate(in)
	if !res.Valid() {
		t.Errorf("long period must not block, errors: %v", res.Errors())
	}
}

func TestFormRules_ApproverIgnoredWithoutApproval(t *testing.T) {
	in := validForm()
	in.ApprovalRequired = false
	in.ApproverEmail = "not-an-email"
	got := failedFormRules(in)
	if _, ok := got["approver_email_required"]; ok {
		t.Error("approver rules must not apply when approval is not required")
	}
	if _, ok := got["approver_email_format"]; ok {
		t.Error("approver rules must not apply when approval is not required")
	}
}

func TestFormRules_BlankRequiredFieldsReportOneErrorEach(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ports.CreateFormInput)
		want   []string
	}{
		{"blank title", func(in *ports.CreateFormInput) { in.Title = "" }, []string{"title is required"}},
		{"blank approver", func(in *ports.CreateFormInput) { in.ApproverEmail = " " },
			[]string{"approver email is required when approval is required"}},
		{"bad approver", func(in *ports.CreateFormInput) { in.ApproverEmail = "boss" },
			[]string{"approver email is not a valid address"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validForm()
			tc.mutate(&in)
			got := FormRules(fixedClock).Validate(in).Errors()
			if strings.Join(got, "|") != strings.Join(tc.want, "|") {
				t.Errorf("errors = %q, want %q", got, tc.want)
			}
		})
	}
}
