package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/holamundo/registry-api/internal/core/ports"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func validUser() ports.CreateUserInput {
	return ports.CreateUserInput{
		Name:      "Ana Torres",
		Email:     "ana@example.com",
		Age:       30,
		Salary:    45000,
		BirthDate: time.Date(1994, 3, 10, 0, 0, 0, 0, time.UTC),
		Active:    true,
		Phone:     "(55) 1234-5678",
		Roles:     []string{"admin"},
		Metadata:  map[string]any{"nivel": float64(3)},
	}
}

func failedRules(t *testing.T, in ports.CreateUserInput) map[string]string {
	t.Helper()
	out := map[string]string{}
	for _, is := range UserRules(fixedClock).Validate(in).Issues {
		out[is.Rule] = string(is.Severity)
	}
	return out
}

func TestUserRules_ValidInput(t *testing.T) {
	res := UserRules(fixedClock).Validate(validUser())
	if len(res.Issues) != 0 {
		t.Fatalf("expected no issues, got %+v", res.Issues)
	}
}

func TestUserRules(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*ports.CreateUserInput)
		rule     string
		severity string
	}{
		{"blank name", func(in *ports.CreateUserInput) { in.Name = "  " }, "name_required", "error"},
		{"short name", func(in *ports.CreateUserInput) { in.Name = "A" }, "name_min_length", "error"},
		{"long name", func(in *ports.CreateUserInput) { in.Name = strings.Repeat("a", 101) }, "name_max_length", "error"},
		{"missing email", func(in *ports.CreateUserInput) { in.Email = "" }, "email_required", "error"},
		{"bad email", func(in *ports.CreateUserInput) { in.Email = "nope" }, "email_format", "error"},
		{"minor", func(in *ports.CreateUserInput) {
			in.Age = 17
			in.BirthDate = time.Date(2007, 1, 1, 0, 0, 0, 0, time.UTC)
		}, "age_min", "error"},
		{"too old", func(in *ports.CreateUserInput) { in.Age = 121 }, "age_max", "error"},
		{"zero salary", func(in *ports.CreateUserInput) { in.Salary = 0 }, "salary_positive", "error"},
		{"huge salary", func(in *ports.CreateUserInput) { in.Salary = 10_000_000 }, "salary_unusually_high", "warning"},
		{"future birth", func(in *ports.CreateUserInput) { in.BirthDate = fixedNow.AddDate(0, 0, 1) }, "birth_date_not_future", "error"},
		{"ancient birth", func(in *ports.CreateUserInput) { in.BirthDate = time.Date(1899, 12, 31, 0, 0, 0, 0, time.UTC) }, "birth_date_after_1900", "error"},
		{"age mismatch", func(in *ports.CreateUserInput) { in.Age = 40 }, "age_coherence", "warning"},
		{"inactive", func(in *ports.CreateUserInput) { in.Active = false }, "active_required", "error"},
		{"short phone", func(in *ports.CreateUserInput) { in.Phone = "(55) 123-45" }, "phone_digits", "error"},
		{"no roles", func(in *ports.CreateUserInput) { in.Roles = nil }, "roles_required", "error"},
		{"many roles", func(in *ports.CreateUserInput) { in.Roles = []string{"a", "b", "c", "d", "e", "f"} }, "roles_too_many", "warning"},
		{"level out of range", func(in *ports.CreateUserInput) { in.Metadata = map[string]any{"nivel": 11} }, "metadata_level_range", "error"},
		{"level not numeric", func(in *ports.CreateUserInput) { in.Metadata = map[string]any{"nivel": "high"} }, "metadata_level_range", "error"},
		{"level nil", func(in *ports.CreateUserInput) { in.Metadata = map[string]any{"nivel": nil} }, "metadata_level_range", "error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validUser()
			tc.mutate(&in)
			got := failedRules(t, in)
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

func TestUserRules_GatedRulesSkipped(t *testing.T) {
	in := validUser()
	in.Name = ""
	in.Email = ""
	in.Phone = "   "
	in.Metadata = map[string]any{"other": "x"}

	got := failedRules(t, in)
	for _, rule := range []string{"name_min_length", "email_format", "phone_digits", "metadata_level_range"} {
		if _, ok := got[rule]; ok {
			t.Errorf("rule %q must be skipped, got %v", rule, got)
		}
	}
}

func TestUserRules_LevelAcceptsStringAndNumbers(t *testing.T) {
	for _, v := range []any{"1", " 10 ", 5, float64(7), int64(2)} {
		in := validUser()
		in.Metadata = map[string]any{"nivel": v}
		if _, ok := failedRules(t, in)["metadata_level_range"]; ok {
			t.Errorf("level %v (%T) must be accepted", v, v)
		}
	}
}

func TestUserRules_AgeCoherenceTolerance(t *testing.T) {
	// Born 1994-03-10, so 30 on fixedNow.
	for _, age := range []int{29, 30, 31} {
		in := validUser()
		in.Age = age
		if _, ok := failedRules(t, in)["age_coherence"]; ok {
			t.Errorf("age %d is within tolerance", age)
		}
	}
	in := validUser()
	in.Age = 32
	res := UserRules(fixedClock).Validate(in)
	if !res.Valid() {
		t.Errorf("coherence mismatch must only warn, got errors %v", res.Errors())
	}
	if w := res.Warnings(); len(w) != 1 || !strings.Contains(w[0], "(32)") {
		t.Errorf("unexpected warnings: %v", w)
	}
}

func TestUserRules_BlankRequiredFieldsReportOneErrorEach(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ports.CreateUserInput)
		want   []string
	}{
		{"blank name", func(in *ports.CreateUserInput) { in.Name = "  " }, []string{"name is required"}},
		{"blank email", func(in *ports.CreateUserInput) { in.Email = "" }, []string{"email is required"}},
		{"one-letter name", func(in *ports.CreateUserInput) { in.Name = "A" }, []string{"name must be at least 2 characters"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validUser()
			tc.mutate(&in)
			got := UserRules(fixedClock).Validate(in).Errors()
			if strings.Join(got, "|") != strings.Join(tc.want, "|") {
				t.Errorf("errors = %q, want %q", got, tc.want)
			}
		})
	}
}
