package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/holamundo/registry-api/internal/core/domain"
	"github.com/holamundo/registry-api/internal/core/ports"
)

const (
	minUserAge         = 18
	maxUserAge         = 120
	salaryWarnAt       = 10_000_000
	maxRecommendedRole = 5
	minPhoneDigits     = 10

	// MetadataLevelKey is the metadata entry whose value must be a level 1..10.
	MetadataLevelKey = "nivel"
)

var earliestBirthDate = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

var phoneSeparators = strings.NewReplacer("-", "", " ", "", "(", "", ")", "")

type userInput = ports.CreateUserInput

// UserRules returns the rule set applied to user create requests.
func UserRules(now Clock) *Ruleset[userInput] {
	return NewRuleset(
		Error("name_required", "name", "name is required",
			func(in userInput) bool { return present(in.Name) }),
		Error("name_min_length", "name", "name must be at least 2 characters",
			func(in userInput) bool { return runeLen(in.Name) >= 2 }).
			When(func(in userInput) bool { return present(in.Name) }),
		Error("name_max_length", "name", "name must not exceed 100 characters",
			func(in userInput) bool { return runeLen(in.Name) <= 100 }),

		Error("email_required", "email", "email is required",
			func(in userInput) bool { return present(in.Email) }),
		Error("email_format", "email", "email is not a valid address",
			func(in userInput) bool { return IsEmail(in.Email) }).
			When(func(in userInput) bool { return present(in.Email) }),

		Error("age_min", "age", fmt.Sprintf("age must be at least %d", minUserAge),
			func(in userInput) bool { return in.Age >= minUserAge }),
		Error("age_max", "age", fmt.Sprintf("age must be at most %d", maxUserAge),
			func(in userInput) bool { return in.Age <= maxUserAge }),

		Error("salary_positive", "salary", "salary must be greater than 0",
			func(in userInput) bool { return in.Salary > 0 }),
		Warning("salary_unusually_high", "salary", "salary looks unusually high",
			func(in userInput) bool { return in.Salary < salaryWarnAt }),

		Error("birth_date_not_future", "birth_date", "birth date cannot be in the future",
			func(in userInput) bool { return !in.BirthDate.After(now()) }),
		Error("birth_date_after_1900", "birth_date", "birth date cannot be before 1900",
			func(in userInput) bool { return in.BirthDate.After(earliestBirthDate) }),
		Warning("age_coherence", "age", "",
			func(in userInput) bool { return ageMatchesBirthDate(in.Age, in.BirthDate, now()) }).
			WithMessage(func(in userInput) string {
				return fmt.Sprintf("stated age (%d) does not match the birth date", in.Age)
			}),

		Error("active_required", "active", "user must be active to register",
			func(in userInput) bool { return in.Active }),

		Error("phone_digits", "phone", fmt.Sprintf("phone must have at least %d digits", minPhoneDigits),
			func(in userInput) bool { return runeLen(phoneSeparators.Replace(in.Phone)) >= minPhoneDigits }).
			When(func(in userInput) bool { return present(in.Phone) }),

		Error("roles_required", "roles", "at least one role must be assigned",
			func(in userInput) bool { return len(in.Roles) > 0 }),
		Warning("roles_too_many", "roles", fmt.Sprintf("assigning more than %d roles is not recommended", maxRecommendedRole),
			func(in userInput) bool { return len(in.Roles) <= maxRecommendedRole }),

		Error("metadata_level_range", "metadata."+MetadataLevelKey, "metadata level must be between 1 and 10",
			func(in userInput) bool { return validLevel(in.Metadata[MetadataLevelKey]) }).
			When(func(in userInput) bool {
				_, ok := in.Metadata[MetadataLevelKey]
				return ok
			}),
	)
}

// ageMatchesBirthDate allows the stated age to be one year off the computed one.
func ageMatchesBirthDate(stated int, birth, now time.Time) bool {
	diff := domain.Age(birth, now) - stated
	return diff >= -1 && diff <= 1
}

// validLevel accepts integers 1..10 given either as a JSON number or a string.
func validLevel(v any) bool {
	if v == nil {
		return false
	}
	n, err := strconv.Atoi(strings.TrimSpace(fmt.Sprint(v)))
	return err == nil && n >= 1 && n <= 10
}
