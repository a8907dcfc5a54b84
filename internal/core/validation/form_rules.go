package validation

import (
	"fmt"
	"time"

	"github.com/holamundo/registry-api/internal/core/domain"
	"github.com/holamundo/registry-api/internal/core/ports"
)

const (
	maxDescriptionLen = 500
	quantityWarnAt    = 10_000
	priceWarnAt       = 1_000_000
	discountWarnAbove = 80
	maxTags           = 10
	maxCategoryLen    = 50
	maxPeriod         = 365 * 24 * time.Hour
)

type formInput = ports.CreateFormInput

// FormRules returns the rule set applied to form create requests.
func FormRules(now Clock) *Ruleset[formInput] {
	return NewRuleset(
		Error("title_required", "title", "title is required",
			func(in formInput) bool { return present(in.Title) }),
		Error("title_min_length", "title", "title must be at least 3 characters",
			func(in formInput) bool { return runeLen(in.Title) >= 3 }).
			When(func(in formInput) bool { return present(in.Title) }),
		Error("title_max_length", "title", "title must not exceed 200 characters",
			func(in formInput) bool { return runeLen(in.Title) <= 200 }),

		Warning("description_max_length", "description", fmt.Sprintf("description exceeds %d characters", maxDescriptionLen),
			func(in formInput) bool { return runeLen(in.Description) <= maxDescriptionLen }).
			When(func(in formInput) bool { return present(in.Description) }),

		Error("category_max_length", "category", fmt.Sprintf("category must not exceed %d characters", maxCategoryLen),
			func(in formInput) bool { return runeLen(in.Category) <= maxCategoryLen }),

		Error("quantity_positive", "quantity", "quantity must be greater than 0",
			func(in formInput) bool { return in.Quantity > 0 }),
		Warning("quantity_unusually_high", "quantity", "quantity looks unusually high",
			func(in formInput) bool { return in.Quantity < quantityWarnAt }),

		Error("price_positive", "price", "price must be positive",
			func(in formInput) bool { return in.Price > 0 }),
		Warning("price_unusually_high", "price", "price looks unusually high",
			func(in formInput) bool { return in.Price < priceWarnAt }),

		Error("discount_range", "discount", "discount must be between 0 and 100",
			func(in formInput) bool { return in.Discount >= 0 && in.Discount <= 100 }),
		Warning("discount_high", "discount", fmt.Sprintf("discount is very high (over %d%%)", discountWarnAbove),
			func(in formInput) bool { return in.Discount <= discountWarnAbove }),

		Warning("start_date_past", "start_date", "start date is before today",
			func(in formInput) bool { return !in.StartDate.Before(startOfDay(now())) }),
		Error("end_after_start", "end_date", "end date must be after start date",
			func(in formInput) bool { return in.EndDate.After(in.StartDate) }),
		Warning("period_over_year", "end_date", "period is longer than one year",
			func(in formInput) bool { return in.EndDate.Sub(in.StartDate) <= maxPeriod }),

		Error("approver_email_required", "approver_email", "approver email is required when approval is required",
			func(in formInput) bool { return present(in.ApproverEmail) }).
			When(func(in formInput) bool { return in.ApprovalRequired }),
		Error("approver_email_format", "approver_email", "approver email is not a valid address",
			func(in formInput) bool { return IsEmail(in.ApproverEmail) }).
			When(func(in formInput) bool { return in.ApprovalRequired && present(in.ApproverEmail) }),

		Warning("tags_empty", "tags", "no tags were provided",
			func(in formInput) bool { return len(in.Tags) > 0 }),
		Error("tags_max", "tags", fmt.Sprintf("at most %d tags are allowed", maxTags),
			func(in formInput) bool { return len(in.Tags) <= maxTags }),
		Error("tags_not_blank", "tags", "tags cannot be blank",
			func(in formInput) bool { return allPresent(in.Tags) }).
			When(func(in formInput) bool { return len(in.Tags) > 0 }),

		Error("final_price_positive", "final_price", "final price after discount must be greater than 0",
			func(in formInput) bool { return domain.DiscountedPrice(in.Price, in.Discount) > 0 }),
	)
}

func allPresent(ss []string) bool {
	for _, s := range ss {
		if !present(s) {
			return false
		}
	}
	return true
}
