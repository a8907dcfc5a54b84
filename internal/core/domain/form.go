package domain

import (
	"errors"
	"time"
)

var ErrFormNotFound = errors.New("form not found")

// Form is a priced, time-boxed request that may need an approver.
type Form struct {
	ID               string    `json:"id" bson:"_id"`
	Title            string    `json:"title" bson:"title"`
	Description      string    `json:"description,omitempty" bson:"description,omitempty"`
	Category         string    `json:"category,omitempty" bson:"category,omitempty"`
	Quantity         int       `json:"quantity" bson:"quantity"`
	Price            float64   `json:"price" bson:"price"`
	Discount         float64   `json:"discount" bson:"discount"`
	StartDate        time.Time `json:"start_date" bson:"start_date"`
	EndDate          time.Time `json:"end_date" bson:"end_date"`
	ApprovalRequired bool      `json:"approval_required" bson:"approval_required"`
	ApproverEmail    string    `json:"approver_email,omitempty" bson:"approver_email,omitempty"`
	Tags             []string  `json:"tags" bson:"tags"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}

// FinalPrice is the price after applying the discount percentage.
func (f Form) FinalPrice() float64 {
	return DiscountedPrice(f.Price, f.Discount)
}

// Clone returns a deep copy of the form.
func (f *Form) Clone() *Form {
	if f == nil {
		return nil
	}
	c := *f
	c.Tags = append([]string(nil), f.Tags...)
	return &c
}
