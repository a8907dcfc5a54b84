package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

var ErrUserNotFound = errors.New("user not found")
var ErrForbidden = errors.New("access forbidden")

// User is a registered person. RegisteredAt is stamped once at creation.
type User struct {
	ID           string         `json:"id" bson:"_id"`
	Name         string         `json:"name" bson:"name"`
	Email        string         `json:"email" bson:"email"`
	Age          int            `json:"age" bson:"age"`
	Salary       float64        `json:"salary" bson:"salary"`
	BirthDate    time.Time      `json:"birth_date" bson:"birth_date"`
	Active       bool           `json:"active" bson:"active"`
	Phone        string         `json:"phone,omitempty" bson:"phone,omitempty"`
	Roles        []string       `json:"roles" bson:"roles"`
	Metadata     map[string]any `json:"metadata,omitempty" bson:"metadata,omitempty"`
	RegisteredAt time.Time      `json:"registered_at" bson:"registered_at"`
}

// AgeAt returns the user's age on the given day, derived from BirthDate.
func (u User) AgeAt(t time.Time) int {
	return Age(u.BirthDate, t)
}

// Clone returns a deep copy so callers cannot mutate stored slices or maps.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Roles = append([]string(nil), u.Roles...)
	if u.Metadata != nil {
		c.Metadata = cloneMap(u.Metadata)
	}
	return &c
}

// cloneMap copies the JSON-shaped values metadata can hold: nested objects
// and arrays are copied, scalars are shared.
func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = cloneValue(e)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}
