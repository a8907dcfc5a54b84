// Package validation evaluates declarative rule sets against create requests.
//
// A rule is a predicate, a message and a severity. Every rule of a set is
// evaluated (there is no early exit); rules carrying a When gate are skipped
// while the gate is false. Failures are collected into a
// domain.ValidationResult, which callers partition into blocking errors and
// advisory warnings.
package validation

import (
	"time"

	"github.com/holamundo/registry-api/internal/core/domain"
)

// Clock returns the current instant. Date-relative rules read it on every
// evaluation.
type Clock func() time.Time

// Rule is a single check over a request of type T.
type Rule[T any] struct {
	Name     string
	Field    string
	Severity domain.Severity

	when    func(T) bool
	check   func(T) bool
	message func(T) string
}

// Error builds a blocking rule. check must return true when v is acceptable.
func Error[T any](name, field, msg string, check func(T) bool) Rule[T] {
	return newRule(name, field, msg, domain.SeverityError, check)
}

// Warning builds an advisory rule.
func Warning[T any](name, field, msg string, check func(T) bool) Rule[T] {
	return newRule(name, field, msg, domain.SeverityWarning, check)
}

func newRule[T any](name, field, msg string, sev domain.Severity, check func(T) bool) Rule[T] {
	return Rule[T]{
		Name:     name,
		Field:    field,
		Severity: sev,
		check:    check,
		message:  func(T) string { return msg },
	}
}

// When gates the rule: it is only evaluated if cond(v) is true.
func (r Rule[T]) When(cond func(T) bool) Rule[T] {
	r.when = cond
	return r
}

// WithMessage replaces the static message with one derived from the request.
func (r Rule[T]) WithMessage(fn func(T) string) Rule[T] {
	r.message = fn
	return r
}

// Ruleset is an ordered list of rules over T.
type Ruleset[T any] struct {
	rules []Rule[T]
}

// NewRuleset returns a rule set evaluating rules in the given order.
func NewRuleset[T any](rules ...Rule[T]) *Ruleset[T] {
	return &Ruleset[T]{rules: rules}
}

// Register appends rules to the set.
func (s *Ruleset[T]) Register(rules ...Rule[T]) {
	s.rules = append(s.rules, rules...)
}

// Len reports how many rules the set holds.
func (s *Ruleset[T]) Len() int {
	return len(s.rules)
}

// Validate evaluates every rule against v.
func (s *Ruleset[T]) Validate(v T) domain.ValidationResult {
	var res domain.ValidationResult
	for _, r := range s.rules {
		if r.when != nil && !r.when(v) {
			continue
		}
		if r.check(v) {
			continue
		}
		res.Add(domain.Issue{
			Rule:     r.Name,
			Field:    r.Field,
			Severity: r.Severity,
			Message:  r.message(v),
		})
	}
	return res
}
