// Package validation turns raw submissions into sanitized values using
// declarative per-field rules and cross-field rules.
//
// Each field runs its transforms in order, then its constraints in order, and
// stops at the first failing constraint. Validate reports only the first
// failing field; ValidateAll reports the first failure of every field.
// Cross-field rules run after the per-field pass and only when every field
// they reference validated.
package validation

import (
	"fmt"
)

// Submission is a raw set of named fields as received at the boundary.
type Submission map[string]any

// Values holds the transformed, constraint-satisfying fields of a submission.
type Values map[string]string

// Transform rewrites a field value before constraints observe it.
type Transform func(string) string

// Constraint is a single check with the message reported when it fails.
type Constraint struct {
	Check   func(string) bool
	Message string
}

// FieldRule declares how one field is sanitized and checked.
type FieldRule struct {
	Name        string
	Label       string
	Transforms  []Transform
	Constraints []Constraint
	// Default is used when the field is absent. A nil Default makes the field
	// required.
	Default *string
}

// CrossFieldRule checks a relation between already validated fields and
// reports its failure on Path.
type CrossFieldRule struct {
	Fields  []string
	Path    string
	Check   func(Values) bool
	Message string
}

// FieldError addresses a rule violation to a field.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldErrors is an ordered list of violations.
type FieldErrors []FieldError

// First returns the earliest violation, or nil when there is none.
func (es FieldErrors) First() *FieldError {
	if len(es) == 0 {
		return nil
	}

	return &es[0]
}

// ByField indexes the violations by field name.
func (es FieldErrors) ByField() map[string]string {
	out := make(map[string]string, len(es))
	for _, e := range es {
		if _, ok := out[e.Field]; !ok {
			out[e.Field] = e.Message
		}
	}

	return out
}

// RuleSet is an ordered collection of field rules plus cross-field rules.
type RuleSet struct {
	Fields []FieldRule
	Cross  []CrossFieldRule
}

// Extend returns a copy of rs with extra field and cross-field rules appended.
func (rs RuleSet) Extend(fields []FieldRule, cross []CrossFieldRule) RuleSet {
	out := RuleSet{
		Fields: make([]FieldRule, 0, len(rs.Fields)+len(fields)),
		Cross:  make([]CrossFieldRule, 0, len(rs.Cross)+len(cross)),
	}
	out.Fields = append(append(out.Fields, rs.Fields...), fields...)
	out.Cross = append(append(out.Cross, rs.Cross...), cross...)

	return out
}

// Validate applies rs to sub and stops at the first violation.
func (rs RuleSet) Validate(sub Submission) (Values, *FieldError) {
	values := make(Values, len(rs.Fields))
	for _, rule := range rs.Fields {
		value, ferr := rule.apply(sub)
		if ferr != nil {
			return nil, ferr
		}
		values[rule.Name] = value
	}

	for _, cross := range rs.Cross {
		if !cross.Check(values) {
			return nil, &FieldError{Field: cross.Path, Message: cross.Message}
		}
	}

	return values, nil
}

// ValidateAll applies rs to sub and collects the first violation of every
// field, followed by any failing cross-field rule whose fields all passed.
func (rs RuleSet) ValidateAll(sub Submission) (Values, FieldErrors) {
	values := make(Values, len(rs.Fields))
	var errs FieldErrors
	for _, rule := range rs.Fields {
		value, ferr := rule.apply(sub)
		if ferr != nil {
			errs = append(errs, *ferr)

			continue
		}
		values[rule.Name] = value
	}

	for _, cross := range rs.Cross {
		if !allPresent(values, cross.Fields) {
			continue
		}
		if !cross.Check(values) {
			errs = append(errs, FieldError{Field: cross.Path, Message: cross.Message})
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return values, nil
}

func (r FieldRule) apply(sub Submission) (string, *FieldError) {
	raw, present := sub[r.Name]
	if !present || raw == nil {
		if r.Default != nil {
			return *r.Default, nil
		}

		// An absent field reads as empty so its own Required message is reported.
		if ferr := r.check(""); ferr != nil {
			return "", ferr
		}

		return "", &FieldError{Field: r.Name, Message: r.label() + " is required"}
	}

	value, ok := raw.(string)
	if !ok {
		return "", &FieldError{Field: r.Name, Message: r.label() + " must be a string"}
	}

	for _, transform := range r.Transforms {
		value = transform(value)
	}

	if ferr := r.check(value); ferr != nil {
		return "", ferr
	}

	return value, nil
}

func (r FieldRule) check(value string) *FieldError {
	for _, c := range r.Constraints {
		if !c.Check(value) {
			return &FieldError{Field: r.Name, Message: c.Message}
		}
	}

	return nil
}

func (r FieldRule) label() string {
	if r.Label != "" {
		return r.Label
	}

	return r.Name
}

func allPresent(values Values, fields []string) bool {
	for _, f := range fields {
		if _, ok := values[f]; !ok {
			return false
		}
	}

	return true
}
