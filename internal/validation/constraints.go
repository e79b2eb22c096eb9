package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Tag builds a constraint from a go-playground validator tag such as
// "email" or "min=2,max=50".
func Tag(tag, message string) Constraint {
	return Constraint{
		Check: func(v string) bool {
			return validate.Var(v, tag) == nil
		},
		Message: message,
	}
}

// Trim removes leading and trailing white space.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Lower lowercases the value.
func Lower(s string) string {
	return strings.ToLower(s)
}

// Required rejects empty values.
func Required(message string) Constraint {
	return Tag("required", message)
}

// Length bounds the rune count of a value, both ends inclusive.
func Length(minLen, maxLen int, message string) Constraint {
	return Tag(fmt.Sprintf("min=%d,max=%d", minLen, maxLen), message)
}

// MaxLength bounds the rune count of a value from above, inclusive.
func MaxLength(maxLen int, message string) Constraint {
	return Tag(fmt.Sprintf("max=%d", maxLen), message)
}

// Email requires a syntactically valid email address.
func Email(message string) Constraint {
	return Tag("email", message)
}

// OneOf requires the value to equal one of allowed. Allowed values must not
// contain spaces.
func OneOf(allowed []string, message string) Constraint {
	return Tag("oneof="+strings.Join(allowed, " "), message)
}

// Pattern requires the whole value to match expr. The expression is anchored
// on both ends, so partial matches never pass.
func Pattern(expr, message string) Constraint {
	re := regexp.MustCompile(`^(?:` + expr + `)$`)

	return Constraint{Check: re.MatchString, Message: message}
}

var (
	hasLower = regexp.MustCompile(`[a-z]`)
	hasUpper = regexp.MustCompile(`[A-Z]`)
	hasDigit = regexp.MustCompile(`[0-9]`)
)

// PasswordComplexity requires a length within [minLen, maxLen] and at least
// one lowercase letter, one uppercase letter and one digit. Any missing
// condition yields the same single message.
func PasswordComplexity(minLen, maxLen int, message string) Constraint {
	return Constraint{
		Check: func(v string) bool {
			n := utf8.RuneCountInString(v)

			return n >= minLen && n <= maxLen &&
				hasLower.MatchString(v) &&
				hasUpper.MatchString(v) &&
				hasDigit.MatchString(v)
		},
		Message: message,
	}
}

// Equal is a cross-field check that every named field holds the same value.
func Equal(fields ...string) func(Values) bool {
	return func(vs Values) bool {
		for i := 1; i < len(fields); i++ {
			if vs[fields[i]] != vs[fields[0]] {
				return false
			}
		}

		return true
	}
}
