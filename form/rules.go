// Package form validates flat field drafts against declarative rule sets.
// Validation is pure and synchronous: it never touches the network, and an
// empty result map means the draft is submittable.
package form

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Draft is the mutable field set behind a create/edit form. Values are kept
// as strings while editing; numeric fields are coerced on submit.
type Draft map[string]string

// Patterns shared across schemas. The phone pattern accepts Vietnamese
// numbers with either the +84 prefix or a leading zero; spaces are stripped
// before matching.
var (
	EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	PhonePattern = regexp.MustCompile(`^(\+84|0)[0-9]{9,10}$`)
	VINPattern   = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)
)

type RuleKind int

const (
	Required RuleKind = iota
	MinLength
	MaxLength
	Pattern
	NumericRange
	CrossField
)

// Rule is one constraint on one field. Which parameter matters depends on
// Kind; Message is what the user sees when the rule fails.
type Rule struct {
	Kind    RuleKind
	Length  int
	Pattern *regexp.Regexp
	Min     float64
	Max     float64
	HasMax  bool
	// CrossField only: the other field's key and the predicate that must
	// hold between the two numeric values (this field first).
	Other string
	Holds func(value, other float64) bool

	Message string
}

// Validate runs every field's rules against the draft and returns a
// field-keyed error map. The first failing rule per field wins. An empty
// map means the draft passes.
func Validate(draft Draft, fields []Field) map[string]string {
	errs := make(map[string]string)
	for _, f := range fields {
		value := f.normalized(draft[f.Key])
		for _, r := range f.Rules {
			if msg := checkRule(r, value, draft, f); msg != "" {
				errs[f.Key] = msg
				break
			}
		}
	}
	return errs
}

func checkRule(r Rule, value string, draft Draft, f Field) string {
	switch r.Kind {
	case Required:
		if strings.TrimSpace(value) == "" {
			return orDefault(r.Message, f.Label+" is required")
		}

	case MinLength:
		if value != "" && len(strings.TrimSpace(value)) < r.Length {
			return orDefault(r.Message, fmt.Sprintf("%s must be at least %d characters", f.Label, r.Length))
		}

	case MaxLength:
		if len(value) > r.Length {
			return orDefault(r.Message, fmt.Sprintf("%s must be no more than %d characters", f.Label, r.Length))
		}

	case Pattern:
		// Pattern rules do not fire on empty input; Required covers that.
		if value != "" && !r.Pattern.MatchString(value) {
			return orDefault(r.Message, f.Label+" is not valid")
		}

	case NumericRange:
		n, ok := numericValue(value)
		if !ok {
			return orDefault(r.Message, f.Label+" must be a number")
		}
		if n < r.Min {
			return orDefault(r.Message, fmt.Sprintf("%s must be at least %v", f.Label, r.Min))
		}
		if r.HasMax && n > r.Max {
			return orDefault(r.Message, fmt.Sprintf("%s must be at most %v", f.Label, r.Max))
		}

	case CrossField:
		n, ok1 := numericValue(value)
		m, ok2 := numericValue(draft[r.Other])
		if ok1 && ok2 && !r.Holds(n, m) {
			return r.Message
		}
	}
	return ""
}

func orDefault(msg, def string) string {
	if msg != "" {
		return msg
	}
	return def
}

// numericValue parses a draft value as a number. An empty string coerces to
// 0, matching how the web client prepares numeric fields for submit.
func numericValue(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// NumberValue coerces a draft field for submit preparation: empty becomes 0,
// garbage becomes 0 as well since validation already blocked it.
func NumberValue(draft Draft, key string) float64 {
	n, _ := numericValue(draft[key])
	return n
}

// Int is NumberValue truncated to an integer field.
func Int(draft Draft, key string) int {
	return int(NumberValue(draft, key))
}
