package award

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"prestigeapi/models"
	"prestigeapi/pkg/errs"
	"prestigeapi/repository"

	"gorm.io/gorm"
)

// SelfMarker is the literal a caller may supply instead of their own user ID.
const SelfMarker = "me"

// Draft is a validated, fully resolved award ready for persistence, together
// with the permission the acting user must hold. Role is empty for
// self-requests, which need no check.
type Draft struct {
	Award      models.Award
	Capability Capability
	Role       string
}

// Engine turns raw untrusted payloads into Drafts. It is pure except for the
// category lookup; all failures are caller-input errors.
type Engine struct {
	domain     Domain
	categories repository.CategoryRepository
}

// NewEngine creates a validation engine for the given domain.
func NewEngine(domain Domain, categories repository.CategoryRepository) *Engine {
	return &Engine{domain: domain, categories: categories}
}

type fieldKind int

const (
	kindInt fieldKind = iota
	kindDate
	kindText
	kindCapability
)

type fieldSign int

const (
	signAny fieldSign = iota
	signNonNegative
	signNonPositive
)

type fieldRule struct {
	name     string
	kind     fieldKind
	required bool
	sign     fieldSign
}

// rules returns the constraint set for one capability. Level amounts must be
// non-negative except under deduct, where the sign flips; usable overrides
// are only recognized on direct awards.
func (e *Engine) rules(capability Capability) []fieldRule {
	rules := []fieldRule{
		{name: "user", kind: kindInt, required: true},
		{name: "category", kind: kindInt, required: true},
		{name: "date", kind: kindDate, required: true},
		{name: "action", kind: kindCapability, required: true},
		{name: "description", kind: kindText, required: true},
		{name: "source", kind: kindText},
	}

	sign := signNonNegative
	if capability == CapDeduct {
		sign = signNonPositive
	}
	for _, level := range e.domain.Levels {
		rules = append(rules, fieldRule{name: level, kind: kindInt, sign: sign})
		if capability == CapAward {
			rules = append(rules, fieldRule{name: usableField(level), kind: kindInt, sign: signNonNegative})
		}
	}
	return rules
}

// Validate checks a raw payload against the rule set for its inferred
// capability and resolves it into a Draft. Field violations are aggregated
// into a single validation error rather than reported one at a time.
func (e *Engine) Validate(ctx context.Context, raw map[string]interface{}, actorID int64) (*Draft, error) {
	data := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		data[k] = v
	}

	// Identity substitution.
	if s, ok := data["user"].(string); ok && s == SelfMarker {
		data["user"] = actorID
	}

	// Capability inference: self-targeting is always a request, whatever the
	// caller claimed; missing capability defaults to a nomination.
	if uid, ok := intValue(data["user"]); ok && uid == actorID {
		data["action"] = string(CapRequest)
	} else if _, present := data["action"]; !present {
		data["action"] = string(CapNominate)
	}

	capability := CapNominate
	if s, ok := data["action"].(string); ok {
		capability = Capability(s)
	}

	var violations []string
	ints := map[string]int64{}
	intSet := map[string]bool{}
	var date time.Time
	var description, source string

	for _, r := range e.rules(capability) {
		v, present := data[r.name]
		if !present || v == nil {
			if r.required {
				violations = append(violations, r.name+" is required")
			}
			continue
		}
		switch r.kind {
		case kindInt:
			n, ok := intValue(v)
			if !ok {
				violations = append(violations, r.name+" must be an integer")
				continue
			}
			if r.sign == signNonNegative && n < 0 {
				violations = append(violations, r.name+" must not be negative")
				continue
			}
			if r.sign == signNonPositive && n > 0 {
				violations = append(violations, r.name+" must not be positive")
				continue
			}
			ints[r.name] = n
			intSet[r.name] = true
		case kindDate:
			t, ok := dateValue(v)
			if !ok {
				violations = append(violations, r.name+" must be a date")
				continue
			}
			date = t
		case kindText:
			s, ok := v.(string)
			if !ok {
				violations = append(violations, r.name+" must be text")
				continue
			}
			if r.required && strings.TrimSpace(s) == "" {
				violations = append(violations, r.name+" is required")
				continue
			}
			if r.name == "description" {
				description = s
			} else {
				source = s
			}
		case kindCapability:
			s, _ := v.(string)
			switch Capability(s) {
			case CapRequest, CapNominate, CapAward, CapDeduct:
			default:
				violations = append(violations, "action must be one of request, nominate, award, deduct")
			}
		}
	}
	if len(violations) > 0 {
		return nil, errs.Validationf("errors found: %s", strings.Join(violations, ", "))
	}

	// Exactly one level must carry prestige.
	var level string
	var supplied int
	for _, l := range e.domain.Levels {
		if ints[l] != 0 {
			level = l
			supplied++
		}
	}
	if supplied == 0 {
		return nil, errs.Validationf("no prestige awarded")
	}
	if supplied > 1 {
		return nil, errs.Validationf("only one prestige level may be supplied")
	}

	var status string
	switch capability {
	case CapRequest:
		status = models.StatusRequested
	case CapNominate:
		status = models.StatusNominated
	default:
		status = models.StatusAwarded
	}

	// The caller cannot distinguish a missing category from one whose active
	// window excludes the award date.
	category, err := e.categories.FindActive(nil, ints["category"], date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Validationf("invalid category")
		}
		return nil, errs.Dependency("category lookup failed", err)
	}

	amount := ints[level]
	usable := amount
	if capability == CapAward && intSet[usableField(level)] {
		usable = ints[usableField(level)]
	}
	usable = category.CapEntry(usable)

	draft := models.Award{
		User:        ints["user"],
		CategoryID:  category.ID,
		Date:        date,
		Description: description,
		Source:      source,
		Status:      status,
		Level:       level,
	}
	draft.SetAmount(level, amount, usable)

	role := ""
	if capability != CapRequest {
		role = e.domain.Role(capability, level)
	}
	return &Draft{Award: draft, Capability: capability, Role: role}, nil
}

func usableField(level string) string {
	return "usable" + strings.ToUpper(level[:1]) + level[1:]
}

// intValue coerces a JSON value to an integer. Whole floats (the default
// decoding of JSON numbers), json.Number and numeric strings are accepted.
func intValue(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	}
	return 0, false
}

var dateFormats = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// dateValue coerces a JSON value to a timestamp.
func dateValue(v interface{}) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	return parseDate(s)
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
