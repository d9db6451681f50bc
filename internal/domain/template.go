package domain

import (
	"fmt"
	"strings"
	"time"
)

const maxTemplateKeyLength = 128

type TemplateKey string

// Template is the scoring configuration handed from one client to another.
// Rule values are opaque to the server.
type Template struct {
	Name         string
	Rules        map[string]any
	RulesEnabled map[string]any
}

type TemplateRecord struct {
	Key       TemplateKey
	ExpiresAt time.Time
	Template  Template
}

// Expired reports whether the record is logically absent at now.
// A record whose expiry equals now is already expired.
func (r TemplateRecord) Expired(now time.Time) bool {
	return !r.ExpiresAt.After(now)
}

func (t Template) Clone() Template {
	return Template{
		Name:         t.Name,
		Rules:        cloneRules(t.Rules),
		RulesEnabled: cloneRules(t.RulesEnabled),
	}
}

func (t Template) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if t.Rules == nil {
		return fmt.Errorf("%w: rules is required", ErrValidation)
	}
	if t.RulesEnabled == nil {
		return fmt.Errorf("%w: rules_enabled is required", ErrValidation)
	}

	return nil
}

// ValidateTemplateKey accepts keys made of ASCII letters, digits, '-' and '_'.
// Keys name files in the exchange store, so anything else is rejected.
func ValidateTemplateKey(key TemplateKey) error {
	raw := string(key)
	if raw == "" {
		return fmt.Errorf("%w: key is empty", ErrInvalidTemplateKey)
	}
	if len(raw) > maxTemplateKeyLength {
		return fmt.Errorf("%w: key longer than %d characters", ErrInvalidTemplateKey, maxTemplateKeyLength)
	}
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return fmt.Errorf("%w: %q", ErrInvalidTemplateKey, raw)
		}
	}

	return nil
}

func cloneRules(rules map[string]any) map[string]any {
	if rules == nil {
		return nil
	}

	out := make(map[string]any, len(rules))
	for k, v := range rules {
		out[k] = cloneRuleValue(v)
	}
	return out
}

// cloneRuleValue copies the containers JSON decoding produces. Scalars are
// returned as is.
func cloneRuleValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return cloneRules(v)
	case []any:
		if v == nil {
			return v
		}
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneRuleValue(item)
		}
		return out
	default:
		return v
	}
}
