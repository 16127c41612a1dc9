// Package payload builds outgoing request bodies. Optional fields that
// were never supplied are represented as nil and stripped before
// serialization, so they are never sent as JSON null; empty strings and
// zeros are legitimate values and stay in.
package payload

import (
	"github.com/samber/lo"

	cardpointe "github.com/dvcrn/cardpointe-go"
)

// Fields is a request body under construction.
type Fields map[string]any

// Clean removes fields whose value is nil.
func Clean(f Fields) Fields {
	return lo.OmitBy(f, func(_ string, v any) bool {
		return v == nil
	})
}

// Opt marks the empty string as an absent optional field.
func Opt(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// OptAmount serializes an optional amount to its wire string.
func OptAmount(a cardpointe.Amount) any {
	if a.IsZero() {
		return nil
	}
	return a.String()
}

// OptMap marks a nil map as an absent optional field.
func OptMap(m map[string]string) any {
	if m == nil {
		return nil
	}
	return m
}
