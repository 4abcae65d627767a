// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

// FlexInt is an integer field that tolerates the ways upstream feeds encode
// counts: a JSON number, a numeric string, or null/absent. Anything that does
// not parse as an integer leaves the field invalid rather than failing the
// whole record.
type FlexInt struct {
	Int   int
	Valid bool
}

// NewFlexInt returns a valid FlexInt.
func NewFlexInt(n int) FlexInt {
	return FlexInt{Int: n, Valid: true}
}

// Or returns the value, or def when the field is invalid.
func (f FlexInt) Or(def int) int {
	if !f.Valid {
		return def
	}
	return f.Int
}

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	*f = FlexInt{}
	s := string(bytes.TrimSpace(b))
	if s == "" || s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		unq, err := strconv.Unquote(s)
		if err != nil {
			return nil
		}
		s = strings.TrimSpace(unq)
	}
	if n, err := strconv.Atoi(s); err == nil {
		*f = FlexInt{Int: n, Valid: true}
		return nil
	}
	// Some feeds emit counts as floats ("7.0").
	if fl, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(fl) && !math.IsInf(fl, 0) {
		*f = FlexInt{Int: int(fl), Valid: true}
	}
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(f.Int)), nil
}
