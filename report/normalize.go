// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/danielhkuo/legitrack/models"
)

// Normalized ballot values. Anything that is not a recognizable yea or nay
// (abstain, excused, absent, empty) normalizes to VoteNone and is excluded
// from every tally that requires a binary vote.
const (
	VoteYea  = "YEA"
	VoteNay  = "NAY"
	VoteNone = ""
)

// NormalizeVote maps the free-text ballot values the sources produce onto
// YEA/NAY.
func NormalizeVote(raw string) string {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "YEA", "AYE", "YES", "Y":
		return VoteYea
	case "NAY", "NO", "N":
		return VoteNay
	default:
		return VoteNone
	}
}

// ToInt coerces a value plucked out of an untyped upstream payload to an
// integer. Accepts finite numbers and numeric strings; everything else
// reports false.
func ToInt(v any) (int, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case float32:
		return ToInt(float64(n))
	case json.Number:
		return ToInt(string(n))
	case models.FlexInt:
		if !n.Valid {
			return 0, false
		}
		return n.Int, true
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		if i, err := strconv.Atoi(s); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return int(f), true
		}
		return 0, false
	default:
		return 0, false
	}
}
