package models

import (
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Record is one data row, a mapping from field name to value. Slice order is draw order.
type Record map[string]any

// Number returns the field coerced to a number. See ToNumber.
func (r Record) Number(field string) float64 {
	v, ok := r[field]
	return ToNumber(v, ok)
}

// Label returns the field rendered as text. See Label.
func (r Record) Label(field string) string {
	v, ok := r[field]
	return Label(v, ok)
}

// ToNumber coerces a field value to a float. ok reports whether the field was present at all.
// Nothing here fails: a missing field or text that isn't a number becomes NaN, null becomes 0.
func ToNumber(v any, ok bool) float64 {
	if !ok {
		return math.NaN()
	}

	switch n := v.(type) {
	case nil:
		return 0
	case bool:
		if n {
			return 1
		}
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case json.Number:
		return parseNumber(string(n))
	case string:
		return parseNumber(n)
	default:
		return math.NaN()
	}
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}

	// strconv is more lenient than we want here (inf, nan, underscores)
	lower := strings.ToLower(s)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(s, "_") {
		return math.NaN()
	}

	if base, ok := radixPrefixes[lower[:min(2, len(lower))]]; ok {
		// Arbitrarily long, so past int64 the value rounds like any other float
		i, ok := new(big.Int).SetString(lower[2:], base)
		if !ok {
			return math.NaN()
		}
		f, _ := new(big.Float).SetInt(i).Float64()
		return f
	}

	// Out of range parses to ±Inf, which is the value we want
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

var radixPrefixes = map[string]int{"0x": 16, "0o": 8, "0b": 2}

// Label renders a field value as text. A missing field reads "undefined" and null reads "null", so list
// entries for incomplete records still render rather than fail.
func Label(v any, ok bool) string {
	if !ok {
		return "undefined"
	}

	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		if f := parseNumber(t.String()); !math.IsNaN(f) {
			return FormatNumber(f)
		}
		return t.String()
	case float64:
		return FormatNumber(t)
	case float32:
		return FormatNumber(float64(t))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return FormatNumber(ToNumber(t, true))
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return "[object Object]"
		}
		return string(b)
	}
}

// FormatNumber prints a float in its shortest form, integers without a fraction.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs >= 1e21 || abs < 1e-6) {
		// Exponents print without padding: 1e-7, not 1e-07
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Numbers maps every record to its coerced field value.
func Numbers(records []Record, field string) []float64 {
	return lo.Map(records, func(r Record, _ int) float64 {
		return r.Number(field)
	})
}

// Categories returns the distinct labels of field in first-seen order.
func Categories(records []Record, field string) []string {
	return lo.Uniq(lo.Map(records, func(r Record, _ int) string {
		return r.Label(field)
	}))
}
