package airtable

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// fieldBag reads loosely typed Airtable values. Every getter accepts a list
// of alternative column names and uses the first one present.
type fieldBag map[string]any

func (f fieldBag) lookup(names ...string) (any, bool) {
	for _, name := range names {
		if v, ok := f[name]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// str returns text for string and numeric values. Attachment arrays and
// single-element lists yield their first entry.
func (f fieldBag) str(names ...string) string {
	v, ok := f.lookup(names...)
	if !ok {
		return ""
	}
	return strings.TrimSpace(toString(v))
}

func (f fieldBag) optStr(names ...string) *string {
	s := f.str(names...)
	if s == "" {
		return nil
	}
	return &s
}

func toString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == math.Trunc(t) && math.Abs(t) < 1e15 {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case map[string]any:
		// attachment object
		if u, ok := t["url"].(string); ok {
			return u
		}
	case []any:
		if len(t) > 0 {
			return toString(t[0])
		}
	}
	return ""
}

// num returns nil for absent or non-numeric values, never NaN.
func (f fieldBag) num(names ...string) *float64 {
	v, ok := f.lookup(names...)
	if !ok {
		return nil
	}

	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return nil
		}
		n = parsed
	case string:
		cleaned := strings.NewReplacer("$", "", " ", "", "\u00a0", "").Replace(strings.TrimSpace(t))
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return nil
		}
		n = parsed
	default:
		return nil
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

// list returns string items of a multi-select, linked record or lookup
// column. A plain string becomes a single-item list.
func (f fieldBag) list(names ...string) []string {
	v, ok := f.lookup(names...)
	if !ok {
		return nil
	}

	switch t := v.(type) {
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			if s := strings.TrimSpace(toString(item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}
		}
	}
	return nil
}

// boolean reads checkbox columns and yes/no style text. def is used when
// the column is absent or unreadable.
func (f fieldBag) boolean(def bool, names ...string) bool {
	v, ok := f.lookup(names...)
	if !ok {
		return def
	}

	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "si", "sí", "activo", "active", "1":
			return true
		case "false", "no", "inactivo", "inactive", "0":
			return false
		}
	}
	return def
}
