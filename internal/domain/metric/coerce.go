package metric

import (
	"database/sql"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/guregu/null.v3"
)

// Number coerces an arbitrary value into a nullable float. Anything that is
// not a finite number within ±MaxExact (nil, bool, non-numeric text, NaN,
// infinities, overflow) comes back invalid.
func Number(v any) null.Float {
	switch x := v.(type) {
	case nil:
		return null.Float{}
	case null.Float:
		if !x.Valid {
			return null.Float{}
		}
		return finite(x.Float64)
	case null.Int:
		if !x.Valid {
			return null.Float{}
		}
		return finite(float64(x.Int64))
	case sql.NullFloat64:
		if !x.Valid {
			return null.Float{}
		}
		return finite(x.Float64)
	case sql.NullInt64:
		if !x.Valid {
			return null.Float{}
		}
		return finite(float64(x.Int64))
	case json.Number:
		return parse(string(x))
	case string:
		return parse(x)
	case []byte:
		return parse(string(x))
	case bool:
		return null.Float{}
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return null.Float{}
		}
		return Number(rv.Elem().Interface())
	}

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return finite(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return finite(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return finite(rv.Float())
	case reflect.String:
		return parse(rv.String())
	default:
		return null.Float{}
	}
}

// Field looks up the first present key and coerces it with Number.
func Field(raw map[string]any, keys ...string) null.Float {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok {
			continue
		}
		return Number(v)
	}
	return null.Float{}
}

// Int narrows a nullable float to a nullable integer, rounding ties away
// from zero.
func Int(v null.Float) null.Int {
	if !v.Valid || !finite(v.Float64).Valid {
		return null.Int{}
	}
	return null.IntFrom(int64(Round(v.Float64)))
}

func parse(s string) null.Float {
	s = strings.TrimSpace(s)
	if s == "" {
		return null.Float{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return null.Float{}
	}
	return finite(f)
}

func finite(f float64) null.Float {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > MaxExact {
		return null.Float{}
	}
	return null.FloatFrom(f)
}
