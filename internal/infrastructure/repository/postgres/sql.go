package postgres

import (
	"database/sql"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// scanMaps drains rows into loosely typed maps keyed by column name. Values
// keep their driver types; normalization happens in the domain layer.
func scanMaps(rows *sqlx.Rows) ([]map[string]any, error) {
	defer rows.Close()

	out := make([]map[string]any, 0)
	for rows.Next() {
		row := make(map[string]any)
		if err := rows.MapScan(row); err != nil {
			return nil, errors.Wrap(err, "map scan row")
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate rows")
	}

	return out, nil
}

// decodeJSONColumn turns a json/jsonb value into plain Go values. Invalid or
// empty payloads yield nil so that a bad column never fails the whole read.
func decodeJSONColumn(v any) any {
	var raw []byte
	switch value := v.(type) {
	case []byte:
		raw = value
	case string:
		raw = []byte(value)
	default:
		return v
	}
	if strings.TrimSpace(string(raw)) == "" {
		return nil
	}

	var out any
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func nullStringValue(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return strings.TrimSpace(v.String)
}

func nullInt64ToInt(v sql.NullInt64) int {
	if !v.Valid {
		return 0
	}
	return int(v.Int64)
}
