// Package jsonmap provides a map type persisted as a jsonb column.
// Opaque payloads (return metadata, fulfillment shipping data, shipping
// method data) are stored without a relational schema.
package jsonmap

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONMap is a free-form string-keyed map stored as jsonb.
// A nil map persists as SQL NULL.
type JSONMap map[string]any

// Value implements driver.Valuer.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil //nolint:nilnil //SQL NULL
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner.
func (m *JSONMap) Scan(value any) error {
	if value == nil {
		*m = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("jsonmap: cannot scan %T", value)
	}

	return json.Unmarshal(raw, m)
}

// GormDataType reports the column type used for schema migration.
func (JSONMap) GormDataType() string {
	return "jsonb"
}
