package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSONMap is an opaque key-value map stored in a jsonb column.
type JSONMap map[string]interface{}

// Value implements driver.Valuer, serializing the map to jsonb.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner, deserializing jsonb into the map.
func (m *JSONMap) Scan(src interface{}) error {
	if src == nil {
		*m = JSONMap{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for JSONMap")
	}

	if len(data) == 0 {
		*m = JSONMap{}
		return nil
	}
	return json.Unmarshal(data, m)
}
