package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Custom serializer for free-form document columns (metadata,
// notification preferences, activity details, tier features).
// Stored as a JSON text blob so it works the same on sqlite
// and postgres.

type JSONMap map[string]any

// GormDataType tells the migrator which column type to use, since it
// can't derive one from a map.
func (JSONMap) GormDataType() string {
	return "text"
}

// Value implements the driver.Valuer interface.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSONMap, %w", err)
	}

	return string(b), nil
}

// Scan implements the sql.Scanner interface.
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var b []byte

	switch v := value.(type) {
	case string:
		b = []byte(v)
	case []byte:
		b = v
	default:
		return fmt.Errorf("failed to scan JSONMap, %v", value)
	}

	if len(b) == 0 {
		*m = nil
		return nil
	}

	return json.Unmarshal(b, m)
}
