package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DuplicateCode is the postgres unique_violation error code.
const DuplicateCode = "23505"

type Base struct {
	CreatedAt time.Time // autoCreateTime
	UpdatedAt time.Time // autoUpdateTime
}

// StringList stores an ordered list of strings as a jsonb column.
// Order and duplicates are preserved exactly as submitted.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("db.StringList.Value: %w", err)
	}
	return string(data), nil
}

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = StringList{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("db.StringList.Scan: unsupported type %T", src)
	}

	if err := json.Unmarshal(data, l); err != nil {
		return fmt.Errorf("db.StringList.Scan: %w", err)
	}
	return nil
}
