package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// TagSeparator joins tags into the single tags column.
const TagSeparator = ","

// Tags is a list of tags stored as one comma-separated TEXT column.
// Commas inside a tag are not escaped: a tag "a,b" reads back as two tags.
type Tags []string

// Value implements the driver.Valuer interface
func (t Tags) Value() (driver.Value, error) {
	if len(t) == 0 {
		return nil, nil
	}
	return strings.Join(t, TagSeparator), nil
}

// Scan implements the sql.Scanner interface
func (t *Tags) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*t = nil
		return nil
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("failed to scan tags value %v of type %T", value, value)
	}

	if raw == "" {
		*t = nil
		return nil
	}
	*t = Tags(strings.Split(raw, TagSeparator))
	return nil
}
