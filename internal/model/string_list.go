package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
)

// StringList is an array field stored as JSON text in a single column.
//
// Reads are lenient: NULL and malformed JSON both come back empty, the
// latter with a warning, so one bad row never fails a whole listing.
type StringList []string

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("model: cannot scan %T into StringList", src)
	}

	*l = ParseStringList(raw)
	return nil
}

// Value implements driver.Valuer. A nil list is stored as NULL.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// MarshalJSON always produces an array, never null.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// ParseStringList decodes a stored column value.
func ParseStringList(raw []byte) StringList {
	if len(raw) == 0 {
		return StringList{}
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Warn().Err(err).Str("value", truncate(string(raw), 64)).Msg("malformed JSON array column, using empty list")
		return StringList{}
	}
	if out == nil {
		return StringList{}
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
