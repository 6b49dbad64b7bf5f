package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Genres is an ordered list of genre names persisted as a JSON array in a
// text column.
type Genres []string

// Value implements driver.Valuer. A nil list is stored as "[]".
func (g Genres) Value() (driver.Value, error) {
	if g == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(g))
	if err != nil {
		return nil, fmt.Errorf("encoding genres: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner. Anything that is not a JSON array of strings
// is rejected with ErrMalformedGenres.
func (g *Genres) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	case nil:
		*g = Genres{}
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrMalformedGenres, src)
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrMalformedGenres, raw, err)
	}
	if list == nil {
		list = []string{}
	}
	*g = Genres(list)
	return nil
}
