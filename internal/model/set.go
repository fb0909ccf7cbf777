package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
)

// Set is a sorted, duplicate-free collection of tags.
// The zero value is an empty set. Operations never modify the receiver.
type Set []string

// NewSet builds a set from items, dropping blanks and duplicates
func NewSet(items ...string) Set {
	var s Set
	for _, item := range items {
		if item == "" || slices.Contains(s, item) {
			continue
		}
		s = append(s, item)
	}
	slices.Sort(s)
	return s
}

// UnmarshalJSON decodes a JSON array and restores the set's ordering
func (s *Set) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*s = NewSet(items...)
	return nil
}

// Contains reports whether item is in the set
func (s Set) Contains(item string) bool {
	_, found := slices.BinarySearch(s, item)
	return found
}

// Union returns a new set holding the members of both sets
func (s Set) Union(other Set) Set {
	merged := make([]string, 0, len(s)+len(other))
	merged = append(merged, s...)
	merged = append(merged, other...)
	return NewSet(merged...)
}

// IsSuperset reports whether every member of other is in s
func (s Set) IsSuperset(other Set) bool {
	for _, item := range other {
		if !s.Contains(item) {
			return false
		}
	}
	return true
}

// Value implements driver.Valuer interface
func (s Set) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

// Scan implements sql.Scanner interface
func (s *Set) Scan(value interface{}) error {
	var items []string
	switch v := value.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		if err := json.Unmarshal(v, &items); err != nil {
			return err
		}
	case string:
		if err := json.Unmarshal([]byte(v), &items); err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot scan %T into Set", value)
	}
	*s = NewSet(items...)
	return nil
}
