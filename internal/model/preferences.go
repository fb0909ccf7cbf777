package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// UserPreferences accumulates what has been learned about a user across turns
type UserPreferences struct {
	Name         string       `json:"name,omitempty"`
	Budget       string       `json:"budget,omitempty"`
	Location     string       `json:"location,omitempty"`
	PropertyType PropertyType `json:"property_type,omitempty"`
	Amenities    Set          `json:"amenities,omitempty"`
	Topics       Set          `json:"topics,omitempty"` // broader topics seen so far
	Language     string       `json:"language"`
}

// NewUserPreferences returns the preferences of a fresh session
func NewUserPreferences(language string) UserPreferences {
	return UserPreferences{Language: language}
}

// Value implements driver.Valuer interface
func (p UserPreferences) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner interface
func (p *UserPreferences) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("cannot scan %T into UserPreferences", value)
	}
}
