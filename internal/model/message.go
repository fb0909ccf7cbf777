package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Sender identifies who wrote a message
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// PropertyTeaser is a short property card attached to a reply
type PropertyTeaser struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Price    string `json:"price" yaml:"price"`
	Location string `json:"location" yaml:"location"`
	Image    string `json:"image,omitempty" yaml:"image"`
}

// Value implements driver.Valuer interface
func (p *PropertyTeaser) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner interface
func (p *PropertyTeaser) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return json.Unmarshal([]byte(value.(string)), p)
	}
	return json.Unmarshal(bytes, p)
}

// JSONArray represents an ordered JSON array field
type JSONArray []string

// Value implements driver.Valuer interface
func (j JSONArray) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal([]string(j))
}

// Scan implements sql.Scanner interface
func (j *JSONArray) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return json.Unmarshal([]byte(value.(string)), j)
	}
	return json.Unmarshal(bytes, j)
}

// Reply is what the assistant answers to one turn
type Reply struct {
	Text        string          `json:"text"`
	Suggestions []string        `json:"suggestions,omitempty"`
	Attachment  *PropertyTeaser `json:"attachment,omitempty"`
}

// PageContext describes the page the user is on
type PageContext struct {
	Path        string   `json:"path,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// Message is one entry of a session's append-only conversation log
type Message struct {
	ID          string          `json:"id" db:"id"`
	Text        string          `json:"text" db:"text"`
	Sender      Sender          `json:"sender" db:"sender"`
	Timestamp   time.Time       `json:"timestamp" db:"created_at"`
	Suggestions JSONArray       `json:"suggestions,omitempty" db:"suggestions"`
	Attachment  *PropertyTeaser `json:"attachment,omitempty" db:"attachment"`
}
