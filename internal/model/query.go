package model

// SearchFilters represents structured search filters.
// An empty string means the field is unset.
type SearchFilters struct {
	Query        string `json:"query"`
	Location     string `json:"location"`
	PriceMin     string `json:"price_min"`
	PriceMax     string `json:"price_max"`
	PropertyType string `json:"property_type"`
	Bedrooms     string `json:"bedrooms"`
	SurfaceMin   string `json:"surface_min"`
	Amenities    Set    `json:"amenities"`
}

// ParseRequest represents a free-text search parsing request
type ParseRequest struct {
	Query   string         `json:"query" binding:"required"`
	Filters *SearchFilters `json:"filters,omitempty"`
}

// ParseResponse represents the merged filters for a parsed query
type ParseResponse struct {
	Filters SearchFilters  `json:"filters"`
	Facts   ExtractedFacts `json:"facts"`
}

// ChatRequest represents one user turn
type ChatRequest struct {
	SessionID   string       `json:"session_id,omitempty"`
	Message     string       `json:"message"`
	PageContext *PageContext `json:"page_context,omitempty"`
}

// ChatResponse represents the assistant's answer to one turn
type ChatResponse struct {
	SessionID   string          `json:"session_id"`
	Topic       Topic           `json:"topic"`
	Reply       Message         `json:"reply"`
	Preferences UserPreferences `json:"preferences"`
}

// SessionResponse represents a newly started chat session
type SessionResponse struct {
	SessionID   string          `json:"session_id"`
	Preferences UserPreferences `json:"preferences"`
}

// MessagesResponse represents a session's conversation log
type MessagesResponse struct {
	SessionID string    `json:"session_id"`
	Messages  []Message `json:"messages"`
}
