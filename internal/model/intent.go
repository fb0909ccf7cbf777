package model

// PropertyType is the kind of property a user is after
type PropertyType string

// Property types recognised in free text
const (
	PropertyApartment PropertyType = "appartement"
	PropertyHouse     PropertyType = "maison"
	PropertyStudio    PropertyType = "studio"
	PropertyLoft      PropertyType = "loft"
)

// Amenity tags
const (
	AmenityPool       = "pool"
	AmenitySeaView    = "sea_view"
	AmenityParking    = "parking"
	AmenityGarden     = "garden"
	AmenityTerrace    = "terrace"
	AmenityElevator   = "elevator"
	AmenitySecurity   = "security"
	AmenityAccessible = "accessible"
	AmenityPets       = "pets_allowed"
)

// ExtractedFacts holds what a single utterance mentioned.
// Empty fields mean "not mentioned this turn", never a default.
type ExtractedFacts struct {
	Name           string       `json:"name,omitempty"`
	Budget         string       `json:"budget,omitempty"` // matched literal, not normalised
	Location       string       `json:"location,omitempty"`
	PropertyType   PropertyType `json:"property_type,omitempty"`
	Amenities      Set          `json:"amenities,omitempty"`
	DetectedTopics Set          `json:"detected_topics,omitempty"` // at most one member
}

// IsEmpty reports whether nothing was extracted
func (f ExtractedFacts) IsEmpty() bool {
	return f.Name == "" && f.Budget == "" && f.Location == "" && f.PropertyType == "" &&
		len(f.Amenities) == 0 && len(f.DetectedTopics) == 0
}
