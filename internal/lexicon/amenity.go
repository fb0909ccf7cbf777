package lexicon

import (
	"strings"
	"unicode"

	"immo-assistant/internal/model"
)

// amenityAliases maps form labels and common aliases to amenity tags
var amenityAliases = []struct {
	tag     string
	aliases []string
}{
	{model.AmenityPool, []string{"piscine", "pool", "swimming pool"}},
	{model.AmenitySeaView, []string{"vue mer", "vue sur mer", "sea view", "mer"}},
	{model.AmenityParking, []string{"parking", "garage", "car park", "covered parking"}},
	{model.AmenityGarden, []string{"jardin", "garden"}},
	{model.AmenityTerrace, []string{"terrasse", "balcon", "balcony", "terrace"}},
	{model.AmenityElevator, []string{"ascenseur", "elevator", "lift"}},
	{model.AmenitySecurity, []string{"sécurité", "securite", "security", "24-hour security"}},
	{model.AmenityAccessible, []string{"accessible", "pmr"}},
	{model.AmenityPets, []string{"animaux ok", "animaux", "pets", "pets allowed"}},
}

// NormalizeAmenity maps a UI label such as "🏊 Piscine" to its tag ("pool").
// Tags pass through unchanged; unknown labels come back cleaned and lower-cased.
func NormalizeAmenity(label string) string {
	cleaned := strings.TrimLeftFunc(Normalize(label), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return ""
	}

	for _, entry := range amenityAliases {
		if cleaned == entry.tag {
			return entry.tag
		}
		for _, alias := range entry.aliases {
			if cleaned == alias {
				return entry.tag
			}
		}
	}
	return cleaned
}

// NormalizeAmenities normalizes every label and returns them as a set
func NormalizeAmenities(labels []string) model.Set {
	tags := make([]string, 0, len(labels))
	for _, label := range labels {
		tags = append(tags, NormalizeAmenity(label))
	}
	return model.NewSet(tags...)
}
