package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"immo-assistant/internal/model"
)

func TestMergePreferences(t *testing.T) {
	current := model.UserPreferences{
		Name:      "Karim",
		Budget:    "300k",
		Location:  "nice",
		Amenities: model.NewSet(model.AmenityPool),
		Language:  "fr",
	}

	merged := MergePreferences(current, model.ExtractedFacts{
		Location:       "cannes",
		PropertyType:   model.PropertyHouse,
		Amenities:      model.NewSet(model.AmenityGarden),
		DetectedTopics: model.NewSet("price"),
	})

	assert.Equal(t, model.UserPreferences{
		Name:         "Karim",
		Budget:       "300k",
		Location:     "cannes",
		PropertyType: model.PropertyHouse,
		Amenities:    model.NewSet(model.AmenityGarden, model.AmenityPool),
		Topics:       model.NewSet("price"),
		Language:     "fr",
	}, merged)

	// the input is left untouched
	assert.Equal(t, "nice", current.Location)
	assert.Equal(t, model.NewSet(model.AmenityPool), current.Amenities)
}

func TestMergePreferences_EmptyFactsKeepEverything(t *testing.T) {
	current := model.UserPreferences{Name: "Léa", Budget: "1.200.000", Language: "en"}
	assert.Equal(t, current, MergePreferences(current, model.ExtractedFacts{}))
}

func TestMergePreferences_Properties(t *testing.T) {
	prefsCases := []model.UserPreferences{
		model.NewUserPreferences("fr"),
		{Name: "Karim", Budget: "300k", Language: "fr", Amenities: model.NewSet(model.AmenityPool, model.AmenityParking)},
		{Location: "paris", PropertyType: model.PropertyLoft, Topics: model.NewSet("opinion"), Language: "fr"},
	}

	extractor := NewExtractor(nil)
	utterances := []string{
		"",
		"Bonjour",
		"Je m'appelle Karim, budget de 300k, je cherche un appartement à Nice avec piscine",
		"maison 4 chambres piscine",
		"terrasse et vue mer à Marseille, c'est combien ?",
		"Mon nom est Inès, un loft à Monaco avec parking, 2 mille",
	}

	for _, prefs := range prefsCases {
		for _, u := range utterances {
			facts := extractor.Extract(u)
			once := MergePreferences(prefs, facts)
			twice := MergePreferences(once, facts)

			assert.Equal(t, once, twice, "merge is idempotent for %q", u)
			assert.True(t, once.Amenities.IsSuperset(prefs.Amenities), "amenities only grow for %q", u)
			assert.True(t, once.Topics.IsSuperset(prefs.Topics), "topics only grow for %q", u)
			assert.Equal(t, prefs.Language, once.Language, "language is never touched")
		}
	}
}
