package lexicon

import (
	"regexp"

	"immo-assistant/internal/model"
)

// Cities is the closed set of recognised locations.
// Declaration order breaks ties when several cities are mentioned.
var Cities = []string{"paris", "nice", "lyon", "marseille", "cannes", "monaco", "bordeaux"}

// PropertyTypeCue maps keywords to a property type
type PropertyTypeCue struct {
	Type     model.PropertyType
	Keywords []string
}

// PropertyTypeCues are checked in order; the first cue found wins
var PropertyTypeCues = []PropertyTypeCue{
	{Type: model.PropertyApartment, Keywords: []string{"appartement", "appart"}},
	{Type: model.PropertyHouse, Keywords: []string{"maison", "villa"}},
	{Type: model.PropertyStudio, Keywords: []string{"studio"}},
	{Type: model.PropertyLoft, Keywords: []string{"loft"}},
}

// AmenityCue maps keywords to an amenity tag
type AmenityCue struct {
	Tag      string
	Keywords []string
}

// AmenityCues are all evaluated; every matching tag is kept
var AmenityCues = []AmenityCue{
	{Tag: model.AmenityPool, Keywords: []string{"piscine"}},
	{Tag: model.AmenitySeaView, Keywords: []string{"vue mer", "mer"}},
	{Tag: model.AmenityParking, Keywords: []string{"parking", "garage"}},
	{Tag: model.AmenityGarden, Keywords: []string{"jardin"}},
	{Tag: model.AmenityTerrace, Keywords: []string{"terrasse", "balcon"}},
}

// TopicCue maps keywords to a broader topic
type TopicCue struct {
	Topic    model.Topic
	Keywords []string
}

// TopicCues are checked in declaration order; at most one topic is detected
var TopicCues = []TopicCue{
	{Topic: model.TopicPrice, Keywords: []string{"prix", "coût", "combien", "cher", "euro", "€"}},
	{Topic: model.TopicLocation, Keywords: []string{"où", "quelle ville", "secteur", "zone", "région"}},
	{Topic: model.TopicFeatures, Keywords: []string{"caractéristique", "équipement", "inclus", "avec"}},
	{Topic: model.TopicProcess, Keywords: []string{"comment", "étape", "processus", "démarche", "procédure"}},
	{Topic: model.TopicTime, Keywords: []string{"quand", "délai", "combien de temps", "durée"}},
	{Topic: model.TopicComparison, Keywords: []string{"différence", "mieux", "versus", "comparer"}},
	{Topic: model.TopicOpinion, Keywords: []string{"penses", "avis", "recommand", "conseil"}},
}

// NamePattern runs case-insensitively on folded (not lower-cased) text so the
// captured name keeps the user's casing. The first non-empty group wins.
var NamePattern = regexp.MustCompile(`(?i)je m'appelle\s+(\p{L}[\p{L}'-]*)|mon nom est\s+(\p{L}[\p{L}'-]*)`)

// BudgetPattern matches an amount followed by a unit (k, mille, €) or a bare
// multiple of 1000. The match is kept verbatim. Amounts must start a word so
// digits of "T3" or "m2" never prefix the price.
var BudgetPattern = regexp.MustCompile(
	`\b(?:\d{1,3}(?:[ .]\d{3})+|\d+)\s*(?:k\b|mille\b|€)` +
		`|\b(?:\d{1,3}(?:[ .]\d{3})*[ .]000|\d+000)\b`)

// Keywords lists every substring keyword of the tables above
func Keywords() []string {
	out := append([]string{}, Cities...)
	for _, cue := range PropertyTypeCues {
		out = append(out, cue.Keywords...)
	}
	for _, cue := range AmenityCues {
		out = append(out, cue.Keywords...)
	}
	for _, cue := range TopicCues {
		out = append(out, cue.Keywords...)
	}
	return out
}
