package service

import (
	"immo-assistant/internal/lexicon"
	"immo-assistant/internal/model"
)

// Extractor pulls structured facts out of a single utterance
type Extractor struct {
	index *lexicon.Index
}

// NewExtractor creates an extractor scanning with index.
// A nil index is replaced by one built from the lexicon tables.
func NewExtractor(index *lexicon.Index) *Extractor {
	if index == nil {
		index = lexicon.NewIndex(lexicon.Keywords())
	}
	return &Extractor{index: index}
}

// Extract runs every field extractor independently.
// Nothing is defaulted: a field the utterance does not mention stays empty.
func (e *Extractor) Extract(utterance string) model.ExtractedFacts {
	return e.extract(utterance, e.index.Scan(utterance))
}

func (e *Extractor) extract(utterance string, hits lexicon.Hits) model.ExtractedFacts {
	var facts model.ExtractedFacts
	if hits.Text() == "" {
		return facts
	}

	facts.Name = extractName(utterance)
	facts.Budget = lexicon.BudgetPattern.FindString(hits.Text())

	for _, city := range lexicon.Cities {
		if hits.Has(city) {
			facts.Location = city
			break
		}
	}

	for _, cue := range lexicon.PropertyTypeCues {
		if lexicon.Any(cue.Keywords...).Eval(hits) {
			facts.PropertyType = cue.Type
			break
		}
	}

	var amenities []string
	for _, cue := range lexicon.AmenityCues {
		if lexicon.Any(cue.Keywords...).Eval(hits) {
			amenities = append(amenities, cue.Tag)
		}
	}
	facts.Amenities = model.NewSet(amenities...)

	for _, cue := range lexicon.TopicCues {
		if lexicon.Any(cue.Keywords...).Eval(hits) {
			facts.DetectedTopics = model.NewSet(cue.Topic.String())
			break
		}
	}

	return facts
}

// extractName matches on folded text so the captured name keeps its casing
func extractName(utterance string) string {
	m := lexicon.NamePattern.FindStringSubmatch(lexicon.Fold(utterance))
	if m == nil {
		return ""
	}
	for _, group := range m[1:] {
		if group != "" {
			return group
		}
	}
	return ""
}
