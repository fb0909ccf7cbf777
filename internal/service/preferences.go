package service

import "immo-assistant/internal/model"

// MergePreferences folds one turn's facts into the accumulated preferences.
// Scalars are replaced only by non-empty facts, sets only grow and Language
// is never touched. Merging the same facts twice equals merging them once.
func MergePreferences(current model.UserPreferences, facts model.ExtractedFacts) model.UserPreferences {
	merged := current

	if facts.Name != "" {
		merged.Name = facts.Name
	}
	if facts.Budget != "" {
		merged.Budget = facts.Budget
	}
	if facts.Location != "" {
		merged.Location = facts.Location
	}
	if facts.PropertyType != "" {
		merged.PropertyType = facts.PropertyType
	}
	if len(facts.Amenities) > 0 {
		merged.Amenities = current.Amenities.Union(facts.Amenities)
	}
	if len(facts.DetectedTopics) > 0 {
		merged.Topics = current.Topics.Union(facts.DetectedTopics)
	}

	return merged
}
