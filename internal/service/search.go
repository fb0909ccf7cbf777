package service

import (
	"strings"

	"go.uber.org/zap"

	"immo-assistant/internal/lexicon"
	"immo-assistant/internal/model"
)

// ParseQuery turns a free-text search into filters merged onto prior,
// the filters the user already set through form controls
func (e *Engine) ParseQuery(utterance string, prior model.SearchFilters) model.SearchFilters {
	filters, _ := e.ParseQueryFacts(utterance, prior)
	return filters
}

// ParseQueryFacts is ParseQuery that also returns the extracted facts
func (e *Engine) ParseQueryFacts(utterance string, prior model.SearchFilters) (model.SearchFilters, model.ExtractedFacts) {
	facts := e.extractor.Extract(utterance)
	filters := BuildFilters(strings.TrimSpace(utterance), facts, prior)

	e.logger.Debug("Query parsed",
		zap.String("location", filters.Location),
		zap.String("property_type", filters.PropertyType),
		zap.Strings("amenities", filters.Amenities))
	e.metrics.RecordParse()

	return filters, facts
}

// BuildFilters merges extracted facts onto prior filters.
// Explicit filters win: parsed values only fill empty fields, except
// amenities which are unioned. prior is never modified.
func BuildFilters(query string, facts model.ExtractedFacts, prior model.SearchFilters) model.SearchFilters {
	// Start with explicit filters
	merged := prior
	merged.Amenities = prior.Amenities.Union(facts.Amenities)

	// Fill in missing fields from extracted facts
	if merged.Query == "" {
		merged.Query = query
	}
	if merged.Location == "" && facts.Location != "" {
		merged.Location = lexicon.Title(facts.Location)
	}
	if merged.PropertyType == "" && facts.PropertyType != "" {
		merged.PropertyType = string(facts.PropertyType)
	}
	if merged.PriceMax == "" && facts.Budget != "" {
		merged.PriceMax = facts.Budget
	}

	return merged
}
