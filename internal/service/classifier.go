package service

import (
	"go.uber.org/zap"

	"immo-assistant/internal/lexicon"
	"immo-assistant/internal/model"
)

// Classifier picks the topic of an utterance from an ordered rule table
type Classifier struct {
	rules     []Rule
	index     *lexicon.Index
	extractor *Extractor
	logger    *zap.Logger
}

// NewClassifier creates a classifier over rules, scanning with index.
// A nil index is built from the lexicon tables and the rule keywords.
func NewClassifier(rules []Rule, index *lexicon.Index, logger *zap.Logger) *Classifier {
	if index == nil {
		index = lexicon.NewIndex(lexicon.Keywords(), RuleKeywords(rules))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{
		rules:     rules,
		index:     index,
		extractor: NewExtractor(index),
		logger:    logger,
	}
}

// MatchRule returns the topic of the first rule that holds, or TopicUnclassified.
// Rules only read the utterance today; prefs is part of the contract so
// preference-aware rules can be added without changing callers.
func (c *Classifier) MatchRule(utterance string, prefs model.UserPreferences) model.Topic {
	return c.matchRule(c.index.Scan(utterance))
}

// Classify returns the rule topic, else the broader topic detected in the
// utterance, else TopicFallback. It never returns TopicUnclassified.
func (c *Classifier) Classify(utterance string, prefs model.UserPreferences) model.Topic {
	hits := c.index.Scan(utterance)
	return c.classify(hits, c.extractor.extract(utterance, hits))
}

func (c *Classifier) matchRule(hits lexicon.Hits) model.Topic {
	for _, rule := range c.rules {
		if rule.When.Eval(hits) {
			return rule.Topic
		}
	}
	return model.TopicUnclassified
}

func (c *Classifier) classify(hits lexicon.Hits, facts model.ExtractedFacts) model.Topic {
	topic := c.matchRule(hits)
	if topic != model.TopicUnclassified {
		return topic
	}
	// DetectedTopics holds at most one topic
	if len(facts.DetectedTopics) > 0 {
		c.logger.Debug("No rule matched, using detected topic",
			zap.String("topic", facts.DetectedTopics[0]))
		return model.Topic(facts.DetectedTopics[0])
	}
	return model.TopicFallback
}
