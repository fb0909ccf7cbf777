package service

import (
	"go.uber.org/zap"

	"immo-assistant/internal/lexicon"
	"immo-assistant/internal/model"
)

// TurnResult is the outcome of one chat turn
type TurnResult struct {
	Topic       model.Topic
	Facts       model.ExtractedFacts
	Reply       model.Reply
	Preferences model.UserPreferences
}

// Engine ties extraction, classification and reply selection together.
// It holds no per-session state and is safe for concurrent use.
type Engine struct {
	index      *lexicon.Index
	extractor  *Extractor
	classifier *Classifier
	responder  *Responder
	metrics    *Metrics
	logger     *zap.Logger
}

// NewEngine creates an engine over the default rule table
func NewEngine(responder *Responder, metrics *Metrics, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	index := lexicon.NewIndex(lexicon.Keywords(), RuleKeywords(DefaultRules))
	logger.Debug("Keyword index built", zap.Int("keywords", index.KeywordCount()))

	return &Engine{
		index:      index,
		extractor:  NewExtractor(index),
		classifier: NewClassifier(DefaultRules, index, logger),
		responder:  responder,
		metrics:    metrics,
		logger:     logger,
	}
}

// HandleTurn extracts facts from the utterance, merges them into prefs,
// classifies the turn and renders the reply against the merged preferences.
// prefs is not modified; the updated copy is returned.
func (e *Engine) HandleTurn(utterance string, prefs model.UserPreferences, page *model.PageContext) TurnResult {
	hits := e.index.Scan(utterance)
	facts := e.extractor.extract(utterance, hits)
	updated := MergePreferences(prefs, facts)
	topic := e.classifier.classify(hits, facts)
	reply := e.responder.Respond(topic, updated, page)

	e.logger.Debug("Turn classified",
		zap.String("topic", topic.String()),
		zap.Bool("facts", !facts.IsEmpty()))
	e.metrics.RecordTurn(topic)

	return TurnResult{
		Topic:       topic,
		Facts:       facts,
		Reply:       reply,
		Preferences: updated,
	}
}

// Welcome renders the message that opens a conversation
func (e *Engine) Welcome(prefs model.UserPreferences) model.Reply {
	return e.responder.Respond(model.TopicWelcome, prefs, nil)
}

// Extract exposes the engine's extractor
func (e *Engine) Extract(utterance string) model.ExtractedFacts {
	return e.extractor.Extract(utterance)
}
