package service

import (
	"math/rand"

	"go.uber.org/zap"

	"immo-assistant/internal/lexicon"
)

// EngineOptions configures NewEngineFromOptions
type EngineOptions struct {
	TemplatesPath string // empty uses the embedded templates
	Seed          int64  // 0 seeds from the clock
	Metrics       *Metrics
	Logger        *zap.Logger
}

// NewEngineFromOptions loads the reply templates and builds an engine
func NewEngineFromOptions(opts EngineOptions) (*Engine, error) {
	var (
		templates *lexicon.TemplateSet
		err       error
	)
	if opts.TemplatesPath != "" {
		templates, err = lexicon.LoadTemplatesFile(opts.TemplatesPath)
	} else {
		templates, err = lexicon.DefaultTemplates()
	}
	if err != nil {
		return nil, err
	}

	var rnd Rand
	if opts.Seed != 0 {
		rnd = rand.New(rand.NewSource(opts.Seed))
	}

	responder, err := NewResponder(templates, rnd, nil, opts.Logger)
	if err != nil {
		return nil, err
	}
	return NewEngine(responder, opts.Metrics, opts.Logger), nil
}
