package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"immo-assistant/internal/lexicon"
	"immo-assistant/internal/model"
)

// technicalIssue is returned when a template fails to render at request time
const technicalIssue = "Oups, j'ai un petit souci technique là... 😅 Réessaie dans un instant !"

// Rand picks template variants. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Responder turns a topic and the user's preferences into a reply
type Responder struct {
	templates *lexicon.TemplateSet
	now       func() time.Time
	logger    *zap.Logger

	mu  sync.Mutex // guards rnd
	rnd Rand
}

// RequiredTopics lists every topic a template set must cover
func RequiredTopics(rules []Rule) []model.Topic {
	topics := []model.Topic{model.TopicWelcome, model.TopicFallback}
	for _, r := range rules {
		topics = append(topics, r.Topic)
	}
	return append(topics, model.CategoryTopics...)
}

// NewResponder validates that templates cover every topic the rules and the
// broader pass can produce. rnd and now default to a time-seeded source and
// time.Now.
func NewResponder(templates *lexicon.TemplateSet, rnd Rand, now func() time.Time, logger *zap.Logger) (*Responder, error) {
	if templates == nil {
		return nil, fmt.Errorf("responder: no templates")
	}
	if missing := templates.Missing(RequiredTopics(DefaultRules)); len(missing) > 0 {
		return nil, fmt.Errorf("responder: no templates for topics %v", missing)
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Responder{
		templates: templates,
		rnd:       rnd,
		now:       now,
		logger:    logger,
	}, nil
}

// Respond renders a reply for topic. It only reads prefs.
// Unknown topics are answered with the fallback pool.
func (r *Responder) Respond(topic model.Topic, prefs model.UserPreferences, page *model.PageContext) model.Reply {
	tmpl, ok := r.templates.Topic(topic)
	if !ok {
		topic = model.TopicFallback
		tmpl, _ = r.templates.Topic(topic)
	}

	variant := tmpl.Variants[r.pick(len(tmpl.Variants))]
	text, suggestions, err := variant.Render(r.templateData(prefs))
	if err != nil {
		r.logger.Error("Failed to render reply",
			zap.String("topic", topic.String()),
			zap.Error(err))
		return model.Reply{Text: technicalIssue}
	}

	if variant.PageSuggestions {
		if chips := pageChips(page); len(chips) > 0 {
			suggestions = chips
		}
	}

	reply := model.Reply{Text: text, Suggestions: suggestions}
	if tmpl.Attachment != nil {
		attachment := *tmpl.Attachment
		reply.Attachment = &attachment
	}
	return reply
}

func (r *Responder) pick(n int) int {
	if n <= 1 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}

func (r *Responder) templateData(prefs model.UserPreferences) lexicon.TemplateData {
	data := lexicon.TemplateData{
		Name:         prefs.Name,
		Budget:       prefs.Budget,
		Location:     prefs.Location,
		PropertyType: string(prefs.PropertyType),
		DayGreeting:  dayGreeting(r.now().Hour()),
	}
	if prefs.Name != "" {
		data.Greeting = prefs.Name + ", "
	}
	return data
}

func dayGreeting(hour int) string {
	switch {
	case hour < 12:
		return "Belle matinée"
	case hour < 18:
		return "Bon après-midi"
	default:
		return "Bonne soirée"
	}
}

// pageChips prefers explicit page suggestions over the per-page defaults
func pageChips(page *model.PageContext) []string {
	if page == nil {
		return nil
	}
	if len(page.Suggestions) > 0 {
		out := make([]string, len(page.Suggestions))
		copy(out, page.Suggestions)
		return out
	}
	return lexicon.PageSuggestions(page.Path)
}
