package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"immo-assistant/internal/lexicon"
	"immo-assistant/internal/model"
)

// Each utterance must match its rule and no rule declared before it.
// Adding a rule earlier in the table that steals one of these fails here.
var precedenceCases = []struct {
	utterance string
	topic     model.Topic
}{
	{"Je voudrais un rdv", model.TopicAppointment},
	{"Je veux un rendez-vous cette semaine", model.TopicAppointment},
	{"On peut planifier une visite ?", model.TopicAppointment},
	{"Quels papiers fournir", model.TopicDocumentation},
	{"Je cherche mais je sais pas quoi", model.TopicLeadQualify},
	{"Je cherche, j'hésite encore", model.TopicLeadQualify},
	{"Quel taux pour ma banque", model.TopicFinancing},
	{"Le quartier est calme ?", model.TopicNeighborhood},
	{"Les frais de notaire", model.TopicLegal},
	{"Des travaux à faire", model.TopicRenovation},
	{"C'est mon premier achat", model.TopicFirstTimeBuyer},
	{"Un conseil pour vendre", model.TopicSellingTips},
	{"Je déménage bientôt", model.TopicLifeEvent},
	{"Bonjour", model.TopicGreeting},
	{"Hello !", model.TopicGreeting},
	{"Je cherche une villa", model.TopicPropertySearch},
	{"Un appartement à Lyon", model.TopicPropertySearch},
	{"Calcul de mensualité", model.TopicMortgage},
	{"Une visite virtuelle", model.TopicVirtualTour},
	{"Combien vaut mon bien", model.TopicValuation},
	{"Quel prix pour un bien pareil", model.TopicValuation},
	{"Quelles commodités", model.TopicLocalServices},
	{"Investir à Lyon", model.TopicInvestment},
	{"Mes favoris", model.TopicFavorites},
	{"La réalité augmentée", model.TopicARVR},
	{"En mode VR", model.TopicARVR},
}

func TestRulePrecedence(t *testing.T) {
	index := lexicon.NewIndex(lexicon.Keywords(), RuleKeywords(DefaultRules))

	for _, tt := range precedenceCases {
		t.Run(tt.utterance, func(t *testing.T) {
			hits := index.Scan(tt.utterance)

			position := -1
			for i, rule := range DefaultRules {
				if rule.Topic == tt.topic {
					position = i
					break
				}
				assert.False(t, rule.When.Eval(hits), "shadowed by earlier rule %s", rule.Topic)
			}
			require.NotEqual(t, -1, position, "topic %s has no rule", tt.topic)
			assert.True(t, DefaultRules[position].When.Eval(hits))
		})
	}
}

func TestEveryRuleHasAPrecedenceCase(t *testing.T) {
	covered := make(map[model.Topic]bool)
	for _, tt := range precedenceCases {
		covered[tt.topic] = true
	}
	for _, rule := range DefaultRules {
		assert.True(t, covered[rule.Topic], "no precedence case for %s", rule.Topic)
	}
}

func TestRuleTopicsAreUnique(t *testing.T) {
	seen := make(map[model.Topic]bool)
	for _, rule := range DefaultRules {
		assert.False(t, seen[rule.Topic], "duplicate rule for %s", rule.Topic)
		seen[rule.Topic] = true
	}
}

func TestARVRNeedsWholeWords(t *testing.T) {
	index := lexicon.NewIndex(RuleKeywords(DefaultRules))
	arvr := DefaultRules[len(DefaultRules)-1]
	require.Equal(t, model.TopicARVR, arvr.Topic)

	assert.False(t, arvr.When.Eval(index.Scan("Un parking près de la gare")))
	assert.True(t, arvr.When.Eval(index.Scan("Tu as de l'AR ?")))
}
