package service

import (
	"immo-assistant/internal/lexicon"
	"immo-assistant/internal/model"
)

// Rule maps a keyword condition to a topic
type Rule struct {
	Topic model.Topic
	When  lexicon.Predicate
}

var (
	has    = lexicon.Any
	both   = lexicon.All
	either = lexicon.Or
	word   = lexicon.Word
)

// DefaultRules is the ordered rule table. The first rule whose condition holds
// decides the topic; later rules are shadowed for overlapping keywords.
var DefaultRules = []Rule{
	{model.TopicAppointment, either(has("rendez-vous", "rdv", "rencontrer"), both(has("visite"), has("planifier")))},
	{model.TopicDocumentation, has("document", "papier", "dossier", "administratif")},
	{model.TopicLeadQualify, both(has("cherche"), has("pas sûr", "sais pas", "hésit"))},
	{model.TopicFinancing, has("finance", "banque", "emprunt", "taux")},
	{model.TopicNeighborhood, has("quartier", "coin", "secteur", "ambiance", "vie")},
	{model.TopicLegal, has("légal", "loi", "juridique", "notaire", "droit")},
	{model.TopicRenovation, has("travaux", "réno", "rénov", "transformer")},
	{model.TopicFirstTimeBuyer, has("première fois", "premier achat", "jamais acheté", "débutant")},
	{model.TopicSellingTips, both(has("conseil"), has("vend"))},
	{model.TopicLifeEvent, has("divorce", "sépar", "décès", "héritage", "mutation", "déménage")},
	{model.TopicGreeting, has("salut", "bonjour", "coucou", "hello")},
	{model.TopicPropertySearch, has("cherche", "recherche", "trouve", "appartement", "maison", "villa")},
	{model.TopicMortgage, has("prêt", "crédit", "mensualité", "calcul")},
	{model.TopicVirtualTour, has("visite", "3d", "virtuelle", "voir")},
	{model.TopicValuation, either(has("estim", "vaut"), both(has("prix"), has("bien")))},
	{model.TopicLocalServices, has("commodité")},
	{model.TopicInvestment, has("investir", "investissement", "rentabilité", "roi")},
	{model.TopicFavorites, has("favori", "sauvegard", "aimé")},
	{model.TopicARVR, either(has("réalité", "augmentée"), word("ar", "vr"))},
}

// RuleKeywords lists the substring keywords used by rules
func RuleKeywords(rules []Rule) []string {
	var out []string
	for _, r := range rules {
		out = append(out, r.When.Keywords()...)
	}
	return out
}
