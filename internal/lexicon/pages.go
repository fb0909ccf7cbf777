package lexicon

import "strings"

var pageSuggestions = map[string][]string{
	"/": {
		"Comment ça marche ?",
		"Voir les propriétés",
		"Services proposés",
		"Zones couvertes",
	},
	"/properties": {
		"Filtre par budget",
		"Propriétés avec piscine",
		"Vue sur mer disponible ?",
		"Nouveaux biens cette semaine",
	},
	"/properties/:id": {
		"Visite virtuelle 3D",
		"Calculer mon prêt",
		"Quartier et commodités",
		"Propriétés similaires",
	},
	"/owners": {
		"Comment vendre rapidement ?",
		"Estimation gratuite",
		"Services inclus",
		"Durée moyenne de vente",
	},
	"/dashboard": {
		"Mes favoris",
		"Nouvelles alertes",
		"Historique recherches",
		"Recommandations",
	},
}

// PageSuggestions returns the suggestion chips for a site page, or nil for unknown pages.
// Any path below /properties/ is treated as a property detail page.
func PageSuggestions(path string) []string {
	path = strings.TrimSpace(path)
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	key := path
	if strings.HasPrefix(path, "/properties/") {
		key = "/properties/:id"
	}
	chips, ok := pageSuggestions[key]
	if !ok {
		return nil
	}
	out := make([]string, len(chips))
	copy(out, chips)
	return out
}
