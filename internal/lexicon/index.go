// Package lexicon holds the static keyword tables, patterns and reply templates
// of the assistant, plus the Aho-Corasick index used to scan utterances.
package lexicon

import (
	"strings"
	"sync"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// Index finds every known keyword contained in a text in a single pass
type Index struct {
	mu       sync.Mutex // Matcher.Match mutates internal counters
	matcher  *ahocorasick.Matcher
	keywords []string
	known    map[string]struct{}
}

// NewIndex builds the automaton. Keywords are normalized and deduplicated.
func NewIndex(keywords ...[]string) *Index {
	idx := &Index{known: make(map[string]struct{})}
	for _, list := range keywords {
		for _, kw := range list {
			normalized := Normalize(kw)
			if normalized == "" {
				continue
			}
			if _, dup := idx.known[normalized]; dup {
				continue
			}
			idx.known[normalized] = struct{}{}
			idx.keywords = append(idx.keywords, normalized)
		}
	}
	if len(idx.keywords) > 0 {
		idx.matcher = ahocorasick.NewStringMatcher(idx.keywords)
	}
	return idx
}

// KeywordCount returns the number of distinct keywords in the index
func (x *Index) KeywordCount() int {
	return len(x.keywords)
}

// Scan normalizes text and collects the keywords it contains
func (x *Index) Scan(text string) Hits {
	normalized := Normalize(text)
	hits := Hits{
		text:  normalized,
		found: make(map[string]struct{}),
		known: x.known,
	}
	for _, w := range words(normalized) {
		if hits.words == nil {
			hits.words = make(map[string]struct{})
		}
		hits.words[w] = struct{}{}
	}
	if x.matcher == nil || normalized == "" {
		return hits
	}

	x.mu.Lock()
	matched := x.matcher.Match([]byte(normalized))
	x.mu.Unlock()

	for _, i := range matched {
		if i < len(x.keywords) {
			hits.found[x.keywords[i]] = struct{}{}
		}
	}
	return hits
}

// Hits is the result of scanning one utterance
type Hits struct {
	text  string
	found map[string]struct{}
	words map[string]struct{}
	known map[string]struct{}
}

// Text returns the normalized utterance
func (h Hits) Text() string {
	return h.text
}

// Has reports whether the normalized utterance contains keyword as a substring.
// Keywords missing from the index are checked directly.
func (h Hits) Has(keyword string) bool {
	if _, ok := h.found[keyword]; ok {
		return true
	}
	if _, indexed := h.known[keyword]; indexed {
		return false
	}
	return keyword != "" && strings.Contains(h.text, keyword)
}

// HasWord reports whether w appears as a whole word
func (h Hits) HasWord(w string) bool {
	_, ok := h.words[w]
	return ok
}

// Predicate is a boolean condition over a scanned utterance
type Predicate interface {
	Eval(h Hits) bool
	// Keywords lists the substring keywords the predicate depends on
	Keywords() []string
}

type anyOf []string

// Any matches when the utterance contains at least one of the keywords
func Any(keywords ...string) Predicate {
	p := make(anyOf, 0, len(keywords))
	for _, kw := range keywords {
		p = append(p, Normalize(kw))
	}
	return p
}

func (p anyOf) Eval(h Hits) bool {
	for _, kw := range p {
		if h.Has(kw) {
			return true
		}
	}
	return false
}

func (p anyOf) Keywords() []string { return p }

type wordOf []string

// Word matches when one of the words appears on its own, not inside another word
func Word(ws ...string) Predicate {
	p := make(wordOf, 0, len(ws))
	for _, w := range ws {
		p = append(p, Normalize(w))
	}
	return p
}

func (p wordOf) Eval(h Hits) bool {
	for _, w := range p {
		if h.HasWord(w) {
			return true
		}
	}
	return false
}

func (p wordOf) Keywords() []string { return nil }

type allOf []Predicate

// All matches when every predicate matches
func All(preds ...Predicate) Predicate {
	return allOf(preds)
}

func (p allOf) Eval(h Hits) bool {
	for _, pred := range p {
		if !pred.Eval(h) {
			return false
		}
	}
	return len(p) > 0
}

func (p allOf) Keywords() []string { return collect(p) }

type orOf []Predicate

// Or matches when at least one predicate matches
func Or(preds ...Predicate) Predicate {
	return orOf(preds)
}

func (p orOf) Eval(h Hits) bool {
	for _, pred := range p {
		if pred.Eval(h) {
			return true
		}
	}
	return false
}

func (p orOf) Keywords() []string { return collect(p) }

func collect(preds []Predicate) []string {
	var out []string
	for _, pred := range preds {
		out = append(out, pred.Keywords()...)
	}
	return out
}
