package lexicon

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexScan(t *testing.T) {
	idx := NewIndex([]string{"cherche", "cher", "Piscine", "vue mer"}, []string{"cher", ""})

	assert.Equal(t, 4, idx.KeywordCount(), "keywords are deduplicated and blanks dropped")

	hits := idx.Scan("Je CHERCHE une villa avec piscine et vue mer")
	assert.Equal(t, "je cherche une villa avec piscine et vue mer", hits.Text())
	assert.True(t, hits.Has("cherche"))
	assert.True(t, hits.Has("cher"), "overlapping keywords are all reported")
	assert.True(t, hits.Has("piscine"))
	assert.True(t, hits.Has("vue mer"))
	assert.True(t, hits.Has("villa"), "unindexed keywords fall back to a substring check")
	assert.False(t, hits.Has("jardin"))
	assert.False(t, hits.Has(""))
}

func TestIndexScanEmpty(t *testing.T) {
	idx := NewIndex(Keywords())
	hits := idx.Scan("")
	assert.Equal(t, "", hits.Text())
	assert.False(t, hits.Has("prix"))
	assert.False(t, hits.HasWord("prix"))

	empty := NewIndex()
	assert.Zero(t, empty.KeywordCount())
	assert.True(t, empty.Scan("le prix").Has("prix"))
}

func TestHasWord(t *testing.T) {
	hits := NewIndex().Scan("En mode VR, s'il te plaît")
	assert.True(t, hits.HasWord("vr"))
	assert.True(t, hits.HasWord("plaît"))
	assert.False(t, hits.HasWord("ar"), "ar inside another word is not a word")
}

func TestPredicates(t *testing.T) {
	idx := NewIndex([]string{"visite", "planifier", "rdv"})
	hits := idx.Scan("Je veux planifier une visite")

	tests := []struct {
		name string
		pred Predicate
		want bool
	}{
		{"any hit", Any("rdv", "visite"), true},
		{"any miss", Any("rdv", "rencontrer"), false},
		{"any normalizes keywords", Any("VISITE"), true},
		{"all hit", All(Any("visite"), Any("planifier")), true},
		{"all miss", All(Any("visite"), Any("rdv")), false},
		{"empty all", All(), false},
		{"or", Or(Any("rdv"), All(Any("visite"), Any("planifier"))), true},
		{"empty or", Or(), false},
		{"word", Word("une"), true},
		{"word inside word", Word("plan"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pred.Eval(hits))
		})
	}
}

func TestPredicateKeywords(t *testing.T) {
	pred := Or(Any("Estim", "vaut"), All(Any("prix"), Any("bien")), Word("ar"))
	assert.Equal(t, []string{"estim", "vaut", "prix", "bien"}, pred.Keywords())
}

func TestIndexConcurrentScan(t *testing.T) {
	idx := NewIndex(Keywords())
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				hits := idx.Scan("appartement à Nice avec piscine")
				assert.True(t, hits.Has("piscine"))
				assert.True(t, hits.Has("nice"))
			}
		}()
	}
	wg.Wait()
}
