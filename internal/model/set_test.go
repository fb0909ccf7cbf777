package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSet(t *testing.T) {
	assert.Nil(t, NewSet())
	assert.Nil(t, NewSet("", ""))
	assert.Equal(t, Set{"garden", "pool"}, NewSet("pool", "garden", "pool", ""))
}

func TestSetOperations(t *testing.T) {
	a := NewSet("pool", "sea_view")
	b := NewSet("garden", "pool")

	union := a.Union(b)
	assert.Equal(t, Set{"garden", "pool", "sea_view"}, union)
	assert.Equal(t, Set{"pool", "sea_view"}, a)
	assert.True(t, union.IsSuperset(a))
	assert.True(t, union.IsSuperset(b))
	assert.False(t, a.IsSuperset(b))
	assert.True(t, a.IsSuperset(nil))

	assert.True(t, union.Contains("garden"))
	assert.False(t, Set(nil).Contains("garden"))
	assert.Nil(t, Set(nil).Union(nil))
}

func TestSetSQL(t *testing.T) {
	v, err := Set(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), v)

	v, err = NewSet("pool", "garden").Value()
	require.NoError(t, err)
	assert.Equal(t, []byte(`["garden","pool"]`), v)

	var s Set
	require.NoError(t, s.Scan([]byte(`["pool","garden","pool"]`)))
	assert.Equal(t, Set{"garden", "pool"}, s)

	require.NoError(t, s.Scan(`[]`))
	assert.Nil(t, s)

	require.NoError(t, s.Scan(nil))
	assert.Nil(t, s)

	assert.Error(t, s.Scan(42))
	assert.Error(t, s.Scan([]byte("{")))
}

func TestUserPreferencesSQL(t *testing.T) {
	prefs := UserPreferences{
		Name:         "Léa",
		Location:     "cannes",
		PropertyType: PropertyHouse,
		Amenities:    NewSet(AmenityGarden, AmenityPool),
		Language:     "fr",
	}

	v, err := prefs.Value()
	require.NoError(t, err)

	var scanned UserPreferences
	require.NoError(t, scanned.Scan(v))
	assert.Equal(t, prefs, scanned)

	assert.Error(t, scanned.Scan(3.14))
}

func TestMessageColumns(t *testing.T) {
	var teaser *PropertyTeaser
	v, err := teaser.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	var chips JSONArray
	require.NoError(t, chips.Scan(`["Paris","Nice"]`))
	assert.Equal(t, JSONArray{"Paris", "Nice"}, chips)

	v, err = JSONArray(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestExtractedFactsIsEmpty(t *testing.T) {
	assert.True(t, ExtractedFacts{}.IsEmpty())
	assert.False(t, ExtractedFacts{Budget: "300k"}.IsEmpty())
	assert.False(t, ExtractedFacts{DetectedTopics: NewSet("price")}.IsEmpty())
}

func TestSetUnmarshalJSON(t *testing.T) {
	var filters struct {
		Amenities Set `json:"amenities"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"amenities":["terrace","pool","garden","pool",""]}`), &filters))
	assert.Equal(t, Set{"garden", "pool", "terrace"}, filters.Amenities)
	assert.True(t, filters.Amenities.Contains("terrace"))
	assert.True(t, filters.Amenities.Contains("garden"))

	var prefs UserPreferences
	require.NoError(t, json.Unmarshal([]byte(`{"amenities":["sea_view","elevator"],"language":"fr"}`), &prefs))
	assert.True(t, prefs.Amenities.Contains("sea_view"))
	assert.True(t, prefs.Amenities.Contains("elevator"))

	var s Set
	require.NoError(t, json.Unmarshal([]byte(`null`), &s))
	assert.Nil(t, s)
	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &s))
}
