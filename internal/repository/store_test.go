package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"immo-assistant/internal/model"
)

func sampleMessages() []model.Message {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return []model.Message{
		{
			ID:        "01HV0000000000000000000001",
			Text:      "Je cherche un appartement à Nice",
			Sender:    model.SenderUser,
			Timestamp: at,
		},
		{
			ID:          "01HV0000000000000000000002",
			Text:        "Super ! 🔍 Je vais t'aider à trouver le bien parfait.",
			Sender:      model.SenderAssistant,
			Timestamp:   at,
			Suggestions: model.JSONArray{"Propriétés à Nice", "Avec piscine"},
			Attachment:  &model.PropertyTeaser{ID: "1", Title: "Appartement 3 pièces - Vue Mer", Price: "450 000 €"},
		},
	}
}

// exerciseStore runs the behaviour every SessionStore must share
func exerciseStore(t *testing.T, store SessionStore) {
	t.Helper()
	ctx := context.Background()

	missing, err := store.GetPreferences(ctx, "unknown")
	require.NoError(t, err)
	assert.Nil(t, missing)

	prefs := model.NewUserPreferences("fr")
	require.NoError(t, store.CreateSession(ctx, "s1", prefs))

	got, err := store.GetPreferences(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "fr", got.Language)

	prefs.Name = "Karim"
	prefs.Amenities = model.NewSet(model.AmenityPool)
	require.NoError(t, store.SavePreferences(ctx, "s1", prefs))

	got, err = store.GetPreferences(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, prefs, *got)

	msgs := sampleMessages()
	require.NoError(t, store.AppendMessages(ctx, "s1", msgs[0]))
	require.NoError(t, store.AppendMessages(ctx, "s1", msgs[1]))
	require.NoError(t, store.AppendMessages(ctx, "s1"))

	log, err := store.ListMessages(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, log, 2)
	assert.Equal(t, msgs[0].ID, log[0].ID)
	assert.Equal(t, msgs[1].Suggestions, log[1].Suggestions)
	assert.Equal(t, msgs[1].Attachment, log[1].Attachment)
	assert.True(t, msgs[1].Timestamp.Equal(log[1].Timestamp))

	empty, err := store.ListMessages(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStoreCopiesLog(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.AppendMessages(ctx, "s1", sampleMessages()...))

	log, err := store.ListMessages(ctx, "s1")
	require.NoError(t, err)
	log[0].Text = "changed"

	again, err := store.ListMessages(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Je cherche un appartement à Nice", again[0].Text)
}
