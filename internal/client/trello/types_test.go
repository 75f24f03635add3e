package trello

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardRoundTrip(t *testing.T) {
	in := `{"id":"c1","name":"Task","desc":"details","idList":"l1","idBoard":"b1","due":"2026-11-01T12:00:00.000Z","closed":false,"url":"https://trello.com/c/c1","pos":65535,"idLabels":[],"idMembers":[]}`

	var card Card
	require.NoError(t, json.Unmarshal([]byte(in), &card))

	out, err := json.Marshal(card)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}

func TestCardNormalizesCollections(t *testing.T) {
	var card Card
	require.NoError(t, json.Unmarshal([]byte(`{"id":"c1","name":"Task","idList":"l1","idBoard":"b1","idLabels":null}`), &card))

	assert.Equal(t, []string{}, card.LabelIDs)
	assert.Equal(t, []string{}, card.MemberIDs)

	out, err := json.Marshal(card)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"idLabels":[]`)
	assert.Contains(t, string(out), `"idMembers":[]`)
	assert.NotContains(t, string(out), `"desc"`)
	assert.NotContains(t, string(out), `"due"`)
}

func TestBoardOptionalFields(t *testing.T) {
	out, err := json.Marshal(Board{ID: "b1", Name: "Roadmap"})
	require.NoError(t, err)
	assert.Equal(t, `{"id":"b1","name":"Roadmap","closed":false}`, string(out))
}
