package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTournament_AsksEveryPairOnce(t *testing.T) {
	tr, err := NewTournament(elems("A", "B", "C", "D"))
	require.NoError(t, err)

	var seen []string
	for cmp := tr.NextComparison(); cmp != nil; cmp = tr.NextComparison() {
		seen = append(seen, cmp.A.ID+cmp.B.ID)
		require.NoError(t, tr.RecordChoice(cmp.A.ID))
	}

	// All i<j pairs in input order: n*(n-1)/2 of them.
	assert.Equal(t, []string{"AB", "AC", "AD", "BC", "BD", "CD"}, seen)
	assert.True(t, tr.Complete())
}

func TestTournament_OrdersByWins(t *testing.T) {
	tr, err := NewTournament(elems("A", "B", "C"))
	require.NoError(t, err)

	// B beats everyone, C beats A.
	winners := map[string]string{"AB": "B", "AC": "C", "BC": "B"}
	for cmp := tr.NextComparison(); cmp != nil; cmp = tr.NextComparison() {
		require.NoError(t, tr.RecordChoice(winners[cmp.A.ID+cmp.B.ID]))
	}

	ranking, err := tr.Result()
	require.NoError(t, err)
	assert.Equal(t, elems("B", "C", "A"), ranking)
}

func TestTournament_TiesKeepInputOrder(t *testing.T) {
	tr, err := NewTournament(elems("A", "B", "C"))
	require.NoError(t, err)

	// A beats B, B beats C, C beats A: every element wins once.
	winners := map[string]string{"AB": "A", "AC": "C", "BC": "B"}
	for cmp := tr.NextComparison(); cmp != nil; cmp = tr.NextComparison() {
		require.NoError(t, tr.RecordChoice(winners[cmp.A.ID+cmp.B.ID]))
	}

	ranking, err := tr.Result()
	require.NoError(t, err)
	assert.Equal(t, elems("A", "B", "C"), ranking)
}

func TestTournament_Errors(t *testing.T) {
	_, err := NewTournament(elems("A"))
	assert.ErrorIs(t, err, ErrInvalidInput)

	tr, err := NewTournament(elems("A", "B"))
	require.NoError(t, err)

	_, err = tr.Result()
	assert.ErrorIs(t, err, ErrNotComplete)

	assert.ErrorIs(t, tr.RecordChoice("Z"), ErrInvalidChoice)
	require.NoError(t, tr.RecordChoice("A"))
	assert.ErrorIs(t, tr.RecordChoice("A"), ErrInvalidChoice)
}
