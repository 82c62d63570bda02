package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alouani-moncif/secret-word-society-replit/internal/game"
)

func TestTallyVotes_SingleLeader(t *testing.T) {
	result := game.TallyVotes(map[string]int{
		"a": 3,
		"b": 1,
		"c": 0,
	})

	assert.False(t, result.IsTie)
	assert.Equal(t, "a", result.EliminatedID)
	assert.Equal(t, 3, result.MaxVotes)
}

func TestTallyVotes_TieProtectsAllTied(t *testing.T) {
	result := game.TallyVotes(map[string]int{
		"a": 3,
		"b": 3,
		"c": 1,
	})

	assert.True(t, result.IsTie)
	assert.Empty(t, result.EliminatedID)
	assert.Equal(t, 3, result.MaxVotes)
}

func TestTallyVotes_AllZero(t *testing.T) {
	// Degenerate case: nobody received a vote. Everyone ties at zero and
	// nobody is eliminated.
	result := game.TallyVotes(map[string]int{
		"a": 0,
		"b": 0,
		"c": 0,
	})

	assert.True(t, result.IsTie)
	assert.Empty(t, result.EliminatedID)
	assert.Equal(t, 0, result.MaxVotes)
}

func TestTallyVotes_SinglePlayerZeroVotes(t *testing.T) {
	// Zero can be the max; a lone candidate is still eliminated.
	result := game.TallyVotes(map[string]int{"a": 0})

	assert.False(t, result.IsTie)
	assert.Equal(t, "a", result.EliminatedID)
}

func TestTallyVotes_Empty(t *testing.T) {
	result := game.TallyVotes(nil)
	assert.True(t, result.IsTie)
	assert.Empty(t, result.EliminatedID)
}
