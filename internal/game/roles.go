package game

import (
	"math/rand"

	"github.com/alouani-moncif/secret-word-society-replit/internal/models"
)

const (
	// MinPlayers is the smallest roster a game can start with.
	MinPlayers = 3

	// WhiteWord is the placeholder handed to white-role players. It is never
	// one of the real words and is never used in win evaluation.
	WhiteWord = "Secret Agent"
)

// Assignment pairs a player with the role and word they play this game.
type Assignment struct {
	PlayerID string
	Role     models.PlayerRole
	Word     string
}

// RoleCounts returns the number of undercover and white slots for a roster
// of the given size. The counts are a fixed function of roster size; only
// the mapping of roles to players is random.
func RoleCounts(playerCount int) (undercover, white int) {
	undercover = 1
	if playerCount >= 7 {
		undercover = 2
	}
	if playerCount >= 6 {
		white = 1
	}
	return undercover, white
}

// AssignRoles partitions the roster into factions and assigns each player a
// word. The permutation comes from rng so callers can seed it for
// deterministic tests. With the thresholds in RoleCounts there is always at
// least one normal player left over.
func AssignRoles(playerIDs []string, pair models.WordPair, rng *rand.Rand) []Assignment {
	undercoverCount, whiteCount := RoleCounts(len(playerIDs))

	shuffled := make([]string, len(playerIDs))
	copy(shuffled, playerIDs)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	assignments := make([]Assignment, 0, len(shuffled))
	for i, id := range shuffled {
		switch {
		case i < undercoverCount:
			assignments = append(assignments, Assignment{
				PlayerID: id,
				Role:     models.RoleUndercover,
				Word:     pair.Undercover,
			})
		case i < undercoverCount+whiteCount:
			assignments = append(assignments, Assignment{
				PlayerID: id,
				Role:     models.RoleWhite,
				Word:     WhiteWord,
			})
		default:
			assignments = append(assignments, Assignment{
				PlayerID: id,
				Role:     models.RoleNormal,
				Word:     pair.Normal,
			})
		}
	}

	return assignments
}
