package game

// TallyResult is the outcome of counting one round of votes.
type TallyResult struct {
	// EliminatedID is the player voted out, empty when the round is a tie.
	EliminatedID string
	IsTie        bool
	MaxVotes     int
}

// TallyVotes resolves a round's elimination from the vote counts of the
// alive players. A single player with the highest count is eliminated; any
// tie at the top protects all tied players and nobody is eliminated.
func TallyVotes(votes map[string]int) TallyResult {
	maxVotes := 0
	var candidates []string
	for playerID, count := range votes {
		switch {
		case count > maxVotes:
			maxVotes = count
			candidates = []string{playerID}
		case count == maxVotes:
			candidates = append(candidates, playerID)
		}
	}

	result := TallyResult{MaxVotes: maxVotes}
	if len(candidates) == 1 {
		result.EliminatedID = candidates[0]
	} else {
		result.IsTie = true
	}
	return result
}
