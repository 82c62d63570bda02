package game

import (
	"github.com/alouani-moncif/secret-word-society-replit/internal/models"
)

// EvaluateWin inspects the roles of the players still alive after an
// elimination and reports whether the game is over. White players count on
// the non-undercover side.
//
// The zero-undercover check must come first: an empty undercover faction is
// a clean normal win, not a degenerate parity comparison.
func EvaluateWin(aliveRoles []models.PlayerRole) (models.GameResult, bool) {
	undercoverAlive := 0
	otherAlive := 0
	for _, role := range aliveRoles {
		if role == models.RoleUndercover {
			undercoverAlive++
		} else {
			otherAlive++
		}
	}

	if undercoverAlive == 0 {
		return models.ResultNormalWin, true
	}
	if undercoverAlive >= otherAlive {
		return models.ResultUndercoverWin, true
	}
	return "", false
}
