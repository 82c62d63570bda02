package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alouani-moncif/secret-word-society-replit/internal/game"
	"github.com/alouani-moncif/secret-word-society-replit/internal/models"
)

func roles(undercover, normal, white int) []models.PlayerRole {
	var out []models.PlayerRole
	for i := 0; i < undercover; i++ {
		out = append(out, models.RoleUndercover)
	}
	for i := 0; i < normal; i++ {
		out = append(out, models.RoleNormal)
	}
	for i := 0; i < white; i++ {
		out = append(out, models.RoleWhite)
	}
	return out
}

func TestEvaluateWin(t *testing.T) {
	tests := []struct {
		name       string
		alive      []models.PlayerRole
		wantResult models.GameResult
		wantOver   bool
	}{
		{
			name:       "all undercover eliminated",
			alive:      roles(0, 4, 0),
			wantResult: models.ResultNormalWin,
			wantOver:   true,
		},
		{
			name:       "undercover reaches parity",
			alive:      roles(2, 2, 0),
			wantResult: models.ResultUndercoverWin,
			wantOver:   true,
		},
		{
			name:       "undercover majority",
			alive:      roles(2, 1, 0),
			wantResult: models.ResultUndercoverWin,
			wantOver:   true,
		},
		{
			name:     "game continues",
			alive:    roles(1, 3, 0),
			wantOver: false,
		},
		{
			name:       "white counts against undercover",
			alive:      roles(1, 1, 1),
			wantOver:   false,
		},
		{
			name:       "parity including white",
			alive:      roles(2, 1, 1),
			wantResult: models.ResultUndercoverWin,
			wantOver:   true,
		},
		{
			name:       "empty roster is a normal win",
			alive:      nil,
			wantResult: models.ResultNormalWin,
			wantOver:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, over := game.EvaluateWin(tt.alive)
			assert.Equal(t, tt.wantOver, over)
			assert.Equal(t, tt.wantResult, result)
		})
	}
}
