package helpers

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/pocketbase/pocketbase/core"

	"github.com/alouani-moncif/secret-word-society-replit/internal/models"
	"github.com/alouani-moncif/secret-word-society-replit/internal/services"
)

// NewSeededEngine returns a GameEngine with deterministic randomness.
func NewSeededEngine(app core.App, seed int64) *services.GameEngine {
	words := services.NewWordService(app)
	return services.NewGameEngineWithRand(app, words, rand.New(rand.NewSource(seed)))
}

// SessionFor returns the session id fixtures use for the nth player.
// Player 1 is always the room admin.
func SessionFor(n int) string {
	return fmt.Sprintf("session-%d", n)
}

// CreateTestRoomWithPlayers creates a room with playerCount players and
// returns the room id plus the player record ids in join order. Player 1
// (the creator) is the admin.
func CreateTestRoomWithPlayers(t *testing.T, app core.App, playerCount int) (string, []string) {
	t.Helper()

	rm := services.NewRoomManager(app)
	room, admin, err := rm.CreateRoom(SessionFor(1), "Player1")
	if err != nil {
		t.Fatalf("Failed to create room: %v", err)
	}

	playerIDs := []string{admin.Id}
	for i := 2; i <= playerCount; i++ {
		player, err := rm.JoinRoom(room.Id, SessionFor(i), fmt.Sprintf("Player%d", i))
		if err != nil {
			t.Fatalf("Failed to add player %d: %v", i, err)
		}
		playerIDs = append(playerIDs, player.Id)
	}

	return room.Id, playerIDs
}

// AlivePlayers filters a room view down to the alive players.
func AlivePlayers(view *models.RoomView) []*models.Player {
	var alive []*models.Player
	for _, p := range view.Players {
		if p.IsAlive {
			alive = append(alive, p)
		}
	}
	return alive
}

// FindByRole returns the first alive player with the given role.
func FindByRole(view *models.RoomView, role models.PlayerRole) *models.Player {
	for _, p := range view.Players {
		if p.IsAlive && p.Role == role {
			return p
		}
	}
	return nil
}

// SubmitAllDescriptions submits a non-empty description for every alive
// player, completing the describing phase.
func SubmitAllDescriptions(t *testing.T, engine *services.GameEngine, rm *services.RoomManager, roomID string) {
	t.Helper()

	view, err := rm.GetRoomView(roomID)
	if err != nil {
		t.Fatalf("Failed to get room view: %v", err)
	}
	for _, p := range AlivePlayers(view) {
		if err := engine.SubmitDescription(roomID, p.ID, "it is round and edible"); err != nil {
			t.Fatalf("Failed to submit description for %s: %v", p.Name, err)
		}
	}
}

// VoteEveryoneAgainst makes every alive player vote for the scapegoat; the
// scapegoat votes for the first other alive player.
func VoteEveryoneAgainst(t *testing.T, engine *services.GameEngine, rm *services.RoomManager, roomID, scapegoatID string) {
	t.Helper()

	view, err := rm.GetRoomView(roomID)
	if err != nil {
		t.Fatalf("Failed to get room view: %v", err)
	}
	alive := AlivePlayers(view)

	var other string
	for _, p := range alive {
		if p.ID != scapegoatID {
			other = p.ID
			break
		}
	}

	for _, p := range alive {
		target := scapegoatID
		if p.ID == scapegoatID {
			target = other
		}
		if err := engine.SubmitVote(roomID, p.ID, target); err != nil {
			t.Fatalf("Failed to submit vote for %s: %v", p.Name, err)
		}
	}
}
