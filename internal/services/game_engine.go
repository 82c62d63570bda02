package services

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"github.com/alouani-moncif/secret-word-society-replit/internal/game"
	"github.com/alouani-moncif/secret-word-society-replit/internal/models"
)

// GameEngine is the room state machine. Every command runs inside a single
// database transaction, so the "has everyone finished this phase" check is
// always evaluated against a view that includes the triggering write. Two
// players submitting at the same time cannot both observe an incomplete
// round and leave the phase stuck.
type GameEngine struct {
	app   core.App
	words *WordService

	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewGameEngine(app core.App, words *WordService) *GameEngine {
	return NewGameEngineWithRand(app, words, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewGameEngineWithRand injects the randomness source, for deterministic
// role assignment in tests.
func NewGameEngineWithRand(app core.App, words *WordService, rng *rand.Rand) *GameEngine {
	return &GameEngine{
		app:   app,
		words: words,
		rng:   rng,
	}
}

// StartGame assigns roles and words to the roster and moves the room into
// the describing phase of round 1. Only the admin can start, only from the
// lobby, and only with at least three players.
func (e *GameEngine) StartGame(roomID, playerID string) error {
	return e.app.RunInTransaction(func(txApp core.App) error {
		room, err := findRoom(txApp, roomID)
		if err != nil {
			return err
		}
		if room.GetString("status") != string(models.StatusLobby) {
			return fmt.Errorf("%w: game already started", ErrWrongPhase)
		}

		players, err := findRoomPlayers(txApp, roomID)
		if err != nil {
			return err
		}

		caller := playerByID(players, playerID)
		if caller == nil {
			return ErrPlayerNotFound
		}
		if !caller.GetBool("is_admin") {
			return ErrNotAdmin
		}

		if len(players) < game.MinPlayers {
			return fmt.Errorf("%w: need %d, have %d", ErrInsufficientPlayers, game.MinPlayers, len(players))
		}

		playerIDs := make([]string, 0, len(players))
		byID := make(map[string]*core.Record, len(players))
		for _, p := range players {
			playerIDs = append(playerIDs, p.Id)
			byID[p.Id] = p
		}

		e.rngMu.Lock()
		pair := e.words.RandomPair(e.rng)
		assignments := game.AssignRoles(playerIDs, pair, e.rng)
		e.rngMu.Unlock()

		for _, a := range assignments {
			p := byID[a.PlayerID]
			p.Set("role", string(a.Role))
			p.Set("word", a.Word)
			p.Set("is_alive", true)
			resetRoundFields(p)
			if err := txApp.Save(p); err != nil {
				return fmt.Errorf("failed to save player assignment: %w", err)
			}
		}

		wordsJSON, err := json.Marshal(pair)
		if err != nil {
			return fmt.Errorf("failed to marshal word pair: %w", err)
		}

		// Players are persisted before the room phase flips, so a client
		// that sees phase=describing always sees its role and word too.
		room.Set("status", string(models.StatusPlaying))
		room.Set("phase", string(models.PhaseDescribing))
		room.Set("current_round", 1)
		room.Set("words", wordsJSON)
		room.Set("game_result", "")
		if err := txApp.Save(room); err != nil {
			return fmt.Errorf("failed to save room: %w", err)
		}
		return nil
	})
}

// SubmitDescription stores a player's description for the current round.
// A later submission overwrites the earlier one. When every alive player
// has described, the room advances to voting.
func (e *GameEngine) SubmitDescription(roomID, playerID, text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return fmt.Errorf("%w: description cannot be empty", ErrInvalidInput)
	}

	return e.app.RunInTransaction(func(txApp core.App) error {
		room, err := findRoom(txApp, roomID)
		if err != nil {
			return err
		}
		if room.GetString("status") != string(models.StatusPlaying) ||
			room.GetString("phase") != string(models.PhaseDescribing) {
			return fmt.Errorf("%w: not in describing phase", ErrWrongPhase)
		}

		players, err := findRoomPlayers(txApp, roomID)
		if err != nil {
			return err
		}
		caller := playerByID(players, playerID)
		if caller == nil {
			return ErrPlayerNotFound
		}
		if !caller.GetBool("is_alive") {
			return fmt.Errorf("%w: eliminated players cannot describe", ErrWrongPhase)
		}

		caller.Set("description", trimmed)
		if err := txApp.Save(caller); err != nil {
			return fmt.Errorf("failed to save description: %w", err)
		}

		for _, p := range players {
			if p.GetBool("is_alive") && strings.TrimSpace(p.GetString("description")) == "" {
				return nil
			}
		}

		room.Set("phase", string(models.PhaseVoting))
		if err := txApp.Save(room); err != nil {
			return fmt.Errorf("failed to advance to voting: %w", err)
		}
		return nil
	})
}

// SubmitVote records one vote against an alive target. When every alive
// player has voted, the round resolves: the tally may eliminate a player,
// then the win condition decides between finishing and the next round.
func (e *GameEngine) SubmitVote(roomID, voterID, targetID string) error {
	return e.app.RunInTransaction(func(txApp core.App) error {
		room, err := findRoom(txApp, roomID)
		if err != nil {
			return err
		}
		if room.GetString("status") != string(models.StatusPlaying) ||
			room.GetString("phase") != string(models.PhaseVoting) {
			return fmt.Errorf("%w: not in voting phase", ErrWrongPhase)
		}

		players, err := findRoomPlayers(txApp, roomID)
		if err != nil {
			return err
		}
		voter := playerByID(players, voterID)
		if voter == nil {
			return ErrPlayerNotFound
		}
		if !voter.GetBool("is_alive") {
			return fmt.Errorf("%w: eliminated players cannot vote", ErrWrongPhase)
		}
		if voter.GetBool("has_voted") {
			return fmt.Errorf("%w: vote already cast this round", ErrWrongPhase)
		}

		target := playerByID(players, targetID)
		if target == nil || !target.GetBool("is_alive") {
			return fmt.Errorf("%w: target is not an alive player", ErrInvalidTarget)
		}
		if target.Id == voter.Id {
			return fmt.Errorf("%w: cannot vote for yourself", ErrInvalidTarget)
		}

		voter.Set("has_voted", true)
		if err := txApp.Save(voter); err != nil {
			return fmt.Errorf("failed to save vote: %w", err)
		}
		target.Set("votes", target.GetInt("votes")+1)
		if err := txApp.Save(target); err != nil {
			return fmt.Errorf("failed to save vote count: %w", err)
		}

		for _, p := range players {
			if p.GetBool("is_alive") && !p.GetBool("has_voted") {
				return nil
			}
		}

		return e.resolveRound(txApp, room, players)
	})
}

// NewGame resets a finished room back to the lobby for a rematch. Roles,
// words and eliminations are cleared; the roster stays.
func (e *GameEngine) NewGame(roomID, playerID string) error {
	return e.app.RunInTransaction(func(txApp core.App) error {
		room, err := findRoom(txApp, roomID)
		if err != nil {
			return err
		}
		if room.GetString("status") != string(models.StatusFinished) {
			return fmt.Errorf("%w: game is not finished", ErrWrongPhase)
		}

		players, err := findRoomPlayers(txApp, roomID)
		if err != nil {
			return err
		}
		caller := playerByID(players, playerID)
		if caller == nil {
			return ErrPlayerNotFound
		}
		if !caller.GetBool("is_admin") {
			return ErrNotAdmin
		}

		for _, p := range players {
			p.Set("role", "")
			p.Set("word", "")
			p.Set("is_alive", true)
			resetRoundFields(p)
			if err := txApp.Save(p); err != nil {
				return fmt.Errorf("failed to reset player: %w", err)
			}
		}

		room.Set("status", string(models.StatusLobby))
		room.Set("phase", string(models.PhaseWaiting))
		room.Set("current_round", 0)
		room.Set("words", nil)
		room.Set("game_result", "")
		if err := txApp.Save(room); err != nil {
			return fmt.Errorf("failed to reset room: %w", err)
		}
		return nil
	})
}

// resolveRound runs the tally and the win evaluation once all alive players
// have voted. Called inside the SubmitVote transaction.
func (e *GameEngine) resolveRound(txApp core.App, room *core.Record, players []*core.Record) error {
	votes := make(map[string]int)
	for _, p := range players {
		if p.GetBool("is_alive") {
			votes[p.Id] = p.GetInt("votes")
		}
	}

	tally := game.TallyVotes(votes)
	if !tally.IsTie {
		eliminated := playerByID(players, tally.EliminatedID)
		eliminated.Set("is_alive", false)
		if err := txApp.Save(eliminated); err != nil {
			return fmt.Errorf("failed to eliminate player: %w", err)
		}
	}

	var aliveRoles []models.PlayerRole
	for _, p := range players {
		if p.GetBool("is_alive") {
			aliveRoles = append(aliveRoles, models.PlayerRole(p.GetString("role")))
		}
	}

	result, over := game.EvaluateWin(aliveRoles)
	if over {
		room.Set("status", string(models.StatusFinished))
		room.Set("phase", string(models.PhaseResults))
		room.Set("game_result", string(result))
		if err := txApp.Save(room); err != nil {
			return fmt.Errorf("failed to finish game: %w", err)
		}
		return nil
	}

	return startNextRound(txApp, room, players)
}

// startNextRound clears the round-scoped player fields and moves the room
// back to describing with the round counter incremented.
func startNextRound(txApp core.App, room *core.Record, players []*core.Record) error {
	for _, p := range players {
		resetRoundFields(p)
		if err := txApp.Save(p); err != nil {
			return fmt.Errorf("failed to reset player for next round: %w", err)
		}
	}

	room.Set("phase", string(models.PhaseDescribing))
	room.Set("current_round", room.GetInt("current_round")+1)
	if err := txApp.Save(room); err != nil {
		return fmt.Errorf("failed to start next round: %w", err)
	}
	return nil
}

func resetRoundFields(p *core.Record) {
	p.Set("description", "")
	p.Set("has_voted", false)
	p.Set("votes", 0)
}

func playerByID(players []*core.Record, id string) *core.Record {
	for _, p := range players {
		if p.Id == id {
			return p
		}
	}
	return nil
}
