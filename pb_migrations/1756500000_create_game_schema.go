package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		rooms := core.NewBaseCollection("rooms")
		rooms.ListRule = nil
		rooms.ViewRule = nil
		rooms.CreateRule = nil
		rooms.UpdateRule = nil
		rooms.DeleteRule = nil

		rooms.Fields.Add(&core.TextField{
			Name:     "code",
			Required: true,
			Min:      6,
			Max:      6,
			Pattern:  `^[A-Z0-9]{6}$`,
		})
		rooms.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			MaxSelect: 1,
			Values:    []string{"lobby", "playing", "finished"},
		})
		rooms.Fields.Add(&core.SelectField{
			Name:      "phase",
			Required:  true,
			MaxSelect: 1,
			Values:    []string{"waiting", "describing", "voting", "results"},
		})
		rooms.Fields.Add(&core.NumberField{
			Name:    "current_round",
			OnlyInt: true,
		})
		rooms.Fields.Add(&core.JSONField{
			Name:    "words",
			MaxSize: 2048,
		})
		rooms.Fields.Add(&core.SelectField{
			Name:      "game_result",
			MaxSelect: 1,
			Values:    []string{"normal_win", "undercover_win"},
		})
		rooms.Fields.Add(&core.JSONField{
			Name:    "settings",
			MaxSize: 2048,
		})
		rooms.Fields.Add(&core.DateField{
			Name:     "created_at",
			Required: true,
		})

		rooms.Indexes = []string{
			// Join codes are only unique among rooms still claiming them.
			"CREATE UNIQUE INDEX idx_rooms_active_code ON rooms(code) WHERE status != 'finished'",
			"CREATE INDEX idx_rooms_status ON rooms(status)",
		}

		if err := app.Save(rooms); err != nil {
			return err
		}

		players := core.NewBaseCollection("players")
		players.ListRule = nil
		players.ViewRule = nil
		players.CreateRule = nil
		players.UpdateRule = nil
		players.DeleteRule = nil

		players.Fields.Add(&core.RelationField{
			Name:          "room_id",
			Required:      true,
			MaxSelect:     1,
			CollectionId:  rooms.Id,
			CascadeDelete: true,
		})
		players.Fields.Add(&core.TextField{
			Name:     "session_id",
			Required: true,
			Max:      64,
		})
		players.Fields.Add(&core.TextField{
			Name:     "name",
			Required: true,
			Max:      20,
		})
		players.Fields.Add(&core.BoolField{
			Name: "is_admin",
		})
		players.Fields.Add(&core.BoolField{
			Name: "is_alive",
		})
		players.Fields.Add(&core.SelectField{
			Name:      "role",
			MaxSelect: 1,
			Values:    []string{"normal", "undercover", "white"},
		})
		players.Fields.Add(&core.TextField{
			Name: "word",
			Max:  100,
		})
		players.Fields.Add(&core.TextField{
			Name: "description",
			Max:  500,
		})
		players.Fields.Add(&core.BoolField{
			Name: "has_voted",
		})
		players.Fields.Add(&core.NumberField{
			Name:    "votes",
			OnlyInt: true,
			Min:     floatPtr(0),
		})
		players.Fields.Add(&core.DateField{
			Name:     "joined_at",
			Required: true,
		})

		players.Indexes = []string{
			"CREATE INDEX idx_players_room ON players(room_id)",
			"CREATE UNIQUE INDEX idx_players_room_session ON players(room_id, session_id)",
			"CREATE INDEX idx_players_joined ON players(room_id, joined_at)",
		}

		if err := app.Save(players); err != nil {
			return err
		}

		wordPairs := core.NewBaseCollection("word_pairs")
		wordPairs.ListRule = nil
		wordPairs.ViewRule = nil
		wordPairs.CreateRule = nil
		wordPairs.UpdateRule = nil
		wordPairs.DeleteRule = nil

		wordPairs.Fields.Add(&core.TextField{
			Name:     "normal",
			Required: true,
			Max:      100,
		})
		wordPairs.Fields.Add(&core.TextField{
			Name:     "undercover",
			Required: true,
			Max:      100,
		})

		return app.Save(wordPairs)
	}, func(app core.App) error {
		for _, name := range []string{"players", "word_pairs", "rooms"} {
			collection, err := app.FindCollectionByNameOrId(name)
			if err != nil {
				continue
			}
			if err := app.Delete(collection); err != nil {
				return err
			}
		}
		return nil
	})
}

func floatPtr(v float64) *float64 {
	return &v
}
