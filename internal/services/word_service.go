package services

import (
	"math/rand"

	"github.com/pocketbase/pocketbase/core"

	"github.com/alouani-moncif/secret-word-society-replit/internal/models"
)

// fallbackPairs keeps games startable when the word_pairs collection is
// empty (fresh install, wiped database).
var fallbackPairs = []models.WordPair{
	{Normal: "Apple", Undercover: "Orange"},
	{Normal: "Dog", Undercover: "Cat"},
	{Normal: "Car", Undercover: "Truck"},
}

// WordService picks the secret word pair for a game from the word_pairs
// collection.
type WordService struct {
	app core.App
}

func NewWordService(app core.App) *WordService {
	return &WordService{
		app: app,
	}
}

// RandomPair returns a uniformly random word pair. The rng is supplied by
// the caller so games can be made deterministic in tests.
func (ws *WordService) RandomPair(rng *rand.Rand) models.WordPair {
	records, err := ws.app.FindAllRecords("word_pairs")
	if err != nil || len(records) == 0 {
		return fallbackPairs[rng.Intn(len(fallbackPairs))]
	}

	record := records[rng.Intn(len(records))]
	pair := models.WordPair{
		Normal:     record.GetString("normal"),
		Undercover: record.GetString("undercover"),
	}
	if pair.Normal == "" || pair.Undercover == "" {
		return fallbackPairs[rng.Intn(len(fallbackPairs))]
	}
	return pair
}
