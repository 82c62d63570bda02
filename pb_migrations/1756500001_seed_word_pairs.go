package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

// Starter word pairs so a fresh install can play immediately.
var seedWordPairs = [][2]string{
	{"Apple", "Orange"},
	{"Dog", "Cat"},
	{"Car", "Truck"},
	{"Coffee", "Tea"},
	{"Beach", "Desert"},
	{"Piano", "Guitar"},
	{"Soccer", "Basketball"},
	{"Winter", "Autumn"},
	{"Pizza", "Burger"},
	{"Ship", "Airplane"},
}

func init() {
	m.Register(func(app core.App) error {
		collection, err := app.FindCollectionByNameOrId("word_pairs")
		if err != nil {
			return err
		}

		for _, pair := range seedWordPairs {
			record := core.NewRecord(collection)
			record.Set("normal", pair[0])
			record.Set("undercover", pair[1])
			if err := app.Save(record); err != nil {
				return err
			}
		}
		return nil
	}, func(app core.App) error {
		records, err := app.FindAllRecords("word_pairs")
		if err != nil {
			return nil
		}
		for _, record := range records {
			if err := app.Delete(record); err != nil {
				return err
			}
		}
		return nil
	})
}
