// Command gen writes type-safe GORM query helpers for the chat tables.
package main

import (
	"huddle/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(append(model.ChatModels(), model.ChallengeModel{})...)

	g.Execute()
}
