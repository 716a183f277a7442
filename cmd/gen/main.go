package main

import (
	"saleslens/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.SalesRecordModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/dao",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
