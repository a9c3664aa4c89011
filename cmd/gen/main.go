package main

import (
	"mirathi/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.FamilyModel{},
		model.MemberModel{},
		model.MarriageModel{},
		model.HouseModel{},
		model.RelationshipModel{},
		model.CohabitationModel{},
		model.AdoptionModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
