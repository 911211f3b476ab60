package db

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"liyu1981.xyz/ecotrack-service/pkg/models"
)

//go:embed seed/waste_types.yaml
var wasteTypesYAML []byte

func LoadWasteTypes() ([]models.WasteType, error) {
	var entries []models.WasteType
	if err := yaml.Unmarshal(wasteTypesYAML, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse waste type seed: %w", err)
	}
	for _, e := range entries {
		if !e.Category.Valid() {
			return nil, fmt.Errorf("waste type seed %q has unknown category %q", e.Name, e.Category)
		}
	}
	return entries, nil
}

// UpsertWasteTypes inserts entries, replacing the advisory fields of any
// entry whose name already exists.
func UpsertWasteTypes(ctx context.Context, conn *gorm.DB, entries []models.WasteType) error {
	if len(entries) == 0 {
		return nil
	}
	return conn.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"category",
			"description",
			"keywords",
			"disposal_instructions",
			"environmental_impact",
			"recycling_tips",
			"decomposition_time",
			"examples",
		}),
	}).Create(&entries).Error
}

// SeedWasteTypes loads the embedded reference data and upserts it.
func SeedWasteTypes(ctx context.Context, conn *gorm.DB) (int, error) {
	entries, err := LoadWasteTypes()
	if err != nil {
		return 0, err
	}
	if err := UpsertWasteTypes(ctx, conn, entries); err != nil {
		return 0, fmt.Errorf("failed to seed waste types: %w", err)
	}
	return len(entries), nil
}
