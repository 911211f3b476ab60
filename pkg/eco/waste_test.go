package eco_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/ecotrack-service/pkg/common"
	"liyu1981.xyz/ecotrack-service/pkg/eco"
	"liyu1981.xyz/ecotrack-service/pkg/footprint"
	"liyu1981.xyz/ecotrack-service/pkg/models"
	_ "liyu1981.xyz/ecotrack-service/pkg/testing"
)

func TestClassifyWaste(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, _ := GetMockEcoWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	_, err := ecoObj.Waste.SeedWasteTypes(ctx)
	require.NoError(t, err)

	result, err := ecoObj.Waste.ClassifyWaste(ctx, "Batteries")
	require.NoError(t, err)
	assert.Equal(t, footprint.SourceDatabase, result.Source)
	assert.Equal(t, "Batteries", result.Name)
	assert.Equal(t, models.WasteCategoryHazardous, result.Category)
	assert.Equal(t, footprint.ConfidenceHigh, result.Confidence)

	result, err = ecoObj.Waste.ClassifyWaste(ctx, "soda can")
	require.NoError(t, err)
	assert.Equal(t, footprint.SourceDatabase, result.Source)
	assert.Equal(t, "Aluminum Cans", result.Name)

	result, err = ecoObj.Waste.ClassifyWaste(ctx, "old motor oil drum")
	require.NoError(t, err)
	assert.Equal(t, footprint.SourceRuleBased, result.Source)
	assert.Equal(t, models.WasteCategoryHazardous, result.Category)
	assert.Equal(t, "old motor oil drum", result.WasteDescription)

	result, err = ecoObj.Waste.ClassifyWaste(ctx, "mystery object")
	require.NoError(t, err)
	assert.Equal(t, models.WasteCategoryLandfill, result.Category)
	assert.Equal(t, footprint.ConfidenceLow, result.Confidence)

	_, err = ecoObj.Waste.ClassifyWaste(ctx, "   ")
	assert.ErrorIs(t, err, eco.ErrInvalidInput)
}

func TestGetWasteCategories(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, _ := GetMockEcoWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	_, err := ecoObj.Waste.SeedWasteTypes(ctx)
	require.NoError(t, err)

	categories, err := ecoObj.Waste.GetWasteCategories(ctx)
	require.NoError(t, err)

	total := 0
	for _, items := range categories.Categories {
		total += len(items)
	}
	assert.Equal(t, categories.TotalItems, total)
	assert.GreaterOrEqual(t, categories.TotalItems, 14)

	hazardous := categories.Categories[models.WasteCategoryHazardous]
	require.GreaterOrEqual(t, len(hazardous), 3)
	for i := 1; i < len(hazardous); i++ {
		assert.LessOrEqual(t, hazardous[i-1].Name, hazardous[i].Name, "sorted by name within a category")
	}
}

func TestAddWasteType(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, _ := GetMockEcoWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	name := "Test Item " + uuid.NewString()

	wt, err := ecoObj.Waste.AddWasteType(ctx, &models.WasteType{
		Name:     "  " + name + " ",
		Category: models.WasteCategoryCompostable,
		Keywords: []string{"zzq-" + name},
	})
	require.NoError(t, err)
	assert.NotZero(t, wt.ID)
	assert.Equal(t, name, wt.Name)

	_, err = ecoObj.Waste.AddWasteType(ctx, &models.WasteType{Name: name, Category: models.WasteCategoryLandfill})
	assert.ErrorIs(t, err, eco.ErrConflict)

	_, err = ecoObj.Waste.AddWasteType(ctx, &models.WasteType{Name: "x" + name, Category: "lava"})
	assert.ErrorIs(t, err, eco.ErrInvalidInput)

	_, err = ecoObj.Waste.AddWasteType(ctx, &models.WasteType{Category: models.WasteCategoryLandfill})
	assert.ErrorIs(t, err, eco.ErrInvalidInput)

	result, err := ecoObj.Waste.ClassifyWaste(ctx, "zzq-"+name)
	require.NoError(t, err)
	assert.Equal(t, name, result.Name)
	assert.Equal(t, models.WasteCategoryCompostable, result.Category)
}

func TestSeedWasteTypes_Idempotent(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, _ := GetMockEcoWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	first, err := ecoObj.Waste.SeedWasteTypes(ctx)
	require.NoError(t, err)
	second, err := ecoObj.Waste.SeedWasteTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	var count int64
	require.NoError(t, ecoObj.Db.Conn.Model(&models.WasteType{}).Where("name = ?", "Batteries").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
