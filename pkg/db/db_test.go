package db

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"liyu1981.xyz/ecotrack-service/pkg/common"
	"liyu1981.xyz/ecotrack-service/pkg/models"
	_ "liyu1981.xyz/ecotrack-service/pkg/testing"
)

func tableExists(db *gorm.DB, tableName string) bool {
	var count int64
	err := db.Raw(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?`, tableName,
	).Scan(&count).Error
	return err == nil && count > 0
}

func TestWithMemorySqlite(t *testing.T) {
	common.SetTestLoggerNop()

	instance := GetInstance(UseMemorySqliteDialector())
	if instance == nil {
		t.Fatal("Expected non-nil DB instance")
	}

	var tables = []string{"activities", "renewable_energies", "plastic_usages", "notifications", "waste_types", "profiles"}
	for _, table := range tables {
		if !tableExists(instance.Conn, table) {
			t.Errorf("Expected table %q to exist after migration", table)
		}
	}

	assert.NoError(t, instance.Ping(context.Background()))
}

func TestSingletonConcurrency(t *testing.T) {
	common.SetTestLoggerNop()

	const goroutineCount = 20

	var wg sync.WaitGroup
	instances := make(chan *DB, goroutineCount)

	for range goroutineCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			instances <- GetInstance(UseMemorySqliteDialector())
		}()
	}

	wg.Wait()
	close(instances)

	var first *DB
	for inst := range instances {
		if first == nil {
			first = inst
			continue
		}
		if inst != first {
			t.Error("Expected all instances to be the same (singleton), but found different ones")
		}
	}
}

func TestDuplicateKeyIsTranslated(t *testing.T) {
	common.SetTestLoggerNop()

	conn := GetInstance(UseMemorySqliteDialector()).Conn
	wt := models.WasteType{Name: "Duplicate Glass Jar", Category: models.WasteCategoryRecyclable}
	require.NoError(t, conn.Create(&wt).Error)

	again := models.WasteType{Name: wt.Name, Category: models.WasteCategoryLandfill}
	assert.ErrorIs(t, conn.Create(&again).Error, gorm.ErrDuplicatedKey)
}

func TestDialectorFor(t *testing.T) {
	d, err := DialectorFor(common.DBConfig{Type: "memory"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	d, err = DialectorFor(common.DBConfig{Type: "postgres", DSN: "postgres://localhost/eco"})
	require.NoError(t, err)
	assert.Equal(t, "postgres", d.Name())

	_, err = DialectorFor(common.DBConfig{Type: "mongo"})
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestLoadWasteTypes(t *testing.T) {
	entries, err := LoadWasteTypes()
	require.NoError(t, err)
	require.Len(t, entries, 14)

	perCategory := map[models.WasteCategory]int{}
	for _, e := range entries {
		perCategory[e.Category]++
		assert.NotEmpty(t, e.Keywords, e.Name)
	}
	assert.Equal(t, map[models.WasteCategory]int{
		models.WasteCategoryRecyclable:    4,
		models.WasteCategoryBiodegradable: 2,
		models.WasteCategoryCompostable:   1,
		models.WasteCategoryHazardous:     3,
		models.WasteCategoryElectronic:    1,
		models.WasteCategoryLandfill:      3,
	}, perCategory)
	assert.Equal(t, "Plastic Bottles (PET)", entries[0].Name)
}

func TestSeedWasteTypes_Idempotent(t *testing.T) {
	common.SetTestLoggerNop()

	instance := GetInstance(UseMemorySqliteDialector())
	ctx := context.Background()

	n, err := SeedWasteTypes(ctx, instance.Conn)
	require.NoError(t, err)
	assert.Equal(t, 14, n)

	_, err = SeedWasteTypes(ctx, instance.Conn)
	require.NoError(t, err)

	var count int64
	require.NoError(t, instance.Conn.Model(&models.WasteType{}).Where("name = ?", "Batteries").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var batteries models.WasteType
	require.NoError(t, instance.Conn.Where("name = ?", "Batteries").First(&batteries).Error)
	assert.Equal(t, models.WasteCategoryHazardous, batteries.Category)
	assert.Contains(t, batteries.Keywords, "lithium")
}
