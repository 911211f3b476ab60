package eco

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"liyu1981.xyz/ecotrack-service/pkg/common"
	"liyu1981.xyz/ecotrack-service/pkg/db"
	"liyu1981.xyz/ecotrack-service/pkg/footprint"
	"liyu1981.xyz/ecotrack-service/pkg/models"
	"liyu1981.xyz/ecotrack-service/pkg/observability"
)

type WasteCategoryItem struct {
	Name                 string   `json:"name"`
	Description          string   `json:"description,omitempty"`
	DisposalInstructions string   `json:"disposalInstructions,omitempty"`
	RecyclingTips        string   `json:"recyclingTips,omitempty"`
	Examples             []string `json:"examples"`
}

type WasteCategories struct {
	Categories map[models.WasteCategory][]WasteCategoryItem `json:"categories"`
	TotalItems int                                          `json:"totalItems"`
}

func wasteLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameEcoCore,
		zap.String(common.LoggerFieldEcoCategory, common.LoggerCategoryEcoWaste),
	)
}

func (e *Eco) classifyWaste(ctx context.Context, description string) (*footprint.Classification, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: waste description is required", ErrInvalidInput)
	}

	var entries []models.WasteType
	if err := e.Db.Conn.WithContext(ctx).Order("id asc").Find(&entries).Error; err != nil {
		return nil, err
	}

	result := footprint.ClassifyWithReference(description, entries)
	observability.RecordClassification(result.Source, string(result.Category))

	wasteLogger().Info("Classified waste",
		zap.String("description", description),
		zap.String("source", result.Source),
		zap.String("category", string(result.Category)))

	return &result, nil
}

func (e *Eco) getWasteCategories(ctx context.Context) (*WasteCategories, error) {
	var entries []models.WasteType
	if err := e.Db.Conn.WithContext(ctx).Order("category asc").Order("name asc").Find(&entries).Error; err != nil {
		return nil, err
	}

	grouped := common.Reducer(entries,
		func(m map[models.WasteCategory][]WasteCategoryItem, wt models.WasteType) map[models.WasteCategory][]WasteCategoryItem {
			examples := wt.Examples
			if examples == nil {
				examples = []string{}
			}
			m[wt.Category] = append(m[wt.Category], WasteCategoryItem{
				Name:                 wt.Name,
				Description:          wt.Description,
				DisposalInstructions: wt.DisposalInstructions,
				RecyclingTips:        wt.RecyclingTips,
				Examples:             examples,
			})
			return m
		},
		map[models.WasteCategory][]WasteCategoryItem{},
	)

	return &WasteCategories{Categories: grouped, TotalItems: len(entries)}, nil
}

func (e *Eco) addWasteType(ctx context.Context, input *models.WasteType) (*models.WasteType, error) {
	wt := *input
	wt.ID = 0
	wt.Name = strings.TrimSpace(wt.Name)
	if wt.Name == "" {
		return nil, fmt.Errorf("%w: waste name is required", ErrInvalidInput)
	}
	if !wt.Category.Valid() {
		return nil, fmt.Errorf("%w: invalid category %q", ErrInvalidInput, wt.Category)
	}

	var existing int64
	if err := e.Db.Conn.WithContext(ctx).Model(&models.WasteType{}).Where("name = ?", wt.Name).Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, fmt.Errorf("%w: waste type %q", ErrConflict, wt.Name)
	}

	if err := e.Db.Conn.WithContext(ctx).Create(&wt).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: waste type %q", ErrConflict, wt.Name)
		}
		return nil, err
	}

	wasteLogger().Info("Added waste type", zap.Reflect("wasteType", wt))
	return &wt, nil
}

type IWasteImpl struct {
	eco *Eco
}

func (iw *IWasteImpl) ClassifyWaste(ctx context.Context, description string) (*footprint.Classification, error) {
	return iw.eco.classifyWaste(ctx, description)
}

func (iw *IWasteImpl) GetWasteCategories(ctx context.Context) (*WasteCategories, error) {
	return iw.eco.getWasteCategories(ctx)
}

func (iw *IWasteImpl) AddWasteType(ctx context.Context, input *models.WasteType) (*models.WasteType, error) {
	return iw.eco.addWasteType(ctx, input)
}

func (iw *IWasteImpl) SeedWasteTypes(ctx context.Context) (int, error) {
	n, err := db.SeedWasteTypes(ctx, iw.eco.Db.Conn)
	if err != nil {
		return 0, err
	}
	wasteLogger().Info("Seeded waste types", zap.Int("count", n))
	return n, nil
}

func (e *Eco) GetIWaste() IWaste {
	return &IWasteImpl{eco: e}
}
