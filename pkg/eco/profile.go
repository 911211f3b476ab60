package eco

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"liyu1981.xyz/ecotrack-service/pkg/common"
	"liyu1981.xyz/ecotrack-service/pkg/models"
)

type GoalsPatch struct {
	CarbonFootprintGoal  *float64
	PlasticReductionGoal *float64
}

// getGoals never stores anything; users without a profile get the defaults.
func (e *Eco) getGoals(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := e.Db.Conn.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.Profile{
			UserID:               userID,
			CarbonFootprintGoal:  e.Thresholds.DefaultCarbonGoal,
			PlasticReductionGoal: e.Thresholds.DefaultPlasticGoal,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (e *Eco) upsertGoals(ctx context.Context, userID string, patch *GoalsPatch) (*models.Profile, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEcoCore,
		zap.String(common.LoggerFieldEcoCategory, common.LoggerCategoryEcoProfile),
	)

	profile, err := e.getGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	if patch != nil {
		setIf(&profile.CarbonFootprintGoal, patch.CarbonFootprintGoal)
		setIf(&profile.PlasticReductionGoal, patch.PlasticReductionGoal)
	}
	if profile.CarbonFootprintGoal < 0 || profile.PlasticReductionGoal < 0 {
		return nil, fmt.Errorf("%w: goals must not be negative", ErrInvalidInput)
	}
	profile.UpdatedAt = e.now()

	err = e.Db.Conn.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"carbon_footprint_goal", "plastic_reduction_goal", "updated_at"}),
	}).Create(profile).Error
	if err != nil {
		return nil, err
	}

	logger.Info("Saved goals for user", zap.Reflect("profile", profile))
	return profile, nil
}

type IProfileImpl struct {
	eco *Eco
}

func (ip *IProfileImpl) GetGoals(ctx context.Context, userID string) (*models.Profile, error) {
	return ip.eco.getGoals(ctx, userID)
}

func (ip *IProfileImpl) UpsertGoals(ctx context.Context, userID string, patch *GoalsPatch) (*models.Profile, error) {
	return ip.eco.upsertGoals(ctx, userID, patch)
}

func (e *Eco) GetIProfile() IProfile {
	return &IProfileImpl{eco: e}
}
