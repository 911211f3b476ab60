package eco

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"liyu1981.xyz/ecotrack-service/pkg/common"
	"liyu1981.xyz/ecotrack-service/pkg/footprint"
	"liyu1981.xyz/ecotrack-service/pkg/models"
	"liyu1981.xyz/ecotrack-service/pkg/observability"
)

type ActivityFilter struct {
	ListFilter
	ActivityType models.ActivityType
}

// ActivityPatch carries the fields a client sent on update; nil means keep.
type ActivityPatch struct {
	Date             *time.Time
	ActivityType     *models.ActivityType
	TransportMode    *models.TransportMode
	Distance         *float64
	ElectricityUsage *float64
	GasUsage         *float64
	MeatConsumption  *float64
	VegetarianMeals  *float64
	WasteGenerated   *float64
	RecycledWaste    *float64
	WaterUsage       *float64
	Description      *string
}

func (p *ActivityPatch) apply(a *models.Activity) {
	setIf(&a.Date, p.Date)
	setIf(&a.ActivityType, p.ActivityType)
	setIf(&a.TransportMode, p.TransportMode)
	setIf(&a.Distance, p.Distance)
	setIf(&a.ElectricityUsage, p.ElectricityUsage)
	setIf(&a.GasUsage, p.GasUsage)
	setIf(&a.MeatConsumption, p.MeatConsumption)
	setIf(&a.VegetarianMeals, p.VegetarianMeals)
	setIf(&a.WasteGenerated, p.WasteGenerated)
	setIf(&a.RecycledWaste, p.RecycledWaste)
	setIf(&a.WaterUsage, p.WaterUsage)
	setIf(&a.Description, p.Description)
	a.Date = a.Date.UTC()
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

const recentActivitiesForTips = 10

func activityLogger() *zap.Logger {
	return common.GetLoggerWith(
		common.LoggerNameEcoCore,
		zap.String(common.LoggerFieldEcoCategory, common.LoggerCategoryEcoActivity),
	)
}

func checkActivity(a *models.Activity) error {
	if !a.ActivityType.Valid() {
		return fmt.Errorf("%w: invalid activity type %q", ErrInvalidInput, a.ActivityType)
	}
	if a.TransportMode != "" && !a.TransportMode.Valid() {
		return fmt.Errorf("%w: invalid transport mode %q", ErrInvalidInput, a.TransportMode)
	}
	return nil
}

func (e *Eco) createActivity(ctx context.Context, userID string, input *models.Activity) (*models.Activity, error) {
	logger := activityLogger()

	if err := checkActivity(input); err != nil {
		return nil, err
	}

	activity := *input
	activity.ID = 0
	activity.UserID = userID
	if activity.Date.IsZero() {
		activity.Date = e.now()
	}
	activity.Date = activity.Date.UTC()
	activity.CarbonEmissions = footprint.CalculateCarbonEmissions(&activity)

	logger.Info("Received activity for user", zap.Reflect("activity", activity))

	if err := e.Db.Conn.WithContext(ctx).Create(&activity).Error; err != nil {
		return nil, err
	}

	logger.Info("Saved activity for user", zap.Reflect("activity", activity))
	observability.RecordLogged("activity")
	observability.RecordEmissions(activity.CarbonEmissions)

	if e.Notification == nil {
		logger.Warn("Notification service not available, skipping triggers")
		return &activity, nil
	}
	if err := e.Notification.CheckActivity(ctx, &activity); err != nil {
		logger.Error("Failed to check activity notifications", zap.Error(err))
	}
	return &activity, nil
}

func (e *Eco) listActivities(ctx context.Context, userID string, filter ActivityFilter) (*Page[models.Activity], error) {
	return listPage[models.Activity](ctx, e.Db.Conn, filter.ListFilter, "date", func(tx *gorm.DB) *gorm.DB {
		tx = tx.Where("user_id = ?", userID)
		if filter.ActivityType != "" {
			tx = tx.Where("activity_type = ?", filter.ActivityType)
		}
		return tx
	})
}

func (e *Eco) updateActivity(ctx context.Context, userID string, id uint, patch *ActivityPatch) (*models.Activity, error) {
	logger := activityLogger()

	activity, err := findOwned[models.Activity](ctx, e.Db.Conn, userID, id)
	if err != nil {
		return nil, err
	}

	if patch != nil {
		patch.apply(activity)
	}
	if err := checkActivity(activity); err != nil {
		return nil, err
	}
	activity.CarbonEmissions = footprint.CalculateCarbonEmissions(activity)

	if err := e.Db.Conn.WithContext(ctx).Save(activity).Error; err != nil {
		return nil, err
	}

	logger.Info("Updated activity for user", zap.Reflect("activity", activity))
	return activity, nil
}

func (e *Eco) deleteActivity(ctx context.Context, userID string, id uint) error {
	if err := deleteOwned[models.Activity](ctx, e.Db.Conn, userID, id); err != nil {
		return err
	}
	activityLogger().Info("Deleted activity for user", zap.String("userId", userID), zap.Uint("id", id))
	return nil
}

func (e *Eco) getEmissionSummary(ctx context.Context, userID string, period footprint.Period) (*footprint.EmissionSummary, error) {
	window := footprint.NewWindow(period, e.now())

	activities, err := findInRange[models.Activity](ctx, e.Db.Conn, userID, window.Start, nil)
	if err != nil {
		return nil, err
	}

	goal := e.Thresholds.DefaultCarbonGoal
	if e.Profile != nil {
		profile, err := e.Profile.GetGoals(ctx, userID)
		if err != nil {
			return nil, err
		}
		goal = profile.CarbonFootprintGoal
	}

	summary := footprint.SummarizeEmissions(window, activities, goal)
	return &summary, nil
}

// getReductionTips returns the catalogue list for activityType, or tips
// personalised from the user's most recent activities when it is empty.
func (e *Eco) getReductionTips(ctx context.Context, userID string, activityType string) ([]footprint.Tip, error) {
	if activityType != "" {
		return footprint.TipsFor(activityType), nil
	}

	var recent []models.Activity
	err := e.Db.Conn.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date desc").
		Limit(recentActivitiesForTips).
		Find(&recent).Error
	if err != nil {
		return nil, err
	}
	return footprint.PersonalizedTips(recent), nil
}

type IActivityImpl struct {
	eco *Eco
}

func (ia *IActivityImpl) CreateActivity(ctx context.Context, userID string, input *models.Activity) (*models.Activity, error) {
	return ia.eco.createActivity(ctx, userID, input)
}

func (ia *IActivityImpl) ListActivities(ctx context.Context, userID string, filter ActivityFilter) (*Page[models.Activity], error) {
	return ia.eco.listActivities(ctx, userID, filter)
}

func (ia *IActivityImpl) UpdateActivity(ctx context.Context, userID string, id uint, patch *ActivityPatch) (*models.Activity, error) {
	return ia.eco.updateActivity(ctx, userID, id, patch)
}

func (ia *IActivityImpl) DeleteActivity(ctx context.Context, userID string, id uint) error {
	return ia.eco.deleteActivity(ctx, userID, id)
}

func (ia *IActivityImpl) GetEmissionSummary(ctx context.Context, userID string, period footprint.Period) (*footprint.EmissionSummary, error) {
	return ia.eco.getEmissionSummary(ctx, userID, period)
}

func (ia *IActivityImpl) GetReductionTips(ctx context.Context, userID string, activityType string) ([]footprint.Tip, error) {
	return ia.eco.getReductionTips(ctx, userID, activityType)
}

func (e *Eco) GetIActivity() IActivity {
	return &IActivityImpl{eco: e}
}
