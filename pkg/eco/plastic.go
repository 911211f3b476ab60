package eco

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"liyu1981.xyz/ecotrack-service/pkg/common"
	"liyu1981.xyz/ecotrack-service/pkg/footprint"
	"liyu1981.xyz/ecotrack-service/pkg/models"
	"liyu1981.xyz/ecotrack-service/pkg/observability"
)

type PlasticFilter struct {
	ListFilter
	PlasticType models.PlasticType
	Recycled    *bool
}

// createPlasticUsage stores the log and returns it with the user's
// month-to-date quantity, which includes the new log when it falls in the
// current month.
func (e *Eco) createPlasticUsage(ctx context.Context, userID string, input *models.PlasticUsage) (*models.PlasticUsage, float64, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEcoCore,
		zap.String(common.LoggerFieldEcoCategory, common.LoggerCategoryEcoPlastic),
	)

	if !input.PlasticType.Valid() {
		return nil, 0, fmt.Errorf("%w: invalid plastic type %q", ErrInvalidInput, input.PlasticType)
	}
	if input.Quantity < 0 {
		return nil, 0, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}

	record := *input
	record.ID = 0
	record.UserID = userID
	if record.Date.IsZero() {
		record.Date = e.now()
	}
	record.Date = record.Date.UTC()
	record.EnvironmentalImpact = footprint.CalculatePlasticImpact(record.Quantity, record.PlasticType, record.Recycled)

	logger.Info("Received plastic usage for user", zap.Reflect("plastic", record))

	if err := e.Db.Conn.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, 0, err
	}
	observability.RecordLogged("plastic")

	var monthly struct {
		Count         int64
		TotalQuantity float64
	}
	err := e.Db.Conn.WithContext(ctx).
		Model(&models.PlasticUsage{}).
		Select("COUNT(*) AS count, COALESCE(SUM(quantity), 0) AS total_quantity").
		Where("user_id = ? AND date >= ?", userID, footprint.MonthStart(e.now())).
		Scan(&monthly).Error
	if err != nil {
		return nil, 0, err
	}

	logger.Info("Saved plastic usage for user",
		zap.Reflect("plastic", record),
		zap.Float64("monthlyTotal", monthly.TotalQuantity))

	if monthly.Count == 0 {
		return &record, record.Quantity, nil
	}

	if e.Notification != nil {
		if err := e.Notification.CheckPlasticUsage(ctx, userID, monthly.TotalQuantity); err != nil {
			logger.Error("Failed to check plastic notifications", zap.Error(err))
		}
	}
	return &record, monthly.TotalQuantity, nil
}

func (e *Eco) listPlasticUsage(ctx context.Context, userID string, filter PlasticFilter) (*Page[models.PlasticUsage], error) {
	return listPage[models.PlasticUsage](ctx, e.Db.Conn, filter.ListFilter, "date", func(tx *gorm.DB) *gorm.DB {
		tx = tx.Where("user_id = ?", userID)
		if filter.PlasticType != "" {
			tx = tx.Where("plastic_type = ?", filter.PlasticType)
		}
		if filter.Recycled != nil {
			tx = tx.Where("recycled = ?", *filter.Recycled)
		}
		return tx
	})
}

func (e *Eco) getPlasticSummary(ctx context.Context, userID string, period footprint.Period) (*footprint.PlasticSummary, error) {
	window := footprint.NewWindow(period, e.now())

	current, err := findInRange[models.PlasticUsage](ctx, e.Db.Conn, userID, window.Start, nil)
	if err != nil {
		return nil, err
	}
	previous, err := findInRange[models.PlasticUsage](ctx, e.Db.Conn, userID, window.PreviousStart, &window.Start)
	if err != nil {
		return nil, err
	}

	goal := e.Thresholds.DefaultPlasticGoal
	if e.Profile != nil {
		profile, err := e.Profile.GetGoals(ctx, userID)
		if err != nil {
			return nil, err
		}
		goal = profile.PlasticReductionGoal
	}

	summary := footprint.SummarizePlastic(window, current, previous, goal)
	return &summary, nil
}

type IPlasticImpl struct {
	eco *Eco
}

func (ip *IPlasticImpl) CreatePlasticUsage(ctx context.Context, userID string, input *models.PlasticUsage) (*models.PlasticUsage, float64, error) {
	return ip.eco.createPlasticUsage(ctx, userID, input)
}

func (ip *IPlasticImpl) ListPlasticUsage(ctx context.Context, userID string, filter PlasticFilter) (*Page[models.PlasticUsage], error) {
	return ip.eco.listPlasticUsage(ctx, userID, filter)
}

func (ip *IPlasticImpl) DeletePlasticUsage(ctx context.Context, userID string, id uint) error {
	return deleteOwned[models.PlasticUsage](ctx, ip.eco.Db.Conn, userID, id)
}

func (ip *IPlasticImpl) GetPlasticSummary(ctx context.Context, userID string, period footprint.Period) (*footprint.PlasticSummary, error) {
	return ip.eco.getPlasticSummary(ctx, userID, period)
}

func (e *Eco) GetIPlastic() IPlastic {
	return &IPlasticImpl{eco: e}
}
