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

type RenewableFilter struct {
	ListFilter
	EnergySource models.EnergySource
}

func (e *Eco) createRenewableEnergy(ctx context.Context, userID string, input *models.RenewableEnergy) (*models.RenewableEnergy, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameEcoCore,
		zap.String(common.LoggerFieldEcoCategory, common.LoggerCategoryEcoRenewable),
	)

	if !input.EnergySource.Valid() {
		return nil, fmt.Errorf("%w: invalid energy source %q", ErrInvalidInput, input.EnergySource)
	}
	if input.EnergyGenerated < 0 {
		return nil, fmt.Errorf("%w: energy generated must not be negative", ErrInvalidInput)
	}

	record := *input
	record.ID = 0
	record.UserID = userID
	if record.Date.IsZero() {
		record.Date = e.now()
	}
	record.Date = record.Date.UTC()
	record.CarbonOffset = footprint.CalculateRenewableOffset(record.EnergyGenerated, record.EnergySource)

	logger.Info("Received renewable energy log for user", zap.Reflect("renewable", record))

	if err := e.Db.Conn.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}

	logger.Info("Saved renewable energy log for user", zap.Reflect("renewable", record))
	observability.RecordLogged("renewable")

	if e.Notification == nil {
		return &record, nil
	}
	if err := e.Notification.CheckRenewableEnergy(ctx, &record); err != nil {
		logger.Error("Failed to check renewable notifications", zap.Error(err))
	}
	return &record, nil
}

func (e *Eco) listRenewableEnergy(ctx context.Context, userID string, filter RenewableFilter) (*Page[models.RenewableEnergy], error) {
	return listPage[models.RenewableEnergy](ctx, e.Db.Conn, filter.ListFilter, "date", func(tx *gorm.DB) *gorm.DB {
		tx = tx.Where("user_id = ?", userID)
		if filter.EnergySource != "" {
			tx = tx.Where("energy_source = ?", filter.EnergySource)
		}
		return tx
	})
}

func (e *Eco) getRenewableSummary(ctx context.Context, userID string, period footprint.Period) (*footprint.RenewableSummary, error) {
	window := footprint.NewWindow(period, e.now())

	current, err := findInRange[models.RenewableEnergy](ctx, e.Db.Conn, userID, window.Start, nil)
	if err != nil {
		return nil, err
	}
	previous, err := findInRange[models.RenewableEnergy](ctx, e.Db.Conn, userID, window.PreviousStart, &window.Start)
	if err != nil {
		return nil, err
	}

	summary := footprint.SummarizeRenewable(window, current, previous)
	return &summary, nil
}

type IRenewableImpl struct {
	eco *Eco
}

func (ir *IRenewableImpl) CreateRenewableEnergy(ctx context.Context, userID string, input *models.RenewableEnergy) (*models.RenewableEnergy, error) {
	return ir.eco.createRenewableEnergy(ctx, userID, input)
}

func (ir *IRenewableImpl) ListRenewableEnergy(ctx context.Context, userID string, filter RenewableFilter) (*Page[models.RenewableEnergy], error) {
	return ir.eco.listRenewableEnergy(ctx, userID, filter)
}

func (ir *IRenewableImpl) DeleteRenewableEnergy(ctx context.Context, userID string, id uint) error {
	return deleteOwned[models.RenewableEnergy](ctx, ir.eco.Db.Conn, userID, id)
}

func (ir *IRenewableImpl) GetRenewableSummary(ctx context.Context, userID string, period footprint.Period) (*footprint.RenewableSummary, error) {
	return ir.eco.getRenewableSummary(ctx, userID, period)
}

func (e *Eco) GetIRenewable() IRenewable {
	return &IRenewableImpl{eco: e}
}
