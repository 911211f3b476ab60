package eco

import (
	"context"

	"go.uber.org/zap"

	"liyu1981.xyz/ecotrack-service/pkg/common"
	"liyu1981.xyz/ecotrack-service/pkg/models"
)

// CarbonSavedPerKWh approximates the kg CO2 avoided per kWh of renewable
// generation for the global counter.
const CarbonSavedPerKWh = 0.5

type GlobalStats struct {
	TotalUsers           int64   `json:"totalUsers"`
	TotalActivities      int64   `json:"totalActivities"`
	TotalCarbonEmissions float64 `json:"totalCarbonEmissions"`
	TotalRenewableEnergy float64 `json:"totalRenewableEnergy"`
	TotalPlasticItems    float64 `json:"totalPlasticItems"`
	CarbonSaved          float64 `json:"carbonSaved"`
}

// There are no user accounts here, so a user is anyone who owns a record or
// a profile.
const distinctUsersSQL = `SELECT COUNT(*) FROM (
	SELECT user_id FROM activities
	UNION SELECT user_id FROM renewable_energies
	UNION SELECT user_id FROM plastic_usages
	UNION SELECT user_id FROM profiles
) AS owners`

func sumColumn(ctx context.Context, e *Eco, model any, column string) (float64, error) {
	var total float64
	err := e.Db.Conn.WithContext(ctx).
		Model(model).
		Select("COALESCE(SUM(" + column + "), 0)").
		Scan(&total).Error
	return total, err
}

func (e *Eco) getGlobalStats(ctx context.Context) (*GlobalStats, error) {
	var stats GlobalStats
	conn := e.Db.Conn.WithContext(ctx)

	if err := conn.Raw(distinctUsersSQL).Scan(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := conn.Model(&models.Activity{}).Count(&stats.TotalActivities).Error; err != nil {
		return nil, err
	}

	var err error
	if stats.TotalCarbonEmissions, err = sumColumn(ctx, e, &models.Activity{}, "carbon_emissions"); err != nil {
		return nil, err
	}
	if stats.TotalRenewableEnergy, err = sumColumn(ctx, e, &models.RenewableEnergy{}, "energy_generated"); err != nil {
		return nil, err
	}
	if stats.TotalPlasticItems, err = sumColumn(ctx, e, &models.PlasticUsage{}, "quantity"); err != nil {
		return nil, err
	}
	stats.CarbonSaved = stats.TotalRenewableEnergy * CarbonSavedPerKWh

	common.GetLoggerWith(
		common.LoggerNameEcoCore,
		zap.String(common.LoggerFieldEcoCategory, common.LoggerCategoryEcoStats),
	).Debug("Computed global stats", zap.Reflect("stats", stats))

	return &stats, nil
}

type IStatsImpl struct {
	eco *Eco
}

func (is *IStatsImpl) GetGlobalStats(ctx context.Context) (*GlobalStats, error) {
	return is.eco.getGlobalStats(ctx)
}

func (e *Eco) GetIStats() IStats {
	return &IStatsImpl{eco: e}
}
