package eco_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"liyu1981.xyz/ecotrack-service/pkg/common"
	"liyu1981.xyz/ecotrack-service/pkg/eco"
	"liyu1981.xyz/ecotrack-service/pkg/footprint"
	"liyu1981.xyz/ecotrack-service/pkg/models"
	_ "liyu1981.xyz/ecotrack-service/pkg/testing"
)

func TestCreateRenewableEnergy(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, m := GetMockEcoWithMemorySqliteDialector(t, true, false, false)
	defer ctrl.Finish()

	userID := uuid.NewString()
	m.Notification.EXPECT().CheckRenewableEnergy(gomock.Any(), gomock.Any()).Return(nil)

	record, err := ecoObj.Renewable.CreateRenewableEnergy(context.Background(), userID, &models.RenewableEnergy{
		EnergySource:    models.EnergySourceBiomass,
		EnergyGenerated: 40,
		CarbonOffset:    -1,
	})
	require.NoError(t, err)

	assert.NotZero(t, record.ID)
	assert.Equal(t, userID, record.UserID)
	assert.InDelta(t, 12.0, record.CarbonOffset, 1e-9)
}

func TestListRenewableEnergy(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, m := GetMockEcoWithMemorySqliteDialector(t, true, false, false)
	defer ctrl.Finish()

	m.Notification.EXPECT().CheckRenewableEnergy(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	ctx := context.Background()
	userID := uuid.NewString()

	for _, src := range []models.EnergySource{models.EnergySourceSolar, models.EnergySourceWind, models.EnergySourceSolar} {
		_, err := ecoObj.Renewable.CreateRenewableEnergy(ctx, userID, &models.RenewableEnergy{EnergySource: src, EnergyGenerated: 5})
		require.NoError(t, err)
	}

	solar, err := ecoObj.Renewable.ListRenewableEnergy(ctx, userID, eco.RenewableFilter{EnergySource: models.EnergySourceSolar})
	require.NoError(t, err)
	assert.EqualValues(t, 2, solar.Total)

	require.NoError(t, ecoObj.Renewable.DeleteRenewableEnergy(ctx, userID, solar.Items[0].ID))
	assert.ErrorIs(t, ecoObj.Renewable.DeleteRenewableEnergy(ctx, uuid.NewString(), solar.Items[1].ID), eco.ErrNotFound)

	all, err := ecoObj.Renewable.ListRenewableEnergy(ctx, userID, eco.RenewableFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, all.Total)
}

func TestGetRenewableSummary(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, m := GetMockEcoWithMemorySqliteDialector(t, true, false, false)
	defer ctrl.Finish()

	m.Notification.EXPECT().CheckRenewableEnergy(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	now := time.Date(2031, 11, 18, 9, 0, 0, 0, time.UTC)
	ecoObj.Clock = func() time.Time { return now }

	ctx := context.Background()
	userID := uuid.NewString()

	inputs := []models.RenewableEnergy{
		{Date: time.Date(2031, 10, 3, 0, 0, 0, 0, time.UTC), EnergySource: models.EnergySourceSolar, EnergyGenerated: 40},
		{Date: time.Date(2031, 11, 2, 0, 0, 0, 0, time.UTC), EnergySource: models.EnergySourceSolar, EnergyGenerated: 30, Savings: 3},
		{Date: time.Date(2031, 11, 4, 0, 0, 0, 0, time.UTC), EnergySource: models.EnergySourceWind, EnergyGenerated: 20, EnergyUsed: 5},
	}
	for i := range inputs {
		_, err := ecoObj.Renewable.CreateRenewableEnergy(ctx, userID, &inputs[i])
		require.NoError(t, err)
	}

	summary, err := ecoObj.Renewable.GetRenewableSummary(ctx, userID, footprint.PeriodMonth)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.LogCount)
	assert.InDelta(t, 50.0, summary.TotalEnergyGenerated, 1e-9)
	assert.InDelta(t, 25.0, summary.TotalCarbonOffset, 1e-9)
	assert.InDelta(t, 3.0, summary.TotalSavings, 1e-9)
	assert.Equal(t, 1, summary.BySource[models.EnergySourceWind].Count)
	assert.InDelta(t, 40.0, summary.Previous.TotalEnergyGenerated, 1e-9)
	assert.Equal(t, 25.0, summary.GrowthPercentage)
}

func TestCreateRenewableEnergy_RejectsInvalidInput(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, _ := GetMockEcoWithMemorySqliteDialector(t, true, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.NewString()

	_, err := ecoObj.Renewable.CreateRenewableEnergy(ctx, userID, &models.RenewableEnergy{EnergySource: "coal", EnergyGenerated: 5})
	assert.ErrorIs(t, err, eco.ErrInvalidInput)

	_, err = ecoObj.Renewable.CreateRenewableEnergy(ctx, userID, &models.RenewableEnergy{EnergySource: models.EnergySourceWind, EnergyGenerated: -1})
	assert.ErrorIs(t, err, eco.ErrInvalidInput)

	logs, err := ecoObj.Renewable.ListRenewableEnergy(ctx, userID, eco.RenewableFilter{})
	require.NoError(t, err)
	assert.Empty(t, logs.Items)
}
