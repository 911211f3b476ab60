package eco_test

import (
	"context"
	"errors"
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

func TestCreateActivity(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, m := GetMockEcoWithMemorySqliteDialector(t, true, false, false)
	defer ctrl.Finish()

	userID := uuid.NewString()
	m.Notification.EXPECT().CheckActivity(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	activity, err := ecoObj.Activity.CreateActivity(context.Background(), userID, &models.Activity{
		UserID:          "someone-else",
		ActivityType:    models.ActivityTypeTransportation,
		TransportMode:   models.TransportModeCar,
		Distance:        100,
		CarbonEmissions: 9999,
	})
	require.NoError(t, err)

	assert.NotZero(t, activity.ID)
	assert.Equal(t, userID, activity.UserID)
	assert.InDelta(t, 19.2, activity.CarbonEmissions, 1e-9)
	assert.False(t, activity.Date.IsZero())
	assert.Equal(t, time.UTC, activity.Date.Location())

	var stored models.Activity
	require.NoError(t, ecoObj.Db.Conn.First(&stored, activity.ID).Error)
	assert.InDelta(t, 19.2, stored.CarbonEmissions, 1e-9)
}

func TestCreateActivity_TriggerFailureIsLogged(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, m := GetMockEcoWithMemorySqliteDialector(t, true, false, false)
	defer ctrl.Finish()

	m.Notification.EXPECT().CheckActivity(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

	activity, err := ecoObj.Activity.CreateActivity(context.Background(), uuid.NewString(), &models.Activity{
		ActivityType:    models.ActivityTypeFood,
		MeatConsumption: 1,
	})
	assert.NoError(t, err)
	assert.InDelta(t, 27.0, activity.CarbonEmissions, 1e-9)
}

func TestCreateActivity_HighEmissionThreshold(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, _ := GetMockEcoWithMemorySqliteDialector(t, false, false, false)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.NewString()

	// exactly at the threshold does not notify
	_, err := ecoObj.Activity.CreateActivity(ctx, userID, &models.Activity{
		ActivityType:     models.ActivityTypeEnergy,
		ElectricityUsage: 100,
	})
	require.NoError(t, err)

	page, err := ecoObj.Notification.ListNotifications(ctx, userID, eco.NotificationFilter{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	_, err = ecoObj.Activity.CreateActivity(ctx, userID, &models.Activity{
		ActivityType:  models.ActivityTypeTransportation,
		TransportMode: models.TransportModeFlight,
		Distance:      250,
	})
	require.NoError(t, err)

	page, err = ecoObj.Notification.ListNotifications(ctx, userID, eco.NotificationFilter{})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	n := page.Items[0]
	assert.Equal(t, "High Carbon Activity Detected", n.Title)
	assert.Equal(t, "Your recent transportation activity generated 63.75 kg CO2. Consider greener alternatives!", n.Message)
	assert.Equal(t, models.NotificationTypeWarning, n.Type)
	assert.Equal(t, models.NotificationCategoryCarbon, n.Category)
	assert.False(t, n.IsRead)
	assert.EqualValues(t, 1, page.UnreadCount)
}

func TestUpdateActivity_RecalculatesEmissions(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, m := GetMockEcoWithMemorySqliteDialector(t, true, false, false)
	defer ctrl.Finish()

	m.Notification.EXPECT().CheckActivity(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	ctx := context.Background()
	userID := uuid.NewString()

	activity, err := ecoObj.Activity.CreateActivity(ctx, userID, &models.Activity{
		ActivityType:  models.ActivityTypeTransportation,
		TransportMode: models.TransportModeCar,
		Distance:      100,
		Description:   "commute",
	})
	require.NoError(t, err)

	updated, err := ecoObj.Activity.UpdateActivity(ctx, userID, activity.ID, &eco.ActivityPatch{
		TransportMode: ptr(models.TransportModeBus),
		Distance:      ptr(50.0),
	})
	require.NoError(t, err)

	assert.InDelta(t, 4.45, updated.CarbonEmissions, 1e-9)
	assert.Equal(t, "commute", updated.Description)

	var stored models.Activity
	require.NoError(t, ecoObj.Db.Conn.First(&stored, activity.ID).Error)
	assert.Equal(t, models.TransportModeBus, stored.TransportMode)
	assert.InDelta(t, 4.45, stored.CarbonEmissions, 1e-9)
}

func TestUpdateActivity_OtherOwnerIsNotFound(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, m := GetMockEcoWithMemorySqliteDialector(t, true, false, false)
	defer ctrl.Finish()

	m.Notification.EXPECT().CheckActivity(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	ctx := context.Background()
	activity, err := ecoObj.Activity.CreateActivity(ctx, uuid.NewString(), &models.Activity{
		ActivityType: models.ActivityTypeWater,
		WaterUsage:   1000,
	})
	require.NoError(t, err)

	_, err = ecoObj.Activity.UpdateActivity(ctx, uuid.NewString(), activity.ID, &eco.ActivityPatch{WaterUsage: ptr(1.0)})
	assert.ErrorIs(t, err, eco.ErrNotFound)

	err = ecoObj.Activity.DeleteActivity(ctx, uuid.NewString(), activity.ID)
	assert.ErrorIs(t, err, eco.ErrNotFound)
}

func TestDeleteActivity(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, m := GetMockEcoWithMemorySqliteDialector(t, true, false, false)
	defer ctrl.Finish()

	m.Notification.EXPECT().CheckActivity(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	ctx := context.Background()
	userID := uuid.NewString()
	activity, err := ecoObj.Activity.CreateActivity(ctx, userID, &models.Activity{
		ActivityType:   models.ActivityTypeWaste,
		WasteGenerated: 10,
	})
	require.NoError(t, err)

	require.NoError(t, ecoObj.Activity.DeleteActivity(ctx, userID, activity.ID))
	assert.ErrorIs(t, ecoObj.Activity.DeleteActivity(ctx, userID, activity.ID), eco.ErrNotFound)
}

func TestListActivities(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, m := GetMockEcoWithMemorySqliteDialector(t, true, false, false)
	defer ctrl.Finish()

	m.Notification.EXPECT().CheckActivity(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	ctx := context.Background()
	userID := uuid.NewString()
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	for i := range 5 {
		typ := models.ActivityTypeEnergy
		if i%2 == 0 {
			typ = models.ActivityTypeFood
		}
		_, err := ecoObj.Activity.CreateActivity(ctx, userID, &models.Activity{
			Date:            base.AddDate(0, 0, i),
			ActivityType:    typ,
			VegetarianMeals: 1,
			GasUsage:        1,
		})
		require.NoError(t, err)
	}

	all, err := ecoObj.Activity.ListActivities(ctx, userID, eco.ActivityFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 5, all.Total)
	require.Len(t, all.Items, 5)
	assert.True(t, all.Items[0].Date.After(all.Items[4].Date), "newest first")

	food, err := ecoObj.Activity.ListActivities(ctx, userID, eco.ActivityFilter{ActivityType: models.ActivityTypeFood})
	require.NoError(t, err)
	assert.EqualValues(t, 3, food.Total)

	paged, err := ecoObj.Activity.ListActivities(ctx, userID, eco.ActivityFilter{ListFilter: eco.ListFilter{Page: 2, Limit: 2}})
	require.NoError(t, err)
	assert.EqualValues(t, 5, paged.Total)
	assert.Len(t, paged.Items, 2)
	assert.Equal(t, 3, paged.Pages())

	start := base.AddDate(0, 0, 1)
	end := base.AddDate(0, 0, 3)
	ranged, err := ecoObj.Activity.ListActivities(ctx, userID, eco.ActivityFilter{ListFilter: eco.ListFilter{StartDate: &start, EndDate: &end}})
	require.NoError(t, err)
	assert.EqualValues(t, 3, ranged.Total)

	empty, err := ecoObj.Activity.ListActivities(ctx, uuid.NewString(), eco.ActivityFilter{})
	require.NoError(t, err)
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)
}

func TestGetEmissionSummary(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, m := GetMockEcoWithMemorySqliteDialector(t, true, false, false)
	defer ctrl.Finish()

	m.Notification.EXPECT().CheckActivity(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	now := time.Date(2031, 3, 20, 12, 0, 0, 0, time.UTC)
	ecoObj.Clock = func() time.Time { return now }

	ctx := context.Background()
	userID := uuid.NewString()

	inputs := []models.Activity{
		{Date: time.Date(2031, 3, 2, 8, 0, 0, 0, time.UTC), ActivityType: models.ActivityTypeEnergy, ElectricityUsage: 10},
		{Date: time.Date(2031, 3, 2, 18, 0, 0, 0, time.UTC), ActivityType: models.ActivityTypeFood, VegetarianMeals: 2},
		{Date: time.Date(2031, 3, 10, 8, 0, 0, 0, time.UTC), ActivityType: models.ActivityTypeTransportation, TransportMode: models.TransportModeCar, Distance: 100},
		// previous month, outside the window
		{Date: time.Date(2031, 2, 27, 8, 0, 0, 0, time.UTC), ActivityType: models.ActivityTypeFood, MeatConsumption: 1},
	}
	for i := range inputs {
		_, err := ecoObj.Activity.CreateActivity(ctx, userID, &inputs[i])
		require.NoError(t, err)
	}

	summary, err := ecoObj.Activity.GetEmissionSummary(ctx, userID, footprint.PeriodMonth)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.ActivityCount)
	assert.InDelta(t, 28.2, summary.TotalEmissions, 1e-9)
	assert.InDelta(t, 5.0, summary.ByActivityType[models.ActivityTypeEnergy], 1e-9)
	assert.InDelta(t, 0.0, summary.ByActivityType[models.ActivityTypeWater], 1e-9)
	require.Len(t, summary.TrendData, 2)
	assert.Equal(t, "2031-03-02", summary.TrendData[0].Date)
	assert.InDelta(t, 9.0, summary.TrendData[0].Emissions, 1e-9)
	assert.Equal(t, 1000.0, summary.Goal)
	assert.Equal(t, footprint.GoalAchieved, summary.GoalStatus)

	_, err = ecoObj.Profile.UpsertGoals(ctx, userID, &eco.GoalsPatch{CarbonFootprintGoal: ptr(20.0)})
	require.NoError(t, err)

	summary, err = ecoObj.Activity.GetEmissionSummary(ctx, userID, footprint.PeriodMonth)
	require.NoError(t, err)
	assert.Equal(t, 20.0, summary.Goal)
	assert.Equal(t, footprint.GoalExceeded, summary.GoalStatus)
	assert.Equal(t, 0.0, summary.GoalProgress)
}

func TestGetReductionTips(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, m := GetMockEcoWithMemorySqliteDialector(t, true, false, false)
	defer ctrl.Finish()

	m.Notification.EXPECT().CheckActivity(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	ctx := context.Background()
	userID := uuid.NewString()

	tips, err := ecoObj.Activity.GetReductionTips(ctx, userID, "energy")
	require.NoError(t, err)
	assert.Equal(t, footprint.TipsFor("energy"), tips)

	tips, err = ecoObj.Activity.GetReductionTips(ctx, userID, "")
	require.NoError(t, err)
	assert.Len(t, tips, 2, "no history gives general tips only")

	_, err = ecoObj.Activity.CreateActivity(ctx, userID, &models.Activity{
		ActivityType:    models.ActivityTypeFood,
		MeatConsumption: 1,
	})
	require.NoError(t, err)

	tips, err = ecoObj.Activity.GetReductionTips(ctx, userID, "")
	require.NoError(t, err)
	require.Len(t, tips, 4)
	assert.Equal(t, "food", tips[0].Category)
	assert.Equal(t, "general", tips[3].Category)
}

func TestCreateActivity_RejectsUnknownEnums(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, ecoObj, m := GetMockEcoWithMemorySqliteDialector(t, true, false, false)
	defer ctrl.Finish()

	m.Notification.EXPECT().CheckActivity(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	ctx := context.Background()
	userID := uuid.NewString()

	_, err := ecoObj.Activity.CreateActivity(ctx, userID, &models.Activity{ActivityType: "spaceship"})
	assert.ErrorIs(t, err, eco.ErrInvalidInput)

	_, err = ecoObj.Activity.CreateActivity(ctx, userID, &models.Activity{
		ActivityType:  models.ActivityTypeTransportation,
		TransportMode: "teleport",
		Distance:      10,
	})
	assert.ErrorIs(t, err, eco.ErrInvalidInput)

	activity, err := ecoObj.Activity.CreateActivity(ctx, userID, &models.Activity{
		ActivityType:  models.ActivityTypeTransportation,
		TransportMode: models.TransportModeBike,
		Distance:      10,
	})
	require.NoError(t, err)

	_, err = ecoObj.Activity.UpdateActivity(ctx, userID, activity.ID, &eco.ActivityPatch{
		TransportMode: ptr(models.TransportMode("teleport")),
	})
	assert.ErrorIs(t, err, eco.ErrInvalidInput)

	activities, err := ecoObj.Activity.ListActivities(ctx, userID, eco.ActivityFilter{})
	require.NoError(t, err)
	require.Len(t, activities.Items, 1)
	assert.Equal(t, models.TransportModeBike, activities.Items[0].TransportMode)
}
