package footprint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/ecotrack-service/pkg/models"
)

var now = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

func TestParsePeriod(t *testing.T) {
	assert.Equal(t, PeriodWeek, ParsePeriod("week"))
	assert.Equal(t, PeriodYear, ParsePeriod("year"))
	assert.Equal(t, PeriodMonth, ParsePeriod("month"))
	assert.Equal(t, PeriodMonth, ParsePeriod(""))
	assert.Equal(t, PeriodMonth, ParsePeriod("fortnight"))
}

func TestNewWindow(t *testing.T) {
	w := NewWindow(PeriodWeek, now)
	assert.Equal(t, now.Add(-7*24*time.Hour), w.Start)
	assert.Equal(t, now.Add(-14*24*time.Hour), w.PreviousStart)
	assert.Equal(t, now, w.End)

	w = NewWindow(PeriodMonth, now)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), w.PreviousStart)

	w = NewWindow(PeriodYear, now)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), w.PreviousStart)

	w = NewWindow("bogus", now)
	assert.Equal(t, PeriodMonth, w.Period)

	// January rolls back into the previous year
	jan := time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)
	w = NewWindow(PeriodMonth, jan)
	assert.Equal(t, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), w.PreviousStart)
}

func TestNewWindow_NormalisesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	local := time.Date(2024, time.April, 1, 2, 0, 0, 0, loc) // still March 31 in UTC
	w := NewWindow(PeriodMonth, local)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, MonthStart(local), w.Start)
}

func activityOn(day int, typ models.ActivityType, emissions float64) models.Activity {
	return models.Activity{
		ActivityType:    typ,
		Date:            time.Date(2024, time.March, day, 9, 0, 0, 0, time.UTC),
		CarbonEmissions: emissions,
	}
}

func TestSummarizeEmissions(t *testing.T) {
	w := NewWindow(PeriodMonth, now)
	activities := []models.Activity{
		activityOn(10, models.ActivityTypeTransportation, 19.2),
		activityOn(3, models.ActivityTypeFood, 27),
		activityOn(10, models.ActivityTypeEnergy, 5),
	}

	s := SummarizeEmissions(w, activities, 100)

	assert.InDelta(t, 51.2, s.TotalEmissions, 1e-9)
	assert.Equal(t, 3, s.ActivityCount)
	assert.Len(t, s.ByActivityType, len(models.AllActivityTypes))
	assert.Equal(t, 0.0, s.ByActivityType[models.ActivityTypeWater])
	assert.Equal(t, 27.0, s.ByActivityType[models.ActivityTypeFood])

	require.Len(t, s.TrendData, 2)
	assert.Equal(t, TrendPoint{Date: "2024-03-03", Emissions: 27}, s.TrendData[0])
	assert.Equal(t, TrendPoint{Date: "2024-03-10", Emissions: 24.2}, s.TrendData[1])

	assert.Equal(t, 48.8, s.GoalProgress)
	assert.Equal(t, GoalAchieved, s.GoalStatus)
	assert.Equal(t, w.Start, s.StartDate)
	assert.Equal(t, PeriodMonth, s.Period)
}

func TestSummarizeEmissions_SameDayRounding(t *testing.T) {
	w := NewWindow(PeriodMonth, now)
	activities := []models.Activity{
		activityOn(5, models.ActivityTypeWater, 2.001),
		activityOn(5, models.ActivityTypeWater, 2.001),
		activityOn(5, models.ActivityTypeWater, 1.999),
	}

	s := SummarizeEmissions(w, activities, 1000)
	require.Len(t, s.TrendData, 1)
	assert.Equal(t, 6.0, s.TrendData[0].Emissions)
}

func TestSummarizeEmissions_Exceeded(t *testing.T) {
	w := NewWindow(PeriodWeek, now)
	s := SummarizeEmissions(w, []models.Activity{activityOn(14, models.ActivityTypeFood, 150)}, 100)
	assert.Equal(t, GoalExceeded, s.GoalStatus)
	assert.Equal(t, 0.0, s.GoalProgress)
}

func TestSummarizeEmissions_Empty(t *testing.T) {
	s := SummarizeEmissions(NewWindow(PeriodYear, now), nil, 1000)
	assert.Equal(t, 0.0, s.TotalEmissions)
	assert.NotNil(t, s.TrendData)
	assert.Empty(t, s.TrendData)
	assert.Equal(t, 100.0, s.GoalProgress)
	assert.Equal(t, GoalAchieved, s.GoalStatus)
}

func TestGoalProgressAndReduction(t *testing.T) {
	assert.Equal(t, 0.0, GoalProgress(0, 10))
	assert.Equal(t, 50.0, GoalProgress(200, 100))
	assert.Equal(t, 0.0, GoalProgress(100, 200))

	assert.Equal(t, 0.0, ReductionPercentage(0, 10))
	assert.Equal(t, 25.0, ReductionPercentage(100, 75))
	assert.Equal(t, -50.0, ReductionPercentage(100, 150))

	assert.Equal(t, 0.0, Ratio(3, 0))
	assert.Equal(t, 33.33, Ratio(1, 3))
}

func TestSummarizePlastic(t *testing.T) {
	w := NewWindow(PeriodMonth, now)
	current := []models.PlasticUsage{
		{PlasticType: models.PlasticTypePET, Quantity: 4, Weight: 0.1, Recycled: true, Source: "beverage", EnvironmentalImpact: 40},
		{PlasticType: models.PlasticTypeSingleUse, Quantity: 2, Weight: 0.05, Reused: true, EnvironmentalImpact: 60},
		{PlasticType: models.PlasticTypePET, Quantity: 2, Weight: 0.05, Source: "beverage", EnvironmentalImpact: 30},
	}
	previous := []models.PlasticUsage{
		{PlasticType: models.PlasticTypePET, Quantity: 10, Weight: 0.3},
	}

	s := SummarizePlastic(w, current, previous, 20)

	assert.Equal(t, 8.0, s.Current.TotalQuantity)
	assert.Equal(t, 130.0, s.Current.TotalImpact)
	assert.Equal(t, 4.0, s.Current.RecycledCount)
	assert.Equal(t, 2.0, s.Current.ReusedCount)
	assert.Equal(t, 6.0, s.Current.ByType[models.PlasticTypePET].Quantity)
	assert.Equal(t, 6.0, s.Current.BySource["beverage"])
	assert.NotContains(t, s.Current.BySource, models.PlasticSource(""))
	assert.Equal(t, 10.0, s.Previous.TotalQuantity)

	assert.Equal(t, 20.0, s.ReductionPercentage)
	assert.Equal(t, 20.0, s.GoalProgress)
	assert.True(t, s.GoalAchieved)
	assert.Equal(t, 50.0, s.RecyclingRate)
}

func TestSummarizePlastic_NoPrevious(t *testing.T) {
	w := NewWindow(PeriodWeek, now)
	current := []models.PlasticUsage{{PlasticType: models.PlasticTypePP, Quantity: 3}}

	s := SummarizePlastic(w, current, nil, 20)
	assert.Equal(t, 0.0, s.ReductionPercentage)
	assert.Equal(t, 0.0, s.GoalProgress)
	assert.False(t, s.GoalAchieved)
	assert.Equal(t, 0.0, s.RecyclingRate)
}

func TestSummarizePlastic_Increase(t *testing.T) {
	w := NewWindow(PeriodWeek, now)
	s := SummarizePlastic(w,
		[]models.PlasticUsage{{Quantity: 15}},
		[]models.PlasticUsage{{Quantity: 10}},
		20)
	assert.Equal(t, -50.0, s.ReductionPercentage)
	assert.Equal(t, 0.0, s.GoalProgress)
}

func TestSummarizeRenewable(t *testing.T) {
	w := NewWindow(PeriodMonth, now)
	current := []models.RenewableEnergy{
		{EnergySource: models.EnergySourceSolar, EnergyGenerated: 100, EnergyUsed: 40, CarbonOffset: 50, Savings: 12},
		{EnergySource: models.EnergySourceSolar, EnergyGenerated: 50, CarbonOffset: 25},
		{EnergySource: models.EnergySourceBiomass, EnergyGenerated: 50, CarbonOffset: 15},
	}
	previous := []models.RenewableEnergy{
		{EnergySource: models.EnergySourceWind, EnergyGenerated: 160, CarbonOffset: 80},
	}

	s := SummarizeRenewable(w, current, previous)

	assert.Equal(t, 200.0, s.TotalEnergyGenerated)
	assert.Equal(t, 40.0, s.TotalEnergyUsed)
	assert.Equal(t, 90.0, s.TotalCarbonOffset)
	assert.Equal(t, 12.0, s.TotalSavings)
	assert.Equal(t, 3, s.LogCount)
	assert.Equal(t, SourceTotals{EnergyGenerated: 150, CarbonOffset: 75, Count: 2}, s.BySource[models.EnergySourceSolar])
	assert.Equal(t, 160.0, s.Previous.TotalEnergyGenerated)
	assert.Equal(t, 25.0, s.GrowthPercentage)

	s = SummarizeRenewable(w, current, nil)
	assert.Equal(t, 0.0, s.GrowthPercentage)
}
