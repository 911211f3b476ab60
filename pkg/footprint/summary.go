package footprint

import (
	"sort"
	"time"

	"liyu1981.xyz/ecotrack-service/pkg/models"
)

type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod falls back to month for anything unrecognised.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return Period(s)
	default:
		return PeriodMonth
	}
}

type Window struct {
	Period        Period
	Start         time.Time
	End           time.Time
	PreviousStart time.Time
}

// NewWindow computes the reporting window ending at now. Calendar boundaries
// are taken in UTC.
func NewWindow(p Period, now time.Time) Window {
	now = now.UTC()
	w := Window{Period: ParsePeriod(string(p)), End: now}

	switch w.Period {
	case PeriodWeek:
		w.Start = now.Add(-7 * 24 * time.Hour)
		w.PreviousStart = now.Add(-14 * 24 * time.Hour)
	case PeriodYear:
		w.Start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		w.PreviousStart = time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		w.Start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		w.PreviousStart = time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, time.UTC)
	}
	return w
}

// MonthStart is the first instant of the UTC calendar month containing t.
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

type TrendPoint struct {
	Date      string  `json:"date"`
	Emissions float64 `json:"emissions"`
}

type GoalStatus string

const (
	GoalAchieved GoalStatus = "achieved"
	GoalExceeded GoalStatus = "exceeded"
)

type EmissionSummary struct {
	TotalEmissions float64                         `json:"totalEmissions"`
	ByActivityType map[models.ActivityType]float64 `json:"byActivityType"`
	ActivityCount  int                             `json:"activityCount"`
	Period         Period                          `json:"period"`
	StartDate      time.Time                       `json:"startDate"`
	EndDate        time.Time                       `json:"endDate"`
	TrendData      []TrendPoint                    `json:"trendData"`
	Goal           float64                         `json:"goal"`
	GoalProgress   float64                         `json:"goalProgress"`
	GoalStatus     GoalStatus                      `json:"goalStatus"`
}

// SummarizeEmissions totals activities already filtered to the window.
func SummarizeEmissions(w Window, activities []models.Activity, goal float64) EmissionSummary {
	s := EmissionSummary{
		ByActivityType: make(map[models.ActivityType]float64, len(models.AllActivityTypes)),
		ActivityCount:  len(activities),
		Period:         w.Period,
		StartDate:      w.Start,
		EndDate:        w.End,
		Goal:           goal,
	}
	for _, t := range models.AllActivityTypes {
		s.ByActivityType[t] = 0
	}

	byDate := map[string]float64{}
	for _, a := range activities {
		s.TotalEmissions += a.CarbonEmissions
		s.ByActivityType[a.ActivityType] += a.CarbonEmissions
		byDate[a.Date.UTC().Format(time.DateOnly)] += a.CarbonEmissions
	}

	s.TrendData = make([]TrendPoint, 0, len(byDate))
	for date, emissions := range byDate {
		s.TrendData = append(s.TrendData, TrendPoint{Date: date, Emissions: Round2(emissions)})
	}
	sort.Slice(s.TrendData, func(i, j int) bool { return s.TrendData[i].Date < s.TrendData[j].Date })

	s.GoalProgress = GoalProgress(goal, s.TotalEmissions)
	if s.TotalEmissions <= goal {
		s.GoalStatus = GoalAchieved
	} else {
		s.GoalStatus = GoalExceeded
	}
	return s
}

// GoalProgress is the percentage by which total stays under goal, floored at
// zero.
func GoalProgress(goal, total float64) float64 {
	if goal <= 0 {
		return 0
	}
	progress := Round2((goal - total) / goal * 100)
	if progress > 0 {
		return progress
	}
	return 0
}

// ReductionPercentage is (previous - current) / previous * 100, or 0 without
// a previous baseline. Negative values are kept.
func ReductionPercentage(previous, current float64) float64 {
	if previous <= 0 {
		return 0
	}
	return Round2((previous - current) / previous * 100)
}

func Ratio(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return Round2(part / total * 100)
}

type PlasticTypeTotals struct {
	Quantity float64 `json:"quantity"`
	Weight   float64 `json:"weight"`
}

type PlasticCurrent struct {
	TotalQuantity float64                                  `json:"totalQuantity"`
	TotalWeight   float64                                  `json:"totalWeight"`
	TotalImpact   float64                                  `json:"totalImpact"`
	RecycledCount float64                                  `json:"recycledCount"`
	ReusedCount   float64                                  `json:"reusedCount"`
	ByType        map[models.PlasticType]PlasticTypeTotals `json:"byType"`
	BySource      map[models.PlasticSource]float64         `json:"bySource"`
}

type PlasticPrevious struct {
	TotalQuantity float64 `json:"totalQuantity"`
	TotalWeight   float64 `json:"totalWeight"`
}

type PlasticSummary struct {
	Current             PlasticCurrent  `json:"current"`
	Previous            PlasticPrevious `json:"previous"`
	Period              Period          `json:"period"`
	StartDate           time.Time       `json:"startDate"`
	EndDate             time.Time       `json:"endDate"`
	ReductionPercentage float64         `json:"reductionPercentage"`
	Goal                float64         `json:"goal"`
	GoalProgress        float64         `json:"goalProgress"`
	GoalAchieved        bool            `json:"goalAchieved"`
	RecyclingRate       float64         `json:"recyclingRate"`
}

func SummarizePlastic(w Window, current, previous []models.PlasticUsage, goal float64) PlasticSummary {
	s := PlasticSummary{
		Current: PlasticCurrent{
			ByType:   map[models.PlasticType]PlasticTypeTotals{},
			BySource: map[models.PlasticSource]float64{},
		},
		Period:    w.Period,
		StartDate: w.Start,
		EndDate:   w.End,
		Goal:      goal,
	}

	for _, p := range current {
		c := &s.Current
		c.TotalQuantity += p.Quantity
		c.TotalWeight += p.Weight
		c.TotalImpact += p.EnvironmentalImpact
		if p.Recycled {
			c.RecycledCount += p.Quantity
		}
		if p.Reused {
			c.ReusedCount += p.Quantity
		}

		totals := c.ByType[p.PlasticType]
		totals.Quantity += p.Quantity
		totals.Weight += p.Weight
		c.ByType[p.PlasticType] = totals

		if p.Source != "" {
			c.BySource[p.Source] += p.Quantity
		}
	}

	for _, p := range previous {
		s.Previous.TotalQuantity += p.Quantity
		s.Previous.TotalWeight += p.Weight
	}

	s.ReductionPercentage = ReductionPercentage(s.Previous.TotalQuantity, s.Current.TotalQuantity)
	if s.ReductionPercentage > 0 {
		s.GoalProgress = s.ReductionPercentage
	}
	s.GoalAchieved = s.GoalProgress >= goal
	s.RecyclingRate = Ratio(s.Current.RecycledCount, s.Current.TotalQuantity)
	return s
}

type SourceTotals struct {
	EnergyGenerated float64 `json:"energyGenerated"`
	CarbonOffset    float64 `json:"carbonOffset"`
	Count           int     `json:"count"`
}

type RenewablePrevious struct {
	TotalEnergyGenerated float64 `json:"totalEnergyGenerated"`
	TotalCarbonOffset    float64 `json:"totalCarbonOffset"`
}

type RenewableSummary struct {
	TotalEnergyGenerated float64                              `json:"totalEnergyGenerated"`
	TotalEnergyUsed      float64                              `json:"totalEnergyUsed"`
	TotalCarbonOffset    float64                              `json:"totalCarbonOffset"`
	TotalSavings         float64                              `json:"totalSavings"`
	BySource             map[models.EnergySource]SourceTotals `json:"bySource"`
	LogCount             int                                  `json:"logCount"`
	Period               Period                               `json:"period"`
	StartDate            time.Time                            `json:"startDate"`
	EndDate              time.Time                            `json:"endDate"`
	Previous             RenewablePrevious                    `json:"previous"`
	GrowthPercentage     float64                              `json:"growthPercentage"`
}

func SummarizeRenewable(w Window, current, previous []models.RenewableEnergy) RenewableSummary {
	s := RenewableSummary{
		BySource:  map[models.EnergySource]SourceTotals{},
		LogCount:  len(current),
		Period:    w.Period,
		StartDate: w.Start,
		EndDate:   w.End,
	}

	for _, r := range current {
		s.TotalEnergyGenerated += r.EnergyGenerated
		s.TotalEnergyUsed += r.EnergyUsed
		s.TotalCarbonOffset += r.CarbonOffset
		s.TotalSavings += r.Savings

		totals := s.BySource[r.EnergySource]
		totals.EnergyGenerated += r.EnergyGenerated
		totals.CarbonOffset += r.CarbonOffset
		totals.Count++
		s.BySource[r.EnergySource] = totals
	}

	for _, r := range previous {
		s.Previous.TotalEnergyGenerated += r.EnergyGenerated
		s.Previous.TotalCarbonOffset += r.CarbonOffset
	}

	if prev := s.Previous.TotalEnergyGenerated; prev > 0 {
		s.GrowthPercentage = Round2((s.TotalEnergyGenerated - prev) / prev * 100)
	}
	return s
}
