// Package health aggregates exercise, water-intake and weight records
// into overviews and day-indexed trends. Each metric picks the fill
// policy that matches its meaning: water and exercise gaps are zero
// (nothing logged means nothing happened), weight gaps carry the last
// known value forward (nothing logged means no change).
package health

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pbad/lifehub-engine/internal/domain"
	"github.com/pbad/lifehub-engine/internal/usecase/period"
	"github.com/pbad/lifehub-engine/internal/usecase/series"
)

// DefaultDailyWaterTargetML is used when the user never set a target.
const DefaultDailyWaterTargetML = 2000

// WaterOverview reports today's progress plus week/month totals against
// the daily target.
type WaterOverview struct {
	TodayIntakeML        int
	TodayTargetML        int
	TodayProgressPercent decimal.Decimal
	TodayAchieved        bool
	WeekIntakeML         int
	WeekAchievementDays  int
	MonthIntakeML        int
	MonthAchievementDays int
}

// WeightOverview reports the latest weigh-in against the target plus the
// week/month deltas. Pointer fields are nil when the underlying records
// do not exist — "no data" is reported as absent, never as zero.
type WeightOverview struct {
	LatestWeightKg *decimal.Decimal
	TargetWeightKg *decimal.Decimal
	GapFromTarget  *decimal.Decimal
	WeekChange     *decimal.Decimal
	MonthChange    *decimal.Decimal
}

// ExerciseOverview reports today/week/month workout totals.
type ExerciseOverview struct {
	TodayDurationMin int
	TodayCount       int
	TodayCalories    int
	WeekDurationMin  int
	WeekCount        int
	WeekCalories     int
	MonthDurationMin int
	MonthCount       int
	MonthCalories    int
}

// Completeness reports how many period days carry at least one record of
// each metric, and the share of days with any record at all.
type Completeness struct {
	ExerciseDays int
	WaterDays    int
	WeightDays   int
	TotalDays    int
	Percent      decimal.Decimal
}

// WaterTrend returns the per-day intake volume over the requested period,
// zero-filled.
func WaterTrend(records []domain.WaterIntake, q period.Query, today time.Time) ([]domain.DailySample, error) {
	bounds, err := period.Resolve(q, today, earliestWaterDate(records))
	if err != nil {
		return nil, err
	}
	return waterSamples(records, bounds)
}

// ExerciseTrend returns the per-day workout minutes over the requested
// period, zero-filled.
func ExerciseTrend(records []domain.ExerciseRecord, q period.Query, today time.Time) ([]domain.DailySample, error) {
	bounds, err := period.Resolve(q, today, earliestExerciseDate(records))
	if err != nil {
		return nil, err
	}

	axis, err := series.GenerateAxis(bounds.Start, bounds.End)
	if err != nil {
		return nil, err
	}

	sparse := make(map[time.Time]decimal.Decimal)
	for _, r := range records {
		d := series.Day(r.Date)
		sparse[d] = sparse[d].Add(decimal.NewFromInt(int64(r.DurationMinutes)))
	}
	return series.Backfill(axis, sparse, series.FillZero), nil
}

// WeightTrend returns the per-day weight over the requested period. Days
// without a weigh-in repeat the last known weight; days before the first
// weigh-in stay absent.
func WeightTrend(records []domain.WeightRecord, q period.Query, today time.Time) ([]domain.DailySample, error) {
	bounds, err := period.Resolve(q, today, earliestWeightDate(records))
	if err != nil {
		return nil, err
	}
	return weightSamples(records, bounds)
}

// BuildWaterOverview computes today/week/month intake and achievement
// figures. A non-positive target falls back to the default.
func BuildWaterOverview(records []domain.WaterIntake, targetML int, today time.Time) WaterOverview {
	if targetML <= 0 {
		targetML = DefaultDailyWaterTargetML
	}
	target := decimal.NewFromInt(int64(targetML))

	o := WaterOverview{TodayTargetML: targetML, TodayProgressPercent: decimal.Zero}

	day := series.Day(today)
	todayTotal := decimal.Zero
	for _, r := range records {
		if series.Day(r.Date).Equal(day) {
			todayTotal = todayTotal.Add(decimal.NewFromInt(int64(r.VolumeML)))
		}
	}
	o.TodayIntakeML = int(todayTotal.IntPart())
	o.TodayAchieved = todayTotal.GreaterThanOrEqual(target)
	if todayTotal.IsPositive() {
		o.TodayProgressPercent = todayTotal.Div(target).Mul(decimal.NewFromInt(100)).Round(2)
	}

	week := mustSamples(records, period.PeriodWeek, today)
	weekAgg := period.Reduce(week)
	o.WeekIntakeML = int(weekAgg.Total.IntPart())
	o.WeekAchievementDays = period.ReduceAchievement(week, target).AchievedDays

	month := mustSamples(records, period.PeriodMonth, today)
	monthAgg := period.Reduce(month)
	o.MonthIntakeML = int(monthAgg.Total.IntPart())
	o.MonthAchievementDays = period.ReduceAchievement(month, target).AchievedDays

	return o
}

// BuildWeightOverview computes the latest weight, its gap to the target
// and the week/month change. A change is the delta between the first and
// last weigh-in inside the period and is nil when the period holds none.
func BuildWeightOverview(records []domain.WeightRecord, targetKg *decimal.Decimal, today time.Time) WeightOverview {
	o := WeightOverview{TargetWeightKg: targetKg}

	latest := latestWeight(records, today)
	if latest == nil {
		return o
	}
	o.LatestWeightKg = latest

	if targetKg != nil {
		gap := latest.Sub(*targetKg)
		o.GapFromTarget = &gap
	}

	o.WeekChange = weightChange(records, period.PeriodWeek, today)
	o.MonthChange = weightChange(records, period.PeriodMonth, today)

	return o
}

// BuildExerciseOverview computes today/week/month workout totals.
func BuildExerciseOverview(records []domain.ExerciseRecord, today time.Time) ExerciseOverview {
	var o ExerciseOverview

	sum := func(p period.Period) (minutes, count, calories int) {
		bounds, _ := period.Resolve(period.Query{Period: p}, today, nil)
		for _, r := range records {
			if !bounds.Contains(r.Date) {
				continue
			}
			minutes += r.DurationMinutes
			count++
			calories += r.Calories
		}
		return
	}

	o.TodayDurationMin, o.TodayCount, o.TodayCalories = sum(period.PeriodToday)
	o.WeekDurationMin, o.WeekCount, o.WeekCalories = sum(period.PeriodWeek)
	o.MonthDurationMin, o.MonthCount, o.MonthCalories = sum(period.PeriodMonth)

	return o
}

// BuildCompleteness reports record coverage over the requested period.
func BuildCompleteness(
	exercise []domain.ExerciseRecord,
	water []domain.WaterIntake,
	weight []domain.WeightRecord,
	q period.Query,
	today time.Time,
) (Completeness, error) {
	bounds, err := period.Resolve(q, today, nil)
	if err != nil {
		return Completeness{}, err
	}

	exerciseDays := make(map[time.Time]struct{})
	waterDays := make(map[time.Time]struct{})
	weightDays := make(map[time.Time]struct{})
	anyDays := make(map[time.Time]struct{})

	mark := func(set map[time.Time]struct{}, d time.Time) {
		if bounds.Contains(d) {
			day := series.Day(d)
			set[day] = struct{}{}
			anyDays[day] = struct{}{}
		}
	}

	for _, r := range exercise {
		mark(exerciseDays, r.Date)
	}
	for _, r := range water {
		mark(waterDays, r.Date)
	}
	for _, r := range weight {
		mark(weightDays, r.Date)
	}

	c := Completeness{
		ExerciseDays: len(exerciseDays),
		WaterDays:    len(waterDays),
		WeightDays:   len(weightDays),
		TotalDays:    bounds.Days(),
		Percent:      decimal.Zero,
	}
	if c.TotalDays > 0 {
		c.Percent = decimal.NewFromInt(int64(len(anyDays))).
			Div(decimal.NewFromInt(int64(c.TotalDays))).
			Mul(decimal.NewFromInt(100)).
			Round(1)
	}
	return c, nil
}

func waterSamples(records []domain.WaterIntake, bounds period.Bounds) ([]domain.DailySample, error) {
	axis, err := series.GenerateAxis(bounds.Start, bounds.End)
	if err != nil {
		return nil, err
	}

	sparse := make(map[time.Time]decimal.Decimal)
	for _, r := range records {
		d := series.Day(r.Date)
		sparse[d] = sparse[d].Add(decimal.NewFromInt(int64(r.VolumeML)))
	}
	return series.Backfill(axis, sparse, series.FillZero), nil
}

func weightSamples(records []domain.WeightRecord, bounds period.Bounds) ([]domain.DailySample, error) {
	axis, err := series.GenerateAxis(bounds.Start, bounds.End)
	if err != nil {
		return nil, err
	}

	// Last weigh-in of each day wins
	latestPerDay := make(map[time.Time]domain.WeightRecord)
	for _, r := range records {
		d := series.Day(r.Date)
		if prev, ok := latestPerDay[d]; !ok || !r.Date.Before(prev.Date) {
			latestPerDay[d] = r
		}
	}

	sparse := make(map[time.Time]decimal.Decimal, len(latestPerDay))
	for d, r := range latestPerDay {
		sparse[d] = r.WeightKg
	}
	return series.Backfill(axis, sparse, series.FillCarryForward), nil
}

// mustSamples builds a symbolic-period water series; symbolic periods
// cannot fail to resolve or generate.
func mustSamples(records []domain.WaterIntake, p period.Period, today time.Time) []domain.DailySample {
	bounds, _ := period.Resolve(period.Query{Period: p}, today, nil)
	samples, _ := waterSamples(records, bounds)
	return samples
}

func latestWeight(records []domain.WeightRecord, today time.Time) *decimal.Decimal {
	end := series.Day(today)
	var found *domain.WeightRecord
	for i := range records {
		r := records[i]
		if series.Day(r.Date).After(end) {
			continue
		}
		if found == nil || !r.Date.Before(found.Date) {
			found = &records[i]
		}
	}
	if found == nil {
		return nil
	}
	v := found.WeightKg
	return &v
}

func weightChange(records []domain.WeightRecord, p period.Period, today time.Time) *decimal.Decimal {
	bounds, _ := period.Resolve(period.Query{Period: p}, today, nil)
	samples, err := weightSamples(records, bounds)
	if err != nil {
		return nil
	}
	return period.Reduce(samples).ChangeFromStart
}

func earliestWaterDate(records []domain.WaterIntake) *time.Time {
	var earliest *time.Time
	for _, r := range records {
		d := series.Day(r.Date)
		if earliest == nil || d.Before(*earliest) {
			earliest = &d
		}
	}
	return earliest
}

func earliestExerciseDate(records []domain.ExerciseRecord) *time.Time {
	var earliest *time.Time
	for _, r := range records {
		d := series.Day(r.Date)
		if earliest == nil || d.Before(*earliest) {
			earliest = &d
		}
	}
	return earliest
}

func earliestWeightDate(records []domain.WeightRecord) *time.Time {
	var earliest *time.Time
	for _, r := range records {
		d := series.Day(r.Date)
		if earliest == nil || d.Before(*earliest) {
			earliest = &d
		}
	}
	return earliest
}
