package period

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/pbad/lifehub-engine/internal/domain"
)

// Aggregate is the summary of a day-indexed series over a period.
// Pointer fields are nil when the input carried no present samples
// (an empty set has no extremes and no change).
type Aggregate struct {
	Count             int
	Total             decimal.Decimal
	Average           decimal.Decimal
	Min               *decimal.Decimal
	Max               *decimal.Decimal
	ChangeFromStart   *decimal.Decimal
	ChangeRatePercent *decimal.Decimal
}

// Achievement counts how many daily buckets met a target.
type Achievement struct {
	AchievedDays int
	TotalDays    int
	Percent      decimal.Decimal
}

// Reduce summarizes a series: count, total, average, min/max and the
// change between the chronologically first and last present samples.
// Absent samples (Present == false) are skipped. An empty or all-absent
// input returns count 0 and total 0 without error. The change rate is 0
// when the first value is 0 — never a division by zero.
func Reduce(samples []domain.DailySample) Aggregate {
	present := make([]domain.DailySample, 0, len(samples))
	for _, s := range samples {
		if s.Present {
			present = append(present, s)
		}
	}
	sort.Slice(present, func(i, j int) bool {
		return present[i].Date.Before(present[j].Date)
	})

	agg := Aggregate{Total: decimal.Zero, Average: decimal.Zero}
	if len(present) == 0 {
		return agg
	}

	min := present[0].Value
	max := present[0].Value
	for _, s := range present {
		agg.Total = agg.Total.Add(s.Value)
		if s.Value.LessThan(min) {
			min = s.Value
		}
		if s.Value.GreaterThan(max) {
			max = s.Value
		}
	}

	agg.Count = len(present)
	agg.Average = agg.Total.DivRound(decimal.NewFromInt(int64(agg.Count)), 2)
	agg.Min = &min
	agg.Max = &max

	first := present[0].Value
	last := present[len(present)-1].Value
	change := last.Sub(first)
	agg.ChangeFromStart = &change

	rate := decimal.Zero
	if !first.IsZero() {
		rate = change.Div(first).Mul(decimal.NewFromInt(100)).Round(2)
	}
	agg.ChangeRatePercent = &rate

	return agg
}

// ReduceAchievement counts the daily buckets whose value meets or exceeds
// the target. The denominator is every sample on the axis, absent days
// included — a day without data is an unmet day, not a shorter period.
func ReduceAchievement(samples []domain.DailySample, target decimal.Decimal) Achievement {
	a := Achievement{TotalDays: len(samples), Percent: decimal.Zero}
	for _, s := range samples {
		if s.Present && s.Value.GreaterThanOrEqual(target) {
			a.AchievedDays++
		}
	}
	if a.TotalDays > 0 {
		a.Percent = decimal.NewFromInt(int64(a.AchievedDays)).
			Div(decimal.NewFromInt(int64(a.TotalDays))).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	return a
}
