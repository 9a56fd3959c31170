// Package chart shapes asset statistics into the requested chart kind.
// Trend kinds walk a day axis and backfill gaps; grouping kinds bypass
// the time axis and aggregate per category.
package chart

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pbad/lifehub-engine/internal/domain"
	"github.com/pbad/lifehub-engine/internal/usecase/period"
	"github.com/pbad/lifehub-engine/internal/usecase/series"
	"github.com/pbad/lifehub-engine/internal/usecase/valuation"
)

// Kind selects the statistics chart to generate.
type Kind string

const (
	KindDailyAverageTrend  Kind = "DAILY_AVERAGE_TREND"
	KindTotalValueTrend    Kind = "TOTAL_VALUE_TREND"
	KindAssetDistribution  Kind = "ASSET_DISTRIBUTION"
	KindCategoryStatistics Kind = "CATEGORY_STATISTICS"
)

// Group is one category bucket of a grouping chart, sorted by descending
// total. Percent is populated for ASSET_DISTRIBUTION only.
type Group struct {
	CategoryID uuid.UUID
	Count      int
	Total      decimal.Decimal
	Percent    decimal.Decimal
}

// Result carries either a day-indexed trend or category groups,
// depending on the kind.
type Result struct {
	Kind   Kind
	Trend  []domain.DailySample
	Groups []Group
}

// Generate dispatches the kind to the matching generator.
// Unknown kinds fail with ErrUnsupportedChartKind.
func Generate(kind Kind, assets []*domain.Asset, q period.Query, today time.Time) (*Result, error) {
	switch kind {
	case KindTotalValueTrend:
		return trend(kind, assets, q, today, totalValueOn)
	case KindDailyAverageTrend:
		return trend(kind, assets, q, today, dailyAverageOn)
	case KindAssetDistribution:
		return distribution(assets)
	case KindCategoryStatistics:
		return categoryStatistics(assets)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedChartKind, kind)
	}
}

// perDayMetric values one asset on one owned day.
type perDayMetric func(a *domain.Asset, day time.Time) (decimal.Decimal, error)

func totalValueOn(a *domain.Asset, _ time.Time) (decimal.Decimal, error) {
	return a.TotalValue(), nil
}

func dailyAverageOn(a *domain.Asset, day time.Time) (decimal.Decimal, error) {
	return valuation.DailyAverageAsOf(a, day)
}

// trend sums the metric across every asset owned on each axis day.
// An asset is owned from its purchase day through its retired/sold day
// (or the axis end while in service); assets without a purchase date
// cannot be placed on the axis and are skipped. The ALL period anchors
// to the earliest purchase date.
func trend(kind Kind, assets []*domain.Asset, q period.Query, today time.Time, metric perDayMetric) (*Result, error) {
	bounds, err := period.Resolve(q, today, earliestPurchase(assets))
	if err != nil {
		return nil, err
	}

	axis, err := series.GenerateAxis(bounds.Start, bounds.End)
	if err != nil {
		return nil, err
	}

	sparse := make(map[time.Time]decimal.Decimal)
	for _, a := range assets {
		if a.PurchaseDate == nil {
			continue
		}

		from := series.Day(*a.PurchaseDate)
		if from.Before(bounds.Start) {
			from = bounds.Start
		}
		to := ownershipEnd(a, today)
		if to.After(bounds.End) {
			to = bounds.End
		}

		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			v, err := metric(a, d)
			if err != nil {
				return nil, fmt.Errorf("asset %s: %w", a.ID, err)
			}
			sparse[d] = sparse[d].Add(v)
		}
	}

	return &Result{
		Kind:  kind,
		Trend: series.Backfill(axis, sparse, series.FillZero),
	}, nil
}

// distribution groups the full inventory by category and reports each
// category's share of the grand total value.
func distribution(assets []*domain.Asset) (*Result, error) {
	groups := groupByCategory(assets)

	grandTotal := decimal.Zero
	for _, g := range groups {
		grandTotal = grandTotal.Add(g.Total)
	}

	for i := range groups {
		if grandTotal.IsPositive() {
			groups[i].Percent = groups[i].Total.
				DivRound(grandTotal, 4).
				Mul(decimal.NewFromInt(100)).
				Round(2)
		}
	}

	return &Result{Kind: KindAssetDistribution, Groups: groups}, nil
}

// categoryStatistics groups the full inventory by category with per-group
// asset counts and value totals.
func categoryStatistics(assets []*domain.Asset) (*Result, error) {
	return &Result{Kind: KindCategoryStatistics, Groups: groupByCategory(assets)}, nil
}

func groupByCategory(assets []*domain.Asset) []Group {
	byCategory := make(map[uuid.UUID]*Group)
	for _, a := range assets {
		g, ok := byCategory[a.CategoryID]
		if !ok {
			g = &Group{CategoryID: a.CategoryID, Total: decimal.Zero}
			byCategory[a.CategoryID] = g
		}
		g.Count++
		g.Total = g.Total.Add(a.TotalValue())
	}

	groups := make([]Group, 0, len(byCategory))
	for _, g := range byCategory {
		groups = append(groups, *g)
	}

	// Descending by total; category id breaks ties for stable output
	sort.Slice(groups, func(i, j int) bool {
		if !groups[i].Total.Equal(groups[j].Total) {
			return groups[i].Total.GreaterThan(groups[j].Total)
		}
		return groups[i].CategoryID.String() < groups[j].CategoryID.String()
	})

	return groups
}

func earliestPurchase(assets []*domain.Asset) *time.Time {
	var earliest *time.Time
	for _, a := range assets {
		if a.PurchaseDate == nil {
			continue
		}
		d := series.Day(*a.PurchaseDate)
		if earliest == nil || d.Before(*earliest) {
			earliest = &d
		}
	}
	return earliest
}

// ownershipEnd returns the last day the asset counts toward a trend.
func ownershipEnd(a *domain.Asset, today time.Time) time.Time {
	switch a.Status {
	case domain.AssetStatusRetired:
		if a.RetiredDate != nil {
			return series.Day(*a.RetiredDate)
		}
	case domain.AssetStatusSold:
		if a.SoldInfo != nil {
			return series.Day(a.SoldInfo.SoldDate)
		}
	}
	return series.Day(today)
}
