// Package statistics builds the asset inventory overview figures.
package statistics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pbad/lifehub-engine/internal/domain"
	"github.com/pbad/lifehub-engine/internal/usecase/period"
	"github.com/pbad/lifehub-engine/internal/usecase/series"
	"github.com/pbad/lifehub-engine/internal/usecase/valuation"
)

// Summary counts the inventory by lifecycle state and totals its value.
type Summary struct {
	TotalAssets     int
	InServiceAssets int
	RetiredAssets   int
	SoldAssets      int
	TotalValue      decimal.Decimal
}

// Overview reports purchases inside a period plus the current
// daily-average burn across the whole inventory.
type Overview struct {
	PurchaseAmount decimal.Decimal
	PurchaseCount  int
	// TotalDailyAverage is the sum of every asset's displayed daily
	// average; retired and sold assets contribute zero.
	TotalDailyAverage decimal.Decimal
}

// Summarize totals the inventory regardless of period.
func Summarize(assets []*domain.Asset) Summary {
	s := Summary{TotalValue: decimal.Zero}
	for _, a := range assets {
		s.TotalAssets++
		switch a.Status {
		case domain.AssetStatusInService:
			s.InServiceAssets++
		case domain.AssetStatusRetired:
			s.RetiredAssets++
		case domain.AssetStatusSold:
			s.SoldAssets++
		}
		s.TotalValue = s.TotalValue.Add(a.TotalValue())
	}
	return s
}

// BuildOverview computes the period overview: acquisition cost and count
// of assets purchased inside the resolved bounds, and the inventory-wide
// displayed daily-average total. Policy errors propagate — an asset with
// broken depreciation inputs is reported, not hidden behind a zero.
func BuildOverview(assets []*domain.Asset, q period.Query, today time.Time) (*Overview, error) {
	bounds, err := period.Resolve(q, today, earliestPurchase(assets))
	if err != nil {
		return nil, err
	}

	o := &Overview{
		PurchaseAmount:    decimal.Zero,
		TotalDailyAverage: decimal.Zero,
	}

	for _, a := range assets {
		if a.PurchaseDate != nil && bounds.Contains(*a.PurchaseDate) {
			o.PurchaseAmount = o.PurchaseAmount.Add(a.TotalValue())
			o.PurchaseCount++
		}

		avg, err := valuation.DisplayDailyAverage(a, today)
		if err != nil {
			return nil, fmt.Errorf("asset %s: %w", a.ID, err)
		}
		o.TotalDailyAverage = o.TotalDailyAverage.Add(avg)
	}

	return o, nil
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
