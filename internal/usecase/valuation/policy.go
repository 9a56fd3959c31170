// Package valuation computes an asset's daily-amortized cost.
//
// Two policies exist, selected by the asset's depreciation mode:
// by calendar usage (total value spread over owned days) and by usage
// count (total value spread over declared expected uses). The forced-zero
// display rule for retired and sold assets is a wrapper on top of the
// policies, never inlined into them, so the raw figure stays computable
// for audit.
package valuation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pbad/lifehub-engine/internal/domain"
	"github.com/pbad/lifehub-engine/internal/usecase/series"
)

// DailyAverage returns the asset's amortized cost per day (BY_USAGE_DATE)
// or per expected use (BY_USAGE_COUNT), rounded half-up to 2 decimals.
//
// BY_USAGE_DATE counts days from the acquisition date (usage date, falling
// back to purchase date) through the asset's effective end: retired date
// for RETIRED, sold date for SOLD, today otherwise. Same-day acquisition
// counts as 1 day. Fails with ErrMissingAcquisitionDate when no base date
// exists; never silently returns zero.
//
// BY_USAGE_COUNT divides by the declared expected usage count and fails
// with ErrInvalidUsageCount when the count is absent or not positive.
func DailyAverage(a *domain.Asset, today time.Time) (decimal.Decimal, error) {
	if a.DepreciationMode == domain.DepreciationByUsageCount {
		return byUsageCount(a)
	}
	return byUsageDate(a, effectiveEnd(a, today))
}

// DailyAverageAsOf is DailyAverage evaluated at an explicit end date,
// ignoring lifecycle state. Trend generators use it to value an asset on
// each historical day of an axis.
func DailyAverageAsOf(a *domain.Asset, asOf time.Time) (decimal.Decimal, error) {
	if a.DepreciationMode == domain.DepreciationByUsageCount {
		return byUsageCount(a)
	}
	return byUsageDate(a, asOf)
}

// DisplayDailyAverage applies the business rule on top of the policy
// output: a retired or sold asset stops accruing amortized cost, so its
// displayed figure is forced to zero. Policy preconditions are still
// checked — a broken asset reports its error, not a silent zero.
func DisplayDailyAverage(a *domain.Asset, today time.Time) (decimal.Decimal, error) {
	raw, err := DailyAverage(a, today)
	if err != nil {
		return decimal.Zero, err
	}
	if a.Status == domain.AssetStatusRetired || a.Status == domain.AssetStatusSold {
		return decimal.Zero, nil
	}
	return raw, nil
}

func byUsageDate(a *domain.Asset, asOf time.Time) (decimal.Decimal, error) {
	base := a.AcquisitionDate()
	if base == nil {
		return decimal.Zero, domain.ErrMissingAcquisitionDate
	}

	elapsed := series.DaysBetween(*base, asOf) + 1
	if elapsed < 1 {
		elapsed = 1
	}

	return a.TotalValue().DivRound(decimal.NewFromInt(int64(elapsed)), 2), nil
}

func byUsageCount(a *domain.Asset) (decimal.Decimal, error) {
	if a.ExpectedUsageCount == nil || *a.ExpectedUsageCount <= 0 {
		return decimal.Zero, domain.ErrInvalidUsageCount
	}
	return a.TotalValue().DivRound(decimal.NewFromInt(int64(*a.ExpectedUsageCount)), 2), nil
}

// effectiveEnd returns the last day the asset accrues amortized cost.
func effectiveEnd(a *domain.Asset, today time.Time) time.Time {
	switch a.Status {
	case domain.AssetStatusRetired:
		if a.RetiredDate != nil {
			return *a.RetiredDate
		}
	case domain.AssetStatusSold:
		if a.SoldInfo != nil {
			return a.SoldInfo.SoldDate
		}
	}
	return today
}
