package valuation

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pbad/lifehub-engine/internal/domain"
)

var today = time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)

func datePtr(t time.Time) *time.Time { return &t }
func intPtr(n int) *int              { return &n }

func usageDateAsset(price string, acquired time.Time) *domain.Asset {
	return &domain.Asset{
		ID:               uuid.New(),
		Name:             "Test asset",
		Price:            decimal.RequireFromString(price),
		PurchaseDate:     datePtr(acquired),
		DepreciationMode: domain.DepreciationByUsageDate,
		Status:           domain.AssetStatusInService,
	}
}

func TestDailyAverage_ByUsageDate_OneYearOwned(t *testing.T) {
	// 365.00 over 365 owned days (364 days ago through today inclusive)
	asset := usageDateAsset("365.00", today.AddDate(0, 0, -364))

	avg, err := DailyAverage(asset, today)
	require.NoError(t, err)
	assert.True(t, avg.Equal(decimal.RequireFromString("1.00")), "got %s", avg)
}

func TestDailyAverage_ByUsageDate_PurchasedToday(t *testing.T) {
	// Same-day purchase counts as one owned day
	asset := usageDateAsset("99.90", today)

	avg, err := DailyAverage(asset, today)
	require.NoError(t, err)
	assert.True(t, avg.Equal(decimal.RequireFromString("99.90")))
}

func TestDailyAverage_ByUsageDate_IncludesFees(t *testing.T) {
	asset := usageDateAsset("100", today.AddDate(0, 0, -9))
	asset.AdditionalFees = []domain.AdditionalFee{
		{ID: uuid.New(), Amount: decimal.NewFromInt(10), FeeDate: today},
	}

	// totalValue 110 over 10 days
	avg, err := DailyAverage(asset, today)
	require.NoError(t, err)
	assert.True(t, avg.Equal(decimal.RequireFromString("11.00")))
}

func TestDailyAverage_ByUsageDate_UsageDateOverridesPurchaseDate(t *testing.T) {
	asset := usageDateAsset("50", today.AddDate(0, 0, -100))
	asset.UsageDate = datePtr(today.AddDate(0, 0, -4)) // 5 owned days

	avg, err := DailyAverage(asset, today)
	require.NoError(t, err)
	assert.True(t, avg.Equal(decimal.RequireFromString("10.00")))
}

func TestDailyAverage_ByUsageDate_RoundsHalfUp(t *testing.T) {
	// 100 / 3 days = 33.333... -> 33.33; 100 / 6 = 16.666... -> 16.67
	asset := usageDateAsset("100", today.AddDate(0, 0, -2))
	avg, err := DailyAverage(asset, today)
	require.NoError(t, err)
	assert.True(t, avg.Equal(decimal.RequireFromString("33.33")))

	asset = usageDateAsset("100", today.AddDate(0, 0, -5))
	avg, err = DailyAverage(asset, today)
	require.NoError(t, err)
	assert.True(t, avg.Equal(decimal.RequireFromString("16.67")))
}

func TestDailyAverage_ByUsageDate_MissingAcquisitionDate(t *testing.T) {
	asset := usageDateAsset("100", today)
	asset.PurchaseDate = nil

	_, err := DailyAverage(asset, today)
	assert.True(t, errors.Is(err, domain.ErrMissingAcquisitionDate))
}

func TestDailyAverage_ByUsageDate_RetiredStopsAtRetiredDate(t *testing.T) {
	// Bought 19 days ago, retired 10 days ago: 10 owned days, not 20
	asset := usageDateAsset("100", today.AddDate(0, 0, -19))
	asset.Status = domain.AssetStatusRetired
	asset.RetiredDate = datePtr(today.AddDate(0, 0, -10))

	avg, err := DailyAverage(asset, today)
	require.NoError(t, err)
	assert.True(t, avg.Equal(decimal.RequireFromString("10.00")))
}

func TestDailyAverage_ByUsageDate_SoldStopsAtSoldDate(t *testing.T) {
	asset := usageDateAsset("100", today.AddDate(0, 0, -19))
	asset.Status = domain.AssetStatusSold
	asset.SoldInfo = &domain.SoldInfo{
		SoldPrice: decimal.NewFromInt(40),
		SoldDate:  today.AddDate(0, 0, -15),
	}

	// 5 owned days
	avg, err := DailyAverage(asset, today)
	require.NoError(t, err)
	assert.True(t, avg.Equal(decimal.RequireFromString("20.00")))
}

func TestDailyAverage_ByUsageCount(t *testing.T) {
	asset := &domain.Asset{
		ID:                 uuid.New(),
		Name:               "Ski pass",
		Price:              decimal.NewFromInt(450),
		DepreciationMode:   domain.DepreciationByUsageCount,
		ExpectedUsageCount: intPtr(30),
		Status:             domain.AssetStatusInService,
	}

	avg, err := DailyAverage(asset, today)
	require.NoError(t, err)
	assert.True(t, avg.Equal(decimal.RequireFromString("15.00")))
}

func TestDailyAverage_ByUsageCount_InvalidCount(t *testing.T) {
	asset := &domain.Asset{
		ID:               uuid.New(),
		Name:             "Ski pass",
		Price:            decimal.NewFromInt(450),
		DepreciationMode: domain.DepreciationByUsageCount,
		Status:           domain.AssetStatusInService,
	}

	_, err := DailyAverage(asset, today)
	assert.True(t, errors.Is(err, domain.ErrInvalidUsageCount))

	asset.ExpectedUsageCount = intPtr(0)
	_, err = DailyAverage(asset, today)
	assert.True(t, errors.Is(err, domain.ErrInvalidUsageCount))
}

func TestDisplayDailyAverage_ForcedZeroForRetired(t *testing.T) {
	asset := usageDateAsset("100", today.AddDate(0, 0, -9))
	asset.Status = domain.AssetStatusRetired
	asset.RetiredDate = datePtr(today)

	// Raw policy output stays computable for audit
	raw, err := DailyAverage(asset, today)
	require.NoError(t, err)
	assert.True(t, raw.Equal(decimal.RequireFromString("10.00")))

	shown, err := DisplayDailyAverage(asset, today)
	require.NoError(t, err)
	assert.True(t, shown.IsZero())
}

func TestDisplayDailyAverage_ForcedZeroForSold(t *testing.T) {
	asset := usageDateAsset("100", today.AddDate(0, 0, -9))
	asset.Status = domain.AssetStatusSold
	asset.SoldInfo = &domain.SoldInfo{SoldPrice: decimal.NewFromInt(50), SoldDate: today}

	shown, err := DisplayDailyAverage(asset, today)
	require.NoError(t, err)
	assert.True(t, shown.IsZero())
}

func TestDisplayDailyAverage_ErrorsAreNotMasked(t *testing.T) {
	asset := usageDateAsset("100", today)
	asset.PurchaseDate = nil
	asset.Status = domain.AssetStatusRetired
	asset.RetiredDate = datePtr(today)

	_, err := DisplayDailyAverage(asset, today)
	assert.True(t, errors.Is(err, domain.ErrMissingAcquisitionDate))
}

func TestDisplayDailyAverage_InServicePassesThrough(t *testing.T) {
	asset := usageDateAsset("100", today.AddDate(0, 0, -9))

	shown, err := DisplayDailyAverage(asset, today)
	require.NoError(t, err)
	assert.True(t, shown.Equal(decimal.RequireFromString("10.00")))
}
