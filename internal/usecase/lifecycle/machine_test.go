package lifecycle

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

func inServiceAsset() *domain.Asset {
	return &domain.Asset{
		ID:               uuid.New(),
		Name:             "Monitor",
		Price:            decimal.NewFromInt(300),
		DepreciationMode: domain.DepreciationByUsageDate,
		Status:           domain.AssetStatusInService,
	}
}

func soldInfo() domain.SoldInfo {
	return domain.SoldInfo{SoldPrice: decimal.NewFromInt(120), SoldDate: today}
}

func TestRetire_FromInService(t *testing.T) {
	asset := inServiceAsset()

	require.NoError(t, Retire(asset, today))
	assert.Equal(t, domain.AssetStatusRetired, asset.Status)
	require.NotNil(t, asset.RetiredDate)
	assert.Equal(t, today, *asset.RetiredDate)
	assert.NoError(t, asset.Validate())
}

func TestRetire_AlreadyRetiredIsRejected(t *testing.T) {
	asset := inServiceAsset()
	require.NoError(t, Retire(asset, today))

	err := Retire(asset, today.AddDate(0, 0, 1))
	assert.True(t, errors.Is(err, domain.ErrInvalidTransition))
	// First retirement date is untouched
	assert.Equal(t, today, *asset.RetiredDate)
}

func TestSell_FromInService(t *testing.T) {
	asset := inServiceAsset()

	require.NoError(t, Sell(asset, soldInfo()))
	assert.Equal(t, domain.AssetStatusSold, asset.Status)
	require.NotNil(t, asset.SoldInfo)
	assert.NoError(t, asset.Validate())
}

func TestSell_FromRetiredClearsRetiredDate(t *testing.T) {
	asset := inServiceAsset()
	require.NoError(t, Retire(asset, today))

	require.NoError(t, Sell(asset, soldInfo()))
	assert.Equal(t, domain.AssetStatusSold, asset.Status)
	assert.Nil(t, asset.RetiredDate)
	assert.NoError(t, asset.Validate())
}

func TestSell_AlreadySoldIsRejected(t *testing.T) {
	asset := inServiceAsset()
	require.NoError(t, Sell(asset, soldInfo()))

	err := Sell(asset, soldInfo())
	assert.True(t, errors.Is(err, domain.ErrInvalidTransition))
}

func TestResume_FromRetired(t *testing.T) {
	asset := inServiceAsset()
	require.NoError(t, Retire(asset, today))

	require.NoError(t, Resume(asset))
	assert.Equal(t, domain.AssetStatusInService, asset.Status)
	assert.Nil(t, asset.RetiredDate)
	assert.NoError(t, asset.Validate())
}

func TestResume_FromInServiceIsNoOp(t *testing.T) {
	asset := inServiceAsset()

	require.NoError(t, Resume(asset))
	assert.Equal(t, domain.AssetStatusInService, asset.Status)
}

func TestResume_FromSoldIsRejected(t *testing.T) {
	asset := inServiceAsset()
	require.NoError(t, Sell(asset, soldInfo()))

	err := Resume(asset)
	assert.True(t, errors.Is(err, domain.ErrInvalidTransition))
	assert.Equal(t, domain.AssetStatusSold, asset.Status)
}

func TestPredicates(t *testing.T) {
	asset := inServiceAsset()
	assert.True(t, CanEdit(asset))
	assert.True(t, CanRetire(asset))
	assert.True(t, CanSell(asset))

	require.NoError(t, Retire(asset, today))
	assert.True(t, CanEdit(asset))
	assert.False(t, CanRetire(asset))
	assert.True(t, CanSell(asset))

	require.NoError(t, Sell(asset, soldInfo()))
	assert.False(t, CanEdit(asset))
	assert.False(t, CanRetire(asset))
	assert.False(t, CanSell(asset))
}

func TestCan_UnknownStatus(t *testing.T) {
	asset := inServiceAsset()
	asset.Status = domain.AssetStatus("LOST")
	assert.False(t, Can(asset, EventEdit))
}
