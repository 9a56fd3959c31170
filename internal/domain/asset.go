package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetStatus represents the lifecycle phase of an asset
type AssetStatus string

const (
	AssetStatusInService AssetStatus = "IN_SERVICE"
	AssetStatusRetired   AssetStatus = "RETIRED"
	AssetStatusSold      AssetStatus = "SOLD"
)

// DepreciationMode selects how an asset's daily-average cost is amortized
type DepreciationMode string

const (
	DepreciationByUsageDate  DepreciationMode = "BY_USAGE_DATE"
	DepreciationByUsageCount DepreciationMode = "BY_USAGE_COUNT"
)

// Asset represents an owned item whose cost is amortized over its lifetime
type Asset struct {
	ID         uuid.UUID
	Name       string
	CategoryID uuid.UUID

	// Acquisition facts
	Price        decimal.Decimal
	PurchaseDate *time.Time

	// Depreciation inputs
	DepreciationMode   DepreciationMode
	UsageDate          *time.Time // BY_USAGE_DATE; defaults to PurchaseDate when nil
	ExpectedUsageCount *int       // BY_USAGE_COUNT

	// Lifecycle
	Status      AssetStatus
	RetiredDate *time.Time // non-nil iff Status == RETIRED
	SoldInfo    *SoldInfo  // non-nil iff Status == SOLD

	AdditionalFees []AdditionalFee
}

// AdditionalFee is an extra cost attached to an asset (repair, accessory, tax)
type AdditionalFee struct {
	ID      uuid.UUID
	AssetID uuid.UUID
	Amount  decimal.Decimal
	FeeDate time.Time
}

// SoldInfo captures the disposal facts of a SOLD asset
type SoldInfo struct {
	SoldPrice decimal.Decimal
	SoldDate  time.Time
}

// Validate ensures the asset adheres to domain rules
// Returns an error if validation fails
func (a *Asset) Validate() error {
	if a.Name == "" {
		return errors.New("asset name cannot be empty")
	}

	if a.Price.LessThan(decimal.Zero) {
		return errors.New("asset price cannot be negative")
	}

	if a.DepreciationMode != DepreciationByUsageDate && a.DepreciationMode != DepreciationByUsageCount {
		return errors.New("depreciation mode must be BY_USAGE_DATE or BY_USAGE_COUNT")
	}

	switch a.Status {
	case AssetStatusInService:
		if a.RetiredDate != nil {
			return errors.New("in-service asset cannot carry a retired date")
		}
		if a.SoldInfo != nil {
			return errors.New("in-service asset cannot carry sold info")
		}
	case AssetStatusRetired:
		if a.RetiredDate == nil {
			return errors.New("retired asset must carry a retired date")
		}
		if a.SoldInfo != nil {
			return errors.New("retired asset cannot carry sold info")
		}
	case AssetStatusSold:
		if a.SoldInfo == nil {
			return errors.New("sold asset must carry sold info")
		}
		if a.RetiredDate != nil {
			return errors.New("sold asset cannot carry a retired date")
		}
	default:
		return errors.New("asset status must be IN_SERVICE, RETIRED or SOLD")
	}

	for _, fee := range a.AdditionalFees {
		if fee.Amount.LessThan(decimal.Zero) {
			return errors.New("additional fee amount cannot be negative")
		}
	}

	return nil
}

// TotalValue returns the asset's full acquisition cost: price plus every
// additional fee. This is the base figure of all valuation math and is
// derived on demand, never stored.
func (a *Asset) TotalValue() decimal.Decimal {
	total := a.Price
	for _, fee := range a.AdditionalFees {
		total = total.Add(fee.Amount)
	}
	return total
}

// AcquisitionDate returns the date amortization starts from: the usage
// date when set, otherwise the purchase date. Nil when neither is known.
func (a *Asset) AcquisitionDate() *time.Time {
	if a.UsageDate != nil {
		return a.UsageDate
	}
	return a.PurchaseDate
}
