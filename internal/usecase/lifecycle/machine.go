// Package lifecycle is the single source of truth for asset status
// transitions. The transition table below replaces the scattered
// can-edit/can-retire/can-sell checks of earlier designs; every predicate
// and mutating operation is derived from it.
package lifecycle

import (
	"time"

	"github.com/pbad/lifehub-engine/internal/domain"
)

// Event is a requested lifecycle operation.
type Event string

const (
	EventRetire Event = "RETIRE"
	EventSell   Event = "SELL"
	EventResume Event = "RESUME"
	EventEdit   Event = "EDIT"
)

// transitions maps current status -> allowed event -> next status.
// SOLD is terminal: no event leaves it, and even EDIT is rejected.
// RESUME is accepted from any non-SOLD state; re-retiring a retired asset
// or re-selling a sold one is rejected, not silently accepted.
var transitions = map[domain.AssetStatus]map[Event]domain.AssetStatus{
	domain.AssetStatusInService: {
		EventRetire: domain.AssetStatusRetired,
		EventSell:   domain.AssetStatusSold,
		EventResume: domain.AssetStatusInService,
		EventEdit:   domain.AssetStatusInService,
	},
	domain.AssetStatusRetired: {
		EventResume: domain.AssetStatusInService,
		EventSell:   domain.AssetStatusSold,
		EventEdit:   domain.AssetStatusRetired,
	},
	domain.AssetStatusSold: {},
}

// Can reports whether the event is allowed from the asset's current status.
func Can(a *domain.Asset, e Event) bool {
	allowed, ok := transitions[a.Status]
	if !ok {
		return false
	}
	_, ok = allowed[e]
	return ok
}

// CanEdit reports whether the asset's fields may still be mutated.
func CanEdit(a *domain.Asset) bool { return Can(a, EventEdit) }

// CanRetire reports whether the asset may be retired.
func CanRetire(a *domain.Asset) bool { return Can(a, EventRetire) }

// CanSell reports whether the asset may be sold.
func CanSell(a *domain.Asset) bool { return Can(a, EventSell) }

// Retire moves the asset to RETIRED as of the given date and freezes its
// daily average (see valuation.DisplayDailyAverage).
// Returns ErrInvalidTransition when the asset is already retired or sold.
func Retire(a *domain.Asset, retiredDate time.Time) error {
	if !Can(a, EventRetire) {
		return domain.ErrInvalidTransition
	}
	d := retiredDate
	a.Status = domain.AssetStatusRetired
	a.RetiredDate = &d
	return nil
}

// Sell moves the asset to SOLD and attaches the disposal facts.
// A retired asset may be sold; its retired date is cleared so the
// retired-date-iff-RETIRED invariant holds.
func Sell(a *domain.Asset, info domain.SoldInfo) error {
	if !Can(a, EventSell) {
		return domain.ErrInvalidTransition
	}
	a.Status = domain.AssetStatusSold
	a.SoldInfo = &info
	a.RetiredDate = nil
	return nil
}

// Resume returns the asset to IN_SERVICE and clears its retired date.
// Allowed from any non-SOLD state; resuming an in-service asset is a
// harmless no-op.
func Resume(a *domain.Asset) error {
	if !Can(a, EventResume) {
		return domain.ErrInvalidTransition
	}
	a.Status = domain.AssetStatusInService
	a.RetiredDate = nil
	return nil
}
