package series

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pbad/lifehub-engine/internal/domain"
)

// FillPolicy decides what value an axis day gets when the sparse input
// has no record for it.
type FillPolicy int

const (
	// FillZero inserts 0 — counts and volumes, where no record means "none".
	FillZero FillPolicy = iota
	// FillCarryForward repeats the last known value — weight, where no new
	// record means "no change". Days before the first known value stay absent.
	FillCarryForward
	// FillNull leaves the day marked absent, so callers can distinguish
	// "no data" from "zero".
	FillNull
)

// Backfill merges a sparse map of day -> value onto an axis, producing one
// DailySample per axis day. Sparse keys are normalized to calendar days;
// duplicate keys after normalization keep the summed behavior of the caller
// (the map already holds one value per day).
func Backfill(axis []time.Time, sparse map[time.Time]decimal.Decimal, fill FillPolicy) []domain.DailySample {
	known := make(map[time.Time]decimal.Decimal, len(sparse))
	for d, v := range sparse {
		known[Day(d)] = v
	}

	out := make([]domain.DailySample, 0, len(axis))
	var last decimal.Decimal
	haveLast := false

	for _, d := range axis {
		day := Day(d)
		if v, ok := known[day]; ok {
			out = append(out, domain.DailySample{Date: day, Value: v, Present: true})
			last = v
			haveLast = true
			continue
		}

		switch fill {
		case FillZero:
			out = append(out, domain.DailySample{Date: day, Value: decimal.Zero, Present: true})
		case FillCarryForward:
			if haveLast {
				out = append(out, domain.DailySample{Date: day, Value: last, Present: true})
			} else {
				out = append(out, domain.DailySample{Date: day, Present: false})
			}
		default: // FillNull
			out = append(out, domain.DailySample{Date: day, Present: false})
		}
	}

	return out
}
