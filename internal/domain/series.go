package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySample is one point of a continuous day-indexed series.
// The value is metric-agnostic (ml, minutes, kg, currency).
// Present is false for axis days the fill policy left without data,
// which lets callers distinguish "no data" from "zero".
type DailySample struct {
	Date    time.Time
	Value   decimal.Decimal
	Present bool
}
