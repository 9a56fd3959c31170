package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExerciseRecord represents a single workout session
type ExerciseRecord struct {
	ID              uuid.UUID
	Date            time.Time
	Kind            string // e.g. "RUNNING", "SWIMMING"
	DurationMinutes int
	Calories        int
}

// WaterIntake represents one logged drink
type WaterIntake struct {
	ID       uuid.UUID
	Date     time.Time
	VolumeML int
}

// WeightRecord represents one weigh-in
type WeightRecord struct {
	ID       uuid.UUID
	Date     time.Time
	WeightKg decimal.Decimal
}
