// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// MetricType identifies the kind of health measurement a record holds.
type MetricType string

// The fixed set of metric kinds the engine understands.
const (
	MetricWeight          MetricType = "weight"
	MetricHeight          MetricType = "height"
	MetricBloodPressure   MetricType = "blood_pressure"
	MetricHeartRate       MetricType = "heart_rate"
	MetricBloodSugar      MetricType = "blood_sugar"
	MetricTemperature     MetricType = "temperature"
	MetricSleepHours      MetricType = "sleep_hours"
	MetricSteps           MetricType = "steps"
	MetricWaterIntake     MetricType = "water_intake"
	MetricExerciseMinutes MetricType = "exercise_minutes"
)

// MetricTypes lists every known metric kind. The order is significant: it is
// the order the intent matcher probes metric names in.
var MetricTypes = []MetricType{
	MetricWeight,
	MetricHeight,
	MetricBloodPressure,
	MetricHeartRate,
	MetricBloodSugar,
	MetricTemperature,
	MetricSleepHours,
	MetricSteps,
	MetricWaterIntake,
	MetricExerciseMinutes,
}

// Valid reports whether t is one of the known metric kinds.
func (t MetricType) Valid() bool {
	for _, k := range MetricTypes {
		if t == k {
			return true
		}
	}
	return false
}

// MeasurementRecord represents a single logged health value.
//
// Value is a float64 for plain numeric readings or a string for composite
// ones such as "120/80"; interpretation depends on Type. Unit is stored
// verbatim with no conversion or validation against Type.
type MeasurementRecord struct {
	ID        string     `json:"id"`
	Type      MetricType `json:"type"`
	Value     any        `json:"value"`
	Unit      string     `json:"unit"`
	Timestamp time.Time  `json:"timestamp"`
	Notes     string     `json:"notes,omitempty"`
}

// MeasurementRepository is the port for measurement persistence.
//
// Records for a user are kept in insertion order, which is the order "latest"
// lookups use. Back-dated entries make insertion order diverge from timestamp
// order; implementations must not reorder to "fix" that.
type MeasurementRepository interface {
	// Append stores rec at the end of the user's sequence. The caller has
	// already assigned ID and Timestamp.
	Append(ctx context.Context, userKey string, rec MeasurementRecord) error
	// ListAll returns the user's full history in insertion order. An
	// unknown user yields an empty sequence, not an error.
	ListAll(ctx context.Context, userKey string) ([]MeasurementRecord, error)
}
