// Package models defines the session record stored in the rowing log.
package models

import (
	"errors"
	"math"
	"time"
)

// SessionType categorises a logged session.
type SessionType string

const (
	TypeWater         SessionType = "Water"
	TypeErg           SessionType = "Erg"
	TypeCrossTraining SessionType = "Cross-Training"
	TypeStrength      SessionType = "Strength"
	TypeOther         SessionType = "Other"
)

// SessionTypes is the declared session type vocabulary in display order.
// Types outside this set are preserved verbatim and aggregated into their
// own buckets rather than coerced to TypeOther.
var SessionTypes = []SessionType{
	TypeWater,
	TypeErg,
	TypeCrossTraining,
	TypeStrength,
	TypeOther,
}

// Declared reports whether t belongs to the fixed vocabulary.
func Declared(t SessionType) bool {
	for _, s := range SessionTypes {
		if s == t {
			return true
		}
	}

	return false
}

var (
	errInvalidDate = errors.New(
		"a session must have a valid calendar date",
	)
	errNegativeDistance = errors.New(
		"distance must be zero or greater",
	)
	errInvalidDuration = errors.New(
		"duration must be greater than zero",
	)
)

// Record is one logged rowing session.
type Record struct {
	ID          string      `json:"id"`
	Date        time.Time   `json:"date"`
	DistanceKM  float64     `json:"distance_km"`
	DurationMin float64     `json:"duration_min"`
	SpeedKMH    float64     `json:"speed_kmh"`
	Type        SessionType `json:"session_type"`
	Notes       string      `json:"notes"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Validate reports whether the record satisfies the log invariants:
// a real calendar date, a non-negative distance, and a positive duration.
func (r *Record) Validate() error {
	if r.Date.IsZero() {
		return errInvalidDate
	}

	if math.IsNaN(r.DistanceKM) || r.DistanceKM < 0 {
		return errNegativeDistance
	}

	if math.IsNaN(r.DurationMin) || r.DurationMin <= 0 {
		return errInvalidDuration
	}

	return nil
}
