// Package pace converts between the three interderivable quantities of a
// rowing session: distance covered, elapsed duration, and the per-500m
// split, along with the average speed used for display.
package pace

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// secondsPer500AtOneKMH is the time in seconds to cover 500 m at 1 km/h,
// so split = secondsPer500AtOneKMH / speed and speed = secondsPer500AtOneKMH / split.
const secondsPer500AtOneKMH = 1800

var (
	// ErrInvalidSplitFormat indicates a malformed split value. The expected
	// presentation form is M:SS.s, e.g. 2:05.3.
	ErrInvalidSplitFormat = errors.New(
		"invalid split: expected minutes and seconds separated by a colon (e.g. 2:05.3)",
	)

	// ErrUndefinedRate indicates a derivation that would divide by a zero
	// speed or split. The dependent field is left unset instead.
	ErrUndefinedRate = errors.New(
		"pace is undefined for a zero rate",
	)
)

// Speed computes the average speed in km/h from a distance in kilometres
// and a duration in minutes.
func Speed(distanceKM, durationMin float64) (float64, error) {
	if durationMin <= 0 {
		return 0, ErrUndefinedRate
	}

	return distanceKM / (durationMin / 60), nil
}

// SplitFromSpeed computes the per-500m split in seconds from an average
// speed in km/h.
func SplitFromSpeed(speedKMH float64) (float64, error) {
	if speedKMH <= 0 {
		return 0, ErrUndefinedRate
	}

	return secondsPer500AtOneKMH / speedKMH, nil
}

// SpeedFromSplit computes the average speed in km/h from a per-500m split
// in seconds.
func SpeedFromSplit(splitSec float64) (float64, error) {
	if splitSec <= 0 {
		return 0, ErrUndefinedRate
	}

	return secondsPer500AtOneKMH / splitSec, nil
}

// ParseSplit parses the M:SS.s presentation form into total seconds per
// 500 m. The minutes part must be a non-negative integer and the seconds
// part a non-negative real; the total must be positive.
func ParseSplit(s string) (float64, error) {
	mins, secs, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, ErrInvalidSplitFormat
	}

	m, err := strconv.Atoi(mins)
	if err != nil || m < 0 {
		return 0, ErrInvalidSplitFormat
	}

	sec, err := strconv.ParseFloat(secs, 64)
	if err != nil || sec < 0 || math.IsInf(sec, 0) || math.IsNaN(sec) {
		return 0, ErrInvalidSplitFormat
	}

	total := float64(m)*60 + sec
	if total <= 0 {
		return 0, ErrInvalidSplitFormat
	}

	return total, nil
}

// FormatSplit renders a split in seconds as M:SS.s with the seconds field
// zero-padded to a width of four characters, e.g. 2:05.3 or 10:00.0.
func FormatSplit(splitSec float64) string {
	// Round to one decimal first so 119.96 renders as 2:00.0, not 1:60.0.
	rounded := math.Round(splitSec*10) / 10

	mins := int(rounded) / 60
	secs := rounded - float64(mins)*60

	return fmt.Sprintf("%d:%04.1f", mins, secs)
}

// Quantities holds the three interderivable session quantities. A quantity
// is treated as present only when it is positive.
type Quantities struct {
	DistanceKM  float64
	DurationMin float64
	SplitSec    float64
}

func present(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Resolve fills in the single missing quantity when exactly two of the
// three are present. When all three are supplied, or fewer than two, the
// inputs are returned unchanged: a user-supplied value is never
// overwritten. The derived field is rounded per the log's display policy
// (distance to 2 decimals, duration to the nearest whole minute, split to
// a tenth of a second).
func Resolve(q Quantities) Quantities {
	distance := present(q.DistanceKM)
	duration := present(q.DurationMin)
	split := present(q.SplitSec)

	switch {
	case distance && duration && !split:
		speed := q.DistanceKM / (q.DurationMin / 60)
		q.SplitSec = math.Round(secondsPer500AtOneKMH/speed*10) / 10
	case distance && split && !duration:
		q.DurationMin = math.Round(q.SplitSec * q.DistanceKM * 2 / 60)
	case duration && split && !distance:
		km := (q.DurationMin * 60 / q.SplitSec) * 0.5
		q.DistanceKM = math.Round(km*100) / 100
	}

	return q
}
