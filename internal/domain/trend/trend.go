// Package trend classifies the month-over-month movement of an average into a
// direction plus a signed percentage.
package trend

import "math"

// Direction describes whether an average is moving up, down, or holding.
type Direction string

// Trend directions.
const (
	Up     Direction = "up"
	Down   Direction = "down"
	Stable Direction = "stable"
)

// deadBand is the absolute delta (on the 1-5 scale) below which movement is
// reported as stable. It keeps noise from being flagged as a trend.
const deadBand = 0.1

// Trend is the classified movement between two period averages.
type Trend struct {
	Direction  Direction `json:"direction"`
	Percentage float64   `json:"percentage"`
}

// Classify compares the current average against the previous one. The
// percentage is relative to the previous value, rounded to one decimal, and 0
// whenever there is no previous data to compare against.
func Classify(current, previous float64) Trend {
	pct := 0.0
	if previous > 0 {
		pct = round1((current - previous) / previous * 100)
	}
	delta := current - previous
	switch {
	case delta > deadBand:
		return Trend{Direction: Up, Percentage: pct}
	case delta < -deadBand:
		return Trend{Direction: Down, Percentage: pct}
	default:
		return Trend{Direction: Stable, Percentage: pct}
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
