package model

import "time"

// TrackStats holds the derived statistics for a single track. Distances and
// elevations are in meters. StartTime/EndTime are nil when no point of the
// track carries a timestamp.
type TrackStats struct {
	Name          string
	PointCount    int
	Distance      float64
	ElevationGain float64
	ElevationLoss float64
	StartTime     *time.Time
	EndTime       *time.Time
}

// HasTimeSpan reports whether at least one point carried a timestamp.
func (s *TrackStats) HasTimeSpan() bool {
	return s.StartTime != nil && s.EndTime != nil
}

// Duration returns the span between the earliest and latest timestamp, or
// zero when the track has no timestamps.
func (s *TrackStats) Duration() time.Duration {
	if !s.HasTimeSpan() {
		return 0
	}
	return s.EndTime.Sub(*s.StartTime)
}

// DocumentStats aggregates the per-track statistics of one document.
// Totals are sums over tracks; the time span is the min/max over tracks.
type DocumentStats struct {
	Name          string
	PointCount    int
	Distance      float64
	ElevationGain float64
	ElevationLoss float64
	StartTime     *time.Time
	EndTime       *time.Time
	Tracks        []TrackStats
}

// HasTimeSpan reports whether any track of the document had a timestamp.
func (s *DocumentStats) HasTimeSpan() bool {
	return s.StartTime != nil && s.EndTime != nil
}

// Duration returns the document-level time span, or zero when unavailable.
func (s *DocumentStats) Duration() time.Duration {
	if !s.HasTimeSpan() {
		return 0
	}
	return s.EndTime.Sub(*s.StartTime)
}
