package model

import "time"

// Point is a single GPX track point. Elevation and Time are optional in the
// GPX schema, so they are pointers; a nil field means the source file did not
// carry the value. Points are treated as immutable values once constructed.
type Point struct {
	Lat       float64
	Lon       float64
	Elevation *float64
	Time      *time.Time
}

// Segment is a contiguous, ordered run of points. Points in different
// segments of the same track have no implied connection (e.g. a gap in
// recording).
type Segment struct {
	Points []Point
}

// Track is a named path composed of one or more segments, in traversal order.
type Track struct {
	Name     string
	Segments []Segment
}

// Document is the in-memory form of one GPX file: document metadata plus an
// ordered list of tracks. A Document exclusively owns its tracks; transforms
// rebuild a new Document rather than aliasing into an existing one.
type Document struct {
	Name    string
	Creator string
	Time    *time.Time
	Tracks  []Track
}

// PointCount returns the total number of points across all tracks and segments.
func (d *Document) PointCount() int {
	n := 0
	for _, trk := range d.Tracks {
		for _, seg := range trk.Segments {
			n += len(seg.Points)
		}
	}
	return n
}

// FlattenPoints returns every point of the document in document order:
// track order, then segment order, then point order.
func (d *Document) FlattenPoints() []Point {
	pts := make([]Point, 0, d.PointCount())
	for _, trk := range d.Tracks {
		for _, seg := range trk.Segments {
			pts = append(pts, seg.Points...)
		}
	}
	return pts
}

// Float64Ptr is a convenience for building optional elevation values.
func Float64Ptr(v float64) *float64 { return &v }

// TimePtr is a convenience for building optional timestamps.
func TimePtr(t time.Time) *time.Time { return &t }
