package stats

import (
	"time"

	"mmg/core/geo"
	"mmg/model"
)

// Info computes statistics for every input document, in input order. It never
// mutates a document; an empty document yields all-zero values with no time
// span.
func Info(docs []*model.Document) []model.DocumentStats {
	out := make([]model.DocumentStats, 0, len(docs))
	for _, doc := range docs {
		out = append(out, Document(doc))
	}
	return out
}

// Document computes the per-track statistics of one document and their
// document-level aggregate: sums for point count, distance and elevation,
// min/max over tracks for the time span.
func Document(doc *model.Document) model.DocumentStats {
	ds := model.DocumentStats{
		Name:   doc.Name,
		Tracks: make([]model.TrackStats, 0, len(doc.Tracks)),
	}

	for _, trk := range doc.Tracks {
		ts := Track(trk)
		ds.PointCount += ts.PointCount
		ds.Distance += ts.Distance
		ds.ElevationGain += ts.ElevationGain
		ds.ElevationLoss += ts.ElevationLoss
		ds.StartTime = earlier(ds.StartTime, ts.StartTime)
		ds.EndTime = later(ds.EndTime, ts.EndTime)
		ds.Tracks = append(ds.Tracks, ts)
	}

	return ds
}

// Track computes the statistics of a single track. Distance and elevation are
// accumulated over consecutive point pairs within a segment only; segments
// are disjoint path pieces, so no pair spans a segment boundary.
func Track(trk model.Track) model.TrackStats {
	ts := model.TrackStats{Name: trk.Name}

	for _, seg := range trk.Segments {
		ts.PointCount += len(seg.Points)
		for i, p := range seg.Points {
			if p.Time != nil {
				ts.StartTime = earlier(ts.StartTime, p.Time)
				ts.EndTime = later(ts.EndTime, p.Time)
			}
			if i == 0 {
				continue
			}
			prev := seg.Points[i-1]
			ts.Distance += geo.Distance(prev, p)
			gain, loss := geo.ElevationDelta(prev, p)
			ts.ElevationGain += gain
			ts.ElevationLoss += loss
		}
	}

	return ts
}

func earlier(cur, cand *time.Time) *time.Time {
	if cand == nil {
		return cur
	}
	if cur == nil || cand.Before(*cur) {
		return cand
	}
	return cur
}

func later(cur, cand *time.Time) *time.Time {
	if cand == nil {
		return cur
	}
	if cur == nil || cand.After(*cur) {
		return cand
	}
	return cur
}
