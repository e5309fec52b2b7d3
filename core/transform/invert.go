package transform

import "mmg/model"

// Invert returns a new document in which the point order of every segment is
// reversed. Track and segment order within the document are unchanged; only
// the traversal direction flips. Timestamps are not recomputed, they travel
// with their original point and end up out of chronological order, which is
// the expected behavior: consumers want the path reversed, not the recording.
//
// Non-empty track names get an " (inverted)" suffix so the result is
// recognizable in route planners. An empty document comes back empty.
func Invert(doc *model.Document) *model.Document {
	out := &model.Document{
		Name:    doc.Name,
		Creator: doc.Creator,
		Time:    doc.Time,
		Tracks:  make([]model.Track, 0, len(doc.Tracks)),
	}

	for _, trk := range doc.Tracks {
		name := trk.Name
		if name != "" {
			name += " (inverted)"
		}

		segments := make([]model.Segment, 0, len(trk.Segments))
		for _, seg := range trk.Segments {
			reversed := make([]model.Point, len(seg.Points))
			for i, p := range seg.Points {
				reversed[len(seg.Points)-1-i] = p
			}
			segments = append(segments, model.Segment{Points: reversed})
		}

		out.Tracks = append(out.Tracks, model.Track{Name: name, Segments: segments})
	}

	return out
}
