package transform

import (
	"fmt"

	"mmg/model"
)

// DecimatePolicy selects exactly one point-reduction strategy. Factor keeps
// every N-th point; MaxPoints derives a per-segment stride so the segment
// shrinks toward the given upper bound. Setting both, or neither, is invalid.
type DecimatePolicy struct {
	Factor    int
	MaxPoints int
}

// Validate checks the policy against the valid ranges (factor >= 2,
// max points >= 2, exactly one strategy chosen).
func (p DecimatePolicy) Validate() error {
	switch {
	case p.Factor != 0 && p.MaxPoints != 0:
		return fmt.Errorf("%w: factor and max-points are mutually exclusive", ErrInvalidPolicy)
	case p.Factor == 0 && p.MaxPoints == 0:
		return fmt.Errorf("%w: either factor or max-points is required", ErrInvalidPolicy)
	case p.Factor != 0 && p.Factor < 2:
		return fmt.Errorf("%w: factor must be at least 2, got %d", ErrInvalidPolicy, p.Factor)
	case p.MaxPoints != 0 && p.MaxPoints < 2:
		return fmt.Errorf("%w: max-points must be at least 2, got %d", ErrInvalidPolicy, p.MaxPoints)
	}
	return nil
}

// stride returns the keep-every-N stride for a segment of length n.
func (p DecimatePolicy) stride(n int) int {
	if p.Factor != 0 {
		return p.Factor
	}
	// Stride over the n-1 gaps so that, with the final point force-kept,
	// the decimated length never exceeds the bound.
	s := (n - 2 + p.MaxPoints - 1) / (p.MaxPoints - 1)
	if s < 1 {
		s = 1
	}
	return s
}

// Decimate reduces the point count of every segment of every track under the
// given policy. The track/segment structure of the document is preserved;
// only per-segment point counts shrink. The last point of a segment is always
// kept regardless of stride alignment, so the decimated path starts and ends
// exactly where the original did. Segments with two points or fewer pass
// through unchanged.
//
// Platforms like Komoot reject imports with too many points; a uniform stride
// is the simplest policy with a predictable output size and exact endpoints.
// It can skip a sharp turn between kept points, which is the accepted
// trade-off.
func Decimate(doc *model.Document, policy DecimatePolicy) (*model.Document, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	out := &model.Document{
		Name:    doc.Name,
		Creator: doc.Creator,
		Time:    doc.Time,
		Tracks:  make([]model.Track, 0, len(doc.Tracks)),
	}

	for _, trk := range doc.Tracks {
		segments := make([]model.Segment, 0, len(trk.Segments))
		for _, seg := range trk.Segments {
			segments = append(segments, model.Segment{
				Points: decimatePoints(seg.Points, policy),
			})
		}
		out.Tracks = append(out.Tracks, model.Track{Name: trk.Name, Segments: segments})
	}

	return out, nil
}

func decimatePoints(points []model.Point, policy DecimatePolicy) []model.Point {
	n := len(points)
	if n <= 2 {
		// Decimating further could only drop an endpoint.
		return append([]model.Point(nil), points...)
	}

	stride := policy.stride(n)
	kept := make([]model.Point, 0, n/stride+2)
	for i := 0; i < n; i += stride {
		kept = append(kept, points[i])
	}
	// Force-keep the final point so the route is never silently shortened.
	if (n-1)%stride != 0 {
		kept = append(kept, points[n-1])
	}
	return kept
}
