package transform

import (
	"fmt"

	"mmg/model"
)

// MergedName is the name given to the single track produced by Merge.
// The output file naming convention in cmd/ reuses the same label.
const MergedName = "merged"

// Merge concatenates every point of every input document into a single
// document with exactly one track containing exactly one segment. The input
// order is the join order: points appear in document order, then track order,
// then segment order, then point order. Nothing is deduplicated, reordered or
// gap-closed; if one file ends far from where the next begins, the merged
// track keeps that discontinuity.
//
// A single-document call is still useful: it collapses a multi-track file
// into one track.
func Merge(docs []*model.Document) (*model.Document, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("merge: %w", ErrEmptyInput)
	}

	total := 0
	for _, doc := range docs {
		total += doc.PointCount()
	}
	if total == 0 {
		return nil, fmt.Errorf("merge: %w", ErrEmptyInput)
	}

	points := make([]model.Point, 0, total)
	for _, doc := range docs {
		points = append(points, doc.FlattenPoints()...)
	}

	return &model.Document{
		Name: MergedName,
		Tracks: []model.Track{{
			Name:     MergedName,
			Segments: []model.Segment{{Points: points}},
		}},
	}, nil
}
