package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mmg/model"
)

func pt(lat, lon float64) model.Point {
	return model.Point{Lat: lat, Lon: lon}
}

func docWithPoints(points ...model.Point) *model.Document {
	return &model.Document{
		Tracks: []model.Track{{
			Segments: []model.Segment{{Points: points}},
		}},
	}
}

func TestMergeConcatenatesInOrder(t *testing.T) {
	a := docWithPoints(pt(0, 0), pt(0, 1))
	b := docWithPoints(pt(1, 1), pt(1, 2))

	merged, err := Merge([]*model.Document{a, b})
	require.NoError(t, err)

	require.Len(t, merged.Tracks, 1)
	require.Len(t, merged.Tracks[0].Segments, 1)
	assert.Equal(t,
		[]model.Point{pt(0, 0), pt(0, 1), pt(1, 1), pt(1, 2)},
		merged.Tracks[0].Segments[0].Points,
	)
	assert.Equal(t, MergedName, merged.Name)
	assert.Equal(t, MergedName, merged.Tracks[0].Name)
}

func TestMergeSingletonNormalizes(t *testing.T) {
	// A multi-track, multi-segment document collapses into one track with
	// one segment, points in document order.
	doc := &model.Document{
		Tracks: []model.Track{
			{Segments: []model.Segment{
				{Points: []model.Point{pt(0, 0), pt(0, 1)}},
				{Points: []model.Point{pt(0, 2)}},
			}},
			{Segments: []model.Segment{
				{Points: []model.Point{pt(1, 0)}},
			}},
		},
	}

	merged, err := Merge([]*model.Document{doc})
	require.NoError(t, err)

	require.Len(t, merged.Tracks, 1)
	require.Len(t, merged.Tracks[0].Segments, 1)
	assert.Equal(t, doc.FlattenPoints(), merged.Tracks[0].Segments[0].Points)
}

func TestMergeEmptyInput(t *testing.T) {
	_, err := Merge(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Merge([]*model.Document{})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestMergeAllDocumentsEmpty(t *testing.T) {
	empty := &model.Document{Tracks: []model.Track{{Segments: []model.Segment{{}}}}}
	_, err := Merge([]*model.Document{empty, {}})
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestMergeDoesNotDeduplicate(t *testing.T) {
	a := docWithPoints(pt(0, 0), pt(0, 1))
	b := docWithPoints(pt(0, 1), pt(0, 2))

	merged, err := Merge([]*model.Document{a, b})
	require.NoError(t, err)
	assert.Len(t, merged.Tracks[0].Segments[0].Points, 4)
}
