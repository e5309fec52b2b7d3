package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mmg/model"
)

func TestDecimateFactorTwo(t *testing.T) {
	doc := docWithPoints(pt(0, 0), pt(0, 1), pt(0, 2), pt(0, 3), pt(0, 4))

	out, err := Decimate(doc, DecimatePolicy{Factor: 2})
	require.NoError(t, err)

	assert.Equal(t,
		[]model.Point{pt(0, 0), pt(0, 2), pt(0, 4)},
		out.Tracks[0].Segments[0].Points,
	)
}

func TestDecimateForceKeepsLastPoint(t *testing.T) {
	// With 6 points and factor 4 the stride lands on 0 and 4; the final
	// point must still be kept so the route is not shortened.
	doc := docWithPoints(pt(0, 0), pt(0, 1), pt(0, 2), pt(0, 3), pt(0, 4), pt(0, 5))

	out, err := Decimate(doc, DecimatePolicy{Factor: 4})
	require.NoError(t, err)

	assert.Equal(t,
		[]model.Point{pt(0, 0), pt(0, 4), pt(0, 5)},
		out.Tracks[0].Segments[0].Points,
	)
}

func TestDecimateEndpointPreservation(t *testing.T) {
	points := make([]model.Point, 97)
	for i := range points {
		points[i] = pt(float64(i), float64(i))
	}
	doc := docWithPoints(points...)

	for factor := 2; factor <= 10; factor++ {
		out, err := Decimate(doc, DecimatePolicy{Factor: factor})
		require.NoError(t, err)

		kept := out.Tracks[0].Segments[0].Points
		assert.Equal(t, points[0], kept[0], "factor %d", factor)
		assert.Equal(t, points[len(points)-1], kept[len(kept)-1], "factor %d", factor)
		assert.LessOrEqual(t, len(kept), len(points))
	}
}

func TestDecimateShortSegmentsPassThrough(t *testing.T) {
	for _, points := range [][]model.Point{
		nil,
		{pt(0, 0)},
		{pt(0, 0), pt(0, 1)},
	} {
		doc := docWithPoints(points...)
		out, err := Decimate(doc, DecimatePolicy{Factor: 10})
		require.NoError(t, err)
		assert.Equal(t, points, out.Tracks[0].Segments[0].Points)
	}
}

func TestDecimateMaxPoints(t *testing.T) {
	points := make([]model.Point, 100)
	for i := range points {
		points[i] = pt(float64(i), 0)
	}
	doc := docWithPoints(points...)

	for _, max := range []int{2, 3, 10, 50, 99, 200} {
		out, err := Decimate(doc, DecimatePolicy{MaxPoints: max})
		require.NoError(t, err)

		kept := out.Tracks[0].Segments[0].Points
		assert.LessOrEqual(t, len(kept), max, "max %d", max)
		assert.Equal(t, points[0], kept[0])
		assert.Equal(t, points[len(points)-1], kept[len(kept)-1])
	}
}

func TestDecimatePreservesStructure(t *testing.T) {
	doc := &model.Document{
		Name: "ride",
		Tracks: []model.Track{
			{Name: "a", Segments: []model.Segment{
				{Points: []model.Point{pt(0, 0), pt(0, 1), pt(0, 2), pt(0, 3)}},
				{Points: []model.Point{pt(1, 0), pt(1, 1)}},
			}},
			{Name: "b", Segments: []model.Segment{{}}},
		},
	}

	out, err := Decimate(doc, DecimatePolicy{Factor: 2})
	require.NoError(t, err)

	require.Len(t, out.Tracks, 2)
	assert.Equal(t, "ride", out.Name)
	assert.Equal(t, "a", out.Tracks[0].Name)
	assert.Len(t, out.Tracks[0].Segments, 2)
	assert.Len(t, out.Tracks[1].Segments, 1)
}

func TestDecimateInvalidPolicy(t *testing.T) {
	doc := docWithPoints(pt(0, 0), pt(0, 1), pt(0, 2))

	for _, policy := range []DecimatePolicy{
		{},
		{Factor: 1},
		{Factor: -2},
		{MaxPoints: 1},
		{MaxPoints: -5},
		{Factor: 2, MaxPoints: 10},
	} {
		_, err := Decimate(doc, policy)
		assert.ErrorIs(t, err, ErrInvalidPolicy, "policy %+v", policy)
	}
}
