package kml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mmg/model"
)

func TestExport(t *testing.T) {
	doc := &model.Document{
		Tracks: []model.Track{
			{
				Name: "Morning ride",
				Segments: []model.Segment{{
					Points: []model.Point{
						{Lat: 45.5, Lon: 6.5, Elevation: model.Float64Ptr(1200)},
						{Lat: 45.6, Lon: 6.6},
					},
				}},
			},
			{
				// Unnamed tracks get a positional fallback name.
				Segments: []model.Segment{{
					Points: []model.Point{{Lat: 1, Lon: 2}},
				}},
			},
		},
	}

	data, err := Export(doc)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "<name>Morning ride</name>")
	assert.Contains(t, out, "<name>Track 2</name>")
	assert.Contains(t, out, "<LineString>")
	// KML coordinates are lon,lat,alt.
	assert.Contains(t, out, "6.5,45.5,1200")
	assert.Contains(t, out, "6.6,45.6,0")
}

func TestExportEmptyDocument(t *testing.T) {
	data, err := Export(&model.Document{})
	require.NoError(t, err)
	assert.Contains(t, string(data), "<Document>")
}
