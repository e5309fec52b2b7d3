package gpx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mmg/model"
)

const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx xmlns="http://www.topografix.com/GPX/1/1" version="1.1" creator="test">
  <metadata>
    <name>Morning ride</name>
    <time>2024-05-01T08:00:00Z</time>
  </metadata>
  <trk>
    <name>Ride</name>
    <trkseg>
      <trkpt lat="45.5" lon="6.5">
        <ele>1200.5</ele>
        <time>2024-05-01T08:00:00Z</time>
      </trkpt>
      <trkpt lat="45.6" lon="6.6"/>
    </trkseg>
    <trkseg>
      <trkpt lat="45.7" lon="6.7"/>
    </trkseg>
  </trk>
  <trk>
    <trkseg/>
  </trk>
</gpx>`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sampleGPX))
	require.NoError(t, err)

	assert.Equal(t, "test", doc.Creator)
	assert.Equal(t, "Morning ride", doc.Name)
	require.NotNil(t, doc.Time)
	assert.Equal(t, time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC), doc.Time.UTC())

	require.Len(t, doc.Tracks, 2)
	trk := doc.Tracks[0]
	assert.Equal(t, "Ride", trk.Name)
	require.Len(t, trk.Segments, 2)
	require.Len(t, trk.Segments[0].Points, 2)

	first := trk.Segments[0].Points[0]
	assert.Equal(t, 45.5, first.Lat)
	assert.Equal(t, 6.5, first.Lon)
	require.NotNil(t, first.Elevation)
	assert.Equal(t, 1200.5, *first.Elevation)
	require.NotNil(t, first.Time)

	// Missing <ele> and <time> stay nil.
	second := trk.Segments[0].Points[1]
	assert.Nil(t, second.Elevation)
	assert.Nil(t, second.Time)
}

func TestParseMalformedXML(t *testing.T) {
	_, err := Parse([]byte("<gpx><trk>"))
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseBadTimestampIsDropped(t *testing.T) {
	data := `<gpx><trk><trkseg><trkpt lat="1" lon="2"><time>yesterday</time></trkpt></trkseg></trk></gpx>`
	doc, err := Parse([]byte(data))
	require.NoError(t, err)
	assert.Nil(t, doc.Tracks[0].Segments[0].Points[0].Time)
}

func TestSerializeRoundTrip(t *testing.T) {
	when := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	doc := &model.Document{
		Name: "merged",
		Tracks: []model.Track{{
			Name: "merged",
			Segments: []model.Segment{{
				Points: []model.Point{
					{Lat: 45.5, Lon: 6.5, Elevation: model.Float64Ptr(1200), Time: model.TimePtr(when)},
					{Lat: 45.6, Lon: 6.6},
				},
			}},
		}},
	}

	data, err := Serialize(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `creator="`+Creator+`"`)
	assert.Contains(t, string(data), `version="1.1"`)

	back, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, doc.Name, back.Name)
	require.Len(t, back.Tracks, 1)
	require.Len(t, back.Tracks[0].Segments, 1)
	assert.Equal(t, doc.Tracks[0].Segments[0].Points, back.Tracks[0].Segments[0].Points)
}
