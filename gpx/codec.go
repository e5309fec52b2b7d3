package gpx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"time"

	"mmg/model"
)

// Creator is written into the creator attribute of every serialized file.
const Creator = "mmg v0.3.0"

// ErrParse wraps any XML-level failure while reading a GPX file.
var ErrParse = errors.New("cannot parse GPX")

// gpxFile mirrors the subset of the GPX 1.1 schema the tool cares about:
// document metadata plus tracks, segments and points. Waypoints and routes
// are passed over.
type gpxFile struct {
	XMLName  xml.Name     `xml:"gpx"`
	Xmlns    string       `xml:"xmlns,attr,omitempty"`
	Version  string       `xml:"version,attr,omitempty"`
	Creator  string       `xml:"creator,attr,omitempty"`
	Metadata *gpxMetadata `xml:"metadata"`
	Tracks   []gpxTrack   `xml:"trk"`
}

type gpxMetadata struct {
	Name string `xml:"name,omitempty"`
	Time string `xml:"time,omitempty"`
}

type gpxTrack struct {
	Name     string       `xml:"name,omitempty"`
	Segments []gpxSegment `xml:"trkseg"`
}

type gpxSegment struct {
	Points []gpxPoint `xml:"trkpt"`
}

type gpxPoint struct {
	Lat  float64  `xml:"lat,attr"`
	Lon  float64  `xml:"lon,attr"`
	Ele  *float64 `xml:"ele"`
	Time string   `xml:"time,omitempty"`
}

// Parse decodes GPX bytes into a Document. Coordinate ranges are taken
// as-is; only XML that does not decode is rejected. Point timestamps that
// fail to parse as RFC3339 are dropped rather than failing the file.
func Parse(data []byte) (*model.Document, error) {
	var file gpxFile
	if err := xml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	doc := &model.Document{
		Creator: file.Creator,
		Tracks:  make([]model.Track, 0, len(file.Tracks)),
	}
	if file.Metadata != nil {
		doc.Name = file.Metadata.Name
		if t, err := time.Parse(time.RFC3339, file.Metadata.Time); err == nil {
			doc.Time = model.TimePtr(t)
		}
	}

	for _, trk := range file.Tracks {
		track := model.Track{
			Name:     trk.Name,
			Segments: make([]model.Segment, 0, len(trk.Segments)),
		}
		for _, seg := range trk.Segments {
			points := make([]model.Point, 0, len(seg.Points))
			for _, pt := range seg.Points {
				p := model.Point{Lat: pt.Lat, Lon: pt.Lon, Elevation: pt.Ele}
				if pt.Time != "" {
					if t, err := time.Parse(time.RFC3339, pt.Time); err == nil {
						p.Time = model.TimePtr(t)
					}
				}
				points = append(points, p)
			}
			track.Segments = append(track.Segments, model.Segment{Points: points})
		}
		doc.Tracks = append(doc.Tracks, track)
	}

	return doc, nil
}

// Serialize encodes a Document as an indented GPX 1.1 file, stamping this
// tool as the creator.
func Serialize(doc *model.Document) ([]byte, error) {
	file := gpxFile{
		Xmlns:   "http://www.topografix.com/GPX/1/1",
		Version: "1.1",
		Creator: Creator,
		Tracks:  make([]gpxTrack, 0, len(doc.Tracks)),
	}
	if doc.Name != "" || doc.Time != nil {
		file.Metadata = &gpxMetadata{Name: doc.Name}
		if doc.Time != nil {
			file.Metadata.Time = doc.Time.UTC().Format(time.RFC3339)
		}
	}

	for _, trk := range doc.Tracks {
		track := gpxTrack{
			Name:     trk.Name,
			Segments: make([]gpxSegment, 0, len(trk.Segments)),
		}
		for _, seg := range trk.Segments {
			points := make([]gpxPoint, 0, len(seg.Points))
			for _, p := range seg.Points {
				pt := gpxPoint{Lat: p.Lat, Lon: p.Lon, Ele: p.Elevation}
				if p.Time != nil {
					pt.Time = p.Time.UTC().Format(time.RFC3339)
				}
				points = append(points, pt)
			}
			track.Segments = append(track.Segments, gpxSegment{Points: points})
		}
		file.Tracks = append(file.Tracks, track)
	}

	body, err := xml.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("cannot serialize GPX: %w", err)
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}
