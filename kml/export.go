package kml

import (
	"bytes"
	"fmt"

	kml "github.com/twpayne/go-kml/v2"

	"mmg/model"
)

// Export renders a Document as a KML file with one LineString placemark per
// track, handy for eyeballing a route in Google Earth before uploading it.
// Segment boundaries are not preserved; KML has no equivalent concept, so
// the segments of a track are drawn as one line.
func Export(doc *model.Document) ([]byte, error) {
	placemarks := make([]kml.Element, 0, len(doc.Tracks))
	for i, trk := range doc.Tracks {
		name := trk.Name
		if name == "" {
			name = fmt.Sprintf("Track %d", i+1)
		}

		var coords []kml.Coordinate
		for _, seg := range trk.Segments {
			for _, p := range seg.Points {
				c := kml.Coordinate{Lon: p.Lon, Lat: p.Lat}
				if p.Elevation != nil {
					c.Alt = *p.Elevation
				}
				coords = append(coords, c)
			}
		}

		placemarks = append(placemarks, kml.Placemark(
			kml.Name(name),
			kml.LineString(
				kml.Tessellate(true),
				kml.Coordinates(coords...),
			),
		))
	}

	root := kml.KML(kml.Document(placemarks...))

	var buf bytes.Buffer
	if err := root.WriteIndent(&buf, "", "  "); err != nil {
		return nil, fmt.Errorf("cannot serialize KML: %w", err)
	}
	return buf.Bytes(), nil
}
