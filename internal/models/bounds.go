package models

import (
	"fmt"
	"strconv"
	"strings"
)

// BBox is a flat bounding box in WGS84: [min_lon, min_lat, max_lon, max_lat].
type BBox struct {
	MinLon float64 `json:"minLon"`
	MinLat float64 `json:"minLat"`
	MaxLon float64 `json:"maxLon"`
	MaxLat float64 `json:"maxLat"`
}

func (b BBox) Flat() [4]float64 {
	return [4]float64{b.MinLon, b.MinLat, b.MaxLon, b.MaxLat}
}

// PolygonWKT renders the bounding box as a closed WKT polygon ring.
func (b BBox) PolygonWKT() string {
	return fmt.Sprintf("POLYGON((%g %g, %g %g, %g %g, %g %g, %g %g))",
		b.MinLon, b.MinLat,
		b.MaxLon, b.MinLat,
		b.MaxLon, b.MaxLat,
		b.MinLon, b.MaxLat,
		b.MinLon, b.MinLat)
}

// ParseWKTBounds parses a WKT POLYGON and returns the bounding box of its
// outer ring. A malformed polygon here is a configuration defect, so errors
// are descriptive rather than coded.
func ParseWKTBounds(wkt string) (BBox, error) {
	s := strings.TrimSpace(wkt)
	upper := strings.ToUpper(s)
	if !strings.HasPrefix(upper, "POLYGON") {
		return BBox{}, fmt.Errorf("expected POLYGON geometry, got %q", firstToken(s))
	}

	open := strings.Index(s, "((")
	end := strings.Index(s, ")")
	if open < 0 || end <= open+2 {
		return BBox{}, fmt.Errorf("malformed polygon ring in %q", s)
	}

	// Only the outer ring matters for bounds.
	ring := s[open+2 : end]
	points := strings.Split(ring, ",")
	if len(points) < 4 {
		return BBox{}, fmt.Errorf("polygon ring has %d points, need at least 4", len(points))
	}

	box := BBox{}
	for i, point := range points {
		coords := strings.Fields(strings.TrimSpace(point))
		if len(coords) < 2 {
			return BBox{}, fmt.Errorf("point %d: expected \"lon lat\", got %q", i, point)
		}
		lon, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			return BBox{}, fmt.Errorf("point %d: invalid longitude %q", i, coords[0])
		}
		lat, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			return BBox{}, fmt.Errorf("point %d: invalid latitude %q", i, coords[1])
		}
		if i == 0 {
			box = BBox{MinLon: lon, MinLat: lat, MaxLon: lon, MaxLat: lat}
			continue
		}
		box.MinLon = min(box.MinLon, lon)
		box.MinLat = min(box.MinLat, lat)
		box.MaxLon = max(box.MaxLon, lon)
		box.MaxLat = max(box.MaxLat, lat)
	}

	if box.MinLon >= box.MaxLon || box.MinLat >= box.MaxLat {
		return BBox{}, fmt.Errorf("degenerate bounds %v", box.Flat())
	}
	return box, nil
}

func firstToken(s string) string {
	if fields := strings.Fields(s); len(fields) > 0 {
		return fields[0]
	}
	return s
}
