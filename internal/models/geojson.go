package models

// GeoJSON assembly for the region statistics read API. Geometries are the
// stored bounding polygons; properties carry the statistic aggregates.

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type Geometry struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}

// NewFeatureCollection converts stored records into a GeoJSON
// FeatureCollection. Records whose bounds fail to parse are skipped rather
// than failing the whole response.
func NewFeatureCollection(records []*RegionStatisticRecord) *FeatureCollection {
	fc := &FeatureCollection{Type: "FeatureCollection", Features: []Feature{}}
	for _, record := range records {
		box, err := ParseWKTBounds(record.BoundsWKT)
		if err != nil {
			continue
		}
		fc.Features = append(fc.Features, Feature{
			Type: "Feature",
			Geometry: Geometry{
				Type: "Polygon",
				Coordinates: [][][2]float64{{
					{box.MinLon, box.MinLat},
					{box.MaxLon, box.MinLat},
					{box.MaxLon, box.MaxLat},
					{box.MinLon, box.MaxLat},
					{box.MinLon, box.MinLat},
				}},
			},
			Properties: map[string]any{
				"regionName":  record.RegionName,
				"date":        record.Date,
				"indexType":   record.IndexType,
				"mean":        record.Mean,
				"min":         record.Min,
				"max":         record.Max,
				"stdDev":      record.StdDev,
				"sampleCount": record.SampleCount,
				"provider":    record.ProviderLabel,
			},
		})
	}
	return fc
}
