// Package gis wraps the orb geometry checks and measurements the parcel
// handlers need when GeoJSON comes in from an upload.
package gis

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
)

var (
	ErrNotAPolygon = errors.New("geometry must be a Polygon or MultiPolygon")
	ErrOpenRing    = errors.New("ring is not closed")
	ErrShortRing   = errors.New("ring has fewer than 4 positions")
	ErrZeroArea    = errors.New("geometry has zero area")
)

// Metrics are the derived fields stored on a parcel; they are recomputed
// from the geometry on every write, never taken from upload properties.
type Metrics struct {
	AreaSqM     float64
	CentroidLat float64
	CentroidLng float64
	Bound       orb.Bound
}

// ParseFeatureCollection decodes a GeoJSON FeatureCollection payload.
func ParseFeatureCollection(raw []byte) (*geojson.FeatureCollection, error) {
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return nil, fmt.Errorf("decode geojson: %w", err)
	}
	return fc, nil
}

// ParseGeometry decodes a single GeoJSON geometry value.
func ParseGeometry(raw []byte) (orb.Geometry, error) {
	g, err := geojson.UnmarshalGeometry(raw)
	if err != nil {
		return nil, fmt.Errorf("decode geometry: %w", err)
	}
	return g.Geometry(), nil
}

// Validate rejects anything a parcel cannot store: non-areal geometry,
// open or degenerate rings, and zero-area shapes.
func Validate(g orb.Geometry) error {
	switch v := g.(type) {
	case orb.Polygon:
		if err := validateRings(v); err != nil {
			return err
		}
	case orb.MultiPolygon:
		for _, p := range v {
			if err := validateRings(p); err != nil {
				return err
			}
		}
	default:
		return ErrNotAPolygon
	}
	if math.Abs(planar.Area(g)) == 0 {
		return ErrZeroArea
	}
	return nil
}

func validateRings(p orb.Polygon) error {
	if len(p) == 0 {
		return ErrZeroArea
	}
	for _, ring := range p {
		if len(ring) < 4 {
			return ErrShortRing
		}
		if !ring.Closed() {
			return ErrOpenRing
		}
	}
	return nil
}

// Measure computes geodesic area (m²), centroid and bound for a geometry
// in lon/lat coordinates.
func Measure(g orb.Geometry) Metrics {
	centroid, _ := planar.CentroidArea(g)
	return Metrics{
		AreaSqM:     math.Abs(geo.Area(g)),
		CentroidLat: centroid.Lat(),
		CentroidLng: centroid.Lon(),
		Bound:       g.Bound(),
	}
}

// EncodeGeometry renders a geometry back to GeoJSON text for storage.
func EncodeGeometry(g orb.Geometry) (string, error) {
	b, err := json.Marshal(geojson.NewGeometry(g))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// StringProp reads a string property off a feature, tolerating absent keys
// and non-string values the way uploads tend to mix them.
func StringProp(feat *geojson.Feature, key string) string {
	if v, ok := feat.Properties[key]; ok {
		switch s := v.(type) {
		case string:
			return s
		case float64:
			// numeric parcel codes come through as floats
			if s == math.Trunc(s) {
				return fmt.Sprintf("%.0f", s)
			}
			return fmt.Sprintf("%v", s)
		}
	}
	return ""
}
