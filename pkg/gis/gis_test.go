package gis

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roughly a 100m x 100m square near Khon Kaen
func squarePolygon() orb.Polygon {
	return orb.Polygon{orb.Ring{
		{102.8000, 16.4000},
		{102.8009, 16.4000},
		{102.8009, 16.4009},
		{102.8000, 16.4009},
		{102.8000, 16.4000},
	}}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(squarePolygon()))

	open := orb.Polygon{orb.Ring{
		{102.80, 16.40}, {102.81, 16.40}, {102.81, 16.41}, {102.80, 16.41},
	}}
	assert.ErrorIs(t, Validate(open), ErrOpenRing)

	short := orb.Polygon{orb.Ring{{102.80, 16.40}, {102.81, 16.40}, {102.80, 16.40}}}
	assert.ErrorIs(t, Validate(short), ErrShortRing)

	assert.ErrorIs(t, Validate(orb.Point{102.8, 16.4}), ErrNotAPolygon)

	degenerate := orb.Polygon{orb.Ring{
		{102.80, 16.40}, {102.80, 16.40}, {102.80, 16.40}, {102.80, 16.40},
	}}
	assert.ErrorIs(t, Validate(degenerate), ErrZeroArea)

	multi := orb.MultiPolygon{squarePolygon()}
	assert.NoError(t, Validate(multi))
}

func TestMeasure(t *testing.T) {
	m := Measure(squarePolygon())
	// ~96m x ~100m; accept loose bounds, the point is plausibility not precision
	assert.InDelta(t, 9800, m.AreaSqM, 1500)
	assert.InDelta(t, 16.40045, m.CentroidLat, 0.0005)
	assert.InDelta(t, 102.80045, m.CentroidLng, 0.0005)
	assert.Equal(t, 102.8000, m.Bound.Min.Lon())
	assert.Equal(t, 16.4009, m.Bound.Max.Lat())
}

func TestParseFeatureCollection(t *testing.T) {
	raw := []byte(`{
		"type": "FeatureCollection",
		"features": [{
			"type": "Feature",
			"properties": {"parcel_code": "KK-0001", "owner_name": "สมชาย"},
			"geometry": {"type": "Polygon", "coordinates": [[
				[102.80, 16.40], [102.81, 16.40], [102.81, 16.41], [102.80, 16.41], [102.80, 16.40]
			]]}
		}]
	}`)
	fc, err := ParseFeatureCollection(raw)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)
	feat := fc.Features[0]
	assert.Equal(t, "KK-0001", StringProp(feat, "parcel_code"))
	assert.Equal(t, "สมชาย", StringProp(feat, "owner_name"))
	assert.Equal(t, "", StringProp(feat, "missing"))
	assert.NoError(t, Validate(feat.Geometry))

	_, err = ParseFeatureCollection([]byte(`{"type":`))
	assert.Error(t, err)
}

func TestEncodeGeometryRoundTrip(t *testing.T) {
	s, err := EncodeGeometry(squarePolygon())
	require.NoError(t, err)
	g, err := ParseGeometry([]byte(s))
	require.NoError(t, err)
	assert.Equal(t, squarePolygon(), g)
}
