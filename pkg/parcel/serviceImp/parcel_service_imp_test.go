package serviceImp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ikople24/smart-saard/database"
	"github.com/ikople24/smart-saard/entities"
	"github.com/ikople24/smart-saard/pkg/parcel/repository"
	"github.com/ikople24/smart-saard/pkg/parcel/repositoryImp"
	"github.com/ikople24/smart-saard/pkg/parcel/service"
)

const uploadFixture = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {
        "parcel_code": "KK-0001",
        "owner_name": "สมชาย ใจดี",
        "deed_no": "12345",
        "province": "ขอนแก่น",
        "district": "เมืองขอนแก่น",
        "area_text": "10-0-0"
      },
      "geometry": {"type": "Polygon", "coordinates": [[
        [102.8000, 16.4000], [102.8009, 16.4000],
        [102.8009, 16.4009], [102.8000, 16.4009], [102.8000, 16.4000]
      ]]}
    },
    {
      "type": "Feature",
      "properties": {"owner_name": "ไม่มีรหัสแปลง"},
      "geometry": {"type": "Polygon", "coordinates": [[
        [102.81, 16.40], [102.82, 16.40], [102.82, 16.41], [102.81, 16.41], [102.81, 16.40]
      ]]}
    },
    {
      "type": "Feature",
      "properties": {"parcel_code": "KK-0002"},
      "geometry": {"type": "Point", "coordinates": [102.8, 16.4]}
    }
  ]
}`

func setup(t *testing.T) repository.ParcelRepository {
	t.Helper()
	return repositoryImp.New(database.OpenSQLite(":memory:"))
}

func TestImportGeoJSON(t *testing.T) {
	repo := setup(t)
	svc := New(repo)

	rpt, err := svc.ImportGeoJSON([]byte(uploadFixture), "U_TEST")
	require.NoError(t, err)
	assert.Equal(t, 1, rpt.Created)
	assert.Equal(t, 0, rpt.Updated)
	require.Len(t, rpt.Skipped, 2)
	assert.Equal(t, "missing parcel_code property", rpt.Skipped[0].Reason)
	assert.Equal(t, "KK-0002", rpt.Skipped[1].Code)

	p, err := repo.FindByCode("KK-0001")
	require.NoError(t, err)
	assert.Equal(t, "สมชาย ใจดี", p.OwnerName)
	assert.Equal(t, "10-0-0", p.AreaText)
	assert.Equal(t, "U_TEST", p.UpdatedBy)
	assert.Greater(t, p.AreaSqM, 5000.0)
	assert.InDelta(t, 16.40045, p.CentroidLat, 0.001)
	assert.Less(t, p.MinLng, p.MaxLng)
}

func TestImportPreservesSurvey(t *testing.T) {
	repo := setup(t)
	svc := New(repo)

	_, err := svc.ImportGeoJSON([]byte(uploadFixture), "U_TEST")
	require.NoError(t, err)

	// record a survey, then re-import the same upload
	p, err := repo.FindByCode("KK-0001")
	require.NoError(t, err)
	p.SurveyJSON = `{"selected":["agriculture"],"areas":{"agriculture":"5-0-0"}}`
	require.NoError(t, repo.Update(p))

	rpt, err := svc.ImportGeoJSON([]byte(uploadFixture), "U_TEST2")
	require.NoError(t, err)
	assert.Equal(t, 1, rpt.Updated)
	assert.Equal(t, 0, rpt.Created)

	p, err = repo.FindByCode("KK-0001")
	require.NoError(t, err)
	assert.Equal(t, entities.Allocation{
		Selected: []string{"agriculture"},
		Areas:    map[string]string{"agriculture": "5-0-0"},
	}, entities.DecodeAllocation(p.SurveyJSON))
	assert.Equal(t, "U_TEST2", p.UpdatedBy)
}

func TestImportRejectsGarbage(t *testing.T) {
	svc := New(setup(t))
	_, err := svc.ImportGeoJSON([]byte(`not geojson`), "U_TEST")
	assert.Error(t, err)
}

func TestReplaceGeometry(t *testing.T) {
	repo := setup(t)
	svc := New(repo)
	_, err := svc.ImportGeoJSON([]byte(uploadFixture), "U_TEST")
	require.NoError(t, err)
	p, err := repo.FindByCode("KK-0001")
	require.NoError(t, err)
	before := p.AreaSqM

	bigger := []byte(`{"type": "Polygon", "coordinates": [[
		[102.8000, 16.4000], [102.8020, 16.4000],
		[102.8020, 16.4020], [102.8000, 16.4020], [102.8000, 16.4000]
	]]}`)
	updated, err := svc.ReplaceGeometry(p.ParcelID, "U_EDIT", bigger)
	require.NoError(t, err)
	assert.Greater(t, updated.AreaSqM, before)
	assert.Equal(t, "U_EDIT", updated.UpdatedBy)

	// open ring must be rejected
	open := []byte(`{"type": "Polygon", "coordinates": [[
		[102.80, 16.40], [102.81, 16.40], [102.81, 16.41], [102.80, 16.41]
	]]}`)
	_, err = svc.ReplaceGeometry(p.ParcelID, "U_EDIT", open)
	assert.Error(t, err)
}

func TestUpdateAttributes(t *testing.T) {
	repo := setup(t)
	svc := New(repo)
	_, err := svc.ImportGeoJSON([]byte(uploadFixture), "U_TEST")
	require.NoError(t, err)
	p, err := repo.FindByCode("KK-0001")
	require.NoError(t, err)

	owner := "สมหญิง ใจดี"
	zeroDeed := "0-0-0"
	got, err := svc.UpdateAttributes(p.ParcelID, "U_EDIT", service.AttrPatch{OwnerName: &owner, AreaText: &zeroDeed})
	require.NoError(t, err)
	assert.Equal(t, owner, got.OwnerName)
	// all-zero deed area normalizes to "no area recorded"
	assert.Equal(t, "", got.AreaText)
}
