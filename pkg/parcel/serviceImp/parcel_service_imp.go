package serviceImp

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb/geojson"

	"github.com/ikople24/smart-saard/entities"
	"github.com/ikople24/smart-saard/pkg/areaunit"
	"github.com/ikople24/smart-saard/pkg/gis"
	"github.com/ikople24/smart-saard/pkg/parcel/repository"
	"github.com/ikople24/smart-saard/pkg/parcel/service"
	"gorm.io/gorm"
)

type parcelSvc struct{ repo repository.ParcelRepository }

func New(repo repository.ParcelRepository) service.ParcelService {
	return &parcelSvc{repo: repo}
}

// ImportGeoJSON upserts parcels from an uploaded FeatureCollection, keyed by
// the parcel_code property. Existing parcels keep their survey allocation:
// re-uploading a shapefile export must never wipe completed survey work.
func (s *parcelSvc) ImportGeoJSON(raw []byte, uid string) (*service.ImportReport, error) {
	fc, err := gis.ParseFeatureCollection(raw)
	if err != nil {
		return nil, err
	}
	rpt := &service.ImportReport{}
	for i, feat := range fc.Features {
		code := gis.StringProp(feat, "parcel_code")
		if code == "" {
			code = gis.StringProp(feat, "code")
		}
		if code == "" {
			rpt.Skipped = append(rpt.Skipped, service.ImportSkip{Index: i, Reason: "missing parcel_code property"})
			continue
		}
		if err := gis.Validate(feat.Geometry); err != nil {
			rpt.Skipped = append(rpt.Skipped, service.ImportSkip{Index: i, Code: code, Reason: err.Error()})
			continue
		}
		geomText, err := gis.EncodeGeometry(feat.Geometry)
		if err != nil {
			rpt.Skipped = append(rpt.Skipped, service.ImportSkip{Index: i, Code: code, Reason: "encode geometry: " + err.Error()})
			continue
		}

		existing, err := s.repo.FindByCode(code)
		switch {
		case err == nil:
			applyFeature(existing, feat, geomText, uid)
			if err := s.repo.Update(existing); err != nil {
				return nil, fmt.Errorf("update %s: %w", code, err)
			}
			rpt.Updated++
		case errors.Is(err, gorm.ErrRecordNotFound):
			p := &entities.Parcel{ParcelCode: code}
			applyFeature(p, feat, geomText, uid)
			if err := s.repo.Create(p); err != nil {
				return nil, fmt.Errorf("create %s: %w", code, err)
			}
			rpt.Created++
		default:
			return nil, err
		}
	}
	return rpt, nil
}

// applyFeature copies upload attributes and recomputed geometry metrics onto
// the parcel. SurveyJSON is deliberately untouched.
func applyFeature(p *entities.Parcel, feat *geojson.Feature, geomText, uid string) {
	if v := gis.StringProp(feat, "owner_name"); v != "" {
		p.OwnerName = v
	}
	if v := gis.StringProp(feat, "deed_no"); v != "" {
		p.DeedNo = v
	}
	if v := gis.StringProp(feat, "province"); v != "" {
		p.Province = v
	}
	if v := gis.StringProp(feat, "district"); v != "" {
		p.District = v
	}
	if v := gis.StringProp(feat, "subdistrict"); v != "" {
		p.Subdistrict = v
	}
	if v := gis.StringProp(feat, "area_text"); v != "" {
		p.AreaText = areaunit.NormalizeForStorage(v)
	}
	p.GeomJSON = geomText
	setMetrics(p, gis.Measure(feat.Geometry))
	p.UpdatedBy = uid
}

func setMetrics(p *entities.Parcel, m gis.Metrics) {
	p.AreaSqM = m.AreaSqM
	p.CentroidLat = m.CentroidLat
	p.CentroidLng = m.CentroidLng
	p.MinLat = m.Bound.Min.Lat()
	p.MinLng = m.Bound.Min.Lon()
	p.MaxLat = m.Bound.Max.Lat()
	p.MaxLng = m.Bound.Max.Lon()
}

func (s *parcelSvc) GetByCode(code string) (*entities.Parcel, error) {
	return s.repo.FindByCode(code)
}

func (s *parcelSvc) GetByID(id uint) (*entities.Parcel, error) {
	return s.repo.FindByID(id)
}

func (s *parcelSvc) List(f repository.ListFilter) ([]entities.Parcel, int64, error) {
	return s.repo.List(f)
}

func (s *parcelSvc) UpdateAttributes(id uint, uid string, patch service.AttrPatch) (*entities.Parcel, error) {
	cur, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if patch.OwnerName != nil {
		cur.OwnerName = *patch.OwnerName
	}
	if patch.DeedNo != nil {
		cur.DeedNo = *patch.DeedNo
	}
	if patch.Province != nil {
		cur.Province = *patch.Province
	}
	if patch.District != nil {
		cur.District = *patch.District
	}
	if patch.Subdistrict != nil {
		cur.Subdistrict = *patch.Subdistrict
	}
	if patch.AreaText != nil {
		// deed area always stored normalized (all-zero becomes empty)
		cur.AreaText = areaunit.NormalizeForStorage(*patch.AreaText)
	}
	cur.UpdatedBy = uid
	return cur, s.repo.Update(cur)
}

func (s *parcelSvc) ReplaceGeometry(id uint, uid string, rawGeom []byte) (*entities.Parcel, error) {
	cur, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	g, err := gis.ParseGeometry(rawGeom)
	if err != nil {
		return nil, err
	}
	if err := gis.Validate(g); err != nil {
		return nil, err
	}
	geomText, err := gis.EncodeGeometry(g)
	if err != nil {
		return nil, err
	}
	cur.GeomJSON = geomText
	setMetrics(cur, gis.Measure(g))
	cur.UpdatedBy = uid
	return cur, s.repo.Update(cur)
}

func (s *parcelSvc) Delete(id uint) error { return s.repo.Delete(id) }
