package serviceImp

import (
	"fmt"

	"github.com/ikople24/smart-saard/entities"
	"github.com/ikople24/smart-saard/pkg/areaunit"
	"github.com/ikople24/smart-saard/pkg/landuse"
	"github.com/ikople24/smart-saard/pkg/parcel/repository"
	"github.com/ikople24/smart-saard/pkg/survey/service"
)

type surveySvc struct{ repo repository.ParcelRepository }

func New(repo repository.ParcelRepository) service.SurveyService {
	return &surveySvc{repo: repo}
}

func (s *surveySvc) Get(parcelID uint) (*service.SurveyView, error) {
	p, err := s.repo.FindByID(parcelID)
	if err != nil {
		return nil, err
	}
	return viewOf(p), nil
}

func viewOf(p *entities.Parcel) *service.SurveyView {
	alloc := entities.DecodeAllocation(p.SurveyJSON)
	return &service.SurveyView{
		ParcelID:   p.ParcelID,
		ParcelCode: p.ParcelCode,
		AreaText:   p.AreaText,
		Survey:     alloc,
		Summary:    areaunit.Summarize(p.AreaText, alloc.Areas),
	}
}

// sanitize validates category keys and normalizes every area for storage.
// Entries for deselected categories are dropped, not zeroed. The result is
// always canonical; an empty selection means "delete the allocation".
func sanitize(alloc entities.Allocation) (entities.Allocation, error) {
	seen := map[string]bool{}
	sel := make([]string, 0, len(alloc.Selected))
	for _, cat := range alloc.Selected {
		if !landuse.Valid(cat) {
			return entities.Allocation{}, fmt.Errorf("unknown category %q", cat)
		}
		if seen[cat] {
			continue
		}
		seen[cat] = true
		sel = append(sel, cat)
	}
	areas := map[string]string{}
	for cat, text := range alloc.Areas {
		if seen[cat] {
			areas[cat] = areaunit.NormalizeForStorage(text)
		}
	}
	if len(sel) == 0 {
		return entities.Allocation{}, nil
	}
	return entities.Allocation{Selected: sel, Areas: areas}, nil
}

func (s *surveySvc) Commit(parcelID uint, uid string, alloc entities.Allocation) (*service.SurveyView, error) {
	p, err := s.repo.FindByID(parcelID)
	if err != nil {
		return nil, err
	}
	clean, err := sanitize(alloc)
	if err != nil {
		return nil, err
	}
	encoded, err := clean.Encode()
	if err != nil {
		return nil, err
	}
	p.SurveyJSON = encoded
	p.UpdatedBy = uid
	if err := s.repo.Update(p); err != nil {
		return nil, err
	}
	return viewOf(p), nil
}

func (s *surveySvc) AutoFill(parcelID uint, areas map[string]string, target string) (string, bool, error) {
	if !landuse.Valid(target) {
		return "", false, fmt.Errorf("unknown category %q", target)
	}
	p, err := s.repo.FindByID(parcelID)
	if err != nil {
		return "", false, err
	}
	text, ok := areaunit.AutoFillRemainder(p.AreaText, areas, target)
	return text, ok, nil
}

// BulkAssign applies one allocation to many parcels. Consistent with the
// single-parcel commit, over-limit is recorded per parcel and never blocks.
func (s *surveySvc) BulkAssign(codes []string, uid string, alloc entities.Allocation) ([]service.BulkResult, error) {
	clean, err := sanitize(alloc)
	if err != nil {
		return nil, err
	}
	encoded, err := clean.Encode()
	if err != nil {
		return nil, err
	}

	results := make([]service.BulkResult, 0, len(codes))
	for _, code := range codes {
		p, err := s.repo.FindByCode(code)
		if err != nil {
			results = append(results, service.BulkResult{Code: code, Error: "not found"})
			continue
		}
		p.SurveyJSON = encoded
		p.UpdatedBy = uid
		if err := s.repo.Update(p); err != nil {
			results = append(results, service.BulkResult{Code: code, Error: err.Error()})
			continue
		}
		sum := areaunit.Summarize(p.AreaText, clean.Areas)
		results = append(results, service.BulkResult{Code: code, OK: true, OverLimit: sum.OverLimit})
	}
	return results, nil
}
