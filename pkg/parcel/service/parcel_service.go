package service

import (
	"github.com/ikople24/smart-saard/entities"
	"github.com/ikople24/smart-saard/pkg/parcel/repository"
)

// ImportSkip names one rejected upload feature and why.
type ImportSkip struct {
	Index  int    `json:"index"`
	Code   string `json:"code,omitempty"`
	Reason string `json:"reason"`
}

type ImportReport struct {
	Created int          `json:"created"`
	Updated int          `json:"updated"`
	Skipped []ImportSkip `json:"skipped"`
}

// AttrPatch carries partial attribute edits; nil means leave unchanged.
type AttrPatch struct {
	OwnerName   *string `json:"owner_name"`
	DeedNo      *string `json:"deed_no"`
	Province    *string `json:"province"`
	District    *string `json:"district"`
	Subdistrict *string `json:"subdistrict"`
	AreaText    *string `json:"area_text"`
}

type ParcelService interface {
	ImportGeoJSON(raw []byte, uid string) (*ImportReport, error)
	GetByCode(code string) (*entities.Parcel, error)
	GetByID(id uint) (*entities.Parcel, error)
	List(f repository.ListFilter) ([]entities.Parcel, int64, error)
	UpdateAttributes(id uint, uid string, patch AttrPatch) (*entities.Parcel, error)
	ReplaceGeometry(id uint, uid string, rawGeom []byte) (*entities.Parcel, error)
	Delete(id uint) error
}
