package entities

import "time"

type Parcel struct {
	ParcelID    uint   `gorm:"primaryKey" json:"parcel_id"`
	ParcelCode  string `gorm:"uniqueIndex;size:50" json:"parcel_code"`
	DeedNo      string `json:"deed_no"`
	OwnerName   string `gorm:"index" json:"owner_name"`
	Province    string `json:"province"`
	District    string `json:"district"`
	Subdistrict string `json:"subdistrict"`

	// AreaText คือเนื้อที่ตามโฉนด "ไร่-งาน-วา" (canonical text, may be empty)
	AreaText string `json:"area_text"`

	// GeoJSON geometry as stored text; derived fields recomputed on every
	// geometry write, never trusted from the upload.
	GeomJSON    string  `gorm:"type:text" json:"geom_json"`
	AreaSqM     float64 `json:"area_sqm"`
	CentroidLat float64 `json:"centroid_lat"`
	CentroidLng float64 `json:"centroid_lng"`
	MinLat      float64 `json:"min_lat"`
	MinLng      float64 `json:"min_lng"`
	MaxLat      float64 `json:"max_lat"`
	MaxLng      float64 `json:"max_lng"`

	// SurveyJSON holds the land-use allocation as an opaque JSON value,
	// empty when no allocation is recorded. Decode via DecodeAllocation.
	SurveyJSON string `gorm:"type:text" json:"-"`

	UpdatedBy string `json:"updated_by"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
