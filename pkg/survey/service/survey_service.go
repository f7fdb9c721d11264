package service

import (
	"github.com/ikople24/smart-saard/entities"
	"github.com/ikople24/smart-saard/pkg/areaunit"
)

// SurveyView is what the assignment editor works against: the canonical
// allocation plus the derived usage summary for the parcel's deed total.
type SurveyView struct {
	ParcelID   uint                `json:"parcel_id"`
	ParcelCode string              `json:"parcel_code"`
	AreaText   string              `json:"area_text"`
	Survey     entities.Allocation `json:"survey"`
	Summary    areaunit.Summary    `json:"summary"`
}

// BulkResult reports one parcel of a bulk assignment.
type BulkResult struct {
	Code      string `json:"code"`
	OK        bool   `json:"ok"`
	OverLimit bool   `json:"over_limit,omitempty"`
	Error     string `json:"error,omitempty"`
}

type SurveyService interface {
	Get(parcelID uint) (*SurveyView, error)
	// Commit normalizes and stores the allocation; an empty selection
	// deletes the stored value. Over-limit never blocks the write.
	Commit(parcelID uint, uid string, alloc entities.Allocation) (*SurveyView, error)
	// AutoFill computes the remainder text for target given the editor's
	// current (uncommitted) areas; it persists nothing.
	AutoFill(parcelID uint, areas map[string]string, target string) (string, bool, error)
	BulkAssign(codes []string, uid string, alloc entities.Allocation) ([]BulkResult, error)
}
