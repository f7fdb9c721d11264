// Package landuse defines the closed set of survey categories a parcel can
// be allocated to, following the land & building tax classification.
package landuse

// Category keys are stable storage identifiers; display names are Thai.
const (
	Agriculture = "agriculture" // เกษตรกรรม
	Residential = "residential" // ที่อยู่อาศัย
	Commercial  = "commercial"  // พาณิชยกรรมและอื่นๆ
	Vacant      = "vacant"      // ที่รกร้างว่างเปล่า
)

// All lists categories in display order.
var All = []string{Agriculture, Residential, Commercial, Vacant}

var labels = map[string]string{
	Agriculture: "เกษตรกรรม",
	Residential: "ที่อยู่อาศัย",
	Commercial:  "พาณิชยกรรมและอื่นๆ",
	Vacant:      "ที่รกร้างว่างเปล่า",
}

// Valid reports whether key belongs to the closed category set.
func Valid(key string) bool {
	_, ok := labels[key]
	return ok
}

// Label returns the Thai display name, or the key itself for unknown input
// (legacy rows may carry keys minted before the set was closed).
func Label(key string) string {
	if l, ok := labels[key]; ok {
		return l
	}
	return key
}
