package entities

import "encoding/json"

// Allocation is the canonical shape of a parcel's land-use survey value:
// an ordered category selection plus the area text recorded per category.
// Selected and Areas move together: deselecting a category removes its
// Areas entry entirely, it is never zeroed in place.
type Allocation struct {
	Selected []string          `json:"selected"`
	Areas    map[string]string `json:"areas"`
}

// Empty reports whether nothing is selected; an empty allocation is stored
// as the empty string (the allocation is deleted, not written as {}).
func (a Allocation) Empty() bool { return len(a.Selected) == 0 }

// Encode serializes for storage. Empty allocations encode to "".
func (a Allocation) Encode() (string, error) {
	if a.Empty() {
		return "", nil
	}
	if a.Areas == nil {
		a.Areas = map[string]string{}
	}
	b, err := json.Marshal(a)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// legacyAllocation is the loosest historical stored shape:
// {"types": [...], "areas": {...}} written by the old editor.
type legacyAllocation struct {
	Types []string          `json:"types"`
	Areas map[string]string `json:"areas"`
}

// DecodeAllocation lifts any stored survey value into the canonical
// Allocation. Historical rows may hold a bare category string, a bare list
// of categories, or a {types, areas} object; everything unreadable decodes
// to the empty allocation. This is the only place legacy shapes exist —
// callers past this boundary see canonical data only.
func DecodeAllocation(raw string) Allocation {
	if raw == "" {
		return Allocation{}
	}

	var canon Allocation
	if err := json.Unmarshal([]byte(raw), &canon); err == nil && len(canon.Selected) > 0 {
		return normalizeDecoded(canon)
	}

	var legacy legacyAllocation
	if err := json.Unmarshal([]byte(raw), &legacy); err == nil && len(legacy.Types) > 0 {
		return normalizeDecoded(Allocation{Selected: legacy.Types, Areas: legacy.Areas})
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return normalizeDecoded(Allocation{Selected: list})
	}

	var single string
	if err := json.Unmarshal([]byte(raw), &single); err == nil && single != "" {
		return normalizeDecoded(Allocation{Selected: []string{single}})
	}

	return Allocation{}
}

// normalizeDecoded dedups the selection, drops blank keys and prunes area
// entries for categories that are no longer selected.
func normalizeDecoded(a Allocation) Allocation {
	seen := map[string]bool{}
	sel := make([]string, 0, len(a.Selected))
	for _, k := range a.Selected {
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		sel = append(sel, k)
	}
	areas := map[string]string{}
	for k, v := range a.Areas {
		if seen[k] {
			areas[k] = v
		}
	}
	if len(sel) == 0 {
		return Allocation{}
	}
	return Allocation{Selected: sel, Areas: areas}
}
