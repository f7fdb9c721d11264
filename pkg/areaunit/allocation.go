package areaunit

// Summary is the derived view of one parcel's land-use allocation against
// its deed total. Recomputed on every change; nothing here is stored state.
type Summary struct {
	TotalWah     float64 `json:"total_wah"`
	UsedWah      float64 `json:"used_wah"`
	RemainingWah float64 `json:"remaining_wah"`
	OverLimit    bool    `json:"over_limit"`
}

// Summarize sums the per-category areas against the parent total.
// A deselected category must be removed from the map by the caller, not
// zeroed, so it no longer contributes to the used total.
// OverLimit is advisory: callers may warn, the store records it as-is.
func Summarize(totalText string, areas map[string]string) Summary {
	total := ParseToScalar(totalText)
	used := 0.0
	for _, a := range areas {
		used += ParseToScalar(a)
	}
	return Summary{
		TotalWah:     total,
		UsedWah:      used,
		RemainingWah: total - used,
		OverLimit:    total > 0 && used > total,
	}
}

// AutoFillRemainder computes the area text that tops the target category up
// to the parent total, given what every other category already uses.
// Returns false when the total is unknown (<= 0) or nothing remains.
func AutoFillRemainder(totalText string, areas map[string]string, target string) (string, bool) {
	total := ParseToScalar(totalText)
	if total <= 0 {
		return "", false
	}
	otherUsed := 0.0
	for cat, a := range areas {
		if cat == target {
			continue
		}
		otherUsed += ParseToScalar(a)
	}
	remaining := total - otherUsed
	if remaining <= 0 {
		return "", false
	}
	return ScalarToText(remaining), true
}
