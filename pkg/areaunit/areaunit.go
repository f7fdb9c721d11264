// Package areaunit converts between the Thai land-area text form
// "rai-ngan-wah" and a scalar number of square wah.
// 1 rai = 4 ngan = 400 wah, 1 ngan = 100 wah.
//
// Every function here totalizes bad input to a safe default (0, "", empty
// parts) instead of returning an error: the editor feeds partial keystrokes
// like "12-" straight through these helpers.
package areaunit

import (
	"math"
	"strconv"
	"strings"
)

// ParseToScalar reads "A-B-C" and returns A*400 + B*100 + C in wah.
// Missing or unparseable components count as 0; segments past the third
// are ignored. Never fails.
func ParseToScalar(text string) float64 {
	if text == "" {
		return 0
	}
	segs := strings.Split(text, "-")
	mult := [3]float64{400, 100, 1}
	total := 0.0
	for i := 0; i < 3 && i < len(segs); i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(segs[i]), 64)
		if err != nil {
			continue
		}
		total += v * mult[i]
	}
	return total
}

// ScalarToText renders a wah total back to canonical "rai-ngan-wah".
// Values <= 0 map to "0-0-0". The wah component is rounded to 2 decimals
// so floating-point residue never leaks into stored text.
func ScalarToText(totalWah float64) string {
	if totalWah <= 0 {
		return "0-0-0"
	}
	rai := math.Floor(totalWah / 400)
	rem := totalWah - rai*400
	ngan := math.Floor(rem / 100)
	wah := math.Round((rem-ngan*100)*100) / 100
	return formatNum(rai) + "-" + formatNum(ngan) + "-" + formatNum(wah)
}

// Parts holds the three editable field values. Empty string means the
// segment was absent, so the UI renders a placeholder instead of "0".
type Parts struct {
	Rai  string `json:"rai"`
	Ngan string `json:"ngan"`
	Wah  string `json:"wah"`
}

// SplitToParts breaks canonical text into per-field strings, keeping the
// user's typed segments verbatim (an explicit "0" stays "0").
func SplitToParts(text string) Parts {
	var p Parts
	if text == "" {
		return p
	}
	segs := strings.Split(text, "-")
	get := func(i int) string {
		if i < len(segs) {
			return segs[i]
		}
		return ""
	}
	p.Rai, p.Ngan, p.Wah = get(0), get(1), get(2)
	return p
}

// JoinParts is the inverse of SplitToParts while the user is still typing:
// straight concatenation, empty segments stay empty ("12", "0", "" -> "12-0-").
// Derived values go through ScalarToText instead.
func JoinParts(rai, ngan, wah string) string {
	return rai + "-" + ngan + "-" + wah
}

// NormalizeForStorage cleans a triple right before persisting it.
// Invalid or missing components resolve to 0; an all-zero triple becomes
// the empty string, meaning no allocation recorded.
func NormalizeForStorage(text string) string {
	segs := strings.Split(text, "-")
	var v [3]float64
	for i := 0; i < 3; i++ {
		if i >= len(segs) {
			continue
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(segs[i]), 64); err == nil {
			v[i] = f
		}
	}
	if v[0] == 0 && v[1] == 0 && v[2] == 0 {
		return ""
	}
	return formatNum(v[0]) + "-" + formatNum(v[1]) + "-" + formatNum(v[2])
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
