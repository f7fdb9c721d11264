package areaunit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	// total 10 rai = 4000 wah
	s := Summarize("10-0-0", map[string]string{"a": "5-0-0", "b": "3-0-0"})
	assert.Equal(t, 4000.0, s.TotalWah)
	assert.Equal(t, 3200.0, s.UsedWah)
	assert.Equal(t, 800.0, s.RemainingWah)
	assert.False(t, s.OverLimit)
}

func TestSummarizeOverLimit(t *testing.T) {
	s := Summarize("10-0-0", map[string]string{"a": "8-0-0", "b": "3-0-0"})
	assert.Equal(t, 4400.0, s.UsedWah)
	assert.True(t, s.OverLimit)
	// excess reported back in rai-ngan-wah
	assert.Equal(t, "1-0-0", ScalarToText(s.UsedWah-s.TotalWah))
}

func TestSummarizeNoTotal(t *testing.T) {
	// unknown deed total: usage accumulates but never flags over-limit
	s := Summarize("", map[string]string{"a": "8-0-0"})
	assert.Equal(t, 0.0, s.TotalWah)
	assert.Equal(t, 3200.0, s.UsedWah)
	assert.False(t, s.OverLimit)
}

func TestSummarizeDeselectedRemoved(t *testing.T) {
	areas := map[string]string{"a": "5-0-0", "b": "3-0-0"}
	delete(areas, "b") // deselect removes the entry, not zeroes it
	s := Summarize("10-0-0", areas)
	assert.Equal(t, 2000.0, s.UsedWah)
}

func TestAutoFillRemainder(t *testing.T) {
	areas := map[string]string{"a": "5-0-0", "b": "3-0-0", "c": "1-0-0"}
	// others (a, b) use 3200 of 4000; c gets the remaining 800 wah
	got, ok := AutoFillRemainder("10-0-0", areas, "c")
	assert.True(t, ok)
	assert.Equal(t, "2-0-0", got)
	assert.Equal(t, 800.0, ParseToScalar(got))
}

func TestAutoFillRemainderUnavailable(t *testing.T) {
	// no total recorded
	_, ok := AutoFillRemainder("", map[string]string{"a": "1-0-0"}, "b")
	assert.False(t, ok)

	// others already consume everything
	_, ok = AutoFillRemainder("10-0-0", map[string]string{"a": "10-0-0"}, "b")
	assert.False(t, ok)
}
