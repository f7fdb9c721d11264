package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeAllocationShapes(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want Allocation
	}{
		{
			name: "empty",
			raw:  "",
			want: Allocation{},
		},
		{
			name: "canonical",
			raw:  `{"selected":["agriculture","vacant"],"areas":{"agriculture":"5-0-0"}}`,
			want: Allocation{Selected: []string{"agriculture", "vacant"}, Areas: map[string]string{"agriculture": "5-0-0"}},
		},
		{
			name: "legacy types+areas object",
			raw:  `{"types":["residential"],"areas":{"residential":"1-2-0"}}`,
			want: Allocation{Selected: []string{"residential"}, Areas: map[string]string{"residential": "1-2-0"}},
		},
		{
			name: "legacy bare list",
			raw:  `["agriculture","residential"]`,
			want: Allocation{Selected: []string{"agriculture", "residential"}, Areas: map[string]string{}},
		},
		{
			name: "legacy bare string",
			raw:  `"agriculture"`,
			want: Allocation{Selected: []string{"agriculture"}, Areas: map[string]string{}},
		},
		{
			name: "garbage decodes to empty",
			raw:  `{{{`,
			want: Allocation{},
		},
		{
			name: "area entries for deselected categories are pruned",
			raw:  `{"selected":["agriculture"],"areas":{"agriculture":"1-0-0","vacant":"2-0-0"}}`,
			want: Allocation{Selected: []string{"agriculture"}, Areas: map[string]string{"agriculture": "1-0-0"}},
		},
		{
			name: "duplicate selections collapse",
			raw:  `["vacant","vacant",""]`,
			want: Allocation{Selected: []string{"vacant"}, Areas: map[string]string{}},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, DecodeAllocation(c.raw))
		})
	}
}

func TestAllocationEncode(t *testing.T) {
	// empty allocation stores as empty string, the row's survey is deleted
	s, err := Allocation{}.Encode()
	assert.NoError(t, err)
	assert.Equal(t, "", s)

	s, err = Allocation{Selected: []string{"vacant"}, Areas: map[string]string{"vacant": "3-0-0"}}.Encode()
	assert.NoError(t, err)
	assert.Equal(t, Allocation{Selected: []string{"vacant"}, Areas: map[string]string{"vacant": "3-0-0"}}, DecodeAllocation(s))
}
