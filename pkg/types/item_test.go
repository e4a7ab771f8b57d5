package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "full advances to running_low",
			in:   StatusFull,
			want: StatusRunningLow,
		},
		{
			name: "running_low advances to less_than_two",
			in:   StatusRunningLow,
			want: StatusLessThanTwo,
		},
		{
			name: "less_than_two advances to out_of_stock",
			in:   StatusLessThanTwo,
			want: StatusOutOfStock,
		},
		{
			name: "out_of_stock wraps to full",
			in:   StatusOutOfStock,
			want: StatusFull,
		},
		{
			name: "unrecognized value advances to full",
			in:   "plenty",
			want: StatusFull,
		},
		{
			name: "empty value advances to full",
			in:   "",
			want: StatusFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextStatus(tt.in))
		})
	}
}

func TestNextStatusCycleClosure(t *testing.T) {
	for _, start := range Statuses {
		s := start
		for i := 0; i < 4; i++ {
			s = NextStatus(s)
		}
		assert.Equal(t, start, s, "four steps from %s should return to it", start)
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, ValidStatus(s), "%s should be recognized", s)
	}
	assert.False(t, ValidStatus("plenty"))
	assert.False(t, ValidStatus(""))
}
