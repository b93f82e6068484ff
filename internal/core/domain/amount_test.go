package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{name: "dollar with cents", input: "$1,250.00", want: 1250.00, ok: true},
		{name: "bare integer", input: "1250", want: 1250.0, ok: true},
		{name: "dollar with thousands", input: "$25,000", want: 25000.0, ok: true},
		{name: "embedded in prose", input: "approx $5,000 or so", want: 5000.0, ok: true},
		{name: "spaced dollar sign", input: "$ 18,000", want: 18000.0, ok: true},
		{name: "no digits", input: "to be determined", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.input)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 0.001)
			}
		})
	}
}
