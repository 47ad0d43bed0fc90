package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoversPrice(t *testing.T) {
	assert.Equal(t, 12500.0, MoversPrice(12.5))
	assert.Equal(t, 0.0, MoversPrice(0))
	assert.Equal(t, 1000.0, MoversPrice(1))
}

func TestParseDistance(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"12.5", 12.5},
		{" 7 ", 7},
		{"", 0},
		{"abc", 0},
		{"12km", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseDistance(tt.raw), "input %q", tt.raw)
	}
}
