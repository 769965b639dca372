package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundShare(t *testing.T) {
	tests := []struct {
		name      string
		unitShare float64
		weight    int
		expected  int64
	}{
		{"exact division", 500, 3, 1500},
		{"rounds down", 333.3333, 1, 333},
		{"rounds up", 383.3333, 3, 1150},
		{"half rounds away from zero", 500.5, 1, 501},
		{"zero weight", 500, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundShare(tt.unitShare, tt.weight))
		})
	}
}

func TestUnitShare(t *testing.T) {
	assert.Equal(t, 500.0, UnitShare(1500, 3))
	assert.InDelta(t, 333.3333, UnitShare(1000, 3), 0.001)
}

func TestAbsInt64(t *testing.T) {
	assert.Equal(t, int64(5), AbsInt64(-5))
	assert.Equal(t, int64(5), AbsInt64(5))
	assert.Equal(t, int64(0), AbsInt64(0))
}
