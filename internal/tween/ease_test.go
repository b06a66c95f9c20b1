package tween

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEases_Endpoints(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			ease, err := Lookup(name)
			require.NoError(t, err)
			assert.InDelta(t, 0, ease(0), 1e-9)
			assert.InDelta(t, 1, ease(1), 1e-9)
		})
	}
}

func TestEases_Midpoints(t *testing.T) {
	assert.InDelta(t, 0.5, Linear(0.5), 1e-9)
	assert.InDelta(t, 0.875, OutCubic(0.5), 1e-9)
	assert.InDelta(t, 0.5, InOutQuad(0.5), 1e-9)
	assert.InDelta(t, 0.5, InOutCubic(0.5), 1e-9)
	assert.Greater(t, OutQuad(0.5), InQuad(0.5))
}

func TestSpring_ApproachesTarget(t *testing.T) {
	ease := Spring(10, 0.5)

	assert.InDelta(t, 0, ease(-1), 1e-9)
	assert.InDelta(t, 1, ease(2), 1e-9)
	assert.Greater(t, ease(0.1), 0.0)
	assert.InDelta(t, 1, ease(0.95), 0.1)

	overshoot := false
	for i := 1; i < 100; i++ {
		if ease(float64(i)/100) > 1 {
			overshoot = true
			break
		}
	}
	assert.True(t, overshoot, "an underdamped spring overshoots")
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"exact", "out-cubic", false},
		{"upper case", "OUT-CUBIC", false},
		{"underscores", "in_out_quad", false},
		{"padded", "  linear ", false},
		{"spring", "spring", false},
		{"unknown", "bounce", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ease, err := Lookup(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "out-cubic")
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, ease)
		})
	}
}
