package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaler(t *testing.T) {
	cases := []struct {
		name   string
		factor float64
		in     float64
		want   float64
	}{
		{"unscaled", LogicalUnit, 30, 30},
		{"1080p", 120, 30, 60},
		{"floors", 100, 30, 50},
		{"720p_floor", 80, 25, 33},
		{"bad_factor_falls_back", 0, 30, 30},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, NewScaler(c.factor)(c.in))
		})
	}
}

func TestScaleFactorFor(t *testing.T) {
	assert.Equal(t, 120.0, ScaleFactorFor(1920, 1080))
	// the narrower axis wins
	assert.Equal(t, 80.0, ScaleFactorFor(1280, 1080))
	assert.Equal(t, 60.0, ScaleFactorFor(1920, 540))
}

func TestClampAndApproach(t *testing.T) {
	assert.Equal(t, 0, ClampInt(-3, 0, 10))
	assert.Equal(t, 10, ClampInt(12, 0, 10))
	assert.Equal(t, 4, ClampInt(4, 0, 10))

	assert.Equal(t, 4.0, Approach(5, 1))
	assert.Equal(t, 0.0, Approach(0.5, 1))
	assert.Equal(t, -4.0, Approach(-5, 1))
	assert.Equal(t, 0.0, Approach(-0.5, 1))

	assert.Equal(t, -1.0, Sign(-3))
	assert.Equal(t, 0.0, Sign(0))
}
