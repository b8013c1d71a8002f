package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersectsAndTouches(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 50, Height: 100}
	cases := []struct {
		name       string
		other      Rect
		intersects bool
		touches    bool
	}{
		{"overlap", Rect{X: 40, Y: 10, Width: 20, Height: 20}, true, true},
		{"shared_right_edge", Rect{X: 50, Y: 0, Width: 50, Height: 100}, false, true},
		{"shared_bottom_edge", Rect{X: 0, Y: 100, Width: 50, Height: 100}, false, true},
		{"apart", Rect{X: 51, Y: 0, Width: 10, Height: 10}, false, false},
		{"empty", Rect{X: 10, Y: 10}, false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.intersects, base.Intersects(c.other))
			assert.Equal(t, c.intersects, c.other.Intersects(base))
			assert.Equal(t, c.touches, base.Touches(c.other))
		})
	}
}

func TestRectAccessors(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 50, Height: 100}
	assert.Equal(t, 60.0, r.Right())
	assert.Equal(t, 120.0, r.Bottom())
	assert.Equal(t, 35.0, r.CenterX())
	assert.Equal(t, 70.0, r.CenterY())
	assert.False(t, r.Empty())
}
