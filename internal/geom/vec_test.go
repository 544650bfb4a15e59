package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	n := V(3, 4).Normalize()
	assert.InDelta(t, 0.6, n.X, 1e-9)
	assert.InDelta(t, 0.8, n.Y, 1e-9)
	assert.Equal(t, Vec2{}, (Vec2{}).Normalize(), "zero vector stays zero")
}

func TestDistSq(t *testing.T) {
	assert.Equal(t, 25.0, V(1, 1).DistSq(V(4, 5)))
}

func TestRectContains(t *testing.T) {
	r := RectAround(V(100, 100), 20, 10)
	tests := []struct {
		p    Vec2
		want bool
	}{
		{V(100, 100), true},
		{V(90, 95), true},
		{V(110, 105), true},
		{V(111, 100), false},
		{V(100, 94), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Contains(tt.p), "Contains(%v)", tt.p)
	}
}
