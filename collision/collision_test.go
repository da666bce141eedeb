package collision

import (
	"testing"

	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
)

func TestRectOverlap(t *testing.T) {
	base := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"contained", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"touching right edge", Rect{X: 10, Y: 0, W: 10, H: 10}, false},
		{"touching bottom edge", Rect{X: 0, Y: 10, W: 10, H: 10}, false},
		{"touching corner", Rect{X: 10, Y: 10, W: 5, H: 5}, false},
		{"apart", Rect{X: 30, Y: 30, W: 5, H: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RectOverlap(base, tt.other))
			assert.Equal(t, tt.want, RectOverlap(tt.other, base), "overlap must be symmetric")
		})
	}
}

func TestPointInRect(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, PointInRect(5, 5, r))
	assert.False(t, PointInRect(0, 5, r))
	assert.False(t, PointInRect(10, 10, r))
}

func TestCircleOverlap(t *testing.T) {
	a := Circle{X: 0, Y: 0, R: 5}
	assert.True(t, CircleOverlap(a, Circle{X: 6, Y: 0, R: 2}))
	assert.False(t, CircleOverlap(a, Circle{X: 7, Y: 0, R: 2}), "tangent circles do not collide")
	assert.False(t, CircleOverlap(a, Circle{X: 20, Y: 20, R: 2}))
}

func TestRectCircleOverlap(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, RectCircleOverlap(r, Circle{X: 5, Y: 5, R: 1}))
	assert.True(t, RectCircleOverlap(r, Circle{X: 12, Y: 5, R: 3}))
	assert.False(t, RectCircleOverlap(r, Circle{X: 12, Y: 5, R: 2}), "circle touching an edge does not collide")
	assert.False(t, RectCircleOverlap(r, Circle{X: 14, Y: 14, R: 5}))
}

func TestOverlapAmount(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	o := OverlapAmount(a, Rect{X: 8, Y: 3, W: 10, H: 10})
	assert.Equal(t, 2.0, o.DX)
	assert.Equal(t, 7.0, o.DY)
	assert.True(t, o.ResolveOnX())

	o = OverlapAmount(a, Rect{X: 50, Y: 50, W: 1, H: 1})
	assert.Equal(t, Overlap{}, o, "disjoint rectangles report zero depth")
}

func TestSeparate(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	dx, dy := Separate(a, Rect{X: 8, Y: 0, W: 10, H: 10})
	assert.Equal(t, -2.0, dx)
	assert.Equal(t, 0.0, dy)

	dx, dy = Separate(a, Rect{X: 0, Y: -7, W: 10, H: 10})
	assert.Equal(t, 0.0, dx)
	assert.Equal(t, 3.0, dy)

	dx, dy = Separate(a, Rect{X: 10, Y: 0, W: 10, H: 10})
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestTouching(t *testing.T) {
	space := resolv.NewSpace(640, 480, 16, 16)
	hit := resolv.NewObject(100, 100, 20, 20, "enemy")
	edge := resolv.NewObject(140, 100, 20, 20, "enemy")
	other := resolv.NewObject(100, 100, 20, 20, "pickup")
	space.Add(hit, edge, other)

	found := Touching(space, Rect{X: 110, Y: 105, W: 30, H: 10}, "enemy")
	assert.Equal(t, []*resolv.Object{hit}, found)

	assert.Empty(t, Touching(space, Rect{X: 400, Y: 400, W: 5, H: 5}, "enemy"))
	assert.Empty(t, Touching(nil, Rect{W: 1, H: 1}, "enemy"))
}
