package collision

import "github.com/solarlune/resolv"

// BoundsOf returns the rectangle occupied by a resolv object.
func BoundsOf(obj *resolv.Object) Rect {
	return Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

// Touching returns every object in space carrying one of tags whose bounds
// strictly overlap area. The spatial hash narrows the candidates; RectOverlap
// makes the final call so edge contact is ignored.
func Touching(space *resolv.Space, area Rect, tags ...string) []*resolv.Object {
	if space == nil || area.W <= 0 || area.H <= 0 {
		return nil
	}

	probe := resolv.NewObject(area.X, area.Y, area.W, area.H)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags...)
	if check == nil {
		return nil
	}

	var hits []*resolv.Object
	seen := make(map[*resolv.Object]bool)
	for _, obj := range check.ObjectsByTags(tags...) {
		if seen[obj] {
			continue
		}
		seen[obj] = true
		if RectOverlap(area, BoundsOf(obj)) {
			hits = append(hits, obj)
		}
	}
	return hits
}
