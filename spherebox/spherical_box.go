package spherebox

import "github.com/golang/geo/r3"

// SphericalBox is one or more bounding boxes on the unit view sphere, stored as an
// ordered sequence of unit-sphere points paired into boxes. There is only one
// encoding: each pair holds the projections of a box's two corners, since sphere
// geometry has no rectangle to carry width/height variants.
type SphericalBox struct {
	points []r3.Vector
}

// NewSphericalBox creates a SphericalBox from a sequence of unit-sphere points.
func NewSphericalBox(points []r3.Vector) (*SphericalBox, error) {
	if err := checkPointCount(len(points)); err != nil {
		return nil, err
	}
	box := &SphericalBox{points: make([]r3.Vector, len(points))}
	copy(box.points, points)
	return box, nil
}

// Points returns a copy of the box's corner points.
func (sb *SphericalBox) Points() []r3.Vector {
	points := make([]r3.Vector, len(sb.points))
	copy(points, sb.points)
	return points
}
