package spherebox

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// CartesianBox is one or more 2D bounding boxes on the image plane, stored as an
// ordered sequence of points paired into boxes according to a BoxFormat. It is
// read-only after construction.
type CartesianBox struct {
	points []r2.Point
	format BoxFormat
}

// NewCartesianBox creates a CartesianBox from a sequence of points and the format
// describing how each consecutive pair of points encodes a box.
func NewCartesianBox(points []r2.Point, format BoxFormat) (*CartesianBox, error) {
	if err := format.CheckValid(); err != nil {
		return nil, err
	}
	if err := checkPointCount(len(points)); err != nil {
		return nil, err
	}
	box := &CartesianBox{points: make([]r2.Point, len(points)), format: format}
	copy(box.points, points)
	return box, nil
}

func checkPointCount(n int) error {
	if n < 2 {
		return errors.Errorf("a bounding box needs at least 2 points, got %d", n)
	}
	if n%2 != 0 {
		return errors.Errorf("the number of points must be even, got %d", n)
	}
	return nil
}

// Points returns a copy of the box's points in its native format.
func (cb *CartesianBox) Points() []r2.Point {
	points := make([]r2.Point, len(cb.points))
	copy(points, cb.points)
	return points
}

// Format returns the encoding of the box's point pairs.
func (cb *CartesianBox) Format() BoxFormat {
	return cb.format
}

// PointsAsXYXY returns every box normalized to corner-pair form: for each pair of
// points, the top left and bottom right corners of the box it encodes.
func (cb *CartesianBox) PointsAsXYXY() []r2.Point {
	if cb.format == XYXYFormat {
		return cb.Points()
	}
	points := make([]r2.Point, 0, len(cb.points))
	for i := 0; i < len(cb.points); i += 2 {
		var tl, br r2.Point
		switch cb.format {
		case XYWHFormat:
			tl, br = xywhToCorners(cb.points[i], cb.points[i+1])
		case CXCYWHFormat:
			tl, br = cxcywhToCorners(cb.points[i], cb.points[i+1])
		}
		points = append(points, tl, br)
	}
	return points
}

func xywhToCorners(topLeft, widthHeight r2.Point) (r2.Point, r2.Point) {
	return topLeft, r2.Point{X: topLeft.X + widthHeight.X, Y: topLeft.Y + widthHeight.Y}
}

// cxcywhToCorners uses floor semantics for the half extents so integral inputs
// produce integral corners.
func cxcywhToCorners(center, widthHeight r2.Point) (r2.Point, r2.Point) {
	tl := r2.Point{
		X: center.X - math.Floor(widthHeight.X/2),
		Y: center.Y - math.Floor(widthHeight.Y/2),
	}
	br := r2.Point{X: tl.X + widthHeight.X, Y: tl.Y + widthHeight.Y}
	return tl, br
}
