// Package spherebox converts bounding boxes on a fisheye image plane into
// bounding boxes on the unit view sphere.
package spherebox

import "github.com/pkg/errors"

// BoxFormat is the name of a 2D bounding box encoding.
type BoxFormat string

const (
	// XYXYFormat encodes each box as a top left corner point and a bottom right corner point.
	XYXYFormat = BoxFormat("xyxy")
	// XYWHFormat encodes each box as a top left corner point and a width/height point.
	XYWHFormat = BoxFormat("xywh")
	// CXCYWHFormat encodes each box as a center point and a width/height point.
	CXCYWHFormat = BoxFormat("cxcywh")
)

// InvalidBoxFormatError is used when a box format tag is not one of the recognized encodings.
func InvalidBoxFormatError(format BoxFormat) error {
	return errors.Errorf("do not know how to parse %q box format", format)
}

// CheckValid checks that the format is one of the recognized encodings.
func (f BoxFormat) CheckValid() error {
	switch f {
	case XYXYFormat, XYWHFormat, CXCYWHFormat:
		return nil
	default:
		return InvalidBoxFormatError(f)
	}
}
