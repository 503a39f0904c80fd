package spherebox

import (
	"github.com/golang/geo/r3"

	"github.com/spherevision/spherecam/transform"
)

// ToSpherical projects a cartesian bounding box onto the unit sphere seen by the
// given camera. The box is first normalized to corner-pair form, then every corner
// is projected through the lens model; the result keeps the corner order.
func ToSpherical(box *CartesianBox, calib *transform.FisheyeCameraIntrinsics) (*SphericalBox, error) {
	if err := calib.CheckValid(); err != nil {
		return nil, err
	}
	corners := box.PointsAsXYXY()
	points := make([]r3.Vector, 0, len(corners))
	for _, corner := range corners {
		points = append(points, calib.PixelToSpherePoint(corner.X, corner.Y))
	}
	return NewSphericalBox(points)
}
