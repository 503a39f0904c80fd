// Package transform provides the fisheye lens model that maps image-plane
// pixels onto the unit view sphere and back.
package transform

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/utils"
	"gonum.org/v1/gonum/mat"

	spherecamutils "github.com/spherevision/spherecam/utils"
)

// ErrNoIntrinsics is when a camera does not have intrinsics parameters or other parameters.
var ErrNoIntrinsics = errors.New("camera intrinsic parameters are not available")

// NewNoIntrinsicsError is used when the intrinsics are not defined.
func NewNoIntrinsicsError(msg string) error {
	return errors.Wrapf(ErrNoIntrinsics, msg)
}

// FisheyeCameraIntrinsics holds the parameters necessary to project a pixel seen
// through a wide-angle lens onto the unit sphere. The lens follows the equidistant
// model: the radial pixel distance from the principal point, normalized by the focal
// length and scaled by FOVScale, is the polar angle of the viewing direction.
type FisheyeCameraIntrinsics struct {
	Width    int     `json:"width_px"`
	Height   int     `json:"height_px"`
	Fx       float64 `json:"fx"`
	Ppx      float64 `json:"ppx"`
	Ppy      float64 `json:"ppy"`
	FOVScale float64 `json:"fov_scale"`
}

// CheckValid checks if the fields for FisheyeCameraIntrinsics have valid inputs.
func (params *FisheyeCameraIntrinsics) CheckValid() error {
	if params == nil {
		return NewNoIntrinsicsError("Intrinsics do not exist")
	}
	if params.Width == 0 || params.Height == 0 {
		return NewNoIntrinsicsError(fmt.Sprintf("Invalid size (%#v, %#v)", params.Width, params.Height))
	}
	if params.Fx <= 0 {
		return NewNoIntrinsicsError(fmt.Sprintf("Invalid focal length Fx = %#v", params.Fx))
	}
	if params.Ppx < 0 {
		return NewNoIntrinsicsError(fmt.Sprintf("Invalid principal X point Ppx = %#v", params.Ppx))
	}
	if params.Ppy < 0 {
		return NewNoIntrinsicsError(fmt.Sprintf("Invalid principal Y point Ppy = %#v", params.Ppy))
	}
	if params.FOVScale <= 0 {
		return NewNoIntrinsicsError(fmt.Sprintf("Invalid field of view scale FOVScale = %#v", params.FOVScale))
	}
	return nil
}

// NewFisheyeCameraIntrinsicsFromJSONFile takes in a file path to a JSON and turns it into FisheyeCameraIntrinsics.
func NewFisheyeCameraIntrinsicsFromJSONFile(jsonPath string) (*FisheyeCameraIntrinsics, error) {
	//nolint:gosec
	jsonFile, err := os.Open(jsonPath)
	if err != nil {
		return nil, errors.Wrap(err, "error opening JSON file")
	}
	defer utils.UncheckedErrorFunc(jsonFile.Close)
	byteValue, err := io.ReadAll(jsonFile)
	if err != nil {
		return nil, errors.Wrap(err, "error reading JSON data")
	}
	intrinsics := &FisheyeCameraIntrinsics{}
	if err := json.Unmarshal(byteValue, intrinsics); err != nil {
		return nil, errors.Wrap(err, "error parsing JSON string")
	}
	if err := intrinsics.CheckValid(); err != nil {
		return nil, err
	}
	return intrinsics, nil
}

// PixelToSpherePoint projects an image pixel onto the unit sphere. The pixel offset
// from the principal point is normalized by the focal length, and its radial distance,
// scaled by FOVScale, becomes the polar angle of the returned direction. The result
// always has norm 1; the principal point itself maps to the forward pole (0, 0, 1).
func (params *FisheyeCameraIntrinsics) PixelToSpherePoint(x, y float64) r3.Vector {
	px := (x - params.Ppx) / params.Fx
	py := (y - params.Ppy) / params.Fx
	r := math.Sqrt(spherecamutils.Square(px) + spherecamutils.Square(py))
	// r == 0 means the pixel sits on the optical axis, leave (px, py) at the origin
	if r != 0 {
		px /= r
		py /= r
	}
	theta := r * params.FOVScale
	sinTheta := math.Sin(theta)
	return r3.Vector{X: px * sinTheta, Y: py * sinTheta, Z: math.Cos(theta)}
}

// SpherePointToPixel projects a point on the unit sphere back to the image plane.
// It is the inverse of PixelToSpherePoint for directions within the lens's field of
// view. A Z coordinate outside [-1, 1] cannot come from a unit sphere and is an error.
func (params *FisheyeCameraIntrinsics) SpherePointToPixel(pt r3.Vector) (r2.Point, error) {
	if pt.Z < -1 || pt.Z > 1 {
		return r2.Point{}, errors.Errorf("point %v is not on the unit sphere: z must be within [-1, 1]", pt)
	}
	r := math.Acos(pt.Z) / params.FOVScale
	// at the pole sin(theta) is 0 and the forward map left X and Y at 0 as well
	if pt.Z != 1 {
		r /= math.Sqrt(1 - spherecamutils.Square(pt.Z))
	}
	return r2.Point{X: r*pt.X*params.Fx + params.Ppx, Y: r*pt.Y*params.Fx + params.Ppy}, nil
}

// ConvertPoint converts a single point between the image plane and the unit sphere,
// dispatching on its dimension: a 2D point is projected onto the sphere, a 3D point
// is projected back to the image plane.
func (params *FisheyeCameraIntrinsics) ConvertPoint(point []float64) ([]float64, error) {
	switch len(point) {
	case 2:
		pt := params.PixelToSpherePoint(point[0], point[1])
		return []float64{pt.X, pt.Y, pt.Z}, nil
	case 3:
		px, err := params.SpherePointToPixel(r3.Vector{X: point[0], Y: point[1], Z: point[2]})
		if err != nil {
			return nil, err
		}
		return []float64{px.X, px.Y}, nil
	default:
		return nil, errors.Errorf("expected point to be 2 or 3 dimensional, got %d dimensions", len(point))
	}
}

// GetCameraMatrix creates a new camera matrix and returns it.
// Camera matrix:
// [[fx 0 ppx],
//
//	[0 fx ppy],
//	[0 0  1]]
func (params *FisheyeCameraIntrinsics) GetCameraMatrix() *mat.Dense {
	if params == nil {
		return nil
	}
	cameraMatrix := mat.NewDense(3, 3, nil)
	cameraMatrix.Set(0, 0, params.Fx)
	cameraMatrix.Set(1, 1, params.Fx)
	cameraMatrix.Set(0, 2, params.Ppx)
	cameraMatrix.Set(1, 2, params.Ppy)
	cameraMatrix.Set(2, 2, 1)
	return cameraMatrix
}
