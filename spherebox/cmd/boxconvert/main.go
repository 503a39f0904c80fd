// boxconvert projects a 2D bounding box from a fisheye image onto the unit sphere
// and prints the resulting corner directions.
package main

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/spherevision/spherecam/spherebox"
	"github.com/spherevision/spherecam/transform"
)

func main() {
	pointsPtr := flag.String("points", "960,540,1100,600", "comma separated point coordinates, two values per point")
	formatPtr := flag.String("format", "xyxy", "box encoding: xyxy, xywh or cxcywh")
	cameraPtr := flag.String("camera", "wide", "camera preset to use: wide or narrow")
	calibPtr := flag.String("calib", "", "path to a calibration JSON, overrides -camera")
	flag.Parse()
	logger := golog.NewLogger("boxconvert")
	convert(*pointsPtr, *formatPtr, *cameraPtr, *calibPtr, logger)
	os.Exit(0)
}

func convert(rawPoints, format, camera, calibPath string, logger golog.Logger) {
	calib, err := pickCalibration(camera, calibPath)
	if err != nil {
		logger.Fatal(err)
	}
	points, err := parsePoints(rawPoints)
	if err != nil {
		logger.Fatal(err)
	}

	box, err := spherebox.NewCartesianBox(points, spherebox.BoxFormat(format))
	if err != nil {
		logger.Fatal(err)
	}
	sphereBox, err := spherebox.ToSpherical(box, calib)
	if err != nil {
		logger.Fatal(err)
	}

	for i, pt := range sphereBox.Points() {
		logger.Infof("corner %d: (%f, %f, %f)", i, pt.X, pt.Y, pt.Z)
	}
}

func pickCalibration(camera, calibPath string) (*transform.FisheyeCameraIntrinsics, error) {
	if calibPath != "" {
		return transform.NewFisheyeCameraIntrinsicsFromJSONFile(calibPath)
	}
	if camera == "narrow" {
		return transform.NewNarrowFOV1080pIntrinsics(), nil
	}
	return transform.NewWideFOV1080pIntrinsics(), nil
}

func parsePoints(raw string) ([]r2.Point, error) {
	fields := strings.Split(raw, ",")
	coords := make([]float64, 0, len(fields))
	for _, field := range fields {
		c, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}
	if len(coords)%2 != 0 {
		return nil, errors.Errorf("need an even number of coordinates, got %d", len(coords))
	}
	points := make([]r2.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		points = append(points, r2.Point{X: coords[i], Y: coords[i+1]})
	}
	return points, nil
}
