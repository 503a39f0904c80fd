package transform

// Calibrations for the two 1080p capture rigs. Both share the same focal length
// and principal point; they differ in how much physical field of view a pixel
// radius subtends.

// NewWideFOV1080pIntrinsics returns the calibration of the wide field of view 1080p camera.
func NewWideFOV1080pIntrinsics() *FisheyeCameraIntrinsics {
	return &FisheyeCameraIntrinsics{
		Width:    1920,
		Height:   1080,
		Fx:       714.285714,
		Ppx:      960,
		Ppy:      540,
		FOVScale: 1.082984,
	}
}

// NewNarrowFOV1080pIntrinsics returns the calibration of the narrow field of view 1080p camera.
func NewNarrowFOV1080pIntrinsics() *FisheyeCameraIntrinsics {
	return &FisheyeCameraIntrinsics{
		Width:    1920,
		Height:   1080,
		Fx:       714.285714,
		Ppx:      960,
		Ppy:      540,
		FOVScale: 0.871413,
	}
}
