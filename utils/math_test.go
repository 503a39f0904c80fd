package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestDegRadConversion(t *testing.T) {
	test.That(t, DegToRad(180), test.ShouldEqual, math.Pi)
	test.That(t, DegToRad(0), test.ShouldEqual, 0)
	test.That(t, RadToDeg(math.Pi), test.ShouldEqual, 180)
	test.That(t, RadToDeg(DegToRad(90)), test.ShouldAlmostEqual, 90, 1e-12)
}

func TestSquare(t *testing.T) {
	test.That(t, Square(3), test.ShouldEqual, 9)
	test.That(t, Square(-2.5), test.ShouldEqual, 6.25)
	test.That(t, Square(0), test.ShouldEqual, 0)
}

func TestFloat64AlmostEqual(t *testing.T) {
	test.That(t, Float64AlmostEqual(1.0, 1.0+1e-8, 1e-6), test.ShouldBeTrue)
	test.That(t, Float64AlmostEqual(1.0, 1.1, 1e-6), test.ShouldBeFalse)
}
