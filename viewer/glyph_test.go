package viewer

import (
	"math"
	"testing"

	"github.com/pthm-cable/flock/camera"
)

func dist(a, b Vec2) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func TestTriangleVerticesRotationZero(t *testing.T) {
	const size = 8.0
	center := Vec2{X: 100, Y: 200}

	nose, tailA, tailB := TriangleVertices(center.X, center.Y, size, 0)

	// Nose sits straight "up" from the center at 1.5x size
	if math.Abs(float64(nose.X-100)) > 1e-4 || math.Abs(float64(nose.Y-212)) > 1e-4 {
		t.Errorf("nose at (%f, %f), want (100, 212)", nose.X, nose.Y)
	}

	// Tails are symmetric about the vertical axis through the center
	if math.Abs(float64(tailA.X+tailB.X-200)) > 1e-4 {
		t.Errorf("tails not symmetric: x = %f and %f", tailA.X, tailB.X)
	}
	if math.Abs(float64(tailA.Y-tailB.Y)) > 1e-4 {
		t.Errorf("tails at different heights: %f and %f", tailA.Y, tailB.Y)
	}

	// Both tails at radius size from the center
	if d := dist(tailA, center); math.Abs(d-size) > 1e-4 {
		t.Errorf("tailA at distance %f, want %f", d, size)
	}
	if d := dist(tailB, center); math.Abs(d-size) > 1e-4 {
		t.Errorf("tailB at distance %f, want %f", d, size)
	}
}

func TestTriangleVerticesTailAngles(t *testing.T) {
	const size = 10.0
	nose, tailA, tailB := TriangleVertices(0, 0, size, 0)

	// Angle between the nose direction and each tail direction is 120 degrees
	noseAngle := math.Atan2(float64(nose.Y), float64(nose.X))
	for name, tail := range map[string]Vec2{"tailA": tailA, "tailB": tailB} {
		tailAngle := math.Atan2(float64(tail.Y), float64(tail.X))
		sep := math.Abs(noseAngle - tailAngle)
		if sep > math.Pi {
			sep = 2*math.Pi - sep
		}
		if math.Abs(sep-2*math.Pi/3) > 1e-4 {
			t.Errorf("%s separated from nose by %f rad, want %f", name, sep, 2*math.Pi/3)
		}
	}
}

func TestTriangleVerticesRigidRotation(t *testing.T) {
	const size = 8.0
	center := Vec2{X: 50, Y: 75}

	// Radii are invariant under rotation
	for _, rotation := range []float32{0, 0.5, 1.0, math.Pi / 2, math.Pi, -2.3, 5.9} {
		nose, tailA, tailB := TriangleVertices(center.X, center.Y, size, rotation)

		if d := dist(nose, center); math.Abs(d-1.5*size) > 1e-3 {
			t.Errorf("rotation %f: nose at radius %f, want %f", rotation, d, 1.5*size)
		}
		if d := dist(tailA, center); math.Abs(d-size) > 1e-3 {
			t.Errorf("rotation %f: tailA at radius %f, want %f", rotation, d, size)
		}
		if d := dist(tailB, center); math.Abs(d-size) > 1e-3 {
			t.Errorf("rotation %f: tailB at radius %f, want %f", rotation, d, size)
		}

		// Glyph shape is rigid: side lengths match the rotation-0 glyph
		n0, a0, b0 := TriangleVertices(center.X, center.Y, size, 0)
		if math.Abs(dist(nose, tailA)-dist(n0, a0)) > 1e-3 {
			t.Errorf("rotation %f deformed the nose-tailA edge", rotation)
		}
		if math.Abs(dist(tailA, tailB)-dist(a0, b0)) > 1e-3 {
			t.Errorf("rotation %f deformed the tail edge", rotation)
		}
	}
}

func TestGlyphWorkedExample(t *testing.T) {
	// 800x600 viewport, animal at (0.5, 0.5, rotation 0):
	// center (400, 300), size 0.01*800 = 8, nose (400, 312)
	cam := camera.New(800, 600)
	sx, sy := cam.WorldToScreen(0.5, 0.5)

	if math.Abs(float64(sx-400)) > 1e-3 || math.Abs(float64(sy-300)) > 1e-3 {
		t.Fatalf("center at (%f, %f), want (400, 300)", sx, sy)
	}

	size := float32(800) * 0.01
	nose, _, _ := TriangleVertices(sx, sy, size, 0)
	if math.Abs(float64(nose.X-400)) > 1e-3 || math.Abs(float64(nose.Y-312)) > 1e-3 {
		t.Errorf("nose at (%f, %f), want (400, 312)", nose.X, nose.Y)
	}
}

func TestBackingSize(t *testing.T) {
	testCases := []struct {
		logicalW, logicalH int
		scale              float32
		wantW, wantH       int32
	}{
		{800, 600, 1, 800, 600},
		{800, 600, 2, 1600, 1200},
		{1280, 720, 1.5, 1920, 1080},
		{800, 600, 0, 800, 600}, // unavailable scale degrades to 1
	}

	for _, tc := range testCases {
		w, h := BackingSize(tc.logicalW, tc.logicalH, tc.scale)
		if w != tc.wantW || h != tc.wantH {
			t.Errorf("BackingSize(%d, %d, %f) = (%d, %d), want (%d, %d)",
				tc.logicalW, tc.logicalH, tc.scale, w, h, tc.wantW, tc.wantH)
		}
	}
}
