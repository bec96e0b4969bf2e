// Package viewer renders simulation snapshots as oriented triangle glyphs
// on a raylib surface.
package viewer

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/flock/camera"
	"github.com/pthm-cable/flock/config"
	"github.com/pthm-cable/flock/sim"
)

// Options configures viewer construction.
type Options struct {
	// Headless skips all display queries; used by tests and benchmarks.
	Headless bool

	// StepsPerUpdate is the number of engine steps per frame (min 1).
	StepsPerUpdate int
}

// Viewer drives the render loop: advance the engine, snapshot, draw.
type Viewer struct {
	engine   Engine
	cam      *camera.Camera
	snapshot sim.World

	// Surface geometry, captured once at construction
	logicalW, logicalH float32
	glyphSize          float32

	steps          int
	paused         bool
	stepsPerUpdate int
	showControls   bool
}

// New creates a viewer over the given engine. In graphical mode the device
// scale factor is read from the window; it degrades to 1 when unavailable.
func New(engine Engine, cfg *config.Config, opts Options) *Viewer {
	stepsPerUpdate := opts.StepsPerUpdate
	if stepsPerUpdate < 1 {
		stepsPerUpdate = 1
	}

	v := &Viewer{
		engine:         engine,
		cam:            camera.New(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32),
		snapshot:       engine.World(),
		logicalW:       cfg.Derived.ScreenW32,
		logicalH:       cfg.Derived.ScreenH32,
		glyphSize:      cfg.Derived.GlyphSize,
		stepsPerUpdate: stepsPerUpdate,
	}

	if !opts.Headless {
		dpiScale := float32(1)
		if scale := rl.GetWindowScaleDPI(); scale.X > 0 {
			dpiScale = scale.X
		}
		backingW, backingH := BackingSize(cfg.Screen.Width, cfg.Screen.Height, dpiScale)
		slog.Info("display initialized",
			"logical_width", cfg.Screen.Width,
			"logical_height", cfg.Screen.Height,
			"scale", dpiScale,
			"backing_width", backingW,
			"backing_height", backingH,
		)
	}

	return v
}

// BackingSize returns the backing-store pixel dimensions for a logical
// surface at the given device scale. A scale of 0 or less means the scale
// query was unavailable and degrades to 1.
func BackingSize(logicalW, logicalH int, scale float32) (int32, int32) {
	if scale <= 0 {
		scale = 1
	}
	return int32(float32(logicalW) * scale), int32(float32(logicalH) * scale)
}

// Update processes input and advances the simulation for this frame.
func (v *Viewer) Update() {
	v.handleInput()
	v.Advance()
}

// Advance runs the engine and captures the post-step snapshot. The
// snapshot drawn this frame is always the one taken immediately after the
// last step, never a stale one.
func (v *Viewer) Advance() {
	if v.paused {
		return
	}
	for i := 0; i < v.stepsPerUpdate; i++ {
		v.engine.Step()
	}
	v.steps += v.stepsPerUpdate
	v.snapshot = v.engine.World()
}

// Draw renders the current snapshot.
func (v *Viewer) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 12, G: 16, B: 24, A: 255})

	size := v.glyphSize * v.cam.Zoom
	for _, a := range v.snapshot.Animals {
		// Cull glyphs fully outside the viewport; generous margin since
		// the nose extends 1.5x beyond the size
		if !v.cam.IsVisible(a.X, a.Y, 2*size) {
			continue
		}
		sx, sy := v.cam.WorldToScreen(a.X, a.Y)
		drawGlyph(sx, sy, size, a.Rotation)
	}

	v.drawHUD()
	if v.showControls {
		v.drawControls()
	}

	rl.EndDrawing()
}

// drawGlyph strokes the outline triangle for one animal.
func drawGlyph(x, y, size, rotation float32) {
	nose, tailA, tailB := TriangleVertices(x, y, size, rotation)

	n := rl.Vector2{X: nose.X, Y: nose.Y}
	a := rl.Vector2{X: tailA.X, Y: tailA.Y}
	b := rl.Vector2{X: tailB.X, Y: tailB.Y}

	// Outline only, closed back to the nose
	rl.DrawLineV(n, a, rl.RayWhite)
	rl.DrawLineV(a, b, rl.RayWhite)
	rl.DrawLineV(b, n, rl.RayWhite)
}

// Steps returns the number of engine steps the viewer has driven.
func (v *Viewer) Steps() int {
	return v.steps
}

// Snapshot returns the world snapshot rendered this frame.
func (v *Viewer) Snapshot() sim.World {
	return v.snapshot
}

// Paused reports whether the simulation is paused.
func (v *Viewer) Paused() bool {
	return v.paused
}

// StepsPerUpdate returns the current steps-per-frame setting.
func (v *Viewer) StepsPerUpdate() int {
	return v.stepsPerUpdate
}

// Camera returns the viewport camera.
func (v *Viewer) Camera() *camera.Camera {
	return v.cam
}
