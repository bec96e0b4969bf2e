package viewer

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// drawHUD draws the status text overlay.
func (v *Viewer) drawHUD() {
	rl.DrawText("Flock", 10, 10, 20, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("Step: %d", v.steps), 10, 35, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Animals: %d", len(v.snapshot.Animals)), 10, 60, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Speed: %dx  FPS: %d", v.stepsPerUpdate, rl.GetFPS()), 10, 85, 20, rl.White)
	if v.paused {
		rl.DrawText("PAUSED", 10, 110, 20, rl.Yellow)
	}

	rl.DrawText("SPACE: Pause | < >: Speed | Drag/Arrows: Pan | Wheel: Zoom | R: Reset | C: Controls",
		10, int32(v.logicalH)-25, 10, rl.Gray)
}

// drawControls draws the raygui controls panel.
func (v *Viewer) drawControls() {
	panelX := v.logicalW - 190
	panelY := float32(10)

	rl.DrawRectangle(int32(panelX)-10, int32(panelY)-5, 190, 120, rl.Color{R: 20, G: 25, B: 30, A: 230})
	rl.DrawText("Controls", int32(panelX), int32(panelY), 16, rl.LightGray)
	panelY += 25

	pauseLabel := "Pause"
	if v.paused {
		pauseLabel = "Resume"
	}
	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 170, Height: 24}, pauseLabel) {
		v.paused = !v.paused
	}
	panelY += 30

	rl.DrawText("Steps per frame", int32(panelX), int32(panelY), 12, rl.Gray)
	panelY += 16
	newSpeed := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: panelY, Width: 140, Height: 18},
		"1", "10",
		float32(v.stepsPerUpdate), 1, 10,
	)
	rl.DrawText(fmt.Sprintf("%d", v.stepsPerUpdate), int32(panelX+150), int32(panelY+2), 14, rl.LightGray)
	if int(newSpeed) != v.stepsPerUpdate {
		v.stepsPerUpdate = int(newSpeed)
	}
	panelY += 26

	if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 170, Height: 24}, "Reset Camera") {
		v.cam.Reset()
	}
}
