package ui

import (
	"time"

	"snake-matrix/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10
	targetFPS     = 60
	// tiltReading is what a held arrow key reports, roughly a full 1g tilt
	// on the device accelerometer.
	tiltReading = 1024
	// scrollSpeed is in LED widths per second.
	scrollSpeed = 8
)

// Renderer stands in for the device: the window is the LED matrix, the
// arrow keys tilt it and space is the button. Sleeping keeps drawing frames
// so the window stays responsive between ticks.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	offsetX      int32
	offsetY      int32

	leds         [types.GridHeight][types.GridWidth]uint8
	attract      bool
	attractStart time.Time
	closed       bool
}

func NewRenderer(scale int) *Renderer {
	return &Renderer{cellSize: int32(scale)}
}

// Open creates the window. It must be called from the main goroutine.
func (r *Renderer) Open(title string) {
	size := r.cellSize*types.GridWidth + borderPadding*2
	rl.InitWindow(size, r.cellSize*types.GridHeight+borderPadding*2, title)
	rl.SetTargetFPS(targetFPS)
	r.UpdateDimensions()
}

func (r *Renderer) Close() {
	rl.CloseWindow()
}

// Closed reports whether the user asked the window to close.
func (r *Renderer) Closed() bool {
	return r.closed
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.offsetX = (r.screenWidth - r.cellSize*types.GridWidth) / 2
	r.offsetY = (r.screenHeight - r.cellSize*types.GridHeight) / 2
}

func (r *Renderer) Clear() {
	r.leds = [types.GridHeight][types.GridWidth]uint8{}
}

func (r *Renderer) SetPixel(p types.Point, brightness uint8) {
	if p.X < 0 || p.X >= types.GridWidth || p.Y < 0 || p.Y >= types.GridHeight {
		return
	}
	r.leds[p.Y][p.X] = brightness
}

func (r *Renderer) Attract() {
	if r.attract {
		return
	}
	r.attract = true
	r.attractStart = time.Now()
}

func (r *Renderer) StopAttract() {
	r.attract = false
	r.Clear()
}

// Scroll moves text across the matrix from right to left and returns once
// it has left the screen.
func (r *Renderer) Scroll(text string) {
	r.Clear()
	fontSize := r.cellSize * 3
	width := rl.MeasureText(text, fontSize)
	start := time.Now()

	for !r.closed {
		x := r.screenWidth - int32(time.Since(start).Seconds()*scrollSpeed*float64(r.cellSize))
		if x < -width {
			return
		}
		r.frame(func() {
			rl.DrawText(text, x, (r.screenHeight-fontSize)/2, fontSize, ledColor(255))
		})
	}
}

func (r *Renderer) StartPressed() bool {
	return rl.IsKeyDown(rl.KeySpace)
}

func (r *Renderer) Tilt() (x, y int32) {
	if rl.IsKeyDown(rl.KeyLeft) {
		x -= tiltReading
	}
	if rl.IsKeyDown(rl.KeyRight) {
		x += tiltReading
	}
	if rl.IsKeyDown(rl.KeyUp) {
		y -= tiltReading
	}
	if rl.IsKeyDown(rl.KeyDown) {
		y += tiltReading
	}
	return x, y
}

// Sleep draws frames until d has passed, or the window is closed. At least
// one frame is always drawn.
func (r *Renderer) Sleep(d time.Duration) {
	deadline := time.Now().Add(d)
	for {
		r.frame(r.drawOverlay)
		if r.closed || !time.Now().Before(deadline) {
			return
		}
	}
}

func (r *Renderer) drawOverlay() {
	if !r.attract {
		return
	}
	fontSize := r.cellSize * 3
	width := rl.MeasureText("<", fontSize)
	span := float64(r.screenWidth + width)
	travelled := time.Since(r.attractStart).Seconds() * scrollSpeed * float64(r.cellSize)
	x := r.screenWidth - int32(travelled-span*float64(int(travelled/span)))
	rl.DrawText("<", x, (r.screenHeight-fontSize)/2, fontSize, ledColor(255))
}

func (r *Renderer) frame(overlay func()) {
	if rl.WindowShouldClose() {
		r.closed = true
		return
	}
	r.UpdateDimensions()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	radius := float32(r.cellSize) * 0.3
	for y := int32(0); y < types.GridHeight; y++ {
		for x := int32(0); x < types.GridWidth; x++ {
			cx := r.offsetX + x*r.cellSize + r.cellSize/2
			cy := r.offsetY + y*r.cellSize + r.cellSize/2
			rl.DrawCircle(cx, cy, radius, ledColor(r.leds[y][x]))
		}
	}
	if overlay != nil {
		overlay()
	}

	rl.EndDrawing()
}

// ledColor maps a brightness to the red of a lit LED, with a dim floor so
// unlit LEDs stay visible.
func ledColor(brightness uint8) rl.Color {
	const floor = 30
	red := floor + uint16(brightness)*(255-floor)/255
	return rl.Color{R: uint8(red), G: uint8(red / 8), B: uint8(red / 8), A: 255}
}
