package editor

import (
	"github.com/inamate/sceneedit/internal/geometry"
	"github.com/inamate/sceneedit/internal/store"
)

// ViewportState is the canvas camera: screen = canvas*Zoom + Pan.
type ViewportState struct {
	Zoom float64 `json:"zoom"`
	PanX float64 `json:"panX"`
	PanY float64 `json:"panY"`
}

// ZoomLimits bounds zooming. Step is the factor applied per wheel notch.
type ZoomLimits struct {
	Min  float64
	Max  float64
	Step float64
}

var DefaultZoomLimits = ZoomLimits{Min: 0.25, Max: 4, Step: 1.08}

// Viewport is the observable camera. It is not part of undo history.
type Viewport struct {
	state  *store.Store[ViewportState]
	limits ZoomLimits
}

func NewViewport(limits ZoomLimits) *Viewport {
	return &Viewport{
		state:  store.New(ViewportState{Zoom: 1}),
		limits: limits,
	}
}

func (v *Viewport) State() ViewportState {
	return v.state.GetState()
}

func (v *Viewport) Subscribe(listener store.Listener) func() {
	return v.state.Subscribe(listener)
}

func (v *Viewport) clampZoom(zoom float64) float64 {
	return geometry.Clamp(zoom, v.limits.Min, v.limits.Max)
}

// SetZoom sets the zoom, clamped to the limits. Pan is left alone.
func (v *Viewport) SetZoom(zoom float64) {
	v.state.Update(func(prev ViewportState) ViewportState {
		prev.Zoom = v.clampZoom(zoom)
		return prev
	})
}

func (v *Viewport) SetPan(panX, panY float64) {
	v.state.Update(func(prev ViewportState) ViewportState {
		prev.PanX, prev.PanY = panX, panY
		return prev
	})
}

// PanBy shifts the pan by a screen-space pointer delta.
func (v *Viewport) PanBy(dx, dy float64) {
	v.state.Update(func(prev ViewportState) ViewportState {
		prev.PanX += dx
		prev.PanY += dy
		return prev
	})
}

// ZoomAt steps the zoom in (direction > 0) or out (direction < 0) keeping the
// canvas point under the screen pointer fixed.
func (v *Viewport) ZoomAt(pointer geometry.Point, direction int) {
	if direction == 0 {
		return
	}
	v.state.Update(func(prev ViewportState) ViewportState {
		factor := v.limits.Step
		if direction < 0 {
			factor = 1 / factor
		}
		next := v.clampZoom(prev.Zoom * factor)

		anchor := geometry.Point{
			X: (pointer.X - prev.PanX) / prev.Zoom,
			Y: (pointer.Y - prev.PanY) / prev.Zoom,
		}
		return ViewportState{
			Zoom: next,
			PanX: pointer.X - anchor.X*next,
			PanY: pointer.Y - anchor.Y*next,
		}
	})
}

// Transform maps canvas coordinates to screen coordinates.
func (s ViewportState) Transform() geometry.Matrix2D {
	return geometry.Translate(s.PanX, s.PanY).Multiply(geometry.Scale(s.Zoom, s.Zoom))
}

// ScreenToCanvas converts a pointer position to canvas coordinates.
func (s ViewportState) ScreenToCanvas(p geometry.Point) geometry.Point {
	return s.Transform().Invert().Apply(p)
}

func (s ViewportState) CanvasToScreen(p geometry.Point) geometry.Point {
	return s.Transform().Apply(p)
}

// VisibleRect returns the canvas area shown on a screen of the given size.
func (s ViewportState) VisibleRect(screen geometry.Size) geometry.Rect {
	return s.Transform().Invert().TransformRect(geometry.Rect{Width: screen.Width, Height: screen.Height})
}
