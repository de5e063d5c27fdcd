// Package viewport implements the pan/zoom controller for the board canvas.
//
// The controller owns two pieces of state. Scale is declarative: changing
// it invalidates the board layout, which is rebuilt on the next frame.
// Translation and position live on an imperative Handle that drag gestures
// write to directly, so panning never re-lays-out the tree.
//
// Translation is applied in screen space after scaling. Content therefore
// follows the pointer one cell per cell at every scale.
package viewport

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnknownPreset is returned by SetScalePreset for values outside the preset list
var ErrUnknownPreset = errors.New("unknown scale preset")

// DragState is the state of the pointer drag state machine
type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (s DragState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
		return fmt.Sprintf("DragState(%d)", int(s))
	}
}

// Options configures zoom limits and the center anchor
type Options struct {
	Step       float64 // zoom in/out delta
	MinScale   float64
	MaxScale   float64
	CenterLeft float64 // fraction of the canvas width used by Center
	CenterTop  float64 // fraction of the canvas height used by Center
}

// DefaultOptions returns a step of 0.1, the 0.1-2.0 preset range and a
// 45%/40% center anchor.
func DefaultOptions() Options {
	return Options{
		Step:       0.1,
		MinScale:   0.1,
		MaxScale:   2.0,
		CenterLeft: 0.45,
		CenterTop:  0.40,
	}
}

// Preset is one entry of the scale selector
type Preset struct {
	Value string
	Label string
	Scale float64
}

var presets = func() []Preset {
	list := make([]Preset, 0, 20)
	for i := 1; i <= 20; i++ {
		s := float64(i) / 10
		list = append(list, Preset{
			Value: strconv.FormatFloat(s, 'f', -1, 64),
			Label: fmt.Sprintf("%d%%", i*10),
			Scale: s,
		})
	}
	return list
}()

// Presets returns the scale selector entries, 10% to 200% in 10% steps
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Rect is a screen rectangle in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Controller owns the scale and the drag state machine
type Controller struct {
	opts  Options
	scale float64
	inner *Handle

	state            DragState
	originX, originY int
}

// New creates a controller at 100% with no translation
func New(opts Options) *Controller {
	c := &Controller{
		opts:  sanitize(opts),
		inner: &Handle{},
	}
	c.scale = c.clamp(1)
	return c
}

func sanitize(opts Options) Options {
	if opts.Step <= 0 {
		opts.Step = DefaultOptions().Step
	}
	if opts.MinScale <= 0 {
		opts.MinScale = DefaultOptions().MinScale
	}
	if opts.MaxScale < opts.MinScale {
		opts.MaxScale = opts.MinScale
	}
	return opts
}

// SetOptions replaces the options and clamps the current scale into the
// new range. Translation and the anchor already applied are kept; the
// new anchor takes effect on the next Center.
func (c *Controller) SetOptions(opts Options) {
	c.opts = sanitize(opts)
	c.scale = c.clamp(c.scale)
}

// Options returns the controller's effective options
func (c *Controller) Options() Options {
	return c.opts
}

// Scale returns the current zoom factor
func (c *Controller) Scale() float64 {
	return c.scale
}

// ScaleLabel formats the scale as a percentage, e.g. "110%"
func (c *Controller) ScaleLabel() string {
	return fmt.Sprintf("%d%%", int(math.Round(c.scale*100)))
}

// PresetIndex returns the index of the preset matching the current scale, or -1
func (c *Controller) PresetIndex() int {
	for i, p := range presets {
		if sameScale(p.Scale, c.scale) {
			return i
		}
	}
	return -1
}

// ZoomIn increases the scale by one step
func (c *Controller) ZoomIn() {
	c.scale = c.clamp(c.scale + c.opts.Step)
}

// ZoomOut decreases the scale by one step
func (c *Controller) ZoomOut() {
	c.scale = c.clamp(c.scale - c.opts.Step)
}

// SetScalePreset assigns the scale of the preset whose value is given.
// It is a direct assignment, not a delta.
func (c *Controller) SetScalePreset(value string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, value)
	}
	for _, p := range presets {
		if sameScale(p.Scale, v) {
			c.scale = c.clamp(p.Scale)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownPreset, value)
}

// Center clears any drag translation and moves the container to the
// configured anchor. The anchor is fixed; it does not depend on content
// bounds or scale.
func (c *Controller) Center() {
	c.inner.ResetTransform()
	c.inner.SetPosition(c.opts.CenterLeft, c.opts.CenterTop)
}

// State returns the drag state
func (c *Controller) State() DragState {
	return c.state
}

// Dragging reports whether a drag gesture is in progress
func (c *Controller) Dragging() bool {
	return c.state == Dragging
}

// Press starts a drag at (x, y). A press while already dragging is treated
// as a move; the origin of the running gesture is kept.
func (c *Controller) Press(x, y int) {
	if c.state == Dragging {
		c.Move(x, y)
		return
	}
	c.state = Dragging
	c.originX, c.originY = x, y
}

// Move sets the translation to the offset from the drag origin. The
// translation replaces any previous one. Moves while idle are ignored.
func (c *Controller) Move(x, y int) {
	if c.state != Dragging {
		return
	}
	c.inner.SetTranslate(x-c.originX, y-c.originY)
}

// Release ends the drag and keeps the last translation
func (c *Controller) Release() {
	c.state = Idle
}

// Cancel ends a drag on an ambiguous signal such as focus loss or a
// resize. It behaves like Release and is safe to call when idle.
func (c *Controller) Cancel() bool {
	if c.state != Dragging {
		return false
	}
	c.state = Idle
	return true
}

// Inner returns the imperative style handle of the inner container
func (c *Controller) Inner() *Handle {
	return c.inner
}

// Transform returns the mapping from world coordinates to screen cells for
// the given canvas.
func (c *Controller) Transform(canvas Rect) Transform {
	left, top := c.inner.Position()
	dx, dy := c.inner.Translation()
	return Transform{
		Scale:   c.scale,
		OriginX: canvas.X + int(math.Round(left*float64(canvas.W))) + dx,
		OriginY: canvas.Y + int(math.Round(top*float64(canvas.H))) + dy,
	}
}

func (c *Controller) clamp(s float64) float64 {
	s = math.Round(s*100) / 100
	if s < c.opts.MinScale {
		return c.opts.MinScale
	}
	if s > c.opts.MaxScale {
		return c.opts.MaxScale
	}
	return s
}

func sameScale(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// Transform maps world coordinates to screen cells
type Transform struct {
	Scale            float64
	OriginX, OriginY int
}

// Point maps a world position to a screen cell
func (t Transform) Point(wx, wy float64) (int, int) {
	return t.OriginX + int(math.Round(wx*t.Scale)), t.OriginY + int(math.Round(wy*t.Scale))
}

// Length scales a world length to cells. A positive length never drops
// below one cell so nothing vanishes entirely when zoomed out.
func (t Transform) Length(w float64) int {
	if w <= 0 {
		return 0
	}
	return max(int(math.Round(w*t.Scale)), 1)
}
