package viewport

// Handle is the imperative style handle of the board's inner container.
// The controller writes translation and position to it directly; the
// renderer reads it every frame. Writing to it never invalidates the
// board layout.
type Handle struct {
	dx, dy    int
	left, top float64
}

// SetTranslate replaces the translation
func (h *Handle) SetTranslate(dx, dy int) {
	h.dx, h.dy = dx, dy
}

// ResetTransform clears the translation
func (h *Handle) ResetTransform() {
	h.dx, h.dy = 0, 0
}

// SetPosition places the container at fractions of its parent's size
func (h *Handle) SetPosition(left, top float64) {
	h.left, h.top = left, top
}

// Translation returns the current translation in cells
func (h *Handle) Translation() (int, int) {
	return h.dx, h.dy
}

// Position returns the container's position as fractions of its parent
func (h *Handle) Position() (float64, float64) {
	return h.left, h.top
}
