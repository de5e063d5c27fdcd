package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/pstuifzand/tui-board/internal/model"
	"github.com/pstuifzand/tui-board/internal/viewport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScreen(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim, nil)
	require.NoError(t, err)
	sim.SetSize(w, h)
	t.Cleanup(func() { screen.Close() })
	return screen, sim
}

func cellRune(sim tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := sim.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func rowText(sim tcell.SimulationScreen, y, from, to int) string {
	var out []rune
	for x := from; x < to; x++ {
		out = append(out, cellRune(sim, x, y))
	}
	return string(out)
}

func sampleTree(t *testing.T) *model.Tree {
	t.Helper()
	tree := model.NewTree("Categories")
	p, err := tree.AddChild(model.Path{})
	require.NoError(t, err)
	require.NoError(t, tree.SetText(p, "Fruits"))
	return tree
}

func TestLayoutRows(t *testing.T) {
	tree := sampleTree(t)
	_, err := tree.AppendChild(model.Path{0})
	require.NoError(t, err)

	rows := Layout(tree, 2)
	require.Len(t, rows, 3)

	assert.Equal(t, NodeRow, rows[0].Kind)
	assert.Equal(t, '▾', rows[0].Marker)
	assert.Equal(t, 0, rows[0].X)

	// [0] has a child but was never expanded
	assert.Equal(t, model.Path{0}, rows[1].Path)
	assert.Equal(t, '▸', rows[1].Marker)
	assert.Equal(t, 1, rows[1].Depth)
	assert.Equal(t, 2, rows[1].X)
	assert.Equal(t, 1, rows[1].Y)

	assert.Equal(t, BoardAddRow, rows[2].Kind)
	assert.Equal(t, 2, rows[2].Y)
}

func TestLayoutLeafMarker(t *testing.T) {
	rows := Layout(model.NewTree("Categories"), 2)
	require.Len(t, rows, 2)
	assert.Equal(t, '•', rows[0].Marker)
	assert.False(t, rows[0].HasKids)
}

func TestBoardRowsFollowVersion(t *testing.T) {
	tree := model.NewTree("Categories")
	b := NewBoard(tree, 2)
	assert.Len(t, b.Rows(), 2)

	_, err := tree.AddChild(model.Path{})
	require.NoError(t, err)
	assert.Len(t, b.Rows(), 3)
}

func TestBoardRenderAndHitTest(t *testing.T) {
	screen, sim := newTestScreen(t, 80, 24)
	tree := sampleTree(t)
	b := NewBoard(tree, 2)

	canvas := viewport.Rect{X: 0, Y: 1, W: 80, H: 23}
	vp := viewport.New(viewport.DefaultOptions())
	screen.Clear()
	b.Render(screen, canvas, vp.Transform(canvas), nil)
	screen.Show()

	// root: marker at 0, field at 2 (width 11), button at 14
	assert.Equal(t, '▾', cellRune(sim, 0, 1))
	assert.Equal(t, "Categories", rowText(sim, 1, 2, 12))
	assert.Equal(t, "[+]", rowText(sim, 1, 14, 17))
	// child one level in
	assert.Equal(t, '•', cellRune(sim, 2, 2))
	assert.Equal(t, "Fruits", rowText(sim, 2, 4, 10))
	// board add button under the tree
	assert.Equal(t, "[+]", rowText(sim, 3, 0, 3))

	hit, ok := b.HitTest(5, 1)
	require.True(t, ok)
	assert.Equal(t, HitText, hit.Kind)
	assert.True(t, hit.Path.IsRoot())

	hit, ok = b.HitTest(15, 1)
	require.True(t, ok)
	assert.Equal(t, HitAdd, hit.Kind)

	hit, ok = b.HitTest(13, 2)
	require.True(t, ok)
	assert.Equal(t, HitAdd, hit.Kind)
	assert.Equal(t, model.Path{0}, hit.Path)

	hit, ok = b.HitTest(1, 3)
	require.True(t, ok)
	assert.Equal(t, HitBoardAdd, hit.Kind)

	_, ok = b.HitTest(70, 10)
	assert.False(t, ok)
}

func TestBoardRenderFollowsDrag(t *testing.T) {
	screen, sim := newTestScreen(t, 80, 24)
	b := NewBoard(sampleTree(t), 2)
	canvas := viewport.Rect{X: 0, Y: 1, W: 80, H: 23}

	vp := viewport.New(viewport.DefaultOptions())
	vp.Press(10, 10)
	vp.Move(20, 15)
	vp.Release()

	screen.Clear()
	b.Render(screen, canvas, vp.Transform(canvas), nil)
	screen.Show()

	assert.Equal(t, '▾', cellRune(sim, 10, 6))
	hit, ok := b.HitTest(13, 6)
	require.True(t, ok)
	assert.Equal(t, HitText, hit.Kind)
}

func TestBoardClipsToCanvas(t *testing.T) {
	screen, sim := newTestScreen(t, 40, 10)
	b := NewBoard(sampleTree(t), 2)
	canvas := viewport.Rect{X: 0, Y: 1, W: 40, H: 8}

	vp := viewport.New(viewport.DefaultOptions())
	vp.Press(0, 5)
	vp.Move(0, 0) // root row lands on y=-4, above the canvas

	screen.Clear()
	screen.DrawString(0, 0, "BAR", screen.ControlBarStyle())
	b.Render(screen, canvas, vp.Transform(canvas), nil)
	screen.Show()

	assert.Equal(t, "BAR", rowText(sim, 0, 0, 3))
	_, ok := b.HitTest(3, 0)
	assert.False(t, ok)
}

func TestBoardRenderEditor(t *testing.T) {
	screen, sim := newTestScreen(t, 80, 24)
	tree := sampleTree(t)
	b := NewBoard(tree, 2)
	canvas := viewport.Rect{X: 0, Y: 1, W: 80, H: 23}
	vp := viewport.New(viewport.DefaultOptions())

	ed := NewEditor(model.Path{0}, "Fruits", tree.SetText)
	_, err := ed.HandleKey(tcell.NewEventKey(tcell.KeyRune, '!', tcell.ModNone))
	require.NoError(t, err)

	screen.Clear()
	b.Render(screen, canvas, vp.Transform(canvas), ed)
	screen.Show()

	assert.Equal(t, "Fruits!", rowText(sim, 2, 4, 11))
	n, err := tree.NodeAt(model.Path{0})
	require.NoError(t, err)
	assert.Equal(t, "Fruits!", n.Text())
}

func TestBoardFind(t *testing.T) {
	tree := sampleTree(t)
	for _, label := range []string{"Vegetables", "Frozen fruit"} {
		p, err := tree.AppendChild(model.Path{})
		require.NoError(t, err)
		require.NoError(t, tree.SetText(p, label))
	}
	b := NewBoard(tree, 2)

	found := b.Find("fru")
	assert.Len(t, found, 2)
	assert.True(t, b.IsMatch(model.Path{0}))
	assert.True(t, b.IsMatch(model.Path{2}))
	assert.False(t, b.IsMatch(model.Path{1}))

	assert.Empty(t, b.Find(""))
	assert.False(t, b.IsMatch(model.Path{0}))
}

func TestBoardFocusedFieldPastLeftEdge(t *testing.T) {
	screen, sim := newTestScreen(t, 80, 24)
	tree := sampleTree(t)
	b := NewBoard(tree, 2)
	canvas := viewport.Rect{X: 0, Y: 1, W: 80, H: 23}

	// root marker lands at x=-3, so the field starts one column off screen
	vp := viewport.New(viewport.DefaultOptions())
	vp.Press(10, 10)
	vp.Move(7, 10)
	vp.Release()

	screen.Clear()
	b.Render(screen, canvas, vp.Transform(canvas), nil)
	screen.Show()
	unfocused := rowText(sim, 1, 0, 9)
	assert.Equal(t, "ategories", unfocused)

	ed := NewEditor(model.Path{}, "Categories", tree.SetText)
	_, err := ed.HandleKey(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone))
	require.NoError(t, err)

	screen.Clear()
	b.Render(screen, canvas, vp.Transform(canvas), ed)
	screen.Show()
	assert.Equal(t, unfocused, rowText(sim, 1, 0, 9), "focused text must stay in the same columns")
}

func TestBoardSetIndentRelayouts(t *testing.T) {
	b := NewBoard(sampleTree(t), 2)
	assert.Equal(t, 2, b.Rows()[1].X)

	b.SetIndent(4)
	assert.Equal(t, 4, b.Rows()[1].X)

	b.SetIndent(0)
	assert.Equal(t, 4, b.Rows()[1].X, "non-positive indent is ignored")
}
