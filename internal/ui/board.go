package ui

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/pstuifzand/tui-board/internal/model"
	"github.com/pstuifzand/tui-board/internal/viewport"
)

// Row geometry in world cells
const (
	markerWidth   = 1
	gapWidth      = 1
	minFieldWidth = 8
	addLabel      = "[+]"
)

// RowKind distinguishes node rows from the board-level add button
type RowKind int

const (
	NodeRow RowKind = iota
	BoardAddRow
)

// Row is one line of the board layout in world coordinates
type Row struct {
	Kind     RowKind
	Path     model.Path
	Depth    int
	X        int // world column of the marker
	Y        int // world row
	Text     string
	Marker   rune
	Last     bool // last child of its parent
	HasKids  bool
	Expanded bool
}

// HitKind identifies what a screen region does when clicked
type HitKind int

const (
	HitNone HitKind = iota
	HitText
	HitAdd
	HitBoardAdd
)

// Hit is a clickable screen region recorded during Render
type Hit struct {
	Kind HitKind
	Path model.Path
	Rect viewport.Rect
}

// Board lays out the tree and draws it through the viewport transform
type Board struct {
	tree   *model.Tree
	indent int

	rows     []Row
	builtFor uint64
	built    bool

	hits    []Hit
	matches map[string]bool
}

// NewBoard creates a board for tree; indent is the world width of one
// nesting level
func NewBoard(tree *model.Tree, indent int) *Board {
	if indent < 1 {
		indent = 2
	}
	return &Board{
		tree:    tree,
		indent:  indent,
		matches: map[string]bool{},
	}
}

// SetIndent changes the world width of one nesting level
func (b *Board) SetIndent(indent int) {
	if indent < 1 || indent == b.indent {
		return
	}
	b.indent = indent
	b.built = false
}

// Rows returns the current layout, rebuilding it from the root whenever
// the tree changed since the last call
func (b *Board) Rows() []Row {
	if !b.built || b.builtFor != b.tree.Version() {
		b.rows = Layout(b.tree, b.indent)
		b.builtFor = b.tree.Version()
		b.built = true
	}
	return b.rows
}

// Layout flattens the visible part of tree into rows, ending with the
// board-level add button
func Layout(tree *model.Tree, indent int) []Row {
	var rows []Row
	rows = layoutNode(rows, tree.Root(), model.Path{}, 0, indent, true)
	rows = append(rows, Row{
		Kind: BoardAddRow,
		Path: model.Path{},
		Y:    len(rows),
	})
	return rows
}

// layoutNode emits the row for n and recurses one level into its
// children when n is expanded
func layoutNode(rows []Row, n *model.Node, p model.Path, depth, indent int, last bool) []Row {
	row := Row{
		Kind:     NodeRow,
		Path:     p,
		Depth:    depth,
		X:        depth * indent,
		Y:        len(rows),
		Text:     n.Text(),
		Last:     last,
		HasKids:  n.Len() > 0,
		Expanded: n.Expanded(),
	}
	switch {
	case n.Len() == 0:
		row.Marker = '•'
	case n.Expanded():
		row.Marker = '▾'
	default:
		row.Marker = '▸'
	}
	rows = append(rows, row)

	if !n.Expanded() {
		return rows
	}
	for i, child := range n.Children() {
		rows = layoutNode(rows, child, p.Child(i), depth+1, indent, i == n.Len()-1)
	}
	return rows
}

// fieldWidth is the world width of a row's text field
func fieldWidth(text string) int {
	return max(StringWidth(text)+1, minFieldWidth)
}

// Render draws the visible rows inside canvas and records hit regions.
// editor, when non-nil, draws the focused node's field.
func (b *Board) Render(screen *Screen, canvas viewport.Rect, tr viewport.Transform, editor *Editor) {
	b.hits = b.hits[:0]

	for _, row := range b.Rows() {
		wx := float64(row.X)
		wy := float64(row.Y)
		x, y := tr.Point(wx, wy)
		if y < canvas.Y || y >= canvas.Y+canvas.H {
			continue
		}

		if row.Kind == BoardAddRow {
			w := screen.DrawStringClipped(x, y, addLabel, screen.AddButtonStyle(), canvas)
			b.addHit(Hit{Kind: HitBoardAdd, Path: row.Path, Rect: viewport.Rect{X: x, Y: y, W: w, H: 1}}, canvas)
			continue
		}

		if row.Depth > 0 {
			gx, _ := tr.Point(float64(row.X-b.indent), wy)
			if gx < x {
				guide := "├"
				if row.Last {
					guide = "└"
				}
				screen.DrawStringClipped(gx, y, guide, screen.GuideStyle(), canvas)
			}
		}
		screen.DrawStringClipped(x, y, string(row.Marker), screen.ExpandMarkerStyle(), canvas)

		fx, _ := tr.Point(wx+markerWidth+gapWidth, wy)
		focused := editor != nil && editor.Path().Equal(row.Path)
		text := row.Text
		if focused {
			text = editor.Text()
		}
		fw := tr.Length(float64(fieldWidth(text)))
		if focused {
			fw = max(fw, StringWidth(text)+1)
		}

		fieldRect := viewport.Rect{X: fx, Y: y, W: fw, H: 1}
		switch {
		case focused:
			b.renderFocused(screen, editor, fieldRect, canvas)
		default:
			style := screen.NodeFieldStyle()
			if b.matches[row.Path.String()] {
				style = screen.NodeMatchStyle()
			}
			for i := 0; i < fw; i++ {
				if canvas.Contains(fx+i, y) {
					screen.SetCell(fx+i, y, ' ', style)
				}
			}
			screen.DrawStringClipped(fx, y, TruncateToWidth(text, fw), style, canvas)
		}
		b.addHit(Hit{Kind: HitText, Path: row.Path, Rect: fieldRect}, canvas)

		bx := fx + fw + gapWidth
		w := screen.DrawStringClipped(bx, y, addLabel, screen.AddButtonStyle(), canvas)
		b.addHit(Hit{Kind: HitAdd, Path: row.Path, Rect: viewport.Rect{X: bx, Y: y, W: w, H: 1}}, canvas)
	}
}

// renderFocused lays the editor out over the whole field and clips it to
// the canvas, so a field pushed past the edge keeps its columns aligned
// with the unfocused rendering
func (b *Board) renderFocused(screen *Screen, editor *Editor, field, canvas viewport.Rect) {
	editor.Render(screen, field.X, field.Y, field.W, canvas)
}

func (b *Board) addHit(h Hit, canvas viewport.Rect) {
	if h.Rect.Y < canvas.Y || h.Rect.Y >= canvas.Y+canvas.H {
		return
	}
	b.hits = append(b.hits, h)
}

// HitTest returns the region under (x, y) from the last Render. Rows drawn
// later paint over earlier ones when zoomed out, so the last hit wins.
func (b *Board) HitTest(x, y int) (Hit, bool) {
	for i := len(b.hits) - 1; i >= 0; i-- {
		if b.hits[i].Rect.Contains(x, y) {
			return b.hits[i], true
		}
	}
	return Hit{}, false
}

// Find fuzzy-matches query against every node label, expanded or not,
// and highlights the matches. Results are ordered best match first.
func (b *Board) Find(query string) []model.Path {
	b.ClearMatches()
	if query == "" {
		return nil
	}

	var paths []model.Path
	var labels []string
	b.tree.Walk(func(p model.Path, _ int, n *model.Node) bool {
		paths = append(paths, p)
		labels = append(labels, n.Text())
		return true
	})

	ranks := fuzzy.RankFindFold(query, labels)
	sort.Stable(ranks)

	result := make([]model.Path, 0, len(ranks))
	for _, r := range ranks {
		p := paths[r.OriginalIndex]
		b.matches[p.String()] = true
		result = append(result, p)
	}
	return result
}

// ClearMatches removes :find highlighting
func (b *Board) ClearMatches() {
	b.matches = map[string]bool{}
}

// IsMatch reports whether the node at p is highlighted
func (b *Board) IsMatch(p model.Path) bool {
	return b.matches[p.String()]
}
