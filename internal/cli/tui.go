package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/corkboard/corkboard/pkg/canvas"
	"github.com/corkboard/corkboard/pkg/settings"
)

// =============================================================================
// BoardModel - Interactive canvas board
// =============================================================================

// dragStep is the unsnapped drag distance per arrow key, in content units.
const dragStep = 10

// BoardModel is the bubbletea model for the interactive board. It is a thin
// consumer of the canvas core: key handlers translate directly into
// coordinator and viewport calls, and the view renders the visible subset.
type BoardModel struct {
	coord     *canvas.Coordinator
	policy    *settings.Static
	footprint canvas.FootprintFunc

	order    []string // selection order, oldest node first
	cursor   int      // index into order
	dragging bool
	last     canvas.OverflowResult

	width  int // terminal cells
	height int
}

// NewBoardModel creates a board around coord. policy is the static provider
// the snap toggle key mutates; footprint must be the same function the
// coordinator publishes with, so drawn rectangles match the culling math.
func NewBoardModel(coord *canvas.Coordinator, policy *settings.Static, footprint canvas.FootprintFunc) BoardModel {
	if footprint == nil {
		footprint = canvas.DefaultFootprint
	}
	return BoardModel{
		coord:     coord,
		policy:    policy,
		footprint: footprint,
		last:      coord.Viewport().Result(),
		width:     80,
		height:    24,
	}
}

func (m BoardModel) Init() tea.Cmd {
	return nil
}

func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m BoardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "n":
		m.addNode()

	case "x":
		m.removeSelected()

	case "tab":
		if len(m.order) > 0 {
			m.cursor = (m.cursor + 1) % len(m.order)
		}
	case "shift+tab":
		if len(m.order) > 0 {
			m.cursor = (m.cursor - 1 + len(m.order)) % len(m.order)
		}

	case "g", "enter":
		m.toggleDrag()

	case "up", "k":
		m.drag(0, -m.step())
	case "down", "j":
		m.drag(0, m.step())
	case "left", "h":
		m.drag(-m.step(), 0)
	case "right", "l":
		m.drag(m.step(), 0)

	case "+", "=":
		m.last = m.coord.Viewport().SetZoom(m.coord.Viewport().Zoom() + 0.1)
	case "-":
		m.last = m.coord.Viewport().SetZoom(m.coord.Viewport().Zoom() - 0.1)

	case "s":
		m.policy.ToggleSnap()
	}
	return m, nil
}

// addNode registers a new node near the middle of the canvas, staggered so
// consecutive nodes do not stack exactly.
func (m *BoardModel) addNode() {
	id := uuid.NewString()[:8]
	size := m.coord.Viewport().Size()
	offset := float64(len(m.order)) * 30
	m.last = m.coord.RegisterNode(id, canvas.Point{
		X: size.Width/4 + offset,
		Y: size.Height/4 + offset,
	})
	m.order = append(m.order, id)
	m.cursor = len(m.order) - 1
}

// removeSelected unregisters the selected node. An active drag of that node
// is ended first so the board never shows a drag with no selection.
func (m *BoardModel) removeSelected() {
	id, ok := m.selected()
	if !ok {
		return
	}
	if m.dragging {
		m.coord.EndDrag()
		m.dragging = false
	}
	m.last = m.coord.UnregisterNode(id)
	m.order = append(m.order[:m.cursor], m.order[m.cursor+1:]...)
	if m.cursor >= len(m.order) && m.cursor > 0 {
		m.cursor--
	}
}

// toggleDrag picks up or drops the selected node.
func (m *BoardModel) toggleDrag() {
	id, ok := m.selected()
	if !ok {
		return
	}
	if m.dragging {
		m.coord.EndDrag()
		m.dragging = false
		return
	}
	m.coord.StartDrag(id)
	m.dragging = true
}

// drag applies one arrow-key step to the active drag target. Arrow keys are
// ignored while no node is picked up.
func (m *BoardModel) drag(dx, dy float64) {
	if !m.dragging {
		return
	}
	id, ok := m.selected()
	if !ok {
		return
	}
	res, updated := m.coord.UpdateDrag(canvas.DragEvent{ID: id, DeltaX: dx, DeltaY: dy})
	if updated {
		m.last = res
	}
}

// step is the drag distance per key press: the grid size while snapping, so
// each press lands on the next grid line, otherwise a fixed step.
func (m BoardModel) step() float64 {
	if p := m.policy.GridPolicy(); p.SnapToGrid && p.GridSize > 0 {
		return p.GridSize
	}
	return dragStep
}

func (m BoardModel) selected() (string, bool) {
	if len(m.order) == 0 {
		return "", false
	}
	return m.order[m.cursor], true
}

// =============================================================================
// View
// =============================================================================

func (m BoardModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Corkboard"))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("n new  x delete  ⇥ select  g pick up/drop  ←↓↑→ drag  +/- zoom  s snap  q quit"))
	b.WriteString("\n")

	boardRows := m.height - 5
	if boardRows < 4 {
		boardRows = 4
	}
	b.WriteString(m.renderBoard(m.width, boardRows))
	b.WriteString("\n")
	b.WriteString(m.renderStatus())

	return b.String()
}

// renderBoard projects the visible nodes onto a cols x rows cell grid. The
// viewport's scroll compensation shifts negative-origin content into view,
// matching what a pixel renderer would do with the same snapshot.
func (m BoardModel) renderBoard(cols, rows int) string {
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = make([]rune, cols)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	size := m.coord.Viewport().Size()
	res := m.coord.Viewport().Result()
	zoom := res.Zoom
	scaleX := size.Width / float64(cols)
	scaleY := size.Height / float64(rows)

	selectedID, _ := m.selected()
	style := make(map[int]string) // row*cols+col -> style class

	for _, pos := range m.coord.Positions() {
		e := m.nodeElement(pos)

		// Project content space through zoom and scroll into cells.
		x0 := int((e.X*zoom + res.Scroll.X) / scaleX)
		y0 := int((e.Y*zoom + res.Scroll.Y) / scaleY)
		x1 := int(((e.X+e.Width)*zoom + res.Scroll.X) / scaleX)
		y1 := int(((e.Y+e.Height)*zoom + res.Scroll.Y) / scaleY)

		class := "node"
		if pos.ID == selectedID {
			class = "selected"
			if m.dragging {
				class = "dragging"
			}
		}
		label := []rune("▪ " + pos.ID)

		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				if y < 0 || y >= rows || x < 0 || x >= cols {
					continue
				}
				r := '·'
				if y == y0 && x-x0 < len(label) {
					r = label[x-x0]
				}
				grid[y][x] = r
				style[y*cols+x] = class
			}
		}
	}

	var b strings.Builder
	for y, row := range grid {
		for x, r := range row {
			s := string(r)
			switch style[y*cols+x] {
			case "selected":
				s = styleSelected.Render(s)
			case "dragging":
				s = styleDragging.Render(s)
			case "node":
				s = styleNode.Render(s)
			}
			b.WriteString(s)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// nodeElement rebuilds the footprint rectangle for one node, mirroring what
// the coordinator publishes into the viewport.
func (m BoardModel) nodeElement(pos canvas.NodePosition) canvas.Element {
	fp := m.footprint(pos.ID)
	return canvas.Element{X: pos.X, Y: pos.Y, Width: fp.Width, Height: fp.Height}
}

func (m BoardModel) renderStatus() string {
	res := m.coord.Viewport().Result()
	visible := len(m.coord.Viewport().VisibleElements())
	total := m.coord.Len()

	overflow := styleStatus.Render("fits")
	if res.Overflow {
		overflow = styleOverflow.Render(fmt.Sprintf("overflow scroll=(%.0f,%.0f)", res.Scroll.X, res.Scroll.Y))
	}

	snap := styleStatus.Render("snap off")
	if p := m.policy.GridPolicy(); p.SnapToGrid {
		snap = styleSnapOn.Render(fmt.Sprintf("snap %g", p.GridSize))
	}

	drag := ""
	if id, ok := m.selected(); ok {
		drag = styleStatus.Render(" · " + id)
		if m.dragging {
			drag = styleDragging.Render(" · dragging " + id)
		}
	}

	return fmt.Sprintf("%s · %s · %s · %s%s",
		styleStatus.Render(fmt.Sprintf("zoom %.1f", res.Zoom)),
		overflow,
		styleStatus.Render(fmt.Sprintf("%d/%d visible", visible, total)),
		snap,
		drag,
	)
}
