package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetra"
	"github.com/plus3/blockfall/tetra/session"
)

type rowFill struct {
	Row    int
	Filled int
}

// fillByRow counts locked cells per row, top row first. Empty rows are skipped.
func fillByRow(view tetra.GridView) []rowFill {
	b := view.Bounds()
	counts := make([]int, b.Height())
	for _, c := range view.Occupied() {
		counts[c.Pos.Y-b.Min.Y]++
	}

	var rows []rowFill
	for i := len(counts) - 1; i >= 0; i-- {
		if counts[i] > 0 {
			rows = append(rows, rowFill{Row: b.Min.Y + i, Filled: counts[i]})
		}
	}
	return rows
}

// BoardInspector shows the board state of a session and offers reset and
// pause controls.
type BoardInspector struct {
	session *session.Session
	log     *EventLog

	// Paused is toggled from the window. The host decides what pausing means.
	Paused bool
}

// NewBoardInspector subscribes to s and keeps the last logSize events.
func NewBoardInspector(s *session.Session, logSize int) *BoardInspector {
	bi := &BoardInspector{
		session: s,
		log:     NewEventLog(logSize),
	}
	s.Subscribe(bi.log.Add)
	return bi
}

// Log returns the event log fed by the session.
func (bi *BoardInspector) Log() *EventLog {
	return bi.log
}

func (bi *BoardInspector) Render() {
	if !imgui.BeginV("Board Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	board := bi.session.Board()
	bounds := board.Bounds()

	imgui.Text(fmt.Sprintf("Field: %dx%d %s", bounds.Width(), bounds.Height(), bounds))
	imgui.Text(fmt.Sprintf("Locked: %d  Lines: %d", board.Locked(), board.Lines()))
	imgui.Text(fmt.Sprintf("Next: %s", board.Next()))
	if board.Over() {
		imgui.Text("GAME OVER")
	}

	imgui.Checkbox("Paused", &bi.Paused)
	imgui.SameLine()
	if imgui.Button("Reset") {
		bi.session.Defer(func(b *tetra.Board) {
			b.Reset()
			_ = b.Spawn()
		})
	}

	imgui.Separator()
	if piece, ok := board.Active(); ok {
		imgui.Text(fmt.Sprintf("Active: %s at %s rot %d", piece.Kind(), piece.Anchor(), piece.Rotation()))
		imgui.Text(fmt.Sprintf("Step in: %s  Lock timer: %s", piece.StepTimer(), piece.LockTimer()))
		if ghost, ok := board.Ghost(); ok {
			imgui.Text(fmt.Sprintf("Ghost: %v", ghost))
		}
	} else {
		imgui.Text("Active: none")
	}

	if imgui.TreeNodeStr("Rows") {
		bi.renderRows(board.Grid())
		imgui.TreePop()
	}

	if imgui.TreeNodeStr(fmt.Sprintf("Events (%d)", bi.log.Total())) {
		for _, e := range bi.log.Entries() {
			imgui.BulletText(describeEvent(e))
		}
		imgui.TreePop()
	}

	imgui.End()
}

func (bi *BoardInspector) renderRows(view tetra.GridView) {
	width := view.Bounds().Width()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if !imgui.BeginTableV("RowTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("Row")
	imgui.TableSetupColumn("Filled")
	imgui.TableSetupColumn("Fill")
	imgui.TableHeadersRow()

	for _, r := range fillByRow(view) {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", r.Row))
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d / %d", r.Filled, width))
		imgui.TableNextColumn()

		barWidth := float32(r.Filled) / float32(width) * 100
		drawList := imgui.WindowDrawList()
		pos := imgui.CursorScreenPos()
		color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
		drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
	}

	imgui.EndTable()
}
