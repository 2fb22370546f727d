package main

import (
	"log"
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/tetra"
	"github.com/plus3/blockfall/tetra/debugui"
	"github.com/plus3/blockfall/tetra/session"
)

// TickRate is ebiten's default update rate.
const TickRate = time.Second / 60

// Game implements ebiten.Game on top of a tetra session.
type Game struct {
	session *session.Session

	// Set only when the ImGui overlay is enabled.
	backend   *ebitenbackend.EbitenBackend
	overlay   *debugui.Overlay
	inspector *debugui.BoardInspector
	perf      *debugui.PerformanceStats
	frames    *debugui.FrameTimer
}

func NewGame(s *session.Session) *Game {
	g := &Game{session: s}
	s.Subscribe(logEvent)
	return g
}

// EnableDebug attaches the ImGui inspector windows drawn through backend.
func (g *Game) EnableDebug(backend *ebitenbackend.EbitenBackend) {
	g.backend = backend
	g.overlay = debugui.NewOverlay()
	g.inspector = debugui.NewBoardInspector(g.session, 32)
	g.perf = debugui.NewPerformanceStats(g.session, 120)
	g.frames = debugui.NewFrameTimer()

	g.overlay.Add(g.inspector.Render)
	g.overlay.Add(g.perf.Render)
}

func restart(b *tetra.Board) {
	b.Reset()
	if err := b.Spawn(); err != nil {
		log.Printf("restart: %v", err)
		return
	}
	log.Println("restarted")
}

func logEvent(e tetra.Event) {
	switch e.Type {
	case tetra.EventLinesCleared:
		log.Printf("cleared %d rows %v", e.Count, e.Rows)
	case tetra.EventGameOver:
		log.Printf("game over: %s blocked at %v", e.Kind, e.Cells)
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.backend != nil {
		g.backend.BeginFrame()
		defer g.backend.EndFrame()

		g.perf.Sample(g.frames.Delta())
		g.overlay.Render()
	}

	if g.overlay != nil && g.overlay.Input().WantCaptureKeyboard {
		g.advance(false, nil)
		return nil
	}
	g.advance(inpututil.IsKeyJustPressed(ebiten.KeyR), pollCommands())
	return nil
}

// advance feeds one frame of player input to the session and ticks it.
// While the inspector is paused, input is dropped and only deferred work runs.
func (g *Game) advance(restartPressed bool, cmds []tetra.Command) {
	if g.inspector != nil && g.inspector.Paused {
		g.session.Flush()
		return
	}

	if restartPressed {
		g.session.Defer(restart)
	}
	g.session.Push(cmds...)
	g.session.Once(TickRate)
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawBoard(screen, g.session.Board())

	if g.backend != nil {
		g.backend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
