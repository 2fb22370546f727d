package main

import (
	"flag"
	"log"
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/tetra"
	"github.com/plus3/blockfall/tetra/session"
)

func main() {
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Randomizer seed")
	bag := flag.Bool("bag", true, "Deal shapes from a shuffled 7-bag instead of uniformly")
	step := flag.Duration("step", time.Second, "Gravity step interval")
	lock := flag.Duration("lock", 500*time.Millisecond, "Lock delay for grounded pieces")
	width := flag.Int("width", 10, "Field width in cells")
	height := flag.Int("height", 20, "Field height in cells")
	debug := flag.Bool("debug", false, "Show the ImGui inspector windows")
	flag.Parse()

	cfg := tetra.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.StepDelay = *step
	cfg.LockDelay = *lock
	cfg.Spawn = spawnAnchor(*height)

	var rng tetra.Randomizer
	if *bag {
		rng = tetra.NewBag(*seed)
	} else {
		rng = tetra.NewUniform(*seed)
	}

	board, err := tetra.New(cfg, rng)
	if err != nil {
		log.Fatalf("Failed to create board: %v", err)
	}
	if err := board.Spawn(); err != nil {
		log.Fatalf("Failed to spawn first piece: %v", err)
	}

	log.Printf("Starting blockfall: %dx%d field, seed %d, step %s, lock %s", cfg.Width, cfg.Height, *seed, cfg.StepDelay, cfg.LockDelay)

	game := NewGame(session.New(board))

	w, h := screenSize(board.Bounds())
	if *debug {
		backend := ebitenbackend.NewEbitenBackend()
		backend.CreateWindow("Blockfall", w+400, h)
		imgui.CurrentIO().SetIniFilename("")
		game.EnableDebug(backend)
	} else {
		ebiten.SetWindowSize(w, h)
		ebiten.SetWindowTitle("Blockfall")
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("Game exited: %v", err)
	}
	log.Printf("Exited after %d pieces, %d lines", board.Locked(), board.Lines())
}

// spawnAnchor places new pieces left of centre with their upper cells on the
// field's top row, which is -(height/2) + height - 1.
func spawnAnchor(height int) tetra.Vec {
	return tetra.Vec{X: -1, Y: -(height / 2) + height - 2}
}
