package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/tetra"
	"github.com/plus3/blockfall/tetra/session"
)

type options struct {
	Seed    uint64
	Bag     bool
	DT      time.Duration
	Actions int
	Width   int
	Height  int
	// MaxTicks stops the run early when positive.
	MaxTicks int64
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	seed := flag.Uint64("seed", 1, "Seed for the shape randomizer and the command picker.")
	bag := flag.Bool("bag", false, "Deal shapes from a shuffled 7-bag instead of uniformly.")
	dt := flag.Duration("dt", 16*time.Millisecond, "Simulated time per tick.")
	actions := flag.Int("actions", 2, "Maximum random commands pushed per tick.")
	ticks := flag.Int64("ticks", 0, "Stop after this many ticks (0 runs for the full duration).")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting blockfall soak...")

	opts := options{
		Seed:     *seed,
		Bag:      *bag,
		DT:       *dt,
		Actions:  *actions,
		Width:    10,
		Height:   20,
		MaxTicks: *ticks,
	}

	log.Printf("Running soak for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	report, err := run(ctx, opts)
	if err != nil {
		log.Fatalf("Soak failed: %v", err)
	}
	report.Duration = *duration
	report.GCPauseMetrics = *gcPauseMetrics

	log.Println("Soak finished.")

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// run plays random commands against a fresh board until ctx is done or
// opts.MaxTicks is reached, restarting after every game over.
func run(ctx context.Context, opts options) (*Report, error) {
	cfg := tetra.DefaultConfig()
	cfg.Width = opts.Width
	cfg.Height = opts.Height

	var rng tetra.Randomizer
	if opts.Bag {
		rng = tetra.NewBag(opts.Seed)
	} else {
		rng = tetra.NewUniform(opts.Seed)
	}

	board, err := tetra.New(cfg, rng)
	if err != nil {
		return nil, err
	}
	if err := board.Spawn(); err != nil {
		return nil, err
	}

	report := &Report{
		Seed:    opts.Seed,
		Bag:     opts.Bag,
		DT:      opts.DT,
		Actions: opts.Actions,
		Width:   cfg.Width,
		Height:  cfg.Height,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	s := session.New(board)
	s.Subscribe(func(e tetra.Event) {
		switch e.Type {
		case tetra.EventLocked:
			report.Locks++
		case tetra.EventLinesCleared:
			report.Lines += e.Count
		case tetra.EventGameOver:
			report.GameOvers++
			s.Defer(func(b *tetra.Board) {
				b.Reset()
				_ = b.Spawn()
			})
		}
	})

	picker := rand.New(rand.NewPCG(opts.Seed, ^opts.Seed))
	commands := tetra.Commands()

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			if opts.MaxTicks > 0 && report.TotalTicks >= opts.MaxTicks {
				break Loop
			}

			if opts.Actions > 0 {
				for range picker.IntN(opts.Actions + 1) {
					s.Push(commands[picker.IntN(len(commands))])
				}
			}

			tickStart := time.Now()
			s.Once(opts.DT)
			report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))
			report.TotalTicks++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.Commands = s.Stats().Commands
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	return report, nil
}
