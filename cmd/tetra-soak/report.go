package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Seed     uint64
	Bag      bool
	DT       time.Duration
	Actions  int
	Width    int
	Height   int

	// Results
	// Commands counts every pushed command, including ones the board rejected.
	Commands       int64
	TotalTicks     int64
	TotalTime      time.Duration
	Locks          int
	Lines          int
	GameOvers      int
	TickTime       Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	for _, sample := range s.Samples {
		total += sample
	}
	s.Min = slices.Min(s.Samples)
	s.Max = slices.Max(s.Samples)
	s.Avg = total / time.Duration(len(s.Samples))
}

// LinesPerGame is the mean number of cleared rows per finished or running game.
func (r *Report) LinesPerGame() float64 {
	return float64(r.Lines) / float64(r.GameOvers+1)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Soak Report

## Run Configuration
- **Run Duration:** {{.Duration}}
- **Field:** {{.Width}}x{{.Height}}
- **Seed:** {{.Seed}} ({{if .Bag}}7-bag{{else}}uniform{{end}})
- **Tick:** {{.DT}}
- **Max Commands per Tick:** {{.Actions}}

## Game Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Run Time:** {{.TotalTime}}
- **Commands Pushed:** {{.Commands}}
- **Pieces Locked:** {{.Locks}}
- **Lines Cleared:** {{.Lines}}
- **Game Overs:** {{.GameOvers}}
- **Lines per Game:** {{printf "%.2f" .LinesPerGame}}

## Tick Timings
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}} bytes
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
