package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/tetra/session"
)

// PerformanceStats plots frame times and shows the session's update timings.
type PerformanceStats struct {
	session       *session.Session
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewPerformanceStats(s *session.Session, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		session:       s,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Sample records the duration of one host frame.
func (ps *PerformanceStats) Sample(dt time.Duration) {
	ps.frameHistory[ps.frameIndex] = float32(dt.Seconds() * 1000.0)
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

// AvgFrameTime returns the mean of the sampled frame times in milliseconds.
func (ps *PerformanceStats) AvgFrameTime() float32 {
	var avg float32
	for _, ft := range ps.frameHistory {
		avg += ft
	}
	return avg / float32(ps.historyFrames)
}

func (ps *PerformanceStats) Render() {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avgFrameTime := ps.AvgFrameTime()
	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	} else {
		imgui.Text("Avg Frame Time: -")
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Board Updates") {
		stats := ps.session.Stats()

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("UpdateStatsTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Metric")
			imgui.TableSetupColumn("Value")
			imgui.TableHeadersRow()

			rows := []struct {
				name  string
				value string
			}{
				{"Ticks", fmt.Sprintf("%d", stats.Ticks)},
				{"Commands", fmt.Sprintf("%d", stats.Commands)},
				{"Events", fmt.Sprintf("%d", stats.Events)},
				{"Min", stats.MinDuration.String()},
				{"Max", stats.MaxDuration.String()},
				{"Avg", stats.AvgDuration.String()},
				{"Last", stats.LastDuration.String()},
			}
			for _, row := range rows {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(row.name)
				imgui.TableNextColumn()
				imgui.Text(row.value)
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

// Delta returns the time since the previous call, or since creation.
func (ft *FrameTimer) Delta() time.Duration {
	now := time.Now()
	delta := now.Sub(ft.lastFrameTime)
	ft.lastFrameTime = now
	return delta
}
