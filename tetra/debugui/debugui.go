// Package debugui provides Dear ImGui inspector windows for a running tetra session.
// Windows are plain render functions collected in an Overlay; the host calls
// Overlay.Render between the ImGui backend's BeginFrame and EndFrame.
package debugui

import "github.com/AllenDang/cimgui-go/imgui"

// Item holds a Dear ImGui render function.
type Item struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Hosts should ignore game input while the matching flag is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay renders its items in registration order.
type Overlay struct {
	items []Item
	input InputState
}

// NewOverlay creates an empty overlay.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Add registers a render function.
func (o *Overlay) Add(render func()) {
	o.items = append(o.items, Item{Render: render})
}

// Render refreshes the input capture state and runs every item.
func (o *Overlay) Render() {
	o.input.WantCaptureMouse = imgui.CurrentIO().WantCaptureMouse()
	o.input.WantCaptureKeyboard = imgui.CurrentIO().WantCaptureKeyboard()

	for _, item := range o.items {
		item.Render()
	}
}

// Input returns the capture state read by the last Render.
func (o *Overlay) Input() InputState {
	return o.input
}

// Len returns the number of registered items.
func (o *Overlay) Len() int {
	return len(o.items)
}
