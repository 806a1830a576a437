package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlsPanel renders the left-side controls panel with overlay toggles.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  false,
	}
}

// SetVisible shows or hides the panel.
func (c *ControlsPanel) SetVisible(visible bool) {
	c.visible = visible
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Draw renders the controls panel.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry) int32 {
	if !c.visible {
		return c.y
	}

	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	// Calculate panel height based on content
	categories := overlays.Categories()
	totalItems := 0
	for _, cat := range categories {
		totalItems += len(overlays.ByCategory(cat)) + 1 // +1 for category header
	}
	panelHeight := int32(totalItems)*lineHeight + padding*3 + lineHeight // Extra for title

	// Draw panel background
	r.DrawPanel(c.x, c.y, c.width, panelHeight)

	y := c.y + padding

	// Title
	rl.DrawText("Overlays", c.x+padding, y, 16, rl.White)
	y += lineHeight + 4

	// Draw overlays by category
	for _, category := range categories {
		// Category header
		catLabel := categoryLabel(category)
		rl.DrawText(catLabel, c.x+padding, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
		y += lineHeight

		// Overlays in this category
		for _, desc := range overlays.ByCategory(category) {
			enabled := overlays.IsEnabled(desc.ID)
			c.drawToggle(c.x+padding, y, desc, enabled, c.width-padding*2)
			y += lineHeight
		}

		y += 4 // Gap between categories
	}

	return y
}

// drawToggle draws a single overlay toggle line.
func (c *ControlsPanel) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) {
	r := c.renderer

	// Status indicator
	statusColor := rl.Color{R: 80, G: 80, B: 80, A: 255}
	if enabled {
		statusColor = rl.Color{R: 100, G: 200, B: 100, A: 255}
	}
	rl.DrawRectangle(x, y+2, 8, 8, statusColor)

	// Name
	nameColor := r.Theme.LabelColor
	if enabled {
		nameColor = rl.White
	}
	rl.DrawText(desc.Name, x+14, y, r.Theme.FontSize, nameColor)

	// Key binding (right aligned)
	if desc.KeyLabel != "" {
		keyText := fmt.Sprintf("[%s]", desc.KeyLabel)
		keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
		rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, rl.Color{R: 150, G: 150, B: 150, A: 255})
	}
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "visual":
		return "Visual"
	case "debug":
		return "Debug"
	default:
		return cat
	}
}

// SteeringState is the live-editable subset of the flock settings.
type SteeringState struct {
	Separation       bool
	Dynamic          bool
	TargetForce      float32
	SeparationWeight float32
	MaxForce         float32
	DensityLimit     int32
}

const steeringPanelHeight = 210

// SteeringPanel edits SteeringState with raygui widgets.
type SteeringPanel struct {
	renderer *Renderer
	x, y     float32
	width    float32
	visible  bool
}

// NewSteeringPanel creates a steering panel anchored at (x, y).
func NewSteeringPanel(x, y, width float32) *SteeringPanel {
	return &SteeringPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		visible:  true,
	}
}

// SetPosition moves the panel.
func (s *SteeringPanel) SetPosition(x, y float32) {
	s.x, s.y = x, y
}

// Toggle switches panel visibility.
func (s *SteeringPanel) Toggle() bool {
	s.visible = !s.visible
	return s.visible
}

// Contains reports whether screen position (x, y) falls on the visible panel.
func (s *SteeringPanel) Contains(x, y float32) bool {
	return s.visible && x >= s.x && x <= s.x+s.width && y >= s.y && y <= s.y+steeringPanelHeight
}

// Draw renders the panel and returns the edited state and whether anything changed.
func (s *SteeringPanel) Draw(st SteeringState) (SteeringState, bool) {
	if !s.visible {
		return st, false
	}

	r := s.renderer
	pad := float32(r.Theme.Padding)
	r.DrawPanel(int32(s.x), int32(s.y), int32(s.width), steeringPanelHeight)

	out := st
	x := s.x + pad
	y := s.y + pad
	inner := s.width - pad*2

	rl.DrawText("Steering", int32(x), int32(y), 16, rl.White)
	y += 24

	out.Separation = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 14, Height: 14}, "Separation", st.Separation)
	y += 22
	out.Dynamic = gui.CheckBox(rl.Rectangle{X: x, Y: y, Width: 14, Height: 14}, "Density tuning", st.Dynamic)
	y += 26

	slider := func(label string, value, lo, hi float32) float32 {
		rl.DrawText(fmt.Sprintf("%s: %.2f", label, value), int32(x), int32(y), r.Theme.FontSize, r.Theme.LabelColor)
		y += 14
		v := gui.SliderBar(rl.Rectangle{X: x, Y: y, Width: inner, Height: 12}, "", "", value, lo, hi)
		y += 20
		return v
	}

	out.TargetForce = slider("Target force", st.TargetForce, 0, 3)
	out.SeparationWeight = slider("Separation weight", st.SeparationWeight, 0, 4)
	out.MaxForce = slider("Max force", st.MaxForce, 0.05, 2)
	out.DensityLimit = int32(slider("Density limit", float32(st.DensityLimit), 1, 20))

	return out, out != st
}
