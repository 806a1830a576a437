// Flow field preview tool - interactive view of the target lattice, the BFS
// depth and the flow vectors for a procedural shape.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"
	"log/slog"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/flock/renderer"
	"github.com/pthm-cable/flock/systems"
	"github.com/pthm-cable/flock/targets"
)

const (
	windowWidth  = 1000
	windowHeight = 620
	previewW     = 640
	previewH     = 480
	panelWidth   = windowWidth - previewW - 40

	worldW = 800
	worldH = 600
)

var shapes = []string{targets.ShapeRing, targets.ShapeDisc, targets.ShapeOrbit}

// FieldParams holds the values the sliders edit.
type FieldParams struct {
	Shape      int
	Frame      int
	CellSize   float32
	SampleRate int
}

// previewConfig is the YAML snippet copied to the clipboard.
type previewConfig struct {
	Grid struct {
		CellSize float32 `yaml:"cell_size"`
	} `yaml:"grid"`
	Targets struct {
		Source     string `yaml:"source"`
		Shape      string `yaml:"shape"`
		SampleRate int    `yaml:"sample_rate"`
	} `yaml:"targets"`
}

func defaultParams() FieldParams {
	return FieldParams{Shape: 0, Frame: 0, CellSize: 20, SampleRate: 4}
}

// preview is the regenerated state for one set of params.
type preview struct {
	grid   *systems.Grid
	flow   *systems.FlowField
	points []float32
	depth  int32
}

func build(p FieldParams, dst []float32) (*preview, error) {
	src, err := targets.NewShapeSource(shapes[p.Shape], worldW, worldH, p.SampleRate, 1)
	if err != nil {
		return nil, err
	}
	points := src.Generate(int64(p.Frame), dst)

	grid := systems.NewGrid(worldW, worldH, p.CellSize)
	flow := systems.NewFlowField(grid)
	flow.Rebuild(points)

	var depth int32
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			depth = max(depth, grid.Cell(col, row).Dist)
		}
	}
	return &preview{grid: grid, flow: flow, points: points, depth: depth}, nil
}

func yamlSnippet(p FieldParams) string {
	var c previewConfig
	c.Grid.CellSize = p.CellSize
	c.Targets.Source = "shapes"
	c.Targets.Shape = shapes[p.Shape]
	c.Targets.SampleRate = p.SampleRate
	out, err := yaml.Marshal(&c)
	if err != nil {
		return err.Error()
	}
	return string(out)
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	rl.InitWindow(windowWidth, windowHeight, "Flow Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams()
	field := renderer.NewFieldRenderer()
	var points []float32
	var view *preview
	animating := false
	showFlow := true
	showDepth := true
	needsRegen := true

	zoom := float32(previewW) / worldW
	cam := rl.Camera2D{Offset: rl.Vector2{X: 10, Y: 10}, Zoom: zoom}

	for !rl.WindowShouldClose() {
		if animating {
			params.Frame = (params.Frame + 1) % 600
			needsRegen = true
		}

		if needsRegen {
			v, err := build(params, points)
			if err != nil {
				slog.Error("failed to build preview", "error", err)
				return
			}
			view = v
			points = v.points
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		rl.BeginScissorMode(10, 10, previewW, previewH)
		rl.BeginMode2D(cam)
		if showDepth {
			field.DrawDistance(view.grid, view.depth)
		}
		field.DrawOccupancy(view.grid, 0)
		if showFlow {
			field.DrawFlow(view.grid)
		}
		field.DrawTargets(view.points)
		rl.EndMode2D()
		rl.EndScissorMode()
		rl.DrawRectangleLines(10, 10, previewW, previewH, rl.DarkGray)

		statsY := int32(previewH + 25)
		rl.DrawText(fmt.Sprintf("Points: %d  Occupied cells: %d  Grid: %dx%d  Max depth: %d",
			view.flow.MappedPoints(), view.flow.OccupiedCells(), view.grid.Cols(), view.grid.Rows(), view.depth),
			15, statsY, 16, rl.LightGray)
		rl.DrawText(fmt.Sprintf("Frame: %d", params.Frame), 15, statsY+20, 16, rl.LightGray)

		panelX := float32(previewW + 30)
		panelY := float32(10)

		rl.DrawText("Flow Field Parameters", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35

		for i, name := range shapes {
			r := rl.Rectangle{X: panelX + float32(i)*95, Y: panelY, Width: 85, Height: 26}
			label := name
			if i == params.Shape {
				label = "[" + name + "]"
			}
			if gui.Button(r, label) && i != params.Shape {
				params.Shape = i
				needsRegen = true
			}
		}
		panelY += 45

		rl.DrawText("Cell size (world units)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newCell := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"8", "60",
			params.CellSize, 8, 60,
		)
		rl.DrawText(fmt.Sprintf("%.0f", params.CellSize), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.LightGray)
		if float32(int(newCell)) != params.CellSize {
			params.CellSize = float32(int(newCell))
			needsRegen = true
		}
		panelY += 35

		rl.DrawText("Sample rate (pixels per lattice step)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newRate := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"1", "16",
			float32(params.SampleRate), 1, 16,
		)
		rl.DrawText(fmt.Sprintf("%d", params.SampleRate), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.LightGray)
		if int(newRate) != params.SampleRate {
			params.SampleRate = int(newRate)
			needsRegen = true
		}
		panelY += 35

		rl.DrawText("Frame", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newFrame := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "599",
			float32(params.Frame), 0, 599,
		)
		if int(newFrame) != params.Frame {
			params.Frame = int(newFrame)
			needsRegen = true
		}
		panelY += 35

		showDepth = gui.CheckBox(rl.Rectangle{X: panelX, Y: panelY, Width: 18, Height: 18}, "Depth", showDepth)
		showFlow = gui.CheckBox(rl.Rectangle{X: panelX + 120, Y: panelY, Width: 18, Height: 18}, "Flow", showFlow)
		panelY += 35

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams()
			animating = false
			needsRegen = true
		}
		panelY += 55

		snippet := yamlSnippet(params)
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.RayWhite)
		panelY += 25
		rl.DrawText(snippet, int32(panelX), int32(panelY), 14, rl.Gray)

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.DarkGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(snippet)
		}

		rl.EndDrawing()
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}
