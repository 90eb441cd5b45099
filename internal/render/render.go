// Package render compiles the editor state into a flat draw command list a
// Canvas2D frontend can execute without knowing the document model.
package render

import (
	"encoding/json"

	"github.com/inamate/sceneedit/internal/document"
	"github.com/inamate/sceneedit/internal/editor"
	"github.com/inamate/sceneedit/internal/geometry"
)

const (
	OpPath      = "path"
	OpSelection = "selection"
	OpGuide     = "guide"

	SelectionStroke = "#38bdf8"
	GuideStroke     = "#64748b"
)

// PathCommand is one segment: the verb followed by its coordinates.
type PathCommand []any

// DrawCommand represents a single drawing operation for the frontend to execute.
type DrawCommand struct {
	Op          string        `json:"op"`                    // "path", "selection" or "guide"
	ObjectID    string        `json:"objectId,omitempty"`    // For hit correlation
	Transform   []float64     `json:"transform,omitempty"`   // [a, b, c, d, e, f] affine matrix
	Path        []PathCommand `json:"path,omitempty"`        // Path data
	Fill        string        `json:"fill,omitempty"`        // Fill color
	Stroke      string        `json:"stroke,omitempty"`      // Stroke color
	StrokeWidth float64       `json:"strokeWidth,omitempty"` // Stroke width in screen pixels
}

// Scene is everything visible in one frame.
type Scene struct {
	Document  document.Model
	Viewport  editor.ViewportState
	Selection []document.NodeID
	// Guide is the in-progress draw rectangle, if any.
	Guide *geometry.Rect
}

// Compile generates the draw command buffer for scene. Commands are in
// painter's order (back to front); overlays come after all nodes.
func Compile(scene Scene) []DrawCommand {
	view := scene.Viewport.Transform()
	commands := make([]DrawCommand, 0, len(scene.Document.Nodes)+len(scene.Selection)+1)

	for _, n := range scene.Document.Nodes {
		cmd := DrawCommand{
			Op:        OpPath,
			ObjectID:  n.ID,
			Transform: nodeTransform(view, n).ToSlice(),
			Path:      rectPath(n.Width, n.Height),
			Fill:      n.Fill,
			Stroke:    n.Stroke,
		}
		if n.Stroke != "" {
			cmd.StrokeWidth = 1
		}
		commands = append(commands, cmd)
	}

	for _, id := range scene.Selection {
		n, ok := scene.Document.NodeByID(id)
		if !ok {
			continue
		}
		commands = append(commands, DrawCommand{
			Op:          OpSelection,
			ObjectID:    n.ID,
			Transform:   nodeTransform(view, n).ToSlice(),
			Path:        rectPath(n.Width, n.Height),
			Stroke:      SelectionStroke,
			StrokeWidth: 2,
		})
	}

	if g := scene.Guide; g != nil {
		commands = append(commands, DrawCommand{
			Op:          OpGuide,
			Transform:   view.Multiply(geometry.Translate(g.X, g.Y)).ToSlice(),
			Path:        rectPath(g.Width, g.Height),
			Stroke:      GuideStroke,
			StrokeWidth: 1,
		})
	}

	return commands
}

// nodeTransform places a node: viewport, then position, then rotation about
// the node's top-left corner.
func nodeTransform(view geometry.Matrix2D, n document.SceneNode) geometry.Matrix2D {
	local := geometry.Translate(n.X, n.Y)
	if n.Rotation != 0 {
		local = local.Multiply(geometry.RotateDegrees(n.Rotation))
	}
	return view.Multiply(local)
}

// rectPath generates path commands for a rectangle anchored at the origin.
func rectPath(w, h float64) []PathCommand {
	return []PathCommand{
		{"M", 0.0, 0.0},
		{"L", w, 0.0},
		{"L", w, h},
		{"L", 0.0, h},
		{"Z"},
	}
}

// ToJSON serializes draw commands to JSON.
func ToJSON(commands []DrawCommand) (string, error) {
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}

// SessionScene captures the current frame of a session.
func SessionScene(s *editor.Session) Scene {
	scene := Scene{
		Document:  s.Document().State(),
		Viewport:  s.Viewport().State(),
		Selection: s.Selection().IDs(),
	}
	if guide, ok := s.DrawTool().Preview(); ok {
		scene.Guide = &guide
	}
	return scene
}
