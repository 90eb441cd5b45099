package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inamate/sceneedit/internal/document"
	"github.com/inamate/sceneedit/internal/editor"
	"github.com/inamate/sceneedit/internal/geometry"
)

func TestCompilePainterOrder(t *testing.T) {
	doc := document.NewModel(
		document.SceneNode{ID: "a", Type: document.NodeTypeRect, X: 10, Y: 20, Width: 30, Height: 40, Fill: "#111"},
		document.SceneNode{ID: "b", Type: document.NodeTypeRect, Width: 5, Height: 5, Fill: "#222", Stroke: "#333"},
	)

	commands := Compile(Scene{
		Document:  doc,
		Viewport:  editor.ViewportState{Zoom: 2, PanX: 100, PanY: 0},
		Selection: []document.NodeID{"a", "missing"},
	})
	require.Len(t, commands, 3)

	assert.Equal(t, OpPath, commands[0].Op)
	assert.Equal(t, "a", commands[0].ObjectID)
	assert.Equal(t, []float64{2, 0, 0, 2, 120, 40}, commands[0].Transform)
	assert.Equal(t, PathCommand{"L", 30.0, 40.0}, commands[0].Path[2])
	assert.Zero(t, commands[0].StrokeWidth)

	assert.Equal(t, "b", commands[1].ObjectID)
	assert.Equal(t, 1.0, commands[1].StrokeWidth)

	assert.Equal(t, OpSelection, commands[2].Op)
	assert.Equal(t, "a", commands[2].ObjectID)
	assert.Equal(t, SelectionStroke, commands[2].Stroke)
}

func TestCompileRotation(t *testing.T) {
	doc := document.NewModel(document.SceneNode{ID: "r", Type: document.NodeTypeRect, X: 10, Y: 10, Width: 4, Height: 2, Rotation: 90, Fill: "#000"})

	commands := Compile(Scene{Document: doc, Viewport: editor.ViewportState{Zoom: 1}})
	require.Len(t, commands, 1)

	m := geometry.Matrix2D(commands[0].Transform)
	corner := m.Apply(geometry.Point{X: 4, Y: 0})
	assert.InDelta(t, 10, corner.X, 1e-9)
	assert.InDelta(t, 14, corner.Y, 1e-9)
}

func TestSessionSceneIncludesGuide(t *testing.T) {
	s := editor.NewSession(document.NewSampleDocument(), editor.DefaultOptions())
	s.Selection().SelectOnly("rect-1")
	s.DrawTool().Begin(geometry.Point{X: 50, Y: 50})
	s.DrawTool().Update(geometry.Point{X: 10, Y: 20})

	commands := Compile(SessionScene(s))
	require.Len(t, commands, 3)
	assert.Equal(t, OpGuide, commands[2].Op)
	assert.Equal(t, []float64{1, 0, 0, 1, 10, 20}, commands[2].Transform)

	out, err := ToJSON(commands)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "rect-1", decoded[0]["objectId"])
	assert.NotContains(t, decoded[2], "objectId")
}

func TestCompileEmpty(t *testing.T) {
	out, err := ToJSON(Compile(Scene{Viewport: editor.ViewportState{Zoom: 1}}))
	require.NoError(t, err)
	assert.Equal(t, "[]", out)
}
