//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/inamate/sceneedit/internal/constraint"
	"github.com/inamate/sceneedit/internal/document"
	"github.com/inamate/sceneedit/internal/editor"
	"github.com/inamate/sceneedit/internal/geometry"
	"github.com/inamate/sceneedit/internal/render"
)

var session *editor.Session

func main() {
	session = editor.NewSession(document.NewSampleDocument(), editor.DefaultOptions())

	// Create the editor API object
	sceneEditor := js.Global().Get("Object").New()

	// --- Commands (frontend → editor) ---
	sceneEditor.Set("loadDocument", js.FuncOf(loadDocument))
	sceneEditor.Set("addNode", js.FuncOf(addNode))
	sceneEditor.Set("moveNode", js.FuncOf(moveNode))
	sceneEditor.Set("removeNode", js.FuncOf(removeNode))
	sceneEditor.Set("undo", js.FuncOf(undo))
	sceneEditor.Set("redo", js.FuncOf(redo))
	sceneEditor.Set("selectAt", js.FuncOf(selectAt))
	sceneEditor.Set("setSelection", js.FuncOf(setSelection))
	sceneEditor.Set("zoomAt", js.FuncOf(zoomAt))
	sceneEditor.Set("setPan", js.FuncOf(setPan))

	// --- Queries (frontend ← editor) ---
	sceneEditor.Set("render", js.FuncOf(renderScene))
	sceneEditor.Set("getDocument", js.FuncOf(getDocument))
	sceneEditor.Set("getHistory", js.FuncOf(getHistory))
	sceneEditor.Set("proposeDrag", js.FuncOf(proposeDrag))

	js.Global().Set("sceneEditor", sceneEditor)
	js.Global().Set("sceneEditorReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func errorResult(msg string) interface{} {
	return js.ValueOf(map[string]interface{}{"error": msg})
}

func jsonResult(v any) interface{} {
	data, err := json.Marshal(v)
	if err != nil {
		return errorResult(err.Error())
	}
	return js.ValueOf(string(data))
}

func opResult(op editor.Operation, ok bool) interface{} {
	if !ok {
		return js.ValueOf(map[string]interface{}{"ok": false})
	}
	return jsonResult(op)
}

// --- Command Handlers ---

func loadDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("missing document JSON")
	}

	var doc document.Model
	if err := json.Unmarshal([]byte(args[0].String()), &doc); err != nil {
		return errorResult(err.Error())
	}
	if err := session.LoadDocument(doc); err != nil {
		return errorResult(err.Error())
	}
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func addNode(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("missing node JSON")
	}

	var node document.SceneNode
	if err := json.Unmarshal([]byte(args[0].String()), &node); err != nil {
		return errorResult(err.Error())
	}
	if node.Type == "" {
		node.Type = document.NodeTypeRect
	}
	if err := document.NewModel(node).Validate(); err != nil {
		return errorResult(err.Error())
	}
	if _, exists := session.Document().GetNodeByID(node.ID); exists {
		return errorResult("node already exists: " + node.ID)
	}
	return opResult(session.AddNode(node))
}

func moveNode(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorResult("missing node id or patch JSON")
	}

	var patch document.Patch
	if err := json.Unmarshal([]byte(args[1].String()), &patch); err != nil {
		return errorResult(err.Error())
	}
	return opResult(session.MoveNode(args[0].String(), patch))
}

func removeNode(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("missing node id")
	}
	return opResult(session.RemoveNode(args[0].String()))
}

func undo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(session.Undo())
}

func redo(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(session.Redo())
}

// selectAt takes a pointer position in screen space.
func selectAt(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return js.ValueOf("")
	}
	p := geometry.Point{X: args[0].Float(), Y: args[1].Float()}
	return js.ValueOf(session.SelectAtScreen(p))
}

func setSelection(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 || args[0].Type() != js.TypeObject {
		session.Selection().Clear()
		return nil
	}

	arr := args[0]
	length := arr.Length()
	ids := make([]string, length)
	for i := 0; i < length; i++ {
		ids[i] = arr.Index(i).String()
	}
	session.Selection().Select(ids...)
	return nil
}

func zoomAt(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return nil
	}
	pointer := geometry.Point{X: args[0].Float(), Y: args[1].Float()}
	session.Viewport().ZoomAt(pointer, args[2].Int())
	return jsonResult(session.Viewport().State())
}

func setPan(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	session.Viewport().SetPan(args[0].Float(), args[1].Float())
	return nil
}

// --- Query Handlers ---

func renderScene(this js.Value, args []js.Value) interface{} {
	out, err := render.ToJSON(render.Compile(render.SessionScene(session)))
	if err != nil {
		return errorResult(err.Error())
	}
	return js.ValueOf(out)
}

func getDocument(this js.Value, args []js.Value) interface{} {
	return jsonResult(session.Document().State())
}

func getHistory(this js.Value, args []js.Value) interface{} {
	return jsonResult(session.History())
}

type proposeResult struct {
	Final geometry.Point `json:"final"`
	Moved bool           `json:"moved"`
}

// proposeDrag evaluates a drag path for a node against zone specs without
// committing it: proposeDrag(id, pathJSON, zonesJSON).
func proposeDrag(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorResult("missing node id or path JSON")
	}

	node, ok := session.Document().GetNodeByID(args[0].String())
	if !ok {
		return errorResult("node not found")
	}

	var path []geometry.Point
	if err := json.Unmarshal([]byte(args[1].String()), &path); err != nil {
		return errorResult(err.Error())
	}

	var zones []constraint.Zone
	if len(args) > 2 && args[2].Type() == js.TypeString {
		var err error
		if zones, err = constraint.DecodeSpecs([]byte(args[2].String())); err != nil {
			return errorResult(err.Error())
		}
	}

	drag := constraint.NewDrag(
		geometry.Point{X: node.X, Y: node.Y},
		geometry.Size{Width: node.Width, Height: node.Height},
		zones...,
	)
	for _, p := range path {
		drag.Propose(p)
	}
	return jsonResult(proposeResult{Final: drag.Position(), Moved: drag.Moved()})
}
