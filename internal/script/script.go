// Package script replays editor sessions described in YAML.
//
// A script lists steps that drive a session the same way a user would:
//
//	name: nested move
//	nodes:
//	  - {id: p, x: 100, y: 100, width: 50, height: 50}
//	  - {id: k, parentId: p, x: 110, y: 110, width: 10, height: 10}
//	steps:
//	  - {op: move, id: p, patch: {x: 150, y: 120}}
//	  - {op: undo}
package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inamate/sceneedit/internal/constraint"
	"github.com/inamate/sceneedit/internal/document"
	"github.com/inamate/sceneedit/internal/editor"
	"github.com/inamate/sceneedit/internal/geometry"
)

const (
	OpAdd            = "add"
	OpMove           = "move"
	OpRemove         = "remove"
	OpUndo           = "undo"
	OpRedo           = "redo"
	OpSelect         = "select"
	OpClearSelection = "clear-selection"
	OpZoom           = "zoom"
	OpPan            = "pan"
	OpDrag           = "drag"
)

var ErrInvalidStep = errors.New("invalid step")

// Script is a parsed replay script.
type Script struct {
	Name  string
	Nodes []document.SceneNode
	Steps []Step
}

// Step is one scripted action. Which fields apply depends on Op.
type Step struct {
	Op        string            `yaml:"op"`
	ID        string            `yaml:"id,omitempty"`
	Node      *NodeSpec         `yaml:"node,omitempty"`
	Patch     document.Patch    `yaml:"patch,omitempty"`
	IDs       []string          `yaml:"ids,omitempty"`
	At        geometry.Point    `yaml:"at,omitempty"`
	Direction int               `yaml:"direction,omitempty"`
	By        geometry.Point    `yaml:"by,omitempty"`
	Path      []geometry.Point  `yaml:"path,omitempty"`
	Zones     []constraint.Spec `yaml:"zones,omitempty"`
}

// yamlScript represents the YAML structure before conversion
type yamlScript struct {
	Name  string     `yaml:"name"`
	Nodes []NodeSpec `yaml:"nodes,omitempty"`
	Steps []Step     `yaml:"steps"`
}

// NodeSpec is a scene node in YAML. Type is always rect; name defaults to
// the id and fill to the editor default.
type NodeSpec struct {
	ID       string  `yaml:"id"`
	ParentID string  `yaml:"parentId,omitempty"`
	Name     string  `yaml:"name,omitempty"`
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Rotation float64 `yaml:"rotation,omitempty"`
	Fill     string  `yaml:"fill,omitempty"`
	Stroke   string  `yaml:"stroke,omitempty"`
}

func (n NodeSpec) Node() document.SceneNode {
	node := document.SceneNode{
		ID:       n.ID,
		Type:     document.NodeTypeRect,
		ParentID: n.ParentID,
		Name:     n.Name,
		X:        n.X,
		Y:        n.Y,
		Width:    n.Width,
		Height:   n.Height,
		Rotation: n.Rotation,
		Fill:     n.Fill,
		Stroke:   n.Stroke,
	}
	if node.Name == "" {
		node.Name = node.ID
	}
	if node.Fill == "" {
		node.Fill = editor.DefaultFill
	}
	return node
}

// Parse parses a script from YAML bytes.
func Parse(yamlBytes []byte) (*Script, error) {
	if len(yamlBytes) == 0 {
		return nil, errors.New("empty YAML input")
	}

	var ys yamlScript
	if err := yaml.Unmarshal(yamlBytes, &ys); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	s := &Script{Name: ys.Name, Steps: ys.Steps}
	for _, n := range ys.Nodes {
		s.Nodes = append(s.Nodes, n.Node())
	}
	if err := document.NewModel(s.Nodes...).Validate(); err != nil {
		return nil, fmt.Errorf("invalid nodes: %w", err)
	}

	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
	}
	return s, nil
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Parse(data)
}

func (st Step) validate() error {
	switch st.Op {
	case OpAdd:
		if st.Node == nil || st.Node.ID == "" {
			return fmt.Errorf("%w: add needs a node with an id", ErrInvalidStep)
		}
		if err := document.NewModel(st.Node.Node()).Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidStep, err)
		}
	case OpMove:
		if st.ID == "" || st.Patch.IsEmpty() {
			return fmt.Errorf("%w: move needs an id and a patch", ErrInvalidStep)
		}
	case OpRemove:
		if st.ID == "" {
			return fmt.Errorf("%w: remove needs an id", ErrInvalidStep)
		}
	case OpDrag:
		if st.ID == "" || len(st.Path) == 0 {
			return fmt.Errorf("%w: drag needs an id and a path", ErrInvalidStep)
		}
		if _, err := constraint.ParseSpecs(st.Zones); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidStep, err)
		}
	case OpZoom:
		if st.Direction == 0 {
			return fmt.Errorf("%w: zoom needs a direction", ErrInvalidStep)
		}
	case OpUndo, OpRedo, OpSelect, OpClearSelection, OpPan:
	default:
		return fmt.Errorf("%w: unknown op %q", ErrInvalidStep, st.Op)
	}
	return nil
}

// StepResult reports what one step did.
type StepResult struct {
	Index   int    `json:"index"`
	Op      string `json:"op"`
	Applied bool   `json:"applied"`
}

// Initial returns the document the script starts from. Scripts without
// nodes start from fallback.
func (s *Script) Initial(fallback document.Model) document.Model {
	if len(s.Nodes) == 0 {
		return fallback
	}
	return document.NewModel(s.Nodes...)
}

// Run plays every step against session. Steps that find nothing to do, such
// as undo on an empty history or an add whose id is taken, are reported as
// not applied.
func (s *Script) Run(session *editor.Session) []StepResult {
	results := make([]StepResult, 0, len(s.Steps))
	for i, st := range s.Steps {
		results = append(results, StepResult{
			Index:   i + 1,
			Op:      st.Op,
			Applied: st.apply(session),
		})
	}
	return results
}

func (st Step) apply(s *editor.Session) bool {
	switch st.Op {
	case OpAdd:
		node := st.Node.Node()
		if _, exists := s.Document().GetNodeByID(node.ID); exists {
			return false
		}
		_, ok := s.AddNode(node)
		return ok
	case OpMove:
		_, ok := s.MoveNode(st.ID, st.Patch)
		return ok
	case OpRemove:
		_, ok := s.RemoveNode(st.ID)
		return ok
	case OpUndo:
		return s.Undo()
	case OpRedo:
		return s.Redo()
	case OpSelect:
		s.Selection().Select(st.IDs...)
		return true
	case OpClearSelection:
		s.Selection().Clear()
		return true
	case OpZoom:
		s.Viewport().ZoomAt(st.At, st.Direction)
		return true
	case OpPan:
		s.Viewport().PanBy(st.By.X, st.By.Y)
		return true
	case OpDrag:
		// Validated in Parse.
		zones, _ := constraint.ParseSpecs(st.Zones)
		_, ok := s.DragNode(st.ID, st.Path, zones...)
		return ok
	}
	return false
}
