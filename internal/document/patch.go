package document

// Patch is a partial node update. Nil fields are left untouched. There is no
// way to change a node's ID or Type through a patch.
type Patch struct {
	ParentID *NodeID  `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	Name     *string  `json:"name,omitempty" yaml:"name,omitempty"`
	X        *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y        *float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Width    *float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Height   *float64 `json:"height,omitempty" yaml:"height,omitempty"`
	Rotation *float64 `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	Fill     *string  `json:"fill,omitempty" yaml:"fill,omitempty"`
	Stroke   *string  `json:"stroke,omitempty" yaml:"stroke,omitempty"`
}

// Float returns a pointer to v, for building patches.
func Float(v float64) *float64 { return &v }

// String returns a pointer to v, for building patches.
func String(v string) *string { return &v }

// Position builds a patch moving a node to x, y.
func Position(x, y float64) Patch {
	return Patch{X: Float(x), Y: Float(y)}
}

// Frame builds a patch setting position and size.
func Frame(x, y, width, height float64) Patch {
	return Patch{X: Float(x), Y: Float(y), Width: Float(width), Height: Float(height)}
}

// Replace builds a patch naming every mutable field of n. Applying it to any
// node with the same id reproduces n exactly.
func Replace(n SceneNode) Patch {
	return Patch{
		ParentID: String(n.ParentID),
		Name:     String(n.Name),
		X:        Float(n.X),
		Y:        Float(n.Y),
		Width:    Float(n.Width),
		Height:   Float(n.Height),
		Rotation: Float(n.Rotation),
		Fill:     String(n.Fill),
		Stroke:   String(n.Stroke),
	}
}

// IsEmpty reports whether the patch names no field.
func (p Patch) IsEmpty() bool {
	return p == Patch{}
}

// Apply returns n with the patch merged in. Width and height never go below zero.
func (p Patch) Apply(n SceneNode) SceneNode {
	if p.ParentID != nil {
		n.ParentID = *p.ParentID
	}
	if p.Name != nil {
		n.Name = *p.Name
	}
	if p.X != nil {
		n.X = *p.X
	}
	if p.Y != nil {
		n.Y = *p.Y
	}
	if p.Width != nil {
		n.Width = max(0, *p.Width)
	}
	if p.Height != nil {
		n.Height = max(0, *p.Height)
	}
	if p.Rotation != nil {
		n.Rotation = *p.Rotation
	}
	if p.Fill != nil {
		n.Fill = *p.Fill
	}
	if p.Stroke != nil {
		n.Stroke = *p.Stroke
	}
	return n
}

// Capture returns, for every field named by p, the value n currently holds.
// Applying the result undoes applying p.
func (p Patch) Capture(n SceneNode) Patch {
	var prev Patch
	if p.ParentID != nil {
		prev.ParentID = String(n.ParentID)
	}
	if p.Name != nil {
		prev.Name = String(n.Name)
	}
	if p.X != nil {
		prev.X = Float(n.X)
	}
	if p.Y != nil {
		prev.Y = Float(n.Y)
	}
	if p.Width != nil {
		prev.Width = Float(n.Width)
	}
	if p.Height != nil {
		prev.Height = Float(n.Height)
	}
	if p.Rotation != nil {
		prev.Rotation = Float(n.Rotation)
	}
	if p.Fill != nil {
		prev.Fill = String(n.Fill)
	}
	if p.Stroke != nil {
		prev.Stroke = String(n.Stroke)
	}
	return prev
}

// Keys lists the json names of the fields the patch sets.
func (p Patch) Keys() []string {
	var keys []string
	add := func(set bool, key string) {
		if set {
			keys = append(keys, key)
		}
	}
	add(p.ParentID != nil, "parentId")
	add(p.Name != nil, "name")
	add(p.X != nil, "x")
	add(p.Y != nil, "y")
	add(p.Width != nil, "width")
	add(p.Height != nil, "height")
	add(p.Rotation != nil, "rotation")
	add(p.Fill != nil, "fill")
	add(p.Stroke != nil, "stroke")
	return keys
}
