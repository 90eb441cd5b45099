package document

// NewSampleDocument returns the document a fresh editor opens with.
func NewSampleDocument() Model {
	return NewModel(SceneNode{
		ID:     "rect-1",
		Type:   NodeTypeRect,
		Name:   "Rectangle 1",
		X:      120,
		Y:      90,
		Width:  180,
		Height: 120,
		Fill:   "#0f172a",
		Stroke: "#38bdf8",
	})
}
