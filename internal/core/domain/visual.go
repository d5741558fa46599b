package domain

// VisualParams are the derived parameters handed to a rendering collaborator.
// They are a pure function of an embedding and an optional emotion phrase.
type VisualParams struct {
	PrimaryHue float64 `json:"primary_hue"`
	Saturation float64 `json:"saturation"`
	Value      float64 `json:"value"`
	Complexity float64 `json:"complexity"`
	Symmetry   float64 `json:"symmetry"`
	BlurAmount float64 `json:"blur_amount"`
	NumShapes  int     `json:"num_shapes"`
	Emotion    string  `json:"emotion,omitempty"`
}
