package lorentz

// Vector is a space-time point. Lengths and c*t share the same unit.
type Vector struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
	T float64 `json:"t" yaml:"t"`
}
