package vmath

// ScriptedSource replays fixed values, cycling when exhausted
// Intn maps the next float into [0, n)
type ScriptedSource struct {
	Values []float64
	pos    int
}

// NewScripted creates a source over values; an empty list always yields 0
func NewScripted(values ...float64) *ScriptedSource {
	return &ScriptedSource{Values: values}
}

func (s *ScriptedSource) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.pos%len(s.Values)]
	s.pos++
	return v
}

func (s *ScriptedSource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
