package domain

// PriorityLevel is stored and serialized as its numeric value.
type PriorityLevel int

const (
	PriorityNone PriorityLevel = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

var priorityNames = [...]string{"None", "Low", "Medium", "High"}

func (p PriorityLevel) String() string {
	if !p.Valid() {
		return "Unknown"
	}
	return priorityNames[p]
}

func (p PriorityLevel) Valid() bool {
	return p >= PriorityNone && p <= PriorityHigh
}

// PriorityOption is a label/value pair for client-side rendering.
type PriorityOption struct {
	Value int    `json:"value"`
	Name  string `json:"name"`
}

// PriorityLevels lists every level in declaration order.
func PriorityLevels() []PriorityOption {
	out := make([]PriorityOption, 0, len(priorityNames))
	for i, name := range priorityNames {
		out = append(out, PriorityOption{Value: i, Name: name})
	}
	return out
}
