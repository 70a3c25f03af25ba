package core

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
	// ParamTypeDuration denotes time.Duration parameters.
	ParamTypeDuration ParamType = "duration"
)

// Parameter describes a single value exposed for display.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of values exposed by a match.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Flatten returns every parameter keyed by Key. Later groups win on
// duplicate keys.
func (s ParameterSnapshot) Flatten() map[string]Parameter {
	out := map[string]Parameter{}
	for _, group := range s.Groups {
		for _, param := range group.Params {
			out[param.Key] = param
		}
	}
	return out
}
