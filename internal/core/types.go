package core

// Size describes the logical dimensions of the playing field in pixels.
type Size struct {
	W int
	H int
}

// ParameterProvider is implemented by anything that can describe its tunables.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}
