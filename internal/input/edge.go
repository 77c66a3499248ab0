package input

// Edge reports a rising edge of a held signal, once.
type Edge struct {
	last bool
}

func (e *Edge) Update(down bool) bool {
	pressed := down && !e.last
	e.last = down
	return pressed
}
