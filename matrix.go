package nereval

// scoreMatrix is the full standard×test table of priority values. It is
// built eagerly, exactly once, and is read-only afterward, so recursive
// search branches share it without copying.
type scoreMatrix struct {
	rows  int
	cols  int
	cells []float64
}

func newScoreMatrix[T any](std, test []T, calc Calculator[T]) *scoreMatrix {
	m := &scoreMatrix{
		rows:  len(std),
		cols:  len(test),
		cells: make([]float64, len(std)*len(test)),
	}

	for i, s := range std {
		for j, t := range test {
			m.cells[i*m.cols+j] = calc.Priority(s, t)
		}
	}

	return m
}

func (m *scoreMatrix) at(i, j int) float64 {
	return m.cells[i*m.cols+j]
}
