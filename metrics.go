package nereval

// Metrics holds evaluation results for one entity type or for a whole
// document or corpus. TP is quality-weighted and therefore fractional.
type Metrics struct {
	TP        float64
	NStd      int
	NTest     int
	Precision float64
	Recall    float64
	F1        float64
}

// NewMetrics builds a Metrics value from a true-positive sum and the sizes
// of the standard and test pools. Zero denominators yield zero metrics.
func NewMetrics(tp float64, nStd, nTest int) Metrics {
	m := Metrics{
		TP:    tp,
		NStd:  nStd,
		NTest: nTest,
	}

	if nTest > 0 {
		m.Precision = tp / float64(nTest)
	}
	if nStd > 0 {
		m.Recall = tp / float64(nStd)
	}
	if tp > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}

	return m
}

// Add accumulates another result into this one and recomputes the derived
// values. Used when aggregating per-document metrics over a corpus.
func (m *Metrics) Add(other Metrics) {
	*m = NewMetrics(m.TP+other.TP, m.NStd+other.NStd, m.NTest+other.NTest)
}
