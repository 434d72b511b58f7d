package combine

// Scalar is the reference strategy: one comparison and one add per position,
// in index order.
type Scalar struct{}

// Name implements Named.
func (Scalar) Name() string { return NameScalar }

// Combine implements Combiner.
func (Scalar) Combine(layer, rest []uint32, width int) {
	for i := 0; i < width-1; i++ {
		m := layer[i]
		if layer[i+1] > m {
			m = layer[i+1]
		}
		rest[i] += m
	}
}
