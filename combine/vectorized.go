package combine

import "github.com/ajroetker/go-highway/hwy"

// Vectorized expresses the recurrence as three aligned views
// (left = layer[:n-1], right = layer[1:n], dst = rest[:n-1]) of equal length
// and folds them one hwy vector at a time: dst += Max(left, right).
// A scalar tail finishes positions that do not fill a vector.
// Results match Scalar exactly; uint32 lanes wrap the same way scalar adds do.
type Vectorized struct{}

// Name implements Named.
func (Vectorized) Name() string { return NameVectorized }

// Combine implements Combiner.
func (Vectorized) Combine(layer, rest []uint32, width int) {
	if width < 2 {
		return
	}
	m := width - 1
	left := layer[:m:m]
	right := layer[1:width:width]
	dst := rest[:m:m]

	lanes := hwy.MaxLanes[uint32]()
	var i int
	for ; i+lanes <= m; i += lanes {
		best := hwy.Max(hwy.Load(left[i:]), hwy.Load(right[i:]))
		hwy.Store(hwy.Add(hwy.Load(dst[i:]), best), dst[i:])
	}
	accumulate(left[i:], right[i:], dst[i:])
}
