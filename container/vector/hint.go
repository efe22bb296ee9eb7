package vector

// CapacityHint carries the capacity to reserve when building a vector with
// FromHint.
type CapacityHint struct {
	capacity int
}

// Reserve returns a CapacityHint for n slots. Negative n is treated as 0.
func Reserve(n int) CapacityHint {
	if n < 0 {
		n = 0
	}
	return CapacityHint{capacity: n}
}

// Capacity returns the hinted capacity.
func (h CapacityHint) Capacity() int {
	return h.capacity
}
