package ram

// StandardCapacities lists the module sizes, in GB, that random allocation
// picks from.
var StandardCapacities = []int{4, 8, 16, 32, 64}

// A Chooser picks a random index in [0, n).
type Chooser interface {
	IntN(n int) int
}

// RandomCapacity picks one of the standard capacities.
func RandomCapacity(c Chooser) int {
	return StandardCapacities[c.IntN(len(StandardCapacities))]
}
