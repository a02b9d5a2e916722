package params

// DistanceTable is a directional pairwise distance lookup with an explicit
// default. The zero value has no declared default and fails validation.
type DistanceTable struct {
	def       float64
	declared  bool
	symmetric bool
	pairs     map[Pair]float64
}

// NewDistanceTable declares def as the distance for every pair not listed in
// pairs. With symmetric set, a missing (a,b) falls back to (b,a) before def.
func NewDistanceTable(def float64, pairs map[Pair]float64, symmetric bool) DistanceTable {
	cp := make(map[Pair]float64, len(pairs))
	for k, v := range pairs {
		cp[k] = v
	}

	return DistanceTable{def: def, declared: true, symmetric: symmetric, pairs: cp}
}

// Declared reports whether a default distance was declared.
func (d DistanceTable) Declared() bool { return d.declared }

// Default returns the declared default distance.
func (d DistanceTable) Default() float64 { return d.def }

// Symmetric reports whether reverse pairs are consulted.
func (d DistanceTable) Symmetric() bool { return d.symmetric }

// Len returns the number of explicit pairs.
func (d DistanceTable) Len() int { return len(d.pairs) }

// Lookup returns the distance from a to b.
func (d DistanceTable) Lookup(a, b string) float64 {
	if v, ok := d.pairs[Pair{A: a, B: b}]; ok {
		return v
	}
	if d.symmetric {
		if v, ok := d.pairs[Pair{A: b, B: a}]; ok {
			return v
		}
	}

	return d.def
}

func (d DistanceTable) clone() DistanceTable {
	cp := d
	cp.pairs = make(map[Pair]float64, len(d.pairs))
	for k, v := range d.pairs {
		cp.pairs[k] = v
	}

	return cp
}
