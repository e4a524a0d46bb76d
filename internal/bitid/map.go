package bitid

// TotalMap is a map from bit identifier to a value of type V whose
// lookup never fails: a missing key reads back Zero. Components that
// evaluate gates or expressions over a caller-supplied state rely on
// this totality instead of checking ok-values everywhere.
type TotalMap[V any] struct {
	Zero V
	vals map[int]V
}

// NewTotalMap builds an empty TotalMap with the given default value.
func NewTotalMap[V any](zero V) TotalMap[V] {
	return TotalMap[V]{Zero: zero, vals: map[int]V{}}
}

// Get returns the value stored at i, or Zero if none was set.
func (m TotalMap[V]) Get(i int) V {
	if v, ok := m.vals[i]; ok {
		return v
	}
	return m.Zero
}

// Set returns a new TotalMap with i bound to v; m is left untouched.
func (m TotalMap[V]) Set(i int, v V) TotalMap[V] {
	out := TotalMap[V]{Zero: m.Zero, vals: make(map[int]V, len(m.vals)+1)}
	for k, val := range m.vals {
		out.vals[k] = val
	}
	out.vals[i] = v
	return out
}

// Clone returns an independent copy of m.
func (m TotalMap[V]) Clone() TotalMap[V] {
	out := TotalMap[V]{Zero: m.Zero, vals: make(map[int]V, len(m.vals))}
	for k, v := range m.vals {
		out.vals[k] = v
	}
	return out
}
