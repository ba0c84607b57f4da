package dom

// Option is a type to help initializing forests at creation time.
type Option func(*Forest)

// Trusting is an option to switch off precondition checks for mutations.
// Use it like this:
//
//     forest := dom.NewForest(dom.Trusting())
//
// A trusting forest will not check that a reference node is a child of the
// parent given, nor that an insertion creates a cycle. Violating these
// preconditions results in corrupt links, not in an error.
// Handles are still range-checked.
func Trusting() Option {
	return func(f *Forest) {
		f.trusting = true
	}
}

// Capacity is an option to pre-allocate room for n nodes.
func Capacity(n int) Option {
	return func(f *Forest) {
		if n > cap(f.nodes) {
			nodes := make([]record, len(f.nodes), n+1)
			copy(nodes, f.nodes)
			f.nodes = nodes
		}
	}
}
