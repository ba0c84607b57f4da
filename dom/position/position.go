/*
Package position provides the default document position comparator for package dom.

Import it for its side effect:

    import _ "github.com/npillmayer/minidom/dom/position"

The comparator determines the relative position of two nodes by their
ancestor chains and the sibling order below their closest common ancestor.
Nodes of different trees are reported as disconnected, with a preceding or
following bit derived from the forest's handle order, which is stable.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package position

import (
	"github.com/npillmayer/minidom/dom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'minidom.position'.
func tracer() tracing.Trace {
	return tracing.Select("minidom.position")
}

func init() {
	dom.RegisterPositionComparator(Compare)
}

// Compare returns the position of other relative to reference.
func Compare(f *dom.Forest, reference, other dom.Handle) dom.Position {
	if !f.Valid(reference) || !f.Valid(other) {
		return dom.PositionDisconnected | dom.PositionImplementationSpecific
	}
	if reference == other {
		return 0
	}
	refChain, otherChain := ancestors(f, reference), ancestors(f, other)
	if refChain[0] != otherChain[0] {
		tracer().Debugf("nodes %s and %s are disconnected", reference, other)
		pos := dom.PositionDisconnected | dom.PositionImplementationSpecific
		if other < reference {
			return pos | dom.PositionPreceding
		}
		return pos | dom.PositionFollowing
	}
	// find the first level where the chains diverge
	i := 1
	for i < len(refChain) && i < len(otherChain) && refChain[i] == otherChain[i] {
		i++
	}
	switch {
	case i == len(refChain): // reference is an ancestor of other
		return dom.PositionContainedBy | dom.PositionFollowing
	case i == len(otherChain): // other is an ancestor of reference
		return dom.PositionContains | dom.PositionPreceding
	}
	if follows(f, refChain[i], otherChain[i]) {
		return dom.PositionFollowing
	}
	return dom.PositionPreceding
}

// ancestors returns the inclusive ancestor chain of h, starting at the root.
func ancestors(f *dom.Forest, h dom.Handle) []dom.Handle {
	var chain []dom.Handle
	for ; h != dom.Null; h = f.ParentNode(h) {
		chain = append(chain, h)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// follows is true if sibling b comes after sibling a.
func follows(f *dom.Forest, a, b dom.Handle) bool {
	for s := f.NextSibling(a); s != dom.Null; s = f.NextSibling(s) {
		if s == b {
			return true
		}
	}
	return false
}
