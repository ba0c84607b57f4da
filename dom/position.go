package dom

import (
	"fmt"
	"strings"
	"sync"
)

// Position is a bit set describing where a node is located relative to a
// reference node, with the W3C bit values.
type Position uint16

// Document position flags.
const (
	PositionDisconnected           Position = 0x01
	PositionPreceding              Position = 0x02
	PositionFollowing              Position = 0x04
	PositionContains               Position = 0x08
	PositionContainedBy            Position = 0x10
	PositionImplementationSpecific Position = 0x20
)

var positionNames = []string{
	"disconnected", "preceding", "following", "contains", "contained-by", "implementation-specific",
}

func (p Position) String() string {
	if p == 0 {
		return "same"
	}
	var flags []string
	for i, name := range positionNames {
		if p&(1<<i) != 0 {
			flags = append(flags, name)
		}
	}
	return strings.Join(flags, "|")
}

// PositionComparator computes the position of other relative to reference.
// Comparators may read parent links, sibling order and owner documents, but
// must not modify the forest.
type PositionComparator func(f *Forest, reference, other Handle) Position

var comparator struct {
	sync.RWMutex
	compare PositionComparator
}

// RegisterPositionComparator installs the comparator used by
// CompareDocumentPosition. Packages providing a comparator call this from
// their init function, clients activate them by importing them:
//
//     import _ "github.com/npillmayer/minidom/dom/position"
//
// A later registration replaces an earlier one.
func RegisterPositionComparator(cmp PositionComparator) {
	comparator.Lock()
	defer comparator.Unlock()
	comparator.compare = cmp
}

// CompareDocumentPosition returns the position of other relative to reference,
// as computed by the registered comparator.
func (f *Forest) CompareDocumentPosition(reference, other Handle) (Position, error) {
	if err := f.checkHandles("compare-document-position", reference, other); err != nil {
		return 0, err
	}
	comparator.RLock()
	cmp := comparator.compare
	comparator.RUnlock()
	if cmp == nil {
		return 0, fmt.Errorf("compare-document-position: %w", ErrNoComparator)
	}
	return cmp(f, reference, other), nil
}
