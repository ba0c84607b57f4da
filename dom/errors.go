package dom

import "errors"

// ErrInvalidHandle is returned if a mutation is called with Null or with a
// handle not issued by the forest.
var ErrInvalidHandle = errors.New("invalid node handle")

// ErrNotAChild is returned if a reference node is not a child of the parent
// an operation has been called for.
var ErrNotAChild = errors.New("not a child of this parent")

// ErrHierarchyRequest is returned if an insertion would make a node its own
// ancestor.
var ErrHierarchyRequest = errors.New("insertion would create a cycle")

// ErrWrongForest is returned if Node values of different forests are mixed
// in one operation.
var ErrWrongForest = errors.New("nodes belong to different forests")

// ErrNoComparator is returned by CompareDocumentPosition if no position
// comparator has been registered. See RegisterPositionComparator.
var ErrNoComparator = errors.New("no document position comparator registered")
