package build

import (
	"errors"
	"fmt"

	"github.com/npillmayer/exprtree/expr"
)

// UnsupportedNodeKindError is returned if a builder encounters an expression
// of a kind it cannot translate. Kind is the kind tag of the offending
// expression, Node its string form.
type UnsupportedNodeKindError struct {
	Kind expr.Kind
	Node string
}

func (e *UnsupportedNodeKindError) Error() string {
	return fmt.Sprintf("cannot build tree from '%s' %s", e.Kind, e.Node)
}

// ErrDepthExceeded is returned if an expression graph is nested deeper than the
// maximum depth of a builder. Recursive functions or predicates, which are inlined
// at every call site, will run into this error.
var ErrDepthExceeded = errors.New("expression nesting exceeds maximum depth")

func unsupported(e expr.Expr) error {
	if e == nil {
		return &UnsupportedNodeKindError{Kind: "<nil>", Node: "<nil>"}
	}
	return &UnsupportedNodeKindError{Kind: e.Kind(), Node: e.String()}
}
