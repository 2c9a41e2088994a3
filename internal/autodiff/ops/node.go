package ops

import (
	"fmt"

	"github.com/born-ml/piecewise/internal/scalar"
)

// Node is a scalar value in the computation graph. Gradients are keyed by
// node identity, so two nodes holding equal values are still distinct.
type Node[T scalar.Float] struct {
	value T
}

// NewNode creates a node holding v.
func NewNode[T scalar.Float](v T) *Node[T] {
	return &Node[T]{value: v}
}

// Value returns the value held by the node.
func (n *Node[T]) Value() T {
	return n.value
}

// String implements fmt.Stringer.
func (n *Node[T]) String() string {
	return fmt.Sprintf("Node(%v)", n.value)
}
