package ops

import "github.com/born-ml/piecewise/internal/scalar"

// SubOp represents a subtraction: output = a - b.
type SubOp[T scalar.Float] struct {
	inputs []*Node[T] // [a, b]
	output *Node[T]   // a - b
}

// NewSubOp creates a new SubOp.
func NewSubOp[T scalar.Float](a, b, output *Node[T]) *SubOp[T] {
	return &SubOp[T]{
		inputs: []*Node[T]{a, b},
		output: output,
	}
}

// Backward computes input gradients for subtraction: grad_a = outputGrad, grad_b = -outputGrad.
func (op *SubOp[T]) Backward(outputGrad T) []T {
	return []T{outputGrad, -outputGrad}
}

// Inputs returns the input nodes [a, b].
func (op *SubOp[T]) Inputs() []*Node[T] {
	return op.inputs
}

// Output returns the output node a - b.
func (op *SubOp[T]) Output() *Node[T] {
	return op.output
}
