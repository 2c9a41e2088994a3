package ops

import "github.com/born-ml/piecewise/internal/scalar"

// AddOp represents an addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
type AddOp[T scalar.Float] struct {
	inputs []*Node[T] // [a, b]
	output *Node[T]   // a + b
}

// NewAddOp creates a new AddOp.
func NewAddOp[T scalar.Float](a, b, output *Node[T]) *AddOp[T] {
	return &AddOp[T]{
		inputs: []*Node[T]{a, b},
		output: output,
	}
}

// Backward computes input gradients for addition.
// Since d(a+b)/da = d(a+b)/db = 1, the gradient flows equally to both inputs.
func (op *AddOp[T]) Backward(outputGrad T) []T {
	return []T{outputGrad, outputGrad}
}

// Inputs returns the input nodes [a, b].
func (op *AddOp[T]) Inputs() []*Node[T] {
	return op.inputs
}

// Output returns the output node a + b.
func (op *AddOp[T]) Output() *Node[T] {
	return op.output
}
