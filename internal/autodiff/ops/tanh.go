package ops

import "github.com/born-ml/piecewise/internal/scalar"

// TanhOp represents the hyperbolic tangent: y = tanh(x).
type TanhOp[T scalar.Float] struct {
	input  *Node[T]
	output *Node[T]
}

// NewTanhOp creates a new tanh operation.
func NewTanhOp[T scalar.Float](input, output *Node[T]) *TanhOp[T] {
	return &TanhOp[T]{
		input:  input,
		output: output,
	}
}

// Inputs returns the input node.
func (op *TanhOp[T]) Inputs() []*Node[T] {
	return []*Node[T]{op.input}
}

// Output returns the output node.
func (op *TanhOp[T]) Output() *Node[T] {
	return op.output
}

// Backward computes the gradient for tanh.
//
// For tanh(x):
// d(tanh(x))/dx = 1 - tanh²(x)
//
// Since we have the output tanh(x) already computed:
// grad_input = grad_output * (1 - output²).
func (op *TanhOp[T]) Backward(outputGrad T) []T {
	y := op.output.value
	return []T{outputGrad * (1 - y*y)}
}
