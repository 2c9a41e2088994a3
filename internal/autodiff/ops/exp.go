package ops

import "github.com/born-ml/piecewise/internal/scalar"

// ExpOp represents the exponential operation: y = exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x) = y
//   - grad_input = grad_output * output
type ExpOp[T scalar.Float] struct {
	input  *Node[T] // x
	output *Node[T] // exp(x)
}

// NewExpOp creates a new ExpOp.
func NewExpOp[T scalar.Float](input, output *Node[T]) *ExpOp[T] {
	return &ExpOp[T]{
		input:  input,
		output: output,
	}
}

// Backward computes input gradient for exp.
//
// Since d(exp(x))/dx = exp(x), and we already have exp(x) as output:
// grad_input = grad_output * output.
func (op *ExpOp[T]) Backward(outputGrad T) []T {
	return []T{outputGrad * op.output.value}
}

// Inputs returns the input node [x].
func (op *ExpOp[T]) Inputs() []*Node[T] {
	return []*Node[T]{op.input}
}

// Output returns the output node exp(x).
func (op *ExpOp[T]) Output() *Node[T] {
	return op.output
}
