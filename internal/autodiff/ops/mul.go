package ops

import "github.com/born-ml/piecewise/internal/scalar"

// MulOp represents a multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type MulOp[T scalar.Float] struct {
	inputs []*Node[T] // [a, b]
	output *Node[T]   // a * b
}

// NewMulOp creates a new MulOp.
func NewMulOp[T scalar.Float](a, b, output *Node[T]) *MulOp[T] {
	return &MulOp[T]{
		inputs: []*Node[T]{a, b},
		output: output,
	}
}

// Backward computes input gradients for multiplication.
func (op *MulOp[T]) Backward(outputGrad T) []T {
	a, b := op.inputs[0], op.inputs[1]
	return []T{outputGrad * b.value, outputGrad * a.value}
}

// Inputs returns the input nodes [a, b].
func (op *MulOp[T]) Inputs() []*Node[T] {
	return op.inputs
}

// Output returns the output node a * b.
func (op *MulOp[T]) Output() *Node[T] {
	return op.output
}
