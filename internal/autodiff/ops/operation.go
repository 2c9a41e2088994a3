// Package ops defines the scalar operations recorded on a gradient tape.
//
// Each operation implements the Operation interface, which provides:
//   - Forward pass: computed by the tape when the operation is created
//   - Backward pass: computes gradients for inputs given output gradient
//
// Supported operations:
//   - AddOp: addition (d(a+b)/da = 1, d(a+b)/db = 1)
//   - SubOp: subtraction (d(a-b)/da = 1, d(a-b)/db = -1)
//   - MulOp: multiplication (d(a*b)/da = b, d(a*b)/db = a)
//   - ExpOp: exponential (d(exp(x))/dx = exp(x))
//   - TanhOp: hyperbolic tangent (d(tanh(x))/dx = 1 - tanh²(x))
//   - RuleOp: any unary function that supplies its own pullback
package ops

import "github.com/born-ml/piecewise/internal/scalar"

// Operation represents a differentiable operation in the computation graph.
// Each operation records its inputs and output during the forward pass,
// and computes input gradients during the backward pass.
type Operation[T scalar.Float] interface {
	// Backward computes gradients for inputs given the output gradient.
	// Returns a slice of gradients corresponding to each input node.
	//
	// Example for AddOp:
	//   inputs: [a, b]
	//   outputGrad: dL/d(a+b)
	//   returns: [dL/d(a+b), dL/d(a+b)]
	Backward(outputGrad T) []T

	// Inputs returns the input nodes for this operation.
	Inputs() []*Node[T]

	// Output returns the node produced by this operation.
	Output() *Node[T]
}
