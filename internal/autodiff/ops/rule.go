package ops

import "github.com/born-ml/piecewise/internal/scalar"

// RuleOp is a unary operation whose backward pass is a pullback closure
// captured during the forward pass. Functions that define their own
// reverse-mode rule (such as a smoothed piecewise function) are recorded
// on the tape as a RuleOp.
type RuleOp[T scalar.Float] struct {
	input    *Node[T]
	output   *Node[T]
	pullback func(outputGrad T) T
}

// NewRuleOp creates a RuleOp. pullback maps an output sensitivity to the
// input sensitivity.
func NewRuleOp[T scalar.Float](input, output *Node[T], pullback func(T) T) *RuleOp[T] {
	return &RuleOp[T]{
		input:    input,
		output:   output,
		pullback: pullback,
	}
}

// Backward applies the captured pullback.
func (op *RuleOp[T]) Backward(outputGrad T) []T {
	return []T{op.pullback(outputGrad)}
}

// Inputs returns the input node [x].
func (op *RuleOp[T]) Inputs() []*Node[T] {
	return []*Node[T]{op.input}
}

// Output returns the output node f(x).
func (op *RuleOp[T]) Output() *Node[T] {
	return op.output
}
