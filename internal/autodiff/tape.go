package autodiff

import (
	"github.com/born-ml/piecewise/internal/autodiff/ops"
	"github.com/born-ml/piecewise/internal/scalar"
)

// GradientTape records operations during the forward pass and computes
// gradients during the backward pass using reverse-mode automatic differentiation.
//
// Operations are always computed; they are only recorded while the tape is
// recording. A tape is not safe for concurrent use.
//
// Usage:
//
//	tape := NewGradientTape[float64]()
//	tape.StartRecording()
//	x := tape.Variable(2.0)
//	y := tape.Mul(x, tape.Exp(x))
//	grads := tape.Backward(y, 1)
//	grads[x] // d(x·eˣ)/dx at 2
type GradientTape[T scalar.Float] struct {
	operations []ops.Operation[T] // Recorded operations (in execution order)
	recording  bool               // Whether tape is currently recording
}

// NewGradientTape creates a new gradient tape.
func NewGradientTape[T scalar.Float]() *GradientTape[T] {
	return &GradientTape[T]{
		operations: make([]ops.Operation[T], 0, 16),
		recording:  false,
	}
}

// StartRecording enables operation recording.
func (t *GradientTape[T]) StartRecording() {
	t.recording = true
}

// StopRecording disables operation recording.
func (t *GradientTape[T]) StopRecording() {
	t.recording = false
}

// IsRecording returns true if the tape is currently recording operations.
func (t *GradientTape[T]) IsRecording() bool {
	return t.recording
}

// Record adds an operation to the tape.
// Only records if the tape is currently recording.
func (t *GradientTape[T]) Record(op ops.Operation[T]) {
	if t.recording {
		t.operations = append(t.operations, op)
	}
}

// Clear resets the tape, removing all recorded operations.
// Recording state is preserved.
func (t *GradientTape[T]) Clear() {
	t.operations = t.operations[:0]
}

// NumOps returns the number of recorded operations.
func (t *GradientTape[T]) NumOps() int {
	return len(t.operations)
}

// Variable creates a leaf node. Leaves are not recorded; they receive
// gradients through the operations that consume them.
func (t *GradientTape[T]) Variable(v T) *ops.Node[T] {
	return ops.NewNode(v)
}

// Add computes a + b and records the operation.
func (t *GradientTape[T]) Add(a, b *ops.Node[T]) *ops.Node[T] {
	result := ops.NewNode(a.Value() + b.Value())
	t.Record(ops.NewAddOp(a, b, result))
	return result
}

// Sub computes a - b and records the operation.
func (t *GradientTape[T]) Sub(a, b *ops.Node[T]) *ops.Node[T] {
	result := ops.NewNode(a.Value() - b.Value())
	t.Record(ops.NewSubOp(a, b, result))
	return result
}

// Mul computes a * b and records the operation.
func (t *GradientTape[T]) Mul(a, b *ops.Node[T]) *ops.Node[T] {
	result := ops.NewNode(a.Value() * b.Value())
	t.Record(ops.NewMulOp(a, b, result))
	return result
}

// Exp computes exp(x) and records the operation.
func (t *GradientTape[T]) Exp(x *ops.Node[T]) *ops.Node[T] {
	result := ops.NewNode(scalar.Exp(x.Value()))
	t.Record(ops.NewExpOp(x, result))
	return result
}

// Tanh computes tanh(x) and records the operation.
func (t *GradientTape[T]) Tanh(x *ops.Node[T]) *ops.Node[T] {
	result := ops.NewNode(scalar.Tanh(x.Value()))
	t.Record(ops.NewTanhOp(x, result))
	return result
}

// Apply computes f(x) and records it as a single operation. The backward
// pass uses f's own reverse rule when it has one (see Rrule).
func (t *GradientTape[T]) Apply(f Differentiable[T], x *ops.Node[T]) *ops.Node[T] {
	y, pullback := Rrule(f, x.Value())
	result := ops.NewNode(y)
	t.Record(ops.NewRuleOp(x, result, func(dy T) T {
		_, dx := pullback(dy)
		return dx
	}))
	return result
}

// Backward computes gradients for all inputs by walking the tape in reverse.
//
// Algorithm:
//  1. Start with outputGrad at output (typically 1 for a scalar loss)
//  2. Walk operations in reverse order
//  3. For each operation, compute input gradients using chain rule
//  4. Accumulate gradients when the same node is used multiple times
//
// Returns a map from node to its accumulated gradient. Nodes that do not
// influence output are absent.
func (t *GradientTape[T]) Backward(output *ops.Node[T], outputGrad T) map[*ops.Node[T]]T {
	grads := make(map[*ops.Node[T]]T)
	grads[output] = outputGrad

	// Stop recording during backward pass
	wasRecording := t.recording
	t.recording = false
	defer func() {
		t.recording = wasRecording
	}()

	for i := len(t.operations) - 1; i >= 0; i-- {
		op := t.operations[i]
		opOutputGrad, hasGrad := grads[op.Output()]
		if !hasGrad {
			continue
		}
		t.accumulateGrads(op, op.Backward(opOutputGrad), grads)
	}

	return grads
}

// accumulateGrads accumulates gradients for each input node.
func (t *GradientTape[T]) accumulateGrads(op ops.Operation[T], inputGrads []T, grads map[*ops.Node[T]]T) {
	for j, input := range op.Inputs() {
		if j >= len(inputGrads) {
			break
		}
		grads[input] += inputGrads[j]
	}
}
