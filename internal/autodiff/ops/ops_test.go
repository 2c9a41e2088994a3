package ops_test

import (
	"math"
	"testing"

	"github.com/born-ml/piecewise/internal/autodiff/ops"
)

// Helper to check float64 slices are equal within epsilon.
func float64Equal(a, b []float64, epsilon float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > epsilon {
			return false
		}
	}
	return true
}

// TestAddOp_Backward tests AddOp backward pass.
func TestAddOp_Backward(t *testing.T) {
	a, b := ops.NewNode(1.0), ops.NewNode(4.0)
	op := ops.NewAddOp(a, b, ops.NewNode(5.0))

	grads := op.Backward(2.0)
	if !float64Equal(grads, []float64{2, 2}, 1e-12) {
		t.Errorf("AddOp grads: got %v, want [2 2]", grads)
	}
	if len(op.Inputs()) != 2 || op.Inputs()[0] != a || op.Inputs()[1] != b {
		t.Errorf("AddOp inputs not recorded")
	}
}

// TestSubOp_Backward tests SubOp backward pass.
func TestSubOp_Backward(t *testing.T) {
	op := ops.NewSubOp(ops.NewNode(1.0), ops.NewNode(4.0), ops.NewNode(-3.0))

	grads := op.Backward(1.5)
	if !float64Equal(grads, []float64{1.5, -1.5}, 1e-12) {
		t.Errorf("SubOp grads: got %v, want [1.5 -1.5]", grads)
	}
}

// TestMulOp_Backward tests MulOp backward pass.
func TestMulOp_Backward(t *testing.T) {
	op := ops.NewMulOp(ops.NewNode(3.0), ops.NewNode(5.0), ops.NewNode(15.0))

	// grad_a = g*b, grad_b = g*a
	grads := op.Backward(2.0)
	if !float64Equal(grads, []float64{10, 6}, 1e-12) {
		t.Errorf("MulOp grads: got %v, want [10 6]", grads)
	}
}

// TestExpOp_Backward tests ExpOp backward pass.
func TestExpOp_Backward(t *testing.T) {
	x := ops.NewNode(0.5)
	y := ops.NewNode(math.Exp(0.5))
	op := ops.NewExpOp(x, y)

	grads := op.Backward(1.0)
	if !float64Equal(grads, []float64{math.Exp(0.5)}, 1e-12) {
		t.Errorf("ExpOp grads: got %v, want [%v]", grads, math.Exp(0.5))
	}
	if op.Output() != y {
		t.Errorf("ExpOp output not recorded")
	}
}

// TestTanhOp_Backward tests TanhOp backward pass.
func TestTanhOp_Backward(t *testing.T) {
	th := math.Tanh(0.3)
	op := ops.NewTanhOp(ops.NewNode(0.3), ops.NewNode(th))

	grads := op.Backward(2.0)
	want := 2 * (1 - th*th)
	if !float64Equal(grads, []float64{want}, 1e-12) {
		t.Errorf("TanhOp grads: got %v, want [%v]", grads, want)
	}
}

// TestRuleOp_Backward tests that RuleOp delegates to its pullback.
func TestRuleOp_Backward(t *testing.T) {
	x := ops.NewNode(float32(2))
	op := ops.NewRuleOp(x, ops.NewNode(float32(4)), func(g float32) float32 { return 4 * g })

	grads := op.Backward(0.5)
	if len(grads) != 1 || grads[0] != 2 {
		t.Errorf("RuleOp grads: got %v, want [2]", grads)
	}
	if op.Inputs()[0] != x {
		t.Errorf("RuleOp input not recorded")
	}
}

// TestNode_Identity tests that nodes with equal values are distinct.
func TestNode_Identity(t *testing.T) {
	a, b := ops.NewNode(1.0), ops.NewNode(1.0)
	if a == b {
		t.Error("distinct nodes must not compare equal")
	}
	if a.Value() != b.Value() {
		t.Error("values should match")
	}
	if got := a.String(); got != "Node(1)" {
		t.Errorf("String() = %q, want %q", got, "Node(1)")
	}
}
