package symbolic

import (
	"testing"

	"github.com/deeklead/scribe/internal/algebra"
)

func TestKernelShape(t *testing.T) {
	k := NewKernel()
	tests := []struct {
		name     string
		expr     Expr
		wantKind algebra.Kind
		wantName string
		wantArgs int
	}{
		{"number", N(5), algebra.KindNumber, "", 0},
		{"symbol", S("x"), algebra.KindSymbol, "x", 0},
		{"sum", Add(S("x"), N(5)).(*Sum), algebra.KindSum, "", 2},
		{"product", Mul(N(3), S("x")).(*Product), algebra.KindProduct, "", 2},
		{"power", Pow(S("x"), N(3)).(*Power), algebra.KindPower, "", 2},
		{"call", Sin(S("x")).(*Call), algebra.KindCall, "sin", 1},
		{"integral is opaque", IntegralOf(S("x"), "x"), algebra.KindOther, "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape := k.Shape(tt.expr)
			if shape.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", shape.Kind, tt.wantKind)
			}
			if shape.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", shape.Name, tt.wantName)
			}
			if len(shape.Args) != tt.wantArgs {
				t.Errorf("len(Args) = %d, want %d", len(shape.Args), tt.wantArgs)
			}
		})
	}
}

func TestKernelShapePreservesArgOrder(t *testing.T) {
	k := NewKernel()
	shape := k.Shape(Add(S("x"), N(5)).(*Sum))
	if got := shape.Args[0].String(); got != "x" {
		t.Errorf("first addend = %q, want %q", got, "x")
	}
	if got := shape.Args[1].String(); got != "5" {
		t.Errorf("second addend = %q, want %q", got, "5")
	}
}

func TestKernelIsConstant(t *testing.T) {
	k := NewKernel()
	tests := []struct {
		name string
		expr Expr
		want bool
	}{
		{"number", N(5), true},
		{"other symbol", S("a"), true},
		{"the variable", S("x"), false},
		{"product with variable", Mul(N(3), S("x")), false},
		{"call of constant", Log(N(2)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := k.IsConstant(tt.expr, "x"); got != tt.want {
				t.Errorf("IsConstant(%s, x) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestKernelDiv(t *testing.T) {
	k := NewKernel()
	got := k.Div(k.Pow(k.Sym("x"), k.Int(4)), k.Int(4))
	if got.String() != "x^4/4" {
		t.Errorf("Div = %q, want %q", got.String(), "x^4/4")
	}
}

func TestKernelRoundTrip(t *testing.T) {
	// d/dx of x^4/4 recovers x^3.
	k := NewKernel()
	anti := k.Div(k.Pow(k.Sym("x"), k.Int(4)), k.Int(4))
	back := k.Simplify(k.Diff(anti, "x"))
	if !k.Equal(back, k.Pow(k.Sym("x"), k.Int(3))) {
		t.Errorf("derivative of antiderivative = %s, want x^3", back)
	}
}
