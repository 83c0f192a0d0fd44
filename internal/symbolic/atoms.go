package symbolic

import "math/big"

// Num is an exact rational constant.
type Num struct {
	val *big.Rat
}

// N returns the integer constant n.
func N(n int64) *Num {
	return &Num{val: big.NewRat(n, 1)}
}

// Q returns the rational constant p/q. It panics when q is zero.
func Q(p, q int64) *Num {
	if q == 0 {
		panic("symbolic: division by zero")
	}
	return &Num{val: big.NewRat(p, q)}
}

func newNum(r *big.Rat) *Num {
	return &Num{val: new(big.Rat).Set(r)}
}

func (n *Num) isExpr() {}

func (n *Num) String() string {
	return n.val.RatString()
}

func (n *Num) LaTeX() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	sign := ""
	abs := new(big.Rat).Abs(n.val)
	if n.val.Sign() < 0 {
		sign = "-"
	}
	return sign + `\frac{` + abs.Num().String() + `}{` + abs.Denom().String() + `}`
}

// Rat returns a copy of the exact value.
func (n *Num) Rat() *big.Rat {
	return new(big.Rat).Set(n.val)
}

func (n *Num) isZero() bool { return n.val.Sign() == 0 }
func (n *Num) isOne() bool  { return n.val.Cmp(ratOne) == 0 }

// ratPow raises r to the integer power k exactly. A zero base with a
// negative exponent panics.
func ratPow(r *big.Rat, k int64) *big.Rat {
	if k < 0 {
		if r.Sign() == 0 {
			panic("symbolic: division by zero")
		}
		r = new(big.Rat).Inv(r)
		k = -k
	}
	num := new(big.Int).Exp(r.Num(), big.NewInt(k), nil)
	den := new(big.Int).Exp(r.Denom(), big.NewInt(k), nil)
	return new(big.Rat).SetFrac(num, den)
}

// Sym is a bare variable.
type Sym struct {
	name string
}

// S returns the variable with the given name.
func S(name string) *Sym {
	return &Sym{name: name}
}

func (s *Sym) isExpr() {}

func (s *Sym) String() string { return s.name }

func (s *Sym) LaTeX() string { return s.name }

// Name returns the variable name.
func (s *Sym) Name() string { return s.name }
