package symbolic

// Power is base^exponent.
type Power struct {
	base Expr
	exp  Expr
}

// Pow builds base^exp. Numeric base and integer numeric exponent fold
// to an exact rational; a zero base with a negative exponent panics.
// x^0 is 1 and x^1 is x. An integer exponent distributes over product
// bases and merges nested powers, so (x*y)^2 becomes x^2*y^2 and
// (x^3)^2 becomes x^6; both are safe for integers only.
func Pow(base, exp Expr) Expr {
	if en, ok := exp.(*Num); ok {
		if en.isZero() {
			return N(1)
		}
		if en.isOne() {
			return base
		}
		if en.val.IsInt() && en.val.Num().IsInt64() {
			switch bt := base.(type) {
			case *Num:
				return newNum(ratPow(bt.val, en.val.Num().Int64()))
			case *Product:
				factors := make([]Expr, len(bt.factors))
				for i, f := range bt.factors {
					factors[i] = Pow(f, exp)
				}
				return Mul(factors...)
			case *Power:
				return Pow(bt.base, Mul(bt.exp, exp))
			}
		}
	}
	if bn, ok := base.(*Num); ok {
		if bn.isOne() {
			return N(1)
		}
		if bn.isZero() {
			// 0^e stays symbolic for non-integer e; an integer
			// negative exponent already panicked in ratPow.
			return &Power{base: base, exp: exp}
		}
	}
	return &Power{base: base, exp: exp}
}

// Sqrt builds the square root of e as e^(1/2).
func Sqrt(e Expr) Expr {
	return Pow(e, Q(1, 2))
}

// Base returns the base of the power.
func (p *Power) Base() Expr { return p.base }

// Exponent returns the exponent of the power.
func (p *Power) Exponent() Expr { return p.exp }

func (p *Power) isExpr() {}

func (p *Power) String() string {
	return maybeParen(p.base, precAtom) + "^" + maybeParen(p.exp, precAtom)
}

func (p *Power) LaTeX() string {
	if en, ok := p.exp.(*Num); ok && en.val.Cmp(ratHalf) == 0 {
		return `\sqrt{` + p.base.LaTeX() + `}`
	}
	return maybeParenLaTeX(p.base, precAtom) + "^{" + p.exp.LaTeX() + "}"
}
