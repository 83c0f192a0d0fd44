package symbolic

import (
	"math/big"
	"strings"
)

// Product is an n-ary product of at least two factors.
type Product struct {
	factors []Expr
}

// Mul builds the product of factors. Nested products are flattened,
// numeric factors fold into a single coefficient at the position of the
// first numeric argument, and repeated bases merge their exponents in
// first-encounter order. A zero factor collapses the product to 0; an
// empty product is 1; a single surviving factor is returned unwrapped.
func Mul(factors ...Expr) Expr {
	var flat []Expr
	var walk func(Expr)
	walk = func(e Expr) {
		if p, ok := e.(*Product); ok {
			for _, f := range p.factors {
				walk(f)
			}
			return
		}
		flat = append(flat, e)
	}
	for _, f := range factors {
		walk(f)
	}

	type group struct {
		base Expr
		exps []Expr
	}
	coeff := big.NewRat(1, 1)
	sawCoeff := false
	groups := map[string]*group{}
	var order []string // "" marks the coefficient slot
	for _, f := range flat {
		if n, ok := f.(*Num); ok {
			coeff.Mul(coeff, n.val)
			if !sawCoeff {
				sawCoeff = true
				order = append(order, "")
			}
			continue
		}
		base, exp := splitPower(f)
		key := base.String()
		g, ok := groups[key]
		if !ok {
			g = &group{base: base}
			groups[key] = g
			order = append(order, key)
		}
		g.exps = append(g.exps, exp)
	}
	if coeff.Sign() == 0 {
		return N(0)
	}

	type item struct {
		coeffSlot bool
		expr      Expr
	}
	var items []item
	for _, key := range order {
		if key == "" {
			items = append(items, item{coeffSlot: true})
			continue
		}
		g := groups[key]
		f := Pow(g.base, Add(g.exps...))
		if n, ok := f.(*Num); ok {
			// Exponent merging folded the factor to a constant,
			// e.g. sqrt(2)*sqrt(2).
			coeff.Mul(coeff, n.val)
			continue
		}
		items = append(items, item{expr: f})
	}
	if coeff.Sign() == 0 {
		return N(0)
	}

	keepCoeff := coeff.Cmp(ratOne) != 0
	var out []Expr
	placed := false
	for _, it := range items {
		if it.coeffSlot {
			if keepCoeff {
				out = append(out, newNum(coeff))
			}
			placed = true
			continue
		}
		out = append(out, it.expr)
	}
	if keepCoeff && !placed {
		out = append([]Expr{newNum(coeff)}, out...)
	}
	switch len(out) {
	case 0:
		return N(1)
	case 1:
		return out[0]
	}
	return &Product{factors: out}
}

// splitPower views a factor as base^exponent so that x and x^2 merge.
func splitPower(e Expr) (base, exp Expr) {
	if p, ok := e.(*Power); ok {
		return p.base, p.exp
	}
	return e, N(1)
}

// Factors returns the factors in declared order.
func (p *Product) Factors() []Expr {
	return append([]Expr(nil), p.factors...)
}

func (p *Product) isExpr() {}

// splitFraction divides factors into numerator and denominator parts
// for display: negative-exponent powers and rational denominators move
// below the bar, and the overall sign is extracted.
func splitFraction(factors []Expr) (num, den []Expr, neg bool) {
	for _, f := range factors {
		switch t := f.(type) {
		case *Num:
			r := t.val
			if r.Sign() < 0 {
				neg = !neg
				r = new(big.Rat).Abs(r)
			}
			if n := r.Num(); n.Cmp(bigOne) != 0 {
				num = append(num, &Num{val: new(big.Rat).SetInt(n)})
			}
			if d := r.Denom(); d.Cmp(bigOne) != 0 {
				den = append(den, &Num{val: new(big.Rat).SetInt(d)})
			}
		case *Power:
			if en, ok := t.exp.(*Num); ok && en.val.Sign() < 0 {
				den = append(den, Pow(t.base, newNum(new(big.Rat).Neg(en.val))))
				continue
			}
			num = append(num, f)
		default:
			num = append(num, f)
		}
	}
	return num, den, neg
}

// remul regroups display fragments without re-simplifying.
func remul(factors []Expr) Expr {
	if len(factors) == 1 {
		return factors[0]
	}
	return &Product{factors: factors}
}

func (p *Product) String() string {
	num, den, neg := splitFraction(p.factors)
	var out string
	switch len(num) {
	case 0:
		out = "1"
	default:
		parts := make([]string, len(num))
		for i, f := range num {
			parts[i] = maybeParen(f, precProduct)
		}
		out = strings.Join(parts, "*")
	}
	if len(den) > 0 {
		out += "/" + maybeParen(remul(den), precPower)
	}
	if neg {
		out = "-" + out
	}
	return out
}

func (p *Product) LaTeX() string {
	num, den, neg := splitFraction(p.factors)
	var out string
	switch {
	case len(den) > 0:
		out = `\frac{` + latexJoin(num) + `}{` + latexJoin(den) + `}`
	default:
		parts := make([]string, len(num))
		for i, f := range num {
			parts[i] = maybeParenLaTeX(f, precProduct)
		}
		out = strings.Join(parts, ` \cdot `)
	}
	if neg {
		out = "-" + out
	}
	return out
}

func latexJoin(factors []Expr) string {
	if len(factors) == 0 {
		return "1"
	}
	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = maybeParenLaTeX(f, precProduct)
	}
	return strings.Join(parts, ` \cdot `)
}
