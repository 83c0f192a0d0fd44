package symbolic

import (
	"math/big"
	"strings"
)

// Sum is an n-ary sum of at least two terms.
type Sum struct {
	terms []Expr
}

// Add builds the sum of terms. Nested sums are flattened, numeric terms
// fold into a single constant at the position of the first numeric
// argument, and like terms merge by coefficient in first-encounter
// order. An empty or fully cancelled sum is 0; a single surviving term
// is returned unwrapped.
func Add(terms ...Expr) Expr {
	var flat []Expr
	var walk func(Expr)
	walk = func(e Expr) {
		if s, ok := e.(*Sum); ok {
			for _, t := range s.terms {
				walk(t)
			}
			return
		}
		flat = append(flat, e)
	}
	for _, t := range terms {
		walk(t)
	}

	type group struct {
		coeff *big.Rat
		rest  Expr
	}
	constant := new(big.Rat)
	sawConst := false
	groups := map[string]*group{}
	var order []string // "" marks the folded-constant slot
	for _, t := range flat {
		if n, ok := t.(*Num); ok {
			constant.Add(constant, n.val)
			if !sawConst {
				sawConst = true
				order = append(order, "")
			}
			continue
		}
		coeff, rest := splitCoeff(t)
		key := rest.String()
		g, ok := groups[key]
		if !ok {
			g = &group{coeff: new(big.Rat), rest: rest}
			groups[key] = g
			order = append(order, key)
		}
		g.coeff.Add(g.coeff, coeff)
	}

	var out []Expr
	for _, key := range order {
		if key == "" {
			if constant.Sign() != 0 {
				out = append(out, newNum(constant))
			}
			continue
		}
		g := groups[key]
		switch {
		case g.coeff.Sign() == 0:
		case g.coeff.Cmp(ratOne) == 0:
			out = append(out, g.rest)
		default:
			out = append(out, Mul(newNum(g.coeff), g.rest))
		}
	}
	switch len(out) {
	case 0:
		return N(0)
	case 1:
		return out[0]
	}
	return &Sum{terms: out}
}

// splitCoeff separates the numeric coefficient of a term from the rest,
// so that x and 3*x collect together. Simplified products carry at most
// one numeric factor.
func splitCoeff(e Expr) (*big.Rat, Expr) {
	p, ok := e.(*Product)
	if !ok {
		return big.NewRat(1, 1), e
	}
	for i, f := range p.factors {
		n, ok := f.(*Num)
		if !ok {
			continue
		}
		rest := make([]Expr, 0, len(p.factors)-1)
		rest = append(rest, p.factors[:i]...)
		rest = append(rest, p.factors[i+1:]...)
		if len(rest) == 1 {
			return new(big.Rat).Set(n.val), rest[0]
		}
		return new(big.Rat).Set(n.val), &Product{factors: rest}
	}
	return big.NewRat(1, 1), e
}

// Terms returns the addends in declared order.
func (s *Sum) Terms() []Expr {
	return append([]Expr(nil), s.terms...)
}

func (s *Sum) isExpr() {}

func (s *Sum) String() string {
	var b strings.Builder
	for i, t := range s.terms {
		part := t.String()
		if i == 0 {
			b.WriteString(part)
			continue
		}
		if rest, ok := strings.CutPrefix(part, "-"); ok {
			b.WriteString(" - ")
			b.WriteString(rest)
			continue
		}
		b.WriteString(" + ")
		b.WriteString(part)
	}
	return b.String()
}

func (s *Sum) LaTeX() string {
	var b strings.Builder
	for i, t := range s.terms {
		part := t.LaTeX()
		if i == 0 {
			b.WriteString(part)
			continue
		}
		if rest, ok := strings.CutPrefix(part, "-"); ok {
			b.WriteString(" - ")
			b.WriteString(rest)
			continue
		}
		b.WriteString(" + ")
		b.WriteString(part)
	}
	return b.String()
}
