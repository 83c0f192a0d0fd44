package symbolic

import "math/big"

// TrigSimplify simplifies e and collapses matching Pythagorean pairs:
// within a sum, c*sin(u)^2 + c*cos(u)^2 becomes c for any argument u
// and equal coefficients c. The pass applies recursively before the
// top-level sum is scanned.
func TrigSimplify(e Expr) Expr {
	return Simplify(trigPass(Simplify(e)))
}

func trigPass(e Expr) Expr {
	switch t := e.(type) {
	case *Sum:
		terms := make([]Expr, len(t.terms))
		for i, x := range t.terms {
			terms[i] = trigPass(x)
		}
		return collapsePythagorean(terms)
	case *Product:
		factors := make([]Expr, len(t.factors))
		for i, x := range t.factors {
			factors[i] = trigPass(x)
		}
		return Mul(factors...)
	case *Power:
		return Pow(trigPass(t.base), trigPass(t.exp))
	case *Call:
		return Fn(t.name, trigPass(t.arg))
	case *Integral:
		return IntegralOf(trigPass(t.integrand), t.variable)
	case *Equation:
		return EquationOf(trigPass(t.lhs), trigPass(t.rhs))
	default:
		return e
	}
}

// squaredTrig matches c*sin(u)^2 or c*cos(u)^2 with rational c.
func squaredTrig(t Expr) (fn string, arg Expr, coeff *big.Rat, ok bool) {
	coeff = big.NewRat(1, 1)
	if p, isProd := t.(*Product); isProd {
		if len(p.factors) != 2 {
			return "", nil, nil, false
		}
		n, isNum := p.factors[0].(*Num)
		if !isNum {
			n, isNum = p.factors[1].(*Num)
			if !isNum {
				return "", nil, nil, false
			}
			t = p.factors[0]
		} else {
			t = p.factors[1]
		}
		coeff = new(big.Rat).Set(n.val)
	}
	pw, isPow := t.(*Power)
	if !isPow {
		return "", nil, nil, false
	}
	en, isNum := pw.exp.(*Num)
	if !isNum || en.val.Cmp(ratTwo) != 0 {
		return "", nil, nil, false
	}
	c, isCall := pw.base.(*Call)
	if !isCall || (c.name != "sin" && c.name != "cos") {
		return "", nil, nil, false
	}
	return c.name, c.arg, coeff, true
}

func collapsePythagorean(terms []Expr) Expr {
	type hit struct {
		coeff *big.Rat
		idx   int
	}
	sins := map[string]hit{}
	coss := map[string]hit{}
	for i, t := range terms {
		fn, arg, coeff, ok := squaredTrig(t)
		if !ok {
			continue
		}
		key := arg.String()
		switch fn {
		case "sin":
			if _, dup := sins[key]; !dup {
				sins[key] = hit{coeff: coeff, idx: i}
			}
		case "cos":
			if _, dup := coss[key]; !dup {
				coss[key] = hit{coeff: coeff, idx: i}
			}
		}
	}

	drop := map[int]bool{}
	replace := map[int]Expr{}
	for key, se := range sins {
		ce, ok := coss[key]
		if !ok || se.coeff.Cmp(ce.coeff) != 0 {
			continue
		}
		lo, hi := se.idx, ce.idx
		if lo > hi {
			lo, hi = hi, lo
		}
		replace[lo] = newNum(se.coeff)
		drop[hi] = true
	}
	if len(replace) == 0 {
		return Add(terms...)
	}
	var out []Expr
	for i, t := range terms {
		switch {
		case drop[i]:
		case replace[i] != nil:
			out = append(out, replace[i])
		default:
			out = append(out, t)
		}
	}
	return Add(out...)
}
