package symbolic

import "fmt"

// Diff differentiates e with respect to the named variable. The result
// is built through the simplifying constructors, so 0*x terms vanish.
func Diff(e Expr, variable string) Expr {
	switch t := e.(type) {
	case *Num:
		return N(0)
	case *Sym:
		if t.name == variable {
			return N(1)
		}
		return N(0)
	case *Sum:
		terms := make([]Expr, len(t.terms))
		for i, x := range t.terms {
			terms[i] = Diff(x, variable)
		}
		return Add(terms...)
	case *Product:
		// Product rule: sum over factors of f_i' times the rest.
		terms := make([]Expr, 0, len(t.factors))
		for i := range t.factors {
			part := make([]Expr, len(t.factors))
			copy(part, t.factors)
			part[i] = Diff(t.factors[i], variable)
			terms = append(terms, Mul(part...))
		}
		return Add(terms...)
	case *Power:
		return diffPower(t, variable)
	case *Call:
		return Mul(callDerivative(t.name, t.arg), Diff(t.arg, variable))
	case *Integral:
		if t.variable == variable {
			return t.integrand
		}
		return IntegralOf(Diff(t.integrand, variable), t.variable)
	case *Equation:
		return EquationOf(Diff(t.lhs, variable), Diff(t.rhs, variable))
	default:
		panic(fmt.Sprintf("symbolic: cannot differentiate %T", e))
	}
}

func diffPower(p *Power, variable string) Expr {
	baseDep := DependsOn(p.base, variable)
	expDep := DependsOn(p.exp, variable)
	switch {
	case !baseDep && !expDep:
		return N(0)
	case !expDep:
		// n*b^(n-1)*b'
		return Mul(p.exp, Pow(p.base, Add(p.exp, N(-1))), Diff(p.base, variable))
	case !baseDep:
		// b^e*log(b)*e'
		return Mul(p, Log(p.base), Diff(p.exp, variable))
	default:
		// b^e*(e'*log(b) + e*b'/b)
		return Mul(p, Add(
			Mul(Diff(p.exp, variable), Log(p.base)),
			Mul(p.exp, Diff(p.base, variable), Pow(p.base, N(-1))),
		))
	}
}

// callDerivative returns d/du of name(u).
func callDerivative(name string, u Expr) Expr {
	switch name {
	case "sin":
		return Cos(u)
	case "cos":
		return Mul(N(-1), Sin(u))
	case "tan":
		return Add(N(1), Pow(Tan(u), N(2)))
	case "exp":
		return Exp(u)
	case "log":
		return Pow(u, N(-1))
	case "asin":
		return Pow(Add(N(1), Mul(N(-1), Pow(u, N(2)))), Q(-1, 2))
	case "acos":
		return Mul(N(-1), Pow(Add(N(1), Mul(N(-1), Pow(u, N(2)))), Q(-1, 2)))
	case "atan":
		return Pow(Add(N(1), Pow(u, N(2))), N(-1))
	default:
		panic(fmt.Sprintf("symbolic: cannot differentiate %s", name))
	}
}
