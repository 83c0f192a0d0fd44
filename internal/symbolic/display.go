package symbolic

// Integral is the unevaluated integral display form. It is never
// produced by simplification; the explanation layer builds it to show
// the problem being worked on.
type Integral struct {
	integrand Expr
	variable  string
}

// IntegralOf builds the unevaluated integral of integrand with respect
// to variable.
func IntegralOf(integrand Expr, variable string) *Integral {
	return &Integral{integrand: integrand, variable: variable}
}

// Integrand returns the expression under the integral sign.
func (in *Integral) Integrand() Expr { return in.integrand }

// Variable returns the variable of integration.
func (in *Integral) Variable() string { return in.variable }

func (in *Integral) isExpr() {}

func (in *Integral) String() string {
	return "Integral(" + in.integrand.String() + ", " + in.variable + ")"
}

func (in *Integral) LaTeX() string {
	return `\int ` + in.integrand.LaTeX() + ` \, d` + in.variable
}

// Equation is the display form lhs = rhs.
type Equation struct {
	lhs Expr
	rhs Expr
}

// EquationOf builds the equation lhs = rhs.
func EquationOf(lhs, rhs Expr) *Equation {
	return &Equation{lhs: lhs, rhs: rhs}
}

func (e *Equation) isExpr() {}

func (e *Equation) String() string {
	return e.lhs.String() + " = " + e.rhs.String()
}

func (e *Equation) LaTeX() string {
	return e.lhs.LaTeX() + " = " + e.rhs.LaTeX()
}
