package symbolic

// Call is a unary elementary function application such as sin(x).
type Call struct {
	name string
	arg  Expr
}

// Fn builds the application name(arg). Special values fold: sin(0),
// tan(0), asin(0) and atan(0) are 0; cos(0) and exp(0) are 1; log(1)
// is 0. Everything else stays symbolic, including log(2).
func Fn(name string, arg Expr) Expr {
	if n, ok := arg.(*Num); ok {
		switch name {
		case "sin", "tan", "asin", "atan":
			if n.isZero() {
				return N(0)
			}
		case "cos":
			if n.isZero() {
				return N(1)
			}
		case "exp":
			if n.isZero() {
				return N(1)
			}
		case "log":
			if n.isOne() {
				return N(0)
			}
		}
	}
	return &Call{name: name, arg: arg}
}

// Sin builds sin(e).
func Sin(e Expr) Expr { return Fn("sin", e) }

// Cos builds cos(e).
func Cos(e Expr) Expr { return Fn("cos", e) }

// Tan builds tan(e).
func Tan(e Expr) Expr { return Fn("tan", e) }

// Asin builds asin(e).
func Asin(e Expr) Expr { return Fn("asin", e) }

// Acos builds acos(e).
func Acos(e Expr) Expr { return Fn("acos", e) }

// Atan builds atan(e).
func Atan(e Expr) Expr { return Fn("atan", e) }

// Exp builds exp(e).
func Exp(e Expr) Expr { return Fn("exp", e) }

// Log builds the natural logarithm log(e).
func Log(e Expr) Expr { return Fn("log", e) }

// Name returns the function name.
func (c *Call) Name() string { return c.name }

// Arg returns the call argument.
func (c *Call) Arg() Expr { return c.arg }

func (c *Call) isExpr() {}

func (c *Call) String() string {
	return c.name + "(" + c.arg.String() + ")"
}

var latexFuncNames = map[string]string{
	"sin":  `\sin`,
	"cos":  `\cos`,
	"tan":  `\tan`,
	"asin": `\arcsin`,
	"acos": `\arccos`,
	"atan": `\arctan`,
	"log":  `\ln`,
}

func (c *Call) LaTeX() string {
	if c.name == "exp" {
		return "e^{" + c.arg.LaTeX() + "}"
	}
	name, ok := latexFuncNames[c.name]
	if !ok {
		name = `\operatorname{` + c.name + `}`
	}
	return name + `\left(` + c.arg.LaTeX() + `\right)`
}
