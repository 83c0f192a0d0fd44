package doctor

import (
	"fmt"

	"github.com/deeklead/scribe/internal/steps"
	"github.com/deeklead/scribe/internal/symbolic"
)

// EngineCheck integrates a known integrand and differentiates the
// answer back, exercising the parser, the rule engine, the evaluator
// and the simplifier in one pass.
type EngineCheck struct {
	BaseCheck
}

// NewEngineCheck creates a new engine self-test.
func NewEngineCheck() *EngineCheck {
	return &EngineCheck{
		BaseCheck: BaseCheck{
			CheckName:        "engine-selftest",
			CheckDescription: "Integrate x^3 and differentiate the answer back",
			CheckCategory:    CategoryEngine,
		},
	}
}

// Run performs the round trip.
func (c *EngineCheck) Run(ctx *CheckContext) *CheckResult {
	const input = "x^3"

	k := symbolic.NewKernel()
	expr, err := symbolic.Parse(input)
	if err != nil {
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusError,
			Message: "Engine self-test could not parse its own input",
			Details: []string{err.Error()},
		}
	}

	answer, err := steps.Answer(k, expr, "x", steps.Options{Extended: true})
	if err != nil {
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusError,
			Message: fmt.Sprintf("Engine failed to integrate %s", input),
			Details: []string{err.Error()},
		}
	}

	// The constant of integration differentiates away.
	back := k.Simplify(k.Diff(answer, "x"))
	want := k.Simplify(expr)
	if !k.Equal(back, want) {
		return &CheckResult{
			Name:    c.Name(),
			Status:  StatusError,
			Message: "Engine round trip failed",
			Details: []string{
				fmt.Sprintf("integrated %s to %s", input, answer),
				fmt.Sprintf("differentiating back gave %s, want %s", back, want),
			},
		}
	}

	return &CheckResult{
		Name:    c.Name(),
		Status:  StatusOK,
		Message: fmt.Sprintf("Integrated %s and differentiated the answer back", input),
	}
}
