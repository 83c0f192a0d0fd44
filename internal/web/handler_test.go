package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deeklead/scribe/internal/document"
	"github.com/deeklead/scribe/internal/steps"
	"github.com/deeklead/scribe/internal/symbolic"
)

// MockSolver is a canned Solver implementation for handler tests.
type MockSolver struct {
	View  StepsView
	Error error

	// Last call arguments, for asserting query plumbing.
	GotExpression string
	GotVariable   string
	GotBasic      bool
}

func (m *MockSolver) Solve(expression, variable string, basic bool) (StepsView, error) {
	m.GotExpression = expression
	m.GotVariable = variable
	m.GotBasic = basic
	return m.View, m.Error
}

// sampleView builds a small but real document for render paths.
func sampleView() StepsView {
	b := document.NewBuilder()
	b.Text(0, "The integrand is a power of x. Apply the power rule:")
	b.Math(1, symbolic.MustParse("x^3/3"))

	return StepsView{
		Expression:   "x^2",
		Variable:     "x",
		ProblemLaTeX: `\int x^{2} \, dx`,
		Technique:    "power",
		Solved:       true,
		Answer:       "x^3/3 + C",
		Document:     b.Document(),
	}
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandler_IndexPage(t *testing.T) {
	handler, err := NewHandler(&MockSolver{})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	w := get(t, handler, "/")

	if w.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	body := w.Body.String()
	if !strings.Contains(body, `action="/steps"`) {
		t.Error("index should contain the steps form")
	}
	if !strings.Contains(body, `value="x"`) {
		t.Error("index should prefill the default variable")
	}
}

func TestHandler_RendersSteps(t *testing.T) {
	mock := &MockSolver{View: sampleView()}
	handler, err := NewHandler(mock)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	w := get(t, handler, "/steps?expr=x%5E2&var=x&basic=1")

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "Apply the power rule") {
		t.Error("response should contain the step prose")
	}
	if !strings.Contains(body, `\int x^{2} \, dx`) {
		t.Error("response should contain the problem heading")
	}

	if mock.GotExpression != "x^2" {
		t.Errorf("solver got expression %q, want x^2", mock.GotExpression)
	}
	if mock.GotVariable != "x" {
		t.Errorf("solver got variable %q, want x", mock.GotVariable)
	}
	if !mock.GotBasic {
		t.Error("solver should have been asked for basic rules")
	}
}

func TestHandler_MissingExpr(t *testing.T) {
	handler, err := NewHandler(&MockSolver{})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	w := get(t, handler, "/steps")

	if w.Code != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if !strings.Contains(w.Body.String(), "missing expr parameter") {
		t.Error("response should name the missing parameter")
	}
}

func TestHandler_ParseError(t *testing.T) {
	mock := &MockSolver{Error: fmt.Errorf("%w: unexpected '('", symbolic.ErrParse)}
	handler, err := NewHandler(mock)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	w := get(t, handler, "/steps?expr=2*(x")

	if w.Code != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if !strings.Contains(w.Body.String(), "invalid expression") {
		t.Error("response should carry the parse error")
	}
}

func TestHandler_NoClosedFormPage(t *testing.T) {
	mock := &MockSolver{Error: fmt.Errorf("%w: division by zero", steps.ErrNoClosedForm)}
	handler, err := NewHandler(mock)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	w := get(t, handler, "/steps?expr=x%5E-1")

	if w.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), "No closed form found") {
		t.Error("response should explain the failed derivation")
	}
}

func TestHandler_API(t *testing.T) {
	handler, err := NewHandler(&MockSolver{View: sampleView()})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	w := get(t, handler, "/api/steps?expr=x%5E2")

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var resp apiResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Expression != "x^2" || resp.Technique != "power" || !resp.Solved {
		t.Errorf("response = %+v, want solved power rule for x^2", resp)
	}
	if resp.Answer != "x^3/3 + C" {
		t.Errorf("Answer = %q, want x^3/3 + C", resp.Answer)
	}
	if len(resp.Document) == 0 {
		t.Error("response should embed the document")
	}
}

func TestHandler_APIStatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		want   int
	}{
		{"missing expr", "/api/steps", nil, http.StatusBadRequest},
		{"parse error", "/api/steps?expr=bad(", fmt.Errorf("%w: oops", symbolic.ErrParse), http.StatusBadRequest},
		{"no closed form", "/api/steps?expr=x", fmt.Errorf("%w: fault", steps.ErrNoClosedForm), http.StatusUnprocessableEntity},
		{"unexpected", "/api/steps?expr=x", errors.New("disk on fire"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, err := NewHandler(&MockSolver{Error: tt.err})
			if err != nil {
				t.Fatalf("NewHandler() error = %v", err)
			}

			w := get(t, handler, tt.target)

			if w.Code != tt.want {
				t.Errorf("Status = %d, want %d", w.Code, tt.want)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("error body is not JSON: %v", err)
			}
			if body["error"] == "" {
				t.Error("error body should carry a message")
			}
		})
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	handler, err := NewHandler(&MockSolver{})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	req := httptest.NewRequest("POST", "/steps?expr=x", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusMethodNotAllowed)
	}
}

func TestHandler_NotFound(t *testing.T) {
	handler, err := NewHandler(&MockSolver{})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	w := get(t, handler, "/nope")

	if w.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestHandler_Health(t *testing.T) {
	handler, err := NewHandler(&MockSolver{})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	w := get(t, handler, "/health")

	if w.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
	}
	if !strings.Contains(w.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %q, want status ok", w.Body.String())
	}
}

func TestLiveSolver(t *testing.T) {
	solver := NewLiveSolver(0)

	view, err := solver.Solve("x^2", "", false)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}
	if !view.Solved {
		t.Error("x^2 should solve")
	}
	if view.Variable != "x" {
		t.Errorf("Variable = %q, want default x", view.Variable)
	}
	if view.Answer != "x^3/3 + C" {
		t.Errorf("Answer = %q, want x^3/3 + C", view.Answer)
	}
	if !strings.Contains(view.ProblemLaTeX, `\int`) {
		t.Errorf("ProblemLaTeX = %q, want an integral", view.ProblemLaTeX)
	}
	if view.Document.Len() == 0 {
		t.Error("document should not be empty")
	}
}

func TestLiveSolverParseError(t *testing.T) {
	solver := NewLiveSolver(0)

	_, err := solver.Solve("2*(x", "x", false)
	if !errors.Is(err, symbolic.ErrParse) {
		t.Fatalf("Solve(malformed) error = %v, want ErrParse", err)
	}
}

func TestLiveSolverBasicFlag(t *testing.T) {
	solver := NewLiveSolver(0)

	basic, err := solver.Solve("sin(x)", "x", true)
	if err != nil {
		t.Fatalf("Solve(basic) error = %v", err)
	}
	if basic.Solved {
		t.Error("basic rules should not solve sin(x)")
	}

	extended, err := solver.Solve("sin(x)", "x", false)
	if err != nil {
		t.Fatalf("Solve(extended) error = %v", err)
	}
	if !extended.Solved {
		t.Error("extended rules should solve sin(x)")
	}
	if extended.Answer != "-cos(x) + C" {
		t.Errorf("Answer = %q, want -cos(x) + C", extended.Answer)
	}
}

func TestHandler_LiveEndToEnd(t *testing.T) {
	handler, err := NewHandler(NewLiveSolver(0))
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	w := get(t, handler, "/steps?expr=2*x*exp(x%5E2)")

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "Let u = x^2") {
		t.Error("substitution steps should introduce u")
	}

	api := get(t, handler, "/api/steps?expr=2*x*exp(x%5E2)")
	var resp apiResponse
	if err := json.Unmarshal(api.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding API response: %v", err)
	}
	if resp.Technique != "u-substitution" || !resp.Solved {
		t.Errorf("API response = %+v, want solved substitution", resp)
	}
	if resp.Answer != "exp(x^2) + C" {
		t.Errorf("Answer = %q, want exp(x^2) + C", resp.Answer)
	}
}
