// Package web serves step documents over HTTP.
//
// Three endpoints: GET / is the input form, GET /steps renders a full
// derivation page, and GET /api/steps returns the document as JSON.
// The Solver is injected so tests run without a kernel.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"runtime/debug"

	"github.com/deeklead/scribe/internal/constants"
	"github.com/deeklead/scribe/internal/document"
	"github.com/deeklead/scribe/internal/render"
	"github.com/deeklead/scribe/internal/steps"
	"github.com/deeklead/scribe/internal/symbolic"
)

// Handler routes the scribe web endpoints.
type Handler struct {
	solver Solver
	index  *template.Template
}

// NewHandler creates a handler with the given solver. The index
// template is parsed here so a broken build fails at startup, not on
// the first request.
func NewHandler(solver Solver) (*Handler, error) {
	tmpl, err := template.New("index").Parse(indexHTML)
	if err != nil {
		return nil, fmt.Errorf("parsing index template: %w", err)
	}

	return &Handler{
		solver: solver,
		index:  tmpl,
	}, nil
}

// ServeHTTP dispatches by path. Every endpoint is GET.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("panic in %s: %v\n%s", r.URL.Path, rec, string(debug.Stack()))
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}()

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch r.URL.Path {
	case "/":
		h.serveIndex(w, r)
	case "/steps":
		h.serveSteps(w, r)
	case "/api/steps":
		h.serveAPI(w, r)
	case "/health":
		h.serveHealth(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) serveIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	data := struct {
		AppName  string
		Variable string
	}{
		AppName:  constants.AppName,
		Variable: constants.DefaultVariable,
	}
	if err := h.index.Execute(w, data); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

func (h *Handler) serveSteps(w http.ResponseWriter, r *http.Request) {
	view, err := h.solveQuery(r)
	if err != nil {
		switch {
		case errors.Is(err, errMissingExpr), errors.Is(err, symbolic.ErrParse):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, steps.ErrNoClosedForm):
			h.serveNoClosedForm(w, r.URL.Query().Get("expr"))
		default:
			http.Error(w, "Failed to solve integrand", http.StatusInternalServerError)
		}
		return
	}

	page, err := render.HTMLPage(render.Page{
		Title:        "Integral of " + view.Expression,
		ProblemLaTeX: view.ProblemLaTeX,
		Document:     view.Document,
	})
	if err != nil {
		http.Error(w, "Failed to render steps", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, page)
}

// serveNoClosedForm renders a prose-only page for integrands the
// evaluator faulted on. This is a user outcome, not a server error.
func (h *Handler) serveNoClosedForm(w http.ResponseWriter, expr string) {
	b := document.NewBuilder()
	b.Textf(0, "No closed form found for %s.", expr)
	b.Text(0, "The rule engine could not produce an antiderivative with its known techniques.")

	page, err := render.HTMLPage(render.Page{
		Title:    "No closed form",
		Document: b.Document(),
	})
	if err != nil {
		http.Error(w, "Failed to render steps", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, page)
}

// apiResponse is the JSON shape of /api/steps.
type apiResponse struct {
	Expression string          `json:"expression"`
	Variable   string          `json:"variable"`
	Technique  string          `json:"technique"`
	Solved     bool            `json:"solved"`
	Answer     string          `json:"answer,omitempty"`
	Document   json.RawMessage `json:"document"`
}

func (h *Handler) serveAPI(w http.ResponseWriter, r *http.Request) {
	view, err := h.solveQuery(r)
	if err != nil {
		writeJSONError(w, statusFor(err), err)
		return
	}

	doc, err := render.JSON(view.Document)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(apiResponse{
		Expression: view.Expression,
		Variable:   view.Variable,
		Technique:  view.Technique,
		Solved:     view.Solved,
		Answer:     view.Answer,
		Document:   doc,
	})
}

func (h *Handler) serveHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// errMissingExpr reports a /steps or /api/steps request without an
// expr parameter.
var errMissingExpr = errors.New("missing expr parameter")

// solveQuery runs the request query through the solver.
func (h *Handler) solveQuery(r *http.Request) (StepsView, error) {
	q := r.URL.Query()
	expr := q.Get("expr")
	if expr == "" {
		return StepsView{}, errMissingExpr
	}
	basic := q.Get("basic") == "1" || q.Get("basic") == "true"
	return h.solver.Solve(expr, q.Get("var"), basic)
}

// statusFor maps solver errors to API status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errMissingExpr), errors.Is(err, symbolic.ErrParse):
		return http.StatusBadRequest
	case errors.Is(err, steps.ErrNoClosedForm):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSONError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
