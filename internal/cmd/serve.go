package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/deeklead/scribe/internal/constants"
	"github.com/deeklead/scribe/internal/history"
	"github.com/deeklead/scribe/internal/symbolic"
	"github.com/deeklead/scribe/internal/web"
)

var (
	serveAddr string
	serveOpen bool
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	GroupID: GroupShare,
	Short:   "Start the web interface",
	Long: `Start a web server with a solve form, rendered step pages and a JSON
API.

Routes:
  GET /           Solve form
  GET /steps      Rendered derivation (query: expr, var, basic)
  GET /api/steps  The step document as JSON
  GET /health     Liveness probe

Example:
  scribe serve                  # Listen on the configured address
  scribe serve --addr :9000     # Listen on port 9000
  scribe serve --open           # Open the browser too`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "Open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	addr := pick(serveAddr, cfg.Addr)

	handler, err := web.NewHandler(recordingSolver{inner: web.NewLiveSolver(cfg.MaxDepth)})
	if err != nil {
		return fmt.Errorf("creating handler: %w", err)
	}

	url := serveURL(addr)
	if serveOpen {
		go openBrowser(url)
	}

	fmt.Printf("scribe listening at %s\n", url)
	fmt.Printf("   Press Ctrl+C to stop\n")

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-sigChan:
	}

	fmt.Println("\nShutting down")
	ctx, cancel := context.WithTimeout(context.Background(), constants.ServerShutdownTimeout)
	defer cancel()
	return server.Shutdown(ctx)
}

// recordingSolver appends each derivation the web interface runs to
// the history file, same as the CLI commands. Parse failures are not
// recorded; no derivation happened.
type recordingSolver struct {
	inner web.Solver
}

func (s recordingSolver) Solve(expression, variable string, basic bool) (web.StepsView, error) {
	start := time.Now()
	view, err := s.inner.Solve(expression, variable, basic)
	if errors.Is(err, symbolic.ErrParse) {
		return view, err
	}

	path, perr := constants.HistoryPath()
	if perr != nil {
		fmt.Fprintf(os.Stderr, "warning: not recording history: %v\n", perr)
		return view, err
	}

	entry := history.Entry{
		Expression: expression,
		Variable:   pick(view.Variable, pick(variable, constants.DefaultVariable)),
		Technique:  view.Technique,
		Outcome:    history.OutcomeUnsolved,
		DurationMS: time.Since(start).Milliseconds(),
	}
	switch {
	case err != nil:
		entry.Outcome = history.OutcomeError
	case view.Solved:
		entry.Outcome = history.OutcomeSolved
		entry.Answer = view.Answer
	}

	if aerr := history.Append(path, entry); aerr != nil {
		fmt.Fprintf(os.Stderr, "warning: not recording history: %v\n", aerr)
	}
	return view, err
}

// serveURL turns a listen address into something a browser can open.
func serveURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}

// openBrowser opens the specified URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	default:
		return
	}
	_ = cmd.Start()
}
