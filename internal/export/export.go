// Package export renders step documents to PNG images through a
// headless browser.
//
// The HTML renderer already produces a standalone page; export writes
// it to a temp file, opens it in a locally installed Chromium-based
// browser, waits for KaTeX to typeset, and captures a full-page
// screenshot. Browsers are never downloaded; a missing one is an
// error pointing at "scribe doctor".
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/deeklead/scribe/internal/constants"
	"github.com/deeklead/scribe/internal/render"
)

// ErrNoBrowser indicates no Chromium-based browser was found on this
// machine.
var ErrNoBrowser = errors.New(`no chromium-based browser found (install one or run "scribe doctor")`)

// PNG renders a page to a PNG file at out.
func PNG(p render.Page, out string) error {
	html, err := render.HTMLPage(p)
	if err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}

	dir, err := os.MkdirTemp("", "scribe-export-")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	htmlPath := filepath.Join(dir, "steps.html")
	if err := os.WriteFile(htmlPath, []byte(html), constants.FileMode); err != nil {
		return fmt.Errorf("writing page: %w", err)
	}

	shot, err := capture(fileURL(htmlPath))
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, shot, constants.OutFileMode); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return nil
}

// capture opens url in a headless browser and screenshots the full
// page.
func capture(url string) ([]byte, error) {
	bin, ok := launcher.LookPath()
	if !ok {
		return nil, ErrNoBrowser
	}

	controlURL, err := launcher.New().Bin(bin).Headless(true).Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}
	defer func() { _ = browser.Close() }()

	page, err := browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("loading page: %w", err)
	}

	waitForKaTeX(page)

	shot, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("capturing screenshot: %w", err)
	}
	return shot, nil
}

// waitForKaTeX polls until the CDN script has typeset at least one
// block or the settle timeout passes. When the CDN is unreachable the
// capture shows raw TeX instead.
func waitForKaTeX(page *rod.Page) {
	deadline := time.Now().Add(constants.ExportSettleTimeout)
	for time.Now().Before(deadline) {
		els, err := page.Elements(".katex")
		if err == nil && len(els) > 0 {
			// Give the last block one more interval to paint.
			time.Sleep(constants.ExportPollInterval)
			return
		}
		time.Sleep(constants.ExportPollInterval)
	}
	fmt.Fprintln(os.Stderr, "warning: math did not finish typesetting before the timeout, exporting anyway")
}

// fileURL converts a local path to a file:// URL.
func fileURL(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return "file://" + filepath.ToSlash(abs)
}
