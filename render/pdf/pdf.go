// Package pdf generates a PDF from a document's HTML rendering by shelling
// out to a headless browser (spec.md §6: "PDF: generated from HTML by a
// headless-browser rendering step"). The browser itself is an external
// collaborator (spec.md §2): this package only owns the interface to it —
// writing the HTML to a temp file, invoking the configured binary, and
// reading back the PDF bytes it produced.
package pdf

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/unimarkup/unimarkup-go/block"
	"github.com/unimarkup/unimarkup-go/errs"
	"github.com/unimarkup/unimarkup-go/render/html"
)

// BrowserEnvVar names the environment variable used to override the
// headless-browser binary, mirroring how the teacher's shell runner
// resolves its program from an environment override before falling back to
// a default (shellcmd.shellProg).
const BrowserEnvVar = "UNIMARKUP_PDF_BROWSER"

// DefaultBrowser is used when BrowserEnvVar is unset. Any Chromium-family
// binary supporting "--headless --print-to-pdf" satisfies the interface.
const DefaultBrowser = "chromium"

// Render generates a PDF for doc by rendering it to HTML, writing that HTML
// to a temporary file, and invoking a headless browser to print it to PDF.
func Render(ctx context.Context, doc block.Document) ([]byte, error) {
	htmlBody := html.Render(doc)

	dir, err := os.MkdirTemp("", "unimarkup-pdf-*")
	if err != nil {
		return nil, errs.Render("pdf", errors.Wrap(err, "create temp dir"))
	}
	defer os.RemoveAll(dir)

	htmlPath := filepath.Join(dir, "input.html")
	if err := os.WriteFile(htmlPath, []byte(wrapHTMLDocument(htmlBody)), 0o644); err != nil {
		return nil, errs.Render("pdf", errors.Wrap(err, "write intermediate html"))
	}

	pdfPath := filepath.Join(dir, "output.pdf")
	if err := runHeadlessBrowser(ctx, htmlPath, pdfPath); err != nil {
		return nil, errs.Render("pdf", err)
	}

	out, err := os.ReadFile(pdfPath)
	if err != nil {
		return nil, errs.Render("pdf", errors.Wrap(err, "read generated pdf"))
	}
	return out, nil
}

func runHeadlessBrowser(ctx context.Context, htmlPath, pdfPath string) error {
	prog := browserProg()
	cmd := exec.CommandContext(ctx, prog,
		"--headless",
		"--disable-gpu",
		"--print-to-pdf="+pdfPath,
		htmlPath,
	)
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "run %s", prog)
	}
	return nil
}

func browserProg() string {
	if p := os.Getenv(BrowserEnvVar); p != "" {
		return p
	}
	return DefaultBrowser
}

func wrapHTMLDocument(body string) string {
	return "<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"></head><body>\n" + body + "</body></html>\n"
}
