// Package render is the rendering adapter: it takes a document name plus a
// context mapping and produces HTML, rasterized PDF, and the web-facing
// schedule exports. The enrichment core never imports it; data flows one way.
package render

import (
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"zosiaprint/internal/config"
	appLog "zosiaprint/internal/log"
)

// Context is the template context mapping handed to a document template.
type Context map[string]any

// Engine renders named documents from the templates directory into the
// target directory. Each document lives in its own subdirectory next to its
// assets: templates/book/book_template.html, templates/book/style.css, ...
type Engine struct {
	TemplatesDir string
	TargetDir    string

	// HTMLOnly skips PDF rasterization entirely.
	HTMLOnly bool

	// Debug additionally writes the intermediate HTML next to each PDF.
	Debug bool

	// PDF holds rasterization parameters (page size, timeout).
	PDF config.PDFConfig

	srv *server
}

// Start prepares the engine: ensures the target directory exists and, when
// PDF output is wanted, boots the local preview server Chromium will load
// documents from. Always pair with Close.
func (e *Engine) Start() error {
	if err := os.MkdirAll(e.TargetDir, 0o755); err != nil {
		return fmt.Errorf("render: create target dir: %w", err)
	}
	if e.HTMLOnly {
		return nil
	}

	e.srv = newServer(e.TemplatesDir)
	if err := e.srv.start(); err != nil {
		return fmt.Errorf("render: start preview server: %w", err)
	}
	appLog.Debug("preview server started", "base_url", e.srv.baseURL())
	return nil
}

// Close shuts the preview server down.
func (e *Engine) Close() {
	if e.srv != nil {
		e.srv.close()
		e.srv = nil
	}
}

// RenderDocument renders templates/<doc>/<doc>_template.html with tmplCtx
// and writes <target>/<doc>.pdf (and/or <doc>.html, per HTMLOnly/Debug).
func (e *Engine) RenderDocument(ctx context.Context, doc string, tmplCtx Context) error {
	body, err := e.renderHTML(doc, tmplCtx)
	if err != nil {
		return err
	}

	target := filepath.Join(e.TargetDir, doc)

	if e.HTMLOnly || e.Debug {
		if err := os.WriteFile(target+".html", body, 0o644); err != nil {
			return fmt.Errorf("render: write %s.html: %w", doc, err)
		}
	}
	if e.HTMLOnly {
		return nil
	}

	// Publish the rendered document on the preview server so relative
	// asset URLs resolve against the document's template directory.
	docPath := "/" + doc + "/" + doc + ".html"
	e.srv.setDocument(docPath, body)

	return printPDF(ctx, pdfOptions{
		URL:           e.srv.baseURL() + docPath,
		OutputPath:    target + ".pdf",
		PaperWidthIn:  e.PDF.PaperWidthIn,
		PaperHeightIn: e.PDF.PaperHeightIn,
		Timeout:       time.Duration(e.PDF.TimeoutSec) * time.Second,
	})
}

// renderHTML executes the document's template against tmplCtx.
func (e *Engine) renderHTML(doc string, tmplCtx Context) ([]byte, error) {
	path := filepath.Join(e.TemplatesDir, doc, doc+"_template.html")

	tmpl, err := template.ParseFiles(path)
	if err != nil {
		return nil, fmt.Errorf("render: parse template %s: %w", path, err)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, tmplCtx); err != nil {
		return nil, fmt.Errorf("render: execute template %s: %w", path, err)
	}
	return []byte(sb.String()), nil
}
