package render

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Default rasterization parameters (A4 portrait).
const (
	defaultPaperWidthIn  = 8.27
	defaultPaperHeightIn = 11.69
	defaultPDFTimeoutSec = 30
)

// pdfOptions defines parameters for one Chromium-based PDF rasterization.
type pdfOptions struct {
	// URL of the rendered document on the preview server.
	URL string

	// OutputPath is where the PDF will be written, e.g. "./gen/book.pdf".
	OutputPath string

	// PaperWidthIn / PaperHeightIn are page dimensions in inches. If zero,
	// A4 defaults are used.
	PaperWidthIn  float64
	PaperHeightIn float64

	// Timeout bounds the entire rasterization. If zero, a sane default is
	// used.
	Timeout time.Duration
}

// printPDF launches a headless Chromium instance via chromedp, navigates to
// opts.URL, waits for the document to finish loading, and rasterizes it to
// PDF through the DevTools Page.printToPDF command. Print-media CSS in the
// templates (page breaks, card grids) drives the layout.
func printPDF(parentCtx context.Context, opts pdfOptions) error {
	if opts.URL == "" {
		return fmt.Errorf("render: URL is required")
	}
	if opts.OutputPath == "" {
		return fmt.Errorf("render: OutputPath is required")
	}
	if opts.PaperWidthIn <= 0 {
		opts.PaperWidthIn = defaultPaperWidthIn
	}
	if opts.PaperHeightIn <= 0 {
		opts.PaperHeightIn = defaultPaperHeightIn
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultPDFTimeoutSec * time.Second
	}

	// Create a new chromedp context.
	ctx, cancel := chromedp.NewContext(parentCtx)
	defer cancel()

	// Apply timeout to the entire rasterization sequence.
	ctx, timeoutCancel := context.WithTimeout(ctx, opts.Timeout)
	defer timeoutCancel()

	var pdf []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(opts.URL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(opts.PaperWidthIn).
				WithPaperHeight(opts.PaperHeightIn).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	}

	if err := chromedp.Run(ctx, tasks); err != nil {
		return fmt.Errorf("render: chromedp run failed: %w", err)
	}

	if err := os.WriteFile(opts.OutputPath, pdf, 0o644); err != nil {
		return fmt.Errorf("render: failed to write PDF: %w", err)
	}

	return nil
}
