package render

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/chromedp"
)

// Renderer draws page 1 of the document at documentURL at the given scale
// and returns the resulting PNG bytes.
type Renderer interface {
	RenderFirstPage(ctx context.Context, documentURL string, scale float64) ([]byte, error)
}

// Func adapts a plain function to the Renderer interface.
type Func func(ctx context.Context, documentURL string, scale float64) ([]byte, error)

// RenderFirstPage implements Renderer.
func (f Func) RenderFirstPage(ctx context.Context, documentURL string, scale float64) ([]byte, error) {
	return f(ctx, documentURL, scale)
}

// Letter page dimensions in CSS pixels at scale 1.
const (
	basePageWidth  = 612
	basePageHeight = 792
)

// ChromeRenderer renders documents in a headless browser.
// Requires Chrome/Chromium to be installed on the system.
type ChromeRenderer struct {
	Timeout time.Duration
	Verbose bool
}

// NewChromeRenderer creates a renderer with the given per-render timeout.
func NewChromeRenderer(timeout time.Duration) *ChromeRenderer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChromeRenderer{Timeout: timeout}
}

// RenderFirstPage implements Renderer. Failures of any kind (unreachable
// URL, malformed document, browser startup) surface as *RenderError.
func (r *ChromeRenderer) RenderFirstPage(ctx context.Context, documentURL string, scale float64) ([]byte, error) {
	if documentURL == "" {
		return nil, &RenderError{Message: "document URL is empty"}
	}
	if scale <= 0 {
		scale = 1
	}

	if r.Verbose {
		log.Printf("[render] rendering page 1 of %s at scale %.2f", documentURL, scale)
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, r.Timeout)
	defer cancel()

	width := int64(basePageWidth * scale)
	height := int64(basePageHeight * scale)

	var png []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(width, height),
		chromedp.Navigate(documentURL),
		chromedp.WaitReady("body"),
		// Give the built-in document viewer time to paint the first page.
		chromedp.Sleep(1*time.Second),
		chromedp.CaptureScreenshot(&png),
	)
	if err != nil {
		return nil, &RenderError{
			Message: fmt.Sprintf("failed to render %s", documentURL),
			Cause:   err,
		}
	}

	if r.Verbose {
		log.Printf("[render] rendered %s: %d bytes", documentURL, len(png))
	}
	return png, nil
}
