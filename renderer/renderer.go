package renderer

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// Most Turkish real-estate portals hydrate their article bodies client
// side, so a plain HTTP fetch returns an empty shell. RenderHTML loads
// the page in headless Chrome and returns the DOM after hydration.

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/118.0.0.0 Safari/537.36"

const renderTimeout = 30 * time.Second

// settleDelay gives client-side routers time to inject the article body
// after the initial DOM is ready.
const settleDelay = 1 * time.Second

func RenderHTML(ctx context.Context, url string) (string, error) {
	chromePath := os.Getenv("CHROME_PATH")
	if chromePath == "" {
		chromePath = "/usr/bin/chromium-browser"
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(chromePath),
		chromedp.UserAgent(userAgent),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-crashpad", true),
		chromedp.Flag("disable-breakpad", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("no-default-browser-check", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("headless", true),
		// Listing pages are image heavy; text extraction never needs them.
		chromedp.Flag("blink-settings", "imagesEnabled=false"),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()
	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()
	browserCtx, cancel = context.WithTimeout(browserCtx, renderTimeout)
	defer cancel()

	var htmlContent string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(settleDelay),
		chromedp.OuterHTML("html", &htmlContent),
	)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(htmlContent) == "" {
		return "", errors.New("renderer: empty document for " + url)
	}
	return htmlContent, nil
}
