package base

import (
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
)

// FetchDocumentSelenium renders the URL through a local chromedriver and parses the page source
func (b *BaseScraper) FetchDocumentSelenium(ctx context.Context, pageURL string) (*goquery.Document, error) {
	InitPortManager(4444, 16)

	port, err := GlobalPortManager.GetPort()
	if err != nil {
		return nil, fmt.Errorf("port error: %w", err)
	}
	defer GlobalPortManager.ReleasePort(port)

	service, err := selenium.NewChromeDriverService(b.ChromeDriverPath, port)
	if err != nil {
		return nil, fmt.Errorf("error starting Chrome driver service: %w", err)
	}
	defer service.Stop()

	caps := selenium.Capabilities{"browserName": "chrome"}
	caps.AddChrome(chrome.Capabilities{
		Args: []string{
			"--headless=new",
			"--no-sandbox",
			"--disable-dev-shm-usage",
			"--disable-blink-features=AutomationControlled",
			"--disable-gpu",
			"--window-size=1920,1080",
			fmt.Sprintf("--user-agent=%s", b.UserAgent),
		},
		ExcludeSwitches: []string{"enable-automation"},
	})

	driver, err := selenium.NewRemote(caps, fmt.Sprintf("http://localhost:%d/wd/hub", port))
	if err != nil {
		return nil, fmt.Errorf("error creating WebDriver: %w", err)
	}
	defer driver.Quit()

	if err := driver.SetPageLoadTimeout(60 * time.Second); err != nil {
		return nil, fmt.Errorf("page load timeout error: %w", err)
	}
	if err := driver.Get(pageURL); err != nil {
		return nil, fmt.Errorf("navigation error: %w", err)
	}

	// give client-side rendering a moment, unless the run is being cancelled
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(3 * time.Second):
	}

	html, err := driver.PageSource()
	if err != nil {
		return nil, fmt.Errorf("page source error: %w", err)
	}

	return newDocument(html, pageURL)
}
