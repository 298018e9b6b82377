package base_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/raushankrgupta/carma-scraper/config"
	"github.com/raushankrgupta/carma-scraper/scrapers/base"
	"github.com/stretchr/testify/require"
)

func TestFetchDocumentHTTP(t *testing.T) {
	cfg := config.Default()

	t.Run("sends browser user agent and parses body", func(t *testing.T) {
		userAgents := make(chan string, 1)
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userAgents <- r.Header.Get("User-Agent")
			fmt.Fprint(w, `<html><body><h1>Cars</h1></body></html>`)
		}))
		defer testServer.Close()

		doc, err := base.NewBaseScraper(cfg).FetchDocument(context.Background(), testServer.URL)
		require.NoError(t, err)

		if gotUA := <-userAgents; gotUA != cfg.UserAgent {
			t.Errorf("got User-Agent %q, want %q", gotUA, cfg.UserAgent)
		}
		if got := doc.Find("h1").Text(); got != "Cars" {
			t.Errorf("got h1 %q, want %q", got, "Cars")
		}
		if doc.Url == nil || doc.Url.String() != testServer.URL {
			t.Errorf("got document url %v, want %s", doc.Url, testServer.URL)
		}
	})

	t.Run("return error on non-success status", func(t *testing.T) {
		statuses := []int{
			http.StatusForbidden,
			http.StatusNotFound,
			http.StatusTooManyRequests,
			http.StatusInternalServerError,
		}
		for _, status := range statuses {
			testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, http.StatusText(status), status)
			}))

			_, err := base.NewBaseScraper(cfg).FetchDocumentHTTP(context.Background(), testServer.URL)
			testServer.Close()

			want := fmt.Sprintf("status code error: %d %s", status, http.StatusText(status))
			if err == nil || err.Error() != want {
				t.Errorf("got %v, want %q", err, want)
			}
		}
	})

	t.Run("return error on transport failure", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := testServer.URL
		testServer.Close()

		_, err := base.NewBaseScraper(cfg).FetchDocumentHTTP(context.Background(), url)
		if err == nil {
			t.Error("expected error for closed server")
		}
	})
}

func TestFetchDocumentUnknownMode(t *testing.T) {
	cfg := config.Default()
	cfg.FetchMode = "carrier-pigeon"

	_, err := base.NewBaseScraper(cfg).FetchDocument(context.Background(), "http://localhost")
	if err == nil || err.Error() != "unknown fetch mode: carrier-pigeon" {
		t.Errorf("got %v", err)
	}
}
