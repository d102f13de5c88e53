package preview

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/domkit-dev/domkit/internal/config"
	"github.com/domkit-dev/domkit/pkg/dom"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandlePage(t *testing.T) {
	t.Run("serves the page function's document", func(t *testing.T) {
		s := NewServer(Options{
			Logger: testLogger(),
			Page: func() *dom.Node {
				return dom.NewElement("html", dom.NewElement("body", "hi", nil), nil)
			},
		})

		rec := httptest.NewRecorder()
		s.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %v, want 200", rec.Code)
		}
		if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
			t.Errorf("Content-Type = %v", ct)
		}
		body := rec.Body.String()
		if !strings.HasPrefix(body, "<!DOCTYPE html>\n") {
			t.Errorf("body missing doctype: %q", body)
		}
		if !strings.Contains(body, "<body>hi</body>") {
			t.Errorf("body = %q", body)
		}
	})

	t.Run("default page is the showcase", func(t *testing.T) {
		cfg := config.Default()
		cfg.Preview.Title = "my project"
		s := NewServer(Options{Config: cfg, Logger: testLogger()})

		rec := httptest.NewRecorder()
		s.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if !strings.Contains(rec.Body.String(), "<title>my project</title>") {
			t.Error("showcase page must use the configured title")
		}
	})

	t.Run("metrics endpoint only when enabled", func(t *testing.T) {
		s := NewServer(Options{Logger: testLogger()})
		rec := httptest.NewRecorder()
		s.routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if rec.Code == http.StatusOK {
			t.Errorf("status = %v, want not found with metrics disabled", rec.Code)
		}
	})
}

func TestShowcasePage(t *testing.T) {
	page := ShowcasePage("t")
	if page.Tag != "html" {
		t.Errorf("Tag = %v, want html", page.Tag)
	}
	if page.Find("form") == nil {
		t.Error("showcase must include a form")
	}
	if page.Find("select") == nil {
		t.Error("showcase must include a select")
	}
	if page.Find("table") == nil {
		t.Error("showcase must include a table")
	}
	if page.Find("script") == nil {
		t.Error("showcase must include the reload script")
	}
}
