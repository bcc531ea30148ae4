package prober

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rmalka/county-chairs/internal/fetcher"
)

// goodPage passes the content heuristic: long enough and keyword-rich.
var goodPage = "<html><body>" +
	strings.Repeat("County chair directory. ", 50) +
	"Republican GOP contact email chair@example.org example.com example.org" +
	"</body></html>"

func TestProbeFirstHitShortCircuits(t *testing.T) {
	var third atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/a", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/b", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(goodPage))
	})
	mux.HandleFunc("/c", func(w http.ResponseWriter, r *http.Request) {
		third.Add(1)
		w.Write([]byte(goodPage))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p := New(fetcher.NewStatic(time.Second), -1)
	result, err := p.Probe(context.Background(), "OH",
		[]string{srv.URL + "/a", srv.URL + "/b", srv.URL + "/c"})
	if err != nil {
		t.Fatalf("probe failed: %v", err)
	}

	if result.URL != srv.URL+"/b" {
		t.Errorf("expected /b to win, got %s", result.URL)
	}
	if third.Load() != 0 {
		t.Error("probe must short-circuit after first hit, /c was fetched")
	}
}

func TestProbeAllCandidatesFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body>tiny</body></html>"))
	}))
	defer srv.Close()

	p := New(fetcher.NewStatic(time.Second), -1)
	_, err := p.Probe(context.Background(), "OH", []string{srv.URL + "/x", srv.URL + "/y"})

	if !errors.Is(err, ErrNoWorkingURL) {
		t.Errorf("expected ErrNoWorkingURL, got %v", err)
	}
}

func TestProbeSkips200WithoutData(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/empty", func(w http.ResponseWriter, r *http.Request) {
		// 200 but fails the heuristic.
		w.Write([]byte("<html><body>" + strings.Repeat("lorem ipsum ", 200) + "</body></html>"))
	})
	mux.HandleFunc("/data", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(goodPage))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p := New(fetcher.NewStatic(time.Second), -1)
	result, err := p.Probe(context.Background(), "PA", []string{srv.URL + "/empty", srv.URL + "/data"})
	if err != nil {
		t.Fatalf("probe failed: %v", err)
	}
	if result.URL != srv.URL+"/data" {
		t.Errorf("expected /data, got %s", result.URL)
	}
}

func TestHasCountyData(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected bool
	}{
		{
			name:     "keyword rich page",
			html:     goodPage,
			expected: true,
		},
		{
			name:     "too short",
			html:     "<html><body>County chair gop republican contact</body></html>",
			expected: false,
		},
		{
			name:     "soft 404",
			html:     strings.Repeat("x", 1200) + " Page Not Found county chair gop republican contact email",
			expected: false,
		},
		{
			name:     "long but keyword poor",
			html:     "<html><body>" + strings.Repeat("lorem ipsum dolor ", 100) + "</body></html>",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCountyData(tt.html); got != tt.expected {
				t.Errorf("HasCountyData = %v, expected %v", got, tt.expected)
			}
		})
	}
}
