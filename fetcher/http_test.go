package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"immo-scanner/utils"
)

func TestHTTPFetcherReturnsBody(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5*time.Second, utils.NewLogger())
	html, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if html != "<html><body>ok</body></html>" {
		t.Errorf("body = %q", html)
	}

	inPool := false
	for _, ua := range UserAgents {
		if ua == gotUA {
			inPool = true
		}
	}
	if !inPool {
		t.Errorf("User-Agent %q not from the identity pool", gotUA)
	}
}

func TestHTTPFetcherSendsBaseHeadersAndReferer(t *testing.T) {
	var header http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Clone()
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5*time.Second, utils.NewLogger()).WithReferer("https://vendor.example/")
	if _, err := f.Fetch(context.Background(), srv.URL); err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	for k, want := range BaseHeaders {
		if got := header.Get(k); got != want {
			t.Errorf("header %s = %q; want %q", k, got, want)
		}
	}
	if got := header.Get("Referer"); got != "https://vendor.example/" {
		t.Errorf("Referer = %q", got)
	}
}

func TestHTTPFetcherClassifiesUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5*time.Second, utils.NewLogger())
	_, err := f.Fetch(context.Background(), srv.URL)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("err = %v; want StatusError", err)
	}
	if statusErr.Code != http.StatusForbidden {
		t.Errorf("code = %d; want 403", statusErr.Code)
	}
}

func TestHTTPFetcherClassifiesUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	f := NewHTTPFetcher(2*time.Second, utils.NewLogger())
	_, err := f.Fetch(context.Background(), srv.URL)

	var unreachable *UnreachableError
	if !errors.As(err, &unreachable) {
		t.Fatalf("err = %v; want UnreachableError", err)
	}
}
