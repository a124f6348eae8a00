package googleapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/maps/v1/rest":
			if r.Header.Get("Accept") != "application/json" {
				w.WriteHeader(http.StatusNotAcceptable)
				return
			}
			_, _ = w.Write([]byte(`{"kind":"discovery#restDescription","name":"maps"}`))
		case "/openapi.json":
			_, _ = w.Write([]byte(`{"openapi":"3.0.0"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	fetcher := NewFetcher(2 * time.Second)
	data, err := fetcher.Fetch(context.Background(), server.URL+"/maps/v1/rest")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if !LooksLikeDiscovery(data) {
		t.Fatalf("unexpected body: %s", data)
	}

	if _, err := fetcher.Fetch(context.Background(), server.URL+"/missing"); err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected status error, got %v", err)
	}
	if _, err := fetcher.Fetch(context.Background(), server.URL+"/openapi.json"); err == nil || !strings.Contains(err.Error(), "not a discovery document") {
		t.Fatalf("expected detection error, got %v", err)
	}
}

func TestFetchHonorsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := NewFetcher(5*time.Second).Fetch(ctx, server.URL); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestFetchErrorRedactsKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL + "/rest?key=AIzaSECRET"
	server.Close()

	_, err := NewFetcher(time.Second).Fetch(context.Background(), url)
	if err == nil {
		t.Fatalf("expected connection error")
	}
	if strings.Contains(err.Error(), "AIzaSECRET") {
		t.Fatalf("error leaks api key: %v", err)
	}
}
