package finnhub

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stock/profile2" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("symbol") != "AAPL" {
			t.Errorf("Unexpected symbol %s", r.URL.Query().Get("symbol"))
		}
		if r.URL.Query().Get("token") != "test-key" {
			t.Errorf("Expected API key in query, got %s", r.URL.Query().Get("token"))
		}
		fmt.Fprint(w, `{"name":"Apple Inc","logo":"https://logo/AAPL","ticker":"AAPL","currency":"USD"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	profile, err := client.Profile("AAPL")
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if profile.Name != "Apple Inc" {
		t.Errorf("Expected name Apple Inc, got %s", profile.Name)
	}
	if profile.Logo != "https://logo/AAPL" {
		t.Errorf("Expected logo URL, got %s", profile.Logo)
	}
}

func TestQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"c":189.5,"h":190.1,"l":188.2,"o":189.0,"pc":188.7}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	quote, err := client.Quote("AAPL")
	if err != nil {
		t.Fatalf("Quote failed: %v", err)
	}
	if quote.Current != 189.5 {
		t.Errorf("Expected current price 189.5, got %v", quote.Current)
	}
	if quote.PreviousClose != 188.7 {
		t.Errorf("Expected previous close 188.7, got %v", quote.PreviousClose)
	}
}

func TestNonSuccessStatusReturnsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key")
	_, err := client.Quote("AAPL")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("Expected status 429, got %d", apiErr.StatusCode)
	}
}
