//go:build unit || e2e

// Package fakeupstream serves canned search provider payloads and order
// tracking pages for end-to-end tests.
package fakeupstream

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

type Result struct {
	Title          string  `json:"title"`
	Source         string  `json:"source"`
	Link           string  `json:"link"`
	Price          string  `json:"price"`
	ExtractedPrice float64 `json:"extracted_price"`
	Rating         float64 `json:"rating,omitempty"`
	Reviews        int     `json:"reviews,omitempty"`
	Delivery       string  `json:"delivery,omitempty"`
}

// Offer is a shorthand for a result with a numeric price.
func Offer(title, store string, price float64) Result {
	return Result{
		Title:          title,
		Source:         store,
		Link:           "https://shop.example.com/" + strings.ToLower(store),
		Price:          fmt.Sprintf("₹%.2f", price),
		ExtractedPrice: price,
	}
}

type Server struct {
	srv *httptest.Server

	mu        sync.Mutex
	results   map[string][]Result
	failWith  int
	orderText map[string]string

	searchCalls atomic.Int32
}

func New(t *testing.T) *Server {
	t.Helper()
	s := &Server{}
	s.Reset()

	mux := http.NewServeMux()
	mux.HandleFunc("/search.json", s.search)
	mux.HandleFunc("/orders/", s.orderPage)
	s.srv = httptest.NewServer(mux)
	t.Cleanup(s.srv.Close)
	return s
}

func (s *Server) SearchURL() string { return s.srv.URL + "/search.json" }

func (s *Server) OrderURL(id string) string { return s.srv.URL + "/orders/" + id }

func (s *Server) SearchCalls() int { return int(s.searchCalls.Load()) }

// Reset forgets every canned response and the call count.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = map[string][]Result{}
	s.orderText = map[string]string{}
	s.failWith = 0
	s.searchCalls.Store(0)
}

func (s *Server) SetResults(query string, results ...Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[strings.ToLower(strings.TrimSpace(query))] = results
}

// FailSearches makes every search answer with status; zero restores normal
// answers.
func (s *Server) FailSearches(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = status
}

func (s *Server) SetOrderPage(id, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orderText[id] = text
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	s.searchCalls.Add(1)

	s.mu.Lock()
	fail := s.failWith
	results, ok := s.results[strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))]
	s.mu.Unlock()

	if fail != 0 {
		http.Error(w, "upstream unavailable", fail)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "Google Shopping hasn't returned any results for this query."})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"shopping_results": results})
}

func (s *Server) orderPage(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/orders/")

	s.mu.Lock()
	text, ok := s.orderText[id]
	s.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<html><body><h1>Order %s</h1><p>%s</p></body></html>", id, text)
}
