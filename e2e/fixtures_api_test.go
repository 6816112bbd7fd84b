//go:build e2e && unix

package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
)

// Hit is one record in a fake search response
type Hit struct {
	ObjectID    string `json:"objectID"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Author      string `json:"author"`
	NumComments int    `json:"num_comments"`
	Points      int    `json:"points"`
}

// FakeAPI serves canned hits per query term and records every query it sees
type FakeAPI struct {
	srv *httptest.Server

	mu       sync.Mutex
	hits     map[string][]Hit
	failures int // number of upcoming requests to answer with a 500
	queries  []string
}

// NewFakeAPI starts a fake search API with results for "React"
func NewFakeAPI() *FakeAPI {
	api := &FakeAPI{hits: map[string][]Hit{
		"React": {
			{ObjectID: "r1", Title: "React Compiler beta", Author: "acdlite", NumComments: 42, Points: 310},
			{ObjectID: "r2", Title: "Why hooks", Author: "gaearon", NumComments: 7, Points: 88},
		},
	}}
	api.srv = httptest.NewServer(http.HandlerFunc(api.serve))
	return api
}

func (a *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("query")

	a.mu.Lock()
	a.queries = append(a.queries, q)
	fail := a.failures > 0
	if fail {
		a.failures--
	}
	hits := a.hits[q]
	a.mu.Unlock()

	if fail {
		http.Error(w, "upstream down", http.StatusInternalServerError)
		return
	}
	if hits == nil {
		hits = []Hit{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"hits": hits})
}

// Endpoint is the prefix the app appends the search term to
func (a *FakeAPI) Endpoint() string {
	return fmt.Sprintf("%s/api/v1/search?query=", a.srv.URL)
}

// SetHits replaces the results for term
func (a *FakeAPI) SetHits(term string, hits ...Hit) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.hits[term] = hits
}

// FailNext makes the next n requests fail
func (a *FakeAPI) FailNext(n int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failures = n
}

// Queries returns every query term received so far
func (a *FakeAPI) Queries() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.queries...)
}

// Close stops the server
func (a *FakeAPI) Close() {
	a.srv.Close()
}
