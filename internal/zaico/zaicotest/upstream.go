// ABOUTME: Fake ZAICO upstream for tests, backed by httptest.Server.
// ABOUTME: Records every request it receives and replies with a configurable status and body.

package zaicotest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// RecordedRequest is one request seen by the fake upstream.
type RecordedRequest struct {
	Method        string
	Path          string
	RawQuery      string
	Authorization string
	ContentType   string
	Body          string
}

// Upstream is a fake ZAICO API. The zero reply is 200 with body "{}".
type Upstream struct {
	Server *httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
	status   int
	body     string
}

// NewUpstream starts a fake upstream that is closed when the test ends.
func NewUpstream(t *testing.T) *Upstream {
	t.Helper()
	u := &Upstream{status: http.StatusOK, body: "{}"}
	u.Server = httptest.NewServer(http.HandlerFunc(u.serve))
	t.Cleanup(u.Server.Close)
	return u
}

// URL returns the base URL to configure a client with.
func (u *Upstream) URL() string {
	return u.Server.URL + "/api/v1"
}

// Reply sets the status and body returned for subsequent requests.
func (u *Upstream) Reply(status int, body string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.status = status
	u.body = body
}

// Requests returns a copy of the requests received so far.
func (u *Upstream) Requests() []RecordedRequest {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]RecordedRequest, len(u.requests))
	copy(out, u.requests)
	return out
}

// Last returns the most recent request, failing the test if there is none.
func (u *Upstream) Last(t *testing.T) RecordedRequest {
	t.Helper()
	reqs := u.Requests()
	if len(reqs) == 0 {
		t.Fatal("upstream received no requests")
	}
	return reqs[len(reqs)-1]
}

func (u *Upstream) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	u.mu.Lock()
	u.requests = append(u.requests, RecordedRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		RawQuery:      r.URL.RawQuery,
		Authorization: r.Header.Get("Authorization"),
		ContentType:   r.Header.Get("Content-Type"),
		Body:          string(body),
	})
	status, reply := u.status, u.body
	u.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, reply)
}
