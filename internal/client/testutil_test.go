package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockServer creates an httptest.Server with common test patterns: a
// fluent API for request verification and response configuration.
type mockServer struct {
	t            *testing.T
	server       *httptest.Server
	handler      http.HandlerFunc
	expectPath   string
	expectMeth   string
	expectQuery  map[string]string
	expectHeader map[string]string
}

func newMockServer(t *testing.T) *mockServer {
	t.Helper()
	return &mockServer{t: t}
}

// ExpectPath sets the expected request path and verifies it in the handler.
func (m *mockServer) ExpectPath(path string) *mockServer {
	m.expectPath = path
	return m
}

// ExpectMethod sets the expected HTTP method and verifies it in the handler.
func (m *mockServer) ExpectMethod(method string) *mockServer {
	m.expectMeth = method
	return m
}

func (m *mockServer) ExpectGET() *mockServer    { return m.ExpectMethod(http.MethodGet) }
func (m *mockServer) ExpectPOST() *mockServer   { return m.ExpectMethod(http.MethodPost) }
func (m *mockServer) ExpectPUT() *mockServer    { return m.ExpectMethod(http.MethodPut) }
func (m *mockServer) ExpectDELETE() *mockServer { return m.ExpectMethod(http.MethodDelete) }

// ExpectQuery verifies a query parameter value.
func (m *mockServer) ExpectQuery(name, value string) *mockServer {
	if m.expectQuery == nil {
		m.expectQuery = map[string]string{}
	}
	m.expectQuery[name] = value
	return m
}

// ExpectHeader verifies a request header value.
func (m *mockServer) ExpectHeader(name, value string) *mockServer {
	if m.expectHeader == nil {
		m.expectHeader = map[string]string{}
	}
	m.expectHeader[name] = value
	return m
}

// Handler sets a custom handler, invoked after the expectations pass.
func (m *mockServer) Handler(h func(w http.ResponseWriter, r *http.Request)) *mockServer {
	m.handler = h
	return m
}

// RespondJSON sets up a handler that responds with JSON-encoded data.
func (m *mockServer) RespondJSON(v any) *mockServer {
	m.handler = func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(m.t, w, v)
	}
	return m
}

// RespondError sets up a handler that responds with a status code and an
// error envelope.
func (m *mockServer) RespondError(code int, message string) *mockServer {
	m.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
	}
	return m
}

// Build creates and returns the httptest.Server.
func (m *mockServer) Build() *httptest.Server {
	m.t.Helper()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.expectPath != "" {
			assert.Equal(m.t, m.expectPath, r.URL.Path, "unexpected request path")
		}
		if m.expectMeth != "" {
			assert.Equal(m.t, m.expectMeth, r.Method, "unexpected request method")
		}
		for name, value := range m.expectQuery {
			assert.Equal(m.t, value, r.URL.Query().Get(name), "unexpected query parameter %s", name)
		}
		for name, value := range m.expectHeader {
			assert.Equal(m.t, value, r.Header.Get(name), "unexpected header %s", name)
		}
		if m.handler != nil {
			m.handler(w, r)
		}
	})

	m.server = httptest.NewServer(handler)
	return m.server
}

func respondJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON response: %v", err)
	}
}

// decodeJSONBody decodes a request body into v.
func decodeJSONBody(r *http.Request, v any) error {
	defer func() { _ = r.Body.Close() }()
	return json.NewDecoder(r.Body).Decode(v)
}

// listBody builds the server's list envelope for tests.
func listBody(items any, total int) map[string]any {
	return map[string]any{
		"data": items,
		"pagination": map[string]any{
			"page": 1, "limit": 20, "total": total, "totalPages": 1,
		},
	}
}

// itemBody builds the server's single-entity envelope for tests.
func itemBody(item any) map[string]any {
	return map[string]any{"data": item}
}
