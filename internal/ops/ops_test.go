package ops

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parmatma/internal/session"
)

func TestHealthzReportsSessionCount(t *testing.T) {
	sessions := session.NewManager()
	sessions.Get(uuid.Nil)
	sessions.Get(uuid.Nil)

	srv := NewServer(sessions)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sessions":2`)
}

func TestVersionEndpoint(t *testing.T) {
	srv := NewServer(session.NewManager())
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version"`)
}

func TestPprofIndexIsServed(t *testing.T) {
	srv := NewServer(session.NewManager())
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))

	require.Equal(t, http.StatusOK, w.Code)
}
