package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Guilherme-G-Cadilhe/Go-BrBank-API/internal/infra/memory"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedHandler(t *testing.T, sessions *memory.SessionRepository) http.Handler {
	t.Helper()
	return Authenticate(sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := AccountIDFromContext(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]int64{"id": id})
	}))
}

func TestAuthenticate(t *testing.T) {
	sessions := memory.NewSessionRepository()
	require.NoError(t, sessions.Save(context.Background(), "good-token", 42, time.Hour))
	h := protectedHandler(t, sessions)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"sem header", "", http.StatusUnauthorized},
		{"esquema errado", "Basic good-token", http.StatusUnauthorized},
		{"token vazio", "Bearer ", http.StatusUnauthorized},
		{"token desconhecido", "Bearer other", http.StatusUnauthorized},
		{"token válido", "Bearer good-token", http.StatusOK},
		{"esquema minúsculo", "bearer good-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/users/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusUnauthorized {
				assert.JSONEq(t, `{"errors":["Authentication required"]}`, rec.Body.String())
			} else {
				assert.JSONEq(t, `{"id":42}`, rec.Body.String())
			}
		})
	}
}

type brokenSessions struct{ *memory.SessionRepository }

func (brokenSessions) Get(context.Context, string) (int64, error) {
	return 0, errors.New("redis down")
}

func TestAuthenticate_StoreFailureIsClosed(t *testing.T) {
	h := Authenticate(brokenSessions{memory.NewSessionRepository()})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler não deveria ser chamado")
	}))

	req := httptest.NewRequest(http.MethodGet, "/users/", nil)
	req.Header.Set("Authorization", "Bearer x")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAccountIDFromContext_Missing(t *testing.T) {
	_, ok := AccountIDFromContext(context.Background())
	assert.False(t, ok)

	id, ok := AccountIDFromContext(WithAccountID(context.Background(), 7))
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)
}

type observation struct {
	method, route, status string
}

type recordingObserver struct {
	mu  sync.Mutex
	obs []observation
}

func (o *recordingObserver) ObserveRequest(method, route, status string, _ float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.obs = append(o.obs, observation{method, route, status})
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	observer := &recordingObserver{}
	r := chi.NewRouter()
	r.Use(Metrics(observer))
	r.Use(RequestLogger)
	r.Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/users/15", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	require.Len(t, observer.obs, 2)
	assert.Equal(t, observation{"GET", "/users/{id}", "418"}, observer.obs[0])
	assert.Equal(t, "404", observer.obs[1].status)
}
