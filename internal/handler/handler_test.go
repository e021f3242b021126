package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/msomdec/pitchside/internal/auth"
	"github.com/msomdec/pitchside/internal/handler"
	"github.com/msomdec/pitchside/internal/metrics"
	"github.com/msomdec/pitchside/internal/repository/sqlite"
	"github.com/msomdec/pitchside/internal/service"
)

var testSecret = []byte("test-secret-for-handler-tests-32b!")

type testServer struct {
	router http.Handler
	db     *sqlite.DB
	jwt    *auth.JWT
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	jwt := auth.NewJWT(testSecret, 24*time.Hour, nil)
	// Cost 4 for fast tests.
	hasher := auth.NewHasher(4)

	// Each test gets its own registry so metric values start at zero.
	registry := prometheus.NewRegistry()

	router := handler.NewRouter(&handler.RouterDeps{
		Auth:              service.NewAuthService(db.Users(), hasher, jwt),
		Players:           service.NewPlayerService(db.Players()),
		Teams:             service.NewTeamService(db.Teams()),
		Matches:           service.NewMatchService(db.Matches()),
		Verifier:          jwt,
		CORSAllowedOrigin: "*",
		RequestRecorder:   metrics.NewCollector(registry),
		MetricsHandler:    metrics.Handler(registry),
	})

	return &testServer{router: router, db: db, jwt: jwt}
}

func (ts *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// register creates an account and returns nothing; login returns the token
// and the user object from the login response.
func (ts *testServer) register(t *testing.T, name, email, password string) {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name": name, "email": email, "password": password,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func (ts *testServer) login(t *testing.T, email, password string) (string, map[string]any) {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email": email, "password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	user, _ := body["user"].(map[string]any)
	if token == "" || user == nil {
		t.Fatalf("login response missing token or user: %s", w.Body.String())
	}
	return token, user
}

func (ts *testServer) promote(t *testing.T, email string) {
	t.Helper()
	if _, err := ts.db.SqlDB.ExecContext(context.Background(),
		"UPDATE users SET is_admin = 1 WHERE email = ?", email); err != nil {
		t.Fatalf("promote %s: %v", email, err)
	}
}

func (ts *testServer) adminToken(t *testing.T) string {
	t.Helper()
	ts.register(t, "Admin", "admin@example.com", "password123")
	ts.promote(t, "admin@example.com")
	token, _ := ts.login(t, "admin@example.com", "password123")
	return token
}
