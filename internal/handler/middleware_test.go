package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/msomdec/pitchside/internal/auth"
	"github.com/msomdec/pitchside/internal/handler"
)

func TestAuthGate_Ladder(t *testing.T) {
	ts := newTestServer(t)

	ts.register(t, "Regular", "regular@example.com", "password123")
	userToken, _ := ts.login(t, "regular@example.com", "password123")
	adminToken := ts.adminToken(t)

	body := map[string]any{"name": "Kohli", "team": "India", "role": "Batsman"}

	tests := []struct {
		name    string
		token   string
		want    int
		message string
	}{
		{"no token", "", http.StatusUnauthorized, "Unauthorized"},
		{"garbage token", "not-a-jwt", http.StatusUnauthorized, "Unauthorized"},
		{"valid non-admin token", userToken, http.StatusForbidden, "Admin access required"},
		{"valid admin token", adminToken, http.StatusCreated, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ts.do(t, http.MethodPost, "/api/players", tc.token, body)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, w.Code, w.Body.String())
			}
			if tc.message != "" {
				if got := decodeBody(t, w)["message"]; got != tc.message {
					t.Fatalf("expected message %q, got %v", tc.message, got)
				}
			}
		})
	}
}

func TestAuthGate_ExpiredToken(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "Admin", "admin@example.com", "password123")
	ts.promote(t, "admin@example.com")

	// Issue with a clock far enough in the past that the token is expired
	// when the server verifies it with the real clock.
	past := time.Now().Add(-48 * time.Hour)
	staleIssuer := auth.NewJWT(testSecret, 24*time.Hour, func() time.Time { return past })
	token, err := staleIssuer.Issue("some-user", true)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	w := ts.do(t, http.MethodDelete, "/api/players/some-id", token, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", w.Code)
	}
}

func TestAuthGate_WrongSecret(t *testing.T) {
	ts := newTestServer(t)

	forged := auth.NewJWT([]byte("attacker-controlled-secret-32byte!"), 24*time.Hour, nil)
	token, err := forged.Issue("some-user", true)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	w := ts.do(t, http.MethodPost, "/api/teams", token, map[string]any{"name": "X", "ranking": 1})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for forged token, got %d", w.Code)
	}
}

func TestRequireAdmin_NeverRunsWithoutAuth(t *testing.T) {
	// RequireAdmin on its own context sees no identity and must reject.
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("inner handler should not be called")
	})

	req := httptest.NewRequest(http.MethodPost, "/protected", nil)
	w := httptest.NewRecorder()
	handler.RequireAdmin(inner).ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestReadsArePublic(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/api/players", "/api/teams", "/api/matches"} {
		w := ts.do(t, http.MethodGet, path, "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200 without auth, got %d", path, w.Code)
		}
	}
}

func TestCORS_Preflight(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/players", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); got == "" {
		t.Fatal("expected Access-Control-Allow-Headers to be set")
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/healthz", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if status := decodeBody(t, w)["status"]; status != "ok" {
		t.Fatalf("expected status ok, got %v", status)
	}
}
