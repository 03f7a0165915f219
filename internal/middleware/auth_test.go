package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const testSecret = "test-secret"

func authedHandler(t *testing.T) http.Handler {
	t.Helper()
	return SessionAuth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(SessionSubject(r.Context())))
	}))
}

func TestSessionTokenRoundTrip(t *testing.T) {
	token := SignSessionToken(testSecret, SessionClaims{Sub: "visitor-42", Exp: time.Now().Add(time.Hour).Unix()})
	claims, err := VerifySessionToken(testSecret, token)
	if err != nil {
		t.Fatalf("VerifySessionToken: %v", err)
	}
	if claims.Sub != "visitor-42" {
		t.Fatalf("sub = %q, want visitor-42", claims.Sub)
	}
}

func TestVerifySessionTokenRejectsTampering(t *testing.T) {
	token := SignSessionToken(testSecret, SessionClaims{Sub: "visitor-42"})
	if _, err := VerifySessionToken(testSecret, token+"x"); err == nil {
		t.Fatalf("tampered signature must be rejected")
	}
	if _, err := VerifySessionToken("other-secret", token); err == nil {
		t.Fatalf("wrong secret must be rejected")
	}
	if _, err := VerifySessionToken(testSecret, "not-a-token"); err == nil {
		t.Fatalf("malformed token must be rejected")
	}
}

func TestVerifySessionTokenExpiry(t *testing.T) {
	expired := SignSessionToken(testSecret, SessionClaims{Sub: "visitor-42", Exp: time.Now().Add(-time.Minute).Unix()})
	if _, err := VerifySessionToken(testSecret, expired); err == nil {
		t.Fatalf("expired token must be rejected")
	}

	// Exp 0 means no expiry.
	forever := SignSessionToken(testSecret, SessionClaims{Sub: "visitor-42"})
	if _, err := VerifySessionToken(testSecret, forever); err != nil {
		t.Fatalf("token without expiry must verify: %v", err)
	}
}

func TestSessionAuthMissingToken(t *testing.T) {
	rec := httptest.NewRecorder()
	authedHandler(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/floor/presets", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body not JSON: %v", err)
	}
	if body["message"] != "missing session token" {
		t.Fatalf("message = %q", body["message"])
	}
}

func TestSessionAuthHeaderToken(t *testing.T) {
	token := SignSessionToken(testSecret, SessionClaims{Sub: "visitor-42", Exp: time.Now().Add(time.Hour).Unix()})
	req := httptest.NewRequest(http.MethodGet, "/v1/floor/presets", nil)
	req.Header.Set("X-Session-Token", token)

	rec := httptest.NewRecorder()
	authedHandler(t).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "visitor-42" {
		t.Fatalf("subject = %q, want visitor-42", rec.Body.String())
	}
}

func TestSessionAuthQueryToken(t *testing.T) {
	token := SignSessionToken(testSecret, SessionClaims{Sub: "visitor-42"})
	req := httptest.NewRequest(http.MethodGet, "/v1/floor/presets?session_token="+token, nil)

	rec := httptest.NewRecorder()
	authedHandler(t).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestSessionAuthInvalidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/floor/presets", nil)
	req.Header.Set("X-Session-Token", "garbage")

	rec := httptest.NewRecorder()
	authedHandler(t).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
