package middleware

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
)

// SessionClaims is the payload carried by an HMAC-signed session token. The
// token is opaque to the client; the widget only forwards it.
type SessionClaims struct {
	Sub string `json:"sub"`
	Exp int64  `json:"exp"`
}

type sessionKey string

const sessionSubjectKey sessionKey = "session_subject"

// SignSessionToken issues a token for the given subject.
func SignSessionToken(secret string, claims SessionClaims) string {
	payload, _ := json.Marshal(claims)
	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return encoded + "." + hmacSign(secret, encoded)
}

// VerifySessionToken checks the token signature and expiry and returns the
// claims on success.
func VerifySessionToken(secret, token string) (*SessionClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return nil, errors.New("invalid token")
	}
	expected := hmacSign(secret, parts[0])
	if !hmac.Equal([]byte(expected), []byte(parts[1])) {
		return nil, errors.New("invalid signature")
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, err
	}
	var claims SessionClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return nil, err
	}
	if claims.Exp != 0 && time.Now().Unix() > claims.Exp {
		return nil, errors.New("token expired")
	}
	return &claims, nil
}

func hmacSign(secret, data string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(data))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// SessionAuth rejects requests that do not carry a valid session token, before
// any processing happens. The token is read from the X-Session-Token header or
// a session_token query parameter.
func SessionAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("X-Session-Token")
			if token == "" {
				token = r.URL.Query().Get("session_token")
			}
			if token == "" {
				writeAuthError(w, "missing session token")
				return
			}
			claims, err := VerifySessionToken(secret, token)
			if err != nil {
				writeAuthError(w, "invalid session token")
				return
			}
			ctx := context.WithValue(r.Context(), sessionSubjectKey, claims.Sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionSubject returns the authenticated subject, or "" for anonymous.
func SessionSubject(ctx context.Context) string {
	if v, ok := ctx.Value(sessionSubjectKey).(string); ok {
		return v
	}
	return ""
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
