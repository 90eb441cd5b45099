package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	s := NewService("secret", time.Hour)

	token, err := s.IssueToken("alice")
	require.NoError(t, err)

	subject, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestValidateRejects(t *testing.T) {
	s := NewService("secret", time.Hour)
	token, err := s.IssueToken("alice")
	require.NoError(t, err)

	_, err = NewService("other", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	later := NewService("secret", time.Hour)
	later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = later.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestDisabledService(t *testing.T) {
	s := NewService("", time.Hour)
	assert.False(t, s.Enabled())

	_, err := s.IssueToken("alice")
	assert.ErrorIs(t, err, ErrDisabled)

	var nilService *Service
	assert.False(t, nilService.Enabled())
}

func TestMiddleware(t *testing.T) {
	s := NewService("secret", 0)
	token, err := s.IssueToken("alice")
	require.NoError(t, err)

	var seen string
	h := s.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SubjectFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		method string
		target string
		header string
		want   int
	}{
		{"bearer", http.MethodGet, "/", "Bearer " + token, http.StatusNoContent},
		{"query", http.MethodGet, "/?token=" + token, "", http.StatusNoContent},
		{"missing", http.MethodGet, "/", "", http.StatusUnauthorized},
		{"bad scheme", http.MethodGet, "/", "Basic " + token, http.StatusUnauthorized},
		{"bad token", http.MethodGet, "/", "Bearer nope", http.StatusUnauthorized},
		{"preflight", http.MethodOptions, "/", "", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = ""
			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusNoContent && tt.method == http.MethodGet {
				assert.Equal(t, "alice", seen)
			}
		})
	}
}
