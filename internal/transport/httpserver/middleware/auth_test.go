package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	userdomain "projectconnect-go/internal/domain/user"
	"projectconnect-go/pkg/logger"
)

type fakeAuthenticator struct {
	tokens   map[string]int64
	existing map[int64]bool
	verified int
}

func (f *fakeAuthenticator) Authenticate(_ context.Context, token string) (int64, error) {
	userID, ok := f.tokens[token]
	if !ok {
		return 0, userdomain.ErrInvalidToken
	}
	return userID, nil
}

func (f *fakeAuthenticator) Verify(_ context.Context, userID int64) (*userdomain.User, error) {
	f.verified++
	if !f.existing[userID] {
		return nil, userdomain.ErrUserNotFound
	}
	return &userdomain.User{ID: userID}, nil
}

func newFakeAuthenticator() *fakeAuthenticator {
	return &fakeAuthenticator{
		tokens:   map[string]int64{"good": 7, "orphan": 9},
		existing: map[int64]bool{7: true},
	}
}

func echoUserID(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		require.True(t, ok)
		assert.EqualValues(t, 7, userID)
		w.WriteHeader(http.StatusNoContent)
	})
}

func serve(handler http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestMiddlewareRejects(t *testing.T) {
	auth := NewJWTAuth(newFakeAuthenticator(), false, logger.NewNop())
	handler := auth.Middleware(echoUserID(t))

	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"missing header", "", `{"error":"No token provided"}`},
		{"unknown token", "Bearer nope", `{"error":"Invalid token"}`},
		{"wrong scheme", "Basic good", `{"error":"Invalid token"}`},
		{"no token after scheme", "Bearer", `{"error":"Invalid token"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(handler, tc.header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, tc.want, rec.Body.String())
		})
	}
}

func TestMiddlewareAcceptsBearerCaseInsensitive(t *testing.T) {
	auth := NewJWTAuth(newFakeAuthenticator(), false, logger.NewNop())
	handler := auth.Middleware(echoUserID(t))

	for _, header := range []string{"Bearer good", "bearer good", "BEARER   good"} {
		rec := serve(handler, header)
		assert.Equal(t, http.StatusNoContent, rec.Code, header)
	}
}

func TestMiddlewareTrustsTokenWithoutVerify(t *testing.T) {
	users := newFakeAuthenticator()
	auth := NewJWTAuth(users, false, logger.NewNop())
	reached := false
	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := serve(handler, "Bearer orphan")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, reached)
	assert.Zero(t, users.verified)
}

func TestMiddlewareVerifyRejectsUnknownUser(t *testing.T) {
	users := newFakeAuthenticator()
	auth := NewJWTAuth(users, true, logger.NewNop())
	handler := auth.Middleware(echoUserID(t))

	rec := serve(handler, "Bearer orphan")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(handler, "Bearer good")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 2, users.verified)
}

func TestUserIDFromContext(t *testing.T) {
	_, ok := UserIDFromContext(context.Background())
	assert.False(t, ok)

	userID, ok := UserIDFromContext(WithUserID(context.Background(), 42))
	assert.True(t, ok)
	assert.EqualValues(t, 42, userID)
}
