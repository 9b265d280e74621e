package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	userdomain "projectconnect-go/internal/domain/user"
	"projectconnect-go/pkg/logger"
)

type contextKey int

const userIDKey contextKey = iota

// Authenticator resolves bearer tokens to user ids.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (int64, error)
	Verify(ctx context.Context, userID int64) (*userdomain.User, error)
}

type JWTAuth struct {
	users      Authenticator
	verifyUser bool
	log        logger.Logger
}

// NewJWTAuth trusts the decoded user id unless verifyUser is set, in which
// case the user must still exist.
func NewJWTAuth(users Authenticator, verifyUser bool, log logger.Logger) *JWTAuth {
	return &JWTAuth{
		users:      users,
		verifyUser: verifyUser,
		log:        log,
	}
}

func (a *JWTAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" {
			writeError(w, http.StatusUnauthorized, "No token provided")
			return
		}

		token, ok := bearerToken(header)
		if !ok {
			unauthorized(w)
			return
		}

		userID, err := a.users.Authenticate(r.Context(), token)
		if err != nil {
			a.log.Debug("auth: token rejected", "err", err)
			unauthorized(w)
			return
		}

		if a.verifyUser {
			if _, err := a.users.Verify(r.Context(), userID); err != nil {
				if errors.Is(err, userdomain.ErrUserNotFound) {
					a.log.BusinessError("auth: token for unknown user", err, "user_id", userID)
				} else {
					a.log.InternalError("auth: verify user failed", err, "user_id", userID)
				}
				unauthorized(w)
				return
			}
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "Invalid token")
}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	if !ok || userID == 0 {
		return 0, false
	}
	return userID, true
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
