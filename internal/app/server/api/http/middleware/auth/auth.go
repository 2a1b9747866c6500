package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"utilibill/internal/domain/session"
)

type Auth struct {
	session session.Servicer
	log     *slog.Logger
}

func New(session session.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		session: session,
		log:     log.With(slog.String("component", "auth middleware")),
	}
}

type contextKey string

const (
	UserIDKey contextKey = "userID"
	tokenKey  contextKey = "sessionToken"
)

const bearerPrefix = "Bearer "

// Middleware validates the Authorization header and puts the user ID into
// the request context.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")

		if len(header) < len(bearerPrefix) || header[:len(bearerPrefix)] != bearerPrefix {
			a.log.Debug("missing or malformed Authorization header")
			reject(ctx)
			return
		}

		token := header[len(bearerPrefix):]
		userID, err := a.session.Validate(ctx.Context(), token)
		if err != nil {
			a.log.Debug("session validation failed", slog.String("error", err.Error()))
			reject(ctx)
			return
		}

		newCtx := context.WithValue(ctx.Context(), UserIDKey, userID)
		newCtx = context.WithValue(newCtx, tokenKey, token)
		next(huma.WithContext(ctx, newCtx))
	}
}

func reject(ctx huma.Context) {
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")
	_ = json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": "Unauthorized",
	})
}

func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDKey).(int64)
	return userID, ok
}

// GetToken returns the raw bearer token of the authenticated request. The
// logout handler uses it to revoke its own session.
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok
}
