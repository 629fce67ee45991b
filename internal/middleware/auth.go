package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/HrisheekeshS/Bill-Split/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// EmailKey is the context key for storing the authenticated member's email.
const EmailKey contextKey = "email"

// GetEmail extracts the acting member's email from the context.
// Returns empty string if not found.
func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

// WithEmail returns a copy of ctx carrying email as the acting member.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, EmailKey, email)
}

// bearerToken pulls the token out of an "Authorization: Bearer <token>" header.
func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}

// RequireAuth returns an interceptor that validates JWT tokens and requires
// authentication. The member's email from the token is added to the context;
// handlers read it once and pass it on explicitly.
func RequireAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			tokenString, ok := bearerToken(authHeader)
			if !ok {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(tokenString)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			return next(WithEmail(ctx, claims.Email), req)
		}
	}
}
