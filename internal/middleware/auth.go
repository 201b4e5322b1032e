package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/sriteja123gujjari/RentalManagement/internal/auth"
	"github.com/sriteja123gujjari/RentalManagement/internal/models"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// OwnerKey is the context key for storing the authenticated owner.
const OwnerKey contextKey = "owner"

// GetOwner extracts the authenticated owner from the context.
// Returns empty string if not found.
func GetOwner(ctx context.Context) models.Owner {
	owner, _ := ctx.Value(OwnerKey).(models.Owner)
	return owner
}

// WithOwner returns a copy of ctx carrying owner.
func WithOwner(ctx context.Context, owner models.Owner) context.Context {
	return context.WithValue(ctx, OwnerKey, owner)
}

func bearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// RequireAuth returns an interceptor that validates JWT tokens and requires
// authentication. The token's owner must still belong to the configured set,
// so removing an owner from configuration revokes their outstanding tokens.
func RequireAuth(jwtManager *auth.JWTManager, owners models.OwnerSet) connect.UnaryInterceptorFunc {
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

			owner := models.Owner(claims.Owner)
			if !owners.Contains(owner) {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			return next(WithOwner(ctx, owner), req)
		}
	}
}

// OptionalAuth returns an interceptor that validates JWT tokens if present,
// but allows requests without authentication.
func OptionalAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if tokenString, ok := bearerToken(req.Header().Get("Authorization")); ok {
				// Invalid tokens are ignored here
				if claims, err := jwtManager.Validate(tokenString); err == nil {
					ctx = WithOwner(ctx, models.Owner(claims.Owner))
				}
			}
			return next(ctx, req)
		}
	}
}
