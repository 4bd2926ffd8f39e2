package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/sanjay-2003-ss/Projecthub-backend/internal/models"
	"github.com/sanjay-2003-ss/Projecthub-backend/internal/service"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

const (
	CtxIdentity ctxKey = "identity"
	CtxUser     ctxKey = "user"
)

// VerifyToken validates the bearer token issued by the identity
// provider (HS256, shared secret) and puts the verified Identity in
// the context. Claims beyond sub are optional profile hints.
func VerifyToken(secret string) func(http.Handler) http.Handler {
	secretBytes := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				respondErrorMsg(w, http.StatusUnauthorized, "missing or invalid Authorization header")
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secretBytes, nil
			})
			if err != nil || !token.Valid {
				respondErrorMsg(w, http.StatusUnauthorized, "invalid token")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				respondErrorMsg(w, http.StatusUnauthorized, "invalid token claims")
				return
			}

			sub, ok := claims["sub"].(string)
			if !ok || sub == "" {
				respondErrorMsg(w, http.StatusUnauthorized, "invalid sub in token")
				return
			}
			email, _ := claims["email"].(string)
			name, _ := claims["name"].(string)
			picture, _ := claims["picture"].(string)

			ident := service.Identity{UID: sub, Email: email, Name: name, Picture: picture}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), CtxIdentity, ident)))
		})
	}
}

// ResolveUser maps the verified identity to a local user, creating one
// on first sight. All authenticated routes see a non-nil user in the
// context after this.
func ResolveUser(users *service.UserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ident, ok := r.Context().Value(CtxIdentity).(service.Identity)
			if !ok {
				respondErrorMsg(w, http.StatusUnauthorized, "unauthenticated")
				return
			}

			u, err := users.GetOrCreate(r.Context(), ident)
			if err != nil {
				respondError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), CtxUser, u)))
		})
	}
}

func IdentityFromContext(ctx context.Context) (service.Identity, bool) {
	ident, ok := ctx.Value(CtxIdentity).(service.Identity)
	return ident, ok
}

func UserFromContext(ctx context.Context) *models.UserDoc {
	if u, ok := ctx.Value(CtxUser).(*models.UserDoc); ok {
		return u
	}
	return nil
}

// WithUser is a test helper to plant the resolved user in a context.
func WithUser(ctx context.Context, u *models.UserDoc) context.Context {
	return context.WithValue(ctx, CtxUser, u)
}
