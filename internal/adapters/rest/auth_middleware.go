package rest

import (
	"net/http"
	"strings"

	"real-estate-agency/internal/contextkeys"
	"real-estate-agency/internal/core/domain"
	"real-estate-agency/internal/core/port"
)

type AuthMiddleware struct {
	verifier port.TokenVerifierPort
}

func NewAuthMiddleware(verifier port.TokenVerifierPort) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader || token == "" {
		return "", false
	}
	return token, true
}

// Optional кладет claims в контекст, если токен валиден.
// Без токена или с плохим токеном запрос идет дальше как анонимный.
func (am *AuthMiddleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		claims, err := am.verifier.Verify(r.Context(), token)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(contextkeys.ContextWithClaims(r.Context(), claims)))
	})
}

// Authenticate требует валидный bearer-токен
func (am *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			WriteJSONError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}
		claims, err := am.verifier.Verify(r.Context(), token)
		if err != nil {
			WriteJSONError(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		next.ServeHTTP(w, r.WithContext(contextkeys.ContextWithClaims(r.Context(), claims)))
	})
}

// RequireRole пропускает только перечисленные роли; ставится после Authenticate
func (am *AuthMiddleware) RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := contextkeys.ClaimsFromContext(r.Context())
			if claims == nil {
				WriteJSONError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			if _, ok := allowed[claims.Role]; !ok {
				contextkeys.LoggerFromContext(r.Context()).Info("Role check failed", port.Fields{
					"role":    claims.Role,
					"user_id": claims.UserID.String(),
				})
				WriteJSONError(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ElevatedRoles - агенты и администраторы
var ElevatedRoles = []string{domain.RoleAgent, domain.RoleAdmin}
