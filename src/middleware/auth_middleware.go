package middleware

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"fintrack-server/src/db"
	"fintrack-server/src/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// ParseTokenFromRequest extracts and validates JWT token from request, returning claims if valid
func ParseTokenFromRequest(r *http.Request) (jwt.MapClaims, error) {
	tokenString := r.Header.Get("Authorization")
	if tokenString == "" {
		return nil, fmt.Errorf("missing token")
	}

	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("invalid signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token claims")
}

// JWTAuthMiddleware resolves the bearer token to an existing user and puts the
// user id on the request context. User lookups go through the cache; user
// records are immutable after signup, so cached entries cannot go stale.
func JWTAuthMiddleware(users store.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := ParseTokenFromRequest(r)
			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			rawID, ok := claims["user_id"].(float64)
			if !ok {
				http.Error(w, "invalid token claims", http.StatusUnauthorized)
				return
			}
			userID := int64(rawID)

			if _, cached := db.GetUserCache(userID); !cached {
				user, err := users.FindByID(r.Context(), userID)
				if err != nil {
					logrus.Errorf("Token resolved to unknown user %d: %v", userID, err)
					http.Error(w, "invalid token", http.StatusUnauthorized)
					return
				}
				db.SetUserCache(user)
			}

			ctx := context.WithValue(r.Context(), "user_id", userID)
			if username, ok := claims["username"].(string); ok {
				ctx = context.WithValue(ctx, "username", username)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
