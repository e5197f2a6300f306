package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"sionlog-blog-service/internal/auth"
	"sionlog-blog-service/internal/delivery/http/response"
)

// Auth validates bearer tokens issued by the external identity provider and
// attaches the authenticated identity to the request context.
type Auth struct {
	secret []byte
}

func NewAuth(secret string) *Auth {
	return &Auth{secret: []byte(secret)}
}

func (a *Auth) identityFromRequest(r *http.Request) (auth.Identity, bool) {
	header := r.Header.Get("Authorization")
	tokenStr, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenStr == "" {
		return "", false
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	sub, err := token.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", false
	}

	return auth.Identity(sub), true
}

// Require rejects requests without a valid token.
func (a *Auth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := a.identityFromRequest(r)
		if !ok {
			response.JSON(w, http.StatusUnauthorized, response.Payload{
				Success: false,
				Code:    "unauthenticated",
				Message: "authentication required",
			})
			return
		}
		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
	})
}

// Optional attaches the identity when a valid token is present and lets the
// request through either way.
func (a *Auth) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if identity, ok := a.identityFromRequest(r); ok {
			r = r.WithContext(auth.WithIdentity(r.Context(), identity))
		}
		next.ServeHTTP(w, r)
	})
}
