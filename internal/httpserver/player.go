// internal/httpserver/player.go
//
// Anonymous player identity.
//
// Every visitor gets a random player ID (UUID) carried in an HS256 JWT,
// either as a cookie or an "Authorization: Bearer" header. The ID keys the
// saved game and the daily results; there are no accounts.

package httpserver

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const tokenTTL = 400 * 24 * time.Hour

// ctxPlayerKey is the context key type for the player ID.
type ctxPlayerKey struct{}

// playerID returns the ID attached by withPlayer.
func playerID(r *http.Request) string {
	id, _ := r.Context().Value(ctxPlayerKey{}).(string)
	return id
}

// withPlayer attaches the caller's player ID to the request, issuing a new
// identity cookie when the request carries no valid token.
func (s *Server) withPlayer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := s.parsePlayerToken(bearerOrCookie(r, s.opt.CookieName))
		if id == "" {
			id = uuid.NewString()
			tok, exp, err := s.signPlayerToken(id)
			if err != nil {
				log.Error().Err(err).Msg("sign player token")
				writeError(w, http.StatusInternalServerError, "sign_failed")
				return
			}
			s.setPlayerCookie(w, tok, exp)
			w.Header().Set("X-Player-Token", tok)
		}
		ctx := context.WithValue(r.Context(), ctxPlayerKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// signPlayerToken creates an HS256 JWT whose subject is the player ID.
func (s *Server) signPlayerToken(id string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(tokenTTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString([]byte(s.opt.TokenSecret))
	return ss, exp, err
}

// parsePlayerToken returns the player ID in tok, or "" if tok is missing,
// expired, forged or does not carry a UUID.
func (s *Server) parsePlayerToken(tok string) string {
	if tok == "" {
		return ""
	}
	var claims jwt.RegisteredClaims
	t, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.opt.TokenSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid {
		return ""
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return ""
	}
	return claims.Subject
}

// setPlayerCookie writes the identity cookie with appropriate security attributes.
func (s *Server) setPlayerCookie(w http.ResponseWriter, token string, exp time.Time) {
	sameSite := http.SameSiteLaxMode
	if s.opt.Secure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.opt.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opt.Secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a bearer token from the Authorization header or the identity cookie.
func bearerOrCookie(r *http.Request, cookieName string) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}
