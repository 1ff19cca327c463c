package auth

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"golang.org/x/crypto/bcrypt"
)

// Store gates the whole book behind one shared staff PIN. There are no user
// accounts: a correct PIN yields a staff session cookie.
type Store struct {
	sc      *securecookie.SecureCookie
	pinHash []byte
}

const (
	cookieName = "charm_session"
	sessionTTL = 14 * 24 * time.Hour
)

func NewStore(pinHash, hashKey, blockKey []byte) *Store {
	sc := securecookie.New(hashKey, blockKey)
	sc.MaxAge(int(sessionTTL.Seconds()))
	return &Store{sc: sc, pinHash: pinHash}
}

// HashPIN bcrypt-hashes a staff PIN for config storage.
func HashPIN(pin string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
}

// VerifyPIN checks an entered PIN against the configured hash.
func (s *Store) VerifyPIN(pin string) bool {
	return bcrypt.CompareHashAndPassword(s.pinHash, []byte(pin)) == nil
}

func (s *Store) SetSession(w http.ResponseWriter, r *http.Request) error {
	encoded, err := s.sc.Encode(cookieName, map[string]string{"role": "staff"})
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   r.TLS != nil,
		MaxAge:   int(sessionTTL.Seconds()),
	})
	return nil
}

func (s *Store) ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

func (s *Store) HasSession(r *http.Request) bool {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return false
	}
	val := map[string]string{}
	if err := s.sc.Decode(cookieName, c.Value, &val); err != nil {
		return false
	}
	return val["role"] == "staff"
}

// RequireAuth rejects requests without a staff session. The API is JSON, so
// the middleware answers 401 rather than redirecting.
func (s *Store) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.HasSession(r) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"authentication required"}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}
