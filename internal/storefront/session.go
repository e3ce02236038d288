package storefront

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/areeba-ilyas/E-commerce-App/internal/cart"
	"github.com/areeba-ilyas/E-commerce-App/pkg/kit"
)

// Sessions are anonymous: the signed cookie only pins a browser to its cart.
// There are no accounts and nothing to authenticate.
const (
	sessionCookie = "shopeasy_session"
	sessionTTL    = 30 * 24 * time.Hour
)

type sessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

type SessionMaker struct {
	secret []byte
	issuer string
}

func NewSessionMaker(secret string) *SessionMaker {
	return &SessionMaker{secret: []byte(secret), issuer: "shopeasy"}
}

// New mints a fresh session id and its signed token.
func (m *SessionMaker) New() (id, token string, err error) {
	id = uuid.NewString()
	now := time.Now()

	claims := sessionClaims{
		SessionID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}

	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	return id, token, err
}

func (m *SessionMaker) Parse(token string) (string, error) {
	var c sessionClaims

	t, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || t == nil || !t.Valid || c.SessionID == "" {
		return "", errors.New("invalid session token")
	}
	if c.Issuer != "" && c.Issuer != m.issuer {
		return "", errors.New("invalid issuer")
	}

	return c.SessionID, nil
}

type ctxKey string

const sessionKey ctxKey = "session"

func sessionFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionKey).(string)
	return id, ok
}

// withSession resolves the session cookie, minting a new session when the
// cookie is absent or unreadable. An unreadable cookie is replaced, not
// rejected.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(sessionCookie); err == nil {
			if id, err := s.Sessions.Parse(c.Value); err == nil {
				next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, id)))
				return
			}
		}

		id, token, err := s.Sessions.New()
		if err != nil {
			kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    token,
			Path:     "/",
			MaxAge:   int(sessionTTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, id)))
	})
}

// Carts hands out one ledger per session, restored lazily from the store
// under the session's own key. Sessions never share a ledger.
type Carts struct {
	mu      sync.Mutex
	store   cart.Store
	log     *zap.Logger
	ledgers map[string]*cart.Ledger
}

func NewCarts(store cart.Store, log *zap.Logger) *Carts {
	return &Carts{
		store:   store,
		log:     log,
		ledgers: make(map[string]*cart.Ledger),
	}
}

func (c *Carts) For(ctx context.Context, sessionID string) *cart.Ledger {
	c.mu.Lock()
	defer c.mu.Unlock()

	if l, ok := c.ledgers[sessionID]; ok {
		return l
	}
	l := cart.NewLedger(ctx, c.store, "cart:"+sessionID, c.log)
	c.ledgers[sessionID] = l
	return l
}
