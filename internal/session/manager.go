package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the session cookie set on login.
const CookieName = "safari_sid"

// Manager issues and resolves cookie-backed sessions. The cookie value
// is an HS256 token wrapping the session id, so a tampered cookie never
// reaches the store.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
}

func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{store: store, secret: []byte(secret), ttl: ttl}
}

// Issue creates a session for data and sets the signed cookie.
func (m *Manager) Issue(c *gin.Context, data Data) error {
	sid := uuid.NewString()
	expiresAt := time.Now().Add(m.ttl)
	if err := m.store.Set(sid, data, expiresAt); err != nil {
		return err
	}
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, token, int(m.ttl.Seconds()), "/", "", false, true)
	return nil
}

// Current resolves the request's session, if any.
func (m *Manager) Current(c *gin.Context) (Data, bool) {
	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return Data{}, false
	}
	sid, err := m.parseSID(cookie)
	if err != nil {
		return Data{}, false
	}
	data, ok, err := m.store.Get(sid)
	if err != nil || !ok {
		return Data{}, false
	}
	return data, true
}

// Clear destroys the request's session and expires the cookie.
func (m *Manager) Clear(c *gin.Context) error {
	cookie, err := c.Cookie(CookieName)
	if err == nil {
		if sid, perr := m.parseSID(cookie); perr == nil {
			if derr := m.store.Destroy(sid); derr != nil {
				return derr
			}
		}
	}
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
	return nil
}

func (m *Manager) parseSID(cookie string) (string, error) {
	token, err := jwt.Parse(cookie, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid session cookie")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid session claims")
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", errors.New("missing session id")
	}
	return sid, nil
}
