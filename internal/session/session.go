package session

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"daybook/internal/repository"
	tokenIssuer "daybook/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

var ErrNoSession error = errors.New("no valid session")

const cookieName = "daybook_session"
const sessionTTL = 24 * time.Hour

// Session is the identity resolved from the signed cookie. UserID 0 means an
// anonymous visitor who still carries a CSRF token for the login form.
type Session struct {
	UserID    uint
	Username  string
	CSRFToken string
}

func (s Session) Authenticated() bool {
	return s.UserID != 0
}

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenIssuer . TokenIssuer
type TokenIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *gojwt.Token
	Sign(token *gojwt.Token) (string, error)
	Validate(token string) (gojwt.MapClaims, error)
}

// Manager issues and resolves the session cookie. The cookie value is a
// signed token; the signing secret is the session secret from configuration.
type Manager struct {
	tokens TokenIssuer
}

func NewManager(tokens TokenIssuer) *Manager {
	return &Manager{
		tokens: tokens,
	}
}

// Establish writes a fresh session cookie for the given user, rotating the
// CSRF token. A nil user yields an anonymous session, which is also how
// logout clears the current identity.
func (m *Manager) Establish(w http.ResponseWriter, user *repository.User) (Session, error) {
	sess := Session{CSRFToken: newCSRFToken()}
	if user != nil {
		sess.UserID = user.ID
		sess.Username = user.Username
	}

	info := tokenIssuer.TokenInfo{
		Subject:    strconv.FormatUint(uint64(sess.UserID), 10),
		UserName:   sess.Username,
		CSRFToken:  sess.CSRFToken,
		Expiration: 24,
	}
	signed, err := m.tokens.Sign(m.tokens.Generate(info))
	if err != nil {
		return Session{}, fmt.Errorf("sign session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    signed,
		Path:     "/",
		Expires:  time.Now().Add(sessionTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return sess, nil
}

// Resolve reads the session cookie back into a Session. A missing, expired or
// tampered cookie yields ErrNoSession.
func (m *Manager) Resolve(r *http.Request) (Session, error) {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return Session{}, ErrNoSession
	}

	claims, err := m.tokens.Validate(cookie.Value)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %w", ErrNoSession, err)
	}

	sess := Session{}
	if sub, ok := claims["sub"].(string); ok {
		id, err := strconv.ParseUint(sub, 10, 64)
		if err != nil {
			return Session{}, fmt.Errorf("%w: bad subject claim", ErrNoSession)
		}
		sess.UserID = uint(id)
	}
	if username, ok := claims["username"].(string); ok {
		sess.Username = username
	}
	if csrf, ok := claims["csrf"].(string); ok {
		sess.CSRFToken = csrf
	}
	if sess.CSRFToken == "" {
		return Session{}, fmt.Errorf("%w: missing csrf claim", ErrNoSession)
	}

	return sess, nil
}

func newCSRFToken() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
