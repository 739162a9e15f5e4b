package api

import (
	"crypto/rand"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/limbo/fittrack/pkg/entity"
)

const (
	sessionName   = "fittrack_session"
	sessionMaxAge = 12 * 60 * 60
)

// NewSessionStore builds the cookie store for server rendered pages. An
// empty secret gets a random key, so sessions do not survive a restart.
func NewSessionStore(secret string, secure bool) *sessions.CookieStore {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			log.Fatal("generating session key: ", err)
		}
	}
	store := sessions.NewCookieStore(key)
	store.MaxAge(sessionMaxAge)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = secure
	store.Options.SameSite = http.SameSiteLaxMode
	return store
}

// SessionUser is what a page session remembers about the logged in user
type SessionUser struct {
	ID        uuid.UUID
	Username  string
	FirstName string
	LastName  string
	Level     string
}

func (u *SessionUser) IsManager() bool {
	return u != nil && u.Level == entity.LevelManager
}

func (s *Server) saveSessionUser(w http.ResponseWriter, r *http.Request, user *entity.User) error {
	session, _ := s.sessions.Get(r, sessionName)
	session.Values["uid"] = user.ID.String()
	session.Values["username"] = user.Username
	session.Values["first_name"] = user.FirstName
	session.Values["last_name"] = user.LastName
	session.Values["level"] = user.Level
	return session.Save(r, w)
}

func (s *Server) sessionUser(r *http.Request) (*SessionUser, error) {
	session, err := s.sessions.Get(r, sessionName)
	if err != nil {
		return nil, err
	}
	rawID, ok := session.Values["uid"].(string)
	if !ok {
		return nil, errors.New("no user in session")
	}
	uid, err := uuid.Parse(rawID)
	if err != nil {
		return nil, err
	}
	user := &SessionUser{ID: uid}
	user.Username, _ = session.Values["username"].(string)
	user.FirstName, _ = session.Values["first_name"].(string)
	user.LastName, _ = session.Values["last_name"].(string)
	user.Level, _ = session.Values["level"].(string)
	return user, nil
}

func (s *Server) clearSession(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.sessions.Get(r, sessionName)
	session.Values = map[interface{}]interface{}{}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}
