package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/entity"
	"github.com/limbo/fittrack/pkg/httputil"
)

var (
	requestIDKContextKey = "Request-ID"
	loggerContextKey     = "Logger"
	uidContextKey        = "User-ID"
	levelContextKey      = "User-Level"
	sessionUserKey       = "Session-User"
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New()
		ctx := context.WithValue(r.Context(), requestIDKContextKey, reqID.String())
		w.Header().Set("X-Request-ID", reqID.String())
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDKContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		userID, ok := r.Context().Value(uidContextKey).(uuid.UUID)
		if ok {
			logger = logger.With(slog.String("uid", userID.String()))
		}
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// RecoverMiddleware turns a panic into 500 and reports it to sentry when
// sentry is initialised.
func (s *Server) RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			hub := sentry.CurrentHub().Clone()
			hub.Scope().SetRequest(r)
			hub.Recover(rec)
			GetLoggerFromCtx(r.Context()).Error("panic recovered", slog.String("error", fmt.Sprint(rec)))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error")
		}()
		next.ServeHTTP(w, r)
	})
}

// AuthMiddleware guards the JSON api. A page session is accepted first,
// a Bearer token otherwise.
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		uid, err := s.uidFromRequest(r)
		if err != nil {
			switch {
			case errors.Is(err, errorvalues.ErrInvalidToken):
				logger.Error("auth failed: invalid token")
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token")
			default:
				logger.Error("auth failed: internal error while parsing token", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error parsing token")
			}
			return
		}
		// Assuring if user still exists
		ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
		defer cancel()
		user, err := s.userService.GetByID(ctx, uid)
		if err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				logger.Error("user doesn't exist")
				httputil.WriteErrorResponse(w, http.StatusNotFound, "auth failed: user not found")
				return
			}
			logger.Error("error while searching for user", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while searching for user")
			return
		}
		next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user.ID, user.Level)))
	})
}

func (s *Server) uidFromRequest(r *http.Request) (uuid.UUID, error) {
	if user, err := s.sessionUser(r); err == nil {
		return user.ID, nil
	}
	tokenString, err := GetTokenFromHeader(r)
	if err != nil {
		return uuid.UUID{}, err
	}
	tokenClaims, err := s.jwtService.ParseToken(tokenString)
	if err != nil {
		return uuid.UUID{}, err
	}
	uid, err := uuid.Parse(tokenClaims.UserID)
	if err != nil {
		return uuid.UUID{}, errorvalues.ErrInvalidToken
	}
	return uid, nil
}

// PageAuthMiddleware sends visitors without a session back to the login page.
// The session only names the user, the level always comes from the store.
func (s *Server) PageAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		sessUser, err := s.sessionUser(r)
		if err != nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
		defer cancel()
		user, err := s.userService.GetByID(ctx, sessUser.ID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				logger.Warn("session of a deleted user", slog.String("uid", sessUser.ID.String()))
				if err := s.clearSession(w, r); err != nil {
					logger.Error("clearing session error", slog.String("error", err.Error()))
				}
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			logger.Error("error while searching for user", slog.String("error", err.Error()))
			s.renderStatus(w, r, http.StatusInternalServerError, msgPageFailure)
			return
		}
		current := &SessionUser{
			ID:        user.ID,
			Username:  user.Username,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Level:     user.Level,
		}
		reqCtx := withUser(r.Context(), current.ID, current.Level)
		reqCtx = context.WithValue(reqCtx, sessionUserKey, current)
		next.ServeHTTP(w, r.WithContext(reqCtx))
	})
}

func (s *Server) ManagerOnlyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		level, _ := r.Context().Value(levelContextKey).(string)
		if level != entity.LevelManager {
			GetLoggerFromCtx(r.Context()).Warn("manager page requested by non-manager")
			s.renderStatus(w, r, http.StatusForbidden, "Only managers can open this page.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func withUser(ctx context.Context, uid uuid.UUID, level string) context.Context {
	ctx = context.WithValue(ctx, uidContextKey, uid)
	return context.WithValue(ctx, levelContextKey, level)
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

func GetUIDFromContext(r *http.Request) (uuid.UUID, error) {
	uid, ok := r.Context().Value(uidContextKey).(uuid.UUID)
	if !ok {
		return uuid.UUID{}, errors.New("uid invalid or doesn't exists")
	}
	return uid, nil
}

func getSessionUser(r *http.Request) *SessionUser {
	user, _ := r.Context().Value(sessionUserKey).(*SessionUser)
	return user
}
