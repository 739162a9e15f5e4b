package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/pkg/httputil"
)

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UserID string `json:"uid"`
	Token  string `json:"token"`
}

const msgWrongCredentials = "Invalid username or password"

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWrongCredentials) {
			logger.Error("login error: wrong credentials")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password")
			return
		}
		logger.Error("login error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login")
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, LoginResponse{
		UserID: user.ID.String(),
		Token:  token,
	})
	logger.Info("successful login")
}

func (s *Server) IndexPage(w http.ResponseWriter, r *http.Request) {
	if _, err := s.sessionUser(r); err == nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	s.render(w, r, http.StatusOK, "index", pageData{})
}

// PageLogin is the form counterpart of Login, it keeps the user in a cookie session
func (s *Server) PageLogin(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	if err := r.ParseForm(); err != nil {
		s.render(w, r, http.StatusBadRequest, "index", pageData{Error: "Invalid form"})
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, r.PostForm.Get("username"), r.PostForm.Get("password"))
	if err != nil {
		if errors.Is(err, errorvalues.ErrWrongCredentials) {
			logger.Warn("page login error: wrong credentials")
			s.render(w, r, http.StatusUnauthorized, "index", pageData{Error: msgWrongCredentials})
			return
		}
		logger.Error("page login error: service error", slog.String("error", err.Error()))
		s.render(w, r, http.StatusInternalServerError, "index", pageData{Error: "Something went wrong, please try again"})
		return
	}
	if err := s.saveSessionUser(w, r, user); err != nil {
		logger.Error("page login error: saving session", slog.String("error", err.Error()))
		s.render(w, r, http.StatusInternalServerError, "index", pageData{Error: "Something went wrong, please try again"})
		return
	}
	logger.Info("successful page login", slog.String("uid", user.ID.String()))
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if err := s.clearSession(w, r); err != nil {
		GetLoggerFromCtx(r.Context()).Error("logout error", slog.String("error", err.Error()))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
