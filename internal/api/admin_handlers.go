package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/fittrack/internal/error_values"
	"github.com/limbo/fittrack/internal/service"
	"github.com/limbo/fittrack/pkg/entity"
)

type adminUsersPage struct {
	Users  []*entity.User
	Levels []string
}

func (s *Server) AdminUsersPage(w http.ResponseWriter, r *http.Request) {
	s.renderAdminUsers(w, r, http.StatusOK, "", "")
}

func (s *Server) renderAdminUsers(w http.ResponseWriter, r *http.Request, status int, message, formErr string) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	users, err := s.userService.ListUsers(ctx)
	if err != nil {
		logger.Error("admin users page error", slog.String("error", err.Error()))
		s.renderStatus(w, r, http.StatusInternalServerError, msgPageFailure)
		return
	}
	s.render(w, r, status, "admin_users", pageData{
		Message: message,
		Error:   formErr,
		Data: adminUsersPage{
			Users:  users,
			Levels: []string{entity.LevelUser, entity.LevelManager},
		},
	})
}

func (s *Server) AdminCreateUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	if err := r.ParseForm(); err != nil {
		s.renderAdminUsers(w, r, http.StatusBadRequest, "", "Invalid form")
		return
	}
	form := newFormReader(r.PostForm)
	req := &service.CreateUserRequest{
		Username:  form.String("username"),
		Password:  r.PostForm.Get("password"),
		FirstName: form.String("first_name"),
		LastName:  form.String("last_name"),
		Level:     form.String("level"),
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.CreateUser(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Warn("create user error: invalid form", slog.String("error", err.Error()))
			s.renderAdminUsers(w, r, http.StatusBadRequest, "", err.Error())
		case errors.Is(err, errorvalues.ErrUserExists):
			logger.Warn("create user error: existed user")
			s.renderAdminUsers(w, r, http.StatusConflict, "", "User with such name already exists")
		default:
			logger.Error("create user error: service error", slog.String("error", err.Error()))
			s.renderAdminUsers(w, r, http.StatusInternalServerError, "", msgPageFailure)
		}
		return
	}
	logger.Info("user created", slog.String("created_uid", user.ID.String()))
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

func (s *Server) AdminChangeLevel(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actorID, _ := GetUIDFromContext(r)
	uid, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Warn("change level error: invalid id in path")
		s.renderAdminUsers(w, r, http.StatusBadRequest, "", "Invalid user id")
		return
	}
	if err := r.ParseForm(); err != nil {
		s.renderAdminUsers(w, r, http.StatusBadRequest, "", "Invalid form")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err = s.userService.ChangeLevel(ctx, actorID, uid, r.PostForm.Get("level"))
	if err != nil {
		s.adminActionError(w, r, "change level", err)
		return
	}
	logger.Info("user level changed", slog.String("target_uid", uid.String()))
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

func (s *Server) AdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actorID, _ := GetUIDFromContext(r)
	uid, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Warn("delete user error: invalid id in path")
		s.renderAdminUsers(w, r, http.StatusBadRequest, "", "Invalid user id")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err = s.userService.DeleteUser(ctx, actorID, uid)
	if err != nil {
		s.adminActionError(w, r, "delete user", err)
		return
	}
	logger.Info("user deleted", slog.String("target_uid", uid.String()))
	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

func (s *Server) adminActionError(w http.ResponseWriter, r *http.Request, action string, err error) {
	logger := GetLoggerFromCtx(r.Context())
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Warn(action+" error: invalid value", slog.String("error", err.Error()))
		s.renderAdminUsers(w, r, http.StatusBadRequest, "", err.Error())
	case errors.Is(err, errorvalues.ErrForbidden):
		logger.Warn(action + " error: action on own account")
		s.renderAdminUsers(w, r, http.StatusForbidden, "", "You cannot do that to your own account")
	case errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Warn(action + " error: unexist user")
		s.renderAdminUsers(w, r, http.StatusNotFound, "", "User doesn't exist")
	default:
		logger.Error(action+" error: service error", slog.String("error", err.Error()))
		s.renderAdminUsers(w, r, http.StatusInternalServerError, "", msgPageFailure)
	}
}
