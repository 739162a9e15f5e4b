package api

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageNames = []string{
	"index",
	"dashboard",
	"workout_log",
	"food_log",
	"questionnaire",
	"profile",
	"plan",
	"admin_users",
	"status",
}

var templateFuncs = template.FuncMap{
	"day": func(t time.Time) string {
		return t.Format("Mon 02 Jan")
	},
	"isoDate": func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format(time.DateOnly)
	},
	"kcal": func(v float64) string {
		return fmt.Sprintf("%.0f", v)
	},
	"short": func(s string) string {
		if len(s) > 8 {
			return s[:8]
		}
		return s
	},
}

type pageData struct {
	User    *SessionUser
	Error   string
	Message string
	Data    any
}

// mustParsePages builds one template set per page, each page fills the "content" block of the layout
func mustParsePages() map[string]*template.Template {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(templateFuncs).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/"+name+".html",
		)
		if err != nil {
			panic(fmt.Sprintf("parsing page %s: %v", name, err))
		}
		pages[name] = t
	}
	return pages
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	logger := GetLoggerFromCtx(r.Context())
	t, ok := s.pages[name]
	if !ok {
		logger.Error("unknown page", slog.String("page", name))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if data.User == nil {
		data.User = getSessionUser(r)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.Error("rendering page error", slog.String("page", name), slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (s *Server) renderStatus(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.render(w, r, status, "status", pageData{Error: message, Data: http.StatusText(status)})
}
