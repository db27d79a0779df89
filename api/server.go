/*
server.go - HTTP router and middleware configuration

PURPOSE:

	Configures the chi router, middleware stack, and route definitions. This is
	the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
 1. RequestID:  Unique ID per request for tracing
 2. Recoverer:  Panic recovery (500 instead of crash)
 3. CORS:       Cross-origin requests for the frontend
 4. httplog:    Structured request logging on slog

STATIC FILE SERVING:

	Serves the frontend directory at /*, falling back to index.html so the
	single-page app handles its own routing.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// RouterOptions tunes the router for the environment.
type RouterOptions struct {
	AllowedOrigins []string
	StaticDir      string
	Logger         *slog.Logger
}

// NewRouter creates a router with all routes configured.
func NewRouter(h *Handler, opts RouterOptions) *chi.Mux {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
			slog.String("app", "apontamento-de-horas"),
		)
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/states", h.ListStates)

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", h.ListDeclaredHolidays)
			r.Post("/", h.CreateHoliday)
			r.Delete("/{id}", h.DeleteHoliday)
			r.Get("/{year}/{region}", h.ListYearHolidays)
		})

		r.Post("/analyze", h.Analyze)
		r.Post("/export", h.Export)
	})

	mountStatic(r, opts.StaticDir)

	return r
}

// mountStatic serves the frontend with an index.html fallback for SPA routes.
func mountStatic(r *chi.Mux, staticDir string) {
	if staticDir == "" {
		staticDir = "./frontend"
	}
	if _, err := os.Stat(staticDir); err != nil {
		r.Get("/*", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Apontamento de Horas</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Apontamento de Horas API</h1>
<p>O frontend não foi encontrado. A API está disponível em <code>/api</code>.</p>
<ul>
<li><a href="/api/states">/api/states</a></li>
<li><a href="/api/holidays/2025/SP">/api/holidays/2025/SP</a></li>
</ul>
</body>
</html>`))
		})
		return
	}

	fileServer := http.FileServer(http.Dir(staticDir))
	r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
		fullPath := filepath.Join(staticDir, filepath.Clean(req.URL.Path))
		if _, err := os.Stat(fullPath); os.IsNotExist(err) {
			http.ServeFile(w, req, filepath.Join(staticDir, "index.html"))
			return
		}
		fileServer.ServeHTTP(w, req)
	})
}
