/*
main.go - Application entry point

STARTUP SEQUENCE:
 1. Load environment configuration (.env merged when present)
 2. Parse command-line flag overrides
 3. Open the declared-holiday store
 4. Wire handler and router
 5. Serve with graceful shutdown

COMMAND-LINE FLAGS:

	-port    HTTP server port (overrides HTTP_PORT)
	-db      SQLite database path (overrides DB_PATH, ":memory:" supported)

GRACEFUL SHUTDOWN:

	On SIGINT/SIGTERM: stop accepting connections, drain active requests for
	up to 30s, close the store, exit.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Wisley56/Apontamento-de-Horas/api"
	"github.com/Wisley56/Apontamento-de-Horas/config"
	"github.com/Wisley56/Apontamento-de-Horas/store/sqlite"
	"github.com/Wisley56/Apontamento-de-Horas/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	port := flag.Int("port", cfg.App.Port, "HTTP server port")
	dbPath := flag.String("db", cfg.Store.Path, "SQLite database path")
	flag.Parse()

	store, err := sqlite.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open holiday store: %v", err)
	}
	defer store.Close()

	handler := api.NewHandler(store, timesheet.Config{
		ExpectedHours:    cfg.Engine.ExpectedHours,
		ToleranceMinutes: cfg.Engine.ToleranceMinutes,
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "apontamento-de-horas"),
		slog.String("env", cfg.App.Env),
	)
	router := api.NewRouter(handler, api.RouterOptions{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		StaticDir:      cfg.App.StaticDir,
		Logger:         logger,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%d", *port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
