package main // Entry point package

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/voice-greetings/internal/config"
	"github.com/iliyamo/voice-greetings/internal/database"
	"github.com/iliyamo/voice-greetings/internal/handler"
	"github.com/iliyamo/voice-greetings/internal/middleware"
	"github.com/iliyamo/voice-greetings/internal/repository"
	"github.com/iliyamo/voice-greetings/internal/router"
	"github.com/iliyamo/voice-greetings/internal/transcode"
)

func main() {
	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.MongoURI, cfg.DBName) // One client for the whole process
	if err != nil {
		log.Fatalf("unable to connect to database at %s: %v", cfg.MongoURI, err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("index build failed: %v", err)
	}
	cancel()

	if err := os.MkdirAll(cfg.GreetingDir, 0o755); err != nil {
		log.Fatalf("greeting dir %s: %v", cfg.GreetingDir, err)
	}

	users := repository.NewUserRepo(db)
	greetings := repository.NewGreetingRepo(db)

	uh := handler.NewUserHandler(users)
	gh := handler.NewGreetingHandler(cfg, users, greetings, transcode.Sox{})

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover()) // per-request log line + panic containment
	e.HTTPErrorHandler = statusOnlyErrorHandler

	router.RegisterRoutes(e, router.Registry(uh, gh), middleware.TokenAuth(users), cfg.AuthProtect)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err)
	}
}

// statusOnlyErrorHandler is the generic fallback for anything a handler did
// not answer itself: unmatched routes, store failures, transcode failures.
// It logs the error and replies with the numeric status code as the entire
// body, with no structured error payload.
func statusOnlyErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
	}
	log.Printf("error: %v", err)
	if !c.Response().Committed {
		_ = c.String(code, strconv.Itoa(code))
	}
}
