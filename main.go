package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"stagelink/artists"
	"stagelink/auth"
	"stagelink/booking"
	"stagelink/config"
	"stagelink/favorites"
	"stagelink/middleware"
	"stagelink/ratelim"
	"stagelink/reviews"
	"stagelink/routes"
	"stagelink/store"
	"stagelink/users"
	"stagelink/utils"
)

var startTime = time.Now()

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address and
// duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// recoverMiddleware maps panics to a 500 so nothing crashes the process.
func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().Interface("panic", rec).Str("path", r.URL.Path).Msg("handler panic")
				utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// Health is the liveness probe.
func Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithData(w, http.StatusOK, utils.M{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(startTime).String(),
	}, "")
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found; using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	st := store.New()
	if err := st.Seed(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to seed store")
	}

	mw := middleware.NewAuth([]byte(cfg.JWTSecret))
	api := &routes.API{
		Auth:      auth.NewHandler(st, mw),
		Artists:   artists.NewHandler(st),
		Users:     users.NewHandler(st),
		Bookings:  booking.NewHandler(st),
		Favorites: favorites.NewHandler(st),
		Reviews:   reviews.NewHandler(st),
		MW:        mw,
		Limiter:   ratelim.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow),
		LoginLim:  ratelim.NewLoginLimiter(cfg.LoginPerMinute),
	}

	router := httprouter.New()
	router.GET("/health", Health)
	routes.RoutesWrapper(router, api)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := recoverMiddleware(loggingMiddleware(securityHeaders(corsHandler)))

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received; shutting down gracefully")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("graceful shutdown failed")
	}

	log.Info().Msg("server stopped cleanly")
}
