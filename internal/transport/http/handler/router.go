package handler

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/gstippagol/habit/internal/transport/http/middleware"
)

// Router sets up HTTP routes
type Router struct {
	authHandler    *AuthHandler
	habitHandler   *HabitHandler
	authMiddleware *middleware.AuthMiddleware
	mux            *http.ServeMux
}

// NewRouter creates a new router
func NewRouter(authHandler *AuthHandler, habitHandler *HabitHandler, authMiddleware *middleware.AuthMiddleware) *Router {
	return &Router{
		authHandler:    authHandler,
		habitHandler:   habitHandler,
		authMiddleware: authMiddleware,
		mux:            http.NewServeMux(),
	}
}

// Setup configures all routes
func (r *Router) Setup(limiter *middleware.RateLimiter) http.Handler {

	r.mux.HandleFunc("/api/v1/auth/register", r.authHandler.Register)
	r.mux.HandleFunc("/api/v1/auth/login", r.authHandler.Login)
	r.mux.HandleFunc("/api/v1/auth/refresh", r.authHandler.RefreshToken)
	r.mux.HandleFunc("/api/v1/auth/verify-email", r.authHandler.VerifyEmail)

	r.mux.HandleFunc("/api/v1/auth/logout", r.authMiddleware.Auth(r.authHandler.Logout))

	// Habit routes (all require authentication)
	r.mux.HandleFunc("/api/v1/habits/create", r.authMiddleware.Auth(r.habitHandler.CreateHabit))
	r.mux.HandleFunc("/api/v1/habits/list", r.authMiddleware.Auth(r.habitHandler.ListHabits))
	r.mux.HandleFunc("/api/v1/habits/get", r.authMiddleware.Auth(r.habitHandler.GetHabit))
	r.mux.HandleFunc("/api/v1/habits/update", r.authMiddleware.Auth(r.habitHandler.UpdateHabit))
	r.mux.HandleFunc("/api/v1/habits/toggle", r.authMiddleware.Auth(r.habitHandler.ToggleCompletion))
	r.mux.HandleFunc("/api/v1/habits/archive", r.authMiddleware.Auth(r.habitHandler.SetArchived))
	r.mux.HandleFunc("/api/v1/habits/delete", r.authMiddleware.Auth(r.habitHandler.DeleteHabit))
	r.mux.HandleFunc("/api/v1/habits/restore", r.authMiddleware.Auth(r.habitHandler.RestoreHabit))
	r.mux.HandleFunc("/api/v1/habits/permanent-delete", r.authMiddleware.Auth(r.habitHandler.PermanentDelete))
	r.mux.HandleFunc("/api/v1/habits/bin", r.authMiddleware.Auth(r.habitHandler.ListBin))
	r.mux.HandleFunc("/api/v1/habits/purge-expired", r.authMiddleware.Auth(r.habitHandler.PurgeExpired))

	r.mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	r.mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	var handler http.Handler = r.mux

	handler = middleware.Logging(handler)

	handler = limiter.Limit(handler)

	return handler
}
