package server

import (
	"github.com/Lutefd/travel-journal/internal/handler"
	api_middleware "github.com/Lutefd/travel-journal/internal/middleware"
	"github.com/Lutefd/travel-journal/internal/service"
	"github.com/go-chi/chi/v5"
)

func (s *Server) registerRoutes(logService service.LogServiceInterface) {
	router := chi.NewRouter()
	router.Use(api_middleware.RequestID)
	router.Use(api_middleware.RequestLogging(s.logger))
	router.Use(api_middleware.Recovery(s.logger))
	router.Use(api_middleware.Identify)
	rateLimiter := api_middleware.NewRateLimiter(s.config.RateLimitRPS)

	router.Get("/healthz", handler.HandlerReadiness)

	logHandler := handler.NewLogHandler(logService)
	router.Get("/categories", logHandler.Categories)
	router.Route("/logs", func(r chi.Router) {
		r.Get("/", logHandler.ListLogs)
		r.Get("/status", handler.HandlerStatus(logService))
		r.With(api_middleware.RequireUser).Get("/mine", logHandler.MyLogs)
		r.Get("/{id}", logHandler.GetLog)
		r.With(rateLimiter.Middleware).Post("/", logHandler.AddLog)
		r.With(rateLimiter.Middleware).Post("/refresh", logHandler.RefreshLogs)
		r.With(rateLimiter.Middleware).Patch("/{id}", logHandler.UpdateLog)
		r.With(rateLimiter.Middleware).Delete("/{id}", logHandler.DeleteLog)
	})
	router.Get("/users/{userID}/logs", logHandler.UserLogs)
	s.router = router
}
