package api

import (
	_ "todayrates/docs"
	"todayrates/internal/api/handler"
	"todayrates/internal/auth"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(h *handler.Handler, authService *auth.Service) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/currencies", h.GetCurrencies)
		r.Get("/rates/board", h.GetRateBoard)
		r.Get("/rates/history", h.GetRateHistory)
		r.Get("/gold/board", h.GetGoldBoard)
		r.Get("/gold/history", h.GetGoldHistory)
		r.Post("/auth/login", h.Login)

		r.Group(func(admin chi.Router) {
			admin.Use(auth.Middleware(authService))

			admin.Post("/rates", h.InsertRates)
			admin.Put("/rates/{id}", h.UpdateRate)
			admin.Delete("/rates/{id}", h.DeleteRate)

			admin.Post("/gold", h.InsertGold)
			admin.Put("/gold/{id}", h.UpdateGold)
			admin.Delete("/gold/{id}", h.DeleteGold)

			admin.Post("/generate", h.Generate)
			admin.Get("/generate/preview", h.Preview)

			admin.Get("/settings", h.GetSettings)
			admin.Put("/settings", h.SaveSettings)
			admin.Delete("/settings", h.ResetSettings)
		})
	})
	return router
}
