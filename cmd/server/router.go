package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/bookstore-api/internal/api"
	apiMiddleware "github.com/phrazzld/bookstore-api/internal/api/middleware"
)

// setupRouter creates the router with all middleware and routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(app.rateLimiter.Limit)

	paging := app.pagingDefaults()
	authHandler := api.NewAuthHandler(app.userService, app.jwtService, app.validators, app.logger)
	userHandler := api.NewUserHandler(app.userService, app.logger)
	genreHandler := api.NewGenreHandler(app.genreService, app.validators, paging, app.logger)
	bookHandler := api.NewBookHandler(app.bookService, app.validators, paging, app.logger)
	favouriteHandler := api.NewFavouriteHandler(app.favouriteService, app.validators, paging, app.logger)
	cartHandler := api.NewCartHandler(app.cartService, app.validators, app.logger)
	orderHandler := api.NewOrderHandler(app.orderService, app.validators, paging, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Get("/genres", genreHandler.List)
		r.Get("/genres/{id}", genreHandler.Get)
		r.Get("/books", bookHandler.List)
		r.Get("/books/{id}", bookHandler.Get)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/users/me", userHandler.Me)

			r.Post("/genres", genreHandler.Create)
			r.Put("/genres/{id}", genreHandler.Update)
			r.Delete("/genres/{id}", genreHandler.Delete)

			r.Post("/books", bookHandler.Create)
			r.Put("/books/{id}", bookHandler.Update)
			r.Delete("/books/{id}", bookHandler.Delete)

			r.Get("/favourites", favouriteHandler.List)
			r.Post("/favourites", favouriteHandler.Create)
			r.Delete("/favourites/{id}", favouriteHandler.Delete)

			r.Get("/cart", cartHandler.Get)
			r.Post("/cart/items", cartHandler.AddItem)
			r.Put("/cart/items/{id}", cartHandler.UpdateItem)
			r.Delete("/cart/items/{id}", cartHandler.RemoveItem)

			r.Get("/orders", orderHandler.List)
			r.Post("/orders", orderHandler.Create)
			r.Get("/orders/{id}", orderHandler.Get)
			r.Post("/orders/{id}/cancel", orderHandler.Cancel)
		})
	})

	r.Get("/health", app.handleHealth)

	return r
}

// handleHealth reports OK when the database answers a ping.
func (app *application) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := app.db.PingContext(r.Context()); err != nil {
		app.logger.Error("Health check failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("UNAVAILABLE"))
		return
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		app.logger.Error("Failed to write health check response", "error", err)
	}
}
