package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes registers every endpoint in one static table, built at startup
// and checked at compile time.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/api/health", handlers.healthHandler.healthCheck())

		// Project endpoints
		r.Get("/api/projects", handlers.projectHandler.getAllProjects())
		r.Post("/api/projects", handlers.projectHandler.createProject())
		r.Get("/api/projects/{projectID}", handlers.projectHandler.getProject())
		r.Put("/api/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Put("/api/projects/{projectID}/whiteboard", handlers.projectHandler.updateWhiteboard())
		r.Delete("/api/projects/{projectID}", handlers.projectHandler.deleteProject())

		// Prompt endpoints
		r.Get("/api/prompts", handlers.promptHandler.getAllPrompts())
		r.Post("/api/prompts", handlers.promptHandler.createPrompt())
		r.Post("/api/prompts/reorder", handlers.promptHandler.reorderPrompts())
		r.Get("/api/prompts/{promptID}", handlers.promptHandler.getPrompt())
		r.Put("/api/prompts/{promptID}", handlers.promptHandler.updatePrompt())
		r.Delete("/api/prompts/{promptID}", handlers.promptHandler.deletePrompt())

		// Setting endpoints
		r.Get("/api/settings/{key}", handlers.settingHandler.getSetting())
		r.Post("/api/settings", handlers.settingHandler.setSetting())

		// Legacy item endpoints
		r.Get("/api/items", handlers.itemHandler.getAllItems())
		r.Post("/api/items", handlers.itemHandler.createItem())
		r.Get("/api/items/{itemID}", handlers.itemHandler.getItem())
		r.Put("/api/items/{itemID}", handlers.itemHandler.updateItem())
		r.Delete("/api/items/{itemID}", handlers.itemHandler.deleteItem())
	})
}
