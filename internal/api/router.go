package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "github.com/Eluskie/Orlando/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(chatHandler *ChatHandler, brandHandler *BrandHandler, generateHandler *GenerateHandler, uploadDir string) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	// These are applied to every request.
	r.Use(middleware.RequestID) // Injects a unique request ID into the context.
	r.Use(middleware.RealIP)    // Sets the remote address to the real IP from proxy headers.
	r.Use(middleware.Logger)    // Logs the start and end of each request with useful info.
	r.Use(middleware.Recoverer) // Recovers from panics and returns a 500 error.

	// --- Public Routes ---

	// Serves the auto-generated Swagger UI for API documentation.
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// A simple health check endpoint for container orchestration probes.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// --- API Version 1 Routes ---
	r.Route("/api/v1", func(r chi.Router) {

		// Group for standard JSON API routes that should have a request timeout
		// to prevent client connections from hanging indefinitely.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			// --- Brands ---
			r.Post("/brands", brandHandler.HandleCreateBrand)
			r.Get("/brands", brandHandler.HandleListBrands)
			r.Get("/brands/{brandID}", brandHandler.HandleGetBrand)
			r.Get("/brands/{brandID}/style", brandHandler.HandleGetStyle)
			r.Patch("/brands/{brandID}/style", brandHandler.HandleUpdateStyle)
			r.Get("/brands/{brandID}/assets", brandHandler.HandleListAssets)

			// --- Conversations ---
			r.Get("/conversations/{conversationID}/messages", chatHandler.HandleGetMessages)
			r.Delete("/conversations/{conversationID}/messages", chatHandler.HandleClearMessages)

			// --- Uploads ---
			r.Post("/upload", brandHandler.HandleUpload)

			// --- Generation ---
			r.Get("/generate", generateHandler.HandleGenerateStatus)
			r.Get("/generations/{brandID}", generateHandler.HandleListGenerations)
		})

		// Group for long-running endpoints. These routes must NOT have a timeout,
		// as the chat holds the connection open while the model streams and the
		// generate call waits on the image model for the whole batch.
		r.Group(func(r chi.Router) {
			r.Post("/chat", chatHandler.HandleChat)
			r.Post("/generate", generateHandler.HandleGenerate)
		})
	})

	// --- Upload File Server ---
	// Serves stored reference images and generated assets from disk. In a
	// typical production deployment these would live behind a CDN, but local
	// disk keeps the single-binary deployment simple.
	fileServer := http.FileServer(http.Dir(uploadDir))
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", fileServer))

	return r
}
