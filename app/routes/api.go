// Package routes assembles the HTTP surface of the API on a chi router.
package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cropconnect/api/app/controllers"
	"github.com/cropconnect/api/config"
	"github.com/cropconnect/api/pkg/metrics"
	"github.com/cropconnect/api/pkg/middleware"
	"github.com/cropconnect/api/pkg/reqid"
	"github.com/cropconnect/api/pkg/storage"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Health  *controllers.HealthController
	Auth    *controllers.AuthController
	Crop    *controllers.CropController
	Order   *controllers.OrderController
	Payment *controllers.PaymentController
	Advisor *controllers.AdvisorController
	Upload  *controllers.UploadController
}

// New builds the router with the full middleware chain and all routes.
func New(c Controllers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(reqid.Middleware())
	r.Use(metrics.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions(config.FrontendURL())))
	r.Use(middleware.RateLimit(300, time.Minute))

	// Routes live at the root, matching the paths the web client calls.
	r.Group(func(r chi.Router) {
		r.Get("/health", c.Health.Check)

		r.Post("/auth/register", c.Auth.Register)
		r.Post("/auth/login", c.Auth.Login)

		// Browsing the catalogue needs no account.
		r.Get("/crops", c.Crop.List)
		r.Get("/crops/{id}", c.Crop.Get)

		// The mock advisor is open; it holds no user data.
		r.Post("/ai/price-prediction", c.Advisor.PredictPrice)
		r.Post("/ai/chat", c.Advisor.Chat)

		// The gateway callback and uploads carry no session, matching the
		// web client, which calls them before and outside checkout auth.
		r.Post("/payments/verify", c.Payment.Verify)
		r.Post("/upload", c.Upload.Store)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth)

			r.Post("/crops", c.Crop.Create)
			r.Put("/crops/{id}", c.Crop.Update)
			r.Delete("/crops/{id}", c.Crop.Delete)

			r.Post("/orders", c.Order.Create)
			r.Get("/orders/user/{userId}", c.Order.ListForUser)
			r.Patch("/orders/{id}/status", c.Order.UpdateStatus)

			r.Post("/payments/create-order", c.Payment.CreateOrder)
		})
	})

	r.Get("/ws/advisor", c.Advisor.Socket)
	r.Get("/metrics", metrics.Handler().ServeHTTP)

	// In local storage mode uploaded images are served straight from disk.
	if config.StorageDisk() == "local" {
		if root := storage.LocalRoot(); root != "" {
			fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(root)))
			r.Get("/uploads/*", fs.ServeHTTP)
		}
	}

	return r
}
