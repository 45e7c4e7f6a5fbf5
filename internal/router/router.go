package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"smartcity-server/internal/auth"
	"smartcity-server/internal/config"
	"smartcity-server/internal/handler"
	"smartcity-server/internal/middleware"
)

type Handlers struct {
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Complaint *handler.ComplaintHandler
	Contact   *handler.ContactHandler
	Bill      *handler.BillHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, h Handlers) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.SecurityHeaders)
	r.Use(rateLimitMiddleware.Handler)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))
		api.Use(authMiddleware.Authenticate)

		api.Route("/auth", func(ar chi.Router) {
			ar.Post("/signup", h.Auth.SignUp)
			ar.Post("/login", h.Auth.Login)
			ar.Post("/refresh", h.Auth.Refresh)
		})

		api.Route("/citizen", func(cr chi.Router) {
			cr.Use(authMiddleware.RequireAuth, authMiddleware.RequireRole(auth.RoleCitizen))

			cr.Post("/complaints", h.Complaint.Create)
			cr.Get("/complaints", h.Complaint.List)
			cr.Get("/complaints/{id}", h.Complaint.Get)
			cr.Put("/complaints/{id}", h.Complaint.Update)

			cr.Post("/contacts", h.Contact.Create)
			cr.Get("/contacts", h.Contact.List)
			cr.Get("/contacts/{id}", h.Contact.Get)
			cr.Delete("/contacts/{id}", h.Contact.Delete)

			cr.Get("/bills", h.Bill.List)
			cr.Get("/bills/{id}", h.Bill.Get)
			cr.Put("/bills/{id}/pay", h.Bill.Pay)

			cr.Get("/profile", h.User.Profile)
		})

		api.Route("/admin", func(ar chi.Router) {
			ar.Use(authMiddleware.RequireAuth, authMiddleware.RequireRole(auth.RoleAdmin))

			ar.Get("/complaints", h.Complaint.List)
			ar.Get("/complaints/{id}", h.Complaint.Get)
			ar.Patch("/complaints/{id}", h.Complaint.ChangeStatus)

			ar.Get("/contacts", h.Contact.List)
			ar.Get("/contacts/{id}", h.Contact.Get)

			ar.Post("/bills", h.Bill.Create)
			ar.Get("/bills", h.Bill.List)
		})
	})

	return r
}
