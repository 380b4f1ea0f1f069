package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without the auth middleware; signup gates itself on the
	// caller's admin token
	router.Group(func(r chi.Router) {
		r.Post("/api/users/signup", h.signUp)
		r.Post("/api/users/signin", h.signIn)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/profile", h.profile)
		r.Put("/api/users/profile", h.updateProfile)
		r.Get("/api/users/", h.listUsers)
		r.Delete("/api/users/{id}", h.deleteUser)

		r.Post("/api/movein/", h.createMoveIn)
		r.Get("/api/movein/", h.listMoveIns)
		r.Get("/api/movein/{id}", h.getMoveIn)
		r.Put("/api/movein/{id}", h.updateMoveIn)
		r.Delete("/api/movein/{id}", h.deleteMoveIn)
		r.Put("/api/movein/approval/{id}", h.approveMoveIn)
	})

	return router
}
