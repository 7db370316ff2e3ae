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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)
		r.Get("/loggedin", h.loggedIn)
		r.Post("/forgotpassword", h.forgotPassword)
		r.Put("/resetpassword/{resetToken}", h.resetPassword)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/getuser", h.getUser)
		r.Patch("/updateuser", h.updateUser)
		r.Patch("/changepassword", h.changePassword)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
