package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(cardHandler *CardHandler, feedbackHandler *FeedbackHandler, reviewHandler *ReviewHandler, jwtSecret []byte) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(AuthMiddleware(jwtSecret))

		r.Route("/cards", func(r chi.Router) {
			r.Post("/", cardHandler.CreateCard)
			r.Get("/", cardHandler.ListCards)
			r.Get("/{id}", cardHandler.GetCard)
			r.Get("/{id}/metrics", feedbackHandler.GetMetrics)
			r.Post("/{id}/feedback", feedbackHandler.RecordFeedback)
			r.Get("/{id}/feedback", feedbackHandler.ListFeedback)
		})

		r.Route("/review", func(r chi.Router) {
			r.Get("/", reviewHandler.Current)
			r.Post("/pointer", reviewHandler.PointerEvent)
			r.Post("/approve", reviewHandler.Approve)
			r.Post("/reject", reviewHandler.Reject)
			r.Post("/comment", reviewHandler.SubmitComment)
			r.Delete("/comment", reviewHandler.CancelComment)
			r.Post("/reset", reviewHandler.ResetSession)
		})
	})

	return r
}
