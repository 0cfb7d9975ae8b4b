package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("cinema-booking-api", otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/health", app.GetHealth)

	r.Get("/movies", app.ListMovies)
	r.Get("/movies/{title}", app.GetMovieDetails)
	r.Get("/movies/{title}/dates", app.ListShowDates)
	r.Get("/movies/{title}/times", app.ListShowTimes)
	r.Get("/movies/{title}/theatres", app.ListTheatres)

	r.Post("/users", app.RegisterUser)
	r.Post("/sessions", app.Login)
	r.Delete("/sessions", app.Logout)

	r.With(app.requireAuthentication).Route("/users/me/bookings", func(r chi.Router) {
		r.Get("/", app.ListUserBookings)
		r.Post("/", app.CreateBooking)
		r.Post("/{bookingId}/cancellation", app.CancelBooking)
	})

	r.With(app.requireAdmin).Route("/admin/movies", func(r chi.Router) {
		r.Post("/", app.AddMovie)
		r.Put("/{title}", app.UpdateMovie)
		r.Delete("/{title}", app.DeleteMovie)
	})

	return r
}
