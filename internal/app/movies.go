package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dilaratetik/cinema-booking-system/internal/domain"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type MovieSummary struct {
	Title       string `json:"title"`
	Duration    int    `json:"duration"`
	Genre       string `json:"genre"`
	ReleaseDate string `json:"release_date"`
}

type MovieListResponse struct {
	Movies []MovieSummary `json:"movies"`
}

type MovieDetailResponse struct {
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	Duration    int     `json:"duration"`
	Director    string  `json:"director"`
	Actors      string  `json:"actors"`
	Rating      float64 `json:"rating"`
	ReleaseDate string  `json:"release_date"`
}

type ShowDatesResponse struct {
	Title string   `json:"title"`
	Dates []string `json:"dates"`
}

type ShowTimesResponse struct {
	Title string   `json:"title"`
	Date  string   `json:"date"`
	Times []string `json:"times"`
}

type TheatresResponse struct {
	Title    string   `json:"title"`
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	Theatres []string `json:"theatres"`
}

// ListMovies returns the movie catalog. A query failure is reported in the
// logs but never to the caller; the client just sees an empty list.
func (app *application) ListMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := app.movieRepo.GetAll(r.Context())
	if err != nil {
		app.logError(r, err)
		movies = nil
	}

	summaries := make([]MovieSummary, len(movies))
	for i, movie := range movies {
		summaries[i] = MovieSummary{
			Title:       movie.Title,
			Duration:    movie.Duration,
			Genre:       movie.Genre,
			ReleaseDate: movie.ReleaseDate.Format(dateLayout),
		}
	}

	err = app.writeJSON(w, http.StatusOK, MovieListResponse{Movies: summaries}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetMovieDetails(w http.ResponseWriter, r *http.Request) {
	title := app.readTitleParam(r)

	movie, err := app.movieRepo.GetByTitle(r.Context(), title)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := MovieDetailResponse{
		Title:       movie.Title,
		Genre:       movie.Genre,
		Duration:    movie.Duration,
		Director:    movie.Director,
		Actors:      movie.Actors,
		Rating:      movie.RatingValue(),
		ReleaseDate: movie.ReleaseDate.Format(dateLayout),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) ListShowDates(w http.ResponseWriter, r *http.Request) {
	title := app.readTitleParam(r)

	dates, err := app.showtimeRepo.GetDatesByMovie(r.Context(), title)
	if err != nil {
		app.logError(r, err)
		dates = []string{}
	}

	err = app.writeJSON(w, http.StatusOK, ShowDatesResponse{Title: title, Dates: dates}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) ListShowTimes(w http.ResponseWriter, r *http.Request) {
	title := app.readTitleParam(r)

	date := app.readQueryString(r, "date")
	if _, err := time.Parse(dateLayout, date); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("date must match the format %s", dateLayout))
		return
	}

	times, err := app.showtimeRepo.GetTimesByMovieAndDate(r.Context(), title, date)
	if err != nil {
		app.logError(r, err)
		times = []string{}
	}

	resp := ShowTimesResponse{Title: title, Date: date, Times: times}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) ListTheatres(w http.ResponseWriter, r *http.Request) {
	title := app.readTitleParam(r)

	date := app.readQueryString(r, "date")
	if _, err := time.Parse(dateLayout, date); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("date must match the format %s", dateLayout))
		return
	}

	showTime := app.readQueryString(r, "time")
	if _, err := time.Parse(timeLayout, showTime); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("time must match the format %s", timeLayout))
		return
	}

	theatres, err := app.showtimeRepo.GetTheatresByMovieAndShowtime(r.Context(), title, date, showTime)
	if err != nil {
		app.logError(r, err)
		theatres = []string{}
	}

	resp := TheatresResponse{Title: title, Date: date, Time: showTime, Theatres: theatres}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
