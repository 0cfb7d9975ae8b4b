package app

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dilaratetik/cinema-booking-system/internal/domain"
	"github.com/jackc/pgx/v5/pgtype"
)

type MovieRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Genre       string  `json:"genre" validate:"required,max=100"`
	Duration    int     `json:"duration" validate:"required,gt=0"`
	Director    string  `json:"director" validate:"max=100"`
	Actors      string  `json:"actors" validate:"max=500"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=10"`
	ReleaseDate string  `json:"release_date" validate:"required,datetime=2006-01-02"`
}

func (req MovieRequest) toDomain() (*domain.Movie, error) {
	releaseDate, err := time.Parse(dateLayout, req.ReleaseDate)
	if err != nil {
		return nil, err
	}

	var rating pgtype.Numeric

	err = rating.Scan(strconv.FormatFloat(req.Rating, 'f', 1, 64))
	if err != nil {
		return nil, err
	}

	return &domain.Movie{
		Title:       req.Title,
		Genre:       req.Genre,
		Duration:    req.Duration,
		Director:    req.Director,
		Actors:      req.Actors,
		Rating:      rating,
		ReleaseDate: releaseDate,
	}, nil
}

func (app *application) AddMovie(w http.ResponseWriter, r *http.Request) {
	var req MovieRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie, err := req.toDomain()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.movieRepo.Create(r.Context(), movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMovieAlreadyExists):
			app.conflictResponse(w, r, err)
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
		Rating:      req.Rating,
		ReleaseDate: req.ReleaseDate,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	title := app.readTitleParam(r)

	var req MovieRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie, err := req.toDomain()
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.movieRepo.Update(r.Context(), title, movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrMovieAlreadyExists):
			app.conflictResponse(w, r, err)
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
		Rating:      req.Rating,
		ReleaseDate: req.ReleaseDate,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	title := app.readTitleParam(r)

	err := app.movieRepo.Delete(r.Context(), title)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrEditConflict):
			app.editConflictResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
