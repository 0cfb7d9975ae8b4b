package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/dilaratetik/cinema-booking-system/internal/domain"
	"github.com/dilaratetik/cinema-booking-system/internal/mocks"
	"github.com/google/go-cmp/cmp"
)

func validMovieRequest() MovieRequest {
	return MovieRequest{
		Title:       "Dune",
		Genre:       "Sci-Fi",
		Duration:    155,
		Director:    "Denis Villeneuve",
		Actors:      "Timothee Chalamet, Rebecca Ferguson",
		Rating:      8.5,
		ReleaseDate: "2021-10-22",
	}
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name               string
		configuredPassword string
		providedPassword   string
		wantStatus         int
	}{
		{
			name:               "correct password",
			configuredPassword: "hunter2",
			providedPassword:   "hunter2",
			wantStatus:         http.StatusOK,
		},
		{
			name:               "wrong password",
			configuredPassword: "hunter2",
			providedPassword:   "hunter3",
			wantStatus:         http.StatusUnauthorized,
		},
		{
			name:               "missing password header",
			configuredPassword: "hunter2",
			wantStatus:         http.StatusUnauthorized,
		},
		{
			name:             "admin endpoints disabled when no password configured",
			providedPassword: "",
			wantStatus:       http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *application) {
				a.config.admin.password = tt.configuredPassword
			})

			w, r := executeRequest(t, http.MethodPost, "/admin/movies", nil)
			if tt.providedPassword != "" {
				r.Header.Set("X-Admin-Password", tt.providedPassword)
			}

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			app.requireAdmin(next).ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestAddMovie(t *testing.T) {
	tests := []struct {
		name           string
		request        MovieRequest
		createFunc     func(context.Context, *domain.Movie) error
		wantStatus     int
		wantErrMessage string
		wantResponse   *MovieDetailResponse
	}{
		{
			name:    "successful creation",
			request: validMovieRequest(),
			createFunc: func(ctx context.Context, movie *domain.Movie) error {
				movie.ID = 1
				return nil
			},
			wantStatus: http.StatusCreated,
			wantResponse: &MovieDetailResponse{
				Title:       "Dune",
				Genre:       "Sci-Fi",
				Duration:    155,
				Director:    "Denis Villeneuve",
				Actors:      "Timothee Chalamet, Rebecca Ferguson",
				Rating:      8.5,
				ReleaseDate: "2021-10-22",
			},
		},
		{
			name: "duplicate title",
			request: func() MovieRequest {
				return validMovieRequest()
			}(),
			createFunc: func(ctx context.Context, movie *domain.Movie) error {
				return domain.ErrMovieAlreadyExists
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: domain.ErrMovieAlreadyExists.Error(),
		},
		{
			name: "invalid duration",
			request: func() MovieRequest {
				req := validMovieRequest()
				req.Duration = 0
				return req
			}(),
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "is required",
		},
		{
			name: "rating out of range",
			request: func() MovieRequest {
				req := validMovieRequest()
				req.Rating = 11
				return req
			}(),
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must be at most 10",
		},
		{
			name: "malformed release date",
			request: func() MovieRequest {
				req := validMovieRequest()
				req.ReleaseDate = "22-10-2021"
				return req
			}(),
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must match the format 2006-01-02",
		},
		{
			name:    "database error",
			request: validMovieRequest(),
			createFunc: func(ctx context.Context, movie *domain.Movie) error {
				return fmt.Errorf("database error")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *application) {
				a.movieRepo = &mocks.MockMovieRepo{CreateFunc: tt.createFunc}
			})

			w, r := executeRequest(t, http.MethodPost, "/admin/movies", tt.request)

			app.AddMovie(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", w.Code, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				var response MovieDetailResponse
				if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}

				if diff := cmp.Diff(tt.wantResponse, &response); diff != "" {
					t.Errorf("Mismatch (-want +got):\n%s", diff)
				}
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{tt.wantStatus, tt.wantErrMessage})
		})
	}
}

func TestUpdateMovie(t *testing.T) {
	tests := []struct {
		name           string
		updateFunc     func(context.Context, string, *domain.Movie) error
		wantStatus     int
		wantErrMessage string
	}{
		{
			name: "successful update",
			updateFunc: func(ctx context.Context, title string, movie *domain.Movie) error {
				return nil
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "movie not found",
			updateFunc: func(ctx context.Context, title string, movie *domain.Movie) error {
				return domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name: "new title collides with another movie",
			updateFunc: func(ctx context.Context, title string, movie *domain.Movie) error {
				return domain.ErrMovieAlreadyExists
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: domain.ErrMovieAlreadyExists.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *application) {
				a.movieRepo = &mocks.MockMovieRepo{UpdateFunc: tt.updateFunc}
			})

			w, r := executeRequest(t, http.MethodPut, "/admin/movies/Dune", validMovieRequest())
			r = withTitleParam(r, "Dune")

			app.UpdateMovie(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", w.Code, tt.wantStatus)
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{tt.wantStatus, tt.wantErrMessage})
		})
	}
}

func TestDeleteMovie(t *testing.T) {
	tests := []struct {
		name           string
		deleteFunc     func(context.Context, string) error
		wantStatus     int
		wantErrMessage string
	}{
		{
			name: "successful deletion",
			deleteFunc: func(ctx context.Context, title string) error {
				return nil
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "movie not found",
			deleteFunc: func(ctx context.Context, title string) error {
				return domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name: "movie still referenced by showtimes",
			deleteFunc: func(ctx context.Context, title string) error {
				return domain.ErrEditConflict
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: ErrEditConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *application) {
				a.movieRepo = &mocks.MockMovieRepo{DeleteFunc: tt.deleteFunc}
			})

			w, r := executeRequest(t, http.MethodDelete, "/admin/movies/Dune", nil)
			r = withTitleParam(r, "Dune")

			app.DeleteMovie(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", w.Code, tt.wantStatus)
			}

			checkErrorResponse(t, w, struct {
				wantStatus     int
				wantErrMessage string
			}{tt.wantStatus, tt.wantErrMessage})
		})
	}
}
