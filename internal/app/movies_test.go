package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dilaratetik/cinema-booking-system/internal/domain"
	"github.com/dilaratetik/cinema-booking-system/internal/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"
)

func withTitleParam(r *http.Request, title string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("title", title)

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListMovies(t *testing.T) {
	tests := []struct {
		name         string
		getAllFunc   func(context.Context) ([]*domain.Movie, error)
		wantStatus   int
		wantResponse *MovieListResponse
	}{
		{
			name: "successful listing",
			getAllFunc: func(ctx context.Context) ([]*domain.Movie, error) {
				return []*domain.Movie{
					{
						Title:       "Dune",
						Genre:       "Sci-Fi",
						Duration:    155,
						ReleaseDate: time.Date(2021, 10, 22, 0, 0, 0, 0, time.UTC),
					},
					{
						Title:       "Heat",
						Genre:       "Crime",
						Duration:    170,
						ReleaseDate: time.Date(1995, 12, 15, 0, 0, 0, 0, time.UTC),
					},
				}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &MovieListResponse{
				Movies: []MovieSummary{
					{Title: "Dune", Duration: 155, Genre: "Sci-Fi", ReleaseDate: "2021-10-22"},
					{Title: "Heat", Duration: 170, Genre: "Crime", ReleaseDate: "1995-12-15"},
				},
			},
		},
		{
			name: "database error yields empty catalog",
			getAllFunc: func(ctx context.Context) ([]*domain.Movie, error) {
				return nil, fmt.Errorf("database error")
			},
			wantStatus:   http.StatusOK,
			wantResponse: &MovieListResponse{Movies: []MovieSummary{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *application) {
				a.movieRepo = &mocks.MockMovieRepo{GetAllFunc: tt.getAllFunc}
			})

			w, r := executeRequest(t, http.MethodGet, "/movies", nil)

			app.ListMovies(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", w.Code, tt.wantStatus)
			}

			var response MovieListResponse
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}

			if diff := cmp.Diff(tt.wantResponse, &response); diff != "" {
				t.Errorf("Mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetMovieDetails(t *testing.T) {
	tests := []struct {
		name           string
		getByTitleFunc func(context.Context, string) (*domain.Movie, error)
		wantStatus     int
		wantErrMessage string
		wantResponse   *MovieDetailResponse
	}{
		{
			name: "successful retrieval",
			getByTitleFunc: func(ctx context.Context, title string) (*domain.Movie, error) {
				return &domain.Movie{
					Title:       "Dune",
					Genre:       "Sci-Fi",
					Duration:    155,
					Director:    "Denis Villeneuve",
					Actors:      "Timothee Chalamet, Rebecca Ferguson",
					ReleaseDate: time.Date(2021, 10, 22, 0, 0, 0, 0, time.UTC),
				}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &MovieDetailResponse{
				Title:       "Dune",
				Genre:       "Sci-Fi",
				Duration:    155,
				Director:    "Denis Villeneuve",
				Actors:      "Timothee Chalamet, Rebecca Ferguson",
				ReleaseDate: "2021-10-22",
			},
		},
		{
			name: "movie not found",
			getByTitleFunc: func(ctx context.Context, title string) (*domain.Movie, error) {
				return nil, domain.ErrRecordNotFound
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: ErrNotFound,
		},
		{
			name: "database error",
			getByTitleFunc: func(ctx context.Context, title string) (*domain.Movie, error) {
				return nil, fmt.Errorf("database error")
			},
			wantStatus:     http.StatusInternalServerError,
			wantErrMessage: ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *application) {
				a.movieRepo = &mocks.MockMovieRepo{GetByTitleFunc: tt.getByTitleFunc}
			})

			w, r := executeRequest(t, http.MethodGet, "/movies/Dune", nil)
			r = withTitleParam(r, "Dune")

			app.GetMovieDetails(w, r)

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

func TestListShowDates(t *testing.T) {
	tests := []struct {
		name                string
		getDatesByMovieFunc func(context.Context, string) ([]string, error)
		wantDates           []string
	}{
		{
			name: "successful listing",
			getDatesByMovieFunc: func(ctx context.Context, movieTitle string) ([]string, error) {
				return []string{"2026-09-01", "2026-09-02"}, nil
			},
			wantDates: []string{"2026-09-01", "2026-09-02"},
		},
		{
			name: "database error yields empty dates",
			getDatesByMovieFunc: func(ctx context.Context, movieTitle string) ([]string, error) {
				return nil, fmt.Errorf("database error")
			},
			wantDates: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *application) {
				a.showtimeRepo = &mocks.MockShowtimeRepo{GetDatesByMovieFunc: tt.getDatesByMovieFunc}
			})

			w, r := executeRequest(t, http.MethodGet, "/movies/Dune/dates", nil)
			r = withTitleParam(r, "Dune")

			app.ListShowDates(w, r)

			if w.Code != http.StatusOK {
				t.Errorf("Status = %d, want %d", w.Code, http.StatusOK)
			}

			var response ShowDatesResponse
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}

			want := ShowDatesResponse{Title: "Dune", Dates: tt.wantDates}
			if diff := cmp.Diff(want, response); diff != "" {
				t.Errorf("Mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestListShowTimes(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		timesFunc      func(context.Context, string, string) ([]string, error)
		wantStatus     int
		wantErrMessage string
		wantResponse   *ShowTimesResponse
	}{
		{
			name: "successful listing",
			url:  "/movies/Dune/times?date=2026-09-01",
			timesFunc: func(ctx context.Context, movieTitle, date string) ([]string, error) {
				return []string{"18:00", "21:30"}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &ShowTimesResponse{
				Title: "Dune",
				Date:  "2026-09-01",
				Times: []string{"18:00", "21:30"},
			},
		},
		{
			name:           "missing date parameter",
			url:            "/movies/Dune/times",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "date must match the format 2006-01-02",
		},
		{
			name:           "malformed date parameter",
			url:            "/movies/Dune/times?date=01-09-2026",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "date must match the format 2006-01-02",
		},
		{
			name: "database error yields empty times",
			url:  "/movies/Dune/times?date=2026-09-01",
			timesFunc: func(ctx context.Context, movieTitle, date string) ([]string, error) {
				return nil, fmt.Errorf("database error")
			},
			wantStatus: http.StatusOK,
			wantResponse: &ShowTimesResponse{
				Title: "Dune",
				Date:  "2026-09-01",
				Times: []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *application) {
				a.showtimeRepo = &mocks.MockShowtimeRepo{GetTimesByMovieAndDateFunc: tt.timesFunc}
			})

			w, r := executeRequest(t, http.MethodGet, tt.url, nil)
			r = withTitleParam(r, "Dune")

			app.ListShowTimes(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", w.Code, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				var response ShowTimesResponse
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

func TestListTheatres(t *testing.T) {
	tests := []struct {
		name           string
		url            string
		theatresFunc   func(context.Context, string, string, string) ([]string, error)
		wantStatus     int
		wantErrMessage string
		wantResponse   *TheatresResponse
	}{
		{
			name: "successful listing",
			url:  "/movies/Dune/theatres?date=2026-09-01&time=21:30",
			theatresFunc: func(ctx context.Context, movieTitle, date, showTime string) ([]string, error) {
				return []string{"Screen 1", "Screen 3"}, nil
			},
			wantStatus: http.StatusOK,
			wantResponse: &TheatresResponse{
				Title:    "Dune",
				Date:     "2026-09-01",
				Time:     "21:30",
				Theatres: []string{"Screen 1", "Screen 3"},
			},
		},
		{
			name:           "missing time parameter",
			url:            "/movies/Dune/theatres?date=2026-09-01",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "time must match the format 15:04",
		},
		{
			name:           "malformed date parameter",
			url:            "/movies/Dune/theatres?date=bogus&time=21:30",
			wantStatus:     http.StatusBadRequest,
			wantErrMessage: "date must match the format 2006-01-02",
		},
		{
			name: "database error yields empty theatres",
			url:  "/movies/Dune/theatres?date=2026-09-01&time=21:30",
			theatresFunc: func(ctx context.Context, movieTitle, date, showTime string) ([]string, error) {
				return nil, fmt.Errorf("database error")
			},
			wantStatus: http.StatusOK,
			wantResponse: &TheatresResponse{
				Title:    "Dune",
				Date:     "2026-09-01",
				Time:     "21:30",
				Theatres: []string{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApplication(func(a *application) {
				a.showtimeRepo = &mocks.MockShowtimeRepo{GetTheatresByMovieAndShowtimeFunc: tt.theatresFunc}
			})

			w, r := executeRequest(t, http.MethodGet, tt.url, nil)
			r = withTitleParam(r, "Dune")

			app.ListTheatres(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", w.Code, tt.wantStatus)
			}

			if tt.wantResponse != nil {
				var response TheatresResponse
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
