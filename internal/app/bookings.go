package app

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dilaratetik/cinema-booking-system/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const defaultSeatRef = 1

// bookingExtraFee is the flat service fee added on top of the ticket total.
var bookingExtraFee = decimal.NewFromInt(5)

type CardRequest struct {
	Number string `json:"number" validate:"required"`
	Expiry string `json:"expiry" validate:"required"`
	CVV    string `json:"cvv" validate:"required"`
}

type CreateBookingRequest struct {
	MovieTitle  string      `json:"movie_title" validate:"required"`
	Date        string      `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string      `json:"time" validate:"required,datetime=15:04"`
	Theatre     string      `json:"theatre" validate:"required"`
	TicketCount int         `json:"ticket_count" validate:"required,gt=0"`
	Card        CardRequest `json:"card" validate:"required"`
}

type BookingResponse struct {
	BookingID    int    `json:"booking_id"`
	Reference    string `json:"reference"`
	MovieTitle   string `json:"movie_title"`
	TheatreName  string `json:"theatre_name"`
	ShowDateTime string `json:"show_date_time"`
	TicketCount  int    `json:"ticket_count"`
	TotalPrice   string `json:"total_price"`
	ExtraPrice   string `json:"extra_price"`
	Status       string `json:"status"`
}

type BookingSummaryResponse struct {
	BookingID    int    `json:"booking_id"`
	Reference    string `json:"reference"`
	MovieTitle   string `json:"movie_title"`
	TheatreName  string `json:"theatre_name"`
	ShowDateTime string `json:"show_date_time"`
	TicketCount  int    `json:"ticket_count"`
	TotalPrice   string `json:"total_price"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

type BookingListResponse struct {
	Bookings []BookingSummaryResponse `json:"bookings"`
	Metadata *domain.Metadata         `json:"metadata"`
}

// CreateBooking drives the whole booking funnel in one request: each of the
// caller's selections is replayed against what the catalog actually offers,
// so a stale or fabricated choice fails the same way it would have failed
// interactively. The seat decrement itself happens inside the repository
// transaction, which is what makes concurrent bookings safe.
func (app *application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	var req CreateBookingRequest

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

	funnel := domain.NewFunnel(req.MovieTitle)

	dates, err := app.showtimeRepo.GetDatesByMovie(r.Context(), req.MovieTitle)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = funnel.SelectDate(dates, req.Date)
	if err != nil {
		app.funnelSelectionResponse(w, r, err, "No show dates are available for this movie.")
		return
	}

	times, err := app.showtimeRepo.GetTimesByMovieAndDate(r.Context(), req.MovieTitle, req.Date)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = funnel.SelectTime(times, req.Time)
	if err != nil {
		app.funnelSelectionResponse(w, r, err, "No show times are available for the selected date.")
		return
	}

	theatres, err := app.showtimeRepo.GetTheatresByMovieAndShowtime(r.Context(), req.MovieTitle, req.Date, req.Time)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = funnel.SelectTheatre(theatres, req.Theatre)
	if err != nil {
		app.funnelSelectionResponse(w, r, err, "No theatres are available for the selected show.")
		return
	}

	err = funnel.SetTicketCount(req.TicketCount)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	// The lookup reuses the exact option strings the funnel validated, so a
	// selection the catalog offered cannot fail to resolve.
	showtime, err := app.showtimeRepo.GetByMovieAndShowtimeAndTheatre(r.Context(), req.MovieTitle, req.Date, req.Time, req.Theatre)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, errors.New("No matching show found for the selected criteria."))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = funnel.PassSeatCheck(showtime.AvailableSeats)
	if err != nil {
		var insufficientSeats domain.InsufficientSeatsError
		if errors.As(err, &insufficientSeats) {
			app.insufficientSeatsResponse(w, r, insufficientSeats.Available)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	user, err := app.userRepo.GetById(r.Context(), userId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	totalPrice := app.unitPrice.Mul(decimal.NewFromInt(int64(req.TicketCount)))
	chargeAmount := totalPrice.Add(bookingExtraFee)

	card := domain.Card{
		Number: req.Card.Number,
		Expiry: req.Card.Expiry,
		CVV:    req.Card.CVV,
	}

	description := fmt.Sprintf("%d ticket(s) for %s at %s", req.TicketCount, req.MovieTitle, req.Theatre)

	paymentRef, err := app.paymentProvider.Charge(r.Context(), card, chargeAmount, description)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCard):
			app.badRequestResponse(w, r, err)
		default:
			app.paymentFailedResponse(w, r, err)
		}

		return
	}

	booking := &domain.Booking{
		Reference:   uuid.NewString(),
		UserID:      userId,
		ShowtimeID:  showtime.ID,
		SeatRef:     defaultSeatRef,
		PaymentRef:  paymentRef,
		TotalPrice:  totalPrice,
		ExtraPrice:  bookingExtraFee,
		TicketCount: req.TicketCount,
		Status:      domain.BookingStatusConfirmed,
	}

	err = app.bookingRepo.Create(r.Context(), booking)
	if err != nil {
		// The card has already been charged at this point; record the payment
		// reference so the stranded charge can be reconciled and refunded.
		app.contextGetLogger(r).Error("booking commit failed after successful charge",
			"error", err,
			"payment_ref", paymentRef,
			"user_id", userId,
			"showtime_id", showtime.ID,
		)

		var insufficientSeats domain.InsufficientSeatsError

		switch {
		case errors.As(err, &insufficientSeats):
			app.insufficientSeatsResponse(w, r, insufficientSeats.Available)
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = funnel.Confirm()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sendBookingConfirmation(user, booking, funnel)

	resp := BookingResponse{
		BookingID:    booking.ID,
		Reference:    booking.Reference,
		MovieTitle:   req.MovieTitle,
		TheatreName:  req.Theatre,
		ShowDateTime: funnel.Date + " " + funnel.Time,
		TicketCount:  booking.TicketCount,
		TotalPrice:   booking.TotalPrice.StringFixed(2),
		ExtraPrice:   booking.ExtraPrice.StringFixed(2),
		Status:       string(booking.Status),
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// funnelSelectionResponse maps the two recoverable funnel selection failures:
// an empty option list means the branch of the catalog the caller asked for
// does not exist, while a choice outside the offered list is the caller's
// mistake.
func (app *application) funnelSelectionResponse(w http.ResponseWriter, r *http.Request, err error, noOptionsMessage string) {
	switch {
	case errors.Is(err, domain.ErrNoOptions):
		app.notFoundResponseWithErr(w, r, errors.New(noOptionsMessage))
	case errors.Is(err, domain.ErrOptionNotOffered):
		app.badRequestResponse(w, r, err)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) sendBookingConfirmation(user *domain.User, booking *domain.Booking, funnel *domain.Funnel) {
	logger := app.logger

	go func() {
		defer func() {
			if err := recover(); err != nil {
				logger.Error(fmt.Sprintf("%v", err))
			}
		}()

		data := map[string]any{
			"name":         user.Name,
			"reference":    booking.Reference,
			"movieTitle":   funnel.MovieTitle,
			"theatreName":  funnel.Theatre,
			"showDateTime": funnel.Date + " " + funnel.Time,
			"ticketCount":  booking.TicketCount,
			"totalPrice":   booking.TotalPrice.Add(booking.ExtraPrice).StringFixed(2),
		}

		err := app.mailer.Send(user.Email, "booking_confirmation.tmpl", data)
		if err != nil {
			logger.Error("failed to send booking confirmation", "error", err, "booking_id", booking.ID)
		}
	}()
}

func (app *application) ListUserBookings(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	pagination := domain.Pagination{
		Page:     app.readQueryInt(r, "page", 1),
		PageSize: app.readQueryInt(r, "page_size", 10),
	}

	err := app.validator.Struct(pagination)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	summaries, metadata, err := app.bookingRepo.GetSummariesByUser(r.Context(), userId, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	bookings := make([]BookingSummaryResponse, len(summaries))
	for i, summary := range summaries {
		bookings[i] = BookingSummaryResponse{
			BookingID:    summary.BookingID,
			Reference:    summary.Reference,
			MovieTitle:   summary.MovieTitle,
			TheatreName:  summary.TheatreName,
			ShowDateTime: summary.StartTime.Format("2006-01-02 15:04"),
			TicketCount:  summary.TicketCount,
			TotalPrice:   summary.TotalPrice.StringFixed(2),
			Status:       string(summary.Status),
			CreatedAt:    summary.CreatedAt.Format("2006-01-02 15:04"),
		}
	}

	resp := BookingListResponse{Bookings: bookings, Metadata: metadata}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) CancelBooking(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	bookingId, err := strconv.Atoi(chi.URLParam(r, "bookingId"))
	if err != nil || bookingId < 1 {
		app.notFoundResponse(w, r)
		return
	}

	err = app.bookingRepo.Cancel(r.Context(), bookingId, userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrAlreadyCancelled):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
