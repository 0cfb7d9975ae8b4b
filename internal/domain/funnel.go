package domain

import (
	"errors"
	"fmt"
	"slices"
)

// FunnelStep identifies a stage of the booking funnel. Steps only ever move
// forward; a funnel that cannot advance stays where it is.
type FunnelStep int

const (
	StepSelectingDate FunnelStep = iota
	StepSelectingTime
	StepSelectingTheatre
	StepEnteringTicketCount
	StepSeatCheck
	StepPayment
	StepConfirmed
	StepCancelled
)

func (s FunnelStep) String() string {
	switch s {
	case StepSelectingDate:
		return "selecting_date"
	case StepSelectingTime:
		return "selecting_time"
	case StepSelectingTheatre:
		return "selecting_theatre"
	case StepEnteringTicketCount:
		return "entering_ticket_count"
	case StepSeatCheck:
		return "seat_check"
	case StepPayment:
		return "payment"
	case StepConfirmed:
		return "confirmed"
	case StepCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

var (
	// ErrNoOptions means the catalog produced nothing to choose from at the
	// current step. The condition is recoverable: the funnel halts where it
	// is instead of transitioning.
	ErrNoOptions          = errors.New("no options available for this step")
	ErrOptionNotOffered   = errors.New("selected option is not offered")
	ErrWrongStep          = errors.New("operation is not valid in the current funnel step")
	ErrInvalidTicketCount = errors.New("ticket count must be greater than zero")
)

// Funnel is the booking selection state machine: date, time and theatre are
// chosen in order, each gated on a non-empty option list, followed by the
// ticket count, the seat check and payment. It holds no reference to any
// rendering or persistence concern, so the whole sequence is testable in
// isolation.
type Funnel struct {
	step FunnelStep

	MovieTitle  string
	Date        string
	Time        string
	Theatre     string
	TicketCount int
}

func NewFunnel(movieTitle string) *Funnel {
	return &Funnel{
		step:       StepSelectingDate,
		MovieTitle: movieTitle,
	}
}

func (f *Funnel) Step() FunnelStep {
	return f.step
}

func (f *Funnel) SelectDate(offered []string, date string) error {
	if f.step != StepSelectingDate {
		return ErrWrongStep
	}

	if err := pick(offered, date); err != nil {
		return err
	}

	f.Date = date
	f.step = StepSelectingTime

	return nil
}

func (f *Funnel) SelectTime(offered []string, showTime string) error {
	if f.step != StepSelectingTime {
		return ErrWrongStep
	}

	if err := pick(offered, showTime); err != nil {
		return err
	}

	f.Time = showTime
	f.step = StepSelectingTheatre

	return nil
}

func (f *Funnel) SelectTheatre(offered []string, theatre string) error {
	if f.step != StepSelectingTheatre {
		return ErrWrongStep
	}

	if err := pick(offered, theatre); err != nil {
		return err
	}

	f.Theatre = theatre
	f.step = StepEnteringTicketCount

	return nil
}

func (f *Funnel) SetTicketCount(count int) error {
	if f.step != StepEnteringTicketCount {
		return ErrWrongStep
	}

	if count <= 0 {
		return ErrInvalidTicketCount
	}

	f.TicketCount = count
	f.step = StepSeatCheck

	return nil
}

// PassSeatCheck compares the requested ticket count against the seats still
// available. The check itself mutates nothing; the actual decrement happens
// in the commit that follows payment.
func (f *Funnel) PassSeatCheck(available int) error {
	if f.step != StepSeatCheck {
		return ErrWrongStep
	}

	if f.TicketCount > available {
		return InsufficientSeatsError{Available: available}
	}

	f.step = StepPayment

	return nil
}

func (f *Funnel) Confirm() error {
	if f.step != StepPayment {
		return ErrWrongStep
	}

	f.step = StepConfirmed

	return nil
}

func (f *Funnel) Cancel() error {
	if f.step != StepConfirmed {
		return ErrWrongStep
	}

	f.step = StepCancelled

	return nil
}

func pick(offered []string, choice string) error {
	if len(offered) == 0 {
		return ErrNoOptions
	}

	if !slices.Contains(offered, choice) {
		return ErrOptionNotOffered
	}

	return nil
}
