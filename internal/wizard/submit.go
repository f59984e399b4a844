package wizard

import (
	"context"
	"fmt"

	"bitbucket.org/crgw/reservation-wizard/internal/schema"
	"bitbucket.org/crgw/reservation-wizard/internal/tools/client/backoffice"
	"bitbucket.org/crgw/reservation-wizard/internal/tools/converting"
	"bitbucket.org/crgw/reservation-wizard/internal/tools/slowlog"
	"bitbucket.org/crgw/reservation-wizard/internal/validation"
	"github.com/rs/zerolog"
)

const genericSubmitError = "The reservation could not be created. Please try again."

// Submitter turns a confirmed session into the backend create sequence:
// flight, agency (reused or created), reservation, passengers, hotel stays.
// Each step depends on the ids the previous one produced, so the chain runs
// sequentially and a failure aborts the remainder. Records created before
// the failure are not rolled back; the session keeps their ids and the
// operator retries from the confirmation step.
type Submitter struct {
	client *backoffice.Client
	logger *zerolog.Logger
}

func NewSubmitter(client *backoffice.Client, logger *zerolog.Logger) *Submitter {
	return &Submitter{
		client: client,
		logger: logger,
	}
}

// SubmissionResult is what a submission attempt leaves behind: the terminal
// outcome, the message shown on failure, the ids created so far, and the
// request history recorded along the way.
type SubmissionResult struct {
	Outcome Outcome                      `json:"outcome"`
	Message string                       `json:"message,omitempty"`
	History schema.BackendRequests       `json:"history"`
	Errors  schema.BackendResponseErrors `json:"errors,omitempty"`

	FlightID      int `json:"flightId,omitempty"`
	AgencyID      int `json:"agencyId,omitempty"`
	ReservationID int `json:"reservationId,omitempty"`
}

func joinPlace(city string, country string) string {
	if city == "" {
		return country
	}
	if country == "" {
		return city
	}

	return fmt.Sprintf("%s, %s", city, country)
}

func optionalDate(value string) *string {
	if value == "" {
		return nil
	}

	return converting.PointerToValue(value)
}

func (s *Submitter) Submit(ctx context.Context, session *Session) (result SubmissionResult) {
	bucket := schema.NewBackendRequestsBucket()
	errors := schema.NewErrorsBucket()
	client := s.client.WithBucket(&bucket)

	slow := slowlog.CreateLogger(s.logger)
	slow.Start("submission")
	defer slow.Stop("submission")

	result = SubmissionResult{Outcome: OutcomeSuccess}
	defer func() {
		result.History = *bucket.BackendRequests()
		result.Errors = *errors.Errors()
	}()

	fail := func(err *schema.BackendResponseError) SubmissionResult {
		result.Outcome = OutcomeError
		result.Message = genericSubmitError
		if err != nil {
			errors.AddError(*err)
			if err.Message != "" {
				result.Message = err.Message
			}
		}

		s.logger.Error().
			Str("sessionId", session.SessionID).
			Str("message", result.Message).
			Msg("submission aborted")

		return result
	}

	flight, err := client.CreateFlight(ctx, schema.FlightCreateInput{
		Airline:              session.Flight.Airline,
		Origin:               joinPlace(session.Flight.OriginCity, session.Flight.OriginCountry),
		Destination:          joinPlace(session.Flight.DestinationCity, session.Flight.DestinationCountry),
		DepartureDate:        session.Flight.DepartureDate,
		ArrivalDate:          session.Flight.ArrivalDate,
		ExceptionalDeparture: optionalDate(session.Flight.ExceptionalDeparture),
		ExceptionalArrival:   optionalDate(session.Flight.ExceptionalArrival),
	})
	if err != nil {
		return fail(err)
	}
	result.FlightID = flight.FlightID

	agencyID, err := s.resolveAgency(ctx, client, session)
	if err != nil {
		return fail(err)
	}
	result.AgencyID = agencyID

	totalCost, _ := validation.ParsePrice(session.Cost.Total)
	reservation, err := client.CreateReservation(ctx, schema.ReservationCreateInput{
		UserID:          session.User.UserID,
		FlightID:        flight.FlightID,
		PackageID:       session.Destination.PackageID,
		AgencyID:        agencyID,
		ReservationDate: validation.TodayString(),
		TotalCost:       schema.RoundedFloat(totalCost),
		Active:          true,
	})
	if err != nil {
		return fail(err)
	}
	result.ReservationID = reservation.ReservationID

	for _, passenger := range session.Passengers {
		err := client.CreatePassenger(ctx, schema.PassengerCreateInput{
			ReservationID: reservation.ReservationID,
			Name:          passenger.Name,
			Surname:       passenger.Surname,
			NationalID:    passenger.NationalID,
			BirthDate:     passenger.BirthDate,
			Passport:      passenger.Passport,
			Visa:          passenger.Visa,
		})
		if err != nil {
			return fail(err)
		}
	}

	for _, stay := range session.Destination.Stays {
		err := client.CreateHotelStay(ctx, schema.HotelStayCreateInput{
			ReservationID: reservation.ReservationID,
			HotelID:       stay.HotelID,
			CheckinDate:   stay.CheckinDate,
			CheckoutDate:  stay.CheckoutDate,
		})
		if err != nil {
			return fail(err)
		}
	}

	return result
}

// resolveAgency reuses the referenced agency when one was picked from the
// list, otherwise creates a new one from the entered fields.
func (s *Submitter) resolveAgency(ctx context.Context, client *backoffice.Client, session *Session) (int, *schema.BackendResponseError) {
	if session.Agent.AgencyID != nil {
		return *session.Agent.AgencyID, nil
	}

	agency, err := client.CreateAgency(ctx, schema.AgencyCreateInput{
		Name:  session.Agent.Name,
		Email: session.Agent.Email,
		Phone: session.Agent.Phone,
	})
	if err != nil {
		return 0, err
	}

	return agency.AgencyID, nil
}
