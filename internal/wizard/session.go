package wizard

import (
	"bitbucket.org/crgw/reservation-wizard/internal/schema"
	"github.com/google/uuid"
)

// Outcome is the terminal result of a submission attempt.
type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomeSuccess Outcome = "success"
	OutcomeError   Outcome = "error"
)

// Session is one wizard run. It is created when the console opens the
// wizard, mutated step by step, and either discarded on cancel or converted
// into the create-request sequence on final confirmation.
type Session struct {
	SessionID string            `json:"sessionId"`
	User      schema.ActingUser `json:"user"`
	Step      schema.Step       `json:"step"`

	Destination schema.DestinationSelection `json:"destination"`
	Agent       schema.AgentSelection       `json:"agent"`
	Passengers  []schema.Passenger          `json:"passengers"`
	Flight      schema.FlightDetails        `json:"flight"`
	Cost        schema.ConfirmationCost     `json:"cost"`

	// LookupGeneration increases on every destination-affecting edit; a
	// lookup response fetched under an older generation is discarded instead
	// of clobbering a newer selection.
	LookupGeneration uint64 `json:"lookupGeneration"`

	Submitting bool    `json:"submitting"`
	Outcome    Outcome `json:"outcome,omitempty"`

	// Ids created by the last submission attempt. Kept even on failure:
	// earlier creates of an aborted sequence are not rolled back.
	CreatedFlightID      int `json:"createdFlightId,omitempty"`
	CreatedAgencyID      int `json:"createdAgencyId,omitempty"`
	CreatedReservationID int `json:"createdReservationId,omitempty"`
}

// NewSession starts a wizard on the destination step with the one passenger
// the reservation must at least carry.
func NewSession(user schema.ActingUser) *Session {
	return &Session{
		SessionID:  uuid.New().String(),
		User:       user,
		Step:       schema.StepDestination,
		Passengers: []schema.Passenger{{}},
		Destination: schema.DestinationSelection{
			Stays: []schema.HotelStayEntry{},
		},
	}
}

// packageHotel resolves a hotel id against the selected package.
func (s *Session) packageHotel(hotelID int) (schema.PackageHotel, bool) {
	for _, hotel := range s.Destination.Hotels {
		if hotel.HotelID == hotelID {
			return hotel, true
		}
	}

	return schema.PackageHotel{}, false
}

// staysHotelTotal sums the prices of every hotel booked by a stay entry.
func (s *Session) staysHotelTotal() float64 {
	total := 0.0
	for _, stay := range s.Destination.Stays {
		if hotel, ok := s.packageHotel(stay.HotelID); ok {
			total += hotel.Price
		}
	}

	return total
}
