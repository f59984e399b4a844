package wizard

import (
	"fmt"

	"bitbucket.org/crgw/reservation-wizard/internal/schema"
	"bitbucket.org/crgw/reservation-wizard/internal/validation"
)

// StepValidity is the computed gate for one step plus the live field-level
// messages the console shows under the inputs. Field errors are recomputed
// on every state read; the gate is simply "no field errors and everything
// required is present".
type StepValidity struct {
	Step        string            `json:"step"`
	Valid       bool              `json:"valid"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

// Validity computes the gates for all five steps.
func (s *Session) Validity() []StepValidity {
	return []StepValidity{
		s.destinationValidity(),
		s.agentValidity(),
		s.passengersValidity(),
		s.flightValidity(),
		s.confirmationValidity(),
	}
}

// StepValid reports whether a single step's gate is satisfied.
func (s *Session) StepValid(step schema.Step) bool {
	switch step {
	case schema.StepDestination:
		return s.destinationValidity().Valid
	case schema.StepAgent:
		return s.agentValidity().Valid
	case schema.StepPassengers:
		return s.passengersValidity().Valid
	case schema.StepFlight:
		return s.flightValidity().Valid
	case schema.StepConfirmation:
		return s.confirmationValidity().Valid
	}

	return false
}

func newValidity(step schema.Step) StepValidity {
	return StepValidity{
		Step:        step.String(),
		Valid:       true,
		FieldErrors: map[string]string{},
	}
}

func (v *StepValidity) fail(field string, message string) {
	if _, taken := v.FieldErrors[field]; !taken {
		v.FieldErrors[field] = message
	}

	v.Valid = false
}

func (s *Session) destinationValidity() StepValidity {
	validity := newValidity(schema.StepDestination)

	if s.Destination.CountryID == 0 {
		validity.fail("country", "A country must be selected")
	}

	if s.Destination.CityID == 0 {
		validity.fail("city", "A city must be selected")
	}

	if s.Destination.PackageID == 0 {
		validity.fail("package", "A package must be selected")
	}

	for i, stay := range s.Destination.Stays {
		result := validation.ValidateHotelStayDates(
			stay.CheckinDate,
			stay.CheckoutDate,
			s.Destination.WindowStart,
			s.Destination.WindowEnd,
		)

		if !result.Valid {
			validity.fail(fmt.Sprintf("stays[%d].%s", i, result.Field), result.Error)
		}
	}

	return validity
}

func (s *Session) agentValidity() StepValidity {
	validity := newValidity(schema.StepAgent)

	if !validation.HasMinLength(s.Agent.Name, validation.MinTextLength) {
		validity.fail("name", "Agency name is too short")
	}

	if !validation.IsValidEmail(s.Agent.Email) {
		validity.fail("email", "Email address is not valid")
	}

	if !validation.IsValidPhone(s.Agent.Phone) {
		validity.fail("phone", "Phone number is not valid")
	}

	return validity
}

func (s *Session) passengersValidity() StepValidity {
	validity := newValidity(schema.StepPassengers)

	if len(s.Passengers) == 0 {
		validity.fail("passengers", "At least one passenger is required")
	}

	for i, passenger := range s.Passengers {
		if !validation.HasMinLength(passenger.Name, validation.MinTextLength) {
			validity.fail(fmt.Sprintf("passengers[%d].name", i), "Name is too short")
		}

		if !validation.HasMinLength(passenger.Surname, validation.MinTextLength) {
			validity.fail(fmt.Sprintf("passengers[%d].surname", i), "Surname is too short")
		}

		if !validation.IsValidNationalID(passenger.NationalID) {
			validity.fail(fmt.Sprintf("passengers[%d].nationalId", i), "National id is not valid")
		}

		if result := validation.ValidateBirthDate(passenger.BirthDate); !result.Valid {
			validity.fail(fmt.Sprintf("passengers[%d].birthDate", i), result.Error)
		}
	}

	return validity
}

func (s *Session) flightValidity() StepValidity {
	validity := newValidity(schema.StepFlight)

	if !validation.HasMinLength(s.Flight.Airline, validation.MinTextLength) {
		validity.fail("airline", "Airline is too short")
	}

	if !validation.HasMinLength(s.Flight.OriginCountry, validation.MinTextLength) {
		validity.fail("originCountry", "Origin country is too short")
	}

	if !validation.HasMinLength(s.Flight.OriginCity, validation.MinTextLength) {
		validity.fail("originCity", "Origin city is too short")
	}

	result := validation.ValidateFlightDates(
		s.Flight.DepartureDate,
		s.Flight.ArrivalDate,
		s.Destination.WindowEnd,
	)

	if !result.Valid {
		validity.fail(string(result.Field), result.Error)
	}

	// Rebooked dates are optional; once either is entered both are checked
	// against the original schedule.
	if s.Flight.ExceptionalDeparture != "" || s.Flight.ExceptionalArrival != "" {
		rebooked := validation.ValidateRebookedFlightDates(
			s.Flight.ArrivalDate,
			s.Flight.ExceptionalDeparture,
			s.Flight.ExceptionalArrival,
		)

		if !rebooked.Valid {
			validity.fail("exceptional."+string(rebooked.Field), rebooked.Error)
		}
	}

	return validity
}

func (s *Session) confirmationValidity() StepValidity {
	validity := newValidity(schema.StepConfirmation)

	if !validation.IsPositivePrice(s.Cost.Total) {
		validity.fail("total", "Total cost must be greater than zero")
	}

	if s.User.UserID == 0 {
		validity.fail("user", "No acting user is resolved for this session")
	}

	return validity
}
