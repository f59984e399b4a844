package wizard

import (
	"testing"
	"time"

	"bitbucket.org/crgw/reservation-wizard/internal/schema"
	"bitbucket.org/crgw/reservation-wizard/internal/validation"
	"github.com/stretchr/testify/assert"
)

func freezeClock(t *testing.T) {
	previous := validation.CurrentTimeFunc
	validation.CurrentTimeFunc = func() time.Time {
		return time.Date(2026, 5, 15, 10, 0, 0, 0, time.Local)
	}

	t.Cleanup(func() {
		validation.CurrentTimeFunc = previous
	})
}

func TestDestinationGate(t *testing.T) {
	freezeClock(t)

	t.Run("should stay closed until a package is selected", func(t *testing.T) {
		session := NewSession(testUser())

		validity := session.destinationValidity()
		assert.False(t, validity.Valid)
		assert.Contains(t, validity.FieldErrors, "country")
		assert.Contains(t, validity.FieldErrors, "city")
		assert.Contains(t, validity.FieldErrors, "package")
	})

	t.Run("should open for a multi-hotel package with no stays", func(t *testing.T) {
		session := sessionWithPackage(t, testPackage())

		assert.True(t, session.destinationValidity().Valid)
	})

	t.Run("should demand dates on the mandatory stay", func(t *testing.T) {
		session := sessionWithPackage(t, singleHotelPackage())

		validity := session.destinationValidity()
		assert.False(t, validity.Valid)
		assert.Contains(t, validity.FieldErrors, "stays[0].checkin")
	})

	t.Run("should flag a check-out before the check-in on the right field", func(t *testing.T) {
		session := sessionWithPackage(t, singleHotelPackage())

		_ = Apply(session, schema.EditRequestParams{
			Type:      schema.EditUpdateStay,
			StayIndex: 0,
			Stay:      &schema.HotelStayEntry{HotelID: 1, CheckinDate: "2026-06-02", CheckoutDate: "2026-06-01"},
		}, EditContext{})

		validity := session.destinationValidity()
		assert.False(t, validity.Valid)
		assert.Contains(t, validity.FieldErrors, "stays[0].checkout")
	})

	t.Run("should open once the mandatory stay has valid dates", func(t *testing.T) {
		session := sessionWithPackage(t, singleHotelPackage())

		_ = Apply(session, schema.EditRequestParams{
			Type:      schema.EditUpdateStay,
			StayIndex: 0,
			Stay:      &schema.HotelStayEntry{HotelID: 1, CheckinDate: "2026-06-02", CheckoutDate: "2026-06-05"},
		}, EditContext{})

		assert.True(t, session.destinationValidity().Valid)
	})
}

func TestAgentGate(t *testing.T) {
	t.Run("should stay closed on a malformed email even with valid name and phone", func(t *testing.T) {
		session := NewSession(testUser())
		session.Agent = schema.AgentSelection{
			Name:  "Sunset Travel",
			Email: "not-an-email",
			Phone: "+34600111222",
		}

		validity := session.agentValidity()
		assert.False(t, validity.Valid)
		assert.Contains(t, validity.FieldErrors, "email")
		assert.NotContains(t, validity.FieldErrors, "name")
		assert.NotContains(t, validity.FieldErrors, "phone")
	})

	t.Run("should open with valid fields", func(t *testing.T) {
		session := NewSession(testUser())
		session.Agent = schema.AgentSelection{
			Name:  "Sunset Travel",
			Email: "info@sunset.example",
			Phone: "+34600111222",
		}

		assert.True(t, session.agentValidity().Valid)
	})
}

func TestPassengersGate(t *testing.T) {
	freezeClock(t)

	t.Run("should flag each invalid field of each passenger", func(t *testing.T) {
		session := NewSession(testUser())
		session.Passengers = []schema.Passenger{
			{Name: "Ana", Surname: "Lopez", NationalID: "0123456789", BirthDate: "1990-03-20"},
			{Name: "B", Surname: "Diaz", NationalID: "12345", BirthDate: "2025-01-01"},
		}

		validity := session.passengersValidity()
		assert.False(t, validity.Valid)
		assert.Contains(t, validity.FieldErrors, "passengers[1].name")
		assert.Contains(t, validity.FieldErrors, "passengers[1].nationalId")
		assert.Contains(t, validity.FieldErrors, "passengers[1].birthDate")
		assert.NotContains(t, validity.FieldErrors, "passengers[0].name")
	})

	t.Run("should open with one fully valid passenger", func(t *testing.T) {
		session := NewSession(testUser())
		session.Passengers = []schema.Passenger{
			{Name: "Ana", Surname: "Lopez", NationalID: "0123456789", BirthDate: "1990-03-20"},
		}

		assert.True(t, session.passengersValidity().Valid)
	})
}

func TestFlightGate(t *testing.T) {
	freezeClock(t)

	validFlight := func() schema.FlightDetails {
		return schema.FlightDetails{
			Airline:            "Iberia",
			OriginCountry:      "Spain",
			OriginCity:         "Madrid",
			DestinationCountry: "Spain",
			DestinationCity:    "Seville",
			DepartureDate:      "2026-06-02",
			ArrivalDate:        "2026-06-03",
		}
	}

	t.Run("should open with a valid flight", func(t *testing.T) {
		session := sessionWithPackage(t, testPackage())
		session.Flight = validFlight()

		assert.True(t, session.flightValidity().Valid)
	})

	t.Run("should flag a departure in the past", func(t *testing.T) {
		session := sessionWithPackage(t, testPackage())
		session.Flight = validFlight()
		session.Flight.DepartureDate = "2026-05-14"

		validity := session.flightValidity()
		assert.False(t, validity.Valid)
		assert.Contains(t, validity.FieldErrors, "departure")
		assert.NotEmpty(t, validity.FieldErrors["departure"])
	})

	t.Run("should check rebooked dates once entered", func(t *testing.T) {
		session := sessionWithPackage(t, testPackage())
		session.Flight = validFlight()
		session.Flight.ExceptionalDeparture = "2026-06-03"
		session.Flight.ExceptionalArrival = "2026-06-05"

		validity := session.flightValidity()
		assert.False(t, validity.Valid)
		assert.Contains(t, validity.FieldErrors, "exceptional.departure")
	})

	t.Run("should accept rebooked dates after the original arrival", func(t *testing.T) {
		session := sessionWithPackage(t, testPackage())
		session.Flight = validFlight()
		session.Flight.ExceptionalDeparture = "2026-06-04"
		session.Flight.ExceptionalArrival = "2026-06-06"

		assert.True(t, session.flightValidity().Valid)
	})
}

func TestConfirmationGate(t *testing.T) {
	t.Run("should require a positive total", func(t *testing.T) {
		session := NewSession(testUser())
		session.Cost.Total = "0"

		validity := session.confirmationValidity()
		assert.False(t, validity.Valid)
		assert.Contains(t, validity.FieldErrors, "total")
	})

	t.Run("should require a resolved acting user", func(t *testing.T) {
		session := NewSession(schema.ActingUser{})
		session.Cost.Total = "1200"

		validity := session.confirmationValidity()
		assert.False(t, validity.Valid)
		assert.Contains(t, validity.FieldErrors, "user")
	})

	t.Run("should open with a total and a user", func(t *testing.T) {
		session := NewSession(testUser())
		session.Cost.Total = "1200,50"

		assert.True(t, session.confirmationValidity().Valid)
	})
}

func TestValidity(t *testing.T) {
	freezeClock(t)

	session := NewSession(testUser())
	validity := session.Validity()

	assert.Len(t, validity, 5)
	assert.Equal(t, "destination", validity[0].Step)
	assert.Equal(t, "confirmation", validity[4].Step)
	assert.False(t, session.StepValid(schema.StepDestination))
}
