package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bitbucket.org/crgw/reservation-wizard/internal/schema"
	"bitbucket.org/crgw/reservation-wizard/internal/tools/client"
	"bitbucket.org/crgw/reservation-wizard/internal/tools/client/backoffice"
	"bitbucket.org/crgw/reservation-wizard/internal/tools/converting"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// submittableSession builds a session that satisfies every gate, ready for
// the create sequence.
func submittableSession(t *testing.T) *Session {
	session := sessionWithPackage(t, singleHotelPackage())

	err := Apply(session, schema.EditRequestParams{
		Type:      schema.EditUpdateStay,
		StayIndex: 0,
		Stay:      &schema.HotelStayEntry{HotelID: 1, CheckinDate: "2026-06-02", CheckoutDate: "2026-06-05"},
	}, EditContext{})
	require.Nil(t, err)

	session.Agent = schema.AgentSelection{
		Name:  "Sunset Travel",
		Email: "info@sunset.example",
		Phone: "+34600111222",
	}
	session.Passengers = []schema.Passenger{
		{Name: "Ana", Surname: "Lopez", NationalID: "0123456789", BirthDate: "1990-03-20", Passport: true},
	}
	session.Flight.Airline = "Iberia"
	session.Flight.OriginCountry = "Spain"
	session.Flight.OriginCity = "Madrid"
	session.Flight.DepartureDate = "2026-06-02"
	session.Flight.ArrivalDate = "2026-06-03"
	session.Cost.Total = "450,50"
	session.Step = schema.StepConfirmation

	return session
}

type fakeBackoffice struct {
	server *httptest.Server
	paths  []string
	bodies map[string][]json.RawMessage
	fail   map[string]string
}

func newFakeBackoffice(t *testing.T) *fakeBackoffice {
	fake := &fakeBackoffice{
		bodies: map[string][]json.RawMessage{},
		fail:   map[string]string{},
	}

	fake.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := json.Marshal(nil)
		if r.Body != nil {
			decoded := json.RawMessage{}
			if err := json.NewDecoder(r.Body).Decode(&decoded); err == nil {
				body = decoded
			}
		}

		fake.paths = append(fake.paths, r.URL.Path)
		fake.bodies[r.URL.Path] = append(fake.bodies[r.URL.Path], body)

		if message, shouldFail := fake.fail[r.URL.Path]; shouldFail {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"message": message})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/flights":
			w.Write([]byte(`{"flightId": 501}`))
		case "/agencies":
			w.Write([]byte(`{"agencyId": 77}`))
		case "/reservations":
			w.Write([]byte(`{"reservationId": 900}`))
		default:
			w.Write([]byte(`{}`))
		}
	}))

	t.Cleanup(fake.server.Close)

	return fake
}

func newTestSubmitter(t *testing.T, fake *fakeBackoffice) *Submitter {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	backofficeClient, err := backoffice.NewClient(&log, client.WithBaseURL(fake.server.URL))
	require.Nil(t, err)

	return NewSubmitter(backofficeClient, &log)
}

func TestSubmitSequence(t *testing.T) {
	freezeClock(t)

	t.Run("should run flight, agency, reservation, passenger and stay creates in order", func(t *testing.T) {
		fake := newFakeBackoffice(t)
		submitter := newTestSubmitter(t, fake)
		session := submittableSession(t)

		result := submitter.Submit(context.Background(), session)

		assert.Equal(t, OutcomeSuccess, result.Outcome)
		assert.Empty(t, result.Message)
		assert.Equal(t, 501, result.FlightID)
		assert.Equal(t, 77, result.AgencyID)
		assert.Equal(t, 900, result.ReservationID)
		assert.Equal(t, []string{"/flights", "/agencies", "/reservations", "/passengers", "/hotel-stays"}, fake.paths)
	})

	t.Run("should send the reservation linking everything", func(t *testing.T) {
		fake := newFakeBackoffice(t)
		submitter := newTestSubmitter(t, fake)
		session := submittableSession(t)

		submitter.Submit(context.Background(), session)

		require.Len(t, fake.bodies["/reservations"], 1)

		reservation := map[string]any{}
		require.Nil(t, json.Unmarshal(fake.bodies["/reservations"][0], &reservation))

		assert.Equal(t, float64(42), reservation["userId"])
		assert.Equal(t, float64(501), reservation["flightId"])
		assert.Equal(t, float64(8), reservation["packageId"])
		assert.Equal(t, float64(77), reservation["agencyId"])
		assert.Equal(t, "2026-05-15", reservation["reservationDate"])
		assert.Equal(t, 450.5, reservation["totalCost"])
		assert.Equal(t, true, reservation["active"])
	})

	t.Run("should join the flight origin and keep the locked destination", func(t *testing.T) {
		fake := newFakeBackoffice(t)
		submitter := newTestSubmitter(t, fake)
		session := submittableSession(t)

		submitter.Submit(context.Background(), session)

		flight := map[string]any{}
		require.Nil(t, json.Unmarshal(fake.bodies["/flights"][0], &flight))

		assert.Equal(t, "Madrid, Spain", flight["origin"])
		assert.Equal(t, "Seville, Spain", flight["destination"])
		assert.Equal(t, float64(0), flight["flightId"])
	})

	t.Run("should reuse a referenced agency without creating one", func(t *testing.T) {
		fake := newFakeBackoffice(t)
		submitter := newTestSubmitter(t, fake)
		session := submittableSession(t)
		session.Agent.AgencyID = converting.PointerToValue(5)

		result := submitter.Submit(context.Background(), session)

		assert.Equal(t, OutcomeSuccess, result.Outcome)
		assert.Equal(t, 5, result.AgencyID)
		assert.Equal(t, []string{"/flights", "/reservations", "/passengers", "/hotel-stays"}, fake.paths)
	})

	t.Run("should skip hotel-stay creates when there are no stays", func(t *testing.T) {
		fake := newFakeBackoffice(t)
		submitter := newTestSubmitter(t, fake)
		session := submittableSession(t)
		session.Destination.Stays = []schema.HotelStayEntry{}

		result := submitter.Submit(context.Background(), session)

		assert.Equal(t, OutcomeSuccess, result.Outcome)
		assert.Equal(t, []string{"/flights", "/agencies", "/reservations", "/passengers"}, fake.paths)
	})

	t.Run("should abort on the first failure and surface the backend message", func(t *testing.T) {
		fake := newFakeBackoffice(t)
		fake.fail["/reservations"] = "Reservation rejected"

		submitter := newTestSubmitter(t, fake)
		session := submittableSession(t)

		result := submitter.Submit(context.Background(), session)

		assert.Equal(t, OutcomeError, result.Outcome)
		assert.Equal(t, "Reservation rejected", result.Message)
		assert.Equal(t, 501, result.FlightID)
		assert.Equal(t, 77, result.AgencyID)
		assert.Zero(t, result.ReservationID)
		assert.Equal(t, []string{"/flights", "/agencies", "/reservations"}, fake.paths)
	})

	t.Run("should record the request history", func(t *testing.T) {
		fake := newFakeBackoffice(t)
		submitter := newTestSubmitter(t, fake)
		session := submittableSession(t)

		result := submitter.Submit(context.Background(), session)

		assert.Len(t, result.History, 5)
		assert.Equal(t, schema.CreateFlight, *result.History[0].Name)
		assert.Equal(t, schema.CreateHotelStay, *result.History[4].Name)
	})
}
