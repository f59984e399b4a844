package wizard

import (
	"testing"

	"bitbucket.org/crgw/reservation-wizard/internal/schema"
	"github.com/stretchr/testify/assert"
)

func testUser() schema.ActingUser {
	return schema.ActingUser{
		UserID: 42,
		Name:   "Back Office Agent",
		Role:   "admin",
		Email:  "agent@example.com",
	}
}

func testCountry() *schema.CountryWithCities {
	return &schema.CountryWithCities{
		CountryID:   3,
		CountryName: "Spain",
		Cities: []schema.CityOption{
			{CityID: 31, CityName: "Seville"},
			{CityID: 32, CityName: "Granada"},
		},
	}
}

func testPackage() *schema.PackageSummary {
	return &schema.PackageSummary{
		PackageID: 7,
		Name:      "Andalusia Highlights",
		Country:   "Spain",
		City:      "Seville",
		DateWindow: schema.DateWindow{
			Start: "2026-06-01",
			End:   "2026-06-10",
		},
		Hotels: []schema.PackageHotel{
			{HotelID: 1, Name: "Hotel Giralda", Price: 300},
			{HotelID: 2, Name: "Hotel Alcazar", Price: 450},
		},
	}
}

func singleHotelPackage() *schema.PackageSummary {
	pkg := testPackage()
	pkg.PackageID = 8
	pkg.Hotels = pkg.Hotels[:1]
	return pkg
}

// sessionWithPackage walks a fresh session through country, city and package
// selection.
func sessionWithPackage(t *testing.T, pkg *schema.PackageSummary) *Session {
	session := NewSession(testUser())

	err := Apply(session, schema.EditRequestParams{Type: schema.EditSelectCountry, CountryID: 3}, EditContext{Country: testCountry()})
	assert.Nil(t, err)

	err = Apply(session, schema.EditRequestParams{Type: schema.EditSelectCity, CityID: 31}, EditContext{City: &schema.CityOption{CityID: 31, CityName: "Seville"}})
	assert.Nil(t, err)

	err = Apply(session, schema.EditRequestParams{Type: schema.EditSelectPackage, PackageID: pkg.PackageID}, EditContext{Package: pkg})
	assert.Nil(t, err)

	return session
}

func TestSelectionCascade(t *testing.T) {
	t.Run("should clear city and package when the country changes", func(t *testing.T) {
		session := sessionWithPackage(t, testPackage())
		generation := session.LookupGeneration

		err := Apply(session, schema.EditRequestParams{Type: schema.EditSelectCountry, CountryID: 4}, EditContext{
			Country: &schema.CountryWithCities{CountryID: 4, CountryName: "Portugal"},
		})
		assert.Nil(t, err)

		assert.Equal(t, 4, session.Destination.CountryID)
		assert.Equal(t, 0, session.Destination.CityID)
		assert.Equal(t, 0, session.Destination.PackageID)
		assert.Empty(t, session.Destination.Hotels)
		assert.Empty(t, session.Destination.Stays)
		assert.Empty(t, session.Destination.WindowStart)
		assert.Empty(t, session.Flight.DestinationCountry)
		assert.Empty(t, session.Flight.DestinationCity)
		assert.Equal(t, generation+1, session.LookupGeneration)
	})

	t.Run("should clear the package when the city changes", func(t *testing.T) {
		session := sessionWithPackage(t, testPackage())

		err := Apply(session, schema.EditRequestParams{Type: schema.EditSelectCity, CityID: 32}, EditContext{
			City: &schema.CityOption{CityID: 32, CityName: "Granada"},
		})
		assert.Nil(t, err)

		assert.Equal(t, 3, session.Destination.CountryID)
		assert.Equal(t, 32, session.Destination.CityID)
		assert.Equal(t, 0, session.Destination.PackageID)
		assert.Empty(t, session.Destination.Stays)
	})

	t.Run("should reject a city without a country", func(t *testing.T) {
		session := NewSession(testUser())

		err := Apply(session, schema.EditRequestParams{Type: schema.EditSelectCity, CityID: 31}, EditContext{
			City: &schema.CityOption{CityID: 31},
		})
		assert.Equal(t, ErrNoCountrySelected, err)
	})

	t.Run("should reject an unresolved country", func(t *testing.T) {
		session := NewSession(testUser())

		err := Apply(session, schema.EditRequestParams{Type: schema.EditSelectCountry, CountryID: 99}, EditContext{})
		assert.Equal(t, ErrUnknownCountry, err)
	})
}

func TestSelectPackage(t *testing.T) {
	t.Run("should install the window and lock the flight destination", func(t *testing.T) {
		session := sessionWithPackage(t, testPackage())

		assert.Equal(t, 7, session.Destination.PackageID)
		assert.Equal(t, "2026-06-01", session.Destination.WindowStart)
		assert.Equal(t, "2026-06-10", session.Destination.WindowEnd)
		assert.Len(t, session.Destination.Hotels, 2)
		assert.Equal(t, "Spain", session.Flight.DestinationCountry)
		assert.Equal(t, "Seville", session.Flight.DestinationCity)
		assert.Empty(t, session.Destination.Stays)
	})

	t.Run("should seed the mandatory stay for a single-hotel package", func(t *testing.T) {
		session := sessionWithPackage(t, singleHotelPackage())

		assert.Len(t, session.Destination.Stays, 1)
		assert.Equal(t, 1, session.Destination.Stays[0].HotelID)
		assert.True(t, session.Destination.Stays[0].Mandatory)
		assert.Empty(t, session.Destination.Stays[0].CheckinDate)
	})

	t.Run("should clear earlier stays when the package changes", func(t *testing.T) {
		session := sessionWithPackage(t, testPackage())

		err := Apply(session, schema.EditRequestParams{
			Type: schema.EditAddStay,
			Stay: &schema.HotelStayEntry{HotelID: 2, CheckinDate: "2026-06-02", CheckoutDate: "2026-06-05"},
		}, EditContext{})
		assert.Nil(t, err)

		err = Apply(session, schema.EditRequestParams{Type: schema.EditSelectPackage, PackageID: 8}, EditContext{Package: singleHotelPackage()})
		assert.Nil(t, err)

		assert.Len(t, session.Destination.Stays, 1)
		assert.True(t, session.Destination.Stays[0].Mandatory)
	})
}

func TestStayEdits(t *testing.T) {
	t.Run("should reject a hotel outside the package", func(t *testing.T) {
		session := sessionWithPackage(t, testPackage())

		err := Apply(session, schema.EditRequestParams{
			Type: schema.EditAddStay,
			Stay: &schema.HotelStayEntry{HotelID: 99},
		}, EditContext{})
		assert.Equal(t, ErrUnknownHotel, err)
	})

	t.Run("should reject a second entry for the same hotel", func(t *testing.T) {
		session := sessionWithPackage(t, testPackage())

		err := Apply(session, schema.EditRequestParams{
			Type: schema.EditAddStay,
			Stay: &schema.HotelStayEntry{HotelID: 1, CheckinDate: "2026-06-02", CheckoutDate: "2026-06-05"},
		}, EditContext{})
		assert.Nil(t, err)

		err = Apply(session, schema.EditRequestParams{
			Type: schema.EditAddStay,
			Stay: &schema.HotelStayEntry{HotelID: 1},
		}, EditContext{})
		assert.Equal(t, ErrDuplicateHotel, err)
	})

	t.Run("should update stay dates in place", func(t *testing.T) {
		session := sessionWithPackage(t, singleHotelPackage())

		err := Apply(session, schema.EditRequestParams{
			Type:      schema.EditUpdateStay,
			StayIndex: 0,
			Stay:      &schema.HotelStayEntry{HotelID: 1, CheckinDate: "2026-06-02", CheckoutDate: "2026-06-05"},
		}, EditContext{})
		assert.Nil(t, err)

		assert.Equal(t, "2026-06-02", session.Destination.Stays[0].CheckinDate)
		assert.True(t, session.Destination.Stays[0].Mandatory)
	})

	t.Run("should not remove the mandatory entry", func(t *testing.T) {
		session := sessionWithPackage(t, singleHotelPackage())

		err := Apply(session, schema.EditRequestParams{Type: schema.EditRemoveStay, StayIndex: 0}, EditContext{})
		assert.Equal(t, ErrMandatoryStay, err)
	})

	t.Run("should remove an optional entry", func(t *testing.T) {
		session := sessionWithPackage(t, testPackage())

		err := Apply(session, schema.EditRequestParams{
			Type: schema.EditAddStay,
			Stay: &schema.HotelStayEntry{HotelID: 2, CheckinDate: "2026-06-02", CheckoutDate: "2026-06-05"},
		}, EditContext{})
		assert.Nil(t, err)

		err = Apply(session, schema.EditRequestParams{Type: schema.EditRemoveStay, StayIndex: 0}, EditContext{})
		assert.Nil(t, err)
		assert.Empty(t, session.Destination.Stays)
	})
}

func TestAgentEdits(t *testing.T) {
	t.Run("should cache the referenced agency's display fields", func(t *testing.T) {
		session := NewSession(testUser())

		err := Apply(session, schema.EditRequestParams{Type: schema.EditSelectAgency, AgencyID: 5}, EditContext{
			Agency: &schema.Agency{AgencyID: 5, Name: "Sunset Travel", Email: "info@sunset.example", Phone: "+34600111222"},
		})
		assert.Nil(t, err)

		assert.Equal(t, 5, *session.Agent.AgencyID)
		assert.Equal(t, "Sunset Travel", session.Agent.Name)
		assert.Equal(t, "info@sunset.example", session.Agent.Email)
	})

	t.Run("should blank everything on add-another", func(t *testing.T) {
		session := NewSession(testUser())

		_ = Apply(session, schema.EditRequestParams{Type: schema.EditSelectAgency, AgencyID: 5}, EditContext{
			Agency: &schema.Agency{AgencyID: 5, Name: "Sunset Travel"},
		})

		err := Apply(session, schema.EditRequestParams{Type: schema.EditNewAgency}, EditContext{})
		assert.Nil(t, err)

		assert.Nil(t, session.Agent.AgencyID)
		assert.Empty(t, session.Agent.Name)
	})

	t.Run("should keep the reference while fields are typed over", func(t *testing.T) {
		session := NewSession(testUser())

		_ = Apply(session, schema.EditRequestParams{Type: schema.EditSelectAgency, AgencyID: 5}, EditContext{
			Agency: &schema.Agency{AgencyID: 5, Name: "Sunset Travel"},
		})

		err := Apply(session, schema.EditRequestParams{
			Type:  schema.EditSetAgent,
			Agent: &schema.AgentSelection{Name: "Sunset Travel S.L.", Email: "sales@sunset.example", Phone: "+34600111222"},
		}, EditContext{})
		assert.Nil(t, err)

		assert.NotNil(t, session.Agent.AgencyID)
		assert.Equal(t, "Sunset Travel S.L.", session.Agent.Name)
	})
}

func TestPassengerEdits(t *testing.T) {
	t.Run("should start with one empty passenger", func(t *testing.T) {
		session := NewSession(testUser())
		assert.Len(t, session.Passengers, 1)
	})

	t.Run("should add and update passengers", func(t *testing.T) {
		session := NewSession(testUser())

		err := Apply(session, schema.EditRequestParams{Type: schema.EditAddPassenger}, EditContext{})
		assert.Nil(t, err)
		assert.Len(t, session.Passengers, 2)

		err = Apply(session, schema.EditRequestParams{
			Type:           schema.EditUpdatePassenger,
			PassengerIndex: 1,
			Passenger:      &schema.Passenger{Name: "Ana", Surname: "Lopez", NationalID: "0123456789", BirthDate: "1990-03-20"},
		}, EditContext{})
		assert.Nil(t, err)
		assert.Equal(t, "Ana", session.Passengers[1].Name)
	})

	t.Run("should never drop below one passenger", func(t *testing.T) {
		session := NewSession(testUser())

		err := Apply(session, schema.EditRequestParams{Type: schema.EditRemovePassenger, PassengerIndex: 0}, EditContext{})
		assert.Equal(t, ErrLastPassenger, err)
	})

	t.Run("should reject an out-of-range index", func(t *testing.T) {
		session := NewSession(testUser())

		err := Apply(session, schema.EditRequestParams{
			Type:           schema.EditUpdatePassenger,
			PassengerIndex: 4,
			Passenger:      &schema.Passenger{},
		}, EditContext{})
		assert.Equal(t, ErrPassengerIndex, err)
	})
}

func TestCostSync(t *testing.T) {
	t.Run("should mirror total and remainder without hotel stays", func(t *testing.T) {
		session := NewSession(testUser())

		err := Apply(session, schema.EditRequestParams{Type: schema.EditCostTotal, Value: "1200"}, EditContext{})
		assert.Nil(t, err)
		assert.Equal(t, "1200", session.Cost.Total)
		assert.Empty(t, session.Cost.Remainder)
	})

	t.Run("should derive the remainder from the total", func(t *testing.T) {
		session := sessionWithPackage(t, singleHotelPackage())

		_ = Apply(session, schema.EditRequestParams{
			Type:      schema.EditUpdateStay,
			StayIndex: 0,
			Stay:      &schema.HotelStayEntry{HotelID: 1, CheckinDate: "2026-06-02", CheckoutDate: "2026-06-05"},
		}, EditContext{})

		err := Apply(session, schema.EditRequestParams{Type: schema.EditCostTotal, Value: "450,50"}, EditContext{})
		assert.Nil(t, err)
		assert.Equal(t, "450,50", session.Cost.Total)
		assert.Equal(t, "150.5", session.Cost.Remainder)
	})

	t.Run("should derive the total from the remainder", func(t *testing.T) {
		session := sessionWithPackage(t, singleHotelPackage())

		_ = Apply(session, schema.EditRequestParams{
			Type:      schema.EditUpdateStay,
			StayIndex: 0,
			Stay:      &schema.HotelStayEntry{HotelID: 1, CheckinDate: "2026-06-02", CheckoutDate: "2026-06-05"},
		}, EditContext{})

		err := Apply(session, schema.EditRequestParams{Type: schema.EditCostRemainder, Value: "200"}, EditContext{})
		assert.Nil(t, err)
		assert.Equal(t, "500", session.Cost.Total)
		assert.Equal(t, "200", session.Cost.Remainder)
	})

	t.Run("should clamp the remainder below the hotel total", func(t *testing.T) {
		session := sessionWithPackage(t, singleHotelPackage())

		_ = Apply(session, schema.EditRequestParams{
			Type:      schema.EditUpdateStay,
			StayIndex: 0,
			Stay:      &schema.HotelStayEntry{HotelID: 1, CheckinDate: "2026-06-02", CheckoutDate: "2026-06-05"},
		}, EditContext{})

		err := Apply(session, schema.EditRequestParams{Type: schema.EditCostTotal, Value: "100"}, EditContext{})
		assert.Nil(t, err)
		assert.Equal(t, "0", session.Cost.Remainder)
	})
}

func TestApplyUnknownType(t *testing.T) {
	session := NewSession(testUser())

	err := Apply(session, schema.EditRequestParams{Type: "explode"}, EditContext{})
	assert.Equal(t, ErrUnknownEditType, err)
}
