package wizard

import (
	"math"
	"strconv"

	"bitbucket.org/crgw/reservation-wizard/internal/schema"
	"bitbucket.org/crgw/reservation-wizard/internal/validation"
)

// EditContext carries the lookup records an edit refers to, resolved by the
// route handler before the transition runs. The transition itself stays
// pure: given (state, edit, resolved records) it produces the new state and
// the cascade of dependent resets.
type EditContext struct {
	Country *schema.CountryWithCities
	City    *schema.CityOption
	Package *schema.PackageSummary
	Agency  *schema.Agency
}

// Apply runs one edit event against the session.
func Apply(session *Session, edit schema.EditRequestParams, lookups EditContext) error {
	switch edit.Type {
	case schema.EditSelectCountry:
		return session.applySelectCountry(lookups.Country)
	case schema.EditSelectCity:
		return session.applySelectCity(lookups.City)
	case schema.EditSelectPackage:
		return session.applySelectPackage(lookups.Package)
	case schema.EditAddStay:
		return session.applyAddStay(edit.Stay)
	case schema.EditUpdateStay:
		return session.applyUpdateStay(edit.StayIndex, edit.Stay)
	case schema.EditRemoveStay:
		return session.applyRemoveStay(edit.StayIndex)
	case schema.EditSelectAgency:
		return session.applySelectAgency(lookups.Agency)
	case schema.EditNewAgency:
		return session.applyNewAgency()
	case schema.EditSetAgent:
		return session.applySetAgent(edit.Agent)
	case schema.EditAddPassenger:
		return session.applyAddPassenger()
	case schema.EditUpdatePassenger:
		return session.applyUpdatePassenger(edit.PassengerIndex, edit.Passenger)
	case schema.EditRemovePassenger:
		return session.applyRemovePassenger(edit.PassengerIndex)
	case schema.EditSetFlight:
		return session.applySetFlight(edit.Flight)
	case schema.EditCostTotal:
		session.applyCostTotal(edit.Value)
		return nil
	case schema.EditCostRemainder:
		session.applyCostRemainder(edit.Value)
		return nil
	}

	return ErrUnknownEditType
}

// resetPackage clears the package selection and everything hanging off it:
// date window, hotel list, stay entries and the locked flight destination.
func (s *Session) resetPackage() {
	s.Destination.PackageID = 0
	s.Destination.PackageName = ""
	s.Destination.WindowStart = ""
	s.Destination.WindowEnd = ""
	s.Destination.Hotels = nil
	s.Destination.Stays = []schema.HotelStayEntry{}
	s.Flight.DestinationCountry = ""
	s.Flight.DestinationCity = ""
}

func (s *Session) resetCity() {
	s.Destination.CityID = 0
	s.Destination.CityName = ""
	s.resetPackage()
}

func (s *Session) applySelectCountry(country *schema.CountryWithCities) error {
	if country == nil {
		return ErrUnknownCountry
	}

	s.Destination.CountryID = country.CountryID
	s.Destination.CountryName = country.CountryName
	s.resetCity()
	s.LookupGeneration++

	return nil
}

func (s *Session) applySelectCity(city *schema.CityOption) error {
	if s.Destination.CountryID == 0 {
		return ErrNoCountrySelected
	}

	if city == nil {
		return ErrUnknownCity
	}

	s.Destination.CityID = city.CityID
	s.Destination.CityName = city.CityName
	s.resetPackage()
	s.LookupGeneration++

	return nil
}

func (s *Session) applySelectPackage(pkg *schema.PackageSummary) error {
	if s.Destination.CountryID == 0 || s.Destination.CityID == 0 {
		return ErrNoCitySelected
	}

	if pkg == nil {
		return ErrUnknownPackage
	}

	s.resetPackage()
	s.Destination.PackageID = pkg.PackageID
	s.Destination.PackageName = pkg.Name
	s.Destination.WindowStart = pkg.DateWindow.Start
	s.Destination.WindowEnd = pkg.DateWindow.End
	s.Destination.Hotels = pkg.Hotels

	// A single-hotel package books that hotel, always; the entry only needs
	// its dates filled in.
	if len(pkg.Hotels) == 1 {
		s.Destination.Stays = []schema.HotelStayEntry{{
			HotelID:   pkg.Hotels[0].HotelID,
			Mandatory: true,
		}}
	}

	s.Flight.DestinationCountry = pkg.Country
	s.Flight.DestinationCity = pkg.City
	s.LookupGeneration++

	return nil
}

func (s *Session) applyAddStay(stay *schema.HotelStayEntry) error {
	if s.Destination.PackageID == 0 {
		return ErrNoPackageSelected
	}

	if stay == nil {
		return ErrMissingPayload
	}

	if _, ok := s.packageHotel(stay.HotelID); !ok {
		return ErrUnknownHotel
	}

	for _, existing := range s.Destination.Stays {
		if existing.HotelID == stay.HotelID {
			return ErrDuplicateHotel
		}
	}

	s.Destination.Stays = append(s.Destination.Stays, schema.HotelStayEntry{
		HotelID:      stay.HotelID,
		CheckinDate:  stay.CheckinDate,
		CheckoutDate: stay.CheckoutDate,
	})

	return nil
}

func (s *Session) applyUpdateStay(index int, stay *schema.HotelStayEntry) error {
	if index < 0 || index >= len(s.Destination.Stays) {
		return ErrStayIndex
	}

	if stay == nil {
		return ErrMissingPayload
	}

	current := &s.Destination.Stays[index]

	if stay.HotelID != 0 && stay.HotelID != current.HotelID {
		if current.Mandatory {
			return ErrMandatoryStay
		}

		if _, ok := s.packageHotel(stay.HotelID); !ok {
			return ErrUnknownHotel
		}

		for i, existing := range s.Destination.Stays {
			if i != index && existing.HotelID == stay.HotelID {
				return ErrDuplicateHotel
			}
		}

		current.HotelID = stay.HotelID
	}

	current.CheckinDate = stay.CheckinDate
	current.CheckoutDate = stay.CheckoutDate

	return nil
}

func (s *Session) applyRemoveStay(index int) error {
	if index < 0 || index >= len(s.Destination.Stays) {
		return ErrStayIndex
	}

	if s.Destination.Stays[index].Mandatory {
		return ErrMandatoryStay
	}

	s.Destination.Stays = append(s.Destination.Stays[:index], s.Destination.Stays[index+1:]...)

	return nil
}

func (s *Session) applySelectAgency(agency *schema.Agency) error {
	if agency == nil {
		return ErrUnknownAgency
	}

	agencyID := agency.AgencyID
	s.Agent = schema.AgentSelection{
		AgencyID: &agencyID,
		Name:     agency.Name,
		Email:    string(agency.Email),
		Phone:    agency.Phone,
	}

	return nil
}

// applyNewAgency is the "add another" path: the reference is cleared and the
// fields blanked for fresh entry.
func (s *Session) applyNewAgency() error {
	s.Agent = schema.AgentSelection{}
	return nil
}

func (s *Session) applySetAgent(agent *schema.AgentSelection) error {
	if agent == nil {
		return ErrMissingPayload
	}

	s.Agent.Name = agent.Name
	s.Agent.Email = agent.Email
	s.Agent.Phone = agent.Phone

	return nil
}

func (s *Session) applyAddPassenger() error {
	s.Passengers = append(s.Passengers, schema.Passenger{})
	return nil
}

func (s *Session) applyUpdatePassenger(index int, passenger *schema.Passenger) error {
	if index < 0 || index >= len(s.Passengers) {
		return ErrPassengerIndex
	}

	if passenger == nil {
		return ErrMissingPayload
	}

	s.Passengers[index] = *passenger

	return nil
}

func (s *Session) applyRemovePassenger(index int) error {
	if index < 0 || index >= len(s.Passengers) {
		return ErrPassengerIndex
	}

	if len(s.Passengers) == 1 {
		return ErrLastPassenger
	}

	s.Passengers = append(s.Passengers[:index], s.Passengers[index+1:]...)

	return nil
}

// applySetFlight copies the editable flight fields. The destination stays
// locked to the package's country and city.
func (s *Session) applySetFlight(flight *schema.FlightDetails) error {
	if flight == nil {
		return ErrMissingPayload
	}

	s.Flight.Airline = flight.Airline
	s.Flight.OriginCountry = flight.OriginCountry
	s.Flight.OriginCity = flight.OriginCity
	s.Flight.DepartureDate = flight.DepartureDate
	s.Flight.ArrivalDate = flight.ArrivalDate
	s.Flight.ExceptionalDeparture = flight.ExceptionalDeparture
	s.Flight.ExceptionalArrival = flight.ExceptionalArrival

	return nil
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func (s *Session) applyCostTotal(value string) {
	s.Cost.Total = value

	hotelTotal := s.staysHotelTotal()
	if hotelTotal > 0 {
		total, ok := validation.ParsePrice(value)
		if !ok {
			total = 0
		}

		s.Cost.Remainder = formatAmount(math.Max(0, total-hotelTotal))
	}
}

func (s *Session) applyCostRemainder(value string) {
	s.Cost.Remainder = value

	hotelTotal := s.staysHotelTotal()
	if hotelTotal > 0 {
		remainder, ok := validation.ParsePrice(value)
		if !ok || remainder < 0 {
			remainder = 0
		}

		s.Cost.Total = formatAmount(hotelTotal + remainder)
		return
	}

	s.Cost.Total = value
}
