package schema

// Step is the active wizard step. Transitions are linear; Success/Error are
// terminal outcomes of a submission, not steps of their own.
type Step int

const (
	StepDestination Step = iota
	StepAgent
	StepPassengers
	StepFlight
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepDestination:
		return "destination"
	case StepAgent:
		return "agent"
	case StepPassengers:
		return "passengers"
	case StepFlight:
		return "flight"
	case StepConfirmation:
		return "confirmation"
	}

	return "unknown"
}

// PackageHotel is a hotel belonging to the selected package.
type PackageHotel struct {
	HotelID int     `json:"hotelId"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
}

// HotelStayEntry books one specific hotel of the package with its own
// check-in/check-out dates. Mandatory entries (single-hotel packages) cannot
// be removed.
type HotelStayEntry struct {
	HotelID      int    `json:"hotelId"`
	CheckinDate  string `json:"checkinDate"`
	CheckoutDate string `json:"checkoutDate"`
	Mandatory    bool   `json:"mandatory,omitempty"`
}

// DestinationSelection holds the destination step slice. The date window is
// read-only once a package is chosen; it bounds both flight dates and every
// stay entry.
type DestinationSelection struct {
	CountryID   int    `json:"countryId,omitempty"`
	CountryName string `json:"countryName,omitempty"`
	CityID      int    `json:"cityId,omitempty"`
	CityName    string `json:"cityName,omitempty"`
	PackageID   int    `json:"packageId,omitempty"`
	PackageName string `json:"packageName,omitempty"`

	WindowStart string `json:"windowStart,omitempty"`
	WindowEnd   string `json:"windowEnd,omitempty"`

	Hotels []PackageHotel   `json:"hotels,omitempty"`
	Stays  []HotelStayEntry `json:"stays"`
}

// AgentSelection is either a reference to an existing agency (AgencyID set,
// display fields cached) or freshly entered agency fields to be created on
// submission.
type AgentSelection struct {
	AgencyID *int   `json:"agencyId,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type Passenger struct {
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	NationalID string `json:"nationalId"`
	BirthDate  string `json:"birthDate"`
	Passport   bool   `json:"passport"`
	Visa       bool   `json:"visa"`
}

// FlightDetails holds the flight step slice. The destination is locked to the
// package's country and city from step one.
type FlightDetails struct {
	Airline            string `json:"airline"`
	OriginCountry      string `json:"originCountry"`
	OriginCity         string `json:"originCity"`
	DestinationCountry string `json:"destinationCountry"`
	DestinationCity    string `json:"destinationCity"`
	DepartureDate      string `json:"departureDate"`
	ArrivalDate        string `json:"arrivalDate"`

	ExceptionalDeparture string `json:"exceptionalDeparture,omitempty"`
	ExceptionalArrival   string `json:"exceptionalArrival,omitempty"`
}

// ConfirmationCost keeps the raw total and remainder inputs. When the
// reservation includes hotel stays the total decomposes as hotel prices plus
// the remainder, synchronized both ways by the reducer.
type ConfirmationCost struct {
	Total     string `json:"total"`
	Remainder string `json:"remainder"`
}

type EditEventType string

const (
	EditSelectCountry   EditEventType = "selectCountry"
	EditSelectCity      EditEventType = "selectCity"
	EditSelectPackage   EditEventType = "selectPackage"
	EditAddStay         EditEventType = "addStay"
	EditUpdateStay      EditEventType = "updateStay"
	EditRemoveStay      EditEventType = "removeStay"
	EditSelectAgency    EditEventType = "selectAgency"
	EditNewAgency       EditEventType = "newAgency"
	EditSetAgent        EditEventType = "setAgent"
	EditAddPassenger    EditEventType = "addPassenger"
	EditUpdatePassenger EditEventType = "updatePassenger"
	EditRemovePassenger EditEventType = "removePassenger"
	EditSetFlight       EditEventType = "setFlight"
	EditCostTotal       EditEventType = "setCostTotal"
	EditCostRemainder   EditEventType = "setCostRemainder"
)

// EditRequestParams is one edit event posted by the console. Only the fields
// matching the event type are read.
type EditRequestParams struct {
	Type EditEventType `json:"type" binding:"required"`

	// Generation is the lookup generation the console held when it issued
	// the edit. An edit built from an older generation's option list is
	// rejected instead of clobbering a newer selection.
	Generation *uint64 `json:"generation,omitempty"`

	CountryID int `json:"countryId,omitempty"`
	CityID    int `json:"cityId,omitempty"`
	PackageID int `json:"packageId,omitempty"`
	AgencyID  int `json:"agencyId,omitempty"`

	StayIndex int             `json:"stayIndex,omitempty"`
	Stay      *HotelStayEntry `json:"stay,omitempty"`

	Agent *AgentSelection `json:"agent,omitempty"`

	PassengerIndex int        `json:"passengerIndex,omitempty"`
	Passenger      *Passenger `json:"passenger,omitempty"`

	Flight *FlightDetails `json:"flight,omitempty"`

	Value string `json:"value,omitempty"`
}
